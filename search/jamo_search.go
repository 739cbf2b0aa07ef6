package search

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/fulmenhq/levfind/distance"
	"github.com/fulmenhq/levfind/hangul"
	"github.com/fulmenhq/levfind/index"
)

// JamoHit is a search hit scored with the jamo-weighted distance, whose
// score is a rational number rather than an integer edit count.
type JamoHit struct {
	Index    uint32
	Data     string
	Distance float64
}

// JamoSearch replaces the whole-token candidate counter with a
// fractional accumulator over jamo posting lists: each matched Korean
// jamo component contributes 1/3, each matched non-Korean character
// contributes 1. Surviving entries are scored with the jamo-weighted
// Levenshtein distance and filtered by score <= maxDistance.
func JamoSearch(ctx context.Context, idx *index.JamoIndex, query string, maxDistance float64) ([]JamoHit, *Diagnostics, error) {
	diag := &Diagnostics{CorpusSize: idx.Len()}

	n := 0
	scores := make(map[uint32]float64)
	for _, r := range query {
		n++
		jamo, ok := hangul.Decompose(r)
		if !ok {
			for _, i := range idx.NonKorea[r] {
				scores[i] += 1
			}
			continue
		}
		for _, i := range idx.Cho[jamo.Cho] {
			scores[i] += 1.0 / 3.0
		}
		for _, i := range idx.Jung[jamo.Jung] {
			scores[i] += 1.0 / 3.0
		}
		if jamo.Jong != 0 {
			for _, i := range idx.Jong[jamo.Jong] {
				scores[i] += 1.0 / 3.0
			}
		}
	}
	diag.QueryTokenCount = n
	diag.FirstPassCandidates = len(scores)

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// The unique-token prune becomes a lower bound on accumulated score:
	// an entry sharing none of the query's jamo/characters cannot score
	// within maxDistance of a query with n characters once n exceeds it.
	survivors := make([]uint32, 0, len(scores))
	for i, c := range scores {
		// Length prune: each whole-character insertion or deletion costs 1.
		if dl := utf8.RuneCountInString(idx.Data[i]) - n; float64(dl) > maxDistance || float64(-dl) > maxDistance {
			continue
		}
		if c < float64(n)-maxDistance {
			continue
		}
		survivors = append(survivors, i)
	}
	diag.FilteredCandidates = len(survivors)

	hits := make([]JamoHit, 0, len(survivors))
	for _, i := range survivors {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		d := distance.JamoLevenshtein(idx.Data[i], query)
		if d <= maxDistance {
			hits = append(hits, JamoHit{Index: i, Data: idx.Data[i], Distance: d})
		}
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Distance != hits[b].Distance {
			return hits[a].Distance < hits[b].Distance
		}
		return hits[a].Index < hits[b].Index
	})
	diag.ResultCount = len(hits)

	return hits, diag, nil
}
