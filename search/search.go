// Package search implements the candidate filter and exact-distance
// scoring pass that answers approximate-match queries against a frozen
// index: overlap counting and pruning first, the Levenshtein kernel only
// over what survives.
package search

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fulmenhq/levfind/distance"
	"github.com/fulmenhq/levfind/index"
	"github.com/fulmenhq/levfind/telemetry"
	"github.com/fulmenhq/levfind/telemetry/metrics"
)

// Hit is one search result: the entry's position in the corpus, its
// original string, and its edit distance from the query.
type Hit struct {
	Index    uint32
	Data     string
	Distance int
}

// parallelThreshold is the minimum number of survivors before scoring is
// fanned out across a worker pool; below it, goroutine setup overhead
// would outweigh the benefit.
const parallelThreshold = 64

// Diagnostics reports the shape of one query's execution, surfaced by
// callers that pass verbose=true (see the Finder facade).
type Diagnostics struct {
	QueryTokenCount     int
	CorpusSize          int
	FirstPassCandidates int
	FilteredCandidates  int
	ResultCount         int
}

// Search tokenizes query using idx's tokenizer (or whitespace-splits it
// when pretokenized), then returns hits within maxDistance sorted
// ascending by (distance, entry index). It cooperatively honors ctx
// cancellation: if ctx is done before scoring completes, it returns
// (nil, nil, ctx.Err()) rather than a partial result.
func Search(ctx context.Context, idx *index.Index, query string, maxDistance int, pretokenized bool) ([]Hit, *Diagnostics, error) {
	start := time.Now()
	var qTokens []string
	if pretokenized {
		qTokens = strings.Fields(query)
	} else {
		qTokens = idx.Tokenizer().Tokenize(query)
	}
	qIDs := idx.Tokenizer().ConvertTokensToIDs(qTokens)

	diag := &Diagnostics{QueryTokenCount: len(qIDs), CorpusSize: idx.Len()}

	n := len(qIDs)
	distinct := distinctIDs(qIDs)
	u := len(distinct)

	var survivors []uint32

	if n == 0 {
		// An empty query has no tokens to post against, so the overlap
		// counter never fires; the only entries that can be within
		// maxDistance are ones no longer than it.
		diag.FirstPassCandidates = idx.Len()
		for i, length := range idx.Lengths {
			if length <= maxDistance {
				survivors = append(survivors, uint32(i))
			}
		}
	} else {
		counts := make(map[uint32]int)
		for id := range distinct {
			for _, i := range idx.Postings(id) {
				counts[i]++
			}
		}
		diag.FirstPassCandidates = len(counts)

		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		survivors = make([]uint32, 0, len(counts))
		for i, c := range counts {
			if absInt(idx.Lengths[i]-n) > maxDistance {
				continue
			}
			if absInt(c-u) > maxDistance {
				continue
			}
			survivors = append(survivors, i)
		}
	}
	diag.FilteredCandidates = len(survivors)

	distances, err := scoreSurvivors(ctx, idx, survivors, qIDs)
	if err != nil {
		return nil, nil, err
	}

	hits := make([]Hit, 0, len(survivors))
	for _, i := range survivors {
		d := distances[i]
		if d <= maxDistance {
			hits = append(hits, Hit{Index: i, Data: idx.Data[i], Distance: d})
		}
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Distance != hits[b].Distance {
			return hits[a].Distance < hits[b].Distance
		}
		return hits[a].Index < hits[b].Index
	})
	diag.ResultCount = len(hits)

	telemetry.EmitHistogram(metrics.SearchQueryMs, time.Since(start), nil)
	telemetry.EmitCounter(metrics.SearchCandidatesTotal, float64(diag.FirstPassCandidates), nil)
	telemetry.EmitCounter(metrics.SearchFilteredTotal, float64(diag.FilteredCandidates), nil)
	telemetry.EmitCounter(metrics.SearchHitsTotal, float64(diag.ResultCount), nil)

	return hits, diag, nil
}

// scoreSurvivors computes the exact Levenshtein distance between qIDs and
// each survivor's token ID sequence, fanning the work out over a bounded
// worker pool once the survivor count passes parallelThreshold.
func scoreSurvivors(ctx context.Context, idx *index.Index, survivors []uint32, qIDs []uint32) (map[uint32]int, error) {
	results := make(map[uint32]int, len(survivors))

	if len(survivors) < parallelThreshold {
		for _, i := range survivors {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = distance.Levenshtein(idx.TokenIDs[i], qIDs)
		}
		return results, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(survivors) {
		numWorkers = len(survivors)
	}

	jobs := make(chan uint32, len(survivors))
	var mu sync.Mutex
	var wg sync.WaitGroup

	go func() {
		defer close(jobs)
		for _, i := range survivors {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				d := distance.Levenshtein(idx.TokenIDs[i], qIDs)
				mu.Lock()
				results[i] = d
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func distinctIDs(ids []uint32) map[uint32]struct{} {
	set := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
