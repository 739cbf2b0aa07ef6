// Package index builds the immutable inverted-index structure the
// searcher queries: per-entry token ID sequences, a length table, and
// per-token posting lists, plus a content fingerprint for cache-key use.
package index

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fulmenhq/levfind/errors"
	"github.com/fulmenhq/levfind/fulhash"
	"github.com/fulmenhq/levfind/telemetry"
	"github.com/fulmenhq/levfind/telemetry/metrics"
	"github.com/fulmenhq/levfind/tokenize"
)

// Index is the frozen, read-only result of building over a corpus. The
// tokenizer owns the vocabulary; Index owns Data, TokenIDs, Lengths, and
// the posting lists. A zero Index is not usable; build one with Build.
type Index struct {
	Data      []string
	TokenIDs  [][]uint32
	Lengths   []int
	postings  [][]uint32 // postings[tokenID] -> sorted, deduped entry indices
	tokenizer tokenize.Tokenizer
	vocabSize int

	// Fingerprint is an XXH3-128 digest over the original corpus entries,
	// the vocabulary size, and every entry's token ID sequence, usable as a
	// cache key by callers that want to
	// skip rebuilding an unchanged index.
	Fingerprint fulhash.Digest
}

// Build indexes strings using tokenizer, training it first if it is not
// already trained. When pretokenized is true, each entry in strings is
// split on whitespace instead of run through the tokenizer's Tokenize.
func Build(strings_ []string, tokenizer tokenize.Tokenizer, pretokenized bool) (*Index, error) {
	start := time.Now()

	if !tokenizer.IsTrained() {
		if err := tokenizer.Train(strings_); err != nil {
			return nil, err
		}
	}

	n := len(strings_)
	tokenIDs := make([][]uint32, n)
	lengths := make([]int, n)

	for i, s := range strings_ {
		var tokens []string
		if pretokenized {
			tokens = strings.Fields(s)
		} else {
			tokens = tokenizer.Tokenize(s)
		}
		ids := tokenizer.ConvertTokensToIDs(tokens)
		tokenIDs[i] = ids
		lengths[i] = len(tokens)
	}

	vocabSize := tokenizer.VocabSize()
	postings := buildPostings(tokenIDs, vocabSize)

	idx := &Index{
		Data:      append([]string(nil), strings_...),
		TokenIDs:  tokenIDs,
		Lengths:   lengths,
		postings:  postings,
		tokenizer: tokenizer,
		vocabSize: vocabSize,
	}

	fp, err := fingerprint(idx)
	if err != nil {
		return nil, err
	}
	idx.Fingerprint = fp

	telemetry.EmitHistogram(metrics.IndexBuildMs, time.Since(start), nil)
	telemetry.EmitCounter(metrics.IndexEntriesTotal, float64(n), nil)
	postingListsBuilt := 0
	for _, list := range postings {
		if len(list) > 0 {
			postingListsBuilt++
		}
	}
	telemetry.EmitCounter(metrics.IndexPostingListsTotal, float64(postingListsBuilt), nil)

	return idx, nil
}

// buildPostings allocates one posting list per vocabulary ID and appends
// each entry index to the list for every distinct token it contains,
// deduplicating within an entry before append so each list holds each
// entry index at most once, then sorts every list ascending.
func buildPostings(tokenIDs [][]uint32, vocabSize int) [][]uint32 {
	postings := make([][]uint32, vocabSize)
	for i, ids := range tokenIDs {
		seen := make(map[uint32]struct{}, len(ids))
		for _, id := range ids {
			if int(id) >= vocabSize {
				continue // UNK or out-of-range; never posted
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			postings[id] = append(postings[id], uint32(i))
		}
	}
	for _, list := range postings {
		sort.Slice(list, func(a, b int) bool { return list[a] < list[b] })
	}
	return postings
}

// Postings returns the sorted entry indices containing token, or nil if
// token is UNK or out of the vocabulary range.
func (idx *Index) Postings(token uint32) []uint32 {
	if int(token) >= len(idx.postings) {
		return nil
	}
	return idx.postings[token]
}

// VocabSize returns the size of the trained vocabulary backing this index.
func (idx *Index) VocabSize() int { return idx.vocabSize }

// Tokenizer returns the trained tokenizer used to build this index, so a
// searcher can tokenize queries the same way the corpus was tokenized.
func (idx *Index) Tokenizer() tokenize.Tokenizer { return idx.tokenizer }

// Len returns N, the number of corpus entries.
func (idx *Index) Len() int { return len(idx.Data) }

// Validate checks the posting-list/token-ID invariant: every entry index
// appearing in a posting list for token t must actually contain t. A
// violation indicates a build bug, not a user error.
func (idx *Index) Validate() error {
	for t, list := range idx.postings {
		for _, i := range list {
			if !containsID(idx.TokenIDs[i], uint32(t)) {
				return errors.NewInternalInvariantViolationError("posting list references entry that does not contain its token")
			}
		}
	}
	return nil
}

func containsID(ids []uint32, target uint32) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// fingerprint hashes the frozen corpus content together with the trained
// vocabulary's shape: the original entries capture the normalized text
// (since tokenizing is deterministic given the same normalizer
// configuration), and the per-entry token ID sequences plus vocab size
// capture the vocabulary assignment without requiring the Tokenizer
// interface to expose its internal token table.
func fingerprint(idx *Index) (fulhash.Digest, error) {
	var b strings.Builder
	for _, s := range idx.Data {
		b.WriteString(s)
		b.WriteByte(0)
	}
	fmt.Fprintf(&b, "vocab:%d\n", idx.vocabSize)
	for _, ids := range idx.TokenIDs {
		for _, id := range ids {
			fmt.Fprintf(&b, "%d,", id)
		}
		b.WriteByte(0)
	}
	return fulhash.HashString(b.String(), fulhash.WithAlgorithm(fulhash.XXH3_128))
}
