// Package finder is the top-level facade: it wires normalization,
// tokenization, indexing, and search behind the small surface a caller
// actually needs — build an index once, then run queries against it.
package finder

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fulmenhq/levfind/errors"
	"github.com/fulmenhq/levfind/index"
	"github.com/fulmenhq/levfind/logging"
	"github.com/fulmenhq/levfind/search"
	"github.com/fulmenhq/levfind/tokenize"
)

// Hit is a result returned from Search: the entry's position in the
// indexed corpus, the original string, and its edit distance from the
// query.
type Hit struct {
	Index    uint32
	Data     string
	Distance int
}

// Finder owns a tokenizer and, once IndexStrings or IndexFile has been called, the frozen
// index built from it. It is safe for concurrent Search calls once
// indexed, since the index is read-only.
type Finder struct {
	tokenizer tokenize.Tokenizer
	index     *index.Index
	logger    *logging.Logger
}

// New returns a Finder that will use tokenizer (trained or untrained)
// for both indexing and querying. logger may be nil, in which case
// verbose diagnostics are silently dropped rather than logged.
func New(tokenizer tokenize.Tokenizer, logger *logging.Logger) *Finder {
	return &Finder{tokenizer: tokenizer, logger: logger}
}

// IndexStrings builds the search index directly from in-memory entries.
func (f *Finder) IndexStrings(entries []string, pretokenized bool) error {
	idx, err := index.Build(entries, f.tokenizer, pretokenized)
	if err != nil {
		return err
	}
	f.index = idx
	return nil
}

// IndexFile reads entries from a corpus file — plain UTF-8 text, one
// entry per line, trailing whitespace stripped, blank lines retained as
// empty entries — then builds the index from them.
func (f *Finder) IndexFile(path string, pretokenized bool) error {
	entries, err := ReadCorpusFile(path)
	if err != nil {
		return err
	}
	return f.IndexStrings(entries, pretokenized)
}

// ReadCorpusFile loads a corpus file: one entry per line, trailing
// whitespace (including the line terminator) stripped, blank lines
// retained as empty-string entries.
func ReadCorpusFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInvalidCorpusFileError(path, err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entries = append(entries, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewInvalidCorpusFileError(path, err)
	}
	return entries, nil
}

// Fingerprint returns the content fingerprint of the current index, or
// the empty string if no index has been built yet.
func (f *Finder) Fingerprint() string {
	if f.index == nil {
		return ""
	}
	return f.index.Fingerprint.String()
}

// Search runs an approximate-match query against the index built by a
// prior IndexStrings/IndexFile call. verbose logs query diagnostics at DEBUG
// when a logger was supplied; it never changes the result.
func (f *Finder) Search(ctx context.Context, query string, maxDistance int, pretokenized, verbose bool) ([]Hit, error) {
	if f.index == nil {
		return nil, errors.NewUntrainedTokenizerError(fmt.Sprintf("%T", f.tokenizer))
	}

	start := time.Now()
	hits, diag, err := search.Search(ctx, f.index, query, maxDistance, pretokenized)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if verbose && f.logger != nil {
		f.logger.WithComponent("search").Debug("search query completed",
			zap.String("query", query),
			zap.Int("query_token_count", diag.QueryTokenCount),
			zap.Int("corpus_size", diag.CorpusSize),
			zap.Int("first_pass_candidates", diag.FirstPassCandidates),
			zap.Int("filtered_candidates", diag.FilteredCandidates),
			zap.Int("result_count", diag.ResultCount),
			zap.Float64("elapsed_seconds", elapsed.Seconds()),
		)
	}

	out := make([]Hit, len(hits))
	for i, h := range hits {
		out[i] = Hit{Index: h.Index, Data: h.Data, Distance: h.Distance}
	}
	return out, nil
}

// String renders the finder's current state, useful in CLI status output.
func (f *Finder) String() string {
	if f.index == nil {
		return "Finder(unindexed)"
	}
	return fmt.Sprintf("Finder(entries=%d, vocab=%d, fingerprint=%s)", f.index.Len(), f.index.VocabSize(), f.Fingerprint())
}
