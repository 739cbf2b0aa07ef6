package tokenize

import (
	"strings"

	"github.com/fulmenhq/levfind/hangul"
	"github.com/fulmenhq/levfind/normalize"
)

// JamoTokenizer expands each Korean syllable into its constituent jamo
// (up to three tokens) and passes non-Korean characters through as
// single tokens. The CLI's "jamo" tokenizer option uses it to build the
// primary index; search.JamoSearch does not use it and decomposes
// syllables through the hangul package itself.
type JamoTokenizer struct {
	pipeline *normalize.Pipeline
	vocab    *Vocabulary
}

// NewJamoTokenizer builds an untrained tokenizer using pipeline for
// normalization. A nil pipeline means text passes through unchanged.
func NewJamoTokenizer(pipeline *normalize.Pipeline) *JamoTokenizer {
	return &JamoTokenizer{pipeline: pipeline}
}

func (t *JamoTokenizer) normalize(s string) string {
	if t.pipeline == nil {
		return s
	}
	return t.pipeline.Normalize(s)
}

func (t *JamoTokenizer) denormalize(s string) string {
	if t.pipeline == nil {
		return s
	}
	return t.pipeline.Denormalize(s)
}

// expand decomposes a normalized string into jamo-or-character tokens:
// each Korean syllable becomes 2 or 3 jamo tokens (cho, jung, and jong
// when present), every other rune becomes one token.
func expand(s string) []string {
	var tokens []string
	for _, r := range s {
		if !hangul.IsKorean(r) {
			tokens = append(tokens, string(r))
			continue
		}
		jamo, ok := hangul.Decompose(r)
		if !ok {
			tokens = append(tokens, string(r))
			continue
		}
		tokens = append(tokens, string(jamo.Cho), string(jamo.Jung))
		if jamo.Jong != 0 {
			tokens = append(tokens, string(jamo.Jong))
		}
	}
	return tokens
}

func (t *JamoTokenizer) Train(corpus []string) error {
	symbols := make(map[string]struct{})
	for _, s := range corpus {
		for _, tok := range expand(t.normalize(s)) {
			symbols[tok] = struct{}{}
		}
	}
	t.vocab = BuildVocabulary(symbols)
	return nil
}

func (t *JamoTokenizer) IsTrained() bool { return t.vocab.Size() > 0 }

func (t *JamoTokenizer) Tokenize(s string) []string {
	return expand(t.normalize(s))
}

// Detokenize is lossy: jamo tokens cannot be unambiguously recomposed
// into the original syllables without the indexing that produced them,
// so this simply concatenates the jamo stream. The jamo tokenizer is
// used only for the search-side symbol alphabet, never for round-trip
// reconstruction of corpus entries.
func (t *JamoTokenizer) Detokenize(tokens []string) string {
	return t.denormalize(strings.Join(tokens, ""))
}

func (t *JamoTokenizer) Encode(s string) []uint32 {
	return t.ConvertTokensToIDs(t.Tokenize(s))
}

func (t *JamoTokenizer) ConvertTokensToIDs(tokens []string) []uint32 {
	ids := make([]uint32, len(tokens))
	for i, tok := range tokens {
		ids[i] = t.vocab.IDOf(tok)
	}
	return ids
}

func (t *JamoTokenizer) VocabSize() int { return t.vocab.Size() }
