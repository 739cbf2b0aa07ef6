package tokenize

import (
	"strings"

	"github.com/fulmenhq/levfind/normalize"
)

// BigramTokenizer tokenizes on overlapping length-2 substrings of the
// normalized string. Strings shorter than 2 code points fall back to a
// single token equal to the whole normalized string.
type BigramTokenizer struct {
	pipeline *normalize.Pipeline
	vocab    *Vocabulary
}

// NewBigramTokenizer builds an untrained tokenizer using pipeline for
// normalization. A nil pipeline means text passes through unchanged.
func NewBigramTokenizer(pipeline *normalize.Pipeline) *BigramTokenizer {
	return &BigramTokenizer{pipeline: pipeline}
}

func (t *BigramTokenizer) normalize(s string) string {
	if t.pipeline == nil {
		return s
	}
	return t.pipeline.Normalize(s)
}

func (t *BigramTokenizer) denormalize(s string) string {
	if t.pipeline == nil {
		return s
	}
	return t.pipeline.Denormalize(s)
}

// toBigrams emits the overlapping length-2 substrings of s, one per
// possible offset. For len(runes) < 2, emits a single element equal to s
// itself (the fall-back the spec requires for short strings).
func toBigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return []string{s}
	}
	bigrams := make([]string, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		bigrams[i] = string(runes[i : i+2])
	}
	return bigrams
}

func (t *BigramTokenizer) Train(corpus []string) error {
	symbols := make(map[string]struct{})
	for _, s := range corpus {
		for _, bigram := range toBigrams(t.normalize(s)) {
			symbols[bigram] = struct{}{}
		}
	}
	t.vocab = BuildVocabulary(symbols)
	return nil
}

func (t *BigramTokenizer) IsTrained() bool { return t.vocab.Size() > 0 }

func (t *BigramTokenizer) Tokenize(s string) []string {
	return toBigrams(t.normalize(s))
}

// Detokenize takes the first code point of every bigram but the last,
// concatenates them, appends the final bigram in full, then
// denormalizes. This matches the source tokenizer's reconstruction and
// is exact whenever tokens came from Tokenize on a string of length ≥ 2.
func (t *BigramTokenizer) Detokenize(tokens []string) string {
	if len(tokens) == 0 {
		return t.denormalize("")
	}
	var b strings.Builder
	for _, tok := range tokens[:len(tokens)-1] {
		runes := []rune(tok)
		if len(runes) > 0 {
			b.WriteRune(runes[0])
		}
	}
	b.WriteString(tokens[len(tokens)-1])
	return t.denormalize(b.String())
}

func (t *BigramTokenizer) Encode(s string) []uint32 {
	return t.ConvertTokensToIDs(t.Tokenize(s))
}

func (t *BigramTokenizer) ConvertTokensToIDs(tokens []string) []uint32 {
	ids := make([]uint32, len(tokens))
	for i, tok := range tokens {
		ids[i] = t.vocab.IDOf(tok)
	}
	return ids
}

func (t *BigramTokenizer) VocabSize() int { return t.vocab.Size() }
