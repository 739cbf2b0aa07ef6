package tokenize

import (
	"strings"

	"github.com/fulmenhq/levfind/normalize"
)

// CharacterTokenizer tokenizes on Unicode code points of the normalized
// string. Training collects the set of code points observed across the
// normalized corpus and sorts them lexicographically to assign IDs.
type CharacterTokenizer struct {
	pipeline *normalize.Pipeline
	vocab    *Vocabulary
}

// NewCharacterTokenizer builds an untrained tokenizer using pipeline for
// normalization. A nil pipeline means text passes through unchanged.
func NewCharacterTokenizer(pipeline *normalize.Pipeline) *CharacterTokenizer {
	return &CharacterTokenizer{pipeline: pipeline}
}

func (t *CharacterTokenizer) normalize(s string) string {
	if t.pipeline == nil {
		return s
	}
	return t.pipeline.Normalize(s)
}

func (t *CharacterTokenizer) denormalize(s string) string {
	if t.pipeline == nil {
		return s
	}
	return t.pipeline.Denormalize(s)
}

func (t *CharacterTokenizer) Train(corpus []string) error {
	symbols := make(map[string]struct{})
	for _, s := range corpus {
		for _, r := range t.normalize(s) {
			symbols[string(r)] = struct{}{}
		}
	}
	t.vocab = BuildVocabulary(symbols)
	return nil
}

func (t *CharacterTokenizer) IsTrained() bool { return t.vocab.Size() > 0 }

func (t *CharacterTokenizer) Tokenize(s string) []string {
	normalized := t.normalize(s)
	tokens := make([]string, 0, len(normalized))
	for _, r := range normalized {
		tokens = append(tokens, string(r))
	}
	return tokens
}

func (t *CharacterTokenizer) Detokenize(tokens []string) string {
	return t.denormalize(strings.Join(tokens, ""))
}

func (t *CharacterTokenizer) Encode(s string) []uint32 {
	return t.ConvertTokensToIDs(t.Tokenize(s))
}

func (t *CharacterTokenizer) ConvertTokensToIDs(tokens []string) []uint32 {
	ids := make([]uint32, len(tokens))
	for i, tok := range tokens {
		ids[i] = t.vocab.IDOf(tok)
	}
	return ids
}

func (t *CharacterTokenizer) VocabSize() int { return t.vocab.Size() }
