package tokenize

import (
	esentencepiece "github.com/eliben/go-sentencepiece"

	"github.com/fulmenhq/levfind/errors"
)

// SubwordTokenizer is a thin facade over an externally trained
// SentencePiece model. It performs no vocabulary-building work itself:
// training means loading a model file produced by an external trainer,
// and the token ID space is whatever the loaded model already assigns —
// the core just passes the adapter's IDs through.
type SubwordTokenizer struct {
	processor *esentencepiece.Processor
	vocabSize int
}

// NewSubwordTokenizer returns an untrained adapter. Call Train with the
// path to a SentencePiece model file before tokenizing.
func NewSubwordTokenizer() *SubwordTokenizer {
	return &SubwordTokenizer{}
}

// Train loads a SentencePiece model from the given file path. corpus must
// contain exactly one entry: the model file path. Training a model from
// raw text is explicitly out of scope — the adapter only loads models
// trained externally.
func (t *SubwordTokenizer) Train(corpus []string) error {
	if len(corpus) != 1 {
		return errors.NewIncompatibleInputError("subword tokenizer Train expects exactly one model file path", nil)
	}
	modelPath := corpus[0]
	processor, err := esentencepiece.NewProcessorFromPath(modelPath)
	if err != nil {
		return errors.NewInvalidCorpusFileError(modelPath, err)
	}
	t.processor = processor
	t.vocabSize = processor.VocabularySize()
	return nil
}

func (t *SubwordTokenizer) IsTrained() bool { return t.processor != nil }

func (t *SubwordTokenizer) Tokenize(s string) []string {
	if t.processor == nil {
		return nil
	}
	tokens := t.processor.Encode(s)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// Detokenize concatenates subword pieces. SentencePiece pieces already
// carry their own leading-space marker (the "▁" meta symbol), so a plain
// join reconstructs whitespace correctly.
func (t *SubwordTokenizer) Detokenize(tokens []string) string {
	out := ""
	for _, tok := range tokens {
		out += tok
	}
	return out
}

func (t *SubwordTokenizer) Encode(s string) []uint32 {
	if t.processor == nil {
		return nil
	}
	tokens := t.processor.Encode(s)
	ids := make([]uint32, len(tokens))
	for i, tok := range tokens {
		ids[i] = uint32(tok.ID)
	}
	return ids
}

func (t *SubwordTokenizer) ConvertTokensToIDs(tokens []string) []uint32 {
	// The SentencePiece processor only exposes ID lookup through Encode;
	// re-encoding each token individually preserves the adapter contract
	// (dense IDs starting at 0 from the loaded model) without requiring
	// the core to maintain its own token->ID table for this variant.
	ids := make([]uint32, len(tokens))
	for i, tok := range tokens {
		encoded := t.processor.Encode(tok)
		if len(encoded) > 0 {
			ids[i] = uint32(encoded[0].ID)
		}
	}
	return ids
}

func (t *SubwordTokenizer) VocabSize() int { return t.vocabSize }
