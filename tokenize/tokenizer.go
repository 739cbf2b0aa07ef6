// Package tokenize implements the finder's pluggable tokenizer
// abstraction: maps a normalized string to an ordered sequence of
// integer token IDs, owning a vocabulary trained from a corpus.
package tokenize

// Tokenizer is the contract every tokenizer variant implements. Training
// from a corpus is idempotent: retraining on the same corpus strings
// yields the same vocabulary, since vocabularies are built by sorting the
// observed symbol set.
type Tokenizer interface {
	// Train builds (or rebuilds) the vocabulary from corpus.
	Train(corpus []string) error
	// IsTrained reports whether the tokenizer has a non-empty vocabulary.
	IsTrained() bool
	// Tokenize splits s into its symbol tokens after running it through
	// the tokenizer's normalizer pipeline.
	Tokenize(s string) []string
	// Detokenize reassembles tokens into a string and denormalizes it.
	Detokenize(tokens []string) string
	// Encode tokenizes and converts to IDs in one step.
	Encode(s string) []uint32
	// ConvertTokensToIDs maps tokens to vocabulary IDs, using the UNK ID
	// for anything outside the trained vocabulary.
	ConvertTokensToIDs(tokens []string) []uint32
	// VocabSize returns |V|, the number of trained vocabulary entries
	// (not counting the UNK sentinel).
	VocabSize() int
}
