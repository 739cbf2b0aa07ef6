package tokenize

import (
	"reflect"
	"testing"

	"github.com/fulmenhq/levfind/normalize"
)

func TestCharacterTokenizerTrainAndTokenize(t *testing.T) {
	pipeline, err := normalize.BuildPipeline(normalize.Options{Lowercase: true})
	if err != nil {
		t.Fatalf("BuildPipeline: %v", err)
	}
	tok := NewCharacterTokenizer(pipeline)
	if tok.IsTrained() {
		t.Fatalf("expected untrained tokenizer before Train")
	}
	if err := tok.Train([]string{"Cat", "Car"}); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if !tok.IsTrained() {
		t.Fatalf("expected trained tokenizer after Train")
	}
	if got := tok.Tokenize("Cat"); !reflect.DeepEqual(got, []string{"c", "a", "t"}) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestCharacterTokenizerUnknownRunesMapToUnk(t *testing.T) {
	tok := NewCharacterTokenizer(nil)
	if err := tok.Train([]string{"abc"}); err != nil {
		t.Fatalf("Train: %v", err)
	}
	ids := tok.Encode("abz")
	if ids[2] != tok.vocab.UnkID() {
		t.Fatalf("expected 'z' to map to UNK ID, got %d", ids[2])
	}
}

func TestCharacterTokenizerDetokenizeRoundTrip(t *testing.T) {
	tok := NewCharacterTokenizer(nil)
	if err := tok.Train([]string{"hello"}); err != nil {
		t.Fatalf("Train: %v", err)
	}
	tokens := tok.Tokenize("hello")
	if got := tok.Detokenize(tokens); got != "hello" {
		t.Fatalf("expected round trip hello, got %q", got)
	}
}
