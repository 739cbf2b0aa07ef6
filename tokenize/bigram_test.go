package tokenize

import (
	"reflect"
	"testing"
)

func TestToBigramsOverlappingWindows(t *testing.T) {
	got := toBigrams("abcd")
	want := []string{"ab", "bc", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestToBigramsShortStringFallsBackToWholeString(t *testing.T) {
	for _, s := range []string{"", "a"} {
		got := toBigrams(s)
		if !reflect.DeepEqual(got, []string{s}) {
			t.Fatalf("toBigrams(%q) = %v, want [%q]", s, got, s)
		}
	}
}

func TestBigramTokenizerTrainAndEncode(t *testing.T) {
	tok := NewBigramTokenizer(nil)
	if err := tok.Train([]string{"abcd", "bcda"}); err != nil {
		t.Fatalf("Train: %v", err)
	}
	ids := tok.Encode("abcd")
	if len(ids) != 3 {
		t.Fatalf("expected 3 bigram tokens, got %d", len(ids))
	}
}

func TestBigramTokenizerDetokenizeReconstructsString(t *testing.T) {
	tok := NewBigramTokenizer(nil)
	if err := tok.Train([]string{"hello"}); err != nil {
		t.Fatalf("Train: %v", err)
	}
	tokens := tok.Tokenize("hello")
	if got := tok.Detokenize(tokens); got != "hello" {
		t.Fatalf("expected round trip hello, got %q", got)
	}
}

func TestBigramTokenizerDetokenizeEmpty(t *testing.T) {
	tok := NewBigramTokenizer(nil)
	if got := tok.Detokenize(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
