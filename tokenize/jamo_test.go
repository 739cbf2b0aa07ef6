package tokenize

import (
	"reflect"
	"testing"
)

func TestExpandDecomposesKoreanSyllable(t *testing.T) {
	// 가 (U+AC00) has no final consonant: cho + jung only.
	got := expand("가")
	if len(got) != 2 {
		t.Fatalf("expected 2 jamo tokens for 가, got %v", got)
	}
}

func TestExpandDecomposesSyllableWithFinalConsonant(t *testing.T) {
	// 강 (U+AC15) has a final consonant: cho + jung + jong.
	got := expand("강")
	if len(got) != 3 {
		t.Fatalf("expected 3 jamo tokens for 강, got %v", got)
	}
}

func TestExpandPassesThroughNonKorean(t *testing.T) {
	got := expand("ab")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected ASCII pass-through, got %v", got)
	}
}

func TestExpandMixedScript(t *testing.T) {
	got := expand("a가")
	if len(got) != 3 {
		t.Fatalf("expected 1 ASCII + 2 jamo tokens, got %v", got)
	}
	if got[0] != "a" {
		t.Fatalf("expected first token 'a', got %q", got[0])
	}
}

func TestJamoTokenizerTrainAndEncode(t *testing.T) {
	tok := NewJamoTokenizer(nil)
	if err := tok.Train([]string{"가상", "가방"}); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if !tok.IsTrained() {
		t.Fatalf("expected trained tokenizer")
	}
	ids := tok.Encode("가상")
	if len(ids) != 5 {
		t.Fatalf("expected 5 jamo tokens (가: cho+jung, 상: cho+jung+jong), got %d", len(ids))
	}
}
