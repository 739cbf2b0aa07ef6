package search

import (
	"context"
	"testing"

	"github.com/fulmenhq/levfind/distance"
	"github.com/fulmenhq/levfind/index"
	"github.com/fulmenhq/levfind/normalize"
	"github.com/fulmenhq/levfind/tokenize"
)

func buildCharIndex(t *testing.T, corpus []string) *index.Index {
	t.Helper()
	pipeline, err := normalize.BuildPipeline(normalize.Options{Lowercase: true})
	if err != nil {
		t.Fatalf("BuildPipeline: %v", err)
	}
	tok := tokenize.NewCharacterTokenizer(pipeline)
	idx, err := index.Build(corpus, tok, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func TestSearchExactMatchAtZeroDistance(t *testing.T) {
	idx := buildCharIndex(t, []string{"apple", "banana", "grape"})
	hits, _, err := Search(context.Background(), idx, "apple", 0, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Data != "apple" {
		t.Fatalf("expected exactly one exact match, got %v", hits)
	}
}

func TestSearchWithinDistanceFindsCloseEntries(t *testing.T) {
	idx := buildCharIndex(t, []string{"kitten", "sitting", "mitten", "unrelated"})
	hits, _, err := Search(context.Background(), idx, "kitten", 2, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	found := map[string]bool{}
	for _, h := range hits {
		found[h.Data] = true
	}
	if !found["kitten"] || !found["mitten"] {
		t.Fatalf("expected kitten and mitten in results, got %v", hits)
	}
	if found["unrelated"] {
		t.Fatalf("did not expect unrelated in results")
	}
}

func TestSearchResultsSortedByDistanceThenIndex(t *testing.T) {
	idx := buildCharIndex(t, []string{"cab", "cat", "cats", "bat"})
	hits, _, err := Search(context.Background(), idx, "cat", 2, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i-1].Distance > hits[i].Distance {
			t.Fatalf("hits not sorted by ascending distance: %v", hits)
		}
		if hits[i-1].Distance == hits[i].Distance && hits[i-1].Index > hits[i].Index {
			t.Fatalf("ties not broken by ascending index: %v", hits)
		}
	}
}

func TestSearchEmptyQueryMatchesShortEntries(t *testing.T) {
	idx := buildCharIndex(t, []string{"", "a", "ab", "abc"})
	hits, _, err := Search(context.Background(), idx, "", 1, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	found := map[string]bool{}
	for _, h := range hits {
		found[h.Data] = true
	}
	if !found[""] || !found["a"] {
		t.Fatalf("expected empty and single-char entries within distance 1, got %v", hits)
	}
	if found["abc"] {
		t.Fatalf("did not expect 3-char entry within distance 1 of empty query")
	}
}

func TestSearchZeroDistanceIsExactIDSequenceMatch(t *testing.T) {
	idx := buildCharIndex(t, []string{"abc", "abd"})
	hits, _, err := Search(context.Background(), idx, "abc", 0, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Data != "abc" {
		t.Fatalf("expected only exact match at distance 0, got %v", hits)
	}
}

func TestSearchHonorsContextCancellation(t *testing.T) {
	idx := buildCharIndex(t, []string{"apple", "banana"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Search(ctx, idx, "apple", 2, false)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestSearchParallelPathMatchesSequentialPath(t *testing.T) {
	corpus := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		corpus = append(corpus, "entry"+string(rune('a'+i%26)))
	}
	idx := buildCharIndex(t, corpus)
	hits, _, err := Search(context.Background(), idx, "entrya", 2, false)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatalf("expected at least one hit in large corpus")
	}
	qIDs := idx.Tokenizer().Encode("entrya")
	want := 0
	for i := range idx.TokenIDs {
		if distance.Levenshtein(idx.TokenIDs[i], qIDs) <= 2 {
			want++
		}
	}
	if len(hits) != want {
		t.Fatalf("expected %d hits from sequential scoring, got %d", want, len(hits))
	}
	for _, h := range hits {
		if d := distance.Levenshtein(idx.TokenIDs[h.Index], qIDs); h.Distance != d {
			t.Fatalf("entry %d: parallel distance %d, sequential distance %d", h.Index, h.Distance, d)
		}
	}
}

func TestSearchPretokenizedSplitsOnWhitespace(t *testing.T) {
	idx := buildCharIndex(t, []string{"a b c", "x y z"})
	hits, _, err := Search(context.Background(), idx, "a b c", 0, true)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected exact pretokenized match, got %v", hits)
	}
}
