package index

import "testing"

func TestBuildJamoIndexPostsChoJungJong(t *testing.T) {
	idx := BuildJamoIndex([]string{"강산", "가방"})
	if idx.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", idx.Len())
	}
	// 강 has cho=ㄱ, jung=ㅏ, jong=ㅇ; 산 has cho=ㅅ, jung=ㅏ, jong=ㄴ.
	// Both entries share the jung ㅏ, so its posting list should cover both.
	var sharedJung rune
	for r, list := range idx.Jung {
		if len(list) == 2 {
			sharedJung = r
			break
		}
	}
	if sharedJung == 0 {
		t.Fatalf("expected a jung jamo shared by both entries")
	}
	// Both entries start with cho ㄱ (U+1100: 강, 가) and both contain jong ㅇ (U+11BC: 강, 방).
	if got := idx.Cho[0x1100]; len(got) != 2 {
		t.Fatalf("expected cho ㄱ posted for both entries, got %v", got)
	}
	if got := idx.Jong[0x11BC]; len(got) != 2 {
		t.Fatalf("expected jong ㅇ posted for both entries, got %v", got)
	}
}

func TestBuildJamoIndexPostsNonKoreanWhole(t *testing.T) {
	idx := BuildJamoIndex([]string{"ab강"})
	if len(idx.NonKorea['a']) != 1 || len(idx.NonKorea['b']) != 1 {
		t.Fatalf("expected ASCII runes posted whole, got %v %v", idx.NonKorea['a'], idx.NonKorea['b'])
	}
}

func TestBuildJamoIndexDedupesWithinEntry(t *testing.T) {
	idx := BuildJamoIndex([]string{"가가"})
	for r, list := range idx.Cho {
		if len(list) > 1 {
			t.Fatalf("expected cho %q posting list deduped to 1, got %v", r, list)
		}
	}
}
