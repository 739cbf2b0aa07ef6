package index

import (
	"sort"

	"github.com/fulmenhq/levfind/hangul"
)

// JamoIndex posts entries under their constituent jamo rather than whole
// tokens, split into three independent posting tables (cho/jung/jong) so
// the searcher can score fractional jamo overlap per §4.6. Grounded on
// the teacher's three-way _cho_index/_jung_index/_jong_index split: each
// jamo position has its own table, so a query's cho, jung and jong are
// matched only against the same position in corpus entries.
type JamoIndex struct {
	Data     []string
	Cho      map[rune][]uint32
	Jung     map[rune][]uint32
	Jong     map[rune][]uint32
	NonKorea map[rune][]uint32 // non-Korean runes, posted as whole characters
}

// BuildJamoIndex decomposes every Korean syllable in strings into its
// jamo and posts the owning entry index under each jamo position's
// table; non-Korean runes are posted whole.
func BuildJamoIndex(strings_ []string) *JamoIndex {
	idx := &JamoIndex{
		Data:     append([]string(nil), strings_...),
		Cho:      make(map[rune][]uint32),
		Jung:     make(map[rune][]uint32),
		Jong:     make(map[rune][]uint32),
		NonKorea: make(map[rune][]uint32),
	}

	for i, s := range strings_ {
		seenCho := make(map[rune]struct{})
		seenJung := make(map[rune]struct{})
		seenJong := make(map[rune]struct{})
		seenOther := make(map[rune]struct{})
		for _, r := range s {
			jamo, ok := hangul.Decompose(r)
			if !ok {
				if _, dup := seenOther[r]; !dup {
					seenOther[r] = struct{}{}
					idx.NonKorea[r] = append(idx.NonKorea[r], uint32(i))
				}
				continue
			}
			if _, dup := seenCho[jamo.Cho]; !dup {
				seenCho[jamo.Cho] = struct{}{}
				idx.Cho[jamo.Cho] = append(idx.Cho[jamo.Cho], uint32(i))
			}
			if _, dup := seenJung[jamo.Jung]; !dup {
				seenJung[jamo.Jung] = struct{}{}
				idx.Jung[jamo.Jung] = append(idx.Jung[jamo.Jung], uint32(i))
			}
			if jamo.Jong != 0 {
				if _, dup := seenJong[jamo.Jong]; !dup {
					seenJong[jamo.Jong] = struct{}{}
					idx.Jong[jamo.Jong] = append(idx.Jong[jamo.Jong], uint32(i))
				}
			}
		}
	}

	for _, table := range []map[rune][]uint32{idx.Cho, idx.Jung, idx.Jong, idx.NonKorea} {
		for r, list := range table {
			sort.Slice(list, func(a, b int) bool { return list[a] < list[b] })
			table[r] = list
		}
	}

	return idx
}

// Len returns N, the number of corpus entries.
func (idx *JamoIndex) Len() int { return len(idx.Data) }
