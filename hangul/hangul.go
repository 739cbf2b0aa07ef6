// Package hangul decomposes precomposed Hangul syllables into their
// constituent jamo (initial, medial, final) code points, and classifies
// runes as Korean. It is used by the jamo tokenizer and the jamo-weighted
// distance kernel; nothing outside that path needs it.
package hangul

// Hangul syllable and compatibility jamo block boundaries, and the jamo
// composition constants from the Unicode Hangul Syllable algorithm.
const (
	sBase = 0xAC00
	sEnd  = 0xD7A3
	lBase = 0x1100
	vBase = 0x1161
	tBase = 0x11A7

	lCount = 19
	vCount = 21
	tCount = 28

	compatJamoStart = 0x1100
	compatJamoEnd   = 0x11FF
)

// IsKorean reports whether r is a precomposed Hangul syllable or falls in
// the compatibility jamo block.
func IsKorean(r rune) bool {
	if r >= sBase && r <= sEnd {
		return true
	}
	return r >= compatJamoStart && r <= compatJamoEnd
}

// Jamo is the decomposition of one Hangul syllable into its initial
// (cho), medial (jung), and final (jong) components. Jong is the zero
// rune when the syllable has no final consonant.
type Jamo struct {
	Cho  rune
	Jung rune
	Jong rune
}

// Decompose splits a precomposed Hangul syllable r into its jamo triple.
// The second return value is false if r is not in the precomposed
// syllable block [U+AC00, U+D7A3].
func Decompose(r rune) (Jamo, bool) {
	if r < sBase || r > sEnd {
		return Jamo{}, false
	}
	offset := int(r) - sBase
	jongIdx := offset % tCount
	jungIdx := ((offset - jongIdx) / tCount) % vCount
	choIdx := ((offset - jongIdx) / tCount) / vCount

	j := Jamo{
		Cho:  rune(lBase + choIdx),
		Jung: rune(vBase + jungIdx),
	}
	if jongIdx > 0 {
		j.Jong = rune(tBase + jongIdx)
	}
	return j, true
}

// Triple returns the jamo's three components in (cho, jung, jong) order,
// using the zero rune as the sentinel for a missing final consonant. It is
// always length 3 so that comparing two triples with the Levenshtein
// kernel reduces to a positional mismatch count, matching the "divide by
// 3" scoring in the jamo-weighted distance.
func (j Jamo) Triple() []rune {
	return []rune{j.Cho, j.Jung, j.Jong}
}
