// Package distance implements the finder's edit-distance kernel: a
// generic Levenshtein distance over arbitrary comparable symbol
// sequences, and a Hangul jamo-weighted variant for Korean text.
package distance

import "github.com/fulmenhq/levfind/hangul"

// Levenshtein computes the minimum number of single-symbol insertions,
// deletions, and substitutions needed to turn a into b. It operates on
// any sequence of comparable symbols — rune slices for text, token ID
// slices ([]uint32) for the index's tokenized entries — via the same
// two-row Wagner-Fischer recurrence, using O(min(len(a), len(b))) space.
func Levenshtein[T comparable](a, b []T) int {
	lenA, lenB := len(a), len(b)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Keep a as the shorter sequence so the auxiliary rows stay small.
	if lenB < lenA {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}

	prevRow := make([]int, lenA+1)
	currRow := make([]int, lenA+1)

	for i := 0; i <= lenA; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= lenB; j++ {
		currRow[0] = j

		for i := 1; i <= lenA; i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := currRow[i-1] + 1
			insertion := prevRow[i] + 1
			substitution := prevRow[i-1] + cost

			currRow[i] = deletion
			if insertion < currRow[i] {
				currRow[i] = insertion
			}
			if substitution < currRow[i] {
				currRow[i] = substitution
			}
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenA]
}

// jamoWeight is the fractional cost contributed by each of the three
// jamo positions (initial, medial, final) that differ between two
// Hangul syllables.
const jamoWeight = 1.0 / 3.0

// JamoLevenshtein computes a Hangul-aware edit distance between x and y:
// substituting one Korean syllable for another costs the Levenshtein
// distance between their (cho, jung, jong) jamo triples divided by 3,
// non-Korean substitution costs 1, and insertion/deletion of a whole
// character always costs 1. The result is a rational number, not an
// integer distance.
func JamoLevenshtein(x, y string) float64 {
	runesX := []rune(x)
	runesY := []rune(y)
	lenX, lenY := len(runesX), len(runesY)

	if lenX == 0 {
		return float64(lenY)
	}
	if lenY == 0 {
		return float64(lenX)
	}

	prevRow := make([]float64, lenX+1)
	currRow := make([]float64, lenX+1)

	for i := 0; i <= lenX; i++ {
		prevRow[i] = float64(i)
	}

	for j := 1; j <= lenY; j++ {
		currRow[0] = float64(j)

		for i := 1; i <= lenX; i++ {
			cost := syllableSubstitutionCost(runesX[i-1], runesY[j-1])

			deletion := currRow[i-1] + 1
			insertion := prevRow[i] + 1
			substitution := prevRow[i-1] + cost

			currRow[i] = min3(deletion, insertion, substitution)
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenX]
}

// syllableSubstitutionCost returns 0 when a and b are the same rune, 1
// when either is non-Korean, and the fractional jamo-triple distance
// when both are Hangul syllables.
func syllableSubstitutionCost(a, b rune) float64 {
	if a == b {
		return 0
	}

	ja, okA := hangul.Decompose(a)
	jb, okB := hangul.Decompose(b)
	if !okA || !okB {
		return 1
	}

	return float64(Levenshtein(ja.Triple(), jb.Triple())) * jamoWeight
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
