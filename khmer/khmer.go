package khmer

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// BlockStart is the first code-point of the Khmer block. Both classification
// tables are indexed relative to it.
const BlockStart rune = 0x1780

// Code-points the reorderers have to test for.
const (
	Nyo          rune = 0x1789 // KHMER LETTER NYO
	Ba           rune = 0x1794 // KHMER LETTER BA
	Po           rune = 0x1796 // KHMER LETTER PO
	Yo           rune = 0x1799 // KHMER LETTER YO
	Ro           rune = 0x179A // KHMER LETTER RO
	Sa           rune = 0x179F // KHMER LETTER SA
	La           rune = 0x17A1 // KHMER LETTER LA
	SraAA        rune = 0x17B6 // KHMER VOWEL SIGN AA
	SraII        rune = 0x17B8 // KHMER VOWEL SIGN II
	SraU         rune = 0x17BB // KHMER VOWEL SIGN U
	SraOE        rune = 0x17BE // KHMER VOWEL SIGN OE
	SraYA        rune = 0x17BF // KHMER VOWEL SIGN YA
	SraIE        rune = 0x17C0 // KHMER VOWEL SIGN IE
	SraE         rune = 0x17C1 // KHMER VOWEL SIGN E
	SraOO        rune = 0x17C4 // KHMER VOWEL SIGN OO
	SraAU        rune = 0x17C5 // KHMER VOWEL SIGN AU
	Muusikatoan  rune = 0x17C9 // KHMER SIGN MUUSIKATOAN
	Triisap      rune = 0x17CA // KHMER SIGN TRIISAP
	Samyoksannya rune = 0x17D0 // KHMER SIGN SAMYOK SANNYA
	Coeng        rune = 0x17D2 // KHMER SIGN COENG
	Mark         rune = 0x17EA // unassigned; legacy font tables use it to tag alternate glyphs
	ZWSP         rune = 0x200B // ZERO WIDTH SPACE
)

// sraECombinations lists the vowels which, preceded by SRA E, form a split
// vowel. Visually ordered text carries the pair (SRA E, first), logical text
// carries second.
var sraECombinations = [...][2]rune{
	{SraII, SraOE},
	{SraYA, SraYA},
	{SraIE, SraIE},
	{SraAA, SraOO},
	{SraAU, SraAU},
}

// CombineSraE returns the split vowel formed by SRA E followed by r, or 0 if
// r does not combine with SRA E.
func CombineSraE(r rune) rune {
	for _, c := range sraECombinations {
		if c[0] == r {
			return c[1]
		}
	}
	return 0
}

// SplitSraE is the inverse of CombineSraE: for a split vowel it returns the
// part rendered after SRA E, or 0 if r is not a split vowel.
func SplitSraE(r rune) rune {
	for _, c := range sraECombinations {
		if c[1] == r {
			return c[0]
		}
	}
	return 0
}

// Block contains the code-points which identify a text as Khmer Unicode:
// the Khmer block up to U+17F9 and the Khmer symbols block.
var Block = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x1780, Hi: 0x17F9, Stride: 1}}},
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x19E0, Hi: 0x19FF, Stride: 1}}},
)

// ContainsKhmer reports whether s contains at least one Khmer Unicode code-point.
func ContainsKhmer(s string) bool {
	for _, r := range s {
		if unicode.Is(Block, r) {
			return true
		}
	}
	return false
}

// Direction selects one of the two classification schemes.
type Direction int8

// Conversion directions.
const (
	ToUnicode Direction = iota // legacy → Unicode, see FlagsForRune
	ToLegacy                   // Unicode → legacy, see ClassForRune
)

// Classify returns the raw classification bits of r for a direction.
// It is a convenience front-end for FlagsForRune and ClassForRune.
func Classify(dir Direction, r rune) uint32 {
	if dir == ToUnicode {
		return uint32(FlagsForRune(r))
	}
	return uint32(ClassForRune(r))
}
