package khmer

import "fmt"

// SyllableClass is the input category of the visual cluster state machine.
type SyllableClass uint8

// Syllable classes, in state table column order.
const (
	ClassReserved SyllableClass = iota
	ClassConsonant
	ClassConsonant2
	ClassConsonant3
	ClassZWNJ
	ClassShifter
	ClassRobat
	ClassCoeng
	ClassDependentVowel
	ClassSignAbove
	ClassSignAfter
	ClassZWJ

	ClassCount // number of syllable classes
)

var classNames = [...]string{"Reserved", "Consonant", "Consonant2", "Consonant3",
	"ZWNJ", "Shifter", "Robat", "Coeng", "DependentVowel", "SignAbove", "SignAfter", "ZWJ"}

func (c SyllableClass) String() string {
	if c >= ClassCount {
		return fmt.Sprintf("SyllableClass(%d)", c)
	}
	return classNames[c]
}

// CharClass is a syllable class in the low 16 bits, combined with position
// and property flags.
type CharClass uint32

// Masks and flags of a CharClass.
const (
	ClassMask       CharClass = 0x0000FFFF
	PosAfter        CharClass = 1 << 16
	PosAbove        CharClass = 1 << 17
	PosBelow        CharClass = 1 << 18
	PosBefore       CharClass = 1 << 19
	PosMask         CharClass = PosAfter | PosAbove | PosBelow | PosBefore
	ConsonantBit    CharClass = 1 << 24
	SplitVowelBit   CharClass = 1 << 25
	DottedCircleBit CharClass = 1 << 26
	CoengBit        CharClass = 1 << 27
	ShifterBit      CharClass = 1 << 28
	AboveVowelBit   CharClass = 1 << 29
)

// Character classes occurring in the classification table. The visual
// reorderer dispatches on these combined values.
const (
	KOther       CharClass = 0
	KConsonant1            = CharClass(ClassConsonant) | ConsonantBit
	KConsonant2            = CharClass(ClassConsonant2) | ConsonantBit
	KConsonant3            = CharClass(ClassConsonant3) | ConsonantBit
	KCoeng                 = CharClass(ClassCoeng) | CoengBit | DottedCircleBit
	KShifter               = CharClass(ClassShifter) | DottedCircleBit | ShifterBit
	KRobat                 = CharClass(ClassRobat) | PosAbove | DottedCircleBit
	KVowelAbove            = CharClass(ClassDependentVowel) | PosAbove | DottedCircleBit | AboveVowelBit
	KVowelBelow            = CharClass(ClassDependentVowel) | PosBelow | DottedCircleBit
	KVowelBefore           = CharClass(ClassDependentVowel) | PosBefore | DottedCircleBit
	KVowelAfter            = CharClass(ClassDependentVowel) | PosAfter | DottedCircleBit
	KSplitAbove            = KVowelAbove | SplitVowelBit
	KSplitAfter            = KVowelAfter | SplitVowelBit
	KSignAbove             = CharClass(ClassSignAbove) | DottedCircleBit | PosAbove
	KSignAfter             = CharClass(ClassSignAfter) | DottedCircleBit | PosAfter
)

const (
	c1 = KConsonant1
	c2 = KConsonant2
	c3 = KConsonant3
	da = KVowelAbove
	db = KVowelBelow
	dl = KVowelBefore
	dr = KVowelAfter
	sa = KSignAbove
	sp = KSignAfter
	xx = KOther
)

var visualClasses = [...]CharClass{
	c1, c1, c1, c3, c1, c1, c1, c1, c3, c1, c1, c1, c1, c3, c1, c1, // U+1780
	c1, c1, c1, c1, c3, c1, c1, c1, c1, c3, c2, c1, c1, c1, c3, c3, // U+1790
	c1, c3, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, c1, // U+17A0
	c1, c1, c1, c1, dr, dr, dr, da, da, da, da, db, db, db, KSplitAbove, KSplitAfter, // U+17B0
	KSplitAfter, dl, dl, dl, KSplitAfter, KSplitAfter, sa, sp, sp, KShifter, KShifter, sa, KRobat, sa, sa, sa, // U+17C0
	sa, sa, KCoeng, sa, xx, xx, xx, xx, xx, xx, xx, xx, xx, sa, xx, xx, // U+17D0
}

// ClassForRune returns the visual cluster class of r.
// Code-points outside U+1780 … U+17DF are of class KOther.
func ClassForRune(r rune) CharClass {
	if r < BlockStart {
		return KOther
	}
	if i := int(r - BlockStart); i < len(visualClasses) {
		return visualClasses[i]
	}
	return KOther
}

// Syllable extracts the syllable class.
func (c CharClass) Syllable() SyllableClass {
	return SyllableClass(c & ClassMask)
}

// Position extracts the position flags.
func (c CharClass) Position() CharClass {
	return c & PosMask
}
