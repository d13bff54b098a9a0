package khmer

import "strings"

// Flags is the classification of a code-point when reassembling logical
// cluster order from visually ordered input.
type Flags uint16

// Role flags and combinability sub-flags.
const (
	FlagBase    Flags = 1 << iota // consonant or independent vowel
	FlagVowel                     // dependent vowel
	FlagShifter                   // MUUSIKATOAN or TRIISAP
	FlagCoeng                     // subscript marker
	FlagSign                      // sign
	FlagLeft                      // vowel displayed left of the base
	FlagWithE                     // vowel combines with SRA E
	FlagWithU                     // vowel combines with SRA U
	FlagPoSraA                    // consonant may be subscripted under PO + SRA AA
	FlagMuus                      // subscript takes MUUSIKATOAN after it
	FlagTrii                      // subscript takes TRIISAP after it; base selects TRIISAP
	FlagRobat                     // robat
)

const (
	bs = FlagBase
	vw = FlagVowel
	sg = FlagSign
)

var logicalFlags = [...]Flags{
	// U+1780 … U+17B3: consonants and independent vowels
	bs, bs, bs, bs, bs, bs, bs, bs, bs, bs | FlagMuus, bs, bs, bs, bs, bs, bs | FlagPoSraA,
	bs, bs, bs, bs | FlagPoSraA, bs | FlagMuus, bs, bs, bs | FlagPoSraA, bs, bs | FlagPoSraA,
	bs | FlagPoSraA, bs | FlagPoSraA, bs | FlagPoSraA, bs, bs, bs | FlagTrii,
	bs, bs, bs | FlagTrii, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs, bs,
	// U+17B4, U+17B5: inherent vowels
	0, 0,
	// U+17B6 … U+17C5: dependent vowels
	vw | FlagWithE | FlagWithU, vw | FlagWithU, vw | FlagWithE | FlagWithU, vw | FlagWithU,
	vw | FlagWithU, vw, vw, vw, vw | FlagWithU, vw | FlagWithE, vw | FlagWithE,
	vw | FlagLeft, vw | FlagLeft, vw | FlagLeft, vw, vw | FlagWithE,
	// U+17C6 … U+17D3: signs, shifters, robat, coeng
	sg | FlagWithU, sg, sg, FlagShifter, FlagShifter, sg, FlagRobat, sg, sg, sg,
	sg | FlagWithU, sg, FlagCoeng, sg,
}

// FlagsForRune returns the logical reassembly flags for r.
// Code-points outside U+1780 … U+17D3 have no flags.
func FlagsForRune(r rune) Flags {
	if r < BlockStart {
		return 0
	}
	if i := int(r - BlockStart); i < len(logicalFlags) {
		return logicalFlags[i]
	}
	return 0
}

var flagNames = [...]string{"BASE", "VOWEL", "SHIFTER", "COENG", "SIGN", "LEFT",
	"WITHE", "WITHU", "POSRAA", "MUUS", "TRII", "ROBAT"}

func (f Flags) String() string {
	if f == 0 {
		return "OTHER"
	}
	var names []string
	for i, n := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}
