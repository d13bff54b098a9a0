package reorder

import (
	"github.com/npillmayer/khmerlegacy/khmer"
)

// ToLogical reassembles logical cluster order from visually ordered text.
func ToLogical(text []rune) []rune {
	return AppendLogical(make([]rune, 0, len(text)), text)
}

// AppendLogical appends the logically ordered form of text to dst and
// returns the extended buffer.
func AppendLogical(dst, text []rune) []rune {
	tracer().Debugf("reorder %d code-points to logical order", len(text))
	last := len(text) - 1
	for i := -1; i < last; {
		var c logicalCluster
		i = c.collect(text, i)
		c.normalize()
		dst = c.appendTo(dst)
	}
	return dst
}

// logicalCluster holds the slots of a cluster. Each slot is filled at most
// once; a code-point which would fill an occupied slot starts a new cluster.
type logicalCluster struct {
	base     rune
	robat    rune
	shifter1 rune
	shifter2 rune
	coeng1   []rune // COENG and its consonant; a trailing COENG stands alone
	coeng2   []rune
	vowel    rune
	sign     rune
	keep     []rune // a code-point without Khmer role, emitted last
	poSraA   bool
}

func (c *logicalCluster) empty() bool {
	return c.base == 0 && c.robat == 0 && c.shifter1 == 0 && c.coeng1 == nil &&
		c.vowel == 0 && c.sign == 0
}

// collect reads code-points following position i into the cluster and
// returns the position of the last code-point consumed.
func (c *logicalCluster) collect(text []rune, i int) int {
	last := len(text) - 1
	for i < last {
		i++
		r := text[i]
		f := khmer.FlagsForRune(r)
		switch {
		case f&khmer.FlagBase != 0:
			if c.base != 0 {
				return i - 1
			}
			c.base = r
		case f&khmer.FlagRobat != 0:
			if c.robat != 0 {
				return i - 1
			}
			c.robat = r
		case f&khmer.FlagShifter != 0:
			if c.shifter1 != 0 {
				return i - 1
			}
			c.shifter1 = r
		case f&khmer.FlagSign != 0:
			if c.sign != 0 {
				return i - 1
			}
			c.sign = r
		case f&khmer.FlagCoeng != 0:
			if i == last {
				if !c.addCoeng(text[i:]) {
					return i - 1
				}
				return i
			}
			if text[i+1] == khmer.Ro && c.base != 0 {
				return i - 1 // subscript RO is displayed left of its base
			}
			if !c.addCoeng(text[i : i+2]) {
				return i - 1
			}
			i++
		case f&khmer.FlagVowel != 0:
			if !c.addVowel(r, f) {
				return i - 1
			}
		default:
			if c.keep != nil {
				return i - 1
			}
			c.keep = text[i : i+1]
			if r == khmer.ZWSP && !c.empty() {
				continue // more marks of this cluster may follow
			}
			return i
		}
	}
	return i
}

func (c *logicalCluster) addCoeng(sub []rune) bool {
	switch {
	case c.coeng1 == nil:
		c.coeng1 = sub
	case c.coeng2 == nil && subscript(c.coeng1) == khmer.Ro:
		c.coeng2 = sub
	default:
		return false
	}
	return true
}

// addVowel places a vowel into the cluster, combining it with a vowel
// already present where the font renders a multi-part vowel.
func (c *logicalCluster) addVowel(r rune, f khmer.Flags) bool {
	if c.vowel == 0 {
		if f&khmer.FlagLeft != 0 && c.base != 0 {
			return false // a left vowel is displayed before its base
		}
		c.vowel = r
		return true
	}
	vf := khmer.FlagsForRune(c.vowel)
	switch {
	case c.base == khmer.Po && !c.poSraA && (r == khmer.SraAA || c.vowel == khmer.SraAA):
		c.poSraA = true
		if c.vowel == khmer.SraAA {
			c.vowel = r
		}
	case c.vowel == khmer.SraE && f&khmer.FlagWithE != 0:
		c.vowel = khmer.CombineSraE(r)
	case (c.vowel == khmer.SraU && f&khmer.FlagWithU != 0) || (vf&khmer.FlagWithU != 0 && r == khmer.SraU):
		if vf&khmer.FlagWithU == 0 {
			c.vowel = r
		}
		c.shifter1 = c.seriesShifter()
	case c.vowel == khmer.SraE && r == khmer.SraU:
		c.shifter1 = c.seriesShifter()
	default:
		return false
	}
	return true
}

// seriesShifter selects the shifter rendered as a lowered SRA U.
func (c *logicalCluster) seriesShifter() rune {
	if khmer.FlagsForRune(c.base)&khmer.FlagTrii != 0 {
		return khmer.Triisap
	}
	return khmer.Muusikatoan
}

func (c *logicalCluster) normalize() {
	if c.vowel == khmer.SraU && c.sign == khmer.Samyoksannya {
		c.vowel = 0
		c.shifter1 = khmer.Muusikatoan
	}
	if c.shifter1 != 0 && c.coeng1 != nil {
		f := khmer.FlagsForRune(subscript(c.coeng1))
		switch {
		case f&khmer.FlagTrii != 0:
			c.shifter2, c.shifter1 = khmer.Triisap, 0
		case f&khmer.FlagMuus != 0:
			c.shifter2, c.shifter1 = khmer.Muusikatoan, 0
		}
	}
	under := c.coeng2
	if under == nil {
		under = c.coeng1
	}
	if len(under) == 2 && khmer.FlagsForRune(under[1])&khmer.FlagPoSraA == 0 {
		if (c.poSraA && c.vowel != 0) || (c.base == khmer.Po && c.vowel == khmer.SraAA) {
			c.base = khmer.Nyo
			if c.vowel == khmer.SraAA && !c.poSraA {
				c.vowel = 0
			}
		}
	}
	if c.poSraA && c.vowel == khmer.SraE {
		c.vowel = khmer.SraOO
	}
}

func (c *logicalCluster) appendTo(dst []rune) []rune {
	dst = appendRune(dst, c.base)
	dst = appendRune(dst, c.robat)
	dst = appendRune(dst, c.shifter1)
	dst = append(dst, c.coeng2...)
	dst = append(dst, c.coeng1...)
	dst = appendRune(dst, c.shifter2)
	dst = appendRune(dst, c.vowel)
	dst = appendRune(dst, c.sign)
	return append(dst, c.keep...)
}

func appendRune(dst []rune, r rune) []rune {
	if r == 0 {
		return dst
	}
	return append(dst, r)
}

// subscript returns the consonant of a COENG pair, or 0 for a bare COENG.
func subscript(coeng []rune) rune {
	if len(coeng) < 2 {
		return 0
	}
	return coeng[1]
}
