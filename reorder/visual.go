package reorder

import (
	"github.com/npillmayer/khmerlegacy/khmer"
)

const (
	mark        = string(khmer.Mark)
	coeng       = string(khmer.Coeng)
	coengRo     = coeng + string(khmer.Ro)
	coengNyo    = coeng + string(khmer.Nyo)
	nyo         = string(khmer.Nyo)
	ba          = string(khmer.Ba)
	la          = string(khmer.La)
	sraE        = string(khmer.SraE)
	sraAA       = string(khmer.SraAA)
	sraAU       = string(khmer.SraAU)
	triisap     = string(khmer.Triisap)
	muusikatoan = string(khmer.Muusikatoan)
	samyok      = string(khmer.Samyoksannya)
)

// ToVisual renders logically ordered text in visual cluster order.
func ToVisual(text []rune) []rune {
	return AppendVisual(make([]rune, 0, len(text)+len(text)/2), text)
}

// AppendVisual appends the visually ordered form of text to dst and returns
// the extended buffer. Glyph variants a legacy font renders differently are
// prefixed with one or more khmer.Mark code-points.
func AppendVisual(dst, text []rune) []rune {
	tracer().Debugf("reorder %d code-points to visual order", len(text))
	for pos := 0; pos < len(text); {
		var c visualCluster
		pos = c.collect(text, pos)
		c.disambiguate()
		dst = c.appendTo(dst)
	}
	return dst
}

// visualCluster holds the glyph slots of a cluster. A slot holds a code-point
// sequence, possibly prefixed by marks.
type visualCluster struct {
	base              string
	robat             string
	shifter           string
	shifter1          string
	shifter2          string
	coeng1            string
	coeng2            string
	coengBefore       string // subscript RO, displayed left of the base
	vowelBefore       string
	vowelBelow        string
	vowelAbove        string
	vowelAfter        string
	signAbove         string
	signAfter         string
	reserved          string // code-point outside the cluster grammar
	coengPending      bool   // COENG seen, subscript consonant not yet
	shifterAfterCoeng bool
	special           bool // vowel rendered right after the base
}

// collect reads one cluster starting at pos and returns the position after it.
// At least one code-point is consumed.
func (c *visualCluster) collect(text []rune, pos int) int {
	var state int8
	for ; pos < len(text); pos++ {
		r := text[pos]
		cc := khmer.ClassForRune(r)
		if state = nextState(state, cc.Syllable()); state < 0 {
			break
		}
		c.place(r, cc)
	}
	return pos
}

func (c *visualCluster) place(r rune, cc khmer.CharClass) {
	g := string(r)
	switch cc {
	case khmer.KOther:
		c.reserved = g
	case khmer.KSignAbove:
		c.signAbove = g
	case khmer.KSignAfter:
		c.signAfter = g
	case khmer.KConsonant1, khmer.KConsonant2, khmer.KConsonant3:
		if !c.coengPending {
			c.base = g
			break
		}
		if c.coeng1 == "" {
			c.coeng1 = coeng + g
		} else {
			c.coeng2 = coeng + g
		}
		c.coengPending = false
	case khmer.KRobat:
		c.robat = g
	case khmer.KShifter:
		if c.coeng1 != "" {
			c.shifterAfterCoeng = true
		}
		c.shifter = g
	case khmer.KVowelBefore:
		c.vowelBefore = g
	case khmer.KVowelBelow:
		c.vowelBelow = g
	case khmer.KVowelAbove:
		c.vowelAbove = g
	case khmer.KVowelAfter:
		c.vowelAfter = g
	case khmer.KCoeng:
		c.coengPending = true
	case khmer.KSplitAbove:
		c.vowelBefore = sraE
		c.vowelAbove = string(khmer.SplitSraE(r))
	case khmer.KSplitAfter:
		c.vowelBefore = sraE
		c.vowelAfter = string(khmer.SplitSraE(r))
	}
}

// disambiguate marks glyphs for which a legacy font has positional variants
// and moves subscript RO before the base.
func (c *visualCluster) disambiguate() {
	switch {
	case c.coeng1 != "" && c.vowelBelow != "":
		c.vowelBelow = mark + c.vowelBelow
	case (c.base == la || c.base == nyo) && c.vowelBelow != "":
		c.vowelBelow = mark + c.vowelBelow
	case c.coeng1 != "" && c.vowelBefore != "" && c.vowelAfter != "":
		c.vowelAfter = mark + c.vowelAfter
	}
	switch {
	case c.coeng1 == coengRo:
		c.coengBefore, c.coeng1 = c.coeng1, ""
	case c.coeng2 == coengRo:
		c.coengBefore, c.coeng2 = mark+c.coeng2, ""
	}
	if c.coeng1 != "" || c.coeng2 != "" {
		if c.base == nyo {
			c.base = mark + c.base
			if c.coeng1 == coengNyo {
				c.coeng1 = mark + c.coeng1
			}
		}
		if c.coeng1 != "" && c.coeng2 != "" {
			c.coeng2 = mark + c.coeng2
		}
	}
	if c.base != "" && c.shifter != "" {
		switch {
		case c.vowelAbove != "" && c.base == ba && c.shifter == triisap:
			c.vowelAbove = mark + c.vowelAbove
		case c.vowelAbove != "":
			c.shifter = mark + c.shifter
		case c.signAbove == samyok && c.shifter == muusikatoan:
			c.shifter = mark + c.shifter
		case c.signAbove != "" && c.vowelAfter != "":
			c.shifter = mark + c.shifter
		case c.signAbove != "":
			c.signAbove = mark + c.signAbove
		}
		if c.coeng1 != "" && (c.vowelAbove != "" || c.signAbove != "") {
			c.shifter = mark + c.shifter
		}
		if c.base == la || c.base == nyo {
			c.shifter = mark + c.shifter
		}
	}
	if c.coengPending {
		if c.coeng1 == "" {
			c.coeng1 = coeng
		} else if c.coeng2 == "" {
			c.coeng2 = mark + coeng
		}
	}
	if c.shifterAfterCoeng {
		c.shifter2 = c.shifter
	} else {
		c.shifter1 = c.shifter
	}
	if c.base == ba {
		switch c.vowelAfter {
		case sraAA, sraAU, mark + sraAA, mark + sraAU:
			v := []rune(c.vowelAfter)
			c.vowelAfter = string(v[len(v)-1])
			c.special = true
			if k := []rune(c.coeng1); len(k) > 0 {
				switch k[len(k)-1] {
				case khmer.Ba, khmer.Yo, khmer.Sa:
					c.special = false
				}
			}
		}
	}
}

func (c *visualCluster) appendTo(dst []rune) []rune {
	dst = appendString(dst, c.vowelBefore)
	dst = appendString(dst, c.coengBefore)
	dst = appendString(dst, c.base)
	if c.special {
		dst = appendString(dst, c.vowelAfter)
	}
	dst = appendString(dst, c.robat)
	dst = appendString(dst, c.shifter1)
	dst = appendString(dst, c.coeng1)
	dst = appendString(dst, c.coeng2)
	dst = appendString(dst, c.shifter2)
	dst = appendString(dst, c.vowelBelow)
	dst = appendString(dst, c.vowelAbove)
	if !c.special {
		dst = appendString(dst, c.vowelAfter)
	}
	dst = appendString(dst, c.signAbove)
	dst = appendString(dst, c.signAfter)
	return appendString(dst, c.reserved)
}

func appendString(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst
}
