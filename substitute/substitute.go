/*
Package substitute replaces code-point sequences according to the tables of a
resolved legacy font.

Substitution is the second stage of Unicode → legacy conversion (after visual
reordering) and the first stage of legacy → Unicode conversion (before logical
reordering). It is a pure table-driven rewrite and knows nothing about Khmer
cluster structure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package substitute

import (
	"github.com/npillmayer/khmerlegacy/fontdata"
)

// ToUnicode replaces legacy code units by Unicode code-points.
func ToUnicode(text []rune, table *fontdata.LegacyTable) []rune {
	return AppendUnicode(make([]rune, 0, len(text)), text, table)
}

// AppendUnicode appends the Unicode substitution of legacy text to dst.
//
// At every position the multi-unit keys of the table are tried in order of
// registration, and the first matching key is replaced. Otherwise a single
// unit below 256 is replaced by its table entry, and any other unit is copied.
func AppendUnicode(dst, text []rune, table *fontdata.LegacyTable) []rune {
	for i := 0; i < len(text); {
		n, value := matchSequence(table, text[i:])
		if n > 0 {
			dst = appendString(dst, value)
			i += n
			continue
		}
		if s, ok := table.Single(text[i]); ok {
			dst = appendString(dst, s)
		} else {
			dst = append(dst, text[i])
		}
		i++
	}
	return dst
}

func matchSequence(table *fontdata.LegacyTable, text []rune) (n int, value string) {
	table.Sequences(func(key []rune, v string) bool {
		if hasPrefix(text, key) {
			n, value = len(key), v
			return false
		}
		return true
	})
	return
}

// ToLegacy replaces visually ordered Unicode by legacy code units.
func ToLegacy(text []rune, table *fontdata.UnicodeTable) []rune {
	return AppendLegacy(make([]rune, 0, len(text)), text, table)
}

// AppendLegacy appends the legacy substitution of visually ordered Unicode
// text to dst.
//
// At every position the longest registered key is replaced. A single
// code-point inside the table window is replaced by its table entry, which
// may be empty. Other code-points below U+007F are copied, all remaining
// code-points are dropped.
func AppendLegacy(dst, text []rune, table *fontdata.UnicodeTable) []rune {
	for i := 0; i < len(text); {
		if n, value := longestMatch(table, text[i:]); n > 0 {
			dst = appendString(dst, value)
			i += n
			continue
		}
		r := text[i]
		if s, ok := table.Single(r); ok {
			dst = appendString(dst, s)
		} else if r < 0x7F {
			dst = append(dst, r)
		} else {
			tracer().Debugf("no legacy glyph for %#U, dropped", r)
		}
		i++
	}
	return dst
}

func longestMatch(table *fontdata.UnicodeTable, text []rune) (int, string) {
	n := table.MaxKeyLen()
	if n > len(text) {
		n = len(text)
	}
	for ; n > 0; n-- {
		if v, ok := table.Lookup(text[:n]); ok {
			return n, v
		}
	}
	return 0, ""
}

func hasPrefix(text, prefix []rune) bool {
	if len(prefix) > len(text) {
		return false
	}
	for i, r := range prefix {
		if text[i] != r {
			return false
		}
	}
	return true
}

func appendString(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst
}
