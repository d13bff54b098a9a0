package fontdata

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/khmerlegacy/khmer"
)

// UnicodeWindow is the number of code-points, starting at U+1780, covered
// by the single-code-point table of a UnicodeTable.
const UnicodeWindow = 127

// LegacyTable holds the legacy → Unicode substitutions of a font.
type LegacyTable struct {
	single [256]string
	multi  *linkedhashmap.Map // string(key) → sequence
}

// sequence is a multi-unit legacy key and its replacement.
type sequence struct {
	key   []rune
	value string
}

func newLegacyTable() *LegacyTable {
	t := &LegacyTable{multi: linkedhashmap.New()}
	for i := range t.single {
		t.single[i] = string(rune(i))
	}
	return t
}

// Single returns the replacement for a single legacy code unit. Units not
// below 256 are not covered by the table and return false.
func (t *LegacyTable) Single(u rune) (string, bool) {
	if u < 0 || u >= rune(len(t.single)) {
		return "", false
	}
	return t.single[u], true
}

// Sequences calls f for every registered legacy key, in order of
// registration, until f returns false.
func (t *LegacyTable) Sequences(f func(key []rune, value string) bool) {
	it := t.multi.Iterator()
	for it.Next() {
		seq := it.Value().(sequence)
		if !f(seq.key, seq.value) {
			return
		}
	}
}

// SequenceCount returns the number of registered legacy keys.
func (t *LegacyTable) SequenceCount() int {
	return t.multi.Size()
}

// addSingle fills slot u if it still holds its identity mapping.
func (t *LegacyTable) addSingle(u rune, value string) {
	if t.single[u] == string(u) {
		t.single[u] = value
	}
}

// addSequence registers key unless it is already present or empty.
func (t *LegacyTable) addSequence(key []rune, value string) {
	if len(key) == 0 {
		return
	}
	k := string(key)
	if _, found := t.multi.Get(k); found {
		return
	}
	t.multi.Put(k, sequence{key: key, value: value})
}

func (t *LegacyTable) merge(rec *fontRecord) error {
	for _, m := range rec.Maps.Global {
		leg, err := decodeEntry(rec, m)
		if err != nil {
			return err
		}
		if len(leg) == 1 && leg[0] < 256 {
			t.addSingle(leg[0], m.Unicode)
		} else {
			t.addSequence(leg, m.Unicode)
		}
	}
	for _, m := range rec.Maps.ToUnicode {
		leg, err := decodeEntry(rec, m)
		if err != nil {
			return err
		}
		if len(leg) > 0 && len(leg) < 10 {
			t.addSequence(leg, m.Unicode)
		}
	}
	return nil
}

// UnicodeTable holds the Unicode → legacy substitutions of a font.
type UnicodeTable struct {
	single [UnicodeWindow]string
	multi  []map[string]string // multi[n-1] holds keys of n code-points
}

func newUnicodeTable() *UnicodeTable {
	return &UnicodeTable{}
}

// Single returns the legacy replacement for a code-point inside the single
// table window U+1780 … U+17FE. Code-points outside the window return false.
// An empty replacement drops the code-point.
func (t *UnicodeTable) Single(r rune) (string, bool) {
	i := r - khmer.BlockStart
	if i < 0 || i >= UnicodeWindow {
		return "", false
	}
	return t.single[i], true
}

// Lookup returns the legacy replacement of a multi-code-point key.
func (t *UnicodeTable) Lookup(key []rune) (string, bool) {
	n := len(key)
	if n == 0 || n > len(t.multi) || t.multi[n-1] == nil {
		return "", false
	}
	v, ok := t.multi[n-1][string(key)]
	return v, ok
}

// MaxKeyLen is the length of the longest registered key.
func (t *UnicodeTable) MaxKeyLen() int {
	return len(t.multi)
}

func (t *UnicodeTable) addSequence(key []rune, value string) {
	n := len(key)
	if n == 0 {
		return
	}
	for len(t.multi) < n {
		t.multi = append(t.multi, nil)
	}
	if t.multi[n-1] == nil {
		t.multi[n-1] = make(map[string]string)
	}
	k := string(key)
	if _, found := t.multi[n-1][k]; !found {
		t.multi[n-1][k] = value
	}
}

func (t *UnicodeTable) merge(rec *fontRecord) error {
	for _, m := range rec.Maps.Global {
		leg, err := decodeEntry(rec, m)
		if err != nil {
			return err
		}
		uni := []rune(m.Unicode)
		if len(uni) == 1 {
			if i := uni[0] - khmer.BlockStart; i >= 0 && i < UnicodeWindow {
				if t.single[i] == "" {
					t.single[i] = string(leg)
				}
				continue
			}
		}
		t.addSequence(uni, string(leg))
	}
	for _, m := range rec.Maps.FromUnicode {
		leg, err := decodeEntry(rec, m)
		if err != nil {
			return err
		}
		if uni := []rune(m.Unicode); len(uni) > 0 && len(uni) < 256 {
			t.addSequence(uni, string(leg))
		}
	}
	return nil
}

func decodeEntry(rec *fontRecord, m mapEntry) ([]rune, error) {
	leg, err := DecodeLegacy(m.Legacy)
	if err != nil {
		return nil, fmt.Errorf("%w: font type %s, legacy %q: %v", ErrMalformedEntry, rec.Type, m.Legacy, err)
	}
	return leg, nil
}
