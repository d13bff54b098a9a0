package fontdata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUnknownFont is returned when a font name is not registered or denotes
// a hidden font type.
var ErrUnknownFont = errors.New("unknown font")

// ErrMalformedEntry is returned when a map entry of a font description
// cannot be decoded.
var ErrMalformedEntry = errors.New("malformed font map entry")

// ErrMalformedDocument is returned when a font description document cannot
// be parsed.
var ErrMalformedDocument = errors.New("malformed font description")

// Registry holds the font descriptions of a document. A Registry is
// immutable after loading and safe for concurrent use.
type Registry struct {
	records map[string]*fontRecord // font type → record
	parents map[string]string      // font type → parent font type
	names   map[string]string      // lowercased font name → font type
}

// Font is a font type resolved to its substitution tables, merged over all
// of its ancestors.
type Font struct {
	Type        string        // font type, lowercased
	DefaultName string        // display name of the font type
	Legacy      *LegacyTable  // legacy → Unicode
	Unicode     *UnicodeTable // Unicode → legacy
}

// Load reads font descriptions from an XML document.
//
// The first description of a font type wins. An inherit attribute is honoured
// only if the parent type has been declared earlier in the document.
func Load(r io.Reader) (*Registry, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	reg := &Registry{
		records: make(map[string]*fontRecord),
		parents: make(map[string]string),
		names:   make(map[string]string),
	}
	for i := range doc.Fonts {
		rec := &doc.Fonts[i]
		fonttype := strings.ToLower(strings.TrimSpace(rec.Type))
		if fonttype == "" {
			return nil, fmt.Errorf("%w: font #%d has no type", ErrMalformedDocument, i+1)
		}
		if _, found := reg.records[fonttype]; found {
			tracer().Debugf("font type %s declared twice, keeping first", fonttype)
			continue
		}
		rec.Type = fonttype
		if inherit := strings.ToLower(strings.TrimSpace(rec.Inherit)); inherit != "" {
			if _, found := reg.records[inherit]; found {
				reg.parents[fonttype] = inherit
			} else {
				tracer().Infof("font type %s inherits from undeclared type %s, ignored", fonttype, inherit)
			}
		}
		reg.records[fonttype] = rec
		if rec.isHidden() {
			continue
		}
		reg.names[fonttype] = fonttype
		for _, a := range rec.Aliases {
			if name := strings.ToLower(a.Name); name != "" {
				reg.names[name] = fonttype
			}
		}
	}
	tracer().Debugf("loaded %d font types, %d font names", len(reg.records), len(reg.names))
	return reg, nil
}

// LoadFile reads font descriptions from an XML file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// FontType returns the font type a font name is registered for.
// Names are matched case-insensitively.
func (reg *Registry) FontType(name string) (string, bool) {
	fonttype, ok := reg.names[strings.ToLower(name)]
	return fonttype, ok
}

// IsConvertible reports whether a font name is registered.
func (reg *Registry) IsConvertible(name string) bool {
	_, ok := reg.FontType(name)
	return ok
}

// DefaultFont returns the display name of a font type. If the type is unknown
// or declares no default name, the type itself is returned.
func (reg *Registry) DefaultFont(fonttype string) string {
	if rec, found := reg.records[fonttype]; found && rec.Default != "" {
		return rec.Default
	}
	return fonttype
}

// FontTypes returns the sorted list of convertible font types.
func (reg *Registry) FontTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, fonttype := range reg.names {
		if !seen[fonttype] {
			seen[fonttype] = true
			types = append(types, fonttype)
		}
	}
	sort.Strings(types)
	return types
}

// FontNames returns the sorted list of alias names registered for a font type.
func (reg *Registry) FontNames(fonttype string) []string {
	var names []string
	for name, t := range reg.names {
		if t == fonttype && name != fonttype {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Ancestry returns the inheritance chain of a font type, from its root
// ancestor down to the font type itself.
func (reg *Registry) Ancestry(fonttype string) []string {
	var chain []string
	seen := make(map[string]bool)
	for t, ok := fonttype, true; ok && !seen[t]; t, ok = reg.parents[t] {
		seen[t] = true
		chain = append(chain, t)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Resolve builds the substitution tables for a font name.
//
// Tables are merged ancestor first. For single-unit slots an ancestor's
// mapping takes precedence over a descendant's; for multi-unit keys the first
// registration wins. Resolve returns ErrUnknownFont for unregistered names.
func (reg *Registry) Resolve(name string) (*Font, error) {
	fonttype, ok := reg.FontType(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	font := &Font{
		Type:        fonttype,
		DefaultName: reg.DefaultFont(fonttype),
		Legacy:      newLegacyTable(),
		Unicode:     newUnicodeTable(),
	}
	for _, t := range reg.Ancestry(fonttype) {
		rec := reg.records[t]
		if err := font.Legacy.merge(rec); err != nil {
			return nil, err
		}
		if err := font.Unicode.merge(rec); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("resolved font %q to type %s with %d legacy sequences", name, fonttype,
		font.Legacy.SequenceCount())
	return font, nil
}
