package khmerlegacy

import (
	"errors"
	"time"

	"github.com/npillmayer/khmerlegacy/fontdata"
	"github.com/npillmayer/khmerlegacy/reorder"
	"github.com/npillmayer/khmerlegacy/substitute"
	"github.com/patrickmn/go-cache"
)

// FontMappingProvider resolves font names to substitution tables.
// *fontdata.Registry implements it.
type FontMappingProvider interface {
	// FontType returns the font type of a font name, or false if the name is
	// not convertible.
	FontType(name string) (string, bool)
	// Resolve builds the tables for a font name.
	Resolve(name string) (*fontdata.Font, error)
}

// Converter converts Khmer text between legacy font encodings and Unicode.
// A Converter is safe for concurrent use.
type Converter struct {
	provider   FontMappingProvider
	expiration time.Duration
	fonts      *cache.Cache // font type → *fontdata.Font
}

// Option configures a Converter.
type Option func(*Converter)

// WithCacheExpiration lets resolved fonts expire from the converter's cache
// after d. By default resolved fonts are kept for the lifetime of the
// converter.
func WithCacheExpiration(d time.Duration) Option {
	return func(cv *Converter) {
		cv.expiration = d
	}
}

// NewConverter creates a converter for the fonts of a provider.
func NewConverter(provider FontMappingProvider, opts ...Option) *Converter {
	cv := &Converter{
		provider:   provider,
		expiration: cache.NoExpiration,
	}
	for _, opt := range opts {
		opt(cv)
	}
	cleanup := time.Duration(0)
	if cv.expiration > 0 {
		cleanup = cv.expiration
	}
	cv.fonts = cache.New(cv.expiration, cleanup)
	return cv
}

// IsConvertible reports whether text in a font can be converted.
func (cv *Converter) IsConvertible(fontName string) bool {
	_, ok := cv.provider.FontType(fontName)
	return ok
}

// LegacyToUnicode converts text typed in a legacy font to Unicode.
//
// Legacy text is a string of legacy code units, one rune per unit. If the font
// is not convertible, no substitution is performed and only the Khmer
// clusters of text are reordered. The returned error is non-nil only if a
// known font fails to resolve.
func (cv *Converter) LegacyToUnicode(text, fontName string) (string, error) {
	font, err := cv.font(fontName)
	if err != nil {
		return "", err
	}
	ws := borrowWorkspace()
	defer ws.release()
	ws.input = append(ws.input, []rune(text)...)
	src := ws.input
	if font != nil {
		ws.middle = substitute.AppendUnicode(ws.middle, ws.input, font.Legacy)
		src = ws.middle
	}
	ws.output = reorder.AppendLogical(ws.output, src)
	return string(ws.output), nil
}

// UnicodeToLegacy converts Unicode text to the encoding of a legacy font.
//
// The result is a string of legacy code units, one rune per unit. If the font
// is not convertible, the result is empty. The returned error is non-nil only
// if a known font fails to resolve.
func (cv *Converter) UnicodeToLegacy(text, fontName string) (string, error) {
	font, err := cv.font(fontName)
	if err != nil || font == nil {
		return "", err
	}
	ws := borrowWorkspace()
	defer ws.release()
	ws.input = append(ws.input, []rune(text)...)
	ws.middle = reorder.AppendVisual(ws.middle, ws.input)
	ws.output = substitute.AppendLegacy(ws.output, ws.middle, font.Unicode)
	return string(ws.output), nil
}

// DefaultFont returns the display name of the font type a font name
// belongs to, or false if the name is not convertible.
func (cv *Converter) DefaultFont(fontName string) (string, bool) {
	font, err := cv.font(fontName)
	if err != nil || font == nil {
		return "", false
	}
	return font.DefaultName, true
}

// font returns the resolved font for a name, or nil if the name is not
// convertible.
func (cv *Converter) font(name string) (*fontdata.Font, error) {
	fonttype, ok := cv.provider.FontType(name)
	if !ok {
		CT().Debugf("font %q is not convertible", name)
		return nil, nil
	}
	if f, found := cv.fonts.Get(fonttype); found {
		return f.(*fontdata.Font), nil
	}
	f, err := cv.provider.Resolve(name)
	if err != nil {
		if errors.Is(err, fontdata.ErrUnknownFont) {
			return nil, nil
		}
		CT().Errorf("cannot resolve font %q: %v", name, err)
		return nil, err
	}
	cv.fonts.Set(fonttype, f, cache.DefaultExpiration)
	CT().Infof("font type %s loaded for font %q", fonttype, name)
	return f, nil
}
