package khmerlegacy

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/khmerlegacy/fontdata"
	"github.com/npillmayer/khmerlegacy/khmer"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding returns an encoding.Encoding for a legacy font.
//
// The decoder reads bytes in the encoding of the font and produces UTF-8
// Unicode text, the encoder does the reverse. Legacy bytes map to code units
// one-to-one. Legacy code units which do not fit into a byte are written
// UTF-8 encoded.
//
// Khmer clusters do not span ASCII white-space, therefore both transformers
// process their input in chunks ending at white-space. Without white-space the
// encoder cuts Unicode input before the start of a cluster, the decoder holds
// back legacy input until white-space or EOF.
func (cv *Converter) Encoding(fontName string) (encoding.Encoding, error) {
	font, err := cv.font(fontName)
	if err != nil {
		return nil, err
	}
	if font == nil {
		return nil, fmt.Errorf("%w: %q", fontdata.ErrUnknownFont, fontName)
	}
	return &legacyEncoding{cv: cv, fontName: fontName}, nil
}

type legacyEncoding struct {
	cv       *Converter
	fontName string
}

var _ encoding.Encoding = &legacyEncoding{}

func (enc *legacyEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &chunkTransformer{convert: enc.decode}}
}

func (enc *legacyEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &chunkTransformer{convert: enc.encode, cut: clusterCut}}
}

func (enc *legacyEncoding) String() string {
	return "Khmer legacy " + enc.fontName
}

func (enc *legacyEncoding) decode(src []byte) ([]byte, error) {
	units := make([]rune, len(src))
	// Latin-1: byte b is legacy code unit b
	for i, b := range src {
		units[i] = charmap.ISO8859_1.DecodeByte(b)
	}
	s, err := enc.cv.LegacyToUnicode(string(units), enc.fontName)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (enc *legacyEncoding) encode(src []byte) ([]byte, error) {
	s, err := enc.cv.UnicodeToLegacy(string(src), enc.fontName)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(s))
	for _, u := range s {
		if b, ok := charmap.ISO8859_1.EncodeRune(u); ok {
			out = append(out, b)
		} else {
			out = utf8.AppendRune(out, u)
		}
	}
	return out, nil
}

// chunkTransformer applies a conversion to chunks of input ending at
// white-space, or at a position found by cut. Input is held back until a
// chunk is complete, output until dst has room for it.
type chunkTransformer struct {
	convert func([]byte) ([]byte, error)
	cut     func([]byte) int // optional; length of a convertible prefix, or 0
	pending []byte           // input not yet converted
	out     []byte           // output not yet written
}

const whitespace = " \t\r\n\f\v"

func (t *chunkTransformer) Reset() {
	t.pending = t.pending[:0]
	t.out = t.out[:0]
}

func (t *chunkTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	t.pending = append(t.pending, src...)
	nSrc = len(src)
	for {
		n := copy(dst[nDst:], t.out)
		nDst += n
		t.out = t.out[:copy(t.out, t.out[n:])]
		if len(t.out) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		if n = t.chunk(atEOF); n == 0 {
			return nDst, nSrc, nil
		}
		out, cerr := t.convert(t.pending[:n])
		if cerr != nil {
			return nDst, nSrc, cerr
		}
		t.out = append(t.out, out...)
		t.pending = t.pending[:copy(t.pending, t.pending[n:])]
	}
}

// chunk returns the length of the next chunk of pending input to convert.
func (t *chunkTransformer) chunk(atEOF bool) int {
	if atEOF {
		return len(t.pending)
	}
	if n := bytes.LastIndexAny(t.pending, whitespace) + 1; n > 0 {
		return n
	}
	if t.cut != nil {
		return t.cut(t.pending)
	}
	return 0
}

// clusterCut returns the length of the longest prefix of UTF-8 text which
// ends right before the start of a Khmer cluster, or 0. Clusters start at a
// consonant not preceded by COENG, or at a code-point outside the cluster
// grammar.
func clusterCut(text []byte) int {
	for end := len(text); end > 0; {
		r, size := utf8.DecodeLastRune(text[:end])
		start := end - size
		if r != utf8.RuneError && start > 0 && startsCluster(r) {
			if prev, _ := utf8.DecodeLastRune(text[:start]); prev != khmer.Coeng {
				return start
			}
		}
		end = start
	}
	return 0
}

func startsCluster(r rune) bool {
	switch khmer.ClassForRune(r).Syllable() {
	case khmer.ClassReserved, khmer.ClassConsonant, khmer.ClassConsonant2, khmer.ClassConsonant3:
		return true
	}
	return false
}
