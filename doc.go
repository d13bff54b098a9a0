/*
Package khmerlegacy converts Khmer text between legacy 8-bit font encodings
and Unicode.

Description

Before Unicode support for Khmer became widespread, Khmer documents were
typed using fonts which place Khmer glyphs on the code points of an 8-bit
character set (Limon, ABC, Baidok, and many more). Text typed in such a font
is a sequence of glyph codes, stored in the order the glyphs appear on
screen: a vowel sign displayed left of a consonant is typed, and stored,
before the consonant. Different glyph codes are used for different shapes of
the same letter, for example for a lowered vowel sign below a subscript.

Unicode encodes Khmer in logical order: a cluster starts with its base
consonant, followed by subscripts, shifters, vowels and signs. The rendering
engine of a Unicode font is responsible for ordering and shaping glyphs.

Converting between the two is therefore a two-stage process:

	legacy → Unicode:  substitute glyph codes  →  reorder to logical order
	Unicode → legacy:  reorder to visual order →  substitute glyph codes

Reordering is implemented in package reorder and is independent of any
particular font. Substitution is table-driven; the tables of a font are
read from an XML font description by package fontdata and applied by
package substitute.

Contents

Type Converter ties these packages together. It is created from a
FontMappingProvider, usually a *fontdata.Registry:

	registry, err := fontdata.LoadFile("fontdata.xml")
	…
	conv := khmerlegacy.NewConverter(registry)
	unicode, err := conv.LegacyToUnicode(legacyText, "Limon S1")

Converters cache resolved fonts and are safe for concurrent use.
For stream processing, Converter.Encoding returns an encoding.Encoding
(from golang.org/x/text/encoding) for a legacy font, translating between
bytes in the font's encoding and UTF-8.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package khmerlegacy

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
