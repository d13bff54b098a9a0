/*
Package fontdata reads legacy Khmer font descriptions and resolves them to
substitution tables.

Font descriptions are read from an XML document of the form

	<fonts>
	  <font type="abc" hidden="false" default="ABC-TEXT-05" inherit="base">
	    <aliases>
	      <alias name="ABC-TEXT-05"/>
	    </aliases>
	    <maps>
	      <global>
	        <map unicode="ក" legacy="6B"/>
	      </global>
	      <tounicode>
	        <map unicode="។" legacy="2E;2E"/>
	      </tounicode>
	      <fromunicode>
	        <map unicode="&#x17EA;ុ" legacy="55"/>
	      </fromunicode>
	    </maps>
	  </font>
	</fonts>

A font type may inherit from another font type declared earlier in the
document. Global maps are used for both directions of conversion,
tounicode maps only for legacy → Unicode, fromunicode maps only for
Unicode → legacy.

Legacy values are given either as a single literal character, as a single
hexadecimal code unit, or as a ';'-separated list of hexadecimal code units.
Legacy text is represented as a sequence of code units, each held in a rune
in the range 0…0xFFFF; for 8-bit fonts every unit is a byte value.

Font names are matched case-insensitively. Hidden font types are valid
ancestors but are not convertible by name.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontdata

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
