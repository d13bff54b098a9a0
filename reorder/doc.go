/*
Package reorder converts Khmer clusters between logical and visual order.

Unicode stores a Khmer cluster in logical order; legacy fonts store the
glyphs of a cluster in the order they appear on screen. AppendLogical
reassembles logical order from a visually ordered code-point stream
(after legacy code units have been substituted by Unicode code-points),
AppendVisual renders logical clusters in visual order, tagging glyph
variants with khmer.Mark for the subsequent font substitution.

Both reorderers are total functions over arbitrary code-point sequences and
never fail. Code-points which are not Khmer terminate the current cluster
and pass through unaltered.

The visual reorderer segments input into clusters with a deterministic state
machine over syllable classes (see khmer.ClassForRune). The logical
reorderer collects the code-points of a cluster into slots, each slot
holding at most one glyph, and emits the slots in canonical order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package reorder

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
