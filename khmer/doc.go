/*
Package khmer classifies Khmer code-points for cluster reordering.

Khmer text is stored in logical order: a base consonant first, followed by
its combining marks (coeng subscripts, shifters, vowels, signs, robat).
Legacy 8-bit Khmer fonts instead store glyphs in visual order. Converting
between the two requires knowing the syllable role of every code-point, and
this package provides two independent classification schemes for the two
directions of conversion:

▪︎ FlagsForRune returns bit-flags used when reassembling logical order from a
visually ordered stream (legacy → Unicode).

▪︎ ClassForRune returns a syllable class plus position flags, used by the
cluster state machine rendering logical clusters in visual order
(Unicode → legacy).

Both functions are total: any code-point outside the classification tables,
including all of ASCII, yields the zero class. This is how non-Khmer text
passes through the reorderers unaltered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package khmer
