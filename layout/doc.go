/*
Package layout positions the glyphs of a bitmap font along a line of text.

Layout is left-to-right on a single line. For every code-point of the input,
the engine looks up the glyph, adds a kerning adjustment for the pair of the
previous and the current code-point (if kerning is enabled), narrows Katakana
and CJK ideographs to 2/3 of their width and emits a Placement: the glyph's
draw rectangle and its texture coordinates within the atlas page.
The pen then moves right by the glyph's advance. Kerning nudges the drawn
position of a glyph only; it never changes the pen advance, so the width of a
string does not depend on kerning.

Code-points without a glyph are skipped. The first time a code-point is found
to be missing, a diagnostic event is sent to the engine's Registry. Glyphs on
atlas pages without a texture are not drawn, but still occupy their advance.

Layout never fails: an unusable font yields an empty result.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.layout'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.layout")
}
