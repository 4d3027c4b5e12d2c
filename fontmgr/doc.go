/*
Package fontmgr selects bitmap fonts by point size.

Bitmap fonts come in fixed pixel sizes. An application loads a small set of
fonts in different sizes, one per size tier, and asks the Manager for the font
best suited for a requested point size. Tiers are 10, 13, 18 and 24 points.

Which fonts populate the tiers depends on the user's language: CJK scripts
need fonts with different glyph repertoires and larger pixel sizes than Latin
scripts. LoadLanguageFonts selects a font set by language tag.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmgr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.fontmgr'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.fontmgr")
}
