/*
Package bmfquery answers questions about bitmap fonts: metrics, glyph
information, kerning pairs and coverage of texts.

Queries never modify a font. They are meant for tools and diagnostics; text
layout does not need them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.query'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.query")
}
