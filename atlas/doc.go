/*
Package atlas binds the pages of a bitmap font to textures.

A BMFont font references its glyph images by page index. The pages block
of a font file lists one image filename per page. Package atlas resolves these
filenames through a Loader, which is usually supplied by a rendering backend,
and keeps a table from page index to the resulting texture handle. Package
atlas never touches a GPU: handles are opaque to it.

Pages which could not be loaded remain unbound. Text layout will not draw
glyphs on unbound pages, but will still advance the pen for them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package atlas

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.atlas'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.atlas")
}
