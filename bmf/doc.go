/*
Package bmf provides access to bitmap fonts in the binary BMFont format
(version 3), as written by AngelCode's BMFont tool and compatible exporters.
Intended audience for this package are:

▪︎ text renderers drawing glyphs as textured quads from pre-rasterized atlas pages

▪︎ tools wanting to inspect the metrics, pages and kerning pairs of a bitmap font

A binary BMFont file is a 4-byte header ('B','M','F',3) followed by typed
blocks. Every block is framed as

	[1 byte type][4 byte little-endian size][size bytes payload]

and the format defines five of them: info, common, pages, chars and kerning.
Package `bmf` reads the blocks, decodes their fixed-size records field by field
(no in-memory struct layout is assumed) and builds two lookup structures: a
sparse glyph table keyed by code-point and a kerning table keyed by ordered
pairs of code-points.

Package `bmf` will not lay out text. Clients consult the tables themselves or
use the sister package `layout`.

Fonts in the wild are not always well-formed. A payload which is not a multiple
of its record size, a non-square atlas or a glyph referencing a page which does
not exist do not prevent the font from being used. These issues are collected
during parsing and may be inspected with Font.Errors and Font.Warnings.
Only a wrong header or a truncated stream will make Parse fail.

# Links

BMFont file format:
http://www.angelcode.com/products/bmfont/doc/file_format.html

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.bmf'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.bmf")
}
