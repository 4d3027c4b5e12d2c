/*
Package bmfont is for bitmap fonts in the binary format of AngelCode's BMFont
tool.

We will stick to the following definitions:

▪︎ A "font" is a decoded font file: metrics for every glyph, kerning pairs
and the filenames of the atlas pages holding the glyph images. Package bmf
decodes fonts.

▪︎ A "page" is a square texture image with glyph bitmaps. Package atlas
binds pages to textures of a rendering backend.

▪︎ A "renderer" is a font bound to its pages, ready to draw text. A
renderer hands textured quads to a Rasterizer, which is supplied by the
client. Package layout computes the quads.

Applications working with fonts in several sizes should consult package
fontmgr, which selects a renderer by point size.

# Status

Bitmap fonts have fixed pixel sizes. Scaling, vertical layout and line
breaking are not supported.

# Links

BMFont file format:
https://www.angelcode.com/products/bmfont/doc/file_format.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfont

import (
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}

// LoadFont loads a binary BMFont file. If a custom kerning file with the same
// base name and extension ".kern" exists next to it, its entries are merged
// into the font's kerning table, overriding pairs from the font file.
func LoadFont(path string) (*bmf.Font, error) {
	f, err := fontload.LoadFont(path)
	if err != nil {
		return nil, err
	}
	if err := mergeKerningFile(f, fontload.KernFileFor(path)); err != nil {
		// a broken kerning file does not spoil the font
		tracer().Errorf("%v", err)
	}
	if !f.IsUsable() {
		tracer().Infof("font %s has no glyphs", path)
	}
	return f, nil
}

func mergeKerningFile(f *bmf.Font, path string) error {
	pairs, err := fontload.LoadKerning(path)
	if err != nil || len(pairs) == 0 {
		return err
	}
	f.AddKerning(pairs)
	tracer().Infof("added %d custom kerning pairs to font %q", len(pairs), f.Name())
	return nil
}
