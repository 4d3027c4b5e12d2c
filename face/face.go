/*
Package face adapts bitmap fonts to the font.Face interface of
golang.org/x/image/font.

A Face draws glyphs with their raw metrics from the font file: CJK narrowing,
as done by package layout, is not applied. font.Drawer adds kerning to the
pen position, whereas package layout shifts glyphs only. Clients who need
results identical to the layout engine should use a bmfont.Renderer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package face

import (
	"image"

	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/bmf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MaskSource provides the alpha masks of atlas pages. *atlas.ImageLoader
// implements it.
type MaskSource interface {
	Mask(h atlas.Handle) (*image.Alpha, bool)
}

// Face is a font.Face for a bitmap font.
type Face struct {
	font    *bmf.Font
	binding *atlas.Binding
	masks   MaskSource
}

var _ font.Face = (*Face)(nil)

var empty = image.NewAlpha(image.Rectangle{})

// New creates a face for font f. Glyph images are taken from the masks of the
// textures binding assigns to f's pages.
func New(f *bmf.Font, binding *atlas.Binding, masks MaskSource) *Face {
	return &Face{font: f, binding: binding, masks: masks}
}

// Close is a no-op. Page masks are owned by the mask source.
func (face *Face) Close() error {
	return nil
}

// Glyph returns the draw rectangle and mask for r, positioned at dot on the
// baseline. Glyphs on pages without a mask have an empty draw rectangle, but
// are advanced over.
func (face *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	g, ok := face.font.Glyph(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	advance = fixed.I(int(g.XAdvance))
	alpha, found := face.pageMask(g.Page)
	if !found {
		return image.Rectangle{}, empty, image.Point{}, advance, true
	}
	x := dot.X.Round() + int(g.XOffset)
	y := dot.Y.Round() - face.font.Baseline() + int(g.YOffset)
	dr = image.Rect(x, y, x+int(g.Width), y+int(g.Height))
	maskp = image.Pt(int(g.X), int(g.Y))
	return dr, alpha, maskp, advance, true
}

func (face *Face) pageMask(page uint8) (*image.Alpha, bool) {
	if face.masks == nil {
		return nil, false
	}
	h, ok := face.binding.Texture(int(page))
	if !ok {
		return nil, false
	}
	return face.masks.Mask(h)
}

// GlyphBounds returns the bounding box of r relative to the dot, and its
// advance.
func (face *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := face.font.Glyph(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	x := int(g.XOffset)
	y := int(g.YOffset) - face.font.Baseline()
	bounds = fixed.R(x, y, x+int(g.Width), y+int(g.Height))
	return bounds, fixed.I(int(g.XAdvance)), true
}

// GlyphAdvance returns the advance width of r.
func (face *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, ok := face.font.Glyph(r)
	if !ok {
		return 0, false
	}
	return fixed.I(int(g.XAdvance)), true
}

// Kern returns the kerning adjustment for r1 following r0.
func (face *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return fixed.I(int(face.font.Kern(r0, r1)))
}

// Metrics returns the line metrics of the font. Bitmap fonts carry neither
// x-height nor cap-height; they are taken from the glyphs for 'x' and 'H', if
// present.
func (face *Face) Metrics() font.Metrics {
	m := font.Metrics{
		Height:     fixed.I(face.font.LineHeight()),
		Ascent:     fixed.I(face.font.Baseline()),
		Descent:    fixed.I(face.font.LineHeight() - face.font.Baseline()),
		CaretSlope: image.Pt(0, 1),
	}
	if info := face.font.Info; info != nil && info.BitField&bmf.InfoItalic != 0 {
		m.CaretSlope = image.Pt(1, 4)
	}
	if g, ok := face.font.Glyph('x'); ok {
		m.XHeight = fixed.I(int(g.Height))
	}
	if g, ok := face.font.Glyph('H'); ok {
		m.CapHeight = fixed.I(int(g.Height))
	}
	return m
}
