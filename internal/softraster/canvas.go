/*
Package softraster is a software rasterizer for text layouts. It paints the
quads of a layout onto an RGBA image, sampling glyph images from page alpha
masks. It is used for previews and tests, where no GPU is available.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package softraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/layout"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
)

// tracer writes to trace with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}

// MaskSource provides the alpha masks of atlas pages.
type MaskSource interface {
	Mask(h atlas.Handle) (*image.Alpha, bool)
}

// Canvas is an RGBA image text quads are drawn onto.
type Canvas struct {
	img   *image.RGBA
	masks MaskSource
	ink   image.Image
	count int
}

// NewCanvas creates a canvas of width × height pixels with background bg.
func NewCanvas(width, height int, masks MaskSource, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		img:   img,
		masks: masks,
		ink:   image.Black,
	}
}

// SetInk sets the text color.
func (c *Canvas) SetInk(ink color.Color) {
	c.ink = image.NewUniform(ink)
}

// Image returns the canvas image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Drawn returns the number of quads painted so far.
func (c *Canvas) Drawn() int {
	return c.count
}

// DrawQuads paints quads. Quads with a texture unknown to the mask source are
// skipped. Glyph images are scaled to the size of their quad.
func (c *Canvas) DrawQuads(quads []layout.Quad) {
	for _, q := range quads {
		mask, ok := c.masks.Mask(q.Texture)
		if !ok {
			tracer().Debugf("softraster: no mask for texture %d", q.Texture)
			continue
		}
		src := sourceRect(q.UV, mask.Bounds())
		dst := image.Rect(
			round(q.X), round(q.Y),
			round(q.X+q.Width), round(q.Y+q.Height),
		)
		if src.Empty() || dst.Empty() {
			continue
		}
		glyph := mask.SubImage(src)
		if dst.Dx() != src.Dx() || dst.Dy() != src.Dy() {
			scaled := image.NewAlpha(image.Rect(0, 0, dst.Dx(), dst.Dy()))
			draw.BiLinear.Scale(scaled, scaled.Bounds(), glyph, src, draw.Src, nil)
			glyph, src = scaled, scaled.Bounds()
		}
		draw.DrawMask(c.img, dst, c.ink, image.Point{}, glyph, src.Min, draw.Over)
		c.count++
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// sourceRect converts texture coordinates to pixels of a page.
func sourceRect(uv layout.Rect, page image.Rectangle) image.Rectangle {
	w, h := float32(page.Dx()), float32(page.Dy())
	r := image.Rect(
		round(uv.U0*w), round(uv.V0*h),
		round(uv.U1*w), round(uv.V1*h),
	)
	return r.Add(page.Min).Intersect(page)
}

func round(x float32) int {
	return int(math.Round(float64(x)))
}
