package layout

import (
	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/bmf"
)

// Rect is a rectangle of texture coordinates, ranging from 0 to 1 across an
// atlas page.
type Rect struct {
	U0, V0 float32 // top left
	U1, V1 float32 // bottom right
}

// Placement is the position of one glyph within a line of text.
type Placement struct {
	Glyph   bmf.Glyph    // glyph metrics, from the font
	Index   int          // index of the glyph's code-point in the input
	PenX    float32      // pen position before the glyph has been advanced
	PenY    float32      // vertical pen position, i.e. the top of the line
	X, Y    float32      // top left corner of the drawn glyph
	Width   float32      // drawn width, after width scaling
	Height  float32      // drawn height
	Kern    int16        // kerning adjustment applied to X
	Scale   float32      // width scale
	UV      Rect         // texture coordinates within the atlas page
	Texture atlas.Handle // texture of the atlas page
}

// Result is the outcome of laying out a string: one placement per drawn glyph
// and the pixel width of the string. Results are not retained by the engine.
type Result struct {
	Placements []Placement
	Width      float32
}

// Quad describes one textured rectangle to be drawn by a rasterizer.
type Quad struct {
	X, Y          float32 // top left corner
	Width, Height float32
	UV            Rect
	Texture       atlas.Handle
}

// Quad returns the rasterizer-facing description of a placement.
func (p Placement) Quad() Quad {
	return Quad{
		X:       p.X,
		Y:       p.Y,
		Width:   p.Width,
		Height:  p.Height,
		UV:      p.UV,
		Texture: p.Texture,
	}
}

// Quads returns one quad per placement.
func (r Result) Quads() []Quad {
	if len(r.Placements) == 0 {
		return nil
	}
	quads := make([]Quad, len(r.Placements))
	for i, p := range r.Placements {
		quads[i] = p.Quad()
	}
	return quads
}

// IsEmpty reports whether the result contains no placements.
func (r Result) IsEmpty() bool {
	return len(r.Placements) == 0
}
