package bmfquery

import "github.com/npillmayer/bmfont/bmf"

// FontMetricsInfo contains selected metric information for a font, in pixels.
type FontMetricsInfo struct {
	Size             int // nominal size from the info block; 0 if absent
	LineHeight       int // distance between lines
	Ascent, Descent  int // above and below the baseline
	TextureDimension int // side length of atlas pages
	Pages            int // number of atlas pages
	Glyphs           int // number of glyphs
	KerningPairs     int // number of kerning pairs
	MaxAdvance       int // largest advance of any glyph
}

// GlyphMetricsInfo contains all metric information for a glyph, in pixels.
type GlyphMetricsInfo struct {
	CodePoint rune
	Advance   int         // advance width
	LSB, RSB  int         // side bearings
	BBox      BoundingBox // bounding box relative to the pen position, y downwards
	Page      int         // atlas page
	Atlas     BoundingBox // location on the atlas page
}

// BoundingBox describes a pixel rectangle.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// IsEmpty reports whether this box has zero area.
func (bbox BoundingBox) IsEmpty() bool {
	return bbox.MaxX-bbox.MinX == 0 || bbox.MaxY-bbox.MinY == 0
}

// Dx returns the horizontal extent of this box.
func (bbox BoundingBox) Dx() int {
	return bbox.MaxX - bbox.MinX
}

// Dy returns the vertical extent of this box.
func (bbox BoundingBox) Dy() int {
	return bbox.MaxY - bbox.MinY
}

// KerningInfo is a kerning pair with its adjustment.
type KerningInfo struct {
	bmf.KerningPair
	Amount int16
}
