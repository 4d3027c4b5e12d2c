package bmf

import (
	"iter"
	"slices"
)

// Glyph holds the metrics and atlas location of one code-point, as stored in
// a char record of the chars block.
type Glyph struct {
	ID       rune   // code-point
	X, Y     uint16 // top left corner of the glyph's image within its atlas page
	Width    uint16 // width of the glyph's image
	Height   uint16 // height of the glyph's image
	XOffset  int16  // horizontal offset from the pen position when drawing
	YOffset  int16  // vertical offset from the top of the line when drawing
	XAdvance int16  // pen advance after drawing the glyph
	Page     uint8  // index of the atlas page
	Channel  uint8  // texture channel(s) containing the glyph's image
}

// charRecordSize is the size of a char record in bytes.
const charRecordSize = 20

// decodeGlyph decodes a char record. b must have at least charRecordSize bytes.
func decodeGlyph(b binarySegm) Glyph {
	return Glyph{
		ID:       rune(b.u32(0)),
		X:        b.u16(4),
		Y:        b.u16(6),
		Width:    b.u16(8),
		Height:   b.u16(10),
		XOffset:  b.i16(12),
		YOffset:  b.i16(14),
		XAdvance: b.i16(16),
		Page:     b.u8(18),
		Channel:  b.u8(19),
	}
}

// GlyphTable is a sparse map from code-points to glyphs.
// It is built by the parser and must be treated as read-only afterwards.
type GlyphTable struct {
	glyphs map[rune]Glyph
}

func newGlyphTable(capacity int) *GlyphTable {
	return &GlyphTable{glyphs: make(map[rune]Glyph, capacity)}
}

// insert stores g under its ID. Later insertions overwrite earlier ones.
func (gt *GlyphTable) insert(g Glyph) {
	gt.glyphs[g.ID] = g
}

// Lookup returns the glyph for code-point r.
func (gt *GlyphTable) Lookup(r rune) (Glyph, bool) {
	if gt == nil {
		return Glyph{}, false
	}
	g, ok := gt.glyphs[r]
	return g, ok
}

// Len returns the number of glyphs in the table.
func (gt *GlyphTable) Len() int {
	if gt == nil {
		return 0
	}
	return len(gt.glyphs)
}

// IsEmpty reports whether the table contains no glyphs at all.
func (gt *GlyphTable) IsEmpty() bool {
	return gt.Len() == 0
}

// CodePoints returns the code-points of the table in ascending order.
func (gt *GlyphTable) CodePoints() []rune {
	if gt == nil {
		return nil
	}
	cps := make([]rune, 0, len(gt.glyphs))
	for r := range gt.glyphs {
		cps = append(cps, r)
	}
	slices.Sort(cps)
	return cps
}

// All yields all glyphs of the table, ordered by code-point.
func (gt *GlyphTable) All() iter.Seq2[rune, Glyph] {
	return func(yield func(rune, Glyph) bool) {
		for _, r := range gt.CodePoints() {
			if !yield(r, gt.glyphs[r]) {
				return
			}
		}
	}
}
