package layout

// Tracking is the default multiplier applied to every pen advance.
const Tracking float32 = 1.0

// narrowScale is the width scale for Katakana and CJK ideographs, which are
// narrowed for visual balance against Latin text.
const narrowScale float32 = 2.0 / 3.0

// WidthScale returns the factor by which the width and advance of the glyph
// for r are scaled.
func WidthScale(r rune) float32 {
	if isKatakana(r) || isCJKIdeograph(r) {
		return narrowScale
	}
	return 1
}

// Katakana block U+30A0–U+30FF.
func isKatakana(r rune) bool {
	return r >= 0x30a0 && r <= 0x30ff
}

// CJK Unified Ideographs block U+4E00–U+9FFF.
func isCJKIdeograph(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}

// Skipped reports code-points which never produce a glyph nor advance the pen:
// byte order mark, carriage return and line feed.
func Skipped(r rune) bool {
	return r == 0xfeff || r == '\r' || r == '\n'
}
