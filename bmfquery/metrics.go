package bmfquery

import (
	"strconv"

	"github.com/npillmayer/bmfont/bmf"
)

// --- Font Information -------------------------------------------------

// NameInfo returns information from the info block of a font, keyed by
// "family", "size", "style", "charset" and "stretch". Keys for which the font
// has no information are missing.
func NameInfo(f *bmf.Font) map[string]string {
	names := make(map[string]string)
	if f == nil {
		return names
	}
	info := f.Info
	if info == nil {
		return names
	}
	if info.FontName != "" {
		names["family"] = info.FontName
	}
	names["size"] = itoa(abs(int(info.FontSize)))
	switch info.BitField & (bmf.InfoBold | bmf.InfoItalic) {
	case bmf.InfoBold | bmf.InfoItalic:
		names["style"] = "bold italic"
	case bmf.InfoBold:
		names["style"] = "bold"
	case bmf.InfoItalic:
		names["style"] = "italic"
	default:
		names["style"] = "regular"
	}
	if info.BitField&bmf.InfoUnicode != 0 {
		names["charset"] = "unicode"
	} else {
		names["charset"] = itoa(int(info.CharSet))
	}
	names["stretch"] = itoa(int(info.StretchH)) + "%"
	return names
}

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(f *bmf.Font) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if f == nil {
		return metrics
	}
	if info := f.Info; info != nil {
		metrics.Size = abs(int(info.FontSize))
	}
	metrics.LineHeight = f.LineHeight()
	metrics.Ascent = f.Baseline()
	metrics.Descent = f.LineHeight() - f.Baseline()
	metrics.TextureDimension = f.TextureDimension()
	metrics.Pages = len(f.Pages)
	metrics.Glyphs = f.Glyphs.Len()
	metrics.KerningPairs = f.Kerning.Len()
	for _, g := range f.Glyphs.All() {
		if int(g.XAdvance) > metrics.MaxAdvance {
			metrics.MaxAdvance = int(g.XAdvance)
		}
	}
	tracer().Debugf("metrics of font %q: %+v", f.Name(), metrics)
	return metrics
}

// GlyphMetrics retrieves metrics for the glyph of code-point r. If the font
// has no glyph for r, false is returned.
func GlyphMetrics(f *bmf.Font, r rune) (GlyphMetricsInfo, bool) {
	g, ok := f.Glyph(r)
	if !ok {
		return GlyphMetricsInfo{}, false
	}
	gm := GlyphMetricsInfo{
		CodePoint: r,
		Advance:   int(g.XAdvance),
		LSB:       int(g.XOffset),
		RSB:       int(g.XAdvance) - int(g.XOffset) - int(g.Width),
		Page:      int(g.Page),
	}
	gm.BBox = BoundingBox{
		MinX: int(g.XOffset),
		MinY: int(g.YOffset),
		MaxX: int(g.XOffset) + int(g.Width),
		MaxY: int(g.YOffset) + int(g.Height),
	}
	gm.Atlas = BoundingBox{
		MinX: int(g.X),
		MinY: int(g.Y),
		MaxX: int(g.X) + int(g.Width),
		MaxY: int(g.Y) + int(g.Height),
	}
	return gm, true
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
