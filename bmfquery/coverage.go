package bmfquery

import (
	"slices"

	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/layout"
)

// CodePoints returns the code-points a font has glyphs for, in ascending order.
func CodePoints(f *bmf.Font) []rune {
	if f == nil {
		return nil
	}
	return f.Glyphs.CodePoints()
}

// UnusableGlyphs returns the code-points of glyphs which reference a page the
// font does not list. Layout will never draw these glyphs.
func UnusableGlyphs(f *bmf.Font) []rune {
	if f == nil {
		return nil
	}
	var unusable []rune
	for r, g := range f.Glyphs.All() {
		if !f.HasPage(int(g.Page)) {
			unusable = append(unusable, r)
		}
	}
	return unusable
}

// MissingCodePoints returns the distinct code-points of text a font has no
// glyph for, in order of first occurrence. Characters skipped by layout
// (byte order mark, carriage return, line feed) are not reported.
func MissingCodePoints(f *bmf.Font, text string) []rune {
	var missing []rune
	for _, r := range text {
		if layout.Skipped(r) {
			continue
		}
		if _, ok := f.Glyph(r); ok || slices.Contains(missing, r) {
			continue
		}
		missing = append(missing, r)
	}
	if len(missing) > 0 {
		tracer().Debugf("font %q is missing %d code-points", f.Name(), len(missing))
	}
	return missing
}

// KerningPairs lists kerning pairs of a font, ordered by pair. first and
// second filter the pairs; a value of 0 matches every code-point.
func KerningPairs(f *bmf.Font, first, second rune) []KerningInfo {
	if f == nil {
		return nil
	}
	var pairs []KerningInfo
	for pair, amount := range f.Kerning.All() {
		if first != 0 && pair.First != first {
			continue
		}
		if second != 0 && pair.Second != second {
			continue
		}
		pairs = append(pairs, KerningInfo{KerningPair: pair, Amount: amount})
	}
	return pairs
}
