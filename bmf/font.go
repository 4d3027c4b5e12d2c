package bmf

// Font is the decoded content of a BMFont binary file.
// It is created by Parse and must be treated as read-only afterwards, with the
// exception of AddKerning, which clients may call before handing the font to
// a renderer.
type Font struct {
	Info          *InfoBlock    // nil if the font has no usable info block
	Common        CommonBlock   // line metrics and atlas dimensions
	Pages         []string      // page image filenames; index = page index
	Glyphs        *GlyphTable   // code-point → glyph
	Kerning       *KerningTable // (previous, current) → adjustment
	parseErrors   []FontError   // Errors accumulated during parsing
	parseWarnings []FontWarning // Warnings accumulated during parsing
}

// InfoBlock holds information on how the font was generated.
type InfoBlock struct {
	FontSize     int16 // negative values signal a size given in pixels matching cell height
	BitField     uint8 // bit 0: smooth, 1: unicode, 2: italic, 3: bold, 4: fixedHeight
	CharSet      uint8
	StretchH     uint16 // font height stretch in percent
	AA           uint8  // supersampling level
	PaddingUp    uint8
	PaddingRight uint8
	PaddingDown  uint8
	PaddingLeft  uint8
	SpacingHoriz uint8
	SpacingVert  uint8
	Outline      uint8
	FontName     string
}

const infoFixedSize = 14

// Flags of InfoBlock.BitField.
const (
	InfoSmooth      uint8 = 1 << 0
	InfoUnicode     uint8 = 1 << 1
	InfoItalic      uint8 = 1 << 2
	InfoBold        uint8 = 1 << 3
	InfoFixedHeight uint8 = 1 << 4
)

// CommonBlock holds information common to all glyphs.
type CommonBlock struct {
	LineHeight   uint16 // distance in pixels between lines of text
	Base         uint16 // pixels from the top of the line to the baseline
	ScaleW       uint16 // width of the atlas pages
	ScaleH       uint16 // height of the atlas pages
	PageCount    uint16 // number of atlas pages
	BitField     uint8  // bit 7: packed (glyphs in separate channels)
	AlphaChannel uint8
	RedChannel   uint8
	GreenChannel uint8
	BlueChannel  uint8
}

const commonFixedSize = 15

// TextureDimension returns the side length of the (square) atlas pages.
func (f *Font) TextureDimension() int {
	if f == nil {
		return 0
	}
	return int(f.Common.ScaleW)
}

// LineHeight returns the distance in pixels between two lines of text.
func (f *Font) LineHeight() int {
	if f == nil {
		return 0
	}
	return int(f.Common.LineHeight)
}

// Baseline returns the number of pixels from the top of a line to the baseline.
func (f *Font) Baseline() int {
	if f == nil {
		return 0
	}
	return int(f.Common.Base)
}

// Name returns the font face name from the info block, if present.
func (f *Font) Name() string {
	if f == nil || f.Info == nil {
		return ""
	}
	return f.Info.FontName
}

// IsUsable reports whether f has at least one glyph.
func (f *Font) IsUsable() bool {
	return f != nil && !f.Glyphs.IsEmpty()
}

// Glyph returns the glyph for code-point r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if f == nil {
		return Glyph{}, false
	}
	return f.Glyphs.Lookup(r)
}

// Kern returns the kerning adjustment for r following prev, or 0.
func (f *Font) Kern(prev, r rune) int16 {
	if f == nil {
		return 0
	}
	amount, _ := f.Kerning.Lookup(prev, r)
	return amount
}

// HasPage reports whether page index p refers to an entry of f.Pages.
func (f *Font) HasPage(p int) bool {
	return f != nil && p >= 0 && p < len(f.Pages)
}

// AddKerning merges additional kerning pairs into the font, overwriting
// existing entries for the same pairs. It is intended for custom kerning files
// and must not be called while the font is in use for layout.
func (f *Font) AddKerning(pairs map[KerningPair]int16) {
	if f.Kerning == nil {
		f.Kerning = newKerningTable()
	}
	for p, amount := range pairs {
		tracer().Debugf("custom kerning %q%q = %d", p.First, p.Second, amount)
		f.Kerning.insert(p.First, p.Second, amount)
	}
}

// Errors returns all errors encountered during font parsing.
// These errors represent issues that were found but did not prevent parsing from completing.
func (f *Font) Errors() []FontError {
	if f.parseErrors == nil {
		return []FontError{}
	}
	return f.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that are generally safe to ignore.
func (f *Font) Warnings() []FontWarning {
	if f.parseWarnings == nil {
		return []FontWarning{}
	}
	return f.parseWarnings
}

// CriticalErrors returns all errors with critical severity.
func (f *Font) CriticalErrors() []FontError {
	ec := errorCollector{errors: f.parseErrors}
	return ec.criticalErrors()
}
