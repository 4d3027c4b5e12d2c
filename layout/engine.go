package layout

import (
	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/bmf"
)

// PageBinding resolves atlas pages to textures. *atlas.Binding implements it.
type PageBinding interface {
	Texture(page int) (atlas.Handle, bool)
}

// Engine lays out text with a single font. An engine does not hold any state
// between calls and may be shared.
type Engine struct {
	font     *bmf.Font
	pages    PageBinding
	registry *Registry
	tracking float32
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the registry for missing code-points. The default is
// DefaultRegistry.
func WithRegistry(reg *Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithTracking sets a multiplier for pen advances. The default is Tracking.
func WithTracking(tracking float32) Option {
	return func(e *Engine) {
		e.tracking = tracking
	}
}

// New creates a layout engine for font f, drawing from the textures of pages.
// If pages is nil, every page listed by the font is considered bound, with
// handles as given by atlas.Identity.
func New(f *bmf.Font, pages PageBinding, opts ...Option) *Engine {
	e := &Engine{
		font:     f,
		pages:    pages,
		registry: DefaultRegistry(),
		tracking: Tracking,
	}
	if e.pages == nil {
		n := 0
		if f != nil {
			n = len(f.Pages)
		}
		e.pages = atlas.Identity(n)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Font returns the engine's font.
func (e *Engine) Font() *bmf.Font {
	return e.font
}

// Layout positions the glyphs for text on a line, starting at (startX, startY),
// where startY is the top of the line. If kerning is true, kerning pairs of the
// font are applied to the drawn positions of glyphs.
func (e *Engine) Layout(text []rune, startX, startY float32, kerning bool) Result {
	if !e.font.IsUsable() || len(text) == 0 {
		return Result{}
	}
	res := Result{Placements: make([]Placement, 0, len(text))}
	var width float32 // sum of advances, independent of startX
	dim := float32(e.font.TextureDimension())
	for i, r := range text {
		if Skipped(r) {
			continue
		}
		g, ok := e.font.Glyph(r)
		if !ok {
			e.registry.Report(r)
			continue
		}
		scale := WidthScale(r)
		advance := e.tracking * float32(g.XAdvance) * scale
		tex, ok := e.pages.Texture(int(g.Page))
		if !ok {
			// cannot draw it, but it still occupies horizontal space
			tracer().Debugf("glyph %#U references unbound page %d", r, g.Page)
			width += advance
			continue
		}
		penX := startX + width
		var kern int16
		if kerning && i > 0 {
			kern = e.font.Kern(text[i-1], r)
		}
		res.Placements = append(res.Placements, Placement{
			Glyph:   g,
			Index:   i,
			PenX:    penX,
			PenY:    startY,
			X:       penX + float32(kern),
			Y:       startY + float32(g.YOffset),
			Width:   float32(g.Width) * scale,
			Height:  float32(g.Height),
			Kern:    kern,
			Scale:   scale,
			UV:      uvRect(g, dim),
			Texture: tex,
		})
		width += advance
	}
	res.Width = width
	return res
}

// Measure returns the pixel width of text, i.e. the width of the result of
// Layout for the same text. Measure does not report missing code-points.
func (e *Engine) Measure(text []rune) float32 {
	if !e.font.IsUsable() {
		return 0
	}
	var width float32
	for _, r := range text {
		if Skipped(r) {
			continue
		}
		g, ok := e.font.Glyph(r)
		if !ok {
			continue
		}
		width += e.tracking * float32(g.XAdvance) * WidthScale(r)
	}
	return width
}

// uvRect computes the texture coordinates of glyph g on a square page of
// dimension dim.
func uvRect(g bmf.Glyph, dim float32) Rect {
	if dim <= 0 {
		return Rect{}
	}
	x, y := float32(g.X), float32(g.Y)
	w, h := float32(g.Width), float32(g.Height)
	return Rect{
		U0: x / dim,
		V0: y / dim,
		U1: (x + w) / dim,
		V1: (y + h) / dim,
	}
}
