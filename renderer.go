package bmfont

import (
	"math"
	"path/filepath"

	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/fontload"
	"github.com/npillmayer/bmfont/layout"
)

// Rasterizer is implemented by rendering backends. DrawQuads is called once per
// call to Renderer.DrawString with the textured quads for all visible glyphs,
// in string order. Coordinates are pixels with the origin at the top left.
type Rasterizer interface {
	DrawQuads(quads []layout.Quad)
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(quads []layout.Quad)

// DrawQuads calls fn(quads).
func (fn RasterizerFunc) DrawQuads(quads []layout.Quad) {
	fn(quads)
}

// Renderer draws text with a single font. It owns the font, the binding of the
// font's pages and a layout engine.
type Renderer struct {
	font    *bmf.Font
	binding *atlas.Binding
	engine  *layout.Engine
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	kernFile   string
	layoutOpts []layout.Option
	bindOpts   []atlas.BindOption
}

// WithKerningFile merges custom kerning pairs from file path into the font.
// The font is modified in place.
func WithKerningFile(path string) Option {
	return func(c *config) {
		c.kernFile = path
	}
}

// WithLayout passes options to the layout engine of a renderer.
func WithLayout(opts ...layout.Option) Option {
	return func(c *config) {
		c.layoutOpts = append(c.layoutOpts, opts...)
	}
}

// WithPageOptions passes options to atlas.Bind. It is effective for
// OpenRenderer only.
func WithPageOptions(opts ...atlas.BindOption) Option {
	return func(c *config) {
		c.bindOpts = append(c.bindOpts, opts...)
	}
}

// NewRenderer creates a renderer for font f with pages bound by binding. If
// binding is nil, f's pages are bound by atlas.Identity.
func NewRenderer(f *bmf.Font, binding *atlas.Binding, opts ...Option) *Renderer {
	conf := config{}
	for _, opt := range opts {
		opt(&conf)
	}
	return newRenderer(f, binding, conf)
}

func newRenderer(f *bmf.Font, binding *atlas.Binding, conf config) *Renderer {
	if conf.kernFile != "" && f != nil {
		if err := mergeKerningFile(f, conf.kernFile); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	if binding == nil {
		n := 0
		if f != nil {
			n = len(f.Pages)
		}
		binding = atlas.Identity(n)
	}
	return &Renderer{
		font:    f,
		binding: binding,
		engine:  layout.New(f, binding, conf.layoutOpts...),
	}
}

// OpenRenderer loads font name from directory dir and binds its pages with
// loader. If name has no extension, ".fnt" is assumed. Pages are expected in
// the same directory as the font file.
func OpenRenderer(dir, name string, loader atlas.Loader, opts ...Option) (*Renderer, error) {
	conf := config{}
	for _, opt := range opts {
		opt(&conf)
	}
	path := fontload.Path(dir, name)
	f, err := LoadFont(path)
	if err != nil {
		return nil, err
	}
	binding := atlas.Bind(f, filepath.Dir(path), loader, conf.bindOpts...)
	if binding.BoundCount() < len(f.Pages) {
		tracer().Infof("font %q: %d of %d pages bound", f.Name(), binding.BoundCount(), len(f.Pages))
	}
	return newRenderer(f, binding, conf), nil
}

// Font returns the renderer's font.
func (r *Renderer) Font() *bmf.Font {
	return r.font
}

// Binding returns the page binding of the renderer.
func (r *Renderer) Binding() *atlas.Binding {
	return r.binding
}

// Engine returns the layout engine of the renderer.
func (r *Renderer) Engine() *layout.Engine {
	return r.engine
}

// LineHeight is the distance in pixels between two lines of text.
func (r *Renderer) LineHeight() int {
	if r == nil || r.font == nil {
		return 0
	}
	return r.font.LineHeight()
}

// Base is the distance in pixels from the top of a line to the baseline.
func (r *Renderer) Base() int {
	if r == nil || r.font == nil {
		return 0
	}
	return r.font.Baseline()
}

// DrawString draws s with the top left corner of the line at (x, y). See
// DrawRunes.
func (r *Renderer) DrawString(s string, x, y int, kerning bool, rast Rasterizer) layout.Result {
	return r.DrawRunes([]rune(s), x, y, kerning, rast)
}

// DrawRunes lays out text and submits the resulting quads to rast. It returns
// the layout result. Nothing is drawn for an unusable font or if rast is nil.
func (r *Renderer) DrawRunes(text []rune, x, y int, kerning bool, rast Rasterizer) layout.Result {
	if r == nil || !r.font.IsUsable() {
		return layout.Result{}
	}
	res := r.engine.Layout(text, float32(x), float32(y), kerning)
	if rast != nil && !res.IsEmpty() {
		rast.DrawQuads(res.Quads())
	}
	return res
}

// StringLengthPixels returns the width of s in pixels, rounded up.
func (r *Renderer) StringLengthPixels(s string) int {
	if r == nil {
		return 0
	}
	return int(math.Ceil(float64(r.engine.Measure([]rune(s)))))
}
