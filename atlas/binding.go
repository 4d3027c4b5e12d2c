package atlas

import (
	"path/filepath"
	"strings"

	"github.com/npillmayer/bmfont/bmf"
)

// Handle is an opaque reference to a texture, as handed out by a Loader.
type Handle uint32

// Loader loads the image of an atlas page and returns a texture handle for it.
// path is the page filename from the font, resolved against the font's
// directory.
type Loader interface {
	LoadPage(path string, dimension int) (Handle, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string, dimension int) (Handle, error)

// LoadPage calls f(path, dimension).
func (f LoaderFunc) LoadPage(path string, dimension int) (Handle, error) {
	return f(path, dimension)
}

// Binding is a table from page index to texture handle.
// The zero value is an empty binding, i.e. no page is bound.
type Binding struct {
	handles []Handle
	bound   []bool
}

// Texture returns the texture handle for page p. If p is out of range or the
// page could not be loaded, false is returned.
func (b *Binding) Texture(p int) (Handle, bool) {
	if b == nil || p < 0 || p >= len(b.handles) || !b.bound[p] {
		return 0, false
	}
	return b.handles[p], true
}

// Len returns the number of page slots of the binding, bound or not.
func (b *Binding) Len() int {
	if b == nil {
		return 0
	}
	return len(b.handles)
}

// BoundCount returns the number of pages with a texture.
func (b *Binding) BoundCount() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, ok := range b.bound {
		if ok {
			n++
		}
	}
	return n
}

// Register binds page p to handle h, growing the table if necessary.
func (b *Binding) Register(p int, h Handle) {
	if p < 0 {
		return
	}
	for len(b.handles) <= p {
		b.handles = append(b.handles, 0)
		b.bound = append(b.bound, false)
	}
	b.handles[p] = h
	b.bound[p] = true
}

// Identity returns a binding for n pages, with page i bound to handle i+1.
// It suits clients which only measure text or do their own texture lookup.
func Identity(n int) *Binding {
	b := &Binding{}
	for i := 0; i < n; i++ {
		b.Register(i, Handle(i+1))
	}
	return b
}

// BindOption configures Bind.
type BindOption func(*bindConfig)

type bindConfig struct {
	ext string
}

// WithExtension replaces the extension of page filenames before loading, e.g.
// to load pre-converted ".raw" luminance files instead of ".png" images.
func WithExtension(ext string) BindOption {
	return func(c *bindConfig) {
		c.ext = ext
	}
}

// Bind loads all pages of font f with loader. Page filenames are resolved
// relative to dir. Pages which fail to load are traced and left unbound; Bind
// itself does not fail.
func Bind(f *bmf.Font, dir string, loader Loader, opts ...BindOption) *Binding {
	if f == nil {
		return &Binding{}
	}
	conf := bindConfig{}
	for _, opt := range opts {
		opt(&conf)
	}
	b := &Binding{
		handles: make([]Handle, len(f.Pages)),
		bound:   make([]bool, len(f.Pages)),
	}
	if loader == nil {
		tracer().Errorf("no page loader, font pages remain unbound")
		return b
	}
	for i, name := range f.Pages {
		if conf.ext != "" {
			name = strings.TrimSuffix(name, filepath.Ext(name)) + conf.ext
		}
		path := filepath.Join(dir, name)
		h, err := loader.LoadPage(path, f.TextureDimension())
		if err != nil {
			tracer().Errorf("cannot load font page %d from %s: %v", i, path, err)
			continue
		}
		tracer().Debugf("bound font page %d (%s) to texture %d", i, path, h)
		b.handles[i] = h
		b.bound[i] = true
	}
	return b
}
