package fontmgr

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/npillmayer/bmfont"
	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// ErrNoFontAvailable is returned if a manager has no font loaded.
var ErrNoFontAvailable = errors.New("fontmgr: no font available")

// ErrUnsupportedLanguage is returned if no font set supports a language.
var ErrUnsupportedLanguage = errors.New("fontmgr: language not supported")

// FontDir is the directory of font files below a manager's root directory.
const FontDir = "fonts"

// Manager holds one font renderer per size tier. A Manager is safe for
// concurrent use.
type Manager struct {
	sync.Mutex
	root      string
	loader    atlas.Loader
	opts      []bmfont.Option
	sets      *fontSetMatcher
	renderers map[Tier]*bmfont.Renderer
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLoader sets the page loader used for fonts loaded by the manager.
// Without a loader, fonts are bound with atlas.Identity.
func WithLoader(loader atlas.Loader) ManagerOption {
	return func(m *Manager) {
		m.loader = loader
	}
}

// WithRendererOptions passes options to every renderer the manager creates.
func WithRendererOptions(opts ...bmfont.Option) ManagerOption {
	return func(m *Manager) {
		m.opts = append(m.opts, opts...)
	}
}

// WithFontSets replaces DefaultFontSets.
func WithFontSets(sets ...FontSet) ManagerOption {
	return func(m *Manager) {
		m.sets = newFontSetMatcher(sets)
	}
}

// NewManager creates an empty manager for fonts located in directory
// root/fonts.
func NewManager(root string, opts ...ManagerOption) *Manager {
	m := &Manager{
		root:      root,
		renderers: make(map[Tier]*bmfont.Renderer),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sets == nil {
		m.sets = newFontSetMatcher(DefaultFontSets)
	}
	return m
}

// Register puts renderer r into tier t, replacing any previous renderer of
// that tier. A nil renderer clears the tier.
func (m *Manager) Register(t Tier, r *bmfont.Renderer) {
	m.Lock()
	defer m.Unlock()
	if r == nil {
		delete(m.renderers, t)
		return
	}
	m.renderers[t] = r
}

// FontOfSize returns the renderer for point size pts, as selected by
// SelectTier.
func (m *Manager) FontOfSize(pts int) (*bmfont.Renderer, error) {
	m.Lock()
	defer m.Unlock()
	t, ok := SelectTier(pts, func(t Tier) bool {
		_, ok := m.renderers[t]
		return ok
	})
	if !ok {
		return nil, ErrNoFontAvailable
	}
	tracer().Debugf("font for size %d is tier %s", pts, t)
	return m.renderers[t], nil
}

// LoadLanguageFonts replaces all fonts of the manager with the font set for
// language tag. Fonts which fail to load leave their tier empty; the errors
// are returned joined. If no font set supports tag, the manager stays empty
// and ErrUnsupportedLanguage is returned.
func (m *Manager) LoadLanguageFonts(tag language.Tag) error {
	set, ok := m.sets.match(tag)
	if !ok {
		m.Destroy()
		tracer().Errorf("language %s not recognized by font manager", tag)
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	dir := filepath.Join(m.root, FontDir)
	var errs []error
	loaded := make(map[Tier]*bmfont.Renderer, len(Tiers))
	for _, t := range Tiers {
		name, ok := set.Fonts[t]
		if !ok {
			continue
		}
		r, err := m.open(dir, name)
		if err != nil {
			tracer().Errorf("cannot load font %s for tier %s: %v", name, t, err)
			errs = append(errs, err)
			continue
		}
		loaded[t] = r
	}
	m.Lock()
	m.renderers = loaded
	m.Unlock()
	tracer().Infof("loaded %d %s fonts for language %s", len(loaded), set.Name, tag)
	return errors.Join(errs...)
}

func (m *Manager) open(dir, name string) (*bmfont.Renderer, error) {
	if m.loader != nil {
		return bmfont.OpenRenderer(dir, name, m.loader, m.opts...)
	}
	f, err := bmfont.LoadFont(fontload.Path(dir, name))
	if err != nil {
		return nil, err
	}
	return bmfont.NewRenderer(f, nil, m.opts...), nil
}

// Destroy releases all fonts of the manager.
func (m *Manager) Destroy() {
	m.Lock()
	defer m.Unlock()
	clear(m.renderers)
}

// Loaded returns the populated tiers in ascending order.
func (m *Manager) Loaded() []Tier {
	m.Lock()
	defer m.Unlock()
	return m.loadedTiers()
}

func (m *Manager) loadedTiers() []Tier {
	tiers := make([]Tier, 0, len(m.renderers))
	for t := range m.renderers {
		tiers = append(tiers, t)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
	return tiers
}

// LogFontList is a helper function to dump the list of loaded fonts to the
// trace-file (log-level Info).
func (m *Manager) LogFontList() {
	m.Lock()
	tiers := m.loadedTiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = m.renderers[t].Font().Name()
	}
	m.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- loaded fonts ---")
	for i, t := range tiers {
		tracer().Infof("tier [%s] = %s", t, names[i])
	}
	tracer().Infof("--------------------")
	tracer().SetTraceLevel(level)
}
