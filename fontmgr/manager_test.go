package fontmgr

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/bmfont"
	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/bmftest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func testRenderer(t *testing.T, name string) *bmfont.Renderer {
	b := bmftest.NewBuilder()
	b.FontName = name
	b.AddChar('a', 0, 0, 6, 8, 7)
	f, err := bmf.Parse(b.Bytes())
	require.NoError(t, err)
	return bmfont.NewRenderer(f, nil)
}

// writeFonts creates font files for names below root/fonts.
func writeFonts(t *testing.T, names ...string) string {
	root := t.TempDir()
	dir := filepath.Join(root, FontDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		b := bmftest.NewBuilder()
		b.FontName = name
		b.Pages = []string{name + "_0.png"}
		b.AddChar('a', 0, 0, 6, 8, 7)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".fnt"), b.Bytes(), 0o644))
	}
	return root
}

func TestEmptyManager(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	m := NewManager(t.TempDir())
	_, err := m.FontOfSize(12)
	assert.ErrorIs(t, err, ErrNoFontAvailable)
	assert.Empty(t, m.Loaded())
}

func TestManagerFontOfSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	m := NewManager(t.TempDir())
	m.Register(Tier10, testRenderer(t, "ten"))
	m.Register(Tier13, testRenderer(t, "thirteen"))
	m.Register(Tier18, testRenderer(t, "eighteen"))
	r, err := m.FontOfSize(14)
	require.NoError(t, err)
	assert.Equal(t, "thirteen", r.Font().Name())
	r, err = m.FontOfSize(26)
	require.NoError(t, err)
	assert.Equal(t, "eighteen", r.Font().Name())
	assert.Equal(t, []Tier{Tier10, Tier13, Tier18}, m.Loaded())
	m.LogFontList()

	m.Register(Tier18, nil)
	m.Register(Tier10, nil)
	r, err = m.FontOfSize(30)
	require.NoError(t, err)
	assert.Equal(t, "thirteen", r.Font().Name())
	m.Destroy()
	_, err = m.FontOfSize(30)
	assert.ErrorIs(t, err, ErrNoFontAvailable)
}

func TestLoadLatinFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	root := writeFonts(t, "SegoeUI_10px", "SegoeUI_13px", "SegoeUI_18px", "SegoeUI_24px")
	var mu sync.Mutex
	var pages []string
	loader := atlas.LoaderFunc(func(path string, dim int) (atlas.Handle, error) {
		mu.Lock()
		defer mu.Unlock()
		pages = append(pages, filepath.Base(path))
		return atlas.Handle(len(pages)), nil
	})
	m := NewManager(root, WithLoader(loader))
	for _, tag := range []language.Tag{language.English, language.French, language.Spanish, language.BrazilianPortuguese} {
		require.NoError(t, m.LoadLanguageFonts(tag), "language %s", tag)
		assert.Equal(t, Tiers, m.Loaded())
	}
	r, err := m.FontOfSize(11)
	require.NoError(t, err)
	assert.Equal(t, "SegoeUI_10px", r.Font().Name())
	assert.Equal(t, 1, r.Binding().BoundCount())
	assert.Contains(t, pages, "SegoeUI_24px_0.png")
}

func TestLoadJapaneseFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	root := writeFonts(t, "MeiryoUI_24px", "MeiryoUI_36px")
	m := NewManager(root)
	require.NoError(t, m.LoadLanguageFonts(language.Japanese))
	assert.Equal(t, []Tier{Tier13, Tier18}, m.Loaded())
	r, err := m.FontOfSize(10)
	require.NoError(t, err)
	assert.Equal(t, "MeiryoUI_24px", r.Font().Name())
	r, err = m.FontOfSize(24)
	require.NoError(t, err)
	assert.Equal(t, "MeiryoUI_36px", r.Font().Name())
	assert.Equal(t, 1, r.Binding().BoundCount(), "identity binding without loader")
}

func TestLoadLanguageFontsPartially(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	root := writeFonts(t, "FangSong_36px")
	m := NewManager(root)
	err := m.LoadLanguageFonts(language.Chinese)
	assert.ErrorIs(t, err, bmf.ErrIO)
	assert.Equal(t, []Tier{Tier18}, m.Loaded())
}

func TestUnsupportedLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	root := writeFonts(t, "SegoeUI_13px")
	m := NewManager(root)
	m.Register(Tier13, testRenderer(t, "old"))
	err := m.LoadLanguageFonts(language.Korean)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Empty(t, m.Loaded(), "previous fonts are released")

	custom := NewManager(root, WithFontSets(FontSet{
		Name:      "Korean",
		Languages: []language.Tag{language.Korean},
		Fonts:     map[Tier]string{Tier13: "SegoeUI_13px"},
	}))
	require.NoError(t, custom.LoadLanguageFonts(language.Korean))
	assert.Equal(t, []Tier{Tier13}, custom.Loaded())
}

func TestReloadKeepsFontsAvailable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	root := writeFonts(t, "SegoeUI_10px", "SegoeUI_13px", "SegoeUI_18px", "SegoeUI_24px")
	m := NewManager(root)
	require.NoError(t, m.LoadLanguageFonts(language.English))
	var wg sync.WaitGroup
	failures := make(chan error, 100)
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := m.LoadLanguageFonts(language.English); err != nil {
				failures <- err
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := m.FontOfSize(13); err != nil {
				failures <- err
			}
		}
	}()
	wg.Wait()
	close(failures)
	for err := range failures {
		t.Errorf("font lookup during reload: %v", err)
	}
	assert.Equal(t, Tiers, m.Loaded())
}

func TestLogFontListWhileDestroying(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.fontmgr")
	defer teardown()
	//
	m := NewManager(t.TempDir())
	ten, thirteen := testRenderer(t, "ten"), testRenderer(t, "thirteen")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			m.Register(Tier10, ten)
			m.Register(Tier13, thirteen)
			m.Destroy()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			assert.NotPanics(t, m.LogFontList)
		}
	}()
	wg.Wait()
	assert.Empty(t, m.Loaded())
}
