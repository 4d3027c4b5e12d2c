package bmfquery

import (
	"testing"

	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/bmftest"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	font *bmf.Font
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.query")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("bmfont.bmf").SetTraceLevel(tracing.LevelError)
	b := bmftest.NewBuilder()
	b.FontName = "Segoe UI"
	b.AddGlyph(bmftest.Char{ID: 'T', X: 10, Y: 20, W: 9, H: 11, XOff: -1, YOff: 2, XAdv: 8})
	b.AddChar('o', 30, 20, 7, 8, 8)
	b.AddChar('y', 40, 20, 7, 10, 7)
	b.AddChar('W', 50, 20, 14, 11, 15)
	b.AddGlyph(bmftest.Char{ID: 'x', X: 70, Y: 20, W: 7, H: 8, XAdv: 7, Page: 3})
	b.AddKern('T', 'o', -2)
	b.AddKern('T', 'y', -1)
	b.AddKern('W', 'o', -1)
	b.AddKern('y', 'o', 1)
	f, err := bmf.Parse(b.Bytes())
	env.Require().NoError(err)
	env.font = f
	tracing.Select("bmfont.bmf").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *QueryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestNameInfo() {
	info := NameInfo(env.font)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font family not found in font info")
	env.Equal("Segoe UI", fam)
	env.Equal("16", info["size"])
	env.Equal("regular", info["style"])
	env.Equal("unicode", info["charset"])
	env.Empty(NameInfo(nil))
}

func (env *QueryTestEnviron) TestFontMetrics() {
	m := FontMetrics(env.font)
	env.Equal(16, m.Size)
	env.Equal(16, m.LineHeight)
	env.Equal(12, m.Ascent)
	env.Equal(4, m.Descent)
	env.Equal(256, m.TextureDimension)
	env.Equal(1, m.Pages)
	env.Equal(5, m.Glyphs)
	env.Equal(4, m.KerningPairs)
	env.Equal(15, m.MaxAdvance)
}

func (env *QueryTestEnviron) TestGlyphMetrics() {
	gm, ok := GlyphMetrics(env.font, 'T')
	env.Require().True(ok)
	env.Equal(8, gm.Advance)
	env.Equal(-1, gm.LSB)
	env.Equal(0, gm.RSB)
	env.Equal(BoundingBox{MinX: -1, MinY: 2, MaxX: 8, MaxY: 13}, gm.BBox)
	env.Equal(9, gm.Atlas.Dx())
	env.Equal(11, gm.Atlas.Dy())
	env.False(gm.BBox.IsEmpty())
	_, ok = GlyphMetrics(env.font, 'Q')
	env.False(ok)
}

func (env *QueryTestEnviron) TestKerningPairs() {
	all := KerningPairs(env.font, 0, 0)
	env.Require().Len(all, 4)
	env.Equal(rune('T'), all[0].First)
	env.Equal(rune('o'), all[0].Second)
	env.Equal(rune('W'), all[2].First, "pairs are ordered by first code-point")
	env.Equal(rune('y'), all[3].First)

	fromT := KerningPairs(env.font, 'T', 0)
	env.Len(fromT, 2)
	toO := KerningPairs(env.font, 0, 'o')
	env.Len(toO, 3)
	exact := KerningPairs(env.font, 'y', 'o')
	env.Require().Len(exact, 1)
	env.Equal(int16(1), exact[0].Amount)
	env.Empty(KerningPairs(env.font, 'o', 'T'))
}

func (env *QueryTestEnviron) TestCoverage() {
	env.Equal([]rune{'T', 'W', 'o', 'x', 'y'}, CodePoints(env.font))
	env.Equal([]rune{'x'}, UnusableGlyphs(env.font))
	env.Equal([]rune{'H', 'i', ' '}, MissingCodePoints(env.font, "Hi Toy\r\nHi"), "space is missing, too")
}
