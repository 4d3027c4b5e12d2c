package face

import (
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/bmfont/atlas"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/bmftest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// testFace creates a face with glyphs 'H' and 'x' on page 0 and 'z' on an
// unbound page 1.
func testFace(t *testing.T) *Face {
	b := bmftest.NewBuilder()
	b.Pages = []string{"p0.png", "p1.png"}
	b.AddGlyph(bmftest.Char{ID: 'H', X: 10, Y: 10, W: 4, H: 6, XOff: 1, YOff: 2, XAdv: 6})
	b.AddGlyph(bmftest.Char{ID: 'x', X: 20, Y: 10, W: 4, H: 4, YOff: 4, XAdv: 5})
	b.AddGlyph(bmftest.Char{ID: 'z', X: 0, Y: 0, W: 4, H: 4, YOff: 4, XAdv: 5, Page: 1})
	b.AddKern('H', 'x', -1)
	f, err := bmf.Parse(b.Bytes())
	require.NoError(t, err)
	page := image.NewAlpha(image.Rect(0, 0, 256, 256))
	for y := 10; y < 16; y++ {
		for x := 10; x < 14; x++ {
			page.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	loader := atlas.NewImageLoader()
	binding := &atlas.Binding{}
	binding.Register(0, loader.Add(page))
	return New(f, binding, loader)
}

func TestFaceMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	face := testFace(t)
	m := face.Metrics()
	assert.Equal(t, fixed.I(16), m.Height)
	assert.Equal(t, fixed.I(12), m.Ascent)
	assert.Equal(t, fixed.I(4), m.Descent)
	assert.Equal(t, fixed.I(4), m.XHeight)
	assert.Equal(t, fixed.I(6), m.CapHeight)
	assert.NoError(t, face.Close())
}

func TestFaceGlyphQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	face := testFace(t)
	adv, ok := face.GlyphAdvance('H')
	require.True(t, ok)
	assert.Equal(t, fixed.I(6), adv)
	_, ok = face.GlyphAdvance('?')
	assert.False(t, ok)
	bounds, adv, ok := face.GlyphBounds('H')
	require.True(t, ok)
	assert.Equal(t, fixed.R(1, -10, 5, -4), bounds)
	assert.Equal(t, fixed.I(6), adv)
	assert.Equal(t, fixed.I(-1), face.Kern('H', 'x'))
	assert.Equal(t, fixed.Int26_6(0), face.Kern('x', 'H'))
}

func TestFaceGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	face := testFace(t)
	dr, mask, maskp, adv, ok := face.Glyph(fixed.P(20, 12), 'H')
	require.True(t, ok)
	assert.Equal(t, image.Rect(21, 2, 25, 8), dr)
	assert.Equal(t, image.Pt(10, 10), maskp)
	assert.Equal(t, fixed.I(6), adv)
	require.NotNil(t, mask)

	dr, _, _, adv, ok = face.Glyph(fixed.P(0, 12), 'z')
	assert.True(t, ok, "glyphs on unbound pages are advanced over")
	assert.True(t, dr.Empty())
	assert.Equal(t, fixed.I(5), adv)
}

func TestFaceWithDrawer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	dst := image.NewGray(image.Rect(0, 0, 32, 16))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: testFace(t),
		Dot:  fixed.P(0, 12),
	}
	assert.Equal(t, fixed.I(17), d.MeasureString("HzH"))
	d.DrawString("HzH")
	assert.Equal(t, uint8(0xff), dst.GrayAt(1, 2).Y, "first H")
	assert.Equal(t, uint8(0), dst.GrayAt(0, 2).Y, "left of first H")
	assert.Equal(t, uint8(0), dst.GrayAt(7, 5).Y, "unbound z")
	assert.Equal(t, uint8(0xff), dst.GrayAt(12, 7).Y, "second H")
}
