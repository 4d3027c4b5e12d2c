package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/bmfont/bmfquery"
	"github.com/npillmayer/bmfont/face"
	"github.com/npillmayer/bmfont/internal/softraster"
	"github.com/pterm/pterm"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/runenames"
)

const margin = 4 // pixels around rendered text

func layoutOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	text, ok := op.hasArg()
	if !ok {
		return errors.New("usage: layout:<text>"), false
	}
	res := intp.renderer.Engine().Layout([]rune(text), 0, 0, intp.kerning)
	data := [][]string{{"#", "Char", "Pen", "X", "Y", "W×H", "Kern", "Page", "Texture"}}
	for _, p := range res.Placements {
		data = append(data, []string{
			fmt.Sprintf("%d", p.Index),
			formatRune(p.Glyph.ID),
			fmt.Sprintf("%.2f", p.PenX),
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.0f", p.Y),
			fmt.Sprintf("%.2f×%.0f", p.Width, p.Height),
			fmt.Sprintf("%d", p.Kern),
			fmt.Sprintf("%d", p.Glyph.Page),
			fmt.Sprintf("%d", p.Texture),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%d glyphs placed, total advance %.2f px\n", len(res.Placements), res.Width)
	return nil, false
}

func measureOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	text := op.arg
	w := intp.renderer.Engine().Measure([]rune(text))
	pterm.Printf("%q is %d px wide (%.2f), line height %d px\n", text,
		intp.renderer.StringLengthPixels(text), w, intp.renderer.LineHeight())
	return nil, false
}

func missingOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	missing := bmfquery.MissingCodePoints(intp.renderer.Font(), op.arg)
	if len(missing) == 0 {
		pterm.Info.Println("font covers all characters")
		return nil, false
	}
	data := [][]string{{"Code-point", "Name", "Script"}}
	for _, r := range missing {
		data = append(data, []string{
			fmt.Sprintf("%U", r),
			runenames.Name(r),
			language.LookupScript(r).String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// viewOp renders text through the layout engine, as a rendering backend would.
func viewOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	text, ok := op.hasArg()
	if !ok {
		return errors.New("usage: view:<text>[:file.png]"), false
	}
	r := intp.renderer
	w := r.StringLengthPixels(text) + 2*margin
	h := r.LineHeight() + 2*margin
	canvas := softraster.NewCanvas(w, h, intp.loader, color.White)
	r.DrawString(text, margin, margin, intp.kerning, canvas)
	return writeImage(outputFile(op, "view.png"), canvas.Image(), canvas.Drawn())
}

// drawOp renders text with a font.Drawer.
func drawOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	text, ok := op.hasArg()
	if !ok {
		return errors.New("usage: draw:<text>[:file.png]"), false
	}
	r := intp.renderer
	d := font.Drawer{
		Src:  image.Black,
		Face: face.New(r.Font(), r.Binding(), intp.loader),
	}
	w := d.MeasureString(text).Ceil() + 2*margin
	h := r.LineHeight() + 2*margin
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for i := range dst.Pix {
		dst.Pix[i] = 0xff
	}
	d.Dst = dst
	d.Dot = fixed.P(margin, margin+r.Base())
	d.DrawString(text)
	return writeImage(outputFile(op, "draw.png"), dst, len([]rune(text)))
}

func outputFile(op *Op, def string) string {
	if op.format != "" {
		return op.format
	}
	return def
}

func writeImage(name string, img image.Image, glyphs int) (error, bool) {
	out, err := os.Create(name)
	if err != nil {
		return err, false
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return err, false
	}
	b := img.Bounds()
	pterm.Info.Printf("wrote %d×%d image with %d glyphs to %s\n", b.Dx(), b.Dy(), glyphs, name)
	return nil, false
}
