package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/bmfont/bmfquery"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

var errNoFont = errors.New("no font loaded")

func infoOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	f := intp.renderer.Font()
	info := bmfquery.NameInfo(f)
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := [][]string{{"Key", "Value"}}
	for _, k := range keys {
		data = append(data, []string{k, info[k]})
	}
	m := bmfquery.FontMetrics(f)
	data = append(data,
		[]string{"line height", strconv.Itoa(m.LineHeight)},
		[]string{"ascent", strconv.Itoa(m.Ascent)},
		[]string{"descent", strconv.Itoa(m.Descent)},
		[]string{"texture size", fmt.Sprintf("%d×%d", m.TextureDimension, m.TextureDimension)},
		[]string{"pages", strconv.Itoa(m.Pages)},
		[]string{"glyphs", strconv.Itoa(m.Glyphs)},
		[]string{"kerning pairs", strconv.Itoa(m.KerningPairs)},
		[]string{"max advance", strconv.Itoa(m.MaxAdvance)},
		[]string{"warnings", strconv.Itoa(len(f.Warnings()))},
	)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	arg, ok := op.hasArg()
	if !ok {
		return errors.New("usage: glyph:<char|U+XXXX>"), false
	}
	r, err := parseRune(arg)
	if err != nil {
		return err, false
	}
	gm, ok := bmfquery.GlyphMetrics(intp.renderer.Font(), r)
	if !ok {
		return fmt.Errorf("font has no glyph for %#U", r), false
	}
	pterm.Printf("%#U %s\n", r, runenames.Name(r))
	data := [][]string{
		{"Advance", "LSB", "RSB", "BBox", "Page", "Atlas"},
		{
			strconv.Itoa(gm.Advance),
			strconv.Itoa(gm.LSB),
			strconv.Itoa(gm.RSB),
			formatBox(gm.BBox),
			strconv.Itoa(gm.Page),
			formatBox(gm.Atlas),
		},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func kernOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	var first, second rune
	var err error
	if op.arg != "" && op.arg != "*" {
		if first, err = parseRune(op.arg); err != nil {
			return err, false
		}
	}
	if op.format != "" && op.format != "*" {
		if second, err = parseRune(op.format); err != nil {
			return err, false
		}
	}
	pairs := bmfquery.KerningPairs(intp.renderer.Font(), first, second)
	pterm.Printf("%d kerning pairs\n", len(pairs))
	if len(pairs) == 0 {
		return nil, false
	}
	data := [][]string{{"First", "Second", "Amount"}}
	for _, p := range pairs {
		data = append(data, []string{
			formatRune(p.First),
			formatRune(p.Second),
			strconv.Itoa(int(p.Amount)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func kerningOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "":
	case "on", "true":
		intp.kerning = true
	case "off", "false":
		intp.kerning = false
	default:
		return fmt.Errorf("kerning must be 'on' or 'off', is %q", op.arg), false
	}
	pterm.Printf("kerning is %v\n", intp.kerning)
	return nil, false
}

func pagesOp(intp *Intp, op *Op) (error, bool) {
	if intp.renderer == nil {
		return errNoFont, false
	}
	f := intp.renderer.Font()
	binding := intp.renderer.Binding()
	data := [][]string{{"Page", "File", "Bound", "Texture", "Size"}}
	for i, name := range f.Pages {
		h, bound := binding.Texture(i)
		texture, size := "-", "-"
		if bound {
			texture = strconv.Itoa(int(h))
			if mask, ok := intp.loader.Mask(h); ok {
				size = fmt.Sprintf("%d×%d", mask.Bounds().Dx(), mask.Bounds().Dy())
			}
		}
		data = append(data, []string{strconv.Itoa(i), name, strconv.FormatBool(bound), texture, size})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if unusable := bmfquery.UnusableGlyphs(f); len(unusable) > 0 {
		pterm.Warning.Printf("%d glyphs reference pages not in the font\n", len(unusable))
	}
	return nil, false
}

// parseRune accepts a single character or a code-point in notation U+XXXX.
func parseRune(s string) (rune, error) {
	if len(s) > 2 && (strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+")) {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code-point %q", s)
		}
		return rune(n), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("expected a single character, have %q", s)
	}
	return r, nil
}

func formatRune(r rune) string {
	return fmt.Sprintf("%q %U", r, r)
}

func formatBox(b bmfquery.BoundingBox) string {
	return fmt.Sprintf("(%d,%d)–(%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
