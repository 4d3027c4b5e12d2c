package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "layout", "measure", "view", "draw":
		pterm.Info.Println("Text Layout")
		pterm.Println(`
	Text is laid out on a single line, starting at the top left corner.
	For every character the glyph is placed at the pen position, shifted by
	the glyph's offsets and by kerning with the preceding character. Kerning
	does not move the pen. The pen then advances by the glyph's advance.
	Katakana and CJK ideographs are narrowed to 2/3 of their width.

	layout:<text>           list the placement of every glyph
	measure:<text>          pixel width of text
	view:<text>[:file.png]  render through the layout engine
	draw:<text>[:file.png]  render with golang.org/x/image/font.Drawer
	kerning:on|off          switch kerning for layout and view
	`)
	case "kern", "kerning":
		pterm.Info.Println("Kerning")
		pterm.Println(`
	Kerning pairs map an ordered pair of characters to a pixel adjustment,
	applied when the second character follows the first.
	Custom pairs are read from a file <font>.kern next to the font file.

	kern                    list all pairs
	kern:T                  pairs starting with 'T'
	kern:*:o                pairs ending with 'o'
	kern:T:o                a single pair
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info                    font name and metrics
	glyph:<char|U+XXXX>     metrics of a glyph
	kern[:a[:b]]            kerning pairs
	pages                   atlas pages and their textures
	layout:<text>           glyph placements for text
	measure:<text>          width of text
	missing:<text>          characters of text the font has no glyph for
	view:<text>[:file.png]  render text to an image
	draw:<text>[:file.png]  render text with x/image/font
	kerning:on|off          switch kerning
	help[:topic]            help on 'layout' or 'kern'
	quit                    leave
	`)
	}
}
