// Package bmftest builds binary BMFont files in memory, for use in tests.
package bmftest

import (
	"encoding/binary"
)

var le = binary.LittleEndian

// Char describes a char record.
type Char struct {
	ID               uint32
	X, Y, W, H       uint16
	XOff, YOff, XAdv int16
	Page, Channel    uint8
}

// Kern describes a kerning record.
type Kern struct {
	First, Second uint32
	Amount        int16
}

// Builder collects the content of a font and serializes it to the binary
// BMFont format, version 3.
type Builder struct {
	FontName   string
	FontSize   int16
	LineHeight uint16
	Base       uint16
	ScaleW     uint16
	ScaleH     uint16
	PageCount  int // -1: use len(Pages)
	Pages      []string
	Chars      []Char
	Kerns      []Kern
	Extra      []byte // appended to the chars block payload
	Version    byte
}

// NewBuilder returns a builder for a font with a 256 pixel square atlas, one
// page and line height 16, base 12.
func NewBuilder() *Builder {
	return &Builder{
		FontName:   "Test",
		FontSize:   16,
		LineHeight: 16,
		Base:       12,
		ScaleW:     256,
		ScaleH:     256,
		PageCount:  -1,
		Pages:      []string{"test_0.png"},
		Version:    3,
	}
}

// AddChar appends a char record with the given advance and size.
func (b *Builder) AddChar(id rune, x, y, w, h uint16, xadv int16) *Builder {
	b.Chars = append(b.Chars, Char{ID: uint32(id), X: x, Y: y, W: w, H: h, XAdv: xadv, Channel: 15})
	return b
}

// AddGlyph appends a complete char record.
func (b *Builder) AddGlyph(c Char) *Builder {
	b.Chars = append(b.Chars, c)
	return b
}

// AddKern appends a kerning record.
func (b *Builder) AddKern(first, second rune, amount int16) *Builder {
	b.Kerns = append(b.Kerns, Kern{First: uint32(first), Second: uint32(second), Amount: amount})
	return b
}

// Header returns the 4-byte file header.
func (b *Builder) Header() []byte {
	return []byte{'B', 'M', 'F', b.Version}
}

// InfoPayload returns the payload of the info block.
func (b *Builder) InfoPayload() []byte {
	p := make([]byte, 14, 14+len(b.FontName)+1)
	le.PutUint16(p[0:], uint16(b.FontSize))
	p[2] = 0x03 // smooth, unicode
	le.PutUint16(p[4:], 100)
	p[6] = 1
	p = append(p, b.FontName...)
	return append(p, 0)
}

// CommonPayload returns the payload of the common block.
func (b *Builder) CommonPayload() []byte {
	p := make([]byte, 15)
	le.PutUint16(p[0:], b.LineHeight)
	le.PutUint16(p[2:], b.Base)
	le.PutUint16(p[4:], b.ScaleW)
	le.PutUint16(p[6:], b.ScaleH)
	pages := b.PageCount
	if pages < 0 {
		pages = len(b.Pages)
	}
	le.PutUint16(p[8:], uint16(pages))
	return p
}

// PagesPayload returns the payload of the pages block.
func (b *Builder) PagesPayload() []byte {
	var p []byte
	for _, name := range b.Pages {
		p = append(p, name...)
		p = append(p, 0)
	}
	return p
}

// CharsPayload returns the payload of the chars block.
func (b *Builder) CharsPayload() []byte {
	p := make([]byte, 0, 20*len(b.Chars)+len(b.Extra))
	for _, c := range b.Chars {
		r := make([]byte, 20)
		le.PutUint32(r[0:], c.ID)
		le.PutUint16(r[4:], c.X)
		le.PutUint16(r[6:], c.Y)
		le.PutUint16(r[8:], c.W)
		le.PutUint16(r[10:], c.H)
		le.PutUint16(r[12:], uint16(c.XOff))
		le.PutUint16(r[14:], uint16(c.YOff))
		le.PutUint16(r[16:], uint16(c.XAdv))
		r[18] = c.Page
		r[19] = c.Channel
		p = append(p, r...)
	}
	return append(p, b.Extra...)
}

// KerningPayload returns the payload of the kerning block.
func (b *Builder) KerningPayload() []byte {
	p := make([]byte, 0, 10*len(b.Kerns))
	for _, k := range b.Kerns {
		r := make([]byte, 10)
		le.PutUint32(r[0:], k.First)
		le.PutUint32(r[4:], k.Second)
		le.PutUint16(r[8:], uint16(k.Amount))
		p = append(p, r...)
	}
	return p
}

// Block frames a payload as a block of the given type.
func Block(typ byte, payload []byte) []byte {
	p := make([]byte, 5, 5+len(payload))
	p[0] = typ
	le.PutUint32(p[1:], uint32(len(payload)))
	return append(p, payload...)
}

// Bytes serializes the font: header followed by the five blocks.
func (b *Builder) Bytes() []byte {
	data := b.Header()
	data = append(data, Block(1, b.InfoPayload())...)
	data = append(data, Block(2, b.CommonPayload())...)
	data = append(data, Block(3, b.PagesPayload())...)
	data = append(data, Block(4, b.CharsPayload())...)
	data = append(data, Block(5, b.KerningPayload())...)
	return data
}
