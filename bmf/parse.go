package bmf

import (
	"bytes"
	"fmt"
	"io"
)

// Header of a binary BMFont file: 'B','M','F' followed by the format version.
const (
	headerSize    = 4
	formatVersion = 3
)

var magic = []byte("BMF")

// Parse decodes a BMFont binary file from a byte slice.
//
// The header must be 'BMF' followed by version 3, otherwise ErrInvalidHeader is
// returned. Exactly five blocks are read after the header; if the data ends
// prematurely, ErrTruncatedStream is returned. In both cases no font is
// returned.
//
// A font without any glyphs is not an error: it is returned as a degenerate
// font which renders nothing.
func Parse(data []byte) (*Font, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes a BMFont binary file from a stream. See Parse.
func ParseReader(r io.Reader) (*Font, error) {
	var h [headerSize]byte
	if n, err := io.ReadFull(r, h[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errFontFormat(ErrInvalidHeader, fmt.Sprintf("header has %d of %d bytes", n, headerSize))
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	tracer().Debugf("header = %q, version = %d", h[:3], h[3])
	if !bytes.Equal(h[:3], magic) {
		return nil, errFontFormat(ErrInvalidHeader, fmt.Sprintf("not a binary BMFont file: magic is %q", h[:3]))
	}
	if h[3] != formatVersion {
		return nil, errFontFormat(ErrInvalidHeader, fmt.Sprintf("format version not supported: %d", h[3]))
	}
	ec := &errorCollector{}
	f := &Font{
		Glyphs:  newGlyphTable(0),
		Kerning: newKerningTable(),
	}
	br := NewBlockReaderAt(r, headerSize)
	for i := 0; i < BlockCount; i++ {
		block, err := br.ReadBlock()
		if err != nil {
			return nil, err
		}
		parseBlock(f, block, ec)
	}
	checkPageReferences(f, ec)
	f.parseErrors = ec.errors
	f.parseWarnings = ec.warnings
	if ec.hasErrors() || ec.hasWarnings() {
		tracer().Infof("font parsed with %d errors and %d warnings", len(ec.errors), len(ec.warnings))
	}
	tracer().Debugf("font %q: %d pages, %d glyphs, %d kerning pairs",
		f.Name(), len(f.Pages), f.Glyphs.Len(), f.Kerning.Len())
	return f, nil
}

// parseBlock dispatches on the block type. Unknown blocks are ignored.
func parseBlock(f *Font, block Block, ec *errorCollector) {
	payload := binarySegm(block.Payload)
	switch block.Type {
	case BlockInfo:
		parseInfo(f, payload, block.Offset, ec)
	case BlockCommon:
		parseCommon(f, payload, block.Offset, ec)
	case BlockPages:
		f.Pages = append(f.Pages, payload.cstrings()...)
		tracer().Debugf("pages = %v", f.Pages)
	case BlockChars:
		parseChars(f, payload, block.Offset, ec)
	case BlockKerning:
		parseKerning(f, payload, block.Offset, ec)
	default:
		tracer().Debugf("ignoring unknown block type %d at offset %d", block.Type, block.Offset)
	}
}

func parseInfo(f *Font, b binarySegm, offset uint32, ec *errorCollector) {
	if b.Size() < infoFixedSize {
		ec.addError(BlockInfo, "Record", fmt.Sprintf("block too short: %d bytes", b.Size()),
			SeverityMinor, offset, ErrTruncatedStream)
		return
	}
	info := InfoBlock{
		FontSize:     b.i16(0),
		BitField:     b.u8(2),
		CharSet:      b.u8(3),
		StretchH:     b.u16(4),
		AA:           b.u8(6),
		PaddingUp:    b.u8(7),
		PaddingRight: b.u8(8),
		PaddingDown:  b.u8(9),
		PaddingLeft:  b.u8(10),
		SpacingHoriz: b.u8(11),
		SpacingVert:  b.u8(12),
		Outline:      b.u8(13),
	}
	info.FontName = b[infoFixedSize:].cstring()
	f.Info = &info
	tracer().Debugf("info: font %q, size %d", info.FontName, info.FontSize)
}

func parseCommon(f *Font, b binarySegm, offset uint32, ec *errorCollector) {
	if b.Size() < commonFixedSize {
		ec.addError(BlockCommon, "Record", fmt.Sprintf("block too short: %d bytes", b.Size()),
			SeverityCritical, offset, ErrTruncatedStream)
		return
	}
	f.Common = CommonBlock{
		LineHeight:   b.u16(0),
		Base:         b.u16(2),
		ScaleW:       b.u16(4),
		ScaleH:       b.u16(6),
		PageCount:    b.u16(8),
		BitField:     b.u8(10),
		AlphaChannel: b.u8(11),
		RedChannel:   b.u8(12),
		GreenChannel: b.u8(13),
		BlueChannel:  b.u8(14),
	}
	if f.Common.ScaleW != f.Common.ScaleH {
		ec.addWarning(BlockCommon, fmt.Sprintf("non-square atlas dimensions %dx%d, using %d",
			f.Common.ScaleW, f.Common.ScaleH, f.Common.ScaleW), offset, nil)
	}
}

func parseChars(f *Font, b binarySegm, offset uint32, ec *errorCollector) {
	count := recordCount(BlockChars, b, charRecordSize, offset, ec)
	for i := 0; i < count; i++ {
		g := decodeGlyph(b[i*charRecordSize : (i+1)*charRecordSize])
		if _, dup := f.Glyphs.Lookup(g.ID); dup {
			tracer().Debugf("duplicate glyph %#U, last one wins", g.ID)
		}
		f.Glyphs.insert(g)
	}
}

func parseKerning(f *Font, b binarySegm, offset uint32, ec *errorCollector) {
	count := recordCount(BlockKerning, b, kernRecordSize, offset, ec)
	for i := 0; i < count; i++ {
		rec := b[i*kernRecordSize : (i+1)*kernRecordSize]
		f.Kerning.insert(rune(rec.u32(0)), rune(rec.u32(4)), rec.i16(8))
	}
}

// recordCount returns the number of complete records in b. A remainder is
// recorded as a warning and will be dropped.
func recordCount(block BlockType, b binarySegm, recordSize int, offset uint32, ec *errorCollector) int {
	if rest := b.Size() % recordSize; rest != 0 {
		ec.addWarning(block, fmt.Sprintf("payload of %d bytes is not a multiple of %d, dropping %d bytes",
			b.Size(), recordSize, rest), offset, ErrCorruptRecordCount)
	}
	return b.Size() / recordSize
}

// checkPageReferences records glyphs which reference a page not contained in
// the pages block. Those glyphs stay in the table; layout will not draw them.
func checkPageReferences(f *Font, ec *errorCollector) {
	if int(f.Common.PageCount) != len(f.Pages) {
		ec.addWarning(BlockPages, fmt.Sprintf("common block announces %d pages, pages block has %d",
			f.Common.PageCount, len(f.Pages)), 0, nil)
	}
	bad, first := 0, rune(-1)
	for r, g := range f.Glyphs.All() {
		if !f.HasPage(int(g.Page)) {
			if bad == 0 {
				first = r
			}
			bad++
		}
	}
	if bad > 0 {
		ec.addWarning(BlockChars, fmt.Sprintf("%d glyphs reference a missing page, first is %#U",
			bad, first), 0, nil)
	}
}
