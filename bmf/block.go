package bmf

import (
	"bytes"
	"fmt"
	"io"
)

// BlockType is the 1-byte identifier in front of every block of a BMFont file.
type BlockType uint8

// Block types defined by the BMFont binary format, version 3.
const (
	BlockInfo    BlockType = 1
	BlockCommon  BlockType = 2
	BlockPages   BlockType = 3
	BlockChars   BlockType = 4
	BlockKerning BlockType = 5
)

// BlockCount is the number of top-level blocks following the header.
const BlockCount = 5

const blockPrefixSize = 5 // type + size

func (t BlockType) String() string {
	switch t {
	case BlockInfo:
		return "info"
	case BlockCommon:
		return "common"
	case BlockPages:
		return "pages"
	case BlockChars:
		return "chars"
	case BlockKerning:
		return "kerning"
	case 0:
		return "header"
	}
	return fmt.Sprintf("block(%d)", uint8(t))
}

// Block is a typed, length-prefixed chunk of a font file. Its payload is not
// interpreted.
type Block struct {
	Type    BlockType
	Size    uint32
	Offset  uint32 // offset of the block prefix within the stream
	Payload []byte
}

// BlockReader reads blocks from a binary stream. It has no knowledge of the
// semantics of block payloads; clients know how many blocks to read.
type BlockReader struct {
	r   io.Reader
	pos uint32
}

// NewBlockReader creates a block reader for r. r should be positioned at
// the start of a block.
func NewBlockReader(r io.Reader) *BlockReader {
	return &BlockReader{r: r}
}

// NewBlockReaderAt creates a block reader for r, which has already been
// advanced to byte offset pos of the underlying stream. The offset is used
// for error messages only.
func NewBlockReaderAt(r io.Reader, pos uint32) *BlockReader {
	return &BlockReader{r: r, pos: pos}
}

// Offset returns the number of bytes consumed so far.
func (br *BlockReader) Offset() uint32 {
	return br.pos
}

// ReadBlock reads exactly one block: a 1-byte type, a 4-byte little-endian size
// and size bytes of payload. If the stream ends before all of these have been
// read, ErrTruncatedStream is returned and the partial data is discarded.
func (br *BlockReader) ReadBlock() (Block, error) {
	var prefix [blockPrefixSize]byte
	start := br.pos
	n, err := io.ReadFull(br.r, prefix[:])
	br.pos += uint32(n)
	if err != nil {
		return Block{}, br.truncated(start, "block prefix", err)
	}
	block := Block{
		Type:   BlockType(prefix[0]),
		Size:   le.Uint32(prefix[1:]),
		Offset: start,
	}
	tracer().Debugf("block %s at offset %d has size %d", block.Type, start, block.Size)
	// We let the buffer grow with the data actually present, so a corrupt size
	// field will not trigger a huge allocation.
	var buf bytes.Buffer
	m, err := io.CopyN(&buf, br.r, int64(block.Size))
	br.pos += uint32(m)
	if err != nil {
		return Block{}, br.truncated(start, fmt.Sprintf("%s payload has %d of %d bytes",
			block.Type, m, block.Size), err)
	}
	block.Payload = buf.Bytes()
	return block, nil
}

func (br *BlockReader) truncated(offset uint32, what string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errFontFormat(ErrTruncatedStream, fmt.Sprintf("%s at offset %d", what, offset))
	}
	return fmt.Errorf("%w: %s at offset %d: %v", ErrIO, what, offset, err)
}
