package bmf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/bmfont/internal/bmftest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.bmf")
	defer teardown()
	//
	data := append(bmftest.Block(7, []byte{1, 2, 3}), bmftest.Block(2, nil)...)
	br := NewBlockReader(bytes.NewReader(data))
	b, err := br.ReadBlock()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Type != 7 || b.Size != 3 || !bytes.Equal(b.Payload, []byte{1, 2, 3}) {
		t.Errorf("unexpected block %+v", b)
	}
	if br.Offset() != 8 {
		t.Errorf("expected reader at offset 8, is at %d", br.Offset())
	}
	b, err = br.ReadBlock()
	if err != nil {
		t.Fatalf("unexpected error for empty block: %v", err)
	}
	if b.Type != BlockCommon || b.Size != 0 || len(b.Payload) != 0 {
		t.Errorf("unexpected empty block %+v", b)
	}
	if b.Offset != 8 {
		t.Errorf("expected second block at offset 8, is %d", b.Offset)
	}
}

func TestReadBlockTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.bmf")
	defer teardown()
	//
	full := bmftest.Block(4, make([]byte, 40))
	tests := []struct {
		name string
		data []byte
	}{
		{"empty stream", nil},
		{"type only", full[:1]},
		{"partial size", full[:3]},
		{"partial payload", full[:20]},
		{"payload missing one byte", full[:len(full)-1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := NewBlockReader(bytes.NewReader(tt.data))
			b, err := br.ReadBlock()
			if !errors.Is(err, ErrTruncatedStream) {
				t.Fatalf("expected ErrTruncatedStream, got %v", err)
			}
			if b.Payload != nil {
				t.Errorf("expected no partial payload, got %d bytes", len(b.Payload))
			}
		})
	}
}

func TestReadBlockHugeSize(t *testing.T) {
	// size field claims 4 GB, stream has 2 bytes
	data := []byte{4, 0xff, 0xff, 0xff, 0xff, 1, 2}
	br := NewBlockReader(bytes.NewReader(data))
	if _, err := br.ReadBlock(); !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("expected ErrTruncatedStream for oversized block, got %v", err)
	}
}

func TestBlockTypeString(t *testing.T) {
	if BlockKerning.String() != "kerning" {
		t.Errorf("expected block type 5 to be 'kerning', is %s", BlockKerning)
	}
	if BlockType(9).String() != "block(9)" {
		t.Errorf("expected unknown block type to be 'block(9)', is %s", BlockType(9))
	}
}
