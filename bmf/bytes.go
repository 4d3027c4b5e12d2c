package bmf

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Reading bytes from a font's binary representation.
// All multi-byte values in BMFont files are little-endian.

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

var le = binary.LittleEndian

// binarySegm is a segment of byte data. We use it throughout this package to
// decode block payloads field by field.
type binarySegm []byte

// Size returns the size of the segment in bytes.
func (b binarySegm) Size() int {
	return len(b)
}

// Bytes returns the segment as a byte slice.
func (b binarySegm) Bytes() []byte {
	return b
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u8 returns the byte in b at the relative offset i.
func (b binarySegm) u8(i int) uint8 {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

// u16 returns the uint16 in b at the relative offset i, or 0 if out of bounds.
func (b binarySegm) u16(i int) uint16 {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0
	}
	return le.Uint16(buf)
}

// i16 returns the signed 16 bit value in b at the relative offset i.
func (b binarySegm) i16(i int) int16 {
	return int16(b.u16(i))
}

// u32 returns the uint32 in b at the relative offset i, or 0 if out of bounds.
func (b binarySegm) u32(i int) uint32 {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0
	}
	return le.Uint32(buf)
}

// cstrings splits a run of NUL-terminated strings. A trailing string without
// terminator is kept. Empty strings between two NULs are kept as well, as they
// still occupy a page slot.
func (b binarySegm) cstrings() []string {
	var strs []string
	rest := []byte(b)
	for len(rest) > 0 {
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			strs = append(strs, string(rest))
			break
		}
		strs = append(strs, string(rest[:i]))
		rest = rest[i+1:]
	}
	return strs
}

// cstring returns the NUL-terminated string at the start of b.
func (b binarySegm) cstring() string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
