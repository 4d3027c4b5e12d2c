package bmf

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

const kerningFileContent = "# custom kerning\n\nit -2\nr. -3\nTo  -1\nxx\nab foo\n"

func TestParseKerningFileUTF16(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.bmf")
	defer teardown()
	//
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(kerningFileContent))
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xfe}, data[:2], "expected a BOM")
	pairs, err := ParseKerningFile(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, map[KerningPair]int16{
		{First: 'i', Second: 't'}: -2,
		{First: 'r', Second: '.'}: -3,
		{First: 'T', Second: 'o'}: -1,
	}, pairs)
}

func TestParseKerningFileUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.bmf")
	defer teardown()
	//
	data := append([]byte{0xef, 0xbb, 0xbf}, "ドア -4\r\nAV -1\r\n"...)
	pairs, err := ParseKerningFile(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int16(-4), pairs[KerningPair{First: 'ド', Second: 'ア'}])
	assert.Equal(t, int16(-1), pairs[KerningPair{First: 'A', Second: 'V'}])
	assert.Len(t, pairs, 2)
}
