package bmf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseKerningFile reads custom kerning entries from a text file.
//
// Kerning files are expected to be UTF-16 (little-endian unless a byte order
// mark says otherwise) or UTF-8, if starting with a UTF-8 byte order mark.
// There is one entry per line: the first two characters are the pair, followed
// by a space and the pixel displacement, e.g.
//
//	it -2
//
// Empty lines, lines starting with '#' and lines shorter than 4 characters are
// ignored. Lines with a displacement which is not a number are skipped.
func ParseKerningFile(r io.Reader) (map[KerningPair]int16, error) {
	utf16 := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	decoder := unicode.BOMOverride(utf16.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	pairs := make(map[KerningPair]int16)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := []rune(strings.TrimRight(scanner.Text(), "\r"))
		if len(line) == 0 || line[0] == '#' || len(line) < 4 {
			continue
		}
		numstr := strings.TrimSpace(string(line[3:]))
		amount, err := strconv.ParseInt(numstr, 10, 16)
		if err != nil {
			tracer().Errorf("kerning file line %d: invalid displacement %q", lineno, numstr)
			continue
		}
		pairs[KerningPair{First: line[0], Second: line[1]}] = int16(amount)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("kerning file has %d entries", len(pairs))
	return pairs, nil
}
