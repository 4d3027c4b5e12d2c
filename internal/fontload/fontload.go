/*
Package fontload reads BMFont files and their companion files from disk.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}

// FontExt is the extension of binary BMFont files.
const FontExt = ".fnt"

// KernExt is the extension of custom kerning files.
const KernExt = ".kern"

// Path returns the path of the font file for a font name, relative to
// directory dir. If name has no extension, FontExt is appended.
func Path(dir, name string) string {
	if filepath.Ext(name) == "" {
		name += FontExt
	}
	return filepath.Join(dir, name)
}

// KernFileFor returns the path of the custom kerning file belonging to font
// file path.
func KernFileFor(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + KernExt
}

// LoadFont reads and decodes a BMFont file. Errors reading the file are
// wrapped into bmf.ErrIO.
func LoadFont(path string) (*bmf.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bmf.ErrIO, err)
	}
	f, err := bmf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", filepath.Base(path), err)
	}
	tracer().Debugf("loaded font %q from %s", f.Name(), path)
	return f, nil
}

// LoadKerning reads a custom kerning file. A missing file is not an error and
// results in an empty table.
func LoadKerning(path string) (map[bmf.KerningPair]int16, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", bmf.ErrIO, err)
	}
	defer file.Close()
	pairs, err := bmf.ParseKerningFile(file)
	if err != nil {
		return nil, fmt.Errorf("kerning file %s: %w", filepath.Base(path), err)
	}
	tracer().Debugf("read %d custom kerning pairs from %s", len(pairs), path)
	return pairs, nil
}
