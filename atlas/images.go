package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrUnknownImageFormat is returned for page files with an unsupported extension.
var ErrUnknownImageFormat = errors.New("atlas: unknown page image format")

// ImageLoader is a Loader which decodes page images into alpha masks held in
// memory. It serves software rendering and tools; GPU backends will upload
// the images instead.
//
// Supported formats are PNG, BMP, TIFF and raw files: 8 bits of luminance
// per pixel, dimension × dimension pixels, no header.
type ImageLoader struct {
	mu    sync.Mutex
	masks []*image.Alpha
}

// NewImageLoader creates an empty image loader.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{}
}

// LoadPage decodes the page image at path. Handles start at 1.
func (il *ImageLoader) LoadPage(path string, dimension int) (Handle, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	mask, err := DecodePage(file, filepath.Ext(path), dimension)
	if err != nil {
		return 0, fmt.Errorf("page %s: %w", path, err)
	}
	return il.Add(mask), nil
}

// Add stores a mask and returns its handle.
func (il *ImageLoader) Add(mask *image.Alpha) Handle {
	il.mu.Lock()
	defer il.mu.Unlock()
	il.masks = append(il.masks, mask)
	return Handle(len(il.masks))
}

// Mask returns the alpha mask for handle h.
func (il *ImageLoader) Mask(h Handle) (*image.Alpha, bool) {
	il.mu.Lock()
	defer il.mu.Unlock()
	if h == 0 || int(h) > len(il.masks) {
		return nil, false
	}
	return il.masks[h-1], true
}

// DecodePage decodes a page image with the given file extension into an
// alpha mask. dimension is needed for raw files only.
func DecodePage(r io.Reader, ext string, dimension int) (*image.Alpha, error) {
	var img image.Image
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		img, err = png.Decode(r)
	case ".bmp":
		img, err = bmp.Decode(r)
	case ".tif", ".tiff":
		img, err = tiff.Decode(r)
	case ".raw":
		return decodeRaw(r, dimension)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImageFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return AlphaMask(img), nil
}

// decodeRaw reads a square luminance image without header.
func decodeRaw(r io.Reader, dimension int) (*image.Alpha, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("raw page: invalid dimension %d", dimension)
	}
	mask := image.NewAlpha(image.Rect(0, 0, dimension, dimension))
	if _, err := io.ReadFull(r, mask.Pix); err != nil {
		return nil, fmt.Errorf("raw page: %w", err)
	}
	return mask, nil
}

// AlphaMask converts a page image to an alpha mask. Grayscale pages carry the
// glyph coverage in their luminance, all other pages in their alpha channel.
func AlphaMask(img image.Image) *image.Alpha {
	if a, ok := img.(*image.Alpha); ok {
		return a
	}
	bounds := img.Bounds()
	mask := image.NewAlpha(bounds)
	switch src := img.(type) {
	case *image.Gray:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				mask.SetAlpha(x, y, color.Alpha{A: src.GrayAt(x, y).Y})
			}
		}
	case *image.Paletted:
		if isGrayPalette(src.Palette) {
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
					mask.SetAlpha(x, y, color.Alpha{A: g.Y})
				}
			}
			break
		}
		draw.Draw(mask, bounds, img, bounds.Min, draw.Src)
	default:
		draw.Draw(mask, bounds, img, bounds.Min, draw.Src)
	}
	return mask
}

// isGrayPalette reports whether all colors of a palette are opaque grays.
func isGrayPalette(p color.Palette) bool {
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if r != g || g != b || a != 0xffff {
			return false
		}
	}
	return true
}
