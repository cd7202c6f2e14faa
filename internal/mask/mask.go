// Package mask turns decoded images into boolean masks for seeding a board.
// Pure black, non-transparent pixels are live; everything else is dead.
package mask

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"

	"torus-life/internal/core"
)

// Image adapts an image.Image to core.Mask.
type Image struct {
	img    image.Image
	bounds image.Rectangle
}

// FromImage wraps img. Mask coordinates start at the image's minimum point.
func FromImage(img image.Image) *Image {
	return &Image{img: img, bounds: img.Bounds()}
}

// Size returns the image dimensions.
func (m *Image) Size() core.Size {
	return core.Size{W: m.bounds.Dx(), H: m.bounds.Dy()}
}

// Alive reports whether the pixel at (x, y) is black.
func (m *Image) Alive(x, y int) bool {
	r, g, b, a := m.img.At(m.bounds.Min.X+x, m.bounds.Min.Y+y).RGBA()
	return a != 0 && r == 0 && g == 0 && b == 0
}

// Decode reads a BMP, PNG or GIF image and returns its mask together with the
// detected format name.
func Decode(r io.Reader) (*Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode mask: %w", err)
	}
	return FromImage(img), format, nil
}

// Load decodes the image file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load mask: %w", err)
	}
	defer f.Close()
	m, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load mask %s: %w", path, err)
	}
	return m, nil
}
