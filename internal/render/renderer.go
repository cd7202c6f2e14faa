//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/internal/core"
)

// GridPainter keeps one RGBA image in sync with a board and draws it scaled.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(size.W, size.H),
		buf:  make([]byte, 4*size.Cells()),
	}
}

// Blit uploads the board into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, v core.View, on, off color.Color, scale int) {
	if !FillRGBA(gp.buf, v, on, off) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
