package render

import (
	"image/color"

	"torus-life/internal/core"
)

// Default colors: live cells are drawn black on a white field.
var (
	LiveColor color.Color = color.Black
	DeadColor color.Color = color.White
)

// FillRGBA converts the cells of v into RGBA pixels in buf, one pixel per
// cell in row-major order. It returns false when buf does not hold exactly
// four bytes per cell.
func FillRGBA(buf []byte, v core.View, on, off color.Color) bool {
	size := v.Size()
	if len(buf) != 4*size.Cells() {
		return false
	}
	onPx := rgba8(on)
	offPx := rgba8(off)
	i := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			px := offPx
			if v.Alive(x, y) {
				px = onPx
			}
			copy(buf[i:i+4], px[:])
			i += 4
		}
	}
	return true
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
