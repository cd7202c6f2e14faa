//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/life"
)

const (
	hudHeight  = 20
	hudPadding = 6
)

// HUD draws the status line across the top of the board.
type HUD struct {
	line  string
	pixel *ebiten.Image
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the status line.
func (h *HUD) Update(s life.Stats, frame time.Duration) {
	h.line = FormatStatus(s, frame)
}

// Draw paints the status bar onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.line == "" {
		return
	}
	face := basicfont.Face7x13
	width := text.BoundString(face, h.line).Dx() + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), hudHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, h.line, face, hudPadding, hudHeight-hudPadding, color.RGBA{R: 255, G: 0, B: 255, A: 255})
}
