package ui

import (
	"fmt"
	"time"

	"torus-life/internal/life"
)

// FormatStatus renders the one-line HUD text for a frame that took frame to
// produce.
func FormatStatus(s life.Stats, frame time.Duration) string {
	fps := 0
	if frame > 0 {
		fps = int(time.Second / frame)
	}
	line := fmt.Sprintf("%dx%d Gen:%d FT: %v FPS: %d Processed Cells: %d Pop: %d",
		s.Size.W, s.Size.H, s.Generation, frame.Round(time.Microsecond), fps, s.ActiveCells, s.Population)
	switch {
	case s.Finished:
		line += " [finished]"
	case s.Paused:
		line += " [paused]"
	}
	return line
}
