package ui

import (
	"testing"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/life"
)

func TestFormatStatus(t *testing.T) {
	s := life.Stats{
		Size:        core.Size{W: 200, H: 100},
		Generation:  12,
		Population:  40,
		ActiveCells: 300,
	}
	cases := []struct {
		name  string
		stats func(life.Stats) life.Stats
		frame time.Duration
		want  string
	}{
		{
			name:  "running",
			stats: func(s life.Stats) life.Stats { return s },
			frame: 20 * time.Millisecond,
			want:  "200x100 Gen:12 FT: 20ms FPS: 50 Processed Cells: 300 Pop: 40",
		},
		{
			name:  "paused without timing",
			stats: func(s life.Stats) life.Stats { s.Paused = true; return s },
			want:  "200x100 Gen:12 FT: 0s FPS: 0 Processed Cells: 300 Pop: 40 [paused]",
		},
		{
			name:  "finished wins over paused",
			stats: func(s life.Stats) life.Stats { s.Paused = true; s.Finished = true; return s },
			frame: time.Second,
			want:  "200x100 Gen:12 FT: 1s FPS: 1 Processed Cells: 300 Pop: 40 [finished]",
		},
	}
	for _, tc := range cases {
		if got := FormatStatus(tc.stats(s), tc.frame); got != tc.want {
			t.Fatalf("%s: got %q, expected %q", tc.name, got, tc.want)
		}
	}
}
