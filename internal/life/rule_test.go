package life

import (
	"testing"

	"torus-life/internal/core"
)

func TestNextStateTruthTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := NextState(true, n); got != wantAlive {
			t.Fatalf("NextState(true, %d)=%v, expected %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := NextState(false, n); got != wantBorn {
			t.Fatalf("NextState(false, %d)=%v, expected %v", n, got, wantBorn)
		}
	}
}

func TestCountLiveNeighborsSingleCellOnSmallTorus(t *testing.T) {
	g := core.NewGrid(3, 3, false)
	g.Set(0, 0, true)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 1
			if x == 0 && y == 0 {
				want = 0
			}
			if got := CountLiveNeighbors(g, x, y); got != want {
				t.Fatalf("neighbors of (%d,%d)=%d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestCountLiveNeighborsFullSmallTorus(t *testing.T) {
	g := core.NewGrid(3, 3, true)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := CountLiveNeighbors(g, x, y); got != 8 {
				t.Fatalf("neighbors of (%d,%d)=%d, expected 8", x, y, got)
			}
		}
	}
}

func TestCountLiveNeighborsWrapsEdgesAndCorners(t *testing.T) {
	const w, h = 10, 8
	cases := []struct {
		name  string
		live  core.Coord
		probe core.Coord
	}{
		{"bottom edge above top-left", core.Coord{X: 0, Y: h - 1}, core.Coord{X: 0, Y: 0}},
		{"right edge left of top-left", core.Coord{X: w - 1, Y: 0}, core.Coord{X: 0, Y: 0}},
		{"opposite corner", core.Coord{X: w - 1, Y: h - 1}, core.Coord{X: 0, Y: 0}},
		{"top-left from bottom-right", core.Coord{X: 0, Y: 0}, core.Coord{X: w - 1, Y: h - 1}},
		{"top edge below bottom row", core.Coord{X: 4, Y: 0}, core.Coord{X: 5, Y: h - 1}},
	}
	for _, tc := range cases {
		g := core.NewGrid(w, h, false)
		g.Set(tc.live.X, tc.live.Y, true)
		if got := CountLiveNeighbors(g, tc.probe.X, tc.probe.Y); got != 1 {
			t.Fatalf("%s: neighbors=%d, expected 1", tc.name, got)
		}
	}

	g := core.NewGrid(w, h, false)
	g.Set(5, 4, true)
	if got := CountLiveNeighbors(g, 0, 0); got != 0 {
		t.Fatalf("distant cell counted as neighbor, got %d", got)
	}
}
