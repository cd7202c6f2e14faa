package core

import (
	"errors"
	"math"
	"testing"

	pcore "torus-life/pkg/core"
)

func TestNewGridFill(t *testing.T) {
	g := NewGrid(4, 3, true)
	if got := g.Population(); got != 12 {
		t.Fatalf("expected 12 live cells, got %d", got)
	}
	g = NewGrid(4, 3, false)
	if got := g.Population(); got != 0 {
		t.Fatalf("expected empty grid, got %d live cells", got)
	}
}

func TestNewGridZeroAndNegative(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 5}, {5, 0}, {0, 0}, {-3, 2}} {
		g := NewGrid(tc.w, tc.h, true)
		if !g.Size().Empty() {
			t.Fatalf("NewGrid(%d,%d) expected empty size, got %+v", tc.w, tc.h, g.Size())
		}
		if g.Population() != 0 {
			t.Fatalf("NewGrid(%d,%d) expected no cells", tc.w, tc.h)
		}
	}
}

func TestGridRowMajorIndex(t *testing.T) {
	g := NewGrid(5, 4, false)
	if got := g.Index(3, 2); got != 2*5+3 {
		t.Fatalf("Index(3,2)=%d, expected 13", got)
	}
	g.Set(3, 2, true)
	if !g.Get(3, 2) || g.Get(2, 3) {
		t.Fatal("Set(3,2) must not alias the transposed cell")
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(3, 3, false)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Get(%d,%d) expected panic", c.X, c.Y)
				}
			}()
			g.Get(c.X, c.Y)
		}()
	}
}

func TestRandomGridProbability(t *testing.T) {
	rng := pcore.NewRNG(1)
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		if _, err := RandomGrid(4, 4, p, rng); !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("p=%v expected ErrInvalidProbability, got %v", p, err)
		}
	}

	full, err := RandomGrid(8, 8, 1, rng)
	if err != nil {
		t.Fatal(err)
	}
	if full.Population() != 64 {
		t.Fatalf("p=1 expected every cell live, got %d", full.Population())
	}
	none, err := RandomGrid(8, 8, 0, rng)
	if err != nil {
		t.Fatal(err)
	}
	if none.Population() != 0 {
		t.Fatalf("p=0 expected no live cells, got %d", none.Population())
	}
}

func TestRandomGridDeterministic(t *testing.T) {
	a, err := RandomGrid(32, 24, 0.4, pcore.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomGrid(32, 24, 0.4, pcore.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed and probability must produce the same grid")
	}
	c, err := RandomGrid(32, 24, 0.4, pcore.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestGridFromMask(t *testing.T) {
	diag := MaskFunc{W: 3, H: 3, Fn: func(x, y int) bool { return x == y }}
	g, err := GridFromMask(3, 3, diag)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if g.Get(x, y) != (x == y) {
				t.Fatalf("cell (%d,%d)=%v, expected %v", x, y, g.Get(x, y), x == y)
			}
		}
	}

	if _, err := GridFromMask(4, 3, diag); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := GridFromMask(0, 3, diag); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions for zero width, got %v", err)
	}
	empty := MaskFunc{Fn: func(int, int) bool { return true }}
	if _, err := GridFromMask(3, 3, empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions for empty mask, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2, false)
	c := g.Clone()
	c.Set(1, 1, true)
	if g.Get(1, 1) {
		t.Fatal("mutating a clone must not affect the original")
	}
	if g.Equal(c) {
		t.Fatal("grids with different cells must not be equal")
	}
}

func TestSizeWrapNegative(t *testing.T) {
	s := Size{W: 5, H: 4}
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{-6, 9, 4, 1},
		{2, 2, 2, 2},
	}
	for _, tc := range cases {
		x, y := s.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}
