package core

import (
	"errors"
	"fmt"
	"math"
	"slices"

	pcore "torus-life/pkg/core"
)

var (
	// ErrInvalidDimensions reports a zero-sized grid where cells are required.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrDimensionMismatch reports a mask whose size differs from the request.
	ErrDimensionMismatch = errors.New("mask dimensions do not match grid")
	// ErrInvalidProbability reports a live probability outside [0, 1].
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
)

// Grid stores a 2D field of live/dead cells in row-major order.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid allocates a grid with every cell set to fill. Zero or negative
// dimensions produce an empty grid.
func NewGrid(w, h int, fill bool) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, data: make([]bool, w*h)}
	if fill {
		for i := range g.data {
			g.data[i] = true
		}
	}
	return g
}

// RandomGrid samples every cell independently, live with probability p.
func RandomGrid(w, h int, p float64, rng *pcore.RNG) (*Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("random grid: %w (got %v)", ErrInvalidProbability, p)
	}
	g := NewGrid(w, h, false)
	pcore.FillBernoulli(rng.Source(), g.data, p)
	return g, nil
}

// GridFromMask copies a boolean mask into a new grid of the requested size.
func GridFromMask(w, h int, m Mask) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid from mask %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if m == nil {
		return nil, fmt.Errorf("grid from mask: nil mask: %w", ErrInvalidDimensions)
	}
	ms := m.Size()
	if ms.Empty() {
		return nil, fmt.Errorf("grid from mask %dx%d: %w", ms.W, ms.H, ErrInvalidDimensions)
	}
	if ms.W != w || ms.H != h {
		return nil, fmt.Errorf("grid %dx%d from mask %dx%d: %w", w, h, ms.W, ms.H, ErrDimensionMismatch)
	}
	g := NewGrid(w, h, false)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.data[y*w+x] = m.Alive(x, y)
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("core: cell (%d,%d) out of range for %dx%d grid", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Get reports whether the cell at (x, y) is live. It panics when the
// coordinates are outside the grid.
func (g *Grid) Get(x, y int) bool { return g.data[g.Index(x, y)] }

// Alive is Get under the View interface.
func (g *Grid) Alive(x, y int) bool { return g.Get(x, y) }

// Set stores value at (x, y). It panics when the coordinates are outside the
// grid.
func (g *Grid) Set(x, y int, value bool) { g.data[g.Index(x, y)] = value }

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]bool(nil), g.data...)}
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	return g.w == o.w && g.h == o.h && slices.Equal(g.data, o.data)
}
