package life

import "torus-life/internal/core"

// Frontier is the set of cells that may change state in the next generation.
// Coordinates are wrapped on insertion, so each cell appears at most once.
type Frontier struct {
	size   core.Size
	seen   []bool
	coords []core.Coord
}

// NewFrontier returns an empty frontier for a grid of the given size.
func NewFrontier(size core.Size) *Frontier {
	return &Frontier{size: size, seen: make([]bool, size.Cells())}
}

// FrontierOf scans every cell of v and adds each live cell with its eight
// neighbors.
func FrontierOf(v core.View) *Frontier {
	size := v.Size()
	f := NewFrontier(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if v.Alive(x, y) {
				f.AddNeighborhood(x, y)
			}
		}
	}
	return f
}

// Add inserts (x, y) after wrapping it onto the torus.
func (f *Frontier) Add(x, y int) {
	x, y = f.size.Wrap(x, y)
	idx := y*f.size.W + x
	if f.seen[idx] {
		return
	}
	f.seen[idx] = true
	f.coords = append(f.coords, core.Coord{X: x, Y: y})
}

// AddNeighborhood inserts (x, y) and its Moore neighborhood.
func (f *Frontier) AddNeighborhood(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			f.Add(x+dx, y+dy)
		}
	}
}

// Contains reports whether the wrapped (x, y) is a member.
func (f *Frontier) Contains(x, y int) bool {
	if f.size.Empty() {
		return false
	}
	x, y = f.size.Wrap(x, y)
	return f.seen[y*f.size.W+x]
}

// Len returns the number of member cells.
func (f *Frontier) Len() int { return len(f.coords) }

// Coords returns a copy of the members in insertion order.
func (f *Frontier) Coords() []core.Coord {
	return append([]core.Coord(nil), f.coords...)
}
