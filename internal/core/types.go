package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Empty reports whether the size covers no cells.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Wrap applies toroidal wrapping to the provided coordinates. The modulo is
// taken on signed values so negative offsets land on the opposite edge.
func (s Size) Wrap(x, y int) (int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.H + s.H) % s.H
	return x, y
}

// Contains reports whether (x, y) lies inside [0,W) x [0,H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Coord is an unwrapped or wrapped cell position used for bookkeeping.
type Coord struct {
	X, Y int
}

// View is a read-only window onto a grid of cells.
type View interface {
	Size() Size
	Alive(x, y int) bool
}

// Mask is a two-dimensional boolean source, such as a decoded image.
type Mask interface {
	Size() Size
	Alive(x, y int) bool
}

// MaskFunc adapts a predicate with explicit dimensions to the Mask interface.
type MaskFunc struct {
	W, H int
	Fn   func(x, y int) bool
}

// Size returns the mask dimensions.
func (m MaskFunc) Size() Size { return Size{W: m.W, H: m.H} }

// Alive evaluates the predicate.
func (m MaskFunc) Alive(x, y int) bool { return m.Fn(x, y) }
