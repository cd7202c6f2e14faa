package life

import (
	"fmt"

	"torus-life/internal/core"
	pcore "torus-life/pkg/core"
)

// Source supplies the initial grid for an engine. Sources report their own
// failures before any engine is built.
type Source interface {
	Grid(size core.Size) (*core.Grid, error)
}

// Uniform fills every cell with the same state.
type Uniform bool

// Grid implements Source.
func (u Uniform) Grid(size core.Size) (*core.Grid, error) {
	return core.NewGrid(size.W, size.H, bool(u)), nil
}

// Random samples each cell independently with the given live probability.
// A nil RNG is seeded with 0.
type Random struct {
	Probability float64
	RNG         *pcore.RNG
}

// Grid implements Source.
func (r Random) Grid(size core.Size) (*core.Grid, error) {
	rng := r.RNG
	if rng == nil {
		rng = pcore.NewRNG(0)
	}
	return core.RandomGrid(size.W, size.H, r.Probability, rng)
}

// Masked copies a boolean mask, typically a decoded image.
type Masked struct {
	Mask core.Mask
}

// Grid implements Source.
func (m Masked) Grid(size core.Size) (*core.Grid, error) {
	return core.GridFromMask(size.W, size.H, m.Mask)
}

// NewFromSource builds the initial grid from src and wraps it in an Engine.
func NewFromSource(cfg Config, size core.Size, src Source) (*Engine, error) {
	g, err := src.Grid(size)
	if err != nil {
		return nil, fmt.Errorf("initial grid: %w", err)
	}
	return New(cfg, g)
}
