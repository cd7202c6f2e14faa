package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBernoulli sets each element of buf independently to true with
// probability p. The values 0 and 1 never consult the source for a flip.
func FillBernoulli(r *rand.Rand, buf []bool, p float64) {
	switch {
	case p <= 0:
		clear(buf)
	case p >= 1:
		for i := range buf {
			buf[i] = true
		}
	default:
		for i := range buf {
			buf[i] = r.Float64() < p
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
