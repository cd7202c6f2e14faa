package app

import (
	"torus-life/internal/core"
	"torus-life/internal/life"
	"torus-life/internal/mask"
	pcore "torus-life/pkg/core"
)

// BuildEngine seeds a board from the mask image when one is configured and
// from a random fill otherwise.
func BuildEngine(c *Config) (*life.Engine, error) {
	cfg, err := c.EngineConfig()
	if err != nil {
		return nil, err
	}

	var src life.Source
	size := core.Size{W: c.Width, H: c.Height}
	if c.Mask != "" {
		m, err := mask.Load(c.Mask)
		if err != nil {
			return nil, err
		}
		size = m.Size()
		src = life.Masked{Mask: m}
	} else {
		src = life.Random{Probability: c.Fill, RNG: pcore.NewRNG(c.Seed)}
	}

	e, err := life.NewFromSource(cfg, size, src)
	if err != nil {
		return nil, err
	}
	if c.StartPaused {
		e.Pause()
	}
	return e, nil
}
