package app

import (
	"flag"
	"fmt"

	"torus-life/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	// TPS is the host frame rate; GPS caps generations per second (0 advances
	// every frame).
	TPS int
	GPS int

	Seed        int64
	Fill        float64
	ResetFill   float64
	Strategy    string
	Workers     int
	Mask        string
	StartPaused bool

	// Headless only.
	Generations int
	Every       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:       250,
		Height:      250,
		Scale:       4,
		TPS:         60,
		Seed:        def.Seed,
		Fill:        0.3,
		ResetFill:   def.Probability,
		Strategy:    def.Strategy.String(),
		Workers:     def.Workers,
		StartPaused: true,
		Generations: 1000,
		Every:       100,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells (ignored with -mask)")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells (ignored with -mask)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second, 0 for one per frame")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Fill, "p", c.Fill, "live probability of the initial random board")
	fs.Float64Var(&c.ResetFill, "reset-p", c.ResetFill, "live probability used on reset")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "advance strategy: full, frontier or parallel")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines for the parallel strategy")
	fs.StringVar(&c.Mask, "mask", c.Mask, "image (bmp, png, gif) whose black pixels seed the board")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start paused")
	fs.IntVar(&c.Generations, "gens", c.Generations, "generations to run headless, 0 to run until interrupted")
	fs.IntVar(&c.Every, "every", c.Every, "log a status line every N generations when headless")
}

// EngineConfig translates the flags into engine options.
func (c *Config) EngineConfig() (life.Config, error) {
	strategy, err := life.ParseStrategy(c.Strategy)
	if err != nil {
		return life.Config{}, fmt.Errorf("flag -strategy: %w", err)
	}
	return life.Config{
		Probability: c.ResetFill,
		Seed:        c.Seed,
		Strategy:    strategy,
		Workers:     c.Workers,
	}, nil
}
