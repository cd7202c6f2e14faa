package life

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Strategy selects how an Engine computes the next generation.
type Strategy uint8

const (
	// StrategyFullScan evaluates every cell. It is the reference algorithm.
	StrategyFullScan Strategy = iota
	// StrategyFrontier evaluates only cells in the active-cell frontier.
	StrategyFrontier
	// StrategyParallel splits the frontier across worker goroutines.
	StrategyParallel
)

// ErrUnknownStrategy reports a strategy value or name that is not recognized.
var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = [...]string{
	StrategyFullScan: "full",
	StrategyFrontier: "frontier",
	StrategyParallel: "parallel",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

func (s Strategy) valid() bool { return int(s) < len(strategyNames) }

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// Config holds engine options. Grid dimensions come from the initial grid.
type Config struct {
	// Probability is the live-cell chance used by Reset.
	Probability float64
	Seed        int64
	Strategy    Strategy
	// Workers bounds the goroutines used by StrategyParallel.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Probability: 0.5,
		Seed:        42,
		Strategy:    StrategyFrontier,
		Workers:     runtime.NumCPU(),
	}
}
