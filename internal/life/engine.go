package life

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"torus-life/internal/core"
	pcore "torus-life/pkg/core"
)

// minParallelCells is the frontier size below which StrategyParallel runs on
// the calling goroutine.
const minParallelCells = 2048

// Stats is a snapshot of the engine counters a host loop displays.
type Stats struct {
	Size        core.Size
	Generation  int
	Population  int
	ActiveCells int
	Paused      bool
	Finished    bool
}

// Engine advances Conway's Game of Life on a toroidal grid. It is not safe
// for concurrent use; the host loop owns it.
type Engine struct {
	cfg Config
	rng *pcore.RNG

	grid     *core.Grid
	frontier *Frontier

	generation int
	evaluated  int
	paused     bool
	finished   bool
}

// New returns an Engine that starts from initial. The engine takes ownership
// of the grid.
func New(cfg Config, initial *core.Grid) (*Engine, error) {
	if initial == nil || initial.Size().Empty() {
		return nil, fmt.Errorf("new engine: %w", core.ErrInvalidDimensions)
	}
	if !cfg.Strategy.valid() {
		return nil, fmt.Errorf("new engine: %w %v", ErrUnknownStrategy, cfg.Strategy)
	}
	if math.IsNaN(cfg.Probability) || cfg.Probability < 0 || cfg.Probability > 1 {
		return nil, fmt.Errorf("new engine: %w (got %v)", core.ErrInvalidProbability, cfg.Probability)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	e := &Engine{cfg: cfg, rng: pcore.NewRNG(cfg.Seed)}
	e.load(initial)
	return e, nil
}

func (e *Engine) load(g *core.Grid) {
	e.grid = g
	e.frontier = FrontierOf(g)
	e.generation = 0
	e.evaluated = e.pendingCells()
}

// pendingCells is the number of cells the next Advance will evaluate.
func (e *Engine) pendingCells() int {
	if e.cfg.Strategy == StrategyFullScan {
		return e.grid.Size().Cells()
	}
	return e.frontier.Len()
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Advance computes the next generation. It is a no-op once the engine is
// finished. Pausing does not block Advance; hosts check IsPaused themselves
// so a paused board can still be single-stepped.
func (e *Engine) Advance() {
	if e.finished {
		return
	}
	var next *core.Grid
	var nf *Frontier
	switch e.cfg.Strategy {
	case StrategyFullScan:
		next, nf = stepFull(e.grid)
		e.evaluated = e.grid.Size().Cells()
	case StrategyParallel:
		next, nf = stepParallel(e.grid, e.frontier, e.cfg.Workers)
		e.evaluated = e.frontier.Len()
	default:
		next, nf = stepFrontier(e.grid, e.frontier.coords)
		e.evaluated = e.frontier.Len()
	}
	e.grid, e.frontier = next, nf
	e.generation++
}

// AdvanceN calls Advance up to n times and returns how many generations were
// produced.
func (e *Engine) AdvanceN(n int) int {
	done := 0
	for ; done < n && !e.finished; done++ {
		e.Advance()
	}
	return done
}

// stepFull evaluates every cell of cur.
func stepFull(cur *core.Grid) (*core.Grid, *Frontier) {
	size := cur.Size()
	next := core.NewGrid(size.W, size.H, false)
	nf := NewFrontier(size)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if NextState(cur.Get(x, y), CountLiveNeighbors(cur, x, y)) {
				next.Set(x, y, true)
				nf.AddNeighborhood(x, y)
			}
		}
	}
	return next, nf
}

// stepFrontier evaluates only the given cells. Any cell outside the frontier
// has no live neighbor, so it is dead in the new grid.
func stepFrontier(cur *core.Grid, cells []core.Coord) (*core.Grid, *Frontier) {
	size := cur.Size()
	next := core.NewGrid(size.W, size.H, false)
	nf := NewFrontier(size)
	for _, c := range cells {
		if NextState(cur.Get(c.X, c.Y), CountLiveNeighbors(cur, c.X, c.Y)) {
			next.Set(c.X, c.Y, true)
			nf.AddNeighborhood(c.X, c.Y)
		}
	}
	return next, nf
}

// stepParallel partitions the frontier into contiguous chunks. Frontier
// members are unique wrapped cells, so workers write disjoint cells of next
// and read only cur. Live cells are merged into the new frontier after the
// workers join.
func stepParallel(cur *core.Grid, f *Frontier, workers int) (*core.Grid, *Frontier) {
	cells := f.coords
	if workers <= 1 || len(cells) < minParallelCells {
		return stepFrontier(cur, cells)
	}
	size := cur.Size()
	next := core.NewGrid(size.W, size.H, false)
	chunk := (len(cells) + workers - 1) / workers
	born := make([][]core.Coord, (len(cells)+chunk-1)/chunk)

	var eg errgroup.Group
	for i := range born {
		part := cells[i*chunk : min((i+1)*chunk, len(cells))]
		eg.Go(func() error {
			var live []core.Coord
			for _, c := range part {
				if NextState(cur.Get(c.X, c.Y), CountLiveNeighbors(cur, c.X, c.Y)) {
					next.Set(c.X, c.Y, true)
					live = append(live, c)
				}
			}
			born[i] = live
			return nil
		})
	}
	_ = eg.Wait()

	nf := NewFrontier(size)
	for _, live := range born {
		for _, c := range live {
			nf.AddNeighborhood(c.X, c.Y)
		}
	}
	return next, nf
}

// Reset replaces the board with a fresh random grid of the same size, drawn
// from the engine's RNG at the configured probability. Paused and finished
// flags are left untouched.
func (e *Engine) Reset() {
	size := e.grid.Size()
	// Probability was validated by New.
	g, _ := core.RandomGrid(size.W, size.H, e.cfg.Probability, e.rng)
	e.load(g)
}

// Reseed restarts the engine's RNG from seed and resets the board.
func (e *Engine) Reseed(seed int64) {
	e.cfg.Seed = seed
	e.rng = pcore.NewRNG(seed)
	e.Reset()
}

// Pause stops the host loop from advancing.
func (e *Engine) Pause() { e.paused = true }

// Unpause resumes advancing.
func (e *Engine) Unpause() { e.paused = false }

// TogglePause flips the paused flag.
func (e *Engine) TogglePause() { e.paused = !e.paused }

// Finish marks the engine terminal. Later Advance calls do nothing.
func (e *Engine) Finish() { e.finished = true }

// IsPaused reports the paused flag.
func (e *Engine) IsPaused() bool { return e.paused }

// IsFinished reports whether Finish was called.
func (e *Engine) IsFinished() bool { return e.finished }

// Board exposes the current generation as a read-only view. The view stays
// bound to that generation after later advances.
func (e *Engine) Board() core.View { return boardView{e.grid} }

type boardView struct{ g *core.Grid }

func (b boardView) Size() core.Size { return b.g.Size() }
func (b boardView) Alive(x, y int) bool { return b.g.Get(x, y) }

// Snapshot returns a copy of the current grid.
func (e *Engine) Snapshot() *core.Grid { return e.grid.Clone() }

// CellAt reports whether (x, y) is live in the current generation.
func (e *Engine) CellAt(x, y int) bool { return e.grid.Get(x, y) }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Width returns the number of columns.
func (e *Engine) Width() int { return e.grid.Width() }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.grid.Height() }

// Generation returns the number of generations since construction or reset.
func (e *Engine) Generation() int { return e.generation }

// Population counts live cells in the current generation.
func (e *Engine) Population() int { return e.grid.Population() }

// ActiveCellCount returns how many cells the most recent Advance evaluated.
// Before the first Advance it reports the cells the next one will evaluate.
func (e *Engine) ActiveCellCount() int { return e.evaluated }

// FrontierContains reports whether (x, y) will be evaluated by the next
// frontier pass.
func (e *Engine) FrontierContains(x, y int) bool { return e.frontier.Contains(x, y) }

// FrontierLen returns the size of the pending frontier.
func (e *Engine) FrontierLen() int { return e.frontier.Len() }

// Strategy returns the configured advance strategy.
func (e *Engine) Strategy() Strategy { return e.cfg.Strategy }

// Stats gathers the counters shown by host loops.
func (e *Engine) Stats() Stats {
	return Stats{
		Size:        e.grid.Size(),
		Generation:  e.generation,
		Population:  e.grid.Population(),
		ActiveCells: e.evaluated,
		Paused:      e.paused,
		Finished:    e.finished,
	}
}
