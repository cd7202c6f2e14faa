package app

import (
	"context"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/life"
	"torus-life/internal/ui"
)

// Logf matches log.Printf.
type Logf func(format string, args ...any)

// RunHeadless advances e until it has produced gens generations (0 means no
// limit), ctx is cancelled, or the engine is finished. A status line is logged
// every `every` generations and once at the end. It returns the number of
// generations advanced.
func RunHeadless(ctx context.Context, e *life.Engine, gens, every int, pace *core.FixedStep, logf Logf) int {
	e.Unpause()
	done := 0
	var frame time.Duration
	for gens == 0 || done < gens {
		if ctx.Err() != nil {
			e.Finish()
			break
		}
		if e.IsFinished() {
			break
		}
		pace.Wait()
		start := time.Now()
		e.Advance()
		frame = time.Since(start)
		done++
		if every > 0 && done%every == 0 {
			logf("%s", ui.FormatStatus(e.Stats(), frame))
		}
	}
	if done == 0 || every <= 0 || done%every != 0 {
		logf("%s", ui.FormatStatus(e.Stats(), frame))
	}
	return done
}
