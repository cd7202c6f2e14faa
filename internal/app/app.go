//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/core"
	"torus-life/internal/life"
	"torus-life/internal/render"
	"torus-life/internal/ui"
)

// Game adapts a life.Engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *core.FixedStep

	scale     int
	lastFrame time.Time
}

// New constructs a Game for the provided engine.
func New(e *life.Engine, scale, gps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		engine:  e,
		painter: render.NewGridPainter(e.Size()),
		hud:     ui.NewHUD(),
		pace:    core.NewFixedStep(gps),
		scale:   scale,
	}
}

// Update handles key presses and advances the engine once per tick while it
// is running.
func (g *Game) Update() error {
	now := time.Now()
	var frame time.Duration
	if !g.lastFrame.IsZero() {
		frame = now.Sub(g.lastFrame)
	}
	g.lastFrame = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Finish()
	}
	if g.engine.IsFinished() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.engine.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.engine.Unpause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.Reseed(now.UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.engine.Advance()
	}

	if !g.engine.IsPaused() && g.pace.ShouldStep() {
		g.engine.Advance()
	}
	g.hud.Update(g.engine.Stats(), frame)
	return nil
}

// Draw renders the current generation and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Board(), render.LiveColor, render.DeadColor, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W * g.scale, s.H * g.scale
}
