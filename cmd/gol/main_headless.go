//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"torus-life/internal/app"
	"torus-life/internal/core"
)

// The default build runs without a window. Build with -tags ebiten for the GUI.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := app.BuildEngine(cfg)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("running %s strategy on %dx%d board", engine.Strategy(), engine.Width(), engine.Height())
	n := app.RunHeadless(ctx, engine, cfg.Generations, cfg.Every, core.NewFixedStep(cfg.GPS), log.Printf)
	log.Printf("advanced %d generations", n)
}
