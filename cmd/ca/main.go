//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"

	"lifegrid/internal/app"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	sim := factory(cfg.Options())
	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed, slog.Default())
	size := sim.Size()

	ebiten.SetWindowTitle("lifegrid - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
