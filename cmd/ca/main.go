//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"gridlife/internal/app"
	"gridlife/pkg/core"
	_ "gridlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	log := cfg.Logger()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Error("unknown sim", "sim", cfg.Sim, "available", core.Names())
		os.Exit(2)
	}
	settings, err := cfg.SimSettings()
	if err != nil {
		log.Error("load settings", "err", err)
		os.Exit(1)
	}
	sim, err := factory(settings)
	if err != nil {
		log.Error("build sim", "sim", cfg.Sim, "err", err)
		os.Exit(1)
	}
	sim.Reset(cfg.Seed)
	if p, ok := sim.(core.ParameterProvider); ok {
		log.Info("sim ready", append([]any{"sim", sim.Name()}, p.Parameters().Flatten()...)...)
	}

	game := app.New(sim, cfg, log)
	size := sim.Size()

	ebiten.SetWindowTitle("gridlife: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
