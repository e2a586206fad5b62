// Command life-run evolves a Life board without a window and reports the
// population as it goes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"gridlife/internal/app"
	"gridlife/internal/render"
	"gridlife/pkg/core"
	"gridlife/pkg/sims/life"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	overrides  app.KVList
	steps      int
	tps        int
	every      int
	print      bool
	logLevel   string
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	opts := options{steps: 100, every: 10, logLevel: "info"}
	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.configPath, "config", "", "YAML file with board settings")
	fs.Var(&opts.overrides, "set", "board setting in key=value form (repeatable)")
	fs.IntVar(&opts.steps, "steps", opts.steps, "generations to run")
	fs.IntVar(&opts.tps, "tps", 0, "generations per second (0 runs unpaced)")
	fs.IntVar(&opts.every, "every", opts.every, "log population every N generations")
	fs.BoolVar(&opts.print, "print", false, "print the board after the final generation")
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.steps < 0 {
		return opts, fmt.Errorf("steps must be >= 0, got %d", opts.steps)
	}
	return opts, nil
}

func loadConfig(opts options) (life.Config, error) {
	cfg := life.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = life.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, err
		}
	}
	return cfg.Apply(opts.overrides.Map()), nil
}

func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	opts, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	sim.Reset(cfg.Seed)
	engine := sim.Engine()
	log.Info("board ready", sim.Parameters().Flatten()...)
	log.Info("generation", "generation", engine.Generation(), "population", engine.Population())

	var pacer *core.FixedStep
	if opts.tps > 0 {
		pacer = core.NewFixedStep(opts.tps)
	}

	start := time.Now()
	for engine.Generation() < uint64(opts.steps) {
		if err := wait(ctx, pacer); err != nil {
			log.Warn("interrupted", "generation", engine.Generation())
			break
		}
		sim.Step()
		pop := engine.Population()
		if opts.every > 0 && engine.Generation()%uint64(opts.every) == 0 {
			log.Info("generation", "generation", engine.Generation(), "population", pop)
		}
		if pop == 0 {
			log.Info("extinct", "generation", engine.Generation())
			break
		}
	}
	log.Info("done",
		"generation", engine.Generation(),
		"population", engine.Population(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if opts.print {
		return render.WriteText(out, sim.Cells(), sim.Size().W, 'O', '.')
	}
	return nil
}

// wait blocks until the pacer allows another generation or ctx is done. A nil
// pacer only checks ctx.
func wait(ctx context.Context, pacer *core.FixedStep) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pacer == nil || pacer.ShouldStep() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pacer.Interval() / 4):
		}
	}
}
