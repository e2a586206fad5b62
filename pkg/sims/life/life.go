// Package life runs Conway's Game of Life, and other life-like rules, over a
// grid.Topology.
package life

import (
	"fmt"

	"gridlife/pkg/core"
	"gridlife/pkg/grid"
)

// Life adapts an Engine to the core.Sim contract used by hosts.
type Life struct {
	cfg     Config
	topo    *grid.Topology
	engine  *Engine
	pattern *Pattern
	display *core.ByteGrid
}

// New returns a wrapped Life simulation with the provided dimensions.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds the topology and engine described by cfg. The board
// starts empty; call Reset to seed it.
func NewWithConfig(cfg Config) (*Life, error) {
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	topo, err := grid.BuildWithOptions(cfg.GridOptions())
	if err != nil {
		return nil, err
	}
	l := &Life{
		cfg:     cfg,
		topo:    topo,
		engine:  NewEngine(topo, WithRule(rule), WithWorkers(cfg.Workers)),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	if cfg.Pattern != "" {
		p, err := LoadPattern(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		l.pattern = &p
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.topo.Width(), H: l.topo.Height()} }

// Cells exposes the display buffer: row-major, top row (highest y) first,
// 1 for live cells. The buffer is rebuilt from the board on every call, so
// changes made through Engine show up too.
func (l *Life) Cells() []uint8 {
	l.refresh()
	return l.display.Cells()
}

// Engine exposes the underlying engine.
func (l *Life) Engine() *Engine { return l.engine }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() uint64 { return l.engine.Generation() }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.engine.Population() }

// Config returns the configuration the sim was built with.
func (l *Life) Config() Config { return l.cfg }

// Reset clears the board and reseeds it. A configured pattern is placed at
// its origin; otherwise cells are randomized with the configured density.
// A zero seed falls back to the configured one.
func (l *Life) Reset(seed int64) {
	l.engine.Reset()
	switch {
	case l.pattern != nil:
		origin := grid.Coord{X: l.cfg.PatternX, Y: l.cfg.PatternY}
		if err := l.engine.Place(*l.pattern, origin); err != nil {
			l.placeClipped(origin)
		}
	case l.cfg.Density > 0:
		if seed == 0 {
			seed = l.cfg.Seed
		}
		l.engine.Randomize(core.NewRNG(seed), l.cfg.Density)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.engine.Step() }

// Toggle flips the cell shown at display position (x, y) and reports its new
// state. Positions outside the board are ignored.
func (l *Life) Toggle(x, y int) bool {
	c := l.boardCoord(x, y)
	alive, err := l.engine.Toggle(c)
	if err != nil {
		return false
	}
	return alive
}

// Parameters describes the active configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.topo.Width()),
				core.IntParam("h", "Height", l.topo.Height()),
				core.BoolParam("wrap", "Wrap edges", l.topo.Wrapped()),
				core.BoolParam("inert_border", "Inert border", l.cfg.InertBorder),
			},
		},
		{
			Name: "Evolution",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", l.engine.Rule().String()),
				core.IntParam("workers", "Workers", l.engine.workers),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("density", "Density", l.cfg.Density),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
				core.StringParam("pattern", "Pattern", l.cfg.Pattern),
			},
		},
	}}
}

// placeClipped places the part of the pattern that fits on an unwrapped board.
func (l *Life) placeClipped(origin grid.Coord) {
	for _, pc := range l.pattern.Cells {
		_ = l.engine.SetState(grid.Coord{X: origin.X + pc.X, Y: origin.Y - pc.Y}, true)
	}
}

// boardCoord maps a display position to a board coordinate. The display's
// top row is the board's northern edge.
func (l *Life) boardCoord(x, y int) grid.Coord {
	return grid.Coord{X: x, Y: l.topo.Height() - 1 - y}
}

func (l *Life) refresh() {
	h := l.topo.Height()
	for cell := range l.topo.Cells() {
		c := cell.Coord()
		l.display.Set(c.X, h-1-c.Y, displayValue(cell))
	}
}

func displayValue(cell *grid.Cell) uint8 {
	if cell.Alive() {
		return 1
	}
	return 0
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
