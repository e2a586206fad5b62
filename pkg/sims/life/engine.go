package life

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gridlife/pkg/core"
	"gridlife/pkg/grid"
)

// minParallelCells is the board size below which Step stays on one goroutine.
const minParallelCells = 1024

// Engine evolves the cells of a Topology one generation at a time. Every
// generation is computed from a consistent snapshot: all next states are
// written before any cell commits.
//
// An Engine is not safe for concurrent use. The topology must outlive it.
type Engine struct {
	topo       *grid.Topology
	rule       Rule
	workers    int
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithRule replaces the default Conway rule.
func WithRule(r Rule) Option {
	return func(e *Engine) { e.rule = r }
}

// WithWorkers splits each phase of Step across n goroutines. n <= 0 uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		e.workers = n
	}
}

// NewEngine wraps topo without copying any cell data.
func NewEngine(topo *grid.Topology, opts ...Option) *Engine {
	e := &Engine{topo: topo, rule: Conway, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Topology returns the board the engine evolves.
func (e *Engine) Topology() *grid.Topology { return e.topo }

// Rule returns the active transition rule.
func (e *Engine) Rule() Rule { return e.rule }

// Generation counts Step calls since construction or the last Reset.
func (e *Engine) Generation() uint64 { return e.generation }

// SetState overwrites the current state of the cell at c. Inert cells are
// left untouched. Coordinates off the board return grid.ErrUnknownCoordinate.
func (e *Engine) SetState(c grid.Coord, alive bool) error {
	cell, err := e.topo.Lookup(c)
	if err != nil {
		return err
	}
	cell.SetState(stateOf(alive))
	return nil
}

// Toggle flips the cell at c and returns its new state.
func (e *Engine) Toggle(c grid.Coord) (bool, error) {
	cell, err := e.topo.Lookup(c)
	if err != nil {
		return false, err
	}
	cell.SetState(stateOf(!cell.Alive()))
	return cell.Alive(), nil
}

// Alive reports whether the cell at c is alive. Unknown coordinates are dead.
func (e *Engine) Alive(c grid.Coord) bool {
	cell, ok := e.topo.Cell(c)
	return ok && cell.Alive()
}

// Population counts live cells.
func (e *Engine) Population() int {
	n := 0
	for cell := range e.topo.Cells() {
		if cell.Alive() {
			n++
		}
	}
	return n
}

// States appends the current state of every cell in arena order to dst.
func (e *Engine) States(dst []uint8) []uint8 {
	for cell := range e.topo.Cells() {
		dst = append(dst, cell.State())
	}
	return dst
}

// Step advances every cell by one generation.
func (e *Engine) Step() {
	checkTopology(e.topo)
	e.parallel(e.compute)
	e.parallel(e.commit)
	e.generation++
}

// Reset kills every non-inert cell and rewinds the generation counter.
func (e *Engine) Reset() {
	for cell := range e.topo.Cells() {
		cell.SetNext(grid.Dead)
		cell.Commit()
	}
	e.generation = 0
}

// Randomize sets each non-inert cell alive with probability density.
func (e *Engine) Randomize(rng *core.RNG, density float64) {
	for cell := range e.topo.Cells() {
		cell.SetState(stateOf(rng.Chance(density)))
	}
}

// Place sets the live cells of p with the pattern's top-left corner at
// origin. Pattern rows run southward (decreasing y). On wrapped boards the
// pattern wraps; otherwise any cell off the board fails the whole placement.
func (e *Engine) Place(p Pattern, origin grid.Coord) error {
	targets := make([]grid.Coord, 0, len(p.Cells))
	for _, pc := range p.Cells {
		c := grid.Coord{X: origin.X + pc.X, Y: origin.Y - pc.Y}
		if e.topo.Wrapped() {
			c = e.topo.Wrap(c)
		} else if !e.topo.Contains(c) {
			return fmt.Errorf("place %q at %s: cell %s: %w", p.Name, origin, c, grid.ErrUnknownCoordinate)
		}
		targets = append(targets, c)
	}
	for _, c := range targets {
		cell, _ := e.topo.Cell(c)
		cell.SetState(grid.Alive)
	}
	return nil
}

func (e *Engine) compute(lo, hi int) {
	for i := lo; i < hi; i++ {
		cell := e.topo.At(i)
		cell.SetNext(stateOf(e.rule.Next(cell.Alive(), e.neighborSum(cell))))
	}
}

func (e *Engine) commit(lo, hi int) {
	for i := lo; i < hi; i++ {
		e.topo.At(i).Commit()
	}
}

// neighborSum counts live neighbors over the populated slots of cell.
func (e *Engine) neighborSum(cell *grid.Cell) int {
	n := 0
	for _, d := range grid.Directions {
		idx, ok := cell.Link(d)
		if ok && e.topo.At(idx).Alive() {
			n++
		}
	}
	return n
}

// parallel runs fn over the arena, split into contiguous ranges when the
// engine has more than one worker. It returns once every range is done.
func (e *Engine) parallel(fn func(lo, hi int)) {
	total := e.topo.Len()
	if e.workers <= 1 || total < minParallelCells {
		fn(0, total)
		return
	}
	chunk := (total + e.workers - 1) / e.workers
	var g errgroup.Group
	for lo := 0; lo < total; lo += chunk {
		hi := min(lo+chunk, total)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	// Workers never return an error; Wait is only the barrier.
	_ = g.Wait()
}

type validator interface {
	Validate() error
}

func checkTopology(v validator) {
	if !debugChecks {
		return
	}
	if err := v.Validate(); err != nil {
		panic(fmt.Sprintf("life: corrupt topology: %v", err))
	}
}

func stateOf(alive bool) uint8 {
	if alive {
		return grid.Alive
	}
	return grid.Dead
}
