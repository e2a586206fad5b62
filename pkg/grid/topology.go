// Package grid builds the cell arena and neighbor graph for a rectangular
// board. Adjacency is fixed once Build returns; only cell state changes
// afterwards.
package grid

import (
	"fmt"
	"iter"
)

// Options configures Build.
type Options struct {
	Width  int
	Height int
	// Wrap links opposite edges so the board forms a torus.
	Wrap bool
	// InertBorder freezes the outermost ring of cells in the dead state.
	InertBorder bool
}

// Topology owns every cell of a board and their symmetric adjacency.
type Topology struct {
	w, h  int
	wrap  bool
	cells []Cell
}

// Build creates a width×height board and links every pair of adjacent cells.
func Build(width, height int, wrap bool) (*Topology, error) {
	return BuildWithOptions(Options{Width: width, Height: height, Wrap: wrap})
}

// BuildWithOptions is Build with the full option set.
func BuildWithOptions(opts Options) (*Topology, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("build %dx%d: %w", opts.Width, opts.Height, ErrInvalidDimension)
	}
	if opts.Wrap && (opts.Width < 2 || opts.Height < 2) {
		return nil, fmt.Errorf("build %dx%d: %w", opts.Width, opts.Height, ErrDegenerateWrap)
	}

	t := &Topology{
		w:     opts.Width,
		h:     opts.Height,
		wrap:  opts.Wrap,
		cells: make([]Cell, opts.Width*opts.Height),
	}
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			t.cells[y*t.w+x] = newCell(Coord{X: x, Y: y})
		}
	}
	t.link()

	if opts.InertBorder {
		for i := range t.cells {
			if t.zoneOf(t.cells[i].coord) != zoneInterior {
				t.cells[i].inert = true
			}
		}
	}
	return t, nil
}

// Width returns the number of columns.
func (t *Topology) Width() int { return t.w }

// Height returns the number of rows.
func (t *Topology) Height() int { return t.h }

// Wrapped reports whether the board is toroidal.
func (t *Topology) Wrapped() bool { return t.wrap }

// Len returns the number of cells.
func (t *Topology) Len() int { return len(t.cells) }

// Contains reports whether c lies on the board.
func (t *Topology) Contains(c Coord) bool {
	return c.X >= 0 && c.X < t.w && c.Y >= 0 && c.Y < t.h
}

// Index returns the arena index of c.
func (t *Topology) Index(c Coord) (int, bool) {
	if !t.Contains(c) {
		return 0, false
	}
	return c.Y*t.w + c.X, true
}

// Wrap folds c onto the board using per-axis modulo arithmetic.
func (t *Topology) Wrap(c Coord) Coord {
	return Coord{X: mod(c.X, t.w), Y: mod(c.Y, t.h)}
}

// At returns the cell stored at arena index i.
func (t *Topology) At(i int) *Cell { return &t.cells[i] }

// Cell returns the cell at c, if any.
func (t *Topology) Cell(c Coord) (*Cell, bool) {
	idx, ok := t.Index(c)
	if !ok {
		return nil, false
	}
	return &t.cells[idx], true
}

// Lookup is Cell returning ErrUnknownCoordinate for positions off the board.
func (t *Topology) Lookup(c Coord) (*Cell, error) {
	cell, ok := t.Cell(c)
	if !ok {
		return nil, fmt.Errorf("lookup %s on %dx%d board: %w", c, t.w, t.h, ErrUnknownCoordinate)
	}
	return cell, nil
}

// Neighbor returns the neighbor of c in direction d.
func (t *Topology) Neighbor(c Coord, d Direction) (*Cell, bool) {
	cell, ok := t.Cell(c)
	if !ok || !d.Valid() {
		return nil, false
	}
	idx, ok := cell.Link(d)
	if !ok {
		return nil, false
	}
	return &t.cells[idx], true
}

// Neighbors returns the recorded adjacency of c. Directions without a
// neighbor are absent from the map. The result is nil for unknown coordinates.
func (t *Topology) Neighbors(c Coord) map[Direction]*Cell {
	cell, ok := t.Cell(c)
	if !ok {
		return nil
	}
	out := make(map[Direction]*Cell, NumDirections)
	for _, d := range Directions {
		if idx, ok := cell.Link(d); ok {
			out[d] = &t.cells[idx]
		}
	}
	return out
}

// Cells yields every cell in row-major order starting at (0,0). The sequence
// can be ranged over any number of times and always yields the same order.
func (t *Topology) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range t.cells {
			if !yield(&t.cells[i]) {
				return
			}
		}
	}
}

// OnBorder reports whether c touches any board edge.
func (t *Topology) OnBorder(c Coord) bool {
	return t.Contains(c) && t.zoneOf(c) != zoneInterior
}

// Corner reports whether c is one of the four corner cells.
func (t *Topology) Corner(c Coord) bool {
	if !t.Contains(c) {
		return false
	}
	switch t.zoneOf(c) {
	case zoneSouthWest, zoneSouthEast, zoneNorthWest, zoneNorthEast:
		return true
	}
	return false
}

// LinkCount returns the number of populated neighbor slots across the board.
// Every link is stored once on each side so the count is always even.
func (t *Topology) LinkCount() int {
	total := 0
	for i := range t.cells {
		total += t.cells[i].Degree()
	}
	return total
}

// Validate checks the adjacency invariants: every link has its reverse and,
// on unwrapped boards, a diagonal exists exactly when both cardinals it
// bridges exist.
func (t *Topology) Validate() error {
	for i := range t.cells {
		cell := &t.cells[i]
		for _, d := range Directions {
			idx, ok := cell.Link(d)
			if !ok {
				continue
			}
			back, ok := t.cells[idx].Link(d.Opposite())
			if !ok || back != i {
				return fmt.Errorf("%s -> %s via %s: %w", cell.coord, t.cells[idx].coord, d, ErrAsymmetricLink)
			}
		}
		if t.wrap {
			continue
		}
		for _, d := range Directions {
			a, b, ok := d.Bridges()
			if !ok {
				continue
			}
			_, hasA := cell.Link(a)
			_, hasB := cell.Link(b)
			_, hasD := cell.Link(d)
			if hasD != (hasA && hasB) {
				return fmt.Errorf("%s %s: %w", cell.coord, d, ErrDiagonalMismatch)
			}
		}
	}
	return nil
}
