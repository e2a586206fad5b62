package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a host needs to drive an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Cells returns one value per cell in row-major order, top row first.
	Cells() []uint8
}

// Toggler is implemented by sims that accept interactive cell flips. x and y
// are display coordinates matching the Cells layout.
type Toggler interface {
	Toggle(x, y int) bool
}

// Counter is implemented by sims that track generations and live cells.
type Counter interface {
	Generation() uint64
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
