package grid

// noLink marks an empty neighbor slot.
const noLink int32 = -1

// State values stored in a cell. Anything above Dead counts as alive.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Cell is one automaton unit. Neighbor slots hold arena indices into the
// owning Topology and are fixed once the topology is built.
type Cell struct {
	coord Coord
	links [NumDirections]int32

	cur   uint8
	next  uint8
	inert bool
}

func newCell(c Coord) Cell {
	cell := Cell{coord: c}
	for i := range cell.links {
		cell.links[i] = noLink
	}
	return cell
}

// Coord returns the cell's position.
func (c *Cell) Coord() Coord { return c.coord }

// State returns the current generation value.
func (c *Cell) State() uint8 { return c.cur }

// Next returns the pending value written by the last compute pass.
func (c *Cell) Next() uint8 { return c.next }

// Alive reports whether the current state is above Dead.
func (c *Cell) Alive() bool { return c.cur > Dead }

// Inert reports whether the cell ignores state changes.
func (c *Cell) Inert() bool { return c.inert }

// SetNext records the pending value. It is applied by Commit.
func (c *Cell) SetNext(v uint8) { c.next = v }

// SetState overwrites the current value. Inert cells are left unchanged.
func (c *Cell) SetState(v uint8) {
	if c.inert {
		return
	}
	c.cur = v
}

// Commit promotes the pending value to current. Inert cells are left unchanged.
func (c *Cell) Commit() {
	if c.inert {
		return
	}
	c.cur = c.next
}

// Link returns the arena index of the neighbor in direction d.
func (c *Cell) Link(d Direction) (int, bool) {
	idx := c.links[d]
	if idx == noLink {
		return 0, false
	}
	return int(idx), true
}

// Degree counts populated neighbor slots.
func (c *Cell) Degree() int {
	n := 0
	for _, idx := range c.links {
		if idx != noLink {
			n++
		}
	}
	return n
}

// link fills slot d if it is empty. An occupied slot is never overwritten.
func (c *Cell) link(d Direction, idx int32) {
	if c.links[d] != noLink {
		return
	}
	c.links[d] = idx
}
