package grid

// zone classifies a coordinate by the board edges it touches.
type zone uint8

const (
	zoneInterior zone = 0
	zoneWest     zone = 1 << 0
	zoneEast     zone = 1 << 1
	zoneSouth    zone = 1 << 2
	zoneNorth    zone = 1 << 3

	zoneSouthWest = zoneSouth | zoneWest
	zoneSouthEast = zoneSouth | zoneEast
	zoneNorthWest = zoneNorth | zoneWest
	zoneNorthEast = zoneNorth | zoneEast
)

// zoneOf returns the edge flags of c. Degenerate one-wide axes set both flags
// of that axis.
func (t *Topology) zoneOf(c Coord) zone {
	var z zone
	if c.X == 0 {
		z |= zoneWest
	}
	if c.X == t.w-1 {
		z |= zoneEast
	}
	if c.Y == 0 {
		z |= zoneSouth
	}
	if c.Y == t.h-1 {
		z |= zoneNorth
	}
	return z
}

// blocks reports whether a step in direction d leaves the board from zone z.
func (z zone) blocks(d Direction) bool {
	switch d {
	case N:
		return z&zoneNorth != 0
	case E:
		return z&zoneEast != 0
	case S:
		return z&zoneSouth != 0
	case W:
		return z&zoneWest != 0
	}
	return false
}

func (t *Topology) link() {
	for i := range t.cells {
		c := t.cells[i].coord
		if t.wrap {
			t.linkWrapped(c)
		} else {
			t.linkBounded(c)
		}
	}
}

// linkBounded links c to its in-bounds neighbors. A diagonal is only enabled
// when both cardinals it bridges are present.
func (t *Topology) linkBounded(c Coord) {
	z := t.zoneOf(c)
	var present [NumDirections]bool
	for _, d := range Cardinals {
		present[d] = !z.blocks(d)
	}
	for _, d := range Directions {
		if a, b, ok := d.Bridges(); ok {
			present[d] = present[a] && present[b]
		}
	}
	for _, d := range Directions {
		if !present[d] {
			continue
		}
		t.pair(c, c.Add(d.Offset()), d)
	}
}

// linkWrapped links c to all eight neighbors on a torus. Interior cells use
// the plain offset; cells in any edge or corner zone compute each neighbor by
// per-axis modulo so a corner gets exactly one neighbor per diagonal.
func (t *Topology) linkWrapped(c Coord) {
	z := t.zoneOf(c)
	for _, d := range Directions {
		target := c.Add(d.Offset())
		if z != zoneInterior {
			target = t.Wrap(target)
		}
		t.pair(c, target, d)
	}
}

// pair records b as a's neighbor in direction d and a as b's neighbor in the
// opposite direction. Slots that are already filled are kept.
func (t *Topology) pair(a, b Coord, d Direction) {
	ai, aok := t.Index(a)
	bi, bok := t.Index(b)
	if !aok || !bok {
		return
	}
	t.cells[ai].link(d, int32(bi))
	t.cells[bi].link(d.Opposite(), int32(ai))
}
