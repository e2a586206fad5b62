package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass slots a cell can link through.
// Values are ordered clockwise starting at North.
type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// NumDirections is the size of the compass.
const NumDirections = 8

// Directions lists every direction in clockwise order.
var Directions = [NumDirections]Direction{N, NE, E, SE, S, SW, W, NW}

// Cardinals lists the four axis-aligned directions.
var Cardinals = [4]Direction{N, E, S, W}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionOffsets = [NumDirections]Coord{
	N:  {X: 0, Y: 1},
	NE: {X: 1, Y: 1},
	E:  {X: 1, Y: 0},
	SE: {X: 1, Y: -1},
	S:  {X: 0, Y: -1},
	SW: {X: -1, Y: -1},
	W:  {X: -1, Y: 0},
	NW: {X: -1, Y: 1},
}

// Valid reports whether d is one of the eight compass values.
func (d Direction) Valid() bool { return d < NumDirections }

// Offset returns the coordinate delta for one step in direction d.
func (d Direction) Offset() Coord { return directionOffsets[d%NumDirections] }

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction { return d.RotateSteps(NumDirections / 2) }

// RotateSteps rotates clockwise by n 45-degree steps. Negative n rotates
// counter-clockwise.
func (d Direction) RotateSteps(n int) Direction {
	return Direction(mod(int(d)+n, NumDirections))
}

// Rotated rotates d in the mathematically positive sense (counter-clockwise)
// by angle degrees, truncated to whole 45-degree steps.
func (d Direction) Rotated(angle int) Direction {
	return d.RotateSteps(-(angle / 45))
}

// IsCardinal reports whether d is one of N, E, S or W.
func (d Direction) IsCardinal() bool { return d%2 == 0 }

// IsDiagonal reports whether d is one of NE, SE, SW or NW.
func (d Direction) IsDiagonal() bool { return d%2 == 1 }

// Bridges returns the two cardinals a diagonal sits between. For cardinal
// directions ok is false.
func (d Direction) Bridges() (a, b Direction, ok bool) {
	if !d.IsDiagonal() {
		return d, d, false
	}
	return d.RotateSteps(-1), d.RotateSteps(1), true
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the compass abbreviations produced by String, case
// insensitively.
func ParseDirection(s string) (Direction, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == up {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}

// SumOffsets accumulates the offsets of dirs.
func SumOffsets(dirs ...Direction) Coord {
	var acc Coord
	for _, d := range dirs {
		acc = acc.Add(d.Offset())
	}
	return acc
}

// mod returns a modulo n normalised into [0, n).
func mod(a, n int) int {
	return (a%n + n) % n
}
