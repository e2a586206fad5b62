package grid

import "strconv"

// Coord identifies a cell by its integer position. North is +Y, East is +X.
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}
