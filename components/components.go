// Package components defines the value types shared by the game core and
// the ECS components stored in the world.
package components

import "fmt"

// Cell is a discrete grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by a direction.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Sub returns the raw delta from o to c.
func (c Cell) Sub(o Cell) (dx, dy int) {
	return c.X - o.X, c.Y - o.Y
}

// Manhattan returns the 4-directional distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four canonical unit moves.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four unit moves in expansion order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit vector for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// DirectionFromDelta maps a delta to its canonical direction.
// ok is false when the delta is not a unit vector.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	for _, d := range Directions {
		ddx, ddy := d.Delta()
		if ddx == dx && ddy == dy {
			return d, true
		}
	}
	return DirNone, false
}

// ParseDirection parses a lowercase direction name.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirNone, false
}

// Kind identifies what occupies a cell in the ECS world.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindFood
)

func (k Kind) String() string {
	if k == KindFood {
		return "food"
	}
	return "obstacle"
}

// Occupant marks an entity that sits on a single grid cell.
type Occupant struct {
	Kind    Kind
	Created int32 // tick the entity was placed
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
