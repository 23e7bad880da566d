package systems

import "github.com/pthm-cable/pathsnake/components"

// CellSet is a set of grid cells, used for blockers and occupancy.
type CellSet map[components.Cell]struct{}

// NewCellSet builds a set from any number of cell slices.
func NewCellSet(groups ...[]components.Cell) CellSet {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	s := make(CellSet, n)
	for _, g := range groups {
		for _, c := range g {
			s[c] = struct{}{}
		}
	}
	return s
}

// Has reports whether c is in the set.
func (s CellSet) Has(c components.Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c into the set.
func (s CellSet) Add(c components.Cell) {
	s[c] = struct{}{}
}

// Grid is the fixed-size board the snake moves on.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid of the given size in cells.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c components.Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsBlocked returns true if c is off the board or in blockers.
func (g Grid) IsBlocked(c components.Cell, blockers CellSet) bool {
	if !g.InBounds(c) {
		return true // Out of bounds is blocked
	}
	return blockers.Has(c)
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Neighbors appends the in-bounds 4-neighbors of c to dst.
func (g Grid) Neighbors(dst []components.Cell, c components.Cell) []components.Cell {
	for _, d := range components.Directions {
		n := c.Add(d)
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// FreeCells returns every cell not in occupied, in row-major order.
func (g Grid) FreeCells(occupied CellSet) []components.Cell {
	capacity := g.Area() - len(occupied)
	if capacity < 0 {
		capacity = 0
	}
	free := make([]components.Cell, 0, capacity)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := components.Cell{X: x, Y: y}
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
