package systems

import (
	"math/rand"

	"github.com/pthm-cable/pathsnake/components"
)

// PlaceFood picks a cell uniformly among those not in occupied.
// ok is false when the board is full.
func PlaceFood(rng *rand.Rand, grid Grid, occupied CellSet) (cell components.Cell, ok bool) {
	free := grid.FreeCells(occupied)
	if len(free) == 0 {
		return components.Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}

// PlaceObstacles samples up to n distinct cells not in occupied.
// Fewer are returned when the board does not have n free cells.
func PlaceObstacles(rng *rand.Rand, grid Grid, occupied CellSet, n int) []components.Cell {
	free := grid.FreeCells(occupied)
	if n > len(free) {
		n = len(free)
	}
	if n <= 0 {
		return nil
	}

	// Partial Fisher-Yates: the first n slots become the sample
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
	}

	out := make([]components.Cell, n)
	copy(out, free[:n])
	return out
}
