package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/pathsnake/components"
)

func TestGridInBoundsAndBlocked(t *testing.T) {
	grid := NewGrid(5, 3)
	blockers := NewCellSet([]components.Cell{{X: 2, Y: 1}})

	tests := []struct {
		cell     components.Cell
		inBounds bool
		blocked  bool
	}{
		{components.Cell{X: 0, Y: 0}, true, false},
		{components.Cell{X: 4, Y: 2}, true, false},
		{components.Cell{X: 2, Y: 1}, true, true},
		{components.Cell{X: -1, Y: 0}, false, true},
		{components.Cell{X: 5, Y: 0}, false, true},
		{components.Cell{X: 0, Y: 3}, false, true},
	}

	for _, tc := range tests {
		if got := grid.InBounds(tc.cell); got != tc.inBounds {
			t.Errorf("InBounds(%v) = %v, want %v", tc.cell, got, tc.inBounds)
		}
		if got := grid.IsBlocked(tc.cell, blockers); got != tc.blocked {
			t.Errorf("IsBlocked(%v) = %v, want %v", tc.cell, got, tc.blocked)
		}
	}
}

func TestGridNeighbors(t *testing.T) {
	grid := NewGrid(3, 3)

	if got := grid.Neighbors(nil, components.Cell{X: 1, Y: 1}); len(got) != 4 {
		t.Errorf("center has %d neighbors, want 4", len(got))
	}
	if got := grid.Neighbors(nil, components.Cell{X: 0, Y: 0}); len(got) != 2 {
		t.Errorf("corner has %d neighbors, want 2", len(got))
	}
	if got := grid.Neighbors(nil, components.Cell{X: 1, Y: 0}); len(got) != 3 {
		t.Errorf("edge has %d neighbors, want 3", len(got))
	}
}

func TestGridFreeCells(t *testing.T) {
	grid := NewGrid(3, 2)
	occupied := NewCellSet([]components.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}})

	free := grid.FreeCells(occupied)
	if len(free) != 4 {
		t.Fatalf("free = %v, want 4 cells", free)
	}
	for _, c := range free {
		if occupied.Has(c) {
			t.Errorf("free cell %v is occupied", c)
		}
	}
	if free[0] != (components.Cell{X: 1, Y: 0}) {
		t.Errorf("free cells not row-major: first = %v", free[0])
	}
}

func TestPlaceFoodAvoidsOccupied(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := NewGrid(4, 4)
	occupied := CellSet{}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			occupied.Add(components.Cell{X: x, Y: y})
		}
	}

	seen := map[components.Cell]int{}
	for i := 0; i < 400; i++ {
		c, ok := PlaceFood(rng, grid, occupied)
		if !ok {
			t.Fatal("expected food placement")
		}
		if occupied.Has(c) {
			t.Fatalf("food placed on occupied cell %v", c)
		}
		seen[c]++
	}
	// Only the bottom row is free; each cell should be hit
	if len(seen) != 4 {
		t.Errorf("food landed on %d distinct cells, want 4", len(seen))
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := NewGrid(2, 2)
	occupied := NewCellSet(grid.FreeCells(CellSet{}))

	if c, ok := PlaceFood(rng, grid, occupied); ok {
		t.Errorf("expected no food on a full board, got %v", c)
	}
}

func TestPlaceObstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := NewGrid(6, 5)
	occupied := NewCellSet([]components.Cell{{X: 2, Y: 2}, {X: 3, Y: 3}})

	obs := PlaceObstacles(rng, grid, occupied, 10)
	if len(obs) != 10 {
		t.Fatalf("got %d obstacles, want 10", len(obs))
	}
	unique := NewCellSet(obs)
	if len(unique) != 10 {
		t.Errorf("obstacles are not distinct: %v", obs)
	}
	for _, c := range obs {
		if occupied.Has(c) {
			t.Errorf("obstacle %v placed on occupied cell", c)
		}
	}

	// More requested than available
	small := NewGrid(2, 2)
	if got := PlaceObstacles(rng, small, NewCellSet([]components.Cell{{X: 0, Y: 0}}), 10); len(got) != 3 {
		t.Errorf("got %d obstacles on 3 free cells, want 3", len(got))
	}
	if got := PlaceObstacles(rng, small, CellSet{}, 0); got != nil {
		t.Errorf("zero obstacles should return nil, got %v", got)
	}
}
