package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pathsnake/components"
	"github.com/pthm-cable/pathsnake/config"
	"github.com/pthm-cable/pathsnake/systems"
)

// ErrInvalidLayout is returned when an injected layout cannot start a run.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is an explicit starting position for a run.
type Layout struct {
	Snake     []components.Cell // head first
	Direction components.Direction
	Food      components.Cell
	HasFood   bool
	Obstacles []components.Cell
}

// World is the mutable state of one run.
// Food and obstacles live in an ECS world as single-cell occupants; the
// snake body is an ordered slice, head first.
type World struct {
	grid   systems.Grid
	rng    *rand.Rand
	policy string

	ecs       *ecs.World
	occupants *ecs.Map2[components.Cell, components.Occupant]
	occFilter *ecs.Filter2[components.Cell, components.Occupant]

	obstacles systems.CellSet
	food      ecs.Entity
	hasFood   bool

	snake     []components.Cell
	path      []components.Cell
	direction components.Direction

	score     int
	highScore int
	alive     bool
	cause     Cause
	tick      int32
}

func newWorld(grid systems.Grid, rng *rand.Rand, policy string, highScore int) *World {
	world := ecs.NewWorld()
	return &World{
		grid:      grid,
		rng:       rng,
		policy:    policy,
		ecs:       world,
		occupants: ecs.NewMap2[components.Cell, components.Occupant](world),
		occFilter: ecs.NewFilter2[components.Cell, components.Occupant](world),
		obstacles: systems.CellSet{},
		highScore: highScore,
		alive:     true,
	}
}

// NewWorld creates a run from configuration: the snake at the start cell,
// food placed first, then obstacles on cells free of snake and food.
func NewWorld(cfg *config.Config, rng *rand.Rand, highScore int) *World {
	grid := systems.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	w := newWorld(grid, rng, cfg.Game.NoPathPolicy, highScore)

	dir, ok := components.ParseDirection(cfg.Game.StartDirection)
	if !ok {
		dir = components.DirRight
	}
	w.direction = dir
	w.snake = []components.Cell{{X: cfg.Game.StartX, Y: cfg.Game.StartY}}

	occupied := systems.NewCellSet(w.snake)
	if cell, ok := systems.PlaceFood(rng, grid, occupied); ok {
		w.spawnFood(cell)
		occupied.Add(cell)
	}
	for _, c := range systems.PlaceObstacles(rng, grid, occupied, cfg.Game.Obstacles) {
		w.spawnObstacle(c)
	}
	return w
}

// NewWorldFromLayout creates a run from an explicit layout.
func NewWorldFromLayout(cfg *config.Config, rng *rand.Rand, highScore int, layout Layout) (*World, error) {
	grid := systems.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	if len(layout.Snake) == 0 {
		return nil, fmt.Errorf("%w: empty snake", ErrInvalidLayout)
	}

	seen := systems.CellSet{}
	for _, c := range layout.Snake {
		if !grid.InBounds(c) {
			return nil, fmt.Errorf("%w: snake cell %v out of bounds", ErrInvalidLayout, c)
		}
		if seen.Has(c) {
			return nil, fmt.Errorf("%w: snake overlaps itself at %v", ErrInvalidLayout, c)
		}
		seen.Add(c)
	}
	for _, c := range layout.Obstacles {
		if !grid.InBounds(c) || seen.Has(c) {
			return nil, fmt.Errorf("%w: obstacle %v out of bounds or overlapping", ErrInvalidLayout, c)
		}
		seen.Add(c)
	}
	if layout.HasFood && (!grid.InBounds(layout.Food) || seen.Has(layout.Food)) {
		return nil, fmt.Errorf("%w: food %v out of bounds or overlapping", ErrInvalidLayout, layout.Food)
	}

	w := newWorld(grid, rng, cfg.Game.NoPathPolicy, highScore)
	w.snake = append([]components.Cell(nil), layout.Snake...)
	w.direction = layout.Direction
	if w.direction == components.DirNone {
		w.direction = components.DirRight
	}
	for _, c := range layout.Obstacles {
		w.spawnObstacle(c)
	}
	if layout.HasFood {
		w.spawnFood(layout.Food)
	}
	return w, nil
}

func (w *World) spawnObstacle(c components.Cell) {
	cell := c
	occ := components.Occupant{Kind: components.KindObstacle, Created: w.tick}
	w.occupants.NewEntity(&cell, &occ)
	w.obstacles.Add(c)
}

func (w *World) spawnFood(c components.Cell) {
	cell := c
	occ := components.Occupant{Kind: components.KindFood, Created: w.tick}
	w.food = w.occupants.NewEntity(&cell, &occ)
	w.hasFood = true
}

// respawnFood moves the food to a uniformly chosen free cell, or removes it
// when the board is full. Obstacles are never touched.
func (w *World) respawnFood() {
	occupied := systems.NewCellSet(w.snake)
	for c := range w.obstacles {
		occupied.Add(c)
	}

	cell, ok := systems.PlaceFood(w.rng, w.grid, occupied)
	if !ok {
		if w.hasFood {
			w.ecs.RemoveEntity(w.food)
		}
		w.hasFood = false
		return
	}

	if !w.hasFood || !w.ecs.Alive(w.food) {
		w.spawnFood(cell)
		return
	}
	pos, occ := w.occupants.Get(w.food)
	*pos = cell
	occ.Created = w.tick
}

// Food returns the food cell. ok is false when no food is on the board.
func (w *World) Food() (components.Cell, bool) {
	if !w.hasFood {
		return components.Cell{}, false
	}
	pos, _ := w.occupants.Get(w.food)
	return *pos, true
}

// Head returns the snake's head cell.
func (w *World) Head() components.Cell {
	return w.snake[0]
}

// Len returns the snake length.
func (w *World) Len() int {
	return len(w.snake)
}

// Blockers returns snake ∪ obstacles as a fresh set.
func (w *World) Blockers() systems.CellSet {
	b := make(systems.CellSet, len(w.snake)+len(w.obstacles))
	for _, c := range w.snake {
		b.Add(c)
	}
	for c := range w.obstacles {
		b.Add(c)
	}
	return b
}

// Grid returns the board.
func (w *World) Grid() systems.Grid { return w.grid }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// HighScore returns the best score known to this run.
func (w *World) HighScore() int { return w.highScore }

// Alive reports whether the run is still going.
func (w *World) Alive() bool { return w.alive }

// Cause returns why the run ended, or CauseNone.
func (w *World) Cause() Cause { return w.cause }

// Tick returns the number of steps taken.
func (w *World) Tick() int32 { return w.tick }

// Direction returns the last direction moved.
func (w *World) Direction() components.Direction { return w.direction }

// End stops the run without a collision.
func (w *World) End() {
	if !w.alive {
		return
	}
	w.alive = false
	w.cause = CauseEnded
	w.path = nil
}

// Snapshot is a read-only copy of the world for rendering.
type Snapshot struct {
	Width, Height int
	Snake         []components.Cell
	Path          []components.Cell
	Food          components.Cell
	HasFood       bool
	Obstacles     []components.Cell
	Score         int
	HighScore     int
	Alive         bool
	Cause         Cause
	Tick          int32
	Paused        bool
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Width:     w.grid.Width,
		Height:    w.grid.Height,
		Snake:     append([]components.Cell(nil), w.snake...),
		Path:      append([]components.Cell(nil), w.path...),
		Score:     w.score,
		HighScore: w.highScore,
		Alive:     w.alive,
		Cause:     w.cause,
		Tick:      w.tick,
	}

	query := w.occFilter.Query()
	for query.Next() {
		cell, occ := query.Get()
		switch occ.Kind {
		case components.KindFood:
			s.Food = *cell
			s.HasFood = true
		case components.KindObstacle:
			s.Obstacles = append(s.Obstacles, *cell)
		}
	}
	return s
}
