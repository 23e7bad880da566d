package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/pathsnake/components"
	"github.com/pthm-cable/pathsnake/config"
	"github.com/pthm-cable/pathsnake/systems"
)

// Outcome is what a single Step did.
type Outcome uint8

const (
	OutcomeMoved Outcome = iota // advanced one cell
	OutcomeGrew                 // advanced onto food
	OutcomeHeld                 // stayed in place under the halt policy
	OutcomeStuck                // no food on the board
	OutcomeDead                 // collided, or the run had already ended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeHeld:
		return "held"
	case OutcomeStuck:
		return "stuck"
	case OutcomeDead:
		return "dead"
	}
	return "unknown"
}

// Cause records why a run ended.
type Cause string

const (
	CauseNone     Cause = ""
	CauseWall     Cause = "wall"
	CauseSelf     Cause = "self"
	CauseObstacle Cause = "obstacle"
	CauseEnded    Cause = "ended"
)

// StepResult describes one tick.
type StepResult struct {
	Tick         int32
	Outcome      Outcome
	Cause        Cause
	Head         components.Cell
	Replanned    bool // the pathfinder ran this tick
	NoPath       bool // the pathfinder found no route
	Mismatch     bool // the cached step was not a unit move and was dropped
	Ate          bool
	NewHighScore bool
	PlanTime     time.Duration // time spent in the pathfinder
}

// LogValue implements slog.LogValuer for structured logging.
func (r StepResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("tick", int(r.Tick)),
		slog.String("outcome", r.Outcome.String()),
		slog.String("head", r.Head.String()),
	}
	if r.Cause != CauseNone {
		attrs = append(attrs, slog.String("cause", string(r.Cause)))
	}
	if r.Replanned {
		attrs = append(attrs, slog.Bool("replanned", true))
	}
	if r.NoPath {
		attrs = append(attrs, slog.Bool("no_path", true))
	}
	if r.Mismatch {
		attrs = append(attrs, slog.Bool("mismatch", true))
	}
	if r.NewHighScore {
		attrs = append(attrs, slog.Bool("new_high_score", true))
	}
	return slog.GroupValue(attrs...)
}

// Step advances the world by one tick.
//
// Phases: plan a route to the food when none is cached, take the next step
// from it (or fall back to the no-path policy), then resolve collision,
// growth and movement. A dead world is left untouched.
func (w *World) Step(planner *systems.AStarPlanner) StepResult {
	res := StepResult{Tick: w.tick, Head: w.snake[0]}

	if !w.alive {
		res.Outcome = OutcomeDead
		res.Cause = w.cause
		return res
	}

	w.tick++
	res.Tick = w.tick

	food, hasFood := w.Food()
	if !hasFood {
		w.path = nil
		res.Outcome = OutcomeStuck
		return res
	}

	// Planning
	head := w.snake[0]
	if len(w.path) == 0 {
		start := time.Now()
		path, ok := planner.FindPath(head, food, w.Blockers())
		res.PlanTime = time.Since(start)
		res.Replanned = true
		if ok {
			w.path = path
		} else {
			res.NoPath = true
		}
	}

	// Advancing
	dir, ok := w.nextDirection(head, &res)
	if !ok {
		res.Outcome = OutcomeHeld
		return res
	}
	w.direction = dir
	newHead := head.Add(dir)
	eating := newHead == food

	// Collision against the state that remains after this tick's tail removal
	if cause := w.collision(newHead, eating); cause != CauseNone {
		w.alive = false
		w.cause = cause
		w.path = nil
		res.Outcome = OutcomeDead
		res.Cause = cause
		return res
	}

	// Growing / moving
	if eating {
		w.snake = append(w.snake, components.Cell{})
	}
	copy(w.snake[1:], w.snake[:len(w.snake)-1])
	w.snake[0] = newHead
	res.Head = newHead

	if !eating {
		res.Outcome = OutcomeMoved
		return res
	}

	res.Outcome = OutcomeGrew
	res.Ate = true
	w.score++
	w.path = nil
	w.respawnFood()
	if w.score > w.highScore {
		w.highScore = w.score
		res.NewHighScore = true
	}
	return res
}

// nextDirection pops the next cached step. When no usable step exists the
// no-path policy decides: hold keeps the last direction, halt stays put.
func (w *World) nextDirection(head components.Cell, res *StepResult) (components.Direction, bool) {
	if len(w.path) > 0 {
		next := w.path[0]
		w.path = w.path[1:]
		if d, ok := components.DirectionFromDelta(next.Sub(head)); ok {
			return d, true
		}
		w.path = nil
		res.Mismatch = true
	}

	if w.policy == config.PolicyHalt || w.direction == components.DirNone {
		return components.DirNone, false
	}
	return w.direction, true
}

// collision returns the cause of death for moving onto c, or CauseNone.
// The tail cell is vacated this tick unless the snake is eating.
func (w *World) collision(c components.Cell, eating bool) Cause {
	if !w.grid.InBounds(c) {
		return CauseWall
	}
	if w.obstacles.Has(c) {
		return CauseObstacle
	}
	body := w.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == c {
			return CauseSelf
		}
	}
	return CauseNone
}
