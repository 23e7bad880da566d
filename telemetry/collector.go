package telemetry

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RunRecord summarizes one run from start to game over.
type RunRecord struct {
	RunID       string  `csv:"run_id"`
	Seed        int64   `csv:"seed"`
	Score       int     `csv:"score"`
	Ticks       int     `csv:"ticks"`
	Replans     int     `csv:"replans"`
	NoPathTicks int     `csv:"no_path_ticks"`
	Mismatches  int     `csv:"mismatches"`
	FoodEaten   int     `csv:"food_eaten"`
	MaxLength   int     `csv:"max_length"`
	Cause       string  `csv:"cause"`
	WallSeconds float64 `csv:"wall_seconds"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", r.RunID),
		slog.Int64("seed", r.Seed),
		slog.Int("score", r.Score),
		slog.Int("ticks", r.Ticks),
		slog.Int("replans", r.Replans),
		slog.Int("no_path_ticks", r.NoPathTicks),
		slog.Int("mismatches", r.Mismatches),
		slog.Int("food_eaten", r.FoodEaten),
		slog.Int("max_length", r.MaxLength),
		slog.String("cause", r.Cause),
		slog.Float64("wall_seconds", r.WallSeconds),
	)
}

// Collector accumulates per-run counters and produces a RunRecord.
type Collector struct {
	runID   string
	seed    int64
	started time.Time

	ticks       int
	replans     int
	noPathTicks int
	mismatches  int
	foodEaten   int
	maxLength   int
}

// NewCollector starts collecting for a new run.
func NewCollector(seed int64) *Collector {
	return &Collector{
		runID:     uuid.NewString(),
		seed:      seed,
		started:   time.Now(),
		maxLength: 1,
	}
}

// RunID returns the identifier assigned to this run.
func (c *Collector) RunID() string {
	return c.runID
}

// RecordTick counts one simulation tick.
func (c *Collector) RecordTick() {
	c.ticks++
}

// RecordReplan counts a pathfinder invocation.
func (c *Collector) RecordReplan() {
	c.replans++
}

// RecordNoPath counts a tick where no route to the food existed.
func (c *Collector) RecordNoPath() {
	c.noPathTicks++
}

// RecordMismatch counts a discarded path step.
func (c *Collector) RecordMismatch() {
	c.mismatches++
}

// RecordFood counts a food eaten and the resulting snake length.
func (c *Collector) RecordFood(length int) {
	c.foodEaten++
	if length > c.maxLength {
		c.maxLength = length
	}
}

// Ticks returns the number of ticks recorded so far.
func (c *Collector) Ticks() int {
	return c.ticks
}

// Finish produces the record for the run.
func (c *Collector) Finish(score int, cause string) RunRecord {
	return RunRecord{
		RunID:       c.runID,
		Seed:        c.seed,
		Score:       score,
		Ticks:       c.ticks,
		Replans:     c.replans,
		NoPathTicks: c.noPathTicks,
		Mismatches:  c.mismatches,
		FoodEaten:   c.foodEaten,
		MaxLength:   c.maxLength,
		Cause:       cause,
		WallSeconds: time.Since(c.started).Seconds(),
	}
}
