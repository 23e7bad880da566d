// Package game runs the autonomous snake: world state, the per-tick step
// and the driver that ties planning, persistence, telemetry and the
// graphical front end together.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/pathsnake/config"
	"github.com/pthm-cable/pathsnake/systems"
	"github.com/pthm-cable/pathsnake/telemetry"
	"github.com/pthm-cable/pathsnake/ui"
)

// Chime plays a short sound when food is eaten.
type Chime interface {
	Play()
}

// Options configures a Game.
type Options struct {
	Config        *config.Config // nil = config.Cfg()
	Seed          int64          // seed of the first run; later runs add their index
	OutputDir     string         // runs.csv and config.yaml; empty disables output
	HighScorePath string         // overrides storage.high_score_file when set
	Headless      bool           // no raylib UI objects
	AutoRestart   bool           // start a new run as soon as one ends
	LogStats      bool           // log perf stats every telemetry.stats_interval ticks
	Layout        *Layout        // explicit starting layout for every run
	Chime         Chime          // optional eat sound
	RunCallback   func(telemetry.RunRecord)
}

// Game holds the complete session state.
type Game struct {
	cfg  *config.Config
	opts Options

	world     *World
	planner   *systems.AStarPlanner
	store     *telemetry.HighScoreStore
	output    *telemetry.OutputManager
	collector *telemetry.Collector
	perf      *PerfStats
	runs      []telemetry.RunRecord

	highScore int
	runIndex  int64
	runSeed   int64

	// State
	tick     int32 // ticks across all runs
	paused   bool
	done     bool
	recorded bool // current run's record has been emitted
	accum    time.Duration

	// Rendering (nil in headless mode)
	hud       *ui.HUD
	board     *ui.BoardView
	buttons   *ui.ButtonBar
	gameOver  *ui.GameOverOverlay
	overlays  *ui.OverlayRegistry
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel
}

// NewGameWithOptions creates a session and starts its first run.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	path := opts.HighScorePath
	if path == "" {
		path = cfg.Storage.HighScoreFile
	}
	store := telemetry.NewHighScoreStore(path)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		planner:   systems.NewAStarPlanner(systems.NewGrid(cfg.Grid.Width, cfg.Grid.Height)),
		store:     store,
		output:    output,
		perf:      NewPerfStats(cfg.Telemetry.PerfWindow),
		highScore: store.Load(),
	}

	if err := g.newRun(); err != nil {
		output.Close()
		return nil, err
	}

	if !opts.Headless {
		g.initUI()
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"obstacles", cfg.Game.Obstacles,
		"no_path_policy", cfg.Game.NoPathPolicy,
		"high_score", g.highScore,
	)
	return g, nil
}

// newRun re-creates the world, keeping only the high score.
func (g *Game) newRun() error {
	g.runSeed = g.opts.Seed + g.runIndex
	g.runIndex++
	rng := rand.New(rand.NewSource(g.runSeed))

	if g.opts.Layout != nil {
		w, err := NewWorldFromLayout(g.cfg, rng, g.highScore, *g.opts.Layout)
		if err != nil {
			return err
		}
		g.world = w
	} else {
		g.world = NewWorld(g.cfg, rng, g.highScore)
	}

	g.collector = telemetry.NewCollector(g.runSeed)
	g.recorded = false
	g.paused = false
	g.accum = 0
	return nil
}

// Update advances the simulation by however many ticks the elapsed frame
// time covers. Used by the graphical front end.
func (g *Game) Update(frame time.Duration) {
	g.handleInput()
	g.advance(frame)
}

// advance runs the ticks due after frame more time has passed.
func (g *Game) advance(frame time.Duration) {
	if g.done || g.paused {
		return
	}

	interval := g.cfg.Derived.TickInterval
	g.accum += frame
	// Cap catch-up after a stall
	if limit := 5 * interval; g.accum > limit {
		g.accum = limit
	}
	for g.accum >= interval {
		g.accum -= interval
		g.step()
	}
}

// UpdateHeadless runs exactly one tick.
func (g *Game) UpdateHeadless() {
	if g.done || g.paused {
		return
	}
	g.step()
}

// step runs one tick of the current run and routes its side effects.
func (g *Game) step() {
	if !g.world.Alive() {
		if g.opts.AutoRestart {
			g.Restart()
		}
		return
	}

	start := time.Now()
	res := g.world.Step(g.planner)
	elapsed := time.Since(start)

	g.tick++
	g.collector.RecordTick()

	if res.Replanned {
		g.perf.Record(PerfPlan, res.PlanTime)
		g.collector.RecordReplan()
		slog.Debug("replanned", "step", res)
	}
	g.perf.Record(PerfStep, elapsed-res.PlanTime)

	if res.NoPath {
		g.collector.RecordNoPath()
	}
	if res.Mismatch {
		g.collector.RecordMismatch()
		slog.Debug("path step mismatch", "step", res)
	}
	if res.Ate {
		g.collector.RecordFood(g.world.Len())
		if g.opts.Chime != nil {
			g.opts.Chime.Play()
		}
	}
	if res.NewHighScore {
		g.persistHighScore()
	}
	if res.Outcome == OutcomeDead {
		g.finishRun()
	}

	if g.opts.LogStats && g.cfg.Telemetry.StatsInterval > 0 && int(g.tick)%g.cfg.Telemetry.StatsInterval == 0 {
		g.logPerfStats()
	}
}

func (g *Game) persistHighScore() {
	g.highScore = g.world.HighScore()
	start := time.Now()
	g.store.SaveOrWarn(g.highScore)
	g.perf.Record(PerfPersist, time.Since(start))
	slog.Info("new high score", "score", g.highScore, "run_id", g.collector.RunID())
}

// finishRun emits the record for the current run once.
func (g *Game) finishRun() {
	if g.recorded {
		return
	}
	g.recorded = true

	record := g.collector.Finish(g.world.Score(), string(g.world.Cause()))
	g.runs = append(g.runs, record)

	if err := g.output.WriteRun(record); err != nil {
		slog.Warn("failed to write run record", "err", err)
	}
	if g.opts.RunCallback != nil {
		g.opts.RunCallback(record)
	}
	slog.Info("game over", "run", record)
}

// Restart ends the current run if it is still going and starts a new one.
func (g *Game) Restart() {
	g.EndRun()
	if err := g.newRun(); err != nil {
		// Only an injected layout can fail, and it was valid for the first run
		slog.Error("failed to restart", "err", err)
		g.Terminate()
	}
}

// EndRun stops the current run and shows the game-over state.
func (g *Game) EndRun() {
	if g.world.Alive() {
		g.world.End()
	}
	g.finishRun()
}

// TogglePause pauses or resumes ticking while the run is alive.
func (g *Game) TogglePause() {
	if g.world.Alive() {
		g.paused = !g.paused
	}
}

// Terminate stops the session; Done reports true afterwards.
func (g *Game) Terminate() {
	g.done = true
}

// Done reports whether Terminate was called.
func (g *Game) Done() bool {
	return g.done
}

// Snapshot returns the state to render for this tick.
func (g *Game) Snapshot() Snapshot {
	s := g.world.Snapshot()
	s.Paused = g.paused
	return s
}

// Tick returns the number of ticks run across all runs.
func (g *Game) Tick() int32 {
	return g.tick
}

// Runs returns the records of finished runs.
func (g *Game) Runs() []telemetry.RunRecord {
	return g.runs
}

// Unload logs the session summary and closes output files.
func (g *Game) Unload() {
	if len(g.runs) > 0 {
		slog.Info("session summary", "summary", telemetry.Summarize(g.runs))
	}
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close output", "err", err)
	}
}

// apply dispatches a button or key action.
func (g *Game) apply(action ui.Action) {
	switch action {
	case ui.ActionRestart:
		g.Restart()
	case ui.ActionEndGame:
		g.EndRun()
	case ui.ActionQuit:
		g.Terminate()
	case ui.ActionPause:
		g.TogglePause()
	}
}
