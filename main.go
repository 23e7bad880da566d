package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pathsnake/audio"
	"github.com/pthm-cable/pathsnake/config"
	"github.com/pthm-cable/pathsnake/game"
	"github.com/pthm-cable/pathsnake/tui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, restarting after each run")
	useTUI := flag.Bool("tui", false, "Run in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Log perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for runs.csv and config snapshot")
	highScorePath := flag.String("highscore", "", "High score file (empty = use config)")
	logFile := flag.String("log-file", "pathsnake.log", "Log destination in terminal mode")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:          rngSeed,
		OutputDir:     *outputDir,
		HighScorePath: *highScorePath,
		Headless:      *headless || *useTUI,
		AutoRestart:   *headless,
		LogStats:      *logStats,
	}

	switch {
	case *headless:
		runHeadless(opts, *maxTicks)
	case *useTUI:
		if err := runTerminal(cfg, opts, *logFile); err != nil {
			slog.Error("terminal mode failed", "error", err)
			os.Exit(1)
		}
	default:
		runWindow(cfg, opts, *maxTicks)
	}
}

// runHeadless is a pure CPU simulation, no raylib needed.
func runHeadless(opts game.Options, maxTicks int) {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
	)

	for !g.Done() {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}
}

func runWindow(cfg *config.Config, opts game.Options, maxTicks int) {
	rl.InitWindow(cfg.Derived.WindowWidth, cfg.Derived.WindowHeight, "Path Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	opts.Chime = newChime(cfg)
	if c, ok := opts.Chime.(*audio.Chime); ok {
		defer c.Cleanup()
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.Done() {
		frame := time.Duration(rl.GetFrameTime() * float32(time.Second))
		g.Update(frame)
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
}

func runTerminal(cfg *config.Config, opts game.Options, logPath string) error {
	// Logging to stdout would corrupt the screen
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	opts.Chime = newChime(cfg)
	if c, ok := opts.Chime.(*audio.Chime); ok {
		defer c.Cleanup()
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tui.Run(ctx, screen, g, cfg.Derived.TickInterval); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// newChime returns the eat chime, or nil when audio is off or unavailable.
func newChime(cfg *config.Config) game.Chime {
	if !cfg.Audio.Enabled {
		return nil
	}
	c := audio.NewChime(cfg.Audio.ToneHz, time.Duration(cfg.Audio.DurationMs)*time.Millisecond)
	if err := c.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		slog.Warn("audio initialization failed", "error", err)
		return nil
	}
	return c
}
