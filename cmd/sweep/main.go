// Package main runs many headless games in parallel and summarizes their
// scores, for comparing configurations such as no-path policies.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/pathsnake/config"
	"github.com/pthm-cable/pathsnake/game"
	"github.com/pthm-cable/pathsnake/telemetry"
)

// formatDuration formats a duration as MM:SS, or HH:MM:SS for longer runs.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 32, "Number of runs")
	baseSeed := flag.Int64("base-seed", 42, "Seed of the first run; run i uses base-seed+i")
	maxTicks := flag.Int("max-ticks", 20000, "Tick cap per run")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel games")
	policy := flag.String("policy", "", "Override game.no_path_policy (hold or halt)")
	outputDir := flag.String("output", "", "Output directory for sweep.csv and config.yaml")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if *outputDir == "" {
		slog.Error("--output is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *policy != "" {
		cfg.Game.NoPathPolicy = *policy
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid policy", "error", err)
			os.Exit(1)
		}
	}
	// Sweeps never touch the player's high score
	cfg.Storage.HighScoreFile = ""

	start := time.Now()
	records, err := runSweep(context.Background(), cfg, *baseSeed, *seeds, *maxTicks, *workers)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	out, err := telemetry.NewSweepOutput(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}
	if err := out.WriteRuns(records); err != nil {
		slog.Error("failed to write sweep.csv", "error", err)
	}

	summary := telemetry.Summarize(records)
	slog.Warn("sweep complete",
		"elapsed", formatDuration(time.Since(start)),
		"policy", cfg.Game.NoPathPolicy,
		"summary", summary,
	)
}

// runSweep plays n games with consecutive seeds, at most workers at a time.
// Records are returned in seed order.
func runSweep(ctx context.Context, cfg *config.Config, baseSeed int64, n, maxTicks, workers int) ([]telemetry.RunRecord, error) {
	records := make([]telemetry.RunRecord, n)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := 0; i < n; i++ {
		g.Go(func() error {
			r, err := playOne(ctx, cfg, baseSeed+int64(i), maxTicks)
			if err != nil {
				return fmt.Errorf("seed %d: %w", baseSeed+int64(i), err)
			}
			records[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// playOne runs a single game until it ends or hits maxTicks.
func playOne(ctx context.Context, cfg *config.Config, seed int64, maxTicks int) (telemetry.RunRecord, error) {
	g, err := game.NewGameWithOptions(game.Options{
		Config:   cfg,
		Seed:     seed,
		Headless: true,
	})
	if err != nil {
		return telemetry.RunRecord{}, err
	}
	defer g.Unload()

	for len(g.Runs()) == 0 && int(g.Tick()) < maxTicks {
		if g.Tick()%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return telemetry.RunRecord{}, err
			}
		}
		g.UpdateHeadless()
	}
	if len(g.Runs()) == 0 {
		// Survived to the cap, or the board filled up
		g.EndRun()
	}
	return g.Runs()[0], nil
}
