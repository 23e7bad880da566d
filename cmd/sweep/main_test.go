package main

import (
	"context"
	"testing"
	"time"

	"github.com/pthm-cable/pathsnake/config"
)

func TestRunSweep(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 10, 8
	cfg.Game.StartX, cfg.Game.StartY = 2, 2
	cfg.Game.Obstacles = 5
	cfg.Storage.HighScoreFile = ""

	records, err := runSweep(context.Background(), cfg, 100, 6, 400, 3)
	if err != nil {
		t.Fatalf("runSweep: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("got %d records, want 6", len(records))
	}
	for i, r := range records {
		if r.Seed != 100+int64(i) {
			t.Errorf("record %d seed = %d, want %d", i, r.Seed, 100+int64(i))
		}
		if r.Ticks == 0 || r.Ticks > 400 {
			t.Errorf("record %d ticks = %d, want 1..400", i, r.Ticks)
		}
		if r.Cause == "" {
			t.Errorf("record %d has no cause", i)
		}
	}

	// Same seeds, same scores
	again, err := runSweep(context.Background(), cfg, 100, 6, 400, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range records {
		if again[i].Score != records[i].Score || again[i].Ticks != records[i].Ticks {
			t.Errorf("seed %d not reproducible: %d/%d vs %d/%d", records[i].Seed,
				records[i].Score, records[i].Ticks, again[i].Score, again[i].Ticks)
		}
	}
}

func TestRunSweepCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.HighScoreFile = ""
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runSweep(ctx, cfg, 1, 4, 100000, 2); err == nil {
		t.Error("expected an error from a cancelled sweep")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{65 * time.Second, "1m05s"},
		{3*time.Hour + 2*time.Minute + 1*time.Second, "3h02m01s"},
		{0, "0m00s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
