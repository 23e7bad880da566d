package game

import "log/slog"

// logPerfStats logs rolling timings and the current run's progress.
func (g *Game) logPerfStats() {
	expanded, pushed := g.planner.LastSearchStats()
	slog.Info("perf",
		"tick", g.tick,
		"run_tick", g.world.Tick(),
		"score", g.world.Score(),
		"length", g.world.Len(),
		"timings", g.perf,
		"last_expanded", expanded,
		"last_pushed", pushed,
	)
}
