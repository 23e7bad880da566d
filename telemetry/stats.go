package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates scores over many runs.
type Summary struct {
	Runs      int
	MeanScore float64
	StdScore  float64
	P10Score  float64
	P50Score  float64
	P90Score  float64
	MaxScore  int
	MeanTicks float64
}

// Summarize computes score statistics over the given runs.
func Summarize(records []RunRecord) Summary {
	n := len(records)
	if n == 0 {
		return Summary{}
	}

	scores := make([]float64, n)
	ticks := make([]float64, n)
	maxScore := 0
	for i, r := range records {
		scores[i] = float64(r.Score)
		ticks[i] = float64(r.Ticks)
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}

	mean, std := stat.MeanStdDev(scores, nil)
	if n < 2 {
		std = 0
	}

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	return Summary{
		Runs:      n,
		MeanScore: mean,
		StdScore:  std,
		P10Score:  Percentile(sorted, 0.10),
		P50Score:  Percentile(sorted, 0.50),
		P90Score:  Percentile(sorted, 0.90),
		MaxScore:  maxScore,
		MeanTicks: stat.Mean(ticks, nil),
	}
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("runs", s.Runs),
		slog.Float64("mean_score", s.MeanScore),
		slog.Float64("std_score", s.StdScore),
		slog.Float64("p10_score", s.P10Score),
		slog.Float64("p50_score", s.P50Score),
		slog.Float64("p90_score", s.P90Score),
		slog.Int("max_score", s.MaxScore),
		slog.Float64("mean_ticks", s.MeanTicks),
	)
}
