package game

import (
	"log/slog"
	"sort"
	"time"
)

// Timed sections of a tick.
const (
	PerfPlan    = "plan"
	PerfStep    = "step"
	PerfPersist = "persist"
)

// PerfStats tracks rolling execution time per named section.
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates a tracker keeping the last window samples per section.
func NewPerfStats(window int) *PerfStats {
	if window <= 0 {
		window = 120
	}
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: window,
	}
}

// Record adds a duration sample for the named section.
func (p *PerfStats) Record(name string, d time.Duration) {
	p.samples[name] = append(p.samples[name], d)
	if len(p.samples[name]) > p.maxSamples {
		p.samples[name] = p.samples[name][1:]
	}
}

// Avg returns the average duration for the named section.
func (p *PerfStats) Avg(name string) time.Duration {
	s := p.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Total returns the sum of all average durations.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.samples {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns section names sorted by average duration (descending).
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return p.Avg(names[i]) > p.Avg(names[j])
	})
	return names
}

// LogValue implements slog.LogValuer for structured logging.
func (p *PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{slog.Int64("total_us", p.Total().Microseconds())}
	for _, name := range p.SortedNames() {
		attrs = append(attrs, slog.Int64(name+"_us", p.Avg(name).Microseconds()))
	}
	return slog.GroupValue(attrs...)
}
