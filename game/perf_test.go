package game

import (
	"testing"
	"time"
)

func TestPerfStatsWindow(t *testing.T) {
	p := NewPerfStats(3)
	for _, d := range []time.Duration{100, 10, 20, 30} {
		p.Record(PerfPlan, d)
	}
	// Oldest sample dropped
	if got := p.Avg(PerfPlan); got != 20 {
		t.Errorf("Avg = %v, want 20", got)
	}
	if got := p.Avg("missing"); got != 0 {
		t.Errorf("Avg(missing) = %v, want 0", got)
	}
}

func TestPerfStatsSortedNames(t *testing.T) {
	p := NewPerfStats(0)
	p.Record(PerfPlan, 50*time.Microsecond)
	p.Record(PerfStep, 5*time.Microsecond)
	p.Record(PerfPersist, 500*time.Microsecond)

	names := p.SortedNames()
	want := []string{PerfPersist, PerfPlan, PerfStep}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("SortedNames = %v, want %v", names, want)
		}
	}
	if p.Total() != 555*time.Microsecond {
		t.Errorf("Total = %v, want 555µs", p.Total())
	}
}
