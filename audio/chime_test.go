package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewTone(100, 50*time.Millisecond, rate)

	buf := make([][2]float64, 16)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != 50 {
		t.Errorf("streamed %d samples, want 50", total)
	}
	if err := s.Err(); err != nil {
		t.Error(err)
	}
}

func TestChimeUninitializedIsSilent(t *testing.T) {
	c := NewChime(880, 50*time.Millisecond)
	c.Play()    // must not panic without a speaker
	c.Cleanup() // no-op
}
