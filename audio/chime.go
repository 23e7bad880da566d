// Package audio plays the eat chime.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Chime plays a short sine tone on demand. All methods are safe on a
// chime whose Initialize failed; they do nothing.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	freq        float64
	duration    time.Duration
	initialized bool
}

// NewChime creates a chime with the given pitch and length.
func NewChime(freq float64, duration time.Duration) *Chime {
	return &Chime{
		mixer:    &beep.Mixer{},
		freq:     freq,
		duration: duration,
	}
}

// Initialize opens the speaker.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one tone.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(NewTone(c.freq, c.duration, sampleRate))
	speaker.Unlock()
}

// Cleanup stops playback and closes the speaker.
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// tone is a sine wave with a linear fade-out so it ends without a click.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	position int
	length   int
}

// NewTone creates a finite sine streamer.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		rate:   rate,
		length: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		env := 1 - float64(t.position)/float64(t.length)
		v := 0.3 * env * math.Sin(2*math.Pi*t.freq*float64(t.position)/float64(t.rate))
		samples[i][0] = v
		samples[i][1] = v
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
