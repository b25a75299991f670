// Package audio plays the short chime that accompanies the dose ring
// appearing.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 220 * time.Millisecond
)

// Cue owns the speaker and plays the chime. The zero value is unusable;
// use NewCue.
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCue creates an uninitialised cue. Chime is a no-op until Initialize
// succeeds.
func NewCue() *Cue {
	return &Cue{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Chime plays the two-note dose chime.
func (c *Cue) Chime() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(beep.Take(sampleRate.N(chimeDuration), NewChimeGenerator(sampleRate)))
	speaker.Unlock()
}

// Close silences anything still playing.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// ChimeGenerator is a decaying two-tone sine: a fifth above the root for
// the second half.
type ChimeGenerator struct {
	sr     beep.SampleRate
	pos    int
	length int
}

// NewChimeGenerator creates a chime lasting chimeDuration.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, length: sr.N(chimeDuration)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	const root = 660.0
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		freq := root
		if g.pos > g.length/2 {
			freq = root * 1.5
		}
		envelope := math.Exp(-6 * float64(g.pos) / float64(g.length))
		v := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error { return nil }
