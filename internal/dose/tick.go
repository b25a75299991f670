package dose

import (
	"time"

	"github.com/tinytelemetry/doseorb/internal/clock"
)

// PulseDuration is the length of one pulse animation cycle. It spans two
// game ticks, so the anchor is only reset on alternate ticks.
const PulseDuration = 1200 * time.Millisecond

// Parity says what the next tick notification will do.
type Parity int

const (
	// ParityReset: the next tick moves the anchor to now.
	ParityReset Parity = iota
	// ParityHold: the next tick leaves the anchor alone.
	ParityHold
)

func (p Parity) String() string {
	switch p {
	case ParityReset:
		return "reset"
	case ParityHold:
		return "hold"
	default:
		return "unknown"
	}
}

// TickTracker converts the host's periodic tick into a free-running pulse
// phase. It is owned by one indicator and is not safe for concurrent use.
type TickTracker struct {
	clock  clock.Clock
	anchor time.Time
	parity Parity
}

// NewTickTracker creates a tracker anchored at the clock's current time.
// A nil clock means the system clock.
func NewTickTracker(c clock.Clock) *TickTracker {
	if c == nil {
		c = clock.System{}
	}
	return &TickTracker{
		clock:  c,
		anchor: c.Now(),
		parity: ParityReset,
	}
}

// OnTick must be called exactly once per host tick, in delivery order.
func (t *TickTracker) OnTick() {
	switch t.parity {
	case ParityReset:
		t.anchor = t.clock.Now()
		t.parity = ParityHold
	default:
		t.parity = ParityReset
	}
}

// Phase returns progress through the current pulse in [0, 1]. It saturates
// at 1 once PulseDuration has elapsed and reads 0 for times before the anchor.
func (t *TickTracker) Phase(now time.Time) float64 {
	elapsed := now.Sub(t.anchor).Milliseconds()
	return clamp01(float64(elapsed) / float64(PulseDuration.Milliseconds()))
}

// PhaseNow is Phase evaluated at the tracker's clock.
func (t *TickTracker) PhaseNow() float64 {
	return t.Phase(t.clock.Now())
}

// Anchor returns the start of the current tick pair.
func (t *TickTracker) Anchor() time.Time { return t.anchor }

// Parity returns the pending action for the next tick.
func (t *TickTracker) Parity() Parity { return t.parity }

func clamp01(v float64) float64 {
	switch {
	case v != v, v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
