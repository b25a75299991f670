package dose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/doseorb/internal/clock"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestTickTracker_InitialState(t *testing.T) {
	clk := clock.NewManual(epoch)
	tr := NewTickTracker(clk)

	assert.Equal(t, epoch, tr.Anchor())
	assert.Equal(t, ParityReset, tr.Parity())
	assert.Equal(t, 0.0, tr.PhaseNow())
}

func TestTickTracker_ResetsOnAlternateTicks(t *testing.T) {
	clk := clock.NewManual(epoch)
	tr := NewTickTracker(clk)

	clk.Advance(600 * time.Millisecond)
	first := clk.Now()
	tr.OnTick()
	assert.Equal(t, first, tr.Anchor())
	assert.Equal(t, ParityHold, tr.Parity())

	clk.Advance(600 * time.Millisecond)
	tr.OnTick()
	assert.Equal(t, first, tr.Anchor(), "second tick must not move the anchor")
	assert.Equal(t, ParityReset, tr.Parity())

	clk.Advance(600 * time.Millisecond)
	third := clk.Now()
	tr.OnTick()
	assert.Equal(t, third, tr.Anchor())
	assert.Equal(t, ParityHold, tr.Parity())
}

func TestTickTracker_Phase(t *testing.T) {
	clk := clock.NewManual(epoch)
	tr := NewTickTracker(clk)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"at anchor", 0, 0},
		{"quarter", 300 * time.Millisecond, 0.25},
		{"half", 600 * time.Millisecond, 0.5},
		{"full", 1200 * time.Millisecond, 1},
		{"saturates", 5 * time.Second, 1},
		{"before anchor", -time.Second, 0},
		{"sub-millisecond truncates", 600*time.Millisecond + 900*time.Microsecond, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tr.Phase(epoch.Add(tt.elapsed)), 1e-9)
		})
	}
}

func TestTickTracker_PhaseIsIdempotent(t *testing.T) {
	clk := clock.NewManual(epoch)
	tr := NewTickTracker(clk)
	now := epoch.Add(437 * time.Millisecond)

	first := tr.Phase(now)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, tr.Phase(now))
	}
}

func TestTickTracker_PhaseMonotonicBetweenResets(t *testing.T) {
	clk := clock.NewManual(epoch)
	tr := NewTickTracker(clk)
	tr.OnTick() // anchor = epoch, parity hold

	prev := -1.0
	for ms := 0; ms <= 1500; ms += 50 {
		if ms == 600 {
			clk.Set(epoch.Add(600 * time.Millisecond))
			tr.OnTick() // hold tick: anchor unchanged
		}
		p := tr.Phase(epoch.Add(time.Duration(ms) * time.Millisecond))
		require.GreaterOrEqual(t, p, prev)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		prev = p
	}
}

func TestTickTracker_NilClockUsesSystem(t *testing.T) {
	before := time.Now()
	tr := NewTickTracker(nil)
	assert.False(t, tr.Anchor().Before(before))
	assert.GreaterOrEqual(t, tr.PhaseNow(), 0.0)
}

func TestParity_String(t *testing.T) {
	assert.Equal(t, "reset", ParityReset.String())
	assert.Equal(t, "hold", ParityHold.String())
	assert.Equal(t, "unknown", Parity(7).String())
}
