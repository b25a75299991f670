package dose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeRemaining(t *testing.T) {
	tests := []struct {
		name      string
		drainRate float64
		current   int
		bonus     int
		want      string
	}{
		{"reference case", 12, 70, 15, "8:45"},
		{"no bonus", 12, 70, 0, "5:50"},
		{"pads seconds", 60, 61, 0, "1:01"},
		{"empty", 20, 0, 10, "0:00"},
		{"long countdown", 1.66, 99, 30, "119:16"},
		{"single protection prayer", 20, 99, 0, "4:57"},
		{"negative current clamps", 12, -5, 15, "0:00"},
		{"deep negative bonus pins at zero", 12, 70, -60, "0:00"},
		{"tiny drain overflows minutes", 1e-20, 99, 0, NotApplicable},
		{"subnormal drain is infinite", 1e-310, 99, 0, NotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeRemaining(tt.drainRate, tt.current, tt.bonus))
		})
	}
}

func TestTimeRemaining_ZeroDrainIsNotApplicable(t *testing.T) {
	for _, current := range []int{0, 1, 50, 99} {
		for _, bonus := range []int{-5, 0, 20, 60} {
			assert.Equal(t, NotApplicable, TimeRemaining(0, current, bonus))
		}
	}
}

func TestTimeRemaining_BadDrainRatesAreNotApplicable(t *testing.T) {
	for _, rate := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, NotApplicable, TimeRemaining(rate, 70, 15), "rate=%v", rate)
	}
}

func TestSecondsRemaining(t *testing.T) {
	s, ok := SecondsRemaining(12, 70, 15)
	assert.True(t, ok)
	assert.InDelta(t, 525.0, s, 1e-9)

	_, ok = SecondsRemaining(0, 70, 15)
	assert.False(t, ok)
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "0:00", FormatCountdown(0))
	assert.Equal(t, "0:59", FormatCountdown(59.999))
	assert.Equal(t, "1:00", FormatCountdown(60))
	assert.Equal(t, "600:00", FormatCountdown(36000))
	assert.Equal(t, "0:00", FormatCountdown(-12))
	assert.Equal(t, "0:00", FormatCountdown(math.NaN()))
	assert.Equal(t, NotApplicable, FormatCountdown(math.Inf(1)))
	assert.Equal(t, NotApplicable, FormatCountdown(60*math.MaxInt64))
}

func TestFormatCountdown_HugeFiniteValuesStayNonNegative(t *testing.T) {
	for _, s := range []float64{1e15, 1e17, 5e20} {
		got := FormatCountdown(s)
		assert.NotContains(t, got, "-", "seconds=%g", s)
		assert.Regexp(t, `^\d+:[0-5]\d$`, got, "seconds=%g", s)
	}
}

func TestSumDrainRates(t *testing.T) {
	assert.Equal(t, 0.0, SumDrainRates(nil))
	assert.InDelta(t, 80.0, SumDrainRates([]float64{20, 20, 40}), 1e-9)
	assert.InDelta(t, 23.33, SumDrainRates([]float64{20, 3.33, -4, math.NaN(), math.Inf(1)}), 1e-9)
}
