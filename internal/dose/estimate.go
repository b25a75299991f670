package dose

import (
	"fmt"
	"math"
)

// NotApplicable is the countdown shown when nothing is draining.
const NotApplicable = "N/A"

// bonusPointsPerUnit: every 30 points of prayer bonus doubles how long a
// point lasts.
const bonusPointsPerUnit = 30.0

// SecondsRemaining estimates how long current points last at drainRate
// (points per minute before the bonus). ok is false when nothing drains.
//
// Negative or non-finite inputs are clamped: a negative current counts as
// zero, a bad drain rate counts as no drain, and a bonus low enough to make
// the multiplier negative pins it at zero.
func SecondsRemaining(drainRate float64, current, bonus int) (seconds float64, ok bool) {
	drainRate = sanitizeRate(drainRate)
	if drainRate == 0 {
		return 0, false
	}

	multiplier := 1.0 + float64(bonus)/bonusPointsPerUnit
	if multiplier < 0 {
		multiplier = 0
	}
	secondsPerPoint := (60.0 / drainRate) * multiplier
	return float64(nonNegative(current)) * secondsPerPoint, true
}

// TimeRemaining formats SecondsRemaining as "m:ss", or NotApplicable.
func TimeRemaining(drainRate float64, current, bonus int) string {
	seconds, ok := SecondsRemaining(drainRate, current, bonus)
	if !ok {
		return NotApplicable
	}
	return FormatCountdown(seconds)
}

// FormatCountdown renders whole minutes and zero-padded whole seconds.
// A countdown whose minutes do not fit in an int64, including +Inf from a
// vanishingly small drain rate, is shown as NotApplicable.
func FormatCountdown(secondsLeft float64) string {
	if secondsLeft < 0 || math.IsNaN(secondsLeft) {
		secondsLeft = 0
	}
	if math.IsInf(secondsLeft, 1) || secondsLeft/60.0 >= math.MaxInt64 {
		return NotApplicable
	}
	minutes := math.Floor(secondsLeft / 60.0)
	// large values lose precision in the subtraction
	seconds := math.Min(math.Max(math.Floor(secondsLeft-minutes*60.0), 0), 59)
	return fmt.Sprintf("%d:%02d", int64(minutes), int64(seconds))
}
