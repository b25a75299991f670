package overlay

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the pair of colours the ring pulses between.
type Palette struct {
	Start colorful.Color
	End   colorful.Color
}

// DefaultPalette pulses from bright cyan to dark teal.
var DefaultPalette = Palette{
	Start: colorful.Color{R: 0, G: 1, B: 1},
	End:   colorful.Color{R: 0, G: 92.0 / 255.0, B: 92.0 / 255.0},
}

// Lerp blends a towards b by t in RGB space. t is clamped to [0, 1].
func Lerp(a, b colorful.Color, t float64) colorful.Color {
	switch {
	case t != t, t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return a.BlendRgb(b, t).Clamped()
}

// PulseColor maps a pulse phase onto the palette. The colour travels to End
// at mid-pulse and back to Start as the phase completes.
func (p Palette) PulseColor(phase float64) colorful.Color {
	return Lerp(p.Start, p.End, math.Sin(phase*math.Pi))
}
