package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/doseorb/internal/model"
	"github.com/tinytelemetry/doseorb/internal/overlay"
	"github.com/tinytelemetry/doseorb/internal/skin"
)

func testStyles(t *testing.T) styles {
	t.Helper()
	s, ok := skin.Builtin("default")
	require.True(t, ok, "default skin missing")
	return newStyles(s)
}

func TestCircleMaskRing(t *testing.T) {
	m := circleMask(orbRows, ringThickness(2, orbRows))
	require.Len(t, m, orbRows)
	require.Len(t, m[0], 2*orbRows)
	assert.False(t, m[orbRows/2][orbRows], "ring mask filled at the centre")
	assert.False(t, m[orbRows/2][orbRows-1], "ring mask filled at the centre")

	set := 0
	for r := range m {
		for c := range m[r] {
			require.Equal(t, m[len(m)-1-r][len(m[r])-1-c], m[r][c], "mask not point symmetric at %d,%d", r, c)
			if m[r][c] {
				set++
			}
		}
	}
	assert.NotZero(t, set, "ring mask is empty")
}

func TestCircleMaskDisc(t *testing.T) {
	m := circleMask(orbRows, 1)
	assert.True(t, m[orbRows/2][orbRows], "disc mask empty at the centre")
	assert.False(t, m[0][0], "disc mask set in the corner")
	assert.Nil(t, circleMask(0, 1), "zero diameter should yield no mask")
}

func TestCanvasClipsAndPads(t *testing.T) {
	cv := newCanvas(4, 2)
	plain := lipgloss.NewStyle()
	cv.text(2, 0, "abc", plain)
	cv.put(-1, 0, 'x', plain)
	cv.put(0, 5, 'x', plain)

	lines := cv.lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 4, lipgloss.Width(lines[0]))
	assert.Equal(t, 4, lipgloss.Width(lines[1]))
	assert.Contains(t, lines[0], "ab")
	assert.NotContains(t, lines[0], "c")
}

func TestRenderOrbPanel(t *testing.T) {
	st := testStyles(t)
	res := overlay.Result{
		Bounds:      SimOrbBounds(),
		Resource:    model.ResourceState{Current: 60, Max: 99},
		Restorative: model.RestorativeProfile{HasPrayerPotion: true},
		Countdown:   "1:30",
	}

	plain := renderOrbPanel(res, nil, st)
	assert.NotContains(t, plain, string(ringGlyph), "ring glyph without a ring")
	for _, want := range []string{"60 / 99", "1:30", "ppot"} {
		assert.Contains(t, plain, want)
	}
	assert.Equal(t, orbRows+1, lipgloss.Height(plain))

	b := SimOrbBounds()
	ring := overlay.Ring{X: b.X + 24, Y: b.Y - 1, Diameter: b.Height, Stroke: 2, Color: colorful.Color{R: 0, G: 1, B: 1}}
	withRing := renderOrbPanel(res, []overlay.Ring{ring}, st)
	assert.Contains(t, withRing, string(ringGlyph), "ring not drawn")

	assert.Contains(t, renderOrbPanel(overlay.Result{Skipped: true}, nil, st), "hidden")
}

func TestRenderTooltipsSplitsLines(t *testing.T) {
	st := testStyles(t)
	assert.Empty(t, renderTooltips(nil, st), "no tooltips should render nothing")

	out := renderTooltips([]string{"Time Remaining: 8:45" + overlay.TooltipLineBreak + "Prayer Bonus: 15"}, st)
	assert.NotContains(t, out, overlay.TooltipLineBreak)
	// two text lines plus the border
	assert.Equal(t, 4, lipgloss.Height(out))
}
