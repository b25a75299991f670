package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/doseorb/internal/model"
	"github.com/tinytelemetry/doseorb/internal/overlay"
)

// Screen geometry of the orb widget in simulator mode. The simulated host
// reports these bounds so host coordinates equal terminal cells and mouse
// motion maps straight onto the pointer.
const (
	orbLeft   = 2
	orbTop    = 3
	orbRows   = 5
	labelCols = 24

	ringGlyph = '█'
	discGlyph = '░'
)

// SimOrbBounds returns the orb bounds the simulator should report.
func SimOrbBounds() model.Rect {
	return model.Rect{X: orbLeft, Y: orbTop, Width: labelCols + 2*orbRows, Height: orbRows}
}

// frameSurface collects the draw calls of one frame.
type frameSurface struct {
	rings    []overlay.Ring
	tooltips []string
}

func (s *frameSurface) DrawRing(r overlay.Ring) { s.rings = append(s.rings, r) }
func (s *frameSurface) AddTooltip(text string)   { s.tooltips = append(s.tooltips, text) }

func (s *frameSurface) reset() {
	s.rings = s.rings[:0]
	s.tooltips = s.tooltips[:0]
}

type cell struct {
	ch    rune
	style lipgloss.Style
	set   bool
}

// canvas is a fixed grid of styled runes.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: make([]cell, w*h)}
}

func (c *canvas) put(x, y int, ch rune, st lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{ch: ch, style: st, set: true}
}

func (c *canvas) text(x, y int, s string, st lipgloss.Style) {
	for i, r := range []rune(s) {
		c.put(x+i, y, r, st)
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.h)
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.Reset()
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if !cl.set {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(cl.style.Render(string(cl.ch)))
		}
		out[y] = b.String()
	}
	return out
}

func (c *canvas) String() string { return strings.Join(c.lines(), "\n") }

// circleMask rasterises a circle d rows tall onto a grid two columns per row,
// since terminal cells are roughly twice as tall as they are wide. Cells whose
// normalised distance from the centre falls in [1-thickness, 1] are set.
func circleMask(d int, thickness float64) [][]bool {
	if d <= 0 {
		return nil
	}
	rows, cols := d, 2*d
	mask := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		mask[r] = make([]bool, cols)
		dy := (float64(r)+0.5)/float64(rows)*2 - 1
		for c := 0; c < cols; c++ {
			dx := (float64(c)+0.5)/float64(cols)*2 - 1
			dist := math.Hypot(dx, dy)
			mask[r][c] = dist <= 1 && dist >= 1-thickness
		}
	}
	return mask
}

// ringThickness converts a stroke width to a band of the normalised radius.
// Small rings get a floor so the band never vanishes between samples.
func ringThickness(stroke, d int) float64 {
	if d <= 0 {
		return 1
	}
	return math.Min(1, math.Max(float64(stroke)/float64(d), 0.3))
}

func (c *canvas) mask(x, y int, m [][]bool, ch rune, st lipgloss.Style) {
	for r, row := range m {
		for col, on := range row {
			if on {
				c.put(x+col, y+r, ch, st)
			}
		}
	}
}

// renderOrbPanel draws the orb widget with its label area and any rings from
// the frame. Row 0 of the panel sits one row above the orb bounds so a ring
// offset upwards stays visible.
func renderOrbPanel(res overlay.Result, rings []overlay.Ring, st styles) string {
	cv := newCanvas(labelCols+2*orbRows, orbRows+1)

	if res.Skipped {
		cv.text(0, 1, "Prayer orb hidden", st.dim)
		return cv.String()
	}

	cv.text(0, 1, "Prayer", st.label)
	cv.text(0, 2, fmt.Sprintf("%d / %d", res.Resource.Current, res.Resource.Max), st.value)
	cv.text(0, 3, "Left  "+res.Countdown, st.accent)
	cv.text(0, 4, fmt.Sprintf("Drain %.2f/min", res.DrainRate), st.dim)
	cv.text(0, 5, dosesLine(res.Restorative), st.dim)

	cv.mask(labelCols, 1, circleMask(orbRows, 1), discGlyph, st.orb)
	num := fmt.Sprintf("%d", res.Resource.Current)
	cv.text(labelCols+orbRows-len(num)/2, 1+orbRows/2, num, st.orbText)

	for _, ring := range rings {
		d := min(ring.Diameter, orbRows)
		x := ring.X - res.Bounds.X
		y := ring.Y - res.Bounds.Y + 1
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(ring.Color.Hex()))
		cv.mask(x, y, circleMask(d, ringThickness(ring.Stroke, d)), ringGlyph, color)
	}
	return cv.String()
}

func dosesLine(r model.RestorativeProfile) string {
	var held []string
	if r.HasPrayerPotion {
		held = append(held, "ppot")
	}
	if r.HasSuperRestore {
		held = append(held, "srest")
	}
	if r.HasHolyWrench {
		held = append(held, "wrench")
	}
	if len(held) == 0 {
		return "No doses"
	}
	return strings.Join(held, " ")
}

// renderTooltips boxes each tooltip, one line per line break.
func renderTooltips(tooltips []string, st styles) string {
	if len(tooltips) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(tooltips))
	for _, t := range tooltips {
		lines := strings.Split(t, overlay.TooltipLineBreak)
		boxes = append(boxes, st.tooltip.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}
