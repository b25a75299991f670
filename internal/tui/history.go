package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// prayerHistory keeps the prayer level sampled once per game tick.
type prayerHistory struct {
	size   int
	points []int
}

func newPrayerHistory(size int) *prayerHistory {
	if size <= 0 {
		size = 1
	}
	return &prayerHistory{size: size, points: make([]int, 0, size)}
}

func (h *prayerHistory) push(current int) {
	if len(h.points) == h.size {
		copy(h.points, h.points[1:])
		h.points = h.points[:h.size-1]
	}
	h.points = append(h.points, current)
}

func (h *prayerHistory) len() int { return len(h.points) }

func (h *prayerHistory) minMax() (lo, hi int) {
	if len(h.points) == 0 {
		return 0, 0
	}
	lo, hi = h.points[0], h.points[0]
	for _, p := range h.points[1:] {
		lo = min(lo, p)
		hi = max(hi, p)
	}
	return lo, hi
}

// render draws the most recent samples that fit as a bar chart, newest on
// the right. Missing samples are padded with empty bars so the chart scrolls
// in from the right edge.
func (h *prayerHistory) render(width, height int, st styles) string {
	// border and padding take two columns each side
	innerWidth := max(width-4, 10)
	chartWidth := innerWidth - 2
	chartHeight := max(height, 3)

	header := "Prayer per tick"
	if lo, hi := h.minMax(); len(h.points) > 0 {
		stats := fmt.Sprintf("Min: %d | Max: %d", lo, hi)
		if gap := chartWidth - len(header) - len(stats); gap > 0 {
			header += strings.Repeat(" ", gap) + stats
		}
	}
	title := st.label.Render(header)

	if len(h.points) == 0 {
		return st.chart.Width(innerWidth).Render(lipgloss.JoinVertical(lipgloss.Left, title, st.dim.Render("No ticks yet")))
	}

	maxBars := chartWidth / 2
	start := max(len(h.points)-maxBars, 0)
	shown := h.points[start:]
	padding := maxBars - len(shown)

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for i := 0; i < padding; i++ {
		bc.Push(barchart.BarData{
			Values: []barchart.BarValue{{Name: "empty", Value: 0, Style: st.dim}},
		})
	}
	for _, p := range shown {
		bc.Push(barchart.BarData{
			Values: []barchart.BarValue{{Name: "prayer", Value: float64(p), Style: st.chartBar}},
		})
	}
	bc.Draw()

	return st.chart.Width(innerWidth).Render(lipgloss.JoinVertical(lipgloss.Left, title, bc.View()))
}
