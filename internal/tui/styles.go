package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/doseorb/internal/skin"
)

var (
	ColorGray    = lipgloss.Color("240")
	ColorWhite   = lipgloss.Color("255")
	ColorRed     = lipgloss.Color("196")
	ColorGreen   = lipgloss.Color("42")
	ColorOrbRim  = lipgloss.Color("23")
	ColorOrbFill = lipgloss.Color("30")
)

// styles holds every style the orb page renders with. Skin colours feed the
// accent and tooltip styles.
type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	dim      lipgloss.Style
	accent   lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	tooltip  lipgloss.Style
	orb      lipgloss.Style
	orbText  lipgloss.Style
	chart    lipgloss.Style
	chartBar lipgloss.Style
	modal    lipgloss.Style
}

func newStyles(s skin.Skin) styles {
	accent := lipgloss.Color(s.Accent)
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(accent).
			Padding(0, 1),
		label:  lipgloss.NewStyle().Foreground(ColorGray),
		value:  lipgloss.NewStyle().Foreground(ColorWhite).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(ColorGray),
		accent: lipgloss.NewStyle().Foreground(accent),
		ok:     lipgloss.NewStyle().Foreground(ColorGreen),
		warn:   lipgloss.NewStyle().Foreground(ColorRed),
		tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Tooltip)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1),
		orb:     lipgloss.NewStyle().Foreground(ColorOrbRim).Background(ColorOrbFill),
		orbText: lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorOrbFill).Bold(true),
		chart: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1),
		chartBar: lipgloss.NewStyle().Foreground(accent).Background(accent),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}
