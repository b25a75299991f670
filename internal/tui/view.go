package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/doseorb/internal/dose"
)

const historyHeight = 6

// View lays the page out top to bottom: title bar, a blank row, the orb panel
// (whose first row is screen row orbTop-1), statistics, history and the
// status and help bars.
func (p *OrbPage) View(width, height int) string {
	if p.helpOpen {
		return p.helpModal.View(width, height)
	}

	sections := []string{
		p.renderTitle(),
		"",
		p.renderOrbRow(),
		"",
		p.renderStats(),
	}
	if p.sim != nil {
		sections = append(sections, p.renderPrayers())
	}

	chartWidth := 80
	if width > 0 {
		chartWidth = min(width, chartWidth)
	}
	sections = append(sections, "", p.history.render(chartWidth, historyHeight, p.styles))
	sections = append(sections, p.renderStatus(), p.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *OrbPage) renderTitle() string {
	mode := "simulator"
	if p.remote != nil {
		mode = "remote host"
	}
	info := p.styles.dim.Render(fmt.Sprintf(" %s · tick %d · frame %d", mode, p.ticks, p.frames))
	return p.styles.title.Render("doseorb") + info
}

func (p *OrbPage) renderOrbRow() string {
	panel := renderOrbPanel(p.last, p.surface.rings, p.styles)

	lines := strings.Split(panel, "\n")
	pad := strings.Repeat(" ", orbLeft)
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	panel = strings.Join(lines, "\n")

	tips := renderTooltips(p.surface.tooltips, p.styles)
	if tips == "" {
		return panel
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", tips)
}

func (p *OrbPage) renderStats() string {
	res := p.last
	if res.Skipped {
		return p.styles.dim.Render("  waiting for the prayer orb")
	}

	el := res.Eligibility
	var verdict string
	if el.Eligible() {
		verdict = p.styles.ok.Render("dose now: " + el.Best().String())
	} else {
		verdict = p.styles.dim.Render("hold doses")
	}

	ring := "off"
	if res.Ring != nil {
		ring = res.Ring.Color.Hex()
	}

	parts := []string{
		p.styles.label.Render("missing ") + p.styles.value.Render(fmt.Sprintf("%d", el.Deficit)),
		p.styles.label.Render("restore ") + fmt.Sprintf("ppot +%d srest +%d", el.PrayerPotionRestore, el.SuperRestoreRestore),
		p.styles.label.Render("phase ") + fmt.Sprintf("%.2f", res.Phase),
		p.styles.label.Render("ring ") + ring,
		verdict,
	}

	if p.sim != nil {
		parts = append(parts, p.styles.label.Render("doses ")+fmt.Sprintf("%d/%d",
			p.sim.Doses(dose.ItemPrayerPotion), p.sim.Doses(dose.ItemSuperRestore)))
	}
	return "  " + strings.Join(parts, p.styles.dim.Render(" │ "))
}

func (p *OrbPage) renderPrayers() string {
	active := p.sim.ActivePrayers()
	if len(active) == 0 {
		return p.styles.dim.Render("  no prayers active")
	}
	names := make([]string, len(active))
	for i, pr := range active {
		names[i] = fmt.Sprintf("%s (%.2f)", pr, pr.DrainRate())
	}
	return "  " + p.styles.label.Render("active ") + strings.Join(names, ", ")
}

func (p *OrbPage) renderStatus() string {
	if p.status == "" || p.clock.Now().Sub(p.statusAt) > statusTTL {
		return ""
	}
	return p.styles.accent.Render("  " + p.status)
}

func (p *OrbPage) renderHelpBar() string {
	bindings := p.keys.ShortHelp()
	if p.remote != nil {
		bindings = p.keys.remoteShortHelp()
	}
	return "  " + p.help.ShortHelpView(bindings)
}
