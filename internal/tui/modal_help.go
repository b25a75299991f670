package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/doseorb/internal/prayer"
)

// HelpModal shows the key reference and a short guide to the indicator in
// a scrollable viewport.
type HelpModal struct {
	keys     KeyMap
	styles   styles
	viewport viewport.Model
}

func newHelpModal(keys KeyMap, st styles) *HelpModal {
	return &HelpModal{
		keys:     keys,
		styles:   st,
		viewport: viewport.New(70, 20),
	}
}

// Update handles input while the modal is open. It reports true when the
// modal should close.
func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Help), key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Quit):
			return true, nil
		case key.Matches(msg, h.keys.Up):
			h.viewport.ScrollUp(1)
			return false, nil
		case key.Matches(msg, h.keys.Down):
			h.viewport.ScrollDown(1)
			return false, nil
		case key.Matches(msg, h.keys.PageUp):
			h.viewport.HalfPageUp()
			return false, nil
		case key.Matches(msg, h.keys.PageDown):
			h.viewport.HalfPageDown()
			return false, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				h.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				h.viewport.ScrollDown(1)
			}
		}
	}
	return false, nil
}

// View renders the modal centred in width x height.
func (h *HelpModal) View(width, height int) string {
	contentWidth := max(min(width-8, 72), 20)
	contentHeight := max(height-8, 5)

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(h.content()))

	header := h.styles.title.Render("doseorb help")
	status := h.styles.dim.Render("↑/↓ scroll · esc close")
	body := h.styles.modal.Render(lipgloss.JoinVertical(lipgloss.Left, header, h.viewport.View(), status))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (h *HelpModal) content() string {
	var b strings.Builder
	b.WriteString("The ring around the prayer orb pulses when drinking a dose\n")
	b.WriteString("would restore its full amount without going over your maximum.\n")
	b.WriteString("Hover the orb to see the time left at the current drain rate.\n\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"SIMULATOR", []key.Binding{h.keys.Prayers, h.keys.DrinkPotion, h.keys.DrinkRestore, h.keys.Restock, h.keys.HolyWrench, h.keys.BonusUp, h.keys.BonusDown, h.keys.ToggleOrb}},
		{"OVERLAY", []key.Binding{h.keys.ToggleIndicator, h.keys.ToggleStatistics}},
		{"GENERAL", []key.Binding{h.keys.Help, h.keys.Escape, h.keys.Quit, h.keys.ForceQuit}},
	}
	for _, sec := range sections {
		b.WriteString(sec.title + ":\n")
		for _, kb := range sec.bindings {
			hp := kb.Help()
			b.WriteString("  " + padRight(hp.Key, 10) + " - " + hp.Desc + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("PRAYER HOTBAR:\n")
	for i, p := range hotbar {
		b.WriteString("  " + padRight(string(rune('1'+i)), 10) + " - " + p.String() + "\n")
	}

	b.WriteString("\nDRAIN RATES (points/min):\n")
	for _, p := range prayer.All() {
		b.WriteString(fmt.Sprintf("  %-20s %6.2f\n", p, p.DrainRate()))
	}
	return b.String()
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
