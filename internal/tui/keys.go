package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all orb page key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Help modal scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Simulator
	Prayers      key.Binding
	DrinkPotion  key.Binding
	DrinkRestore key.Binding
	Restock      key.Binding
	HolyWrench   key.Binding
	BonusUp      key.Binding
	BonusDown    key.Binding
	ToggleOrb    key.Binding

	// Overlay
	ToggleIndicator  key.Binding
	ToggleStatistics key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Prayers: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle prayer"),
		),
		DrinkPotion: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prayer potion"),
		),
		DrinkRestore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "super restore"),
		),
		Restock: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "restock doses"),
		),
		HolyWrench: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "holy wrench"),
		),
		BonusUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bonus up"),
		),
		BonusDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "bonus down"),
		),
		ToggleOrb: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "hide orb"),
		),
		ToggleIndicator: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dose ring"),
		),
		ToggleStatistics: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "statistics"),
		),
	}
}

// ShortHelp returns bindings for the compact help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prayers, k.DrinkPotion, k.DrinkRestore, k.ToggleIndicator, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prayers, k.DrinkPotion, k.DrinkRestore, k.Restock, k.HolyWrench, k.BonusUp, k.BonusDown, k.ToggleOrb},
		{k.ToggleIndicator, k.ToggleStatistics},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Escape},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// remoteShortHelp drops the simulator bindings, which do nothing when a
// remote client drives the host.
func (k KeyMap) remoteShortHelp() []key.Binding {
	return []key.Binding{k.ToggleIndicator, k.ToggleStatistics, k.Help, k.Quit}
}
