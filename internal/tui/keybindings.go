package tui

import "github.com/charmbracelet/bubbles/key"

// KeyBindings defines all keyboard shortcuts for the TUI.
type KeyBindings struct {
	// Global keys
	Quit    key.Binding
	Tab     key.Binding
	Jump    key.Binding
	Refresh key.Binding
	Save    key.Binding
	Reset   key.Binding

	// Navigation keys
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Section keys
	Select       key.Binding
	Toggle       key.Binding
	NewCategory  key.Binding
	Delete       key.Binding
	PostPanel    key.Binding
	PostPanelSet key.Binding

	// Local category rows
	AddRow    key.Binding
	RemoveRow key.Binding
	CycleRow  key.Binding
	EmojiRow  key.Binding
	SaveRows  key.Binding

	// Confirmation keys
	Confirm key.Binding
	Deny    key.Binding

	// Input keys
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save settings"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		NewCategory: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new category"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		PostPanel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "post settings panel"),
		),
		PostPanelSet: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "post public panel"),
		),

		AddRow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add row"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove row"),
		),
		CycleRow: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		EmojiRow: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emoji"),
		),
		SaveRows: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "save rows"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
