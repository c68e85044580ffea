package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// HelpBar displays context-sensitive keyboard shortcuts at the bottom of the TUI.
type HelpBar struct {
	width int
	keys  KeyBindings

	// Current context
	state           ModeState
	localCategories bool

	// Notice display
	notice *dashboard.Notice
}

// NewHelpBar creates a new help bar component.
func NewHelpBar() HelpBar {
	return HelpBar{
		keys: DefaultKeyBindings(),
	}
}

// SetWidth updates the help bar width.
func (h *HelpBar) SetWidth(width int) {
	h.width = width
}

// SetContext updates the help bar's context for rendering appropriate shortcuts.
func (h *HelpBar) SetContext(state ModeState, localCategories bool) {
	h.state = state
	h.localCategories = localCategories
}

// SetNotice sets the notice to display.
func (h *HelpBar) SetNotice(n dashboard.Notice) {
	h.notice = &n
}

// ClearNotice clears the notice.
func (h *HelpBar) ClearNotice() {
	h.notice = nil
}

// View renders the help bar with context-sensitive keyboard shortcuts.
func (h HelpBar) View() string {
	if h.state.IsDeleteConfirming() {
		bindings := []key.Binding{h.keys.Confirm, h.keys.Deny}
		return deleteConfirmStyle.Width(h.width).Render("Delete category " + string(h.state.DeleteCategoryID) + "? " + formatHelp(bindings))
	}

	// Notices take priority over the shortcut list
	if h.notice != nil {
		if h.notice.Kind == dashboard.NoticeAlert {
			return alertBarStyle.Width(h.width).Render(h.notice.Text)
		}
		return toastBarStyle.Width(h.width).Render("✓ " + h.notice.Text)
	}

	if h.state.IsEditing() {
		return statusStyle.Width(h.width).Render(formatHelp([]key.Binding{h.keys.Submit, h.keys.Cancel}))
	}

	var bindings []key.Binding
	switch h.state.Section {
	case SectionServers:
		bindings = []key.Binding{h.keys.Down, h.keys.Select, h.keys.Refresh}
	case SectionCategories:
		bindings = []key.Binding{h.keys.Down, h.keys.NewCategory, h.keys.Delete}
		if h.localCategories {
			bindings = append(bindings, h.keys.AddRow, h.keys.RemoveRow, h.keys.CycleRow, h.keys.EmojiRow, h.keys.SaveRows)
		}
	case SectionSettings:
		bindings = []key.Binding{h.keys.Down, h.keys.Select, h.keys.Toggle, h.keys.Save, h.keys.Reset}
	case SectionPanels:
		bindings = []key.Binding{h.keys.Select, h.keys.PostPanel, h.keys.PostPanelSet}
	}
	bindings = append(bindings, h.keys.Tab, h.keys.Quit)

	return statusStyle.Width(h.width).Render(formatHelp(bindings))
}

// formatHelp formats a list of key bindings as help text.
func formatHelp(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}
	return strings.Join(parts, "  ")
}
