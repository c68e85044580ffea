package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// Section is one region of the dashboard.
type Section int

const (
	SectionServers Section = iota
	SectionCategories
	SectionSettings
	SectionPanels
	sectionCount
)

var sectionNames = [sectionCount]string{
	SectionServers:    "Servers",
	SectionCategories: "Categories",
	SectionSettings:   "Settings",
	SectionPanels:     "Panels",
}

// Anchor returns the scroll anchor for s.
func (s Section) Anchor() string {
	if s < 0 || s >= sectionCount {
		return ""
	}
	return strings.ToLower(sectionNames[s])
}

// String returns the section's display name.
func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "unknown"
	}
	return sectionNames[s]
}

// sectionForAnchor resolves a scroll anchor; a leading "#" is ignored.
func sectionForAnchor(anchor string) (Section, bool) {
	anchor = strings.ToLower(strings.TrimPrefix(anchor, "#"))
	for s := Section(0); s < sectionCount; s++ {
		if s.Anchor() == anchor {
			return s, true
		}
	}
	return 0, false
}

// maxGuildNameWidth bounds guild names in the server list.
const maxGuildNameWidth = 28

func (m Model) tabsView() string {
	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s)
		if s == m.modeState.Section {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) sectionView() string {
	var body string
	switch m.modeState.Section {
	case SectionServers:
		body = m.serversView()
	case SectionCategories:
		body = m.categoriesView()
	case SectionSettings:
		body = m.settingsView()
	case SectionPanels:
		body = m.panelsView()
	}
	return sectionStyle.Width(m.width).Render(body)
}

func (m Model) serversView() string {
	if len(m.guilds) == 0 {
		return emptyStyle.Render("No servers.")
	}
	var rows []string
	for i, g := range m.guilds {
		icon := guildIconStyle
		if g.IconMuted {
			icon = guildIconMutedStyle
		}
		status := installedStyle.Render(g.StatusLabel)
		if !g.Installed {
			status = inviteStyle.Render(g.StatusLabel)
		}
		meta := string(g.ID)
		if g.MemberCount != nil {
			meta += fmt.Sprintf("  •  %d members", *g.MemberCount)
		}
		if !g.Created.IsZero() {
			meta += "  •  since " + g.Created.Format("Jan 2006")
		}
		name := truncate.StringWithTail(g.Name, maxGuildNameWidth, "…")
		line := fmt.Sprintf("%s %s  %s  [%s]\n    %s",
			icon.Render(g.Initial), guildNameStyle.Render(name), status, g.Action.Label, metaStyle.Render(meta))
		rows = append(rows, m.row(line, i == m.guildCursor))
	}
	return strings.Join(rows, "\n")
}

func (m Model) categoriesView() string {
	var b strings.Builder
	if len(m.categories) == 0 {
		b.WriteString(emptyStyle.Render("No categories."))
		b.WriteString("\n")
	}
	wrap := m.width - 12
	if wrap < 20 {
		wrap = 20
	}
	for i, c := range m.categories {
		line := chipStyle.Render(c.Label)
		if c.ID != "" {
			line += metaStyle.Render("  #" + string(c.ID))
		}
		if c.Description != "" {
			line += "\n  " + chipDescStyle.Render(strings.ReplaceAll(wordwrap.String(c.Description, wrap), "\n", "\n  "))
		}
		b.WriteString(m.row(line, i == m.categoryCursor))
		b.WriteString("\n")
	}

	if m.opts.LocalCategories {
		b.WriteString("\n")
		b.WriteString(metaStyle.Render("Local rows (not saved to the bot)"))
		b.WriteString("\n")
		if len(m.local) == 0 {
			b.WriteString(emptyStyle.Render("  none"))
			b.WriteString("\n")
		}
		for i, r := range m.local {
			emoji, name := r.Emoji, r.Name
			if m.modeState.IsEditing() && i == m.categoryCursor-len(m.categories) {
				switch m.modeState.Field {
				case fieldLocalName:
					name = m.inputView(fieldLocalName)
				case fieldLocalEmoji:
					emoji = m.inputView(fieldLocalEmoji)
				}
			}
			style, ok := localColorStyles[r.Color]
			if !ok {
				style = metaStyle
			}
			line := fmt.Sprintf("%s %s  %s", emoji, name, style.Render("● "+r.Color))
			b.WriteString(m.row(line, len(m.categories)+i == m.categoryCursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("New category"))
	b.WriteString("\n")
	b.WriteString(m.formRow(fieldCategoryName, false))
	b.WriteString("\n")
	b.WriteString(m.formRow(fieldCategoryDescription, false))
	return b.String()
}

func (m Model) settingsView() string {
	rows := make([]string, 0, settingsRowCount)
	for i, f := range settingsTextFields {
		rows = append(rows, m.formRow(f, i == m.settingsCursor))
	}
	for t := toggle(0); t < toggleCount; t++ {
		box := checkboxOffStyle.Render("[ ]")
		if m.toggles[t] {
			box = checkboxOnStyle.Render("[x]")
		}
		line := labelStyle.Render(toggleLabels[t]) + box
		rows = append(rows, m.row(line, len(settingsTextFields)+int(t) == m.settingsCursor))
	}
	return strings.Join(rows, "\n")
}

func (m Model) panelsView() string {
	var b strings.Builder
	b.WriteString(m.formRow(fieldPanelChannel, true))
	b.WriteString("\n\n")
	b.WriteString(metaStyle.Render("p posts the settings panel, P posts the public ticket panel"))
	return b.String()
}

// formRow renders a labelled text input.
func (m Model) formRow(f field, selected bool) string {
	return m.row(labelStyle.Render(fieldLabels[f])+m.inputView(f), selected)
}

func (m Model) inputView(f field) string {
	if m.modeState.IsEditing() && m.modeState.Field == f {
		return inputEditingStyle.Render(m.inputs[f].View())
	}
	if v := m.inputs[f].Value(); v != "" {
		return inputStyle.Render(v)
	}
	return emptyStyle.Render("-")
}

func (m Model) row(content string, selected bool) string {
	if selected {
		return rowSelectedStyle.Render(content)
	}
	return rowStyle.Render(content)
}

// selectedChip returns the persisted category under the cursor.
func (m Model) selectedChip() (dashboard.CategoryChip, bool) {
	if m.categoryCursor < 0 || m.categoryCursor >= len(m.categories) {
		return dashboard.CategoryChip{}, false
	}
	return m.categories[m.categoryCursor], true
}

// selectedLocalRow returns the index of the local row under the cursor.
func (m Model) selectedLocalRow() (int, bool) {
	i := m.categoryCursor - len(m.categories)
	if i < 0 || i >= len(m.local) {
		return 0, false
	}
	return i, true
}
