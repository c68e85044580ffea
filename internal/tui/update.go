package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true

	case statsMsg:
		m.header.SetStats(msg.Stats)

	case guildsMsg:
		m.guilds = msg.Entries
		m.clampCursors()

	case categoriesMsg:
		m.categories = msg.Chips
		m.clampCursors()

	case localCategoriesMsg:
		m.local = msg.Rows
		m.clampCursors()

	case settingsMsg:
		// A fresh snapshot wins over an edit in progress
		if m.modeState.IsEditing() && isSettingsField(m.modeState.Field) {
			f, _ := m.modeState.ExitEditMode()
			m.inputs[f].Blur()
		}
		hydrateInputs(&m.inputs, &m.toggles, msg.Form)
		m.syncForm()

	case noticeMsg:
		cmds = append(cmds, m.setNotice(msg.Notice))

	case scrollMsg:
		if sec, ok := sectionForAnchor(msg.Anchor); ok {
			_ = m.modeState.SetSection(sec)
		}

	case actionDoneMsg:
		slog.Debug("tui: action finished", "action", msg.Action)

	case clearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.helpBar.ClearNotice()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.modeState.IsEditing() {
		return m.handleEditKey(msg)
	}

	if m.modeState.IsDeleteConfirming() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			id, err := m.modeState.ConfirmDelete()
			if err != nil {
				return nil
			}
			slog.Debug("tui: confirming category delete", "category_id", id)
			return m.dispatchCmd(dashboard.ActionDeleteCategory, string(id))
		case key.Matches(msg, m.keys.Deny):
			_ = m.modeState.CancelDelete()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Tab):
		_, _ = m.modeState.CycleSection()
		return nil
	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil
		}
		return m.dispatchCmd(dashboard.ActionScroll, Section(n-1).Anchor())
	case key.Matches(msg, m.keys.Refresh):
		return m.dispatchCmd(dashboard.ActionRefresh, "")
	case key.Matches(msg, m.keys.Save):
		return m.dispatchCmd(dashboard.ActionSaveSettings, "")
	case key.Matches(msg, m.keys.Reset):
		return m.dispatchCmd(dashboard.ActionReset, "")
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return nil
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.guilds) - m.categoryRowCount() - settingsRowCount)
		return nil
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.guilds) + m.categoryRowCount() + settingsRowCount)
		return nil
	}

	switch m.modeState.Section {
	case SectionServers:
		return m.handleServersKey(msg)
	case SectionCategories:
		return m.handleCategoriesKey(msg)
	case SectionSettings:
		return m.handleSettingsKey(msg)
	case SectionPanels:
		return m.handlePanelsKey(msg)
	}
	return nil
}

func (m *Model) handleServersKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Select) || m.guildCursor >= len(m.guilds) {
		return nil
	}
	g := m.guilds[m.guildCursor]
	switch g.Action.Kind {
	case dashboard.ActionKindManage:
		// The terminal cannot follow the /select link, so manage always
		// switches guilds in place.
		return m.dispatchCmd(dashboard.ActionManage, string(g.ID))
	case dashboard.ActionKindInvite:
		if m.opts.Links.AppID != "" {
			return m.setNotice(dashboard.Notice{Kind: dashboard.NoticeAlert, Text: "Invite: " + g.Action.Href})
		}
		return m.dispatchCmd(dashboard.ActionInvite, "")
	}
	return nil
}

func (m *Model) handleCategoriesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NewCategory):
		return m.startEdit(fieldCategoryName)
	case key.Matches(msg, m.keys.Delete):
		chip, ok := m.selectedChip()
		if !ok || chip.ID == "" {
			return nil
		}
		_ = m.modeState.EnterDeleteConfirm(chip.ID)
		return nil
	}

	if !m.opts.LocalCategories {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.AddRow):
		return m.dispatchCmd(dashboard.ActionAddCategory, "")
	case key.Matches(msg, m.keys.SaveRows):
		return m.dispatchCmd(dashboard.ActionSaveCategories, "")
	}

	i, ok := m.selectedLocalRow()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.RemoveRow):
		return m.dispatchCmd(dashboard.ActionRemoveCategory, strconv.Itoa(i))
	case key.Matches(msg, m.keys.CycleRow):
		row := m.local[i]
		row.Color = dashboard.NextColor(row.Color)
		return m.updateLocalCmd(i, row)
	case key.Matches(msg, m.keys.EmojiRow):
		m.inputs[fieldLocalEmoji].SetValue(m.local[i].Emoji)
		return m.startEdit(fieldLocalEmoji)
	case key.Matches(msg, m.keys.Select):
		m.inputs[fieldLocalName].SetValue(m.local[i].Name)
		return m.startEdit(fieldLocalName)
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Select) && !key.Matches(msg, m.keys.Toggle) {
		return nil
	}
	if m.settingsCursor < len(settingsTextFields) {
		if key.Matches(msg, m.keys.Toggle) {
			return nil
		}
		return m.startEdit(settingsTextFields[m.settingsCursor])
	}
	t := toggle(m.settingsCursor - len(settingsTextFields))
	m.toggles[t] = !m.toggles[t]
	m.syncForm()
	return nil
}

func (m *Model) handlePanelsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Select):
		return m.startEdit(fieldPanelChannel)
	case key.Matches(msg, m.keys.PostPanel):
		return m.dispatchCmd(dashboard.ActionPostPanel, "")
	case key.Matches(msg, m.keys.PostPanelSet):
		return m.dispatchCmd(dashboard.ActionPostPanelSet, "")
	}
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		f, err := m.modeState.ExitEditMode()
		if err != nil {
			return nil
		}
		m.inputs[f].SetValue(m.editOriginal)
		m.inputs[f].Blur()
		m.syncForm()
		return nil

	case key.Matches(msg, m.keys.Submit):
		f, err := m.modeState.ExitEditMode()
		if err != nil {
			return nil
		}
		m.inputs[f].Blur()
		m.syncForm()
		return m.afterEdit(f)
	}

	var cmd tea.Cmd
	f := m.modeState.Field
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	m.syncForm()
	return cmd
}

// afterEdit runs the follow-up of a committed field.
func (m *Model) afterEdit(f field) tea.Cmd {
	switch f {
	case fieldCategoryName:
		// The description is optional; enter on an empty one submits.
		return m.startEdit(fieldCategoryDescription)
	case fieldCategoryDescription:
		return m.dispatchCmd(dashboard.ActionCreateCategory, "")
	case fieldLocalName:
		i, ok := m.selectedLocalRow()
		if !ok {
			return nil
		}
		row := m.local[i]
		row.Name = m.inputs[fieldLocalName].Value()
		return m.updateLocalCmd(i, row)
	case fieldLocalEmoji:
		i, ok := m.selectedLocalRow()
		if !ok {
			return nil
		}
		row := m.local[i]
		// An empty emoji keeps the current one.
		if e := strings.TrimSpace(m.inputs[fieldLocalEmoji].Value()); e != "" {
			row.Emoji = e
		}
		return m.updateLocalCmd(i, row)
	}
	return nil
}

func (m *Model) startEdit(f field) tea.Cmd {
	if err := m.modeState.EnterEditMode(f); err != nil {
		return nil
	}
	m.editOriginal = m.inputs[f].Value()
	m.inputs[f].CursorEnd()
	return m.inputs[f].Focus()
}

// updateLocalCmd replaces a local row off the UI loop; the controller
// re-renders the rows through the program.
func (m *Model) updateLocalCmd(i int, row dashboard.LocalCategory) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if ctrl == nil {
			return nil
		}
		ctrl.UpdateLocalCategory(i, row)
		return nil
	}
}

func isSettingsField(f field) bool {
	for _, sf := range settingsTextFields {
		if sf == f {
			return true
		}
	}
	return false
}
