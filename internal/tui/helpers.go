package tui

// syncForm publishes the current control values to the form the controller reads.
func (m *Model) syncForm() {
	if m.form == nil {
		return
	}
	m.form.set(
		formValues(&m.inputs, m.toggles),
		m.inputs[fieldCategoryName].Value(),
		m.inputs[fieldCategoryDescription].Value(),
		m.inputs[fieldPanelChannel].Value(),
	)
}

// updateLayout recalculates component widths.
func (m *Model) updateLayout() {
	m.header.SetWidth(m.width)
	m.helpBar.SetWidth(m.width)
	inputWidth := m.width - 30
	if inputWidth < 10 {
		inputWidth = 10
	}
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
}

// categoryRowCount is the number of selectable rows in the categories section.
func (m *Model) categoryRowCount() int {
	n := len(m.categories)
	if m.opts.LocalCategories {
		n += len(m.local)
	}
	return n
}

// clampCursors keeps every cursor inside its list after a re-render.
func (m *Model) clampCursors() {
	m.guildCursor = clamp(m.guildCursor, len(m.guilds))
	m.categoryCursor = clamp(m.categoryCursor, m.categoryRowCount())
	m.settingsCursor = clamp(m.settingsCursor, settingsRowCount)
}

// moveCursor moves the cursor of the current section by delta.
// A delta beyond the list snaps to its first or last row.
func (m *Model) moveCursor(delta int) {
	switch m.modeState.Section {
	case SectionServers:
		m.guildCursor = clamp(m.guildCursor+delta, len(m.guilds))
	case SectionCategories:
		m.categoryCursor = clamp(m.categoryCursor+delta, m.categoryRowCount())
	case SectionSettings:
		m.settingsCursor = clamp(m.settingsCursor+delta, settingsRowCount)
	}
}

// clamp bounds i to [0, n). An empty list yields 0.
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
