package tui

import "github.com/swifttickets/ticketdash/internal/dashboard"

// statsMsg carries a rendered header block.
type statsMsg struct {
	Stats dashboard.StatsView
}

// guildsMsg carries the rebuilt server list.
type guildsMsg struct {
	Entries []dashboard.GuildEntry
}

// categoriesMsg carries the rebuilt category chips.
type categoriesMsg struct {
	Chips []dashboard.CategoryChip
}

// localCategoriesMsg carries the local-only category rows.
type localCategoriesMsg struct {
	Rows []dashboard.LocalCategory
}

// settingsMsg hydrates the settings controls.
type settingsMsg struct {
	Form dashboard.SettingsForm
}

// noticeMsg surfaces a toast or alert.
type noticeMsg struct {
	Notice dashboard.Notice
}

// scrollMsg jumps to the section named by Anchor.
type scrollMsg struct {
	Anchor string
}

// actionDoneMsg is sent when a dispatched action has finished.
type actionDoneMsg struct {
	Action dashboard.Action
}

// clearNoticeMsg is sent to clear the notice display after a timeout.
// Seq guards against clearing a newer notice.
type clearNoticeMsg struct {
	Seq int
}
