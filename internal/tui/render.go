package tui

import (
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// programRenderer implements dashboard.Renderer by turning every render
// call into a message for the running program.
type programRenderer struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// attach connects the renderer to a program's Send. Calls made before
// attach are dropped.
func (r *programRenderer) attach(send func(tea.Msg)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send = send
}

func (r *programRenderer) emit(msg tea.Msg) {
	r.mu.RLock()
	send := r.send
	r.mu.RUnlock()
	if send == nil {
		slog.Debug("tui: dropping render before program start", "msg", msg)
		return
	}
	send(msg)
}

func (r *programRenderer) RenderStats(s dashboard.StatsView) {
	r.emit(statsMsg{Stats: s})
}

func (r *programRenderer) RenderGuildList(entries []dashboard.GuildEntry) {
	r.emit(guildsMsg{Entries: entries})
}

func (r *programRenderer) RenderCategoryList(chips []dashboard.CategoryChip) {
	r.emit(categoriesMsg{Chips: chips})
}

func (r *programRenderer) RenderLocalCategories(rows []dashboard.LocalCategory) {
	r.emit(localCategoriesMsg{Rows: rows})
}

func (r *programRenderer) HydrateSettings(f dashboard.SettingsForm) {
	r.emit(settingsMsg{Form: f})
}

func (r *programRenderer) Notify(n dashboard.Notice) {
	r.emit(noticeMsg{Notice: n})
}

func (r *programRenderer) ScrollTo(anchor string) {
	r.emit(scrollMsg{Anchor: anchor})
}
