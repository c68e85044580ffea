package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
	"github.com/swifttickets/ticketdash/internal/logging"
)

// noticeTimeout is how long a toast stays in the help bar.
const noticeTimeout = 4 * time.Second

// loadCmd fetches the initial snapshot. Failures leave the placeholder view.
func (m Model) loadCmd(guild api.ID) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		if ctrl == nil {
			return nil
		}
		defer logging.LogPanic("tui-load", nil)
		if err := ctrl.Load(ctx, guild); err != nil {
			slog.Debug("tui: initial load failed", "guild", guild, "error", err)
		}
		return nil
	}
}

// dispatchCmd runs action through the controller off the UI loop.
// The controller renders its results back through the program.
func (m Model) dispatchCmd(action dashboard.Action, arg string) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() (msg tea.Msg) {
		if ctrl == nil {
			return nil
		}
		defer logging.LogPanic("tui-dispatch", func(any) {
			msg = actionDoneMsg{Action: action}
		})
		ctrl.Dispatch(ctx, action, arg)
		return actionDoneMsg{Action: action}
	}
}

// clearNoticeCmd returns a command that clears the notice after a delay.
func clearNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{Seq: seq}
	})
}

// setNotice shows n and returns a command to clear it after a timeout.
func (m *Model) setNotice(n dashboard.Notice) tea.Cmd {
	m.noticeSeq++
	m.helpBar.SetNotice(n)
	return clearNoticeCmd(m.noticeSeq)
}
