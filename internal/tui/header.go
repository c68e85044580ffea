package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// Header displays the bot tag and the stats block.
type Header struct {
	width int
	stats dashboard.StatsView
}

// NewHeader creates a new header component showing the fallbacks used
// before the first snapshot arrives.
func NewHeader() Header {
	return Header{
		stats: dashboard.StatsView{
			BotTag:        dashboard.DefaultBotTag,
			Latency:       dashboard.FormatLatency(nil),
			Uptime:        dashboard.DefaultUptime,
			SelectedGuild: dashboard.NoGuildSelectedLabel,
		},
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStats replaces the stats block.
func (h *Header) SetStats(s dashboard.StatsView) {
	h.stats = s
}

// Height returns the number of lines View renders.
func (h Header) Height() int {
	if h.stats.Extended {
		return 2
	}
	return 1
}

// View renders the header.
func (h Header) View() string {
	brand := headerBrandStyle.Render("🎫 " + h.stats.BotTag)

	parts := []string{
		fmt.Sprintf("%d servers", h.stats.GuildCount),
		h.stats.Latency,
		"up " + h.stats.Uptime,
		h.stats.SelectedGuild,
	}
	stats := headerStatsStyle.Render(strings.Join(parts, "  •  "))

	spacerWidth := h.width - lipgloss.Width(brand) - lipgloss.Width(stats)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	line := headerContainerStyle.Width(h.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, brand, spacer, stats),
	)
	if !h.stats.Extended {
		return line
	}

	extended := fmt.Sprintf("staff role %s (%d)  •  tickets %d open / %d closed",
		h.stats.StaffRole, h.stats.StaffCount, h.stats.OpenTickets, h.stats.ClosedTickets)
	if h.stats.InviteURL != "" {
		extended += "  •  invite " + h.stats.InviteURL
	}
	return line + "\n" + headerExtendedStyle.Width(h.width).Render(extended)
}
