// Package render provides non-interactive dashboard renderers: plain text for
// the terminal and a static HTML page.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// maxNameWidth bounds guild names in the text table.
const maxNameWidth = 32

// descriptionWidth is the wrap width for category descriptions.
const descriptionWidth = 60

// Text writes each rendered region to w as it arrives.
type Text struct {
	w io.Writer
}

// NewText creates a text renderer.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) RenderStats(s dashboard.StatsView) {
	fmt.Fprintf(t.w, "🎫 %s\n", s.BotTag)
	fmt.Fprintf(t.w, "   Servers: %d  Latency: %s  Uptime: %s\n", s.GuildCount, s.Latency, s.Uptime)
	fmt.Fprintf(t.w, "   Selected: %s\n", s.SelectedGuild)
	if s.Extended {
		fmt.Fprintf(t.w, "   Staff role: %s (%d members)  Tickets: %d open / %d closed\n",
			s.StaffRole, s.StaffCount, s.OpenTickets, s.ClosedTickets)
		if s.InviteURL != "" {
			fmt.Fprintf(t.w, "   Invite: %s\n", s.InviteURL)
		}
	}
	fmt.Fprintln(t.w)
}

func (t *Text) RenderGuildList(entries []dashboard.GuildEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(t.w, "No servers.")
		fmt.Fprintln(t.w)
		return
	}
	w := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SERVER\tID\tSTATUS\tMEMBERS\tACTION")
	for _, e := range entries {
		members := "-"
		if e.MemberCount != nil {
			members = fmt.Sprintf("%d", *e.MemberCount)
		}
		action := e.Action.Label
		if e.Action.Href != "" {
			action += " " + e.Action.Href
		}
		name := truncate.StringWithTail(e.Name, maxNameWidth, "…")
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, e.ID, e.StatusLabel, members, action)
	}
	_ = w.Flush()
	fmt.Fprintln(t.w)
}

func (t *Text) RenderCategoryList(chips []dashboard.CategoryChip) {
	if len(chips) == 0 {
		fmt.Fprintln(t.w, "No categories.")
		fmt.Fprintln(t.w)
		return
	}
	fmt.Fprintln(t.w, "Categories:")
	for _, c := range chips {
		label := c.Label
		if c.ID != "" {
			label = fmt.Sprintf("%s (#%s)", c.Label, c.ID)
		}
		fmt.Fprintf(t.w, "  • %s\n", label)
		if c.Description != "" {
			fmt.Fprintln(t.w, indent.String(wordwrap.String(c.Description, descriptionWidth), 4))
		}
	}
	fmt.Fprintln(t.w)
}

func (t *Text) RenderLocalCategories(rows []dashboard.LocalCategory) {
	fmt.Fprintln(t.w, "Local categories (unsaved):")
	for i, r := range rows {
		fmt.Fprintf(t.w, "  %d. %s %s [%s]\n", i, r.Emoji, r.Name, r.Color)
	}
	fmt.Fprintln(t.w)
}

func (t *Text) HydrateSettings(f dashboard.SettingsForm) {
	w := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SETTING\tVALUE")
	rows := [][2]string{
		{"ticket_parent_channel_id", orDash(f.TicketParentChannelID)},
		{"staff_role_id", orDash(f.StaffRoleID)},
		{"timezone", f.Timezone},
		{"category_slots", f.CategorySlots},
		{"warn_threshold", f.WarnThreshold},
		{"warn_timeout_minutes", f.WarnTimeoutMinutes},
		{"enable_smart_replies", onOff(f.SmartReplies)},
		{"enable_ai_suggestions", onOff(f.AISuggestions)},
		{"enable_auto_priority", onOff(f.AutoPriority)},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
	_ = w.Flush()
	fmt.Fprintln(t.w)
}

func (t *Text) Notify(n dashboard.Notice) {
	fmt.Fprintf(t.w, "[%s] %s\n", n.Kind, n.Text)
}

// ScrollTo is a no-op: text output is already linear.
func (t *Text) ScrollTo(string) {}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
