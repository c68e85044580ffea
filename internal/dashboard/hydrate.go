package dashboard

import (
	"strconv"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/swifttickets/ticketdash/internal/api"
)

// Fallbacks shown when the snapshot omits a field.
const (
	DefaultBotTag        = "SwiftTickets"
	DefaultUptime        = "online"
	NoGuildSelectedLabel = "Select server"
	DefaultStaffRole     = "Not set"
	defaultGuildInitial  = "S"
)

// Settings defaults applied when a key is absent.
const (
	DefaultTimezone           = "UTC"
	DefaultCategorySlots      = 1
	DefaultWarnThreshold      = 3
	DefaultWarnTimeoutMinutes = 10
)

// DefaultSettingsForm returns the controls as they look before any snapshot
// has been hydrated.
func DefaultSettingsForm() SettingsForm {
	return FormFromSettings(nil)
}

// FormFromSettings fills the nine controls from s, applying defaults for
// every absent key. A nil s yields all defaults.
func FormFromSettings(s *api.Settings) SettingsForm {
	if s == nil {
		s = &api.Settings{}
	}
	return SettingsForm{
		TicketParentChannelID: idOr(s.TicketParentChannelID, ""),
		StaffRoleID:           idOr(s.StaffRoleID, ""),
		Timezone:              stringOr(s.Timezone, DefaultTimezone),
		CategorySlots:         strconv.Itoa(intOr(s.CategorySlots, DefaultCategorySlots)),
		WarnThreshold:         strconv.Itoa(intOr(s.WarnThreshold, DefaultWarnThreshold)),
		WarnTimeoutMinutes:    strconv.Itoa(intOr(s.WarnTimeoutMinutes, DefaultWarnTimeoutMinutes)),
		SmartReplies:          boolOr(s.EnableSmartReplies, true),
		AISuggestions:         boolOr(s.EnableAISuggestions, true),
		AutoPriority:          boolOr(s.EnableAutoPriority, true),
	}
}

// BuildStats projects the snapshot header fields.
func BuildStats(snap *api.Snapshot, extended bool) StatsView {
	v := StatsView{
		BotTag:        stringOr(snap.BotTag, DefaultBotTag),
		GuildCount:    len(snap.Guilds),
		Latency:       FormatLatency(snap.LatencyMs),
		Uptime:        stringOr(snap.Uptime, DefaultUptime),
		SelectedGuild: idOr(snap.SelectedGuild, NoGuildSelectedLabel),
	}
	if !extended {
		return v
	}
	v.Extended = true
	v.StaffRole = idOr(snap.StaffRoleID, DefaultStaffRole)
	v.StaffCount = intOr(snap.StaffCount, 0)
	if snap.Stats != nil {
		v.OpenTickets = snap.Stats.Open
		v.ClosedTickets = snap.Stats.Closed
	}
	v.InviteURL = stringOr(snap.InviteURL, "")
	return v
}

// FormatLatency renders a latency as "<n>ms", with 0ms when unknown.
func FormatLatency(ms *float64) string {
	if ms == nil {
		return "0ms"
	}
	return strconv.FormatFloat(*ms, 'f', -1, 64) + "ms"
}

// Links builds the hrefs used by guild actions.
type Links struct {
	// Base is prefixed to the /select and /invite paths.
	Base string
	// ManageInPlace makes "Manage" trigger a scoped reload instead of a link.
	ManageInPlace bool
	// AppID enables direct Discord bot-invite URLs.
	AppID string
}

// BuildGuildEntries projects the guild list.
func BuildGuildEntries(guilds []api.Guild, links Links) []GuildEntry {
	entries := make([]GuildEntry, 0, len(guilds))
	for _, g := range guilds {
		installed := g.Installed()
		e := GuildEntry{
			ID:          g.ID,
			Name:        g.Name,
			Initial:     guildInitial(g.Name),
			IconMuted:   g.IconURL == "",
			Installed:   installed,
			MemberCount: g.MemberCount,
		}
		if ts, err := discordgo.SnowflakeTimestamp(string(g.ID)); err == nil {
			e.Created = ts
		}
		if installed {
			e.StatusLabel = "Installed"
			e.Action = GuildAction{Kind: ActionKindManage, Label: "Manage"}
			if !links.ManageInPlace {
				e.Action.Href = links.Base + "/select/" + string(g.ID)
			}
		} else {
			e.StatusLabel = "Invite required"
			e.Action = GuildAction{Kind: ActionKindInvite, Label: "Invite"}
			if links.AppID != "" {
				e.Action.Href = InviteURL(links.AppID, g.ID)
			} else {
				e.Action.Href = links.Base + "/invite/" + string(g.ID)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// BuildCategoryChips projects the category list.
func BuildCategoryChips(categories []api.Category) []CategoryChip {
	chips := make([]CategoryChip, 0, len(categories))
	for _, c := range categories {
		chips = append(chips, CategoryChip{ID: c.ID, Label: c.Name, Description: c.Description})
	}
	return chips
}

func guildInitial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return defaultGuildInitial
	}
	return string(r)
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func idOr(p *api.ID, def string) string {
	if p == nil {
		return def
	}
	return string(*p)
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
