package dashboard

import (
	"time"

	"github.com/swifttickets/ticketdash/internal/api"
)

// Renderer is the display surface the controller projects snapshots onto.
// Each call replaces what was previously shown for that region.
type Renderer interface {
	RenderStats(StatsView)
	RenderGuildList([]GuildEntry)
	RenderCategoryList([]CategoryChip)
	HydrateSettings(SettingsForm)
	Notify(Notice)
	ScrollTo(anchor string)
}

// LocalCategoryRenderer is implemented by renderers that support editing
// category rows locally without persisting them.
type LocalCategoryRenderer interface {
	RenderLocalCategories([]LocalCategory)
}

// Form reads the live values of the user-editable controls.
type Form interface {
	Settings() SettingsForm
	NewCategory() (name, description string)
	PanelChannelID() string
}

// StatsView is the header block of the dashboard.
type StatsView struct {
	BotTag        string
	GuildCount    int
	Latency       string
	Uptime        string
	SelectedGuild string

	// Extended fields are only filled when extended stats are enabled.
	Extended      bool
	StaffRole     string
	StaffCount    int
	OpenTickets   int
	ClosedTickets int
	InviteURL     string
}

// ActionKind identifies the affordance shown for a guild.
type ActionKind string

const (
	ActionKindManage ActionKind = "manage"
	ActionKindInvite ActionKind = "invite"
)

// GuildAction is the single call-to-action attached to a guild entry.
// Href is empty when the action is handled in place by dispatching.
type GuildAction struct {
	Kind  ActionKind
	Label string
	Href  string
}

// GuildEntry is one row of the server list.
type GuildEntry struct {
	ID          api.ID
	Name        string
	Initial     string
	IconMuted   bool
	Installed   bool
	StatusLabel string
	MemberCount *int
	Created     time.Time
	Action      GuildAction
}

// CategoryChip is a label-only category display.
type CategoryChip struct {
	ID          api.ID
	Label       string
	Description string
}

// SettingsForm mirrors the nine settings controls. Text and numeric fields
// hold whatever the control holds; nothing is validated.
type SettingsForm struct {
	TicketParentChannelID string
	StaffRoleID           string
	Timezone              string
	CategorySlots         string
	WarnThreshold         string
	WarnTimeoutMinutes    string
	SmartReplies          bool
	AISuggestions         bool
	AutoPriority          bool
}

// Payload converts form values into the save request body.
func (f SettingsForm) Payload(guildID api.ID) api.SettingsPayload {
	return api.SettingsPayload{
		GuildID:               guildID,
		TicketParentChannelID: f.TicketParentChannelID,
		StaffRoleID:           f.StaffRoleID,
		Timezone:              f.Timezone,
		CategorySlots:         f.CategorySlots,
		WarnThreshold:         f.WarnThreshold,
		WarnTimeoutMinutes:    f.WarnTimeoutMinutes,
		EnableSmartReplies:    f.SmartReplies,
		EnableAISuggestions:   f.AISuggestions,
		EnableAutoPriority:    f.AutoPriority,
	}
}

// NoticeKind distinguishes transient toasts from blocking alerts.
type NoticeKind string

const (
	NoticeToast NoticeKind = "toast"
	NoticeAlert NoticeKind = "alert"
)

// Notice is a message surfaced to the user.
type Notice struct {
	Kind NoticeKind
	Text string
}

// LocalCategory is an editable, never-persisted category row.
type LocalCategory struct {
	Emoji string
	Name  string
	Color string
}
