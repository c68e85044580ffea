// Package api provides the HTTP client and wire types for the SwiftTickets
// dashboard backend.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID is a Discord snowflake. The backend stores some ids as bigint columns,
// so it may arrive as either a JSON string or a JSON number.
type ID string

// UnmarshalJSON accepts quoted and bare numeric ids.
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the id as a plain string.
func (id ID) String() string {
	return string(id)
}

// GuildStatusInstalled marks a guild the bot has already joined.
const GuildStatusInstalled = "installed"

// Snapshot is the full dashboard state returned by the dashboard-data endpoint.
// Every field is optional; pointer fields distinguish "absent" from zero so
// the view can apply its fallbacks.
type Snapshot struct {
	BotTag        *string      `json:"botTag,omitempty" yaml:"botTag,omitempty"`
	Guilds        []Guild      `json:"guilds,omitempty" yaml:"guilds,omitempty"`
	LatencyMs     *float64     `json:"latencyMs,omitempty" yaml:"latencyMs,omitempty"`
	Uptime        *string      `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	SelectedGuild *ID          `json:"selectedGuild,omitempty" yaml:"selectedGuild,omitempty"`
	Categories    []Category   `json:"categories,omitempty" yaml:"categories,omitempty"`
	Settings      *Settings    `json:"settings,omitempty" yaml:"settings,omitempty"`
	StaffRoleID   *ID          `json:"staffRoleId,omitempty" yaml:"staffRoleId,omitempty"`
	StaffCount    *int         `json:"staffCount,omitempty" yaml:"staffCount,omitempty"`
	Stats         *TicketStats `json:"stats,omitempty" yaml:"stats,omitempty"`
	InviteURL     *string      `json:"inviteUrl,omitempty" yaml:"inviteUrl,omitempty"`
}

// Guild is a Discord server visible to the logged-in user.
type Guild struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	IconURL     string `json:"iconURL,omitempty" yaml:"iconURL,omitempty"`
	Status      string `json:"status" yaml:"status"`
	MemberCount *int   `json:"memberCount,omitempty" yaml:"memberCount,omitempty"`
}

// Installed reports whether the bot is present in the guild.
func (g Guild) Installed() bool {
	return g.Status == GuildStatusInstalled
}

// Category is a ticket category configured for a guild.
type Category struct {
	ID          ID     `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TicketStats holds ticket counters for the selected guild.
type TicketStats struct {
	Open   int `json:"open" yaml:"open"`
	Closed int `json:"closed" yaml:"closed"`
}

// Settings is the persisted per-guild bot configuration as the backend
// returns it. Absent keys stay nil.
type Settings struct {
	TicketParentChannelID *ID     `json:"ticket_parent_channel_id,omitempty" yaml:"ticket_parent_channel_id,omitempty"`
	StaffRoleID           *ID     `json:"staff_role_id,omitempty" yaml:"staff_role_id,omitempty"`
	Timezone              *string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	CategorySlots         *int    `json:"category_slots,omitempty" yaml:"category_slots,omitempty"`
	WarnThreshold         *int    `json:"warn_threshold,omitempty" yaml:"warn_threshold,omitempty"`
	WarnTimeoutMinutes    *int    `json:"warn_timeout_minutes,omitempty" yaml:"warn_timeout_minutes,omitempty"`
	EnableSmartReplies    *bool   `json:"enable_smart_replies,omitempty" yaml:"enable_smart_replies,omitempty"`
	EnableAISuggestions   *bool   `json:"enable_ai_suggestions,omitempty" yaml:"enable_ai_suggestions,omitempty"`
	EnableAutoPriority    *bool   `json:"enable_auto_priority,omitempty" yaml:"enable_auto_priority,omitempty"`
}

// UnmarshalJSON decodes settings leniently. Saves send numeric controls as
// strings, so numbers and toggles are accepted either quoted or bare. A value
// that cannot be read is left nil and the view falls back to its default.
func (s *Settings) UnmarshalJSON(b []byte) error {
	type plain Settings
	var raw struct {
		plain
		CategorySlots       json.RawMessage `json:"category_slots"`
		WarnThreshold       json.RawMessage `json:"warn_threshold"`
		WarnTimeoutMinutes  json.RawMessage `json:"warn_timeout_minutes"`
		EnableSmartReplies  json.RawMessage `json:"enable_smart_replies"`
		EnableAISuggestions json.RawMessage `json:"enable_ai_suggestions"`
		EnableAutoPriority  json.RawMessage `json:"enable_auto_priority"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Settings(raw.plain)
	s.CategorySlots = looseInt(raw.CategorySlots)
	s.WarnThreshold = looseInt(raw.WarnThreshold)
	s.WarnTimeoutMinutes = looseInt(raw.WarnTimeoutMinutes)
	s.EnableSmartReplies = looseBool(raw.EnableSmartReplies)
	s.EnableAISuggestions = looseBool(raw.EnableAISuggestions)
	s.EnableAutoPriority = looseBool(raw.EnableAutoPriority)
	return nil
}

// looseScalar returns the text of a JSON string or bare scalar.
func looseScalar(b json.RawMessage) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return "", false
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	}
	return string(b), true
}

func looseInt(b json.RawMessage) *int {
	text, ok := looseScalar(b)
	if !ok {
		return nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	n := int(f)
	return &n
}

func looseBool(b json.RawMessage) *bool {
	text, ok := looseScalar(b)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(strings.ToLower(text))
	if err != nil {
		return nil
	}
	return &v
}

// SettingsPayload is the body of a settings save. All nine settings keys are
// always sent. Text and numeric controls are forwarded as the raw strings the
// form holds; the backend owns conversion.
type SettingsPayload struct {
	GuildID               ID     `json:"guild_id"`
	TicketParentChannelID string `json:"ticket_parent_channel_id"`
	StaffRoleID           string `json:"staff_role_id"`
	Timezone              string `json:"timezone"`
	CategorySlots         string `json:"category_slots"`
	WarnThreshold         string `json:"warn_threshold"`
	WarnTimeoutMinutes    string `json:"warn_timeout_minutes"`
	EnableSmartReplies    bool   `json:"enable_smart_replies"`
	EnableAISuggestions   bool   `json:"enable_ai_suggestions"`
	EnableAutoPriority    bool   `json:"enable_auto_priority"`
}

// CategoryPayload creates a ticket category.
type CategoryPayload struct {
	GuildID     ID     `json:"guild_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DeleteCategoryPayload removes a ticket category.
type DeleteCategoryPayload struct {
	GuildID    ID `json:"guild_id"`
	CategoryID ID `json:"category_id"`
}

// PanelPayload asks the bot to post a panel message into a channel.
type PanelPayload struct {
	GuildID   ID     `json:"guild_id"`
	ChannelID string `json:"channel_id"`
}

// PanelKind selects which panel the bot posts.
type PanelKind string

const (
	// PanelSettings is the staff settings panel.
	PanelSettings PanelKind = "settings"
	// PanelPublic is the public ticket-creation panel.
	PanelPublic PanelKind = "public"
)

// ParsePanelKind converts a user-supplied kind name.
func ParsePanelKind(s string) (PanelKind, error) {
	switch PanelKind(s) {
	case PanelSettings, PanelPublic:
		return PanelKind(s), nil
	default:
		return "", fmt.Errorf("unknown panel kind %q (want %q or %q)", s, PanelSettings, PanelPublic)
	}
}
