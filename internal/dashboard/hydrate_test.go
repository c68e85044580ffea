package dashboard

import (
	"net/url"
	"strings"
	"testing"

	"github.com/swifttickets/ticketdash/internal/api"
)

func TestFormFromSettings_Defaults(t *testing.T) {
	want := SettingsForm{
		Timezone:           "UTC",
		CategorySlots:      "1",
		WarnThreshold:      "3",
		WarnTimeoutMinutes: "10",
		SmartReplies:       true,
		AISuggestions:      true,
		AutoPriority:       true,
	}
	if got := FormFromSettings(nil); got != want {
		t.Errorf("FormFromSettings(nil) = %+v, want %+v", got, want)
	}
	if got := FormFromSettings(&api.Settings{}); got != want {
		t.Errorf("FormFromSettings(empty) = %+v, want %+v", got, want)
	}
}

func TestFormFromSettings_ExplicitFalseWins(t *testing.T) {
	got := FormFromSettings(&api.Settings{
		TicketParentChannelID: ptr(api.ID("10")),
		StaffRoleID:           ptr(api.ID("20")),
		CategorySlots:         ptr(4),
		WarnThreshold:         ptr(0),
		EnableSmartReplies:    ptr(false),
		EnableAutoPriority:    ptr(false),
	})
	if got.TicketParentChannelID != "10" || got.StaffRoleID != "20" {
		t.Errorf("ids = %q/%q", got.TicketParentChannelID, got.StaffRoleID)
	}
	if got.CategorySlots != "4" || got.WarnThreshold != "0" {
		t.Errorf("numbers = %q/%q, want 4/0", got.CategorySlots, got.WarnThreshold)
	}
	if got.SmartReplies || got.AutoPriority || !got.AISuggestions {
		t.Errorf("toggles = %v/%v/%v, want false/true/false", got.SmartReplies, got.AISuggestions, got.AutoPriority)
	}
}

func TestFormatLatency(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"absent", nil, "0ms"},
		{"integer", ptr(42.0), "42ms"},
		{"fractional", ptr(12.5), "12.5ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLatency(tt.in); got != tt.want {
				t.Errorf("FormatLatency() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildStats_Extended(t *testing.T) {
	snap := &api.Snapshot{
		StaffRoleID: ptr(api.ID("77")),
		StaffCount:  ptr(5),
		Stats:       &api.TicketStats{Open: 3, Closed: 9},
		InviteURL:   ptr("https://example.test/invite"),
	}

	basic := BuildStats(snap, false)
	if basic.Extended || basic.StaffCount != 0 {
		t.Errorf("basic stats = %+v, want no extended fields", basic)
	}

	ext := BuildStats(snap, true)
	if !ext.Extended || ext.StaffRole != "77" || ext.StaffCount != 5 || ext.OpenTickets != 3 || ext.ClosedTickets != 9 {
		t.Errorf("extended stats = %+v", ext)
	}

	empty := BuildStats(&api.Snapshot{}, true)
	if empty.StaffRole != DefaultStaffRole || empty.OpenTickets != 0 {
		t.Errorf("extended fallbacks = %+v", empty)
	}
}

func TestBuildGuildEntries(t *testing.T) {
	guilds := []api.Guild{
		{ID: "175928847299117063", Name: "Alpha", Status: "installed", IconURL: "https://cdn/icon.png"},
		{ID: "2", Name: "", Status: "not-installed"},
	}

	t.Run("links", func(t *testing.T) {
		entries := BuildGuildEntries(guilds, Links{Base: "https://dash.example"})
		if len(entries) != 2 {
			t.Fatalf("entries = %d, want 2", len(entries))
		}
		a, b := entries[0], entries[1]
		if a.StatusLabel != "Installed" || a.Action.Label != "Manage" || a.Action.Href != "https://dash.example/select/175928847299117063" {
			t.Errorf("installed entry = %+v", a)
		}
		if a.Initial != "A" || a.IconMuted {
			t.Errorf("installed icon = %q muted=%v", a.Initial, a.IconMuted)
		}
		if a.Created.Year() != 2016 {
			t.Errorf("Created = %v, want 2016 from snowflake", a.Created)
		}
		if b.StatusLabel != "Invite required" || b.Action.Label != "Invite" || b.Action.Href != "https://dash.example/invite/2" {
			t.Errorf("invite entry = %+v", b)
		}
		if b.Initial != "S" || !b.IconMuted {
			t.Errorf("invite icon = %q muted=%v, want S muted", b.Initial, b.IconMuted)
		}
	})

	t.Run("manage in place", func(t *testing.T) {
		entries := BuildGuildEntries(guilds, Links{ManageInPlace: true})
		if entries[0].Action.Href != "" || entries[0].Action.Kind != ActionKindManage {
			t.Errorf("manage action = %+v, want dispatch without href", entries[0].Action)
		}
	})

	t.Run("discord invite", func(t *testing.T) {
		entries := BuildGuildEntries(guilds, Links{AppID: "999"})
		href := entries[1].Action.Href
		if !strings.HasPrefix(href, oauthAuthorizeURL) {
			t.Fatalf("href = %q, want discord authorize URL", href)
		}
		u, err := url.Parse(href)
		if err != nil {
			t.Fatal(err)
		}
		q := u.Query()
		if q.Get("client_id") != "999" || q.Get("guild_id") != "2" || q.Get("scope") != "bot applications.commands" {
			t.Errorf("query = %v", q)
		}
		if q.Get("permissions") != "101392" {
			t.Errorf("permissions = %q, want 101392", q.Get("permissions"))
		}
	})
}

func TestBuildCategoryChips(t *testing.T) {
	chips := BuildCategoryChips([]api.Category{{ID: "1", Name: "Billing", Description: "Payments"}, {Name: "Bugs"}})
	if len(chips) != 2 || chips[0].Label != "Billing" || chips[1].Label != "Bugs" || chips[0].Description != "Payments" {
		t.Errorf("chips = %+v", chips)
	}
	if got := BuildCategoryChips(nil); len(got) != 0 {
		t.Errorf("chips = %+v, want empty", got)
	}
}

func TestNextColor(t *testing.T) {
	if got := NextColor(CategoryColors[0]); got != CategoryColors[1] {
		t.Errorf("NextColor(first) = %q, want %q", got, CategoryColors[1])
	}
	if got := NextColor(CategoryColors[len(CategoryColors)-1]); got != CategoryColors[0] {
		t.Errorf("NextColor(last) = %q, want wrap to %q", got, CategoryColors[0])
	}
	if got := NextColor("mauve"); got != CategoryColors[0] {
		t.Errorf("NextColor(unknown) = %q, want %q", got, CategoryColors[0])
	}
}
