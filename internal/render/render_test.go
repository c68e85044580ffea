package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// Both renderers must satisfy the optional local-category capability.
var (
	_ dashboard.Renderer              = (*Text)(nil)
	_ dashboard.LocalCategoryRenderer = (*Text)(nil)
	_ dashboard.Renderer              = (*HTML)(nil)
	_ dashboard.LocalCategoryRenderer = (*HTML)(nil)
)

func sampleEntries() []dashboard.GuildEntry {
	return []dashboard.GuildEntry{
		{
			ID: "1", Name: "Alpha", Initial: "A", Installed: true, StatusLabel: "Installed",
			Action: dashboard.GuildAction{Kind: dashboard.ActionKindManage, Label: "Manage", Href: "/select/1"},
		},
		{
			ID: "2", Name: "Beta", Initial: "B", IconMuted: true, StatusLabel: "Invite required",
			Action: dashboard.GuildAction{Kind: dashboard.ActionKindInvite, Label: "Invite", Href: "/invite/2"},
		},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)

	r.RenderStats(dashboard.StatsView{BotTag: "T", GuildCount: 2, Latency: "42ms", Uptime: "2h", SelectedGuild: "1"})
	r.RenderCategoryList([]dashboard.CategoryChip{{Label: "Billing", Description: "Payment questions"}})
	r.RenderGuildList(sampleEntries())
	r.HydrateSettings(dashboard.DefaultSettingsForm())

	out := buf.String()
	for _, want := range []string{"42ms", "Billing", "Payment questions", "Installed", "Invite required", "/select/1", "timezone", "UTC", "enable_auto_priority"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestText_EmptyLists(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)
	r.RenderGuildList(nil)
	r.RenderCategoryList(nil)

	if !strings.Contains(buf.String(), "No servers.") || !strings.Contains(buf.String(), "No categories.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestHTML(t *testing.T) {
	r := NewHTML()
	r.RenderStats(dashboard.StatsView{BotTag: "T", GuildCount: 2, Latency: "42ms", Uptime: "2h", SelectedGuild: "1"})
	r.RenderGuildList(sampleEntries())
	r.RenderCategoryList([]dashboard.CategoryChip{{Label: "Billing", Description: "**Payments** <script>x</script>"}})
	form := dashboard.DefaultSettingsForm()
	form.Timezone = "PST"
	form.AutoPriority = false
	r.HydrateSettings(form)

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	out := buf.String()

	checks := []string{
		`<strong id="statLatency">42ms</strong>`,
		`<div class="chip">Billing</div>`,
		`<strong>Payments</strong>`,
		`href="/select/1"`,
		`class="server-icon mute">B<`,
		`id="timezone" value="PST"`,
		`id="toggleSmart" disabled checked`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, "<script>x</script>") {
		t.Error("raw HTML in description was not escaped")
	}
	if strings.Contains(out, `id="togglePriority" disabled checked`) {
		t.Error("auto priority should be unchecked")
	}
}

func TestHTML_DefaultsWithoutSettings(t *testing.T) {
	r := NewHTML()
	r.RenderStats(dashboard.StatsView{BotTag: dashboard.DefaultBotTag})

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `id="timezone" value="UTC"`) {
		t.Error("timezone control should show the default")
	}
}
