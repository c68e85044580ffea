package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

func idOf(s string) api.ID { return api.ID(s) }

func ptr[T any](v T) *T { return &v }

// fakeBackend serves one snapshot and records writes.
type fakeBackend struct {
	mu      sync.Mutex
	snap    *api.Snapshot
	deletes []api.DeleteCategoryPayload
	panels  []api.PanelPayload
}

func (f *fakeBackend) FetchSnapshot(context.Context, api.ID) (*api.Snapshot, error) {
	return f.snap, nil
}

func (f *fakeBackend) SaveSettings(context.Context, api.SettingsPayload) error { return nil }

func (f *fakeBackend) CreateCategory(context.Context, api.CategoryPayload) error { return nil }

func (f *fakeBackend) DeleteCategory(_ context.Context, p api.DeleteCategoryPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, p)
	return nil
}

func (f *fakeBackend) PostPanel(_ context.Context, _ api.PanelKind, p api.PanelPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.panels = append(f.panels, p)
	return nil
}

func testSnapshot() *api.Snapshot {
	return &api.Snapshot{
		BotTag:        ptr("Tickets#0001"),
		LatencyMs:     ptr(42.0),
		SelectedGuild: ptr(api.ID("1")),
		Guilds: []api.Guild{
			{ID: "1", Name: "Alpha", Status: api.GuildStatusInstalled},
			{ID: "2", Name: "Beta"},
		},
		Categories: []api.Category{{ID: "7", Name: "Billing"}},
		Settings:   &api.Settings{Timezone: ptr("PST")},
	}
}

// recorder captures messages the program renderer would send.
type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) all() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

// newTestModel builds a sized model wired to a controller over backend.
func newTestModel(t *testing.T, backend *fakeBackend, opts dashboard.Options) (Model, *recorder, *dashboard.Controller) {
	t.Helper()
	rec := &recorder{}
	renderer := &programRenderer{}
	renderer.attach(rec.send)
	form := newLiveForm()
	ctrl := dashboard.New(backend, renderer, form, opts)
	m := newWithController(context.Background(), ctrl, form, Options{Dashboard: opts})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, rec, ctrl
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd, flattening batches, and returns the produced messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// replay feeds every recorded render message back into the model.
func replay(t *testing.T, m Model, rec *recorder) Model {
	t.Helper()
	for _, msg := range rec.all() {
		m = update(t, m, msg)
	}
	return m
}

func TestProgramRenderer_Order(t *testing.T) {
	rec := &recorder{}
	renderer := &programRenderer{}
	renderer.attach(rec.send)
	ctrl := dashboard.New(&fakeBackend{snap: testSnapshot()}, renderer, nil, dashboard.Options{})

	if err := ctrl.Load(context.Background(), ""); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	msgs := rec.all()
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4: %#v", len(msgs), msgs)
	}
	if _, ok := msgs[0].(statsMsg); !ok {
		t.Errorf("msgs[0] = %T, want statsMsg", msgs[0])
	}
	if _, ok := msgs[1].(categoriesMsg); !ok {
		t.Errorf("msgs[1] = %T, want categoriesMsg", msgs[1])
	}
	if _, ok := msgs[2].(guildsMsg); !ok {
		t.Errorf("msgs[2] = %T, want guildsMsg", msgs[2])
	}
	if _, ok := msgs[3].(settingsMsg); !ok {
		t.Errorf("msgs[3] = %T, want settingsMsg", msgs[3])
	}
}

func TestProgramRenderer_DropsBeforeAttach(t *testing.T) {
	renderer := &programRenderer{}
	// Must not panic or block.
	renderer.Notify(dashboard.Notice{Kind: dashboard.NoticeToast, Text: "hi"})
}

func TestModel_RendersSnapshot(t *testing.T) {
	backend := &fakeBackend{snap: testSnapshot()}
	m, rec, ctrl := newTestModel(t, backend, dashboard.Options{})

	if err := ctrl.Load(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	m = replay(t, m, rec)

	view := m.View()
	for _, want := range []string{"Tickets#0001", "42ms", "Alpha", "Beta", "Installed", "Invite required"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	got := m.form.Settings()
	if got.Timezone != "PST" || got.CategorySlots != "1" || !got.AutoPriority {
		t.Errorf("form = %+v", got)
	}
}

func TestModel_ToggleSetting(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{})
	_ = m.modeState.SetSection(SectionSettings)
	m.settingsCursor = len(settingsTextFields) // smart replies

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.form.Settings().SmartReplies {
		t.Error("smart replies should be off after toggling")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.form.Settings().SmartReplies {
		t.Error("smart replies should be back on")
	}
}

func TestModel_EditField(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{})
	_ = m.modeState.SetSection(SectionPanels)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.modeState.IsEditing() || m.modeState.Field != fieldPanelChannel {
		t.Fatalf("mode = %v field = %v", m.modeState.Mode, m.modeState.Field)
	}
	m = update(t, m, runes("555"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.modeState.IsNormal() {
		t.Errorf("expected normal mode, got %v", m.modeState.Mode)
	}
	if got := m.form.PanelChannelID(); got != "555" {
		t.Errorf("PanelChannelID() = %q, want 555", got)
	}
}

func TestModel_EditCancelRestores(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{})
	_ = m.modeState.SetSection(SectionSettings)
	m.settingsCursor = 2 // timezone

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runes("X"))
	if got := m.form.Settings().Timezone; got != "UTCX" {
		t.Errorf("Timezone while editing = %q, want UTCX", got)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if got := m.form.Settings().Timezone; got != "UTC" {
		t.Errorf("Timezone after cancel = %q, want UTC", got)
	}
}

func TestModel_DeleteCategoryConfirm(t *testing.T) {
	backend := &fakeBackend{snap: testSnapshot()}
	m, rec, ctrl := newTestModel(t, backend, dashboard.Options{})
	if err := ctrl.Load(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	m = replay(t, m, rec)
	_ = m.modeState.SetSection(SectionCategories)

	m = update(t, m, runes("d"))
	if !m.modeState.IsDeleteConfirming() || m.modeState.DeleteCategoryID != "7" {
		t.Fatalf("mode state = %+v", m.modeState)
	}

	m, cmd := updateCmd(t, m, runes("y"))
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	if msgs := run(cmd); len(msgs) != 1 || msgs[0] != (actionDoneMsg{Action: dashboard.ActionDeleteCategory}) {
		t.Errorf("run(cmd) = %#v", msgs)
	}
	if !m.modeState.IsNormal() {
		t.Errorf("expected normal mode, got %v", m.modeState.Mode)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.deletes) != 1 || backend.deletes[0] != (api.DeleteCategoryPayload{GuildID: "1", CategoryID: "7"}) {
		t.Errorf("deletes = %+v", backend.deletes)
	}
}

func TestModel_PostPanel(t *testing.T) {
	backend := &fakeBackend{snap: testSnapshot()}
	m, rec, ctrl := newTestModel(t, backend, dashboard.Options{})
	if err := ctrl.Load(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	m = replay(t, m, rec)
	_ = m.modeState.SetSection(SectionPanels)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runes("99"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := updateCmd(t, m, runes("p"))
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	run(cmd)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.panels) != 1 || backend.panels[0].ChannelID != "99" {
		t.Errorf("panels = %+v", backend.panels)
	}
}

func TestModel_JumpScrollsThroughController(t *testing.T) {
	m, rec, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{})

	_, cmd := updateCmd(t, m, runes("3"))
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	run(cmd)
	m = replay(t, m, rec)

	if m.modeState.Section != SectionSettings {
		t.Errorf("Section = %v, want Settings", m.modeState.Section)
	}
}

func TestModel_LocalRows(t *testing.T) {
	m, rec, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{LocalCategories: true})
	_ = m.modeState.SetSection(SectionCategories)

	_, cmd := updateCmd(t, m, runes("a"))
	run(cmd)
	m = replay(t, m, rec)
	if len(m.local) != 1 || m.local[0].Color != "blurple" {
		t.Fatalf("local = %+v", m.local)
	}

	rec.msgs = nil
	_, cmd = updateCmd(t, m, runes("c"))
	run(cmd)
	m = replay(t, m, rec)
	if m.local[0].Color != "green" {
		t.Errorf("Color = %q, want green", m.local[0].Color)
	}

	rec.msgs = nil
	_, cmd = updateCmd(t, m, runes("x"))
	run(cmd)
	m = replay(t, m, rec)
	if len(m.local) != 0 {
		t.Errorf("local = %+v, want empty", m.local)
	}
}

func TestModel_LocalRowEmoji(t *testing.T) {
	m, rec, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{LocalCategories: true})
	_ = m.modeState.SetSection(SectionCategories)

	_, cmd := updateCmd(t, m, runes("a"))
	run(cmd)
	m = replay(t, m, rec)

	m = update(t, m, runes("e"))
	if !m.modeState.IsEditing() || m.modeState.Field != fieldLocalEmoji {
		t.Fatalf("mode = %v field = %v", m.modeState.Mode, m.modeState.Field)
	}
	if got := m.inputs[fieldLocalEmoji].Value(); got != "🎫" {
		t.Errorf("emoji input = %q, want current emoji", got)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, runes("🔥"))

	rec.msgs = nil
	m, cmd = updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	run(cmd)
	m = replay(t, m, rec)

	if !m.modeState.IsNormal() {
		t.Errorf("expected normal mode, got %v", m.modeState.Mode)
	}
	if len(m.local) != 1 || m.local[0].Emoji != "🔥" || m.local[0].Name != "New category" {
		t.Errorf("local = %+v, want emoji 🔥 with name kept", m.local)
	}
}

func TestModel_InviteGuild(t *testing.T) {
	tests := []struct {
		name  string
		appID string
		want  string
	}{
		{"placeholder without app id", "", dashboard.InvitePlaceholder},
		{"oauth link with app id", "42", "Invite: https://discord.com/api/oauth2/authorize?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := dashboard.Options{Links: dashboard.Links{AppID: tt.appID}}
			m, rec, ctrl := newTestModel(t, &fakeBackend{snap: testSnapshot()}, opts)
			if err := ctrl.Load(context.Background(), ""); err != nil {
				t.Fatal(err)
			}
			m = replay(t, m, rec)
			_ = m.modeState.SetSection(SectionServers)
			m.guildCursor = 1 // Beta, not installed

			rec.msgs = nil
			m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if tt.appID == "" {
				run(cmd)
				m = replay(t, m, rec)
			}
			n := m.helpBar.notice
			if n == nil || !strings.HasPrefix(n.Text, tt.want) {
				t.Errorf("notice = %+v, want prefix %q", n, tt.want)
			}
		})
	}
}

func TestModel_Notices(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeBackend{}, dashboard.Options{})

	m = update(t, m, noticeMsg{Notice: dashboard.Notice{Kind: dashboard.NoticeAlert, Text: dashboard.ResetPlaceholder}})
	if !strings.Contains(m.View(), dashboard.ResetPlaceholder) {
		t.Error("alert not shown")
	}
	first := m.noticeSeq

	m = update(t, m, noticeMsg{Notice: dashboard.Notice{Kind: dashboard.NoticeToast, Text: "Categories saved"}})
	m = update(t, m, clearNoticeMsg{Seq: first})
	if !strings.Contains(m.View(), "Categories saved") {
		t.Error("stale clear removed the newer notice")
	}

	m = update(t, m, clearNoticeMsg{Seq: m.noticeSeq})
	if strings.Contains(m.View(), "Categories saved") {
		t.Error("notice not cleared")
	}
}

func TestSectionForAnchor(t *testing.T) {
	tests := []struct {
		anchor string
		want   Section
		ok     bool
	}{
		{"servers", SectionServers, true},
		{"#settings", SectionSettings, true},
		{"Panels", SectionPanels, true},
		{"nowhere", 0, false},
	}
	for _, tt := range tests {
		got, ok := sectionForAnchor(tt.anchor)
		if got != tt.want || ok != tt.ok {
			t.Errorf("sectionForAnchor(%q) = %v, %v; want %v, %v", tt.anchor, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 0, 0},
		{-1, 3, 0},
		{5, 3, 2},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := clamp(tt.i, tt.n); got != tt.want {
			t.Errorf("clamp(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
