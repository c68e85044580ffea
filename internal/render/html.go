package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/swifttickets/ticketdash/internal/dashboard"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// HTML collects rendered regions and writes them as a standalone page.
type HTML struct {
	mu sync.Mutex
	md goldmark.Markdown

	stats      dashboard.StatsView
	guilds     []dashboard.GuildEntry
	categories []categoryData
	local      []dashboard.LocalCategory
	settings   *dashboard.SettingsForm
	notices    []dashboard.Notice
}

type categoryData struct {
	dashboard.CategoryChip
	DescriptionHTML template.HTML
}

// pageData holds data passed to the page template.
type pageData struct {
	Stats       dashboard.StatsView
	Guilds      []dashboard.GuildEntry
	Categories  []categoryData
	Local       []dashboard.LocalCategory
	Settings    *dashboard.SettingsForm
	Notices     []dashboard.Notice
	GeneratedAt string
}

// NewHTML creates an HTML renderer. Category descriptions are Markdown;
// raw HTML inside them is escaped.
func NewHTML() *HTML {
	return &HTML{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (h *HTML) RenderStats(s dashboard.StatsView) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats = s
}

func (h *HTML) RenderGuildList(entries []dashboard.GuildEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.guilds = entries
}

func (h *HTML) RenderCategoryList(chips []dashboard.CategoryChip) {
	data := make([]categoryData, 0, len(chips))
	for _, c := range chips {
		data = append(data, categoryData{CategoryChip: c, DescriptionHTML: h.markdown(c.Description)})
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.categories = data
}

func (h *HTML) RenderLocalCategories(rows []dashboard.LocalCategory) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.local = rows
}

func (h *HTML) HydrateSettings(f dashboard.SettingsForm) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.settings = &f
}

func (h *HTML) Notify(n dashboard.Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notices = append(h.notices, n)
}

// ScrollTo is a no-op: every section is on the page.
func (h *HTML) ScrollTo(string) {}

// markdown converts a category description. Conversion failures fall back
// to the escaped source text.
func (h *HTML) markdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		slog.Debug("render: markdown conversion failed", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// WriteTo writes the page. Settings controls fall back to their defaults
// when no snapshot carried settings.
func (h *HTML) WriteTo(w io.Writer) (int64, error) {
	h.mu.Lock()
	data := pageData{
		Stats:       h.stats,
		Guilds:      h.guilds,
		Categories:  h.categories,
		Local:       h.local,
		Settings:    h.settings,
		Notices:     h.notices,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	h.mu.Unlock()
	if data.Settings == nil {
		def := dashboard.DefaultSettingsForm()
		data.Settings = &def
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return 0, fmt.Errorf("executing page template: %w", err)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

var pageTemplate = template.Must(template.New("dashboard").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Stats.BotTag}} Dashboard</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#1e1f22;color:#dbdee1;line-height:1.5}
a{color:#949cf7;text-decoration:none}
.hdr{background:#5865f2;color:#fff;padding:14px 20px;display:flex;justify-content:space-between;align-items:center}
.stats{display:flex;gap:16px;font-size:13px}
.content{max-width:900px;margin:0 auto;padding:20px}
.card{background:#2b2d31;border-radius:8px;padding:20px;margin-bottom:16px}
.card h2{font-size:16px;margin-bottom:12px}
.server-row{display:flex;justify-content:space-between;align-items:center;padding:8px 0;border-bottom:1px solid #3f4147}
.server-meta{display:flex;gap:12px;align-items:center}
.server-icon{width:36px;height:36px;border-radius:50%;background:#5865f2;display:flex;align-items:center;justify-content:center;font-weight:600}
.server-icon.mute{background:#4e5058}
.muted{color:#949ba4;font-size:12px}
.server-btn{padding:6px 14px;border-radius:4px;background:#4e5058;color:#fff}
.installed .server-btn{background:#248046}
.chip{display:inline-block;padding:4px 12px;border-radius:16px;background:#404249;margin:0 8px 8px 0}
.chip-desc{font-size:12px;color:#b5bac1;margin:-4px 0 8px 12px}
.form-row{display:grid;grid-template-columns:220px 1fr;gap:8px;margin-bottom:6px}
input{background:#1e1f22;color:#dbdee1;border:1px solid #3f4147;border-radius:4px;padding:4px 8px}
.notice{padding:8px 12px;border-radius:4px;background:#404249;margin-bottom:8px}
</style>
</head>
<body>
<div class="hdr">
  <h1 id="botTag">{{.Stats.BotTag}}</h1>
  <div class="stats">
    <span>Servers <strong id="statServers">{{.Stats.GuildCount}}</strong></span>
    <span>Latency <strong id="statLatency">{{.Stats.Latency}}</strong></span>
    <span>Uptime <strong id="statUptime">{{.Stats.Uptime}}</strong></span>
    <span>Server <strong id="selectedGuild">{{.Stats.SelectedGuild}}</strong></span>
  </div>
</div>
<div class="content">
{{range .Notices}}<div class="notice notice-{{.Kind}}">{{.Text}}</div>
{{end}}
{{if .Stats.Extended}}<div class="card" id="overview">
  <h2>Overview</h2>
  <p>Staff role {{.Stats.StaffRole}} · {{.Stats.StaffCount}} staff · {{.Stats.OpenTickets}} open / {{.Stats.ClosedTickets}} closed tickets</p>
  {{if .Stats.InviteURL}}<p><a href="{{.Stats.InviteURL}}">Invite the bot</a></p>{{end}}
</div>{{end}}
<div class="card" id="servers">
  <h2>Servers</h2>
  <div id="serverGrid">
  {{range .Guilds}}<div class="server-row {{if .Installed}}installed{{else}}invite{{end}}">
    <div class="server-meta">
      <div class="server-icon{{if .IconMuted}} mute{{end}}">{{.Initial}}</div>
      <div><h4>{{.Name}}</h4><span class="muted">{{.StatusLabel}}</span></div>
    </div>
    <div class="server-action">{{if .Action.Href}}<a class="server-btn" href="{{.Action.Href}}">{{.Action.Label}}</a>{{else}}<span class="server-btn">{{.Action.Label}}</span>{{end}}</div>
  </div>
  {{end}}</div>
</div>
<div class="card" id="categories">
  <h2>Categories</h2>
  <div id="categoryList">
  {{range .Categories}}<div class="chip">{{.Label}}</div>{{if .DescriptionHTML}}<div class="chip-desc">{{.DescriptionHTML}}</div>{{end}}
  {{end}}</div>
  {{if .Local}}<h3>Unsaved rows</h3>
  {{range .Local}}<div class="chip" data-color="{{.Color}}">{{.Emoji}} {{.Name}}</div>{{end}}{{end}}
</div>
<div class="card" id="settings">
  <h2>Settings</h2>
  {{with .Settings}}
  <div class="form-row"><label for="parentCategoryId">Parent category ID</label><input id="parentCategoryId" value="{{.TicketParentChannelID}}" readonly></div>
  <div class="form-row"><label for="staffRoleId">Staff role ID</label><input id="staffRoleId" value="{{.StaffRoleID}}" readonly></div>
  <div class="form-row"><label for="timezone">Timezone</label><input id="timezone" value="{{.Timezone}}" readonly></div>
  <div class="form-row"><label for="categorySlots">Category slots</label><input id="categorySlots" value="{{.CategorySlots}}" readonly></div>
  <div class="form-row"><label for="warnThreshold">Warn threshold</label><input id="warnThreshold" value="{{.WarnThreshold}}" readonly></div>
  <div class="form-row"><label for="warnTimeout">Timeout minutes</label><input id="warnTimeout" value="{{.WarnTimeoutMinutes}}" readonly></div>
  <div class="form-row"><label for="toggleSmart">Smart replies</label><input type="checkbox" id="toggleSmart" disabled{{if .SmartReplies}} checked{{end}}></div>
  <div class="form-row"><label for="toggleAi">AI suggestions</label><input type="checkbox" id="toggleAi" disabled{{if .AISuggestions}} checked{{end}}></div>
  <div class="form-row"><label for="togglePriority">Auto priority</label><input type="checkbox" id="togglePriority" disabled{{if .AutoPriority}} checked{{end}}></div>
  {{end}}
</div>
<p class="muted">Generated {{.GeneratedAt}}</p>
</div>
</body>
</html>
`
