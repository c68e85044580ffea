// Package dashboard implements the dashboard view-model: it syncs state with
// the backend API and projects each fetched snapshot onto a Renderer.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/swifttickets/ticketdash/internal/api"
)

// Guard errors. The request was not sent.
var (
	ErrNoGuildSelected = errors.New("no guild selected")
	ErrEmptyName       = errors.New("category name is empty")
	ErrNoChannel       = errors.New("panel channel id is empty")
	ErrNoCategoryID    = errors.New("category id is empty")
)

// Backend is the subset of the API the controller needs.
type Backend interface {
	FetchSnapshot(ctx context.Context, guildID api.ID) (*api.Snapshot, error)
	SaveSettings(ctx context.Context, payload api.SettingsPayload) error
	CreateCategory(ctx context.Context, payload api.CategoryPayload) error
	DeleteCategory(ctx context.Context, payload api.DeleteCategoryPayload) error
	PostPanel(ctx context.Context, kind api.PanelKind, payload api.PanelPayload) error
}

// Options holds the variant-specific behavior of a dashboard.
type Options struct {
	// Links controls where guild actions point.
	Links Links
	// ExtendedStats adds staff and ticket counters to the stats view.
	ExtendedStats bool
	// LocalCategories enables local-only category row editing.
	LocalCategories bool
}

// Controller is the dashboard view-model.
type Controller struct {
	backend  Backend
	renderer Renderer
	form     Form
	opts     Options

	// loadSeq increments on every Load; only the newest response is applied.
	loadSeq atomic.Uint64
	// renderMu serializes the stale check and the render of a snapshot.
	renderMu sync.Mutex

	mu       sync.Mutex
	selected api.ID
	local    []LocalCategory
}

// New creates a controller. The form may be nil for read-only use.
func New(backend Backend, renderer Renderer, form Form, opts Options) *Controller {
	return &Controller{
		backend:  backend,
		renderer: renderer,
		form:     form,
		opts:     opts,
	}
}

// SelectedGuild returns the guild of the last applied snapshot, or "" when
// none is selected.
func (c *Controller) SelectedGuild() api.ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Load fetches a snapshot, optionally scoped to guildID, and renders it.
// On error nothing is rendered and the previous view stays in place.
func (c *Controller) Load(ctx context.Context, guildID api.ID) error {
	seq := c.loadSeq.Add(1)
	snap, err := c.backend.FetchSnapshot(ctx, guildID)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if c.loadSeq.Load() != seq {
		slog.Debug("dashboard: discarding stale snapshot", "guild_id", guildID, "seq", seq)
		return nil
	}
	c.apply(snap)
	return nil
}

// apply renders a snapshot. The view is always a direct projection of it.
// Callers hold renderMu.
func (c *Controller) apply(snap *api.Snapshot) {
	c.mu.Lock()
	c.selected = ""
	if snap.SelectedGuild != nil && *snap.SelectedGuild != NoGuildSelectedLabel {
		c.selected = *snap.SelectedGuild
	}
	c.mu.Unlock()

	c.renderer.RenderStats(BuildStats(snap, c.opts.ExtendedStats))
	c.renderer.RenderCategoryList(BuildCategoryChips(snap.Categories))
	c.renderer.RenderGuildList(BuildGuildEntries(snap.Guilds, c.opts.Links))
	if snap.Settings != nil {
		c.renderer.HydrateSettings(FormFromSettings(snap.Settings))
	}
	slog.Debug("dashboard: rendered snapshot",
		"selected_guild", c.SelectedGuild(),
		"guilds", len(snap.Guilds),
		"categories", len(snap.Categories),
		"has_settings", snap.Settings != nil,
	)
}

// Refresh reloads the snapshot for the currently selected guild.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.Load(ctx, c.SelectedGuild())
}

// SelectGuild switches the dashboard to another guild.
func (c *Controller) SelectGuild(ctx context.Context, guildID api.ID) error {
	return c.Load(ctx, guildID)
}

// SaveSettings posts every settings control as it is right now.
func (c *Controller) SaveSettings(ctx context.Context) error {
	guild := c.SelectedGuild()
	if guild == "" {
		return ErrNoGuildSelected
	}
	form := DefaultSettingsForm()
	if c.form != nil {
		form = c.form.Settings()
	}
	if err := c.backend.SaveSettings(ctx, form.Payload(guild)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	slog.Info("dashboard: settings saved", "guild_id", guild)
	return nil
}

// AddCategory creates the category described by the form and reloads.
func (c *Controller) AddCategory(ctx context.Context) error {
	var name, description string
	if c.form != nil {
		name, description = c.form.NewCategory()
	}
	guild := c.SelectedGuild()
	if guild == "" {
		return ErrNoGuildSelected
	}
	if name == "" {
		return ErrEmptyName
	}
	payload := api.CategoryPayload{GuildID: guild, Name: name, Description: description}
	if err := c.backend.CreateCategory(ctx, payload); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	slog.Info("dashboard: category added", "guild_id", guild, "name", name)
	return c.Load(ctx, guild)
}

// DeleteCategory removes a persisted category and reloads.
func (c *Controller) DeleteCategory(ctx context.Context, categoryID api.ID) error {
	guild := c.SelectedGuild()
	if guild == "" {
		return ErrNoGuildSelected
	}
	if categoryID == "" {
		return ErrNoCategoryID
	}
	payload := api.DeleteCategoryPayload{GuildID: guild, CategoryID: categoryID}
	if err := c.backend.DeleteCategory(ctx, payload); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	slog.Info("dashboard: category deleted", "guild_id", guild, "category_id", categoryID)
	return c.Load(ctx, guild)
}

// PostPanel asks the bot to post a panel into the channel in the form.
func (c *Controller) PostPanel(ctx context.Context, kind api.PanelKind) error {
	var channel string
	if c.form != nil {
		channel = c.form.PanelChannelID()
	}
	guild := c.SelectedGuild()
	if guild == "" {
		return ErrNoGuildSelected
	}
	if channel == "" {
		return ErrNoChannel
	}
	payload := api.PanelPayload{GuildID: guild, ChannelID: channel}
	if err := c.backend.PostPanel(ctx, kind, payload); err != nil {
		return fmt.Errorf("post %s panel: %w", kind, err)
	}
	slog.Info("dashboard: panel posted", "guild_id", guild, "kind", kind, "channel_id", channel)
	return nil
}
