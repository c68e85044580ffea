package cli

import (
	"context"

	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// currentGuild returns the guild from --guild, falling back to the config.
func currentGuild() api.ID {
	if guildFlag != "" {
		return api.ID(guildFlag)
	}
	if cfg != nil {
		return api.ID(cfg.Guild)
	}
	return ""
}

// newClient creates an API client from the loaded config.
func newClient() *api.Client {
	return cfg.NewClient()
}

// loadDashboard builds a controller over r and form and applies the first
// snapshot for the current guild.
func loadDashboard(ctx context.Context, r dashboard.Renderer, form dashboard.Form) (*dashboard.Controller, error) {
	ctrl := dashboard.New(newClient(), r, form, cfg.DashboardOptions())
	if err := ctrl.Load(ctx, currentGuild()); err != nil {
		return nil, err
	}
	return ctrl, nil
}
