// Package config provides configuration loading and validation for ticketdash.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
	"github.com/swifttickets/ticketdash/internal/paths"
)

// Environment variables that override the config file.
const (
	EnvAPIBase  = "TICKETDASH_API_BASE"
	EnvGuild    = "TICKETDASH_GUILD"
	EnvLogLevel = "TICKETDASH_LOG_LEVEL"
	EnvAppID    = "DISCORD_APP_ID"
)

// Defaults.
const (
	DefaultLogLevel   = "info"
	DefaultBaseURL    = "http://localhost:8080"
	ManageModeLink    = "link"
	ManageModeReload  = "reload"
	DefaultManageMode = ManageModeLink
)

// Config represents the ticketdash configuration.
type Config struct {
	// LogLevel controls log verbosity ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// Guild is the guild to scope the dashboard to on startup.
	Guild string `toml:"guild"`

	API       APIConfig       `toml:"api"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Discord   DiscordConfig   `toml:"discord"`
}

// APIConfig locates the backend. Every path may be an absolute URL.
type APIConfig struct {
	BaseURL            string `toml:"base_url"`
	DashboardPath      string `toml:"dashboard_path"`
	SettingsPath       string `toml:"settings_path"`
	CategoriesPath     string `toml:"categories_path"`
	DeleteCategoryPath string `toml:"delete_category_path"`
	PanelPath          string `toml:"panel_path"`
	PanelSetPath       string `toml:"panelset_path"`
	// Timeout is a Go duration string; empty or "0s" keeps the transport default.
	Timeout string `toml:"timeout"`
}

// DashboardConfig selects the optional dashboard capabilities.
type DashboardConfig struct {
	ManageMode      string `toml:"manage_mode"`
	ExtendedStats   bool   `toml:"extended_stats"`
	LocalCategories bool   `toml:"local_categories"`
}

// DiscordConfig holds Discord application settings.
type DiscordConfig struct {
	AppID string `toml:"app_id"`
}

// Load reads the config at path, falling back to the default location when
// path is empty. A missing file yields an empty config, not an error.
// Environment overrides (including a .env file in the working directory)
// are applied on top.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := paths.ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}
	// .env is optional
	_ = godotenv.Load()
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFromPath loads the config from a specific path.
// Returns nil config and nil error if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAPIBase); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvGuild); v != "" {
		c.Guild = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvAppID); v != "" {
		c.Discord.AppID = v
	}
}

// GetLogLevel returns the configured log level or the default.
func (c *Config) GetLogLevel() string {
	if c != nil && c.LogLevel != "" {
		return c.LogLevel
	}
	return DefaultLogLevel
}

// GetBaseURL returns the configured API base URL or the default.
func (c *Config) GetBaseURL() string {
	if c != nil && c.API.BaseURL != "" {
		return c.API.BaseURL
	}
	return DefaultBaseURL
}

// GetTimeout returns the request timeout. Unparsable values count as zero;
// Validate reports them.
func (c *Config) GetTimeout() time.Duration {
	if c == nil || c.API.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// GetManageMode returns how "Manage" behaves: a link or an in-place reload.
func (c *Config) GetManageMode() string {
	if c != nil && c.Dashboard.ManageMode != "" {
		return c.Dashboard.ManageMode
	}
	return DefaultManageMode
}

// Endpoints returns the API endpoints with configured overrides applied.
func (c *Config) Endpoints() api.Endpoints {
	e := api.DefaultEndpoints()
	if c == nil {
		return e
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&e.DashboardData, c.API.DashboardPath)
	override(&e.Settings, c.API.SettingsPath)
	override(&e.Categories, c.API.CategoriesPath)
	override(&e.DeleteCategory, c.API.DeleteCategoryPath)
	override(&e.Panel, c.API.PanelPath)
	override(&e.PanelSet, c.API.PanelSetPath)
	return e
}

// NewClient builds an API client from the config.
func (c *Config) NewClient() *api.Client {
	return api.NewClient(c.GetBaseURL(),
		api.WithEndpoints(c.Endpoints()),
		api.WithTimeout(c.GetTimeout()),
	)
}

// DashboardOptions returns the controller options for this config.
func (c *Config) DashboardOptions() dashboard.Options {
	opts := dashboard.Options{
		Links: dashboard.Links{
			Base:          c.GetBaseURL(),
			ManageInPlace: c.GetManageMode() == ManageModeReload,
		},
	}
	if c != nil {
		opts.Links.AppID = c.Discord.AppID
		opts.ExtendedStats = c.Dashboard.ExtendedStats
		opts.LocalCategories = c.Dashboard.LocalCategories
	}
	return opts
}
