// Package paths provides a single source of truth for ticketdash file paths.
// All path helpers honor the TICKETDASH_DIR override for isolated testing.
//
// Path resolution precedence:
//  1. TICKETDASH_DIR sets the base directory (config and logs derive from it)
//  2. Default behavior (~/.ticketdash, ~/.config/ticketdash) otherwise
package paths

import (
	"os"
	"path/filepath"
)

// EnvDir is the base directory override (e.g., /tmp/ticketdash-test).
const EnvDir = "TICKETDASH_DIR"

// BaseDir returns the ticketdash data directory (~/.ticketdash by default).
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ticketdash"), nil
}

// ConfigDir returns the config directory (~/.config/ticketdash by default).
// When TICKETDASH_DIR is set, returns TICKETDASH_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ticketdash"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path (~/.ticketdash/ticketdash.log by default).
func LogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ticketdash.log")
	}
	return filepath.Join(base, "ticketdash.log")
}
