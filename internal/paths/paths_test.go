package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseDir(t *testing.T) {
	t.Run("default uses home directory", func(t *testing.T) {
		t.Setenv(EnvDir, "")

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".ticketdash")
		if dir != expected {
			t.Errorf("BaseDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("TICKETDASH_DIR overrides default", func(t *testing.T) {
		t.Setenv(EnvDir, "/tmp/ticketdash-test")

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		if dir != "/tmp/ticketdash-test" {
			t.Errorf("BaseDir() = %q, want %q", dir, "/tmp/ticketdash-test")
		}
	})
}

func TestConfigPath(t *testing.T) {
	t.Run("default uses home config directory", func(t *testing.T) {
		t.Setenv(EnvDir, "")

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "ticketdash", "config.toml")
		if path != expected {
			t.Errorf("ConfigPath() = %q, want %q", path, expected)
		}
	})

	t.Run("TICKETDASH_DIR overrides to TICKETDASH_DIR/config", func(t *testing.T) {
		t.Setenv(EnvDir, "/tmp/ticketdash-test")

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		if path != "/tmp/ticketdash-test/config/config.toml" {
			t.Errorf("ConfigPath() = %q", path)
		}
	})
}

func TestLogPath(t *testing.T) {
	t.Setenv(EnvDir, "/tmp/ticketdash-test")
	if got := LogPath(); got != "/tmp/ticketdash-test/ticketdash.log" {
		t.Errorf("LogPath() = %q", got)
	}
}
