// Package cli implements the ticketdash command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/config"
	"github.com/swifttickets/ticketdash/internal/logging"
	"github.com/swifttickets/ticketdash/internal/paths"
)

// Global flag values.
var (
	baseDir    string
	configPath string
	logLevel   string
	guildFlag  string
)

// cfg is the loaded configuration, set before any command runs.
var cfg *config.Config

// logCleanup closes the log file after the command finishes.
var logCleanup func()

var rootCmd = &cobra.Command{
	Use:   "ticketdash",
	Short: "SwiftTickets bot dashboard",
	Long:  "ticketdash shows and edits the settings, categories and panels of the SwiftTickets Discord bot through its HTTP API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set TICKETDASH_DIR if --dir is provided so every path helper sees it.
		if baseDir != "" {
			if err := os.Setenv(paths.EnvDir, baseDir); err != nil {
				return err
			}
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded

		cleanup, err := logging.Setup("", logging.ParseLevel(cfg.GetLogLevel()))
		if err != nil {
			// Commands still work without a log file.
			fmt.Fprintf(os.Stderr, "🎫 warning: logging disabled: %v\n", err)
			return nil
		}
		logCleanup = cleanup
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "base directory for ticketdash data (overrides ~/.ticketdash)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/ticketdash/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&guildFlag, "guild", "", "guild to scope the dashboard to")
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return err
}
