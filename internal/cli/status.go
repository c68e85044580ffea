package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/render"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show bot and server status",
	Long: `Fetch the dashboard snapshot and print it.

The text format shows what the dashboard would render. The json and yaml
formats print the snapshot exactly as the API returned it.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch statusFormat {
	case formatText:
		_, err := loadDashboard(cmd.Context(), render.NewText(out), nil)
		return err

	case formatJSON, formatYAML:
		snap, err := newClient().FetchSnapshot(cmd.Context(), currentGuild())
		if err != nil {
			return fmt.Errorf("fetch snapshot: %w", err)
		}
		if statusFormat == formatJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", statusFormat)
	}
}

func init() {
	statusCmd.Flags().StringVarP(&statusFormat, "format", "f", formatText, "output format: text, json, yaml")
	rootCmd.AddCommand(statusCmd)
}
