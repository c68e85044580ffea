package cli

import (
	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal dashboard",
	Long:  "Launch the interactive dashboard for browsing servers and editing ticket settings, categories and panels.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context(), newClient(), tui.Options{
			Guild:     currentGuild(),
			Dashboard: cfg.DashboardOptions(),
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
