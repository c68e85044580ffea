package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

var (
	panelKind    string
	panelChannel string
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Post bot panels into Discord channels",
}

var panelPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Ask the bot to post a panel",
	Long: `Ask the bot to post a panel into a channel of the selected guild.

The settings panel lets staff configure the bot from Discord. The public
panel is the message members use to open tickets.`,
	Example: `  ticketdash panel post --guild 123 --channel 456 --kind public`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := api.ParsePanelKind(panelKind)
		if err != nil {
			return err
		}
		view := dashboard.NewMemoryView()
		ctrl, err := loadDashboard(cmd.Context(), view, view)
		if err != nil {
			return err
		}
		view.SetPanelChannel(panelChannel)
		if err := ctrl.PostPanel(cmd.Context(), kind); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎫 Posted %s panel to channel %s\n", kind, panelChannel)
		return nil
	},
}

func init() {
	panelPostCmd.Flags().StringVar(&panelKind, "kind", string(api.PanelSettings), "panel kind: settings or public")
	panelPostCmd.Flags().StringVar(&panelChannel, "channel", "", "channel to post into")

	panelCmd.AddCommand(panelPostCmd)
	rootCmd.AddCommand(panelCmd)
}
