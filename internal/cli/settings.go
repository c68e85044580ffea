package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/dashboard"
	"github.com/swifttickets/ticketdash/internal/render"
)

// settingsFlags holds the override values for settings save.
var settingsFlags struct {
	parentChannel string
	staffRole     string
	timezone      string
	categorySlots string
	warnThreshold string
	warnTimeout   string
	smartReplies  bool
	aiSuggestions bool
	autoPriority  bool
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and save guild ticket settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings of the selected guild",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := dashboard.NewMemoryView()
		if _, err := loadDashboard(cmd.Context(), view, view); err != nil {
			return err
		}
		render.NewText(cmd.OutOrStdout()).HydrateSettings(view.Settings())
		return nil
	},
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save guild settings",
	Long: `Fetch the current settings of the selected guild, apply the flags that
were given, and save every setting back.

Values are sent as typed; the bot validates them.`,
	Example: `  ticketdash settings save --guild 123 --timezone Europe/Berlin --warn-threshold 5
  ticketdash settings save --guild 123 --auto-priority=false`,
	Args: cobra.NoArgs,
	RunE: runSettingsSave,
}

func runSettingsSave(cmd *cobra.Command, args []string) error {
	view := dashboard.NewMemoryView()
	ctrl, err := loadDashboard(cmd.Context(), view, view)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	view.EditSettings(func(f *dashboard.SettingsForm) {
		if flags.Changed("parent-channel") {
			f.TicketParentChannelID = settingsFlags.parentChannel
		}
		if flags.Changed("staff-role") {
			f.StaffRoleID = settingsFlags.staffRole
		}
		if flags.Changed("timezone") {
			f.Timezone = settingsFlags.timezone
		}
		if flags.Changed("category-slots") {
			f.CategorySlots = settingsFlags.categorySlots
		}
		if flags.Changed("warn-threshold") {
			f.WarnThreshold = settingsFlags.warnThreshold
		}
		if flags.Changed("warn-timeout") {
			f.WarnTimeoutMinutes = settingsFlags.warnTimeout
		}
		if flags.Changed("smart-replies") {
			f.SmartReplies = settingsFlags.smartReplies
		}
		if flags.Changed("ai-suggestions") {
			f.AISuggestions = settingsFlags.aiSuggestions
		}
		if flags.Changed("auto-priority") {
			f.AutoPriority = settingsFlags.autoPriority
		}
	})

	if err := ctrl.SaveSettings(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "🎫 Settings saved for guild %s\n", ctrl.SelectedGuild())
	return nil
}

func init() {
	f := settingsSaveCmd.Flags()
	f.StringVar(&settingsFlags.parentChannel, "parent-channel", "", "category channel new tickets are created under")
	f.StringVar(&settingsFlags.staffRole, "staff-role", "", "role that can see tickets")
	f.StringVar(&settingsFlags.timezone, "timezone", "", "timezone for ticket timestamps")
	f.StringVar(&settingsFlags.categorySlots, "category-slots", "", "number of ticket categories")
	f.StringVar(&settingsFlags.warnThreshold, "warn-threshold", "", "warnings before a timeout")
	f.StringVar(&settingsFlags.warnTimeout, "warn-timeout", "", "timeout length in minutes")
	f.BoolVar(&settingsFlags.smartReplies, "smart-replies", true, "enable smart replies")
	f.BoolVar(&settingsFlags.aiSuggestions, "ai-suggestions", true, "enable AI suggestions")
	f.BoolVar(&settingsFlags.autoPriority, "auto-priority", true, "enable automatic priority")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}
