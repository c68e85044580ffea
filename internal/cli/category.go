package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
	"github.com/swifttickets/ticketdash/internal/render"
)

var categoryDescription string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage ticket categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the categories of the selected guild",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := dashboard.NewMemoryView()
		if _, err := loadDashboard(cmd.Context(), view, nil); err != nil {
			return err
		}
		render.NewText(cmd.OutOrStdout()).RenderCategoryList(view.Categories())
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Create a ticket category",
	Example: `  ticketdash category add Billing --description "Payments and **refunds**"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := dashboard.NewMemoryView()
		ctrl, err := loadDashboard(cmd.Context(), view, view)
		if err != nil {
			return err
		}
		view.SetNewCategory(args[0], categoryDescription)
		if err := ctrl.AddCategory(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎫 Added category %q (%d categories)\n", args[0], len(view.Categories()))
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a ticket category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := dashboard.NewMemoryView()
		ctrl, err := loadDashboard(cmd.Context(), view, view)
		if err != nil {
			return err
		}
		if err := ctrl.DeleteCategory(cmd.Context(), api.ID(args[0])); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎫 Deleted category %s\n", args[0])
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVarP(&categoryDescription, "description", "d", "", "category description (Markdown)")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
