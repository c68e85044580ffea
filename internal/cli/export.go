package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/swifttickets/ticketdash/internal/render"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard as a static HTML page",
	Long: `Fetch the dashboard snapshot and write it as a standalone HTML page.

Category descriptions are rendered from Markdown. Use --out - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	page := render.NewHTML()
	if _, err := loadDashboard(cmd.Context(), page, nil); err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	if _, err := page.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	if exportOut != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "🎫 Dashboard written to %s\n", exportOut)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dashboard.html", "output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}
