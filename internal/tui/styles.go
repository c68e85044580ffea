package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5865F2") // Blurple
	secondaryColor = lipgloss.Color("#23A55A") // Green
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	errorColor     = lipgloss.Color("#EF4444") // Red
	warningColor   = lipgloss.Color("#F59E0B") // Amber/Yellow

	// Header styles
	headerContainerStyle = lipgloss.NewStyle().
				Background(primaryColor)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 1)

	headerStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E0E0E0")).
				Background(primaryColor).
				Padding(0, 1)

	headerExtendedStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 1)

	// Section tabs
	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	// Section body
	sectionStyle = lipgloss.NewStyle().
			Padding(1, 2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3B3B3B")).
				Padding(0, 1)

	// Server list styles
	guildIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Bold(true).
			Padding(0, 1)

	guildIconMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(mutedColor).
				Padding(0, 1)

	guildNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	installedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	inviteStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	metaStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Category chips
	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#404249")).
			Padding(0, 1)

	chipDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0"))

	// Form styles
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0")).
			Width(22)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	inputEditingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#2D2D2D"))

	checkboxOnStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	checkboxOffStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Status bar style
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	// Notice styles
	toastBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	alertBarStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true).
			Padding(0, 1)

	// Delete confirmation styles
	deleteConfirmStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				Padding(0, 1)
)

// localColorStyles maps the local row color names onto terminal colors.
var localColorStyles = map[string]lipgloss.Style{
	"blurple": lipgloss.NewStyle().Foreground(primaryColor),
	"green":   lipgloss.NewStyle().Foreground(secondaryColor),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FEE75C")),
	"red":     lipgloss.NewStyle().Foreground(errorColor),
	"fuchsia": lipgloss.NewStyle().Foreground(lipgloss.Color("#EB459E")),
}
