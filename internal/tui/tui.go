// Package tui provides the Bubbletea-based terminal dashboard for ticketdash.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swifttickets/ticketdash/internal/api"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// Model is the main Bubbletea model for the ticketdash TUI.
type Model struct {
	// Window dimensions
	width  int
	height int

	// UI state
	ready bool

	// Mode state (centralized section and mode management)
	modeState ModeState

	// Components
	header  Header
	helpBar HelpBar

	// Dashboard state, as last rendered by the controller
	guilds     []dashboard.GuildEntry
	categories []dashboard.CategoryChip
	local      []dashboard.LocalCategory

	// Cursors per section
	guildCursor    int
	categoryCursor int
	settingsCursor int

	// Form controls
	inputs  [fieldCount]textinput.Model
	toggles [toggleCount]bool
	// editOriginal holds the value of the field being edited, restored on cancel.
	editOriginal string

	// Controller wiring
	ctx          context.Context
	ctrl         *dashboard.Controller
	form         *liveForm
	opts         dashboard.Options
	initialGuild api.ID

	// noticeSeq identifies the notice currently shown.
	noticeSeq int

	// Key bindings
	keys KeyBindings
}

// Options configures the TUI behavior.
type Options struct {
	// Guild is selected on startup. Empty loads the unscoped snapshot.
	Guild api.ID
	// Dashboard is passed through to the controller.
	Dashboard dashboard.Options
}

// New creates a TUI model without a controller.
func New() Model {
	m := Model{
		header:    NewHeader(),
		helpBar:   NewHelpBar(),
		modeState: NewModeState(),
		keys:      DefaultKeyBindings(),
		inputs:    newInputs(),
		form:      newLiveForm(),
		ctx:       context.Background(),
	}
	hydrateInputs(&m.inputs, &m.toggles, dashboard.DefaultSettingsForm())
	m.syncForm()
	return m
}

// newWithController wires a model to a controller and the form it reads.
func newWithController(ctx context.Context, ctrl *dashboard.Controller, form *liveForm, opts Options) Model {
	m := New()
	m.ctx = ctx
	m.ctrl = ctrl
	m.form = form
	m.opts = opts.Dashboard
	m.initialGuild = opts.Guild
	m.syncForm()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	slog.Debug("tui.Init: starting", "has_controller", m.ctrl != nil, "initial_guild", m.initialGuild)
	return m.loadCmd(m.initialGuild)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	m.helpBar.SetContext(m.modeState, m.opts.LocalCategories)

	return fmt.Sprintf("%s\n%s\n%s\n%s", m.header.View(), m.tabsView(), m.sectionView(), m.helpBar.View())
}

// Run starts the TUI against backend and blocks until the user quits.
func Run(ctx context.Context, backend dashboard.Backend, opts Options) error {
	renderer := &programRenderer{}
	form := newLiveForm()
	ctrl := dashboard.New(backend, renderer, form, opts.Dashboard)

	p := tea.NewProgram(
		newWithController(ctx, ctrl, form, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	renderer.attach(p.Send)

	slog.Debug("tui.Run: running program", "guild", opts.Guild)
	_, err := p.Run()
	slog.Debug("tui.Run: program exited", "error", err)
	return err
}
