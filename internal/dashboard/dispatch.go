package dashboard

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/swifttickets/ticketdash/internal/api"
)

// Action names a user interaction.
type Action string

const (
	ActionScroll         Action = "scroll"
	ActionInvite         Action = "invite"
	ActionAddCategory    Action = "add-category"
	ActionRemoveCategory Action = "remove-category"
	ActionReset          Action = "reset"
	ActionSaveCategories Action = "save-categories"
	ActionSaveSettings   Action = "save-settings"
	ActionCreateCategory Action = "create-category"
	ActionDeleteCategory Action = "delete-category"
	ActionPostPanel      Action = "post-panel"
	ActionPostPanelSet   Action = "post-panelset"
	ActionManage         Action = "manage"
	ActionRefresh        Action = "refresh"
)

// Placeholder texts for flows that have no implementation behind them.
const (
	InvitePlaceholder    = "Invite flow is coming soon."
	ResetPlaceholder     = "Reset is not available yet."
	CategoriesSavedToast = "Categories saved"
)

// Dispatch runs the handler for action. arg carries the action's target:
// an anchor for scroll, a row index for remove-category, a category id for
// delete-category, or a guild id for manage. Unknown actions are ignored
// and network failures are swallowed, leaving the view as it was.
func (c *Controller) Dispatch(ctx context.Context, action Action, arg string) {
	var err error
	switch action {
	case ActionScroll:
		c.renderer.ScrollTo(arg)
	case ActionInvite:
		c.renderer.Notify(Notice{Kind: NoticeAlert, Text: InvitePlaceholder})
	case ActionReset:
		c.renderer.Notify(Notice{Kind: NoticeAlert, Text: ResetPlaceholder})
	case ActionAddCategory:
		if c.opts.LocalCategories {
			c.AddLocalCategory()
		}
	case ActionRemoveCategory:
		if !c.opts.LocalCategories {
			break
		}
		if i, convErr := strconv.Atoi(arg); convErr == nil {
			c.RemoveLocalCategory(i)
		}
	case ActionSaveCategories:
		if c.opts.LocalCategories {
			c.renderer.Notify(Notice{Kind: NoticeToast, Text: CategoriesSavedToast})
		}
	case ActionSaveSettings:
		err = c.SaveSettings(ctx)
	case ActionCreateCategory:
		err = c.AddCategory(ctx)
	case ActionDeleteCategory:
		err = c.DeleteCategory(ctx, api.ID(arg))
	case ActionPostPanel:
		err = c.PostPanel(ctx, api.PanelSettings)
	case ActionPostPanelSet:
		err = c.PostPanel(ctx, api.PanelPublic)
	case ActionManage:
		err = c.SelectGuild(ctx, api.ID(arg))
	case ActionRefresh:
		err = c.Refresh(ctx)
	default:
		slog.Debug("dashboard: ignoring unknown action", "action", action)
	}
	if err != nil {
		slog.Debug("dashboard: action failed", "action", action, "arg", arg, "error", err)
	}
}
