package dashboard

import (
	"context"
	"testing"

	"github.com/swifttickets/ticketdash/internal/api"
)

func TestDispatch_UIActions(t *testing.T) {
	tests := []struct {
		name       string
		action     Action
		arg        string
		wantNotice *Notice
		wantScroll string
	}{
		{"scroll", ActionScroll, "settings", nil, "settings"},
		{"invite placeholder", ActionInvite, "", &Notice{Kind: NoticeAlert, Text: InvitePlaceholder}, ""},
		{"reset placeholder", ActionReset, "", &Notice{Kind: NoticeAlert, Text: ResetPlaceholder}, ""},
		{"save categories toast", ActionSaveCategories, "", &Notice{Kind: NoticeToast, Text: CategoriesSavedToast}, ""},
		{"unknown action", Action("bogus"), "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend(selectedSnapshot())
			view := NewMemoryView()
			c := New(backend, view, view, Options{LocalCategories: true})

			c.Dispatch(context.Background(), tt.action, tt.arg)

			notices := view.Notices()
			if tt.wantNotice == nil && len(notices) != 0 {
				t.Errorf("notices = %+v, want none", notices)
			}
			if tt.wantNotice != nil && (len(notices) != 1 || notices[0] != *tt.wantNotice) {
				t.Errorf("notices = %+v, want [%+v]", notices, *tt.wantNotice)
			}
			if got := view.ScrolledTo(); got != tt.wantScroll {
				t.Errorf("ScrolledTo() = %q, want %q", got, tt.wantScroll)
			}
			if n := backend.calls(); n != 0 {
				t.Errorf("backend calls = %d, want 0", n)
			}
		})
	}
}

func TestDispatch_LocalCategoriesNeverHitNetwork(t *testing.T) {
	backend := newFakeBackend(selectedSnapshot())
	view := NewMemoryView()
	c := New(backend, view, view, Options{LocalCategories: true})
	ctx := context.Background()

	c.Dispatch(ctx, ActionAddCategory, "")
	c.Dispatch(ctx, ActionAddCategory, "")
	c.Dispatch(ctx, ActionAddCategory, "")
	if got := len(view.LocalRows()); got != 3 {
		t.Fatalf("local rows = %d, want 3", got)
	}

	c.UpdateLocalCategory(1, LocalCategory{Emoji: "💳", Name: "Billing", Color: "green"})
	c.Dispatch(ctx, ActionRemoveCategory, "0")
	rows := view.LocalRows()
	if len(rows) != 2 || rows[0].Name != "Billing" {
		t.Errorf("rows = %+v, want Billing first after removing row 0", rows)
	}

	c.Dispatch(ctx, ActionRemoveCategory, "9")
	c.Dispatch(ctx, ActionRemoveCategory, "not-an-index")
	if got := len(view.LocalRows()); got != 2 {
		t.Errorf("local rows = %d, want 2 after invalid removes", got)
	}

	c.Dispatch(ctx, ActionSaveCategories, "")
	if n := backend.calls(); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestDispatch_LocalCategoriesDisabled(t *testing.T) {
	backend := newFakeBackend(selectedSnapshot())
	view := NewMemoryView()
	c := New(backend, view, view, Options{})

	c.Dispatch(context.Background(), ActionAddCategory, "")
	if got := len(c.LocalCategories()); got != 0 {
		t.Errorf("local rows = %d, want 0 when capability is off", got)
	}
}

func TestDispatch_NetworkActions(t *testing.T) {
	backend := newFakeBackend(selectedSnapshot())
	view := NewMemoryView()
	c := New(backend, view, view, Options{})
	ctx := context.Background()

	c.Dispatch(ctx, ActionRefresh, "")
	view.SetPanelChannel("42")
	view.SetNewCategory("Support", "")

	c.Dispatch(ctx, ActionSaveSettings, "")
	c.Dispatch(ctx, ActionPostPanel, "")
	c.Dispatch(ctx, ActionPostPanelSet, "")
	c.Dispatch(ctx, ActionCreateCategory, "")
	c.Dispatch(ctx, ActionDeleteCategory, "3")
	c.Dispatch(ctx, ActionManage, "1")

	if len(backend.settings) != 1 {
		t.Errorf("settings posts = %d, want 1", len(backend.settings))
	}
	if len(backend.panels) != 2 || backend.panels[0] != api.PanelSettings || backend.panels[1] != api.PanelPublic {
		t.Errorf("panels = %v", backend.panels)
	}
	if len(backend.created) != 1 || len(backend.deleted) != 1 {
		t.Errorf("created = %d deleted = %d, want 1 each", len(backend.created), len(backend.deleted))
	}
	// refresh, create reload, delete reload, manage
	if len(backend.fetches) != 4 {
		t.Errorf("fetches = %v, want 4", backend.fetches)
	}
}

func TestDispatch_SwallowsErrors(t *testing.T) {
	backend := newFakeBackend(selectedSnapshot())
	view := NewMemoryView()
	c := New(backend, view, view, Options{})
	ctx := context.Background()
	c.Dispatch(ctx, ActionRefresh, "")

	backend.fetchErr = api.ErrRequestFailed
	c.Dispatch(ctx, ActionManage, "2")

	if got := view.Stats().BotTag; got != "T" {
		t.Errorf("BotTag = %q, want previous view kept", got)
	}
	if got := len(view.Notices()); got != 0 {
		t.Errorf("notices = %d, want failures to stay silent", got)
	}
}
