package tui

import (
	"errors"

	"github.com/swifttickets/ticketdash/internal/api"
)

// Mode represents the current interaction mode of the TUI.
// Only one mode can be active at a time.
type Mode int

const (
	// ModeNormal is the default mode for navigating the dashboard.
	ModeNormal Mode = iota
	// ModeEdit means a text field has keyboard focus.
	ModeEdit
	// ModeDeleteConfirm means the user is being asked to confirm a category delete.
	ModeDeleteConfirm
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeDeleteConfirm:
		return "delete_confirm"
	default:
		return "unknown"
	}
}

// ModeState centralizes all mode and section state for the TUI.
type ModeState struct {
	// Mode is the current interaction mode.
	Mode Mode

	// Section is the dashboard section shown in normal mode.
	Section Section

	// Field is the text field being edited (only valid when Mode == ModeEdit).
	Field field

	// DeleteCategoryID is the category awaiting confirmation
	// (only valid when Mode == ModeDeleteConfirm).
	DeleteCategoryID api.ID
}

// NewModeState creates a new ModeState with default values.
func NewModeState() ModeState {
	return ModeState{
		Mode:    ModeNormal,
		Section: SectionServers,
		Field:   fieldNone,
	}
}

// Validation errors for mode state transitions.
var (
	ErrInvalidModeTransition = errors.New("invalid mode transition")
	ErrMissingCategoryID     = errors.New("delete requires a category ID")
	ErrAlreadyInMode         = errors.New("already in this mode")
)

// SetSection switches the visible section. Only valid in normal mode.
func (s *ModeState) SetSection(sec Section) error {
	if s.Mode != ModeNormal {
		return ErrInvalidModeTransition
	}
	s.Section = sec
	return nil
}

// CycleSection advances to the next section, wrapping at the end.
func (s *ModeState) CycleSection() (Section, error) {
	if s.Mode != ModeNormal {
		return s.Section, ErrInvalidModeTransition
	}
	s.Section = (s.Section + 1) % sectionCount
	return s.Section, nil
}

// EnterEditMode gives keyboard focus to f.
func (s *ModeState) EnterEditMode(f field) error {
	if s.Mode == ModeEdit {
		return ErrAlreadyInMode
	}
	if s.Mode == ModeDeleteConfirm {
		return ErrInvalidModeTransition
	}
	s.Mode = ModeEdit
	s.Field = f
	return nil
}

// ExitEditMode returns to normal mode and reports the field that was edited.
func (s *ModeState) ExitEditMode() (field, error) {
	if s.Mode != ModeEdit {
		return fieldNone, ErrInvalidModeTransition
	}
	f := s.Field
	s.Mode = ModeNormal
	s.Field = fieldNone
	return f, nil
}

// EnterDeleteConfirm asks for confirmation before deleting id.
func (s *ModeState) EnterDeleteConfirm(id api.ID) error {
	if id == "" {
		return ErrMissingCategoryID
	}
	if s.Mode == ModeDeleteConfirm {
		return ErrAlreadyInMode
	}
	if s.Mode == ModeEdit {
		return ErrInvalidModeTransition
	}
	s.Mode = ModeDeleteConfirm
	s.DeleteCategoryID = id
	return nil
}

// ConfirmDelete returns the category to delete and goes back to normal mode.
func (s *ModeState) ConfirmDelete() (api.ID, error) {
	if s.Mode != ModeDeleteConfirm {
		return "", ErrInvalidModeTransition
	}
	id := s.DeleteCategoryID
	s.Mode = ModeNormal
	s.DeleteCategoryID = ""
	return id, nil
}

// CancelDelete drops the pending delete.
func (s *ModeState) CancelDelete() error {
	if s.Mode != ModeDeleteConfirm {
		return ErrInvalidModeTransition
	}
	s.Mode = ModeNormal
	s.DeleteCategoryID = ""
	return nil
}

// IsNormal returns true if in normal mode.
func (s *ModeState) IsNormal() bool {
	return s.Mode == ModeNormal
}

// IsEditing returns true if a text field has focus.
func (s *ModeState) IsEditing() bool {
	return s.Mode == ModeEdit
}

// IsDeleteConfirming returns true if a delete is awaiting confirmation.
func (s *ModeState) IsDeleteConfirming() bool {
	return s.Mode == ModeDeleteConfirm
}

// Validate checks that the mode state is internally consistent.
func (s *ModeState) Validate() error {
	switch s.Mode {
	case ModeDeleteConfirm:
		if s.DeleteCategoryID == "" {
			return ErrMissingCategoryID
		}
	case ModeEdit:
		if s.Field == fieldNone {
			return errors.New("edit mode requires a field")
		}
	case ModeNormal:
		if s.DeleteCategoryID != "" {
			return errors.New("delete category ID should be empty when not confirming")
		}
	}
	return nil
}
