package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/swifttickets/ticketdash/internal/dashboard"
)

// field identifies a text input.
type field int

const fieldNone field = -1

const (
	fieldParentChannel field = iota
	fieldStaffRole
	fieldTimezone
	fieldCategorySlots
	fieldWarnThreshold
	fieldWarnTimeout
	fieldCategoryName
	fieldCategoryDescription
	fieldPanelChannel
	fieldLocalName
	fieldLocalEmoji
	fieldCount
)

// settingsTextFields are the settings rows backed by text inputs, in display order.
var settingsTextFields = []field{
	fieldParentChannel,
	fieldStaffRole,
	fieldTimezone,
	fieldCategorySlots,
	fieldWarnThreshold,
	fieldWarnTimeout,
}

// toggle identifies a settings checkbox.
type toggle int

const (
	toggleSmartReplies toggle = iota
	toggleAISuggestions
	toggleAutoPriority
	toggleCount
)

var fieldLabels = [fieldCount]string{
	fieldParentChannel:       "Parent category ID",
	fieldStaffRole:           "Staff role ID",
	fieldTimezone:            "Timezone",
	fieldCategorySlots:       "Category slots",
	fieldWarnThreshold:       "Warn threshold",
	fieldWarnTimeout:         "Timeout minutes",
	fieldCategoryName:        "Name",
	fieldCategoryDescription: "Description",
	fieldPanelChannel:        "Channel ID",
	fieldLocalName:           "Row name",
	fieldLocalEmoji:          "Row emoji",
}

var toggleLabels = [toggleCount]string{
	toggleSmartReplies:  "Smart replies",
	toggleAISuggestions: "AI suggestions",
	toggleAutoPriority:  "Auto priority",
}

// settingsRowCount is the number of selectable rows in the settings section.
var settingsRowCount = len(settingsTextFields) + int(toggleCount)

func newInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Placeholder = fieldLabels[i]
		inputs[i] = ti
	}
	inputs[fieldCategoryDescription].CharLimit = 1024
	inputs[fieldLocalEmoji].CharLimit = 16
	return inputs
}

// liveForm is the dashboard.Form read by the controller from command
// goroutines. The model writes it on every edit.
type liveForm struct {
	mu          sync.Mutex
	settings    dashboard.SettingsForm
	name        string
	description string
	channel     string
}

func newLiveForm() *liveForm {
	return &liveForm{settings: dashboard.DefaultSettingsForm()}
}

func (f *liveForm) Settings() dashboard.SettingsForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

func (f *liveForm) NewCategory() (string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.description
}

func (f *liveForm) PanelChannelID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.channel
}

func (f *liveForm) set(settings dashboard.SettingsForm, name, description, channel string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = settings
	f.name = name
	f.description = description
	f.channel = channel
}

// formValues reads the settings controls back out of the inputs.
func formValues(inputs *[fieldCount]textinput.Model, toggles [toggleCount]bool) dashboard.SettingsForm {
	return dashboard.SettingsForm{
		TicketParentChannelID: inputs[fieldParentChannel].Value(),
		StaffRoleID:           inputs[fieldStaffRole].Value(),
		Timezone:              inputs[fieldTimezone].Value(),
		CategorySlots:         inputs[fieldCategorySlots].Value(),
		WarnThreshold:         inputs[fieldWarnThreshold].Value(),
		WarnTimeoutMinutes:    inputs[fieldWarnTimeout].Value(),
		SmartReplies:          toggles[toggleSmartReplies],
		AISuggestions:         toggles[toggleAISuggestions],
		AutoPriority:          toggles[toggleAutoPriority],
	}
}

// hydrateInputs writes f into the settings controls.
func hydrateInputs(inputs *[fieldCount]textinput.Model, toggles *[toggleCount]bool, f dashboard.SettingsForm) {
	inputs[fieldParentChannel].SetValue(f.TicketParentChannelID)
	inputs[fieldStaffRole].SetValue(f.StaffRoleID)
	inputs[fieldTimezone].SetValue(f.Timezone)
	inputs[fieldCategorySlots].SetValue(f.CategorySlots)
	inputs[fieldWarnThreshold].SetValue(f.WarnThreshold)
	inputs[fieldWarnTimeout].SetValue(f.WarnTimeoutMinutes)
	toggles[toggleSmartReplies] = f.SmartReplies
	toggles[toggleAISuggestions] = f.AISuggestions
	toggles[toggleAutoPriority] = f.AutoPriority
}
