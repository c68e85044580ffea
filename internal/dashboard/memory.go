package dashboard

import "sync"

// MemoryView is a headless Renderer and Form. It keeps whatever was last
// rendered and serves form values from its own fields, which makes it the
// view used by one-shot commands.
type MemoryView struct {
	mu sync.Mutex

	stats        StatsView
	guilds       []GuildEntry
	categories   []CategoryChip
	local        []LocalCategory
	notices      []Notice
	scrolledTo   string
	settings     SettingsForm
	categoryName string
	categoryDesc string
	panelChannel string
}

// NewMemoryView returns a view with default settings controls.
func NewMemoryView() *MemoryView {
	return &MemoryView{settings: DefaultSettingsForm()}
}

func (v *MemoryView) RenderStats(s StatsView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats = s
}

func (v *MemoryView) RenderGuildList(g []GuildEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.guilds = g
}

func (v *MemoryView) RenderCategoryList(c []CategoryChip) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.categories = c
}

func (v *MemoryView) RenderLocalCategories(rows []LocalCategory) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.local = rows
}

func (v *MemoryView) HydrateSettings(f SettingsForm) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.settings = f
}

func (v *MemoryView) Notify(n Notice) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, n)
}

func (v *MemoryView) ScrollTo(anchor string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolledTo = anchor
}

// Settings implements Form.
func (v *MemoryView) Settings() SettingsForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.settings
}

// NewCategory implements Form.
func (v *MemoryView) NewCategory() (string, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.categoryName, v.categoryDesc
}

// PanelChannelID implements Form.
func (v *MemoryView) PanelChannelID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panelChannel
}

// EditSettings applies fn to the settings controls, like a user typing.
func (v *MemoryView) EditSettings(fn func(*SettingsForm)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(&v.settings)
}

// SetNewCategory fills the new-category inputs.
func (v *MemoryView) SetNewCategory(name, description string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.categoryName = name
	v.categoryDesc = description
}

// SetPanelChannel fills the panel channel input.
func (v *MemoryView) SetPanelChannel(channelID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelChannel = channelID
}

// Stats returns the last rendered stats.
func (v *MemoryView) Stats() StatsView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stats
}

// Guilds returns the last rendered guild list.
func (v *MemoryView) Guilds() []GuildEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.guilds
}

// Categories returns the last rendered category chips.
func (v *MemoryView) Categories() []CategoryChip {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.categories
}

// LocalRows returns the last rendered local category rows.
func (v *MemoryView) LocalRows() []LocalCategory {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.local
}

// Notices returns every notice shown so far.
func (v *MemoryView) Notices() []Notice {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Notice(nil), v.notices...)
}

// ScrolledTo returns the last scroll target.
func (v *MemoryView) ScrolledTo() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrolledTo
}
