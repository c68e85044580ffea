package dashboard

// CategoryColors are the choices offered by the local row color selector.
var CategoryColors = []string{"blurple", "green", "yellow", "red", "fuchsia"}

// newLocalCategory is the row inserted by the add action.
func newLocalCategory() LocalCategory {
	return LocalCategory{Emoji: "🎫", Name: "New category", Color: CategoryColors[0]}
}

// LocalCategories returns a copy of the local-only rows.
func (c *Controller) LocalCategories() []LocalCategory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]LocalCategory(nil), c.local...)
}

// AddLocalCategory appends an editable row. Nothing is sent to the backend.
func (c *Controller) AddLocalCategory() {
	c.mu.Lock()
	c.local = append(c.local, newLocalCategory())
	c.mu.Unlock()
	c.renderLocal()
}

// RemoveLocalCategory drops row i. Out-of-range indexes are ignored.
func (c *Controller) RemoveLocalCategory(i int) {
	c.mu.Lock()
	if i < 0 || i >= len(c.local) {
		c.mu.Unlock()
		return
	}
	c.local = append(c.local[:i], c.local[i+1:]...)
	c.mu.Unlock()
	c.renderLocal()
}

// UpdateLocalCategory replaces row i. Out-of-range indexes are ignored.
func (c *Controller) UpdateLocalCategory(i int, row LocalCategory) {
	c.mu.Lock()
	if i < 0 || i >= len(c.local) {
		c.mu.Unlock()
		return
	}
	c.local[i] = row
	c.mu.Unlock()
	c.renderLocal()
}

// NextColor returns the color after current in CategoryColors, wrapping.
func NextColor(current string) string {
	for i, col := range CategoryColors {
		if col == current {
			return CategoryColors[(i+1)%len(CategoryColors)]
		}
	}
	return CategoryColors[0]
}

func (c *Controller) renderLocal() {
	lr, ok := c.renderer.(LocalCategoryRenderer)
	if !ok {
		return
	}
	lr.RenderLocalCategories(c.LocalCategories())
}
