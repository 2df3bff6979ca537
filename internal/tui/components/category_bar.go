package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/styles"
)

// CategoryBar renders one button per category and tracks which one is selected.
// The selection is held by name so it survives a category reload.
type CategoryBar struct {
	categories []string
	counts     map[string]int
	selected   string
	width      int
	failed     bool
}

// NewCategoryBar creates a category bar with "All" selected
func NewCategoryBar() CategoryBar {
	return CategoryBar{selected: domain.CategoryAll}
}

// SetCategories replaces the button list
func (c *CategoryBar) SetCategories(categories []string) {
	c.categories = slices.Clone(categories)
	c.failed = false
}

// SetFailed marks the category list as unavailable
func (c *CategoryBar) SetFailed(failed bool) {
	c.failed = failed
}

// SetCounts sets the per-category product counts shown on the buttons
func (c *CategoryBar) SetCounts(counts map[string]int) {
	c.counts = counts
}

// SetWidth updates the width used for wrapping buttons onto rows
func (c *CategoryBar) SetWidth(width int) {
	c.width = width
}

// Categories returns the button labels
func (c CategoryBar) Categories() []string {
	return slices.Clone(c.categories)
}

// Selected returns the selected category label
func (c CategoryBar) Selected() string {
	return c.selected
}

// Select highlights the given category. Labels that are not in the list are
// still recorded; no button is highlighted for them.
func (c *CategoryBar) Select(category string) {
	c.selected = category
}

// SelectIndex highlights the category at position i
func (c *CategoryBar) SelectIndex(i int) bool {
	if i < 0 || i >= len(c.categories) {
		return false
	}
	c.selected = c.categories[i]
	return true
}

// Next moves the selection one button to the right, wrapping around
func (c *CategoryBar) Next() {
	c.step(1)
}

// Prev moves the selection one button to the left, wrapping around
func (c *CategoryBar) Prev() {
	c.step(-1)
}

func (c *CategoryBar) step(delta int) {
	n := len(c.categories)
	if n == 0 {
		return
	}
	i := slices.Index(c.categories, c.selected)
	if i < 0 {
		i = 0
		if delta < 0 {
			i = n
		}
		delta = min(delta, 0)
	}
	c.selected = c.categories[((i+delta)%n+n)%n]
}

func (c CategoryBar) label(category string) string {
	if c.counts == nil {
		return category
	}
	return fmt.Sprintf("%s %s", category, styles.DimStyle.Render(humanize.Comma(int64(c.counts[category]))))
}

// View renders the buttons, wrapping onto additional rows when they overflow
func (c CategoryBar) View() string {
	if len(c.categories) == 0 {
		if c.failed {
			return styles.ErrorStyle.Render("Categories unavailable (press r to retry)")
		}
		return styles.DimStyle.Render("Loading categories...")
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, category := range c.categories {
		style := styles.CategoryInactiveStyle
		if category == c.selected {
			style = styles.CategoryActiveStyle
		}
		button := style.Render(c.label(category))
		w := lipgloss.Width(button)
		if c.width > 0 && len(row) > 0 && rowWidth+w > c.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, button)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	return strings.Join(rows, "\n")
}
