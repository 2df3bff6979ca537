package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nador/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// pickerMatch is one visible picker row
type pickerMatch struct {
	label   string
	matched []int // rune positions to highlight
}

// CategoryPicker is a modal that fuzzy-filters the category list
type CategoryPicker struct {
	input      textinput.Model
	categories []string
	matches    []pickerMatch
	cursor     int
	visible    bool
	width      int
	height     int
	keys       PickerKeyMap
}

// NewCategoryPicker creates a hidden category picker
func NewCategoryPicker() CategoryPicker {
	ti := textinput.New()
	ti.Placeholder = "Jump to category..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return CategoryPicker{
		input: ti,
		keys:  DefaultPickerKeyMap(),
	}
}

// Show opens the picker over the given categories with current preselected
func (c *CategoryPicker) Show(categories []string, current string) tea.Cmd {
	c.categories = slices.Clone(categories)
	c.visible = true
	c.input.SetValue("")
	c.refilter()
	if i := slices.IndexFunc(c.matches, func(m pickerMatch) bool { return m.label == current }); i >= 0 {
		c.cursor = i
	}
	return c.input.Focus()
}

// Hide closes the picker
func (c *CategoryPicker) Hide() {
	c.visible = false
	c.input.Blur()
}

// IsVisible returns true if the picker is open
func (c CategoryPicker) IsVisible() bool {
	return c.visible
}

// SetSize updates the area the modal is centered in
func (c *CategoryPicker) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Query returns the current filter text
func (c CategoryPicker) Query() string {
	return c.input.Value()
}

// Matches returns the labels currently listed, best match first
func (c CategoryPicker) Matches() []string {
	out := make([]string, len(c.matches))
	for i, m := range c.matches {
		out[i] = m.label
	}
	return out
}

// Selected returns the highlighted category
func (c CategoryPicker) Selected() (string, bool) {
	if c.cursor < 0 || c.cursor >= len(c.matches) {
		return "", false
	}
	return c.matches[c.cursor].label, true
}

// refilter recomputes matches for the current query. An empty query lists
// every category in order.
func (c *CategoryPicker) refilter() {
	c.cursor = 0
	query := c.input.Value()
	if strings.TrimSpace(query) == "" {
		c.matches = make([]pickerMatch, len(c.categories))
		for i, cat := range c.categories {
			c.matches[i] = pickerMatch{label: cat}
		}
		return
	}

	found := fuzzy.Find(query, c.categories)
	c.matches = make([]pickerMatch, len(found))
	for i, m := range found {
		c.matches[i] = pickerMatch{label: m.Str, matched: m.MatchedIndexes}
	}
}

// Update handles messages. The bool reports that a category was chosen;
// the picker hides itself on selection and on cancel.
func (c CategoryPicker) Update(msg tea.Msg) (CategoryPicker, tea.Cmd, bool) {
	if !c.visible {
		return c, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, c.keys.Cancel):
			c.Hide()
			return c, nil, false
		case key.Matches(keyMsg, c.keys.Select):
			if _, ok := c.Selected(); ok {
				c.Hide()
				return c, nil, true
			}
			return c, nil, false
		case key.Matches(keyMsg, c.keys.Down):
			if c.cursor < len(c.matches)-1 {
				c.cursor++
			}
			return c, nil, false
		case key.Matches(keyMsg, c.keys.Up):
			if c.cursor > 0 {
				c.cursor--
			}
			return c, nil, false
		}
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != before {
		c.refilter()
	}
	return c, cmd, false
}

// highlight renders label with the fuzzy-matched bytes emphasized
func highlight(label string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(label)
	}
	inner := base.UnsetPadding()
	hit := styles.MatchHighlightStyle.Inherit(inner)
	var b strings.Builder
	for i, r := range label {
		if slices.Contains(matched, i) {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteString(inner.Render(string(r)))
		}
	}
	return base.Render(b.String())
}

// View renders the modal centered in its area
func (c CategoryPicker) View() string {
	if !c.visible {
		return ""
	}

	modalWidth := max(min(c.width/2, 60), 30)
	maxResults := 10

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")

	if len(c.matches) == 0 {
		b.WriteString(styles.DimStyle.Render("No matching categories"))
	}

	start := 0
	if c.cursor >= maxResults {
		start = c.cursor - maxResults + 1
	}
	end := min(start+maxResults, len(c.matches))
	for i := start; i < end; i++ {
		m := c.matches[i]
		style := styles.NormalItemStyle
		if i == c.cursor {
			style = styles.SelectedItemStyle
		}
		b.WriteString(highlight(m.label, m.matched, style))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	content := lipgloss.NewStyle().Width(modalWidth - 4).Render(b.String())
	modal := styles.ModalStyle.Width(modalWidth).Render(content)

	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, modal)
}
