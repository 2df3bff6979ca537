package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nador/internal/tui/styles"
)

// SearchPlaceholder is shown while the search box is empty
const SearchPlaceholder = "Search by title, description, category, or ID"

// SearchBox is the free-text search input
type SearchBox struct {
	input textinput.Model
	width int
}

// NewSearchBox creates a new search box
func NewSearchBox() SearchBox {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.CharLimit = 200
	ti.Prompt = "/ "
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = styles.SearchTextStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBox{input: ti}
}

// SetWidth updates the visible input width
func (s *SearchBox) SetWidth(width int) {
	s.width = width
	// prompt plus cursor
	s.input.Width = max(width-lipgloss.Width(s.input.Prompt)-1, 1)
}

// Focus gives the input keyboard focus
func (s *SearchBox) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchBox) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has keyboard focus
func (s SearchBox) Focused() bool {
	return s.input.Focused()
}

// Value returns the raw text as typed
func (s SearchBox) Value() string {
	return s.input.Value()
}

// SetValue replaces the text
func (s *SearchBox) SetValue(v string) {
	s.input.SetValue(v)
}

// Update forwards the message to the input and reports whether the text changed
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd, bool) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before
}

// View renders the input
func (s SearchBox) View() string {
	return s.input.View()
}
