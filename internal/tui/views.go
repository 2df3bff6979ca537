package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/nador/internal/adapter"
	"github.com/mmcdole/nador/internal/catalog"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/styles"
)

// EmptyStateText is shown when the filter matches nothing
const EmptyStateText = "No Items Found"

const maxSuggestions = 3

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	l := m.calculateLayout()

	var body string
	if m.State == StatePicking {
		body = m.CategoryPicker.View()
	} else {
		body = m.renderBody(l)
	}
	body = lipgloss.NewStyle().
		Width(m.Width).
		Height(l.bodyHeight).
		MaxHeight(l.bodyHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.Categories.View(),
		body,
		m.renderStatusBar(),
		m.Help.View(m.Keys),
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StoreNameStyle.Render(StoreName),
		" ",
		m.Search.View(),
	)
}

// renderBody picks between loading, failed, empty and the product list.
// Loading and failure only apply before the first product list arrives;
// after that a failed reload keeps the old list and reports in the status bar.
func (m Model) renderBody(l screenLayout) string {
	if !m.Catalog.HasProducts() {
		if m.Catalog.ProductsState() == catalog.LoadFailed {
			return m.renderFailed(l)
		}
		return m.renderLoading(l)
	}
	if m.Catalog.FilteredLen() == 0 {
		return m.renderEmpty(l)
	}

	var list string
	if m.ViewMode == adapter.ViewGrid {
		list = m.Grid.View()
	} else {
		list = m.Table.View()
	}
	if l.inspectorWidth > 0 {
		list = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(l.listWidth).Render(list),
			m.Inspector.View(),
		)
	}
	return list
}

func (m Model) centered(l screenLayout, lines ...string) string {
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.Width, l.bodyHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderLoading(l screenLayout) string {
	return m.centered(l, m.spinner()+" "+styles.SubtitleStyle.Render("Loading products..."))
}

func (m Model) renderFailed(l screenLayout) string {
	return m.centered(l,
		styles.ErrorStyle.Bold(true).Render("Could not load products"),
		"",
		styles.DimStyle.Width(max(m.Width-8, 20)).Align(lipgloss.Center).Render(loadErrorText(m.Catalog.ProductsErr())),
		"",
		styles.HintStyle.Render("Press r to retry"),
	)
}

func (m Model) renderEmpty(l screenLayout) string {
	lines := []string{styles.EmptyStateStyle.Render(EmptyStateText)}

	f := m.Catalog.Filter()
	if strings.TrimSpace(f.Search) != "" {
		if hints := m.Catalog.Suggestions(maxSuggestions); len(hints) > 0 {
			quoted := make([]string, len(hints))
			for i, h := range hints {
				quoted[i] = strconv.Quote(h)
			}
			lines = append(lines, "", styles.SubtitleStyle.Render("Did you mean "+strings.Join(quoted, ", ")+"?"))
		}
		lines = append(lines, "", styles.HintStyle.Render("Press esc to clear the search"))
	} else if f.Category != domain.CategoryAll {
		lines = append(lines, "", styles.HintStyle.Render("Press 0 to show all categories"))
	}
	return m.centered(l, lines...)
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SuccessStyle.Render(m.StatusMsg)
	case m.Catalog.Loading() && m.Catalog.HasProducts():
		left = m.spinner() + " Refreshing catalog..."
	case m.Catalog.HasProducts():
		left = fmt.Sprintf("Showing %s of %s products",
			humanize.Comma(int64(m.Catalog.FilteredLen())),
			humanize.Comma(int64(m.Catalog.ProductsLen())))
	}

	right := styles.DimStyle.Render(string(m.ViewMode))
	if m.State == StateSearching {
		right = styles.AccentStyle.Render("searching") + " " + right
	}

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.StatusBarStyle.MaxWidth(m.Width).
		Render(left + strings.Repeat(" ", gap) + right)
}
