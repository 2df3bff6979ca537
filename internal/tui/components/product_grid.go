package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/styles"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Layout constants for cards
const (
	// Border adds 1 char on each side
	CardBorderWidth  = 2
	CardBorderHeight = 2

	// Padding(0,1) inside the border
	CardHorizontalPadding = 2

	// Title (2 lines), price, category, rating
	CardContentLines = 5

	CardHeight = CardContentLines + CardBorderHeight

	// "↑ more" / "↓ more"
	GridIndicatorLines = 2
)

// ProductGrid shows products as a grid of cards
type ProductGrid struct {
	products []domain.Product
	columns  int
	cursor   int
	offset   int // first visible row
	width    int
	height   int
	keys     GridKeyMap
}

// NewProductGrid creates an empty grid with the given number of columns
func NewProductGrid(columns int) ProductGrid {
	return ProductGrid{
		columns: max(columns, 1),
		keys:    DefaultGridKeyMap(),
	}
}

// SetProducts replaces the cards. The cursor is clamped to the new list.
func (g *ProductGrid) SetProducts(products []domain.Product) {
	g.products = products
	g.SetCursor(g.cursor)
}

// SetSize updates the grid dimensions
func (g *ProductGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// Columns returns the number of cards per row
func (g ProductGrid) Columns() int {
	return g.columns
}

// Cursor returns the selected card index
func (g ProductGrid) Cursor() int {
	return g.cursor
}

// SetCursor moves the selection, clamped to the list
func (g *ProductGrid) SetCursor(i int) {
	g.cursor = max(min(i, len(g.products)-1), 0)
	g.ensureVisible()
}

// Selected returns the product under the cursor
func (g ProductGrid) Selected() (domain.Product, bool) {
	if g.cursor < 0 || g.cursor >= len(g.products) {
		return domain.Product{}, false
	}
	return g.products[g.cursor], true
}

func (g ProductGrid) rowCount() int {
	return (len(g.products) + g.columns - 1) / g.columns
}

// visibleRows returns how many card rows fit, at least one
func (g ProductGrid) visibleRows() int {
	return max((g.height-GridIndicatorLines)/CardHeight, 1)
}

func (g *ProductGrid) ensureVisible() {
	row := g.cursor / g.columns
	visible := g.visibleRows()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+visible {
		g.offset = row - visible + 1
	}
	g.offset = max(min(g.offset, g.rowCount()-visible), 0)
}

// Update handles navigation keys
func (g ProductGrid) Update(msg tea.Msg) (ProductGrid, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.products) == 0 {
		return g, nil
	}

	page := g.visibleRows() * g.columns
	switch {
	case key.Matches(keyMsg, g.keys.Left):
		if g.cursor%g.columns > 0 {
			g.SetCursor(g.cursor - 1)
		}
	case key.Matches(keyMsg, g.keys.Right):
		if g.cursor%g.columns < g.columns-1 && g.cursor+1 < len(g.products) {
			g.SetCursor(g.cursor + 1)
		}
	case key.Matches(keyMsg, g.keys.Up):
		if g.cursor-g.columns >= 0 {
			g.SetCursor(g.cursor - g.columns)
		}
	case key.Matches(keyMsg, g.keys.Down):
		if g.cursor+g.columns < len(g.products) {
			g.SetCursor(g.cursor + g.columns)
		} else if g.cursor/g.columns < g.rowCount()-1 {
			// partial last row
			g.SetCursor(len(g.products) - 1)
		}
	case key.Matches(keyMsg, g.keys.Home):
		g.SetCursor(0)
	case key.Matches(keyMsg, g.keys.End):
		g.SetCursor(len(g.products) - 1)
	case key.Matches(keyMsg, g.keys.PageUp):
		g.SetCursor(g.cursor - page)
	case key.Matches(keyMsg, g.keys.PageDown):
		g.SetCursor(g.cursor + page)
	}
	return g, nil
}

// cardWidth is the outer width of one card
func (g ProductGrid) cardWidth() int {
	return max(g.width/g.columns, CardBorderWidth+CardHorizontalPadding+8)
}

func (g ProductGrid) renderCard(p domain.Product, selected bool) string {
	style := styles.CardStyle
	titleStyle := styles.SubtitleStyle
	if selected {
		style = styles.CardSelectedStyle
		titleStyle = styles.TitleStyle
	}
	outer := g.cardWidth()
	inner := outer - CardBorderWidth - CardHorizontalPadding

	titleLines := strings.Split(wordwrap.String(p.Title, inner), "\n")
	for len(titleLines) < 2 {
		titleLines = append(titleLines, "")
	}
	if len(titleLines) > 2 {
		titleLines[1] = truncate.StringWithTail(titleLines[1]+" "+titleLines[2], uint(inner), "…")
		titleLines = titleLines[:2]
	}
	for i, line := range titleLines {
		titleLines[i] = titleStyle.Render(truncate.StringWithTail(line, uint(inner), "…"))
	}

	lines := append(titleLines,
		styles.PriceStyle.Render(p.FormattedPrice()),
		styles.DimStyle.Render(truncate.StringWithTail(p.Category, uint(inner), "…")),
		styles.RatingStyle.Render(p.Rating.Stars())+styles.DimStyle.Render(fmt.Sprintf(" %.1f", p.Rating.Rate)),
	)

	// Width excludes the border
	return style.Width(outer - CardBorderWidth).Render(strings.Join(lines, "\n"))
}

// View renders the visible rows of cards
func (g ProductGrid) View() string {
	visible := g.visibleRows()
	var rows []string

	if g.offset > 0 {
		rows = append(rows, styles.DimStyle.Render("↑ more"))
	} else {
		rows = append(rows, "")
	}

	end := min(g.offset+visible, g.rowCount())
	for r := g.offset; r < end; r++ {
		var cards []string
		for c := 0; c < g.columns; c++ {
			i := r*g.columns + c
			if i >= len(g.products) {
				break
			}
			cards = append(cards, g.renderCard(g.products[i], i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if end < g.rowCount() {
		rows = append(rows, styles.DimStyle.Render("↓ more"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
