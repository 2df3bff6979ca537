package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/styles"
	"github.com/muesli/reflow/truncate"
)

// Fixed column widths; Title and Description share what remains
const (
	idColumnWidth       = 5
	priceColumnWidth    = 10
	categoryColumnWidth = 18
	ratingColumnWidth   = 20
	cellPadding         = 2
)

// ProductTable shows products as table rows
type ProductTable struct {
	table            table.Model
	products         []domain.Product
	descriptionWidth int
	width            int
	height           int
}

// NewProductTable creates an empty product table. descriptionWidth is the
// number of description characters shown before "...".
func NewProductTable(descriptionWidth int) ProductTable {
	t := table.New(
		table.WithColumns(tableColumns(80)),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = styles.TableHeaderStyle
	s.Cell = styles.TableCellStyle
	s.Selected = styles.TableSelectedStyle
	t.SetStyles(s)

	return ProductTable{table: t, descriptionWidth: descriptionWidth}
}

func tableColumns(width int) []table.Column {
	fixed := idColumnWidth + priceColumnWidth + categoryColumnWidth + ratingColumnWidth
	// every column is padded by one cell on each side
	flex := max(width-fixed-6*cellPadding, 20)
	title := flex * 2 / 5
	return []table.Column{
		{Title: "#ID", Width: idColumnWidth},
		{Title: "Title", Width: title},
		{Title: "Price", Width: priceColumnWidth},
		{Title: "Description", Width: flex - title},
		{Title: "Category", Width: categoryColumnWidth},
		{Title: "Rating", Width: ratingColumnWidth},
	}
}

// SetProducts replaces the rows. The cursor is clamped to the new list.
func (p *ProductTable) SetProducts(products []domain.Product) {
	p.products = products
	p.rebuildRows()
}

func (p *ProductTable) rebuildRows() {
	cols := p.table.Columns()
	rows := make([]table.Row, len(p.products))
	for i, prod := range p.products {
		rows[i] = table.Row{
			prod.IDString(),
			fit(prod.Title, cols[1].Width),
			prod.FormattedPrice(),
			fit(prod.ShortDescription(p.descriptionWidth), cols[3].Width),
			fit(prod.Category, cols[4].Width),
			fmt.Sprintf("%s %.1f (%s)", prod.Rating.Stars(), prod.Rating.Rate, humanize.Comma(int64(prod.Rating.Count))),
		}
	}
	p.table.SetRows(rows)
	// An empty table leaves the cursor at -1
	switch c := p.table.Cursor(); {
	case len(rows) == 0:
	case c < 0:
		p.table.SetCursor(0)
	case c >= len(rows):
		p.table.SetCursor(len(rows) - 1)
	}
}

func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// SetSize updates the table dimensions
func (p *ProductTable) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.table.SetColumns(tableColumns(width))
	p.table.SetWidth(width)
	p.table.SetHeight(max(height, 2))
	p.rebuildRows()
}

// Cursor returns the selected row index
func (p ProductTable) Cursor() int {
	return p.table.Cursor()
}

// SetCursor moves the selection
func (p *ProductTable) SetCursor(i int) {
	p.table.SetCursor(i)
}

// Selected returns the product under the cursor
func (p ProductTable) Selected() (domain.Product, bool) {
	c := p.table.Cursor()
	if c < 0 || c >= len(p.products) {
		return domain.Product{}, false
	}
	return p.products[c], true
}

// Update forwards navigation keys to the table
func (p ProductTable) Update(msg tea.Msg) (ProductTable, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// View renders the table
func (p ProductTable) View() string {
	return p.table.View()
}
