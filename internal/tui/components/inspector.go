package components

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/styles"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Layout constants for inspector
const (
	InspectorBorderWidth  = 2
	InspectorBorderHeight = 2
	InspectorPadding      = 2
)

// Inspector displays the full details of the selected product
type Inspector struct {
	product *domain.Product
	width   int
	height  int
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetProduct sets the product to display; nil clears it
func (i *Inspector) SetProduct(p *domain.Product) {
	i.product = p
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// HasProduct returns true if there is a product to display
func (i Inspector) HasProduct() bool {
	return i.product != nil
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder.Padding(0, 1)
	contentWidth := max(i.width-InspectorBorderWidth-InspectorPadding, 10)
	contentHeight := max(i.height-InspectorBorderHeight, 1)

	if i.product == nil {
		return style.Width(contentWidth + InspectorPadding).Height(contentHeight).
			Render(styles.DimStyle.Render("No product selected"))
	}
	p := i.product

	var lines []string
	lines = append(lines, strings.Split(styles.TitleStyle.Render(wordwrap.String(p.Title, contentWidth)), "\n")...)
	lines = append(lines, "")
	lines = append(lines, styles.PriceStyle.Render(p.FormattedPrice()))
	lines = append(lines, fmt.Sprintf("%s %s", styles.DimStyle.Render("Category:"), p.Category))
	lines = append(lines, fmt.Sprintf("%s %s", styles.DimStyle.Render("ID:"), p.IDString()))
	lines = append(lines, fmt.Sprintf("%s %.1f  %s",
		styles.RatingStyle.Render(p.Rating.Stars()),
		p.Rating.Rate,
		styles.DimStyle.Render(humanize.Comma(int64(p.Rating.Count))+" reviews")))
	if p.Image != "" {
		lines = append(lines, styles.DimStyle.Render(truncate.StringWithTail(p.Image, uint(contentWidth), "…")))
	}
	lines = append(lines, "")
	lines = append(lines, strings.Split(wordwrap.String(p.Description, contentWidth), "\n")...)

	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
		lines[contentHeight-1] = styles.DimStyle.Render("…")
	}

	return style.Width(contentWidth + InspectorPadding).Height(contentHeight).
		Render(strings.Join(lines, "\n"))
}
