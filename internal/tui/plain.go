package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/nador/internal/catalog"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui/styles"
)

// PlainOptions configure the non-interactive printer
type PlainOptions struct {
	DescriptionWidth int
}

// RunPlain loads the catalog once, applies the store's filter and prints the
// result to out. Load failures go to errOut; the returned error joins them so
// the caller can exit non-zero. A product list that failed to load prints
// nothing to out.
func RunPlain(ctx context.Context, svc *catalog.Service, store *catalog.Store, out, errOut io.Writer, opts PlainOptions) error {
	r := svc.LoadCatalog(ctx, store)
	for _, err := range []error{r.ProductsErr, r.CategoriesErr} {
		if err != nil {
			fmt.Fprintln(errOut, styles.ErrorStyle.Render("error: "+err.Error()))
		}
	}

	if store.CategoriesState() == catalog.LoadLoaded {
		PrintCategories(out, store.Categories(), store.Filter().Category)
	}
	if store.HasProducts() {
		PrintProducts(out, store.FilteredProducts(), opts)
	}
	return r.Err()
}

// PrintCategories writes the category list on one line, marking the selection
func PrintCategories(w io.Writer, categories []string, selected string) {
	labels := make([]string, len(categories))
	for i, c := range categories {
		if c == selected {
			labels[i] = styles.AccentStyle.Render("[" + c + "]")
		} else {
			labels[i] = c
		}
	}
	fmt.Fprintln(w, styles.DimStyle.Render("Categories:")+" "+strings.Join(labels, " | "))
}

// PrintProducts writes products as a table, or the empty-state text
func PrintProducts(w io.Writer, products []domain.Product, opts PlainOptions) {
	if len(products) == 0 {
		fmt.Fprintln(w, EmptyStateText)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.DimStyle).
		Headers("#ID", "Title", "Price", "Description", "Category", "Image", "Rating").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TitleStyle.Padding(0, 1)
			}
			if col == 2 {
				return styles.PriceStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, p := range products {
		t.Row(
			p.IDString(),
			p.Title,
			p.FormattedPrice(),
			p.ShortDescription(opts.DescriptionWidth),
			p.Category,
			p.Image,
			fmt.Sprintf("%.1f (%s)", p.Rating.Rate, humanize.Comma(int64(p.Rating.Count))),
		)
	}
	fmt.Fprintln(w, t.Render())
}
