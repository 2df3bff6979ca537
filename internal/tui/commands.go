package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nador/internal/catalog"
	"github.com/mmcdole/nador/internal/domain"
)

// Command factories for async operations. Fetches carry no deadline; the
// source client's own timeout (if configured) is the only bound.

// ImageOpener launches an external viewer for an image URL
type ImageOpener interface {
	Open(url string) error
}

// LoadProductsCmd fetches the product list
func LoadProductsCmd(svc *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		products, err := svc.FetchProducts(context.Background())
		return ProductsLoadedMsg{Products: products, Err: err}
	}
}

// LoadCategoriesCmd fetches the category list
func LoadCategoriesCmd(svc *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		categories, err := svc.FetchCategories(context.Background())
		return CategoriesLoadedMsg{Categories: categories, Err: err}
	}
}

// LoadCatalogCmd runs both fetches concurrently; each reports on its own
func LoadCatalogCmd(svc *catalog.Service) tea.Cmd {
	return tea.Batch(
		LoadProductsCmd(svc),
		LoadCategoriesCmd(svc),
	)
}

// OpenImageCmd opens the product image in the configured viewer
func OpenImageCmd(opener ImageOpener, p domain.Product) tea.Cmd {
	return func() tea.Msg {
		return ImageOpenedMsg{Product: p, Err: opener.Open(p.Image)}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
