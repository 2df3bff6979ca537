package domain

import "context"

// CatalogRepository provides read-only access to the remote catalog.
// Each call returns a complete snapshot; there is no pagination contract.
type CatalogRepository interface {
	// GetProducts returns all products in source order
	GetProducts(ctx context.Context) ([]Product, error)

	// GetCategories returns the category labels in source order (without "All")
	GetCategories(ctx context.Context) ([]string, error)
}
