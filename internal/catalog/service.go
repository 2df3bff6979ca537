package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmcdole/nador/internal/domain"
	"github.com/sourcegraph/conc"
)

// LoadResult holds the two independent outcomes of a catalog load.
// Either half may fail while the other succeeds.
type LoadResult struct {
	Products      []domain.Product
	Categories    []string
	ProductsErr   error
	CategoriesErr error
}

// Err joins the failures of both halves (nil when both succeeded)
func (r LoadResult) Err() error {
	return errors.Join(r.ProductsErr, r.CategoriesErr)
}

// Service fetches the catalog from the repository
type Service struct {
	repo   domain.CatalogRepository
	logger *slog.Logger
}

// NewService creates a new catalog service
func NewService(repo domain.CatalogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// FetchProducts fetches the full product list. Failures are logged and
// returned as *domain.SourceError wrapping ErrFetchFailed or ErrParseFailed.
func (s *Service) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		err = classify(domain.ResourceProducts, err)
		s.logger.Error("failed to fetch products", "error", err)
		return nil, err
	}
	s.logger.Info("loaded products", "count", len(products))
	return products, nil
}

// FetchCategories fetches the category labels (without "All")
func (s *Service) FetchCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		err = classify(domain.ResourceCategories, err)
		s.logger.Error("failed to fetch categories", "error", err)
		return nil, err
	}
	s.logger.Info("loaded categories", "count", len(categories))
	return categories, nil
}

// partResult carries one finished fetch back to the calling goroutine
type partResult struct {
	resource   domain.Resource
	products   []domain.Product
	categories []string
	err        error
}

// LoadCatalog issues the product and category fetches concurrently. Neither
// waits for the other. If store is non-nil, each outcome is applied to it on
// the calling goroutine in completion order, so the store keeps a single
// writer. There is no retry: calling LoadCatalog again starts fresh fetches.
func (s *Service) LoadCatalog(ctx context.Context, store *Store) LoadResult {
	if store != nil {
		store.BeginLoad()
	}

	results := make(chan partResult, 2)
	var wg conc.WaitGroup

	wg.Go(func() {
		part := partResult{resource: domain.ResourceProducts, err: aborted(domain.ResourceProducts)}
		defer func() { results <- part }()
		part.products, part.err = s.FetchProducts(ctx)
	})
	wg.Go(func() {
		part := partResult{resource: domain.ResourceCategories, err: aborted(domain.ResourceCategories)}
		defer func() { results <- part }()
		part.categories, part.err = s.FetchCategories(ctx)
	})

	var r LoadResult
	for range 2 {
		part := <-results
		switch part.resource {
		case domain.ResourceProducts:
			r.Products, r.ProductsErr = part.products, part.err
			if store != nil {
				store.ApplyProducts(part.products, part.err)
			}
		case domain.ResourceCategories:
			r.Categories, r.CategoriesErr = part.categories, part.err
			if store != nil {
				store.ApplyCategories(part.categories, part.err)
			}
		}
	}

	// Re-panics if a fetch panicked
	wg.Wait()
	return r
}

// classify makes sure every load failure names its resource and wraps one of
// the two failure kinds. Unknown errors count as fetch failures.
func classify(resource domain.Resource, err error) error {
	var srcErr *domain.SourceError
	if errors.As(err, &srcErr) {
		return err
	}
	if !errors.Is(err, domain.ErrFetchFailed) && !errors.Is(err, domain.ErrParseFailed) {
		err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	return &domain.SourceError{Resource: resource, Err: err}
}

func aborted(resource domain.Resource) error {
	return &domain.SourceError{
		Resource: resource,
		Err:      fmt.Errorf("%w: fetch aborted", domain.ErrFetchFailed),
	}
}
