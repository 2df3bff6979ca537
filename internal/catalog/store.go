package catalog

import (
	"slices"

	"github.com/mmcdole/nador/internal/domain"
)

// LoadState tracks one half of the catalog (products or categories)
type LoadState int

const (
	LoadIdle    LoadState = iota // Never requested
	LoadPending                  // Fetch in flight
	LoadLoaded                   // Last fetch succeeded
	LoadFailed                   // Last fetch failed; prior data kept
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadLoaded:
		return "loaded"
	case LoadFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Store owns the catalog data and the filter inputs, and keeps the filtered
// view in sync with them. Every mutation recomputes the view before
// returning, so FilteredProducts never observes stale state.
//
// Store is not safe for concurrent use: it is meant to be mutated from a
// single goroutine (the TUI update loop, or the caller of Service.LoadCatalog).
type Store struct {
	products   []domain.Product
	categories []string
	filter     FilterState
	filtered   []domain.Product

	productsState   LoadState
	categoriesState LoadState
	productsErr     error
	categoriesErr   error
}

// NewStore creates an empty store with the default filter
func NewStore() *Store {
	s := &Store{filter: DefaultFilter()}
	s.recompute()
	return s
}

func (s *Store) recompute() {
	s.filtered = ComputeFilteredView(s.products, s.filter)
}

// === Reads ===

// Products returns the full product list in source order
func (s *Store) Products() []domain.Product {
	return slices.Clone(s.products)
}

// Categories returns the category list presented to the user ("All" first),
// or nil before the first successful category load
func (s *Store) Categories() []string {
	return slices.Clone(s.categories)
}

// Filter returns the current filter inputs
func (s *Store) Filter() FilterState {
	return s.filter
}

// FilteredProducts returns the current derived view. Read-only.
func (s *Store) FilteredProducts() []domain.Product {
	return slices.Clone(s.filtered)
}

// FilteredLen returns the size of the derived view without copying it
func (s *Store) FilteredLen() int {
	return len(s.filtered)
}

// ProductsLen returns the size of the full product list without copying it
func (s *Store) ProductsLen() int {
	return len(s.products)
}

// CategoryCounts returns the number of loaded products per category, with the
// total under "All"
func (s *Store) CategoryCounts() map[string]int {
	return CountByCategory(s.products)
}

// Suggestions returns up to limit product titles loosely matching the current
// search text
func (s *Store) Suggestions(limit int) []string {
	return Suggest(s.filter.Search, s.products, limit)
}

// FilteredAt returns the i-th product of the derived view
func (s *Store) FilteredAt(i int) (domain.Product, bool) {
	if i < 0 || i >= len(s.filtered) {
		return domain.Product{}, false
	}
	return s.filtered[i], true
}

// ProductsState returns the load state of the product list
func (s *Store) ProductsState() LoadState { return s.productsState }

// CategoriesState returns the load state of the category list
func (s *Store) CategoriesState() LoadState { return s.categoriesState }

// ProductsErr returns the failure of the last product load, if any
func (s *Store) ProductsErr() error { return s.productsErr }

// CategoriesErr returns the failure of the last category load, if any
func (s *Store) CategoriesErr() error { return s.categoriesErr }

// Loading reports whether either fetch is still in flight
func (s *Store) Loading() bool {
	return s.productsState == LoadPending || s.categoriesState == LoadPending
}

// HasProducts reports whether a product list has been loaded at least once.
// Before that the view shows a loading or failed state rather than "no results".
func (s *Store) HasProducts() bool {
	return s.products != nil
}

// === Filter mutations (never fail) ===

// SetCategory replaces the selected category. Unknown categories are allowed
// and simply yield an empty view.
func (s *Store) SetCategory(category string) {
	s.filter.Category = category
	s.recompute()
}

// SetSearchText replaces the search text verbatim
func (s *Store) SetSearchText(text string) {
	s.filter.Search = text
	s.recompute()
}

// SetFilter replaces both filter inputs at once
func (s *Store) SetFilter(f FilterState) {
	s.filter = f
	s.recompute()
}

// === Load mutations ===

// BeginLoad marks both halves as in flight. Existing data stays visible.
func (s *Store) BeginLoad() {
	s.productsState = LoadPending
	s.categoriesState = LoadPending
}

// SetProducts replaces the product list wholesale
func (s *Store) SetProducts(products []domain.Product) {
	if products == nil {
		products = []domain.Product{}
	}
	s.products = slices.Clone(products)
	s.productsState = LoadLoaded
	s.productsErr = nil
	s.recompute()
}

// SetCategories stores "All" followed by the source categories
func (s *Store) SetCategories(categories []string) {
	s.categories = domain.WithAll(categories)
	s.categoriesState = LoadLoaded
	s.categoriesErr = nil
}

// FailProducts records a failed product load; the prior list is kept
func (s *Store) FailProducts(err error) {
	s.productsState = LoadFailed
	s.productsErr = err
}

// FailCategories records a failed category load; the prior list is kept
func (s *Store) FailCategories(err error) {
	s.categoriesState = LoadFailed
	s.categoriesErr = err
}

// ApplyProducts merges one product fetch outcome
func (s *Store) ApplyProducts(products []domain.Product, err error) {
	if err != nil {
		s.FailProducts(err)
		return
	}
	s.SetProducts(products)
}

// ApplyCategories merges one category fetch outcome
func (s *Store) ApplyCategories(categories []string, err error) {
	if err != nil {
		s.FailCategories(err)
		return
	}
	s.SetCategories(categories)
}

// Apply merges both outcomes of a load independently
func (s *Store) Apply(r LoadResult) {
	s.ApplyProducts(r.Products, r.ProductsErr)
	s.ApplyCategories(r.Categories, r.CategoriesErr)
}
