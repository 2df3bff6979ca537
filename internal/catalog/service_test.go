package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mmcdole/nador/internal/domain"
)

// fakeRepo is an in-memory CatalogRepository. Optional gates let a test hold
// one fetch open while the other completes.
type fakeRepo struct {
	products      []domain.Product
	categories    []string
	productsErr   error
	categoriesErr error

	productsGate   chan struct{}
	categoriesDone chan struct{}
}

func (f *fakeRepo) GetProducts(ctx context.Context) ([]domain.Product, error) {
	if f.productsGate != nil {
		<-f.productsGate
	}
	return f.products, f.productsErr
}

func (f *fakeRepo) GetCategories(ctx context.Context) ([]string, error) {
	if f.categoriesDone != nil {
		defer close(f.categoriesDone)
	}
	return f.categories, f.categoriesErr
}

func TestLoadCatalogSuccess(t *testing.T) {
	repo := &fakeRepo{products: scenarioProducts(), categories: []string{"shoes", "hats"}}
	svc := NewService(repo, nil)
	store := NewStore()

	r := svc.LoadCatalog(context.Background(), store)
	if err := r.Err(); err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := ids(store.FilteredProducts()); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("FilteredProducts() = %v", got)
	}
	if got := store.Categories(); !reflect.DeepEqual(got, []string{"All", "shoes", "hats"}) {
		t.Fatalf("Categories() = %v", got)
	}
	if store.Loading() {
		t.Fatal("Loading() = true after LoadCatalog")
	}
}

func TestLoadCatalogProductsFailCategoriesSucceed(t *testing.T) {
	repo := &fakeRepo{
		productsErr: errors.New("connection refused"),
		categories:  []string{"shoes", "hats"},
	}
	store := NewStore()

	r := NewService(repo, nil).LoadCatalog(context.Background(), store)

	if r.CategoriesErr != nil {
		t.Fatalf("CategoriesErr = %v, want nil", r.CategoriesErr)
	}
	if !errors.Is(r.ProductsErr, domain.ErrFetchFailed) {
		t.Fatalf("ProductsErr = %v, want ErrFetchFailed", r.ProductsErr)
	}
	var srcErr *domain.SourceError
	if !errors.As(r.ProductsErr, &srcErr) || srcErr.Resource != domain.ResourceProducts {
		t.Fatalf("ProductsErr = %#v, want SourceError for products", r.ProductsErr)
	}

	if got := store.Categories(); !reflect.DeepEqual(got, []string{"All", "shoes", "hats"}) {
		t.Fatalf("Categories() = %v", got)
	}
	if len(store.Products()) != 0 || store.HasProducts() {
		t.Fatalf("Products() = %v, want empty", store.Products())
	}
	if store.ProductsState() != LoadFailed {
		t.Fatalf("ProductsState() = %v", store.ProductsState())
	}
}

func TestLoadCatalogCategoriesFailProductsSucceed(t *testing.T) {
	parseErr := &domain.SourceError{Resource: domain.ResourceCategories, Err: domain.ErrParseFailed}
	repo := &fakeRepo{products: scenarioProducts(), categoriesErr: parseErr}
	store := NewStore()

	r := NewService(repo, nil).LoadCatalog(context.Background(), store)

	if r.ProductsErr != nil {
		t.Fatalf("ProductsErr = %v", r.ProductsErr)
	}
	if !errors.Is(r.CategoriesErr, domain.ErrParseFailed) {
		t.Fatalf("CategoriesErr = %v, want ErrParseFailed", r.CategoriesErr)
	}
	if !errors.Is(r.Err(), domain.ErrParseFailed) {
		t.Fatalf("Err() = %v", r.Err())
	}
	if store.FilteredLen() != 2 || store.Categories() != nil {
		t.Fatalf("filtered=%d categories=%v", store.FilteredLen(), store.Categories())
	}
}

func TestLoadCatalogFetchesAreIndependent(t *testing.T) {
	// Products stay blocked until categories have been fetched; a loader that
	// fetched products first and waited on them would never finish.
	repo := &fakeRepo{
		products:       scenarioProducts(),
		categories:     []string{"shoes"},
		productsGate:   make(chan struct{}),
		categoriesDone: make(chan struct{}),
	}

	done := make(chan LoadResult, 1)
	go func() {
		done <- NewService(repo, nil).LoadCatalog(context.Background(), nil)
	}()

	select {
	case <-repo.categoriesDone:
	case <-time.After(5 * time.Second):
		t.Fatal("categories were not fetched while products were blocked")
	}
	close(repo.productsGate)

	select {
	case r := <-done:
		if r.Err() != nil {
			t.Fatalf("LoadCatalog() error = %v", r.Err())
		}
		if len(r.Products) != 2 || !reflect.DeepEqual(r.Categories, []string{"shoes"}) {
			t.Fatalf("result = %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("LoadCatalog did not finish")
	}
}

func TestLoadCatalogRetryStartsFresh(t *testing.T) {
	repo := &fakeRepo{productsErr: errors.New("down"), categoriesErr: errors.New("down")}
	svc := NewService(repo, nil)
	store := NewStore()

	if r := svc.LoadCatalog(context.Background(), store); r.Err() == nil {
		t.Fatal("first load: want error")
	}

	repo.productsErr, repo.categoriesErr = nil, nil
	repo.products, repo.categories = scenarioProducts(), []string{"shoes", "hats"}

	if r := svc.LoadCatalog(context.Background(), store); r.Err() != nil {
		t.Fatalf("retry error = %v", r.Err())
	}
	if store.ProductsErr() != nil || store.FilteredLen() != 2 {
		t.Fatalf("retry not applied: err=%v len=%d", store.ProductsErr(), store.FilteredLen())
	}
}

func TestClassify(t *testing.T) {
	plain := errors.New("boom")
	err := classify(domain.ResourceProducts, plain)
	if !errors.Is(err, domain.ErrFetchFailed) || !errors.Is(err, plain) {
		t.Fatalf("classify(plain) = %v", err)
	}

	parse := &domain.SourceError{Resource: domain.ResourceCategories, Err: domain.ErrParseFailed}
	if got := classify(domain.ResourceProducts, parse); got != error(parse) {
		t.Fatalf("classify(SourceError) rewrapped: %v", got)
	}
}
