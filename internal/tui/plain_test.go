package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mmcdole/nador/internal/adapter"
	"github.com/mmcdole/nador/internal/catalog"
	"github.com/mmcdole/nador/internal/domain"
)

func TestRunPlain(t *testing.T) {
	productsErr := &domain.SourceError{
		Resource: domain.ResourceProducts,
		Err:      fmt.Errorf("%w: unexpected status 502", domain.ErrFetchFailed),
	}
	categoriesErr := &domain.SourceError{
		Resource: domain.ResourceCategories,
		Err:      fmt.Errorf("%w: invalid character", domain.ErrParseFailed),
	}

	tests := []struct {
		name       string
		repo       *stubRepo
		filter     catalog.FilterState
		wantErr    error
		wantOut    []string
		notOut     []string
		wantErrOut []string
	}{
		{
			name:    "all products",
			repo:    &stubRepo{products: fixtureProducts, categories: fixtureCategories},
			filter:  catalog.DefaultFilter(),
			wantOut: []string{"[All]", "electronics", "Fjallraven Backpack", "109.95$", "WD 2TB", "120"},
		},
		{
			name:    "filtered",
			repo:    &stubRepo{products: fixtureProducts, categories: fixtureCategories},
			filter:  catalog.FilterState{Category: "men's clothing", Search: "  JACKET "},
			wantOut: []string{"[men's clothing]", "Mens Cotton Jacket"},
			notOut:  []string{"Fjallraven", "WD 2TB"},
		},
		{
			name:    "no matches",
			repo:    &stubRepo{products: fixtureProducts, categories: fixtureCategories},
			filter:  catalog.FilterState{Category: domain.CategoryAll, Search: "zzz"},
			wantOut: []string{EmptyStateText},
		},
		{
			name:       "products fail",
			repo:       &stubRepo{categories: fixtureCategories, productsErr: productsErr},
			filter:     catalog.DefaultFilter(),
			wantErr:    domain.ErrFetchFailed,
			wantOut:    []string{"electronics"},
			notOut:     []string{EmptyStateText},
			wantErrOut: []string{"loading products", "502"},
		},
		{
			name:       "categories fail",
			repo:       &stubRepo{products: fixtureProducts, categoriesErr: categoriesErr},
			filter:     catalog.DefaultFilter(),
			wantErr:    domain.ErrParseFailed,
			wantOut:    []string{"Fjallraven Backpack"},
			notOut:     []string{"Categories:"},
			wantErrOut: []string{"loading categories"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := catalog.NewStore()
			store.SetFilter(tt.filter)
			svc := catalog.NewService(tt.repo, adapter.NullLogger())

			var out, errOut bytes.Buffer
			err := RunPlain(context.Background(), svc, store, &out, &errOut, PlainOptions{DescriptionWidth: 100})

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("stdout missing %q:\n%s", want, out.String())
				}
			}
			for _, unwanted := range tt.notOut {
				if strings.Contains(out.String(), unwanted) {
					t.Errorf("stdout should not contain %q:\n%s", unwanted, out.String())
				}
			}
			for _, want := range tt.wantErrOut {
				if !strings.Contains(errOut.String(), want) {
					t.Errorf("stderr missing %q:\n%s", want, errOut.String())
				}
			}
		})
	}
}

func TestPrintProductsTruncatesDescription(t *testing.T) {
	p := domain.Product{
		ID:          4,
		Title:       "Mens Casual Slim Fit",
		Price:       15.99,
		Description: "The color could be slightly different between on the screen and in practice.",
		Category:    "men's clothing",
	}

	var out bytes.Buffer
	PrintProducts(&out, []domain.Product{p}, PlainOptions{DescriptionWidth: 9})

	if !strings.Contains(out.String(), "The color...") {
		t.Errorf("description not truncated:\n%s", out.String())
	}
	if strings.Contains(out.String(), "practice") {
		t.Errorf("description should be cut:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "15.99$") {
		t.Errorf("price not formatted:\n%s", out.String())
	}
}
