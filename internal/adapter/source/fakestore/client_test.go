package fakestore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmcdole/nador/internal/domain"
)

const productsJSON = `[
  {"id":1,"title":"Red Shoe","price":109.95,"description":"A red shoe","category":"shoes",
   "image":"https://fakestoreapi.com/img/1.jpg","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"Blue Hat","price":22.3,"description":"A blue hat","category":"hats",
   "image":"https://fakestoreapi.com/img/2.jpg","rating":{"rate":4.1,"count":259}}
]`

func newTestServer(t *testing.T, routes map[string]func(http.ResponseWriter, *http.Request)) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func respond(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestGetProducts(t *testing.T) {
	var gotUA, gotAccept string
	ts := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/products": func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			respond(http.StatusOK, productsJSON)(w, r)
		},
	})

	c := NewClient(ts.URL+"/", 0, nil)
	c.SetUserAgent("nador-test")

	products, err := c.GetProducts(context.Background())
	if err != nil {
		t.Fatalf("GetProducts() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}

	want := domain.Product{
		ID:          1,
		Title:       "Red Shoe",
		Price:       109.95,
		Description: "A red shoe",
		Category:    "shoes",
		Image:       "https://fakestoreapi.com/img/1.jpg",
		Rating:      domain.Rating{Rate: 3.9, Count: 120},
	}
	if products[0] != want {
		t.Errorf("products[0] = %+v, want %+v", products[0], want)
	}
	if products[1].ID != 2 {
		t.Errorf("order not preserved: %+v", products)
	}
	if gotUA != "nador-test" || gotAccept != "application/json" {
		t.Errorf("headers: User-Agent=%q Accept=%q", gotUA, gotAccept)
	}
}

func TestGetCategories(t *testing.T) {
	ts := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/products/categories": respond(http.StatusOK, `["shoes","hats"]`),
	})

	cats, err := NewClient(ts.URL, 0, nil).GetCategories(context.Background())
	if err != nil {
		t.Fatalf("GetCategories() error = %v", err)
	}
	if len(cats) != 2 || cats[0] != "shoes" || cats[1] != "hats" {
		t.Fatalf("GetCategories() = %v", cats)
	}
}

func TestClientFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		resource domain.Resource
	}{
		{
			name: "products server error", status: http.StatusInternalServerError, body: `oops`,
			wantErr: domain.ErrFetchFailed, resource: domain.ResourceProducts,
		},
		{
			name: "products malformed json", status: http.StatusOK, body: `[{"id":1,`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceProducts,
		},
		{
			name: "products object instead of array", status: http.StatusOK, body: `{"id":1}`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceProducts,
		},
		{
			name: "products null", status: http.StatusOK, body: `null`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceProducts,
		},
		{
			name: "products missing id", status: http.StatusOK, body: `[{"title":"x","price":1,"category":"c"}]`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceProducts,
		},
		{
			name: "products negative price", status: http.StatusOK, body: `[{"id":1,"price":-1,"category":"c"}]`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceProducts,
		},
		{
			name: "products rating out of range", status: http.StatusOK,
			body:    `[{"id":1,"price":1,"category":"c","rating":{"rate":9,"count":1}}]`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceProducts,
		},
		{
			name: "categories not found", status: http.StatusNotFound, body: ``,
			wantErr: domain.ErrFetchFailed, resource: domain.ResourceCategories,
		},
		{
			name: "categories wrong element type", status: http.StatusOK, body: `[1,2]`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceCategories,
		},
		{
			name: "categories empty label", status: http.StatusOK, body: `["shoes",""]`,
			wantErr: domain.ErrParseFailed, resource: domain.ResourceCategories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
				"/products":            respond(tt.status, tt.body),
				"/products/categories": respond(tt.status, tt.body),
			})
			c := NewClient(ts.URL, 0, nil)

			var err error
			if tt.resource == domain.ResourceProducts {
				_, err = c.GetProducts(context.Background())
			} else {
				_, err = c.GetCategories(context.Background())
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var srcErr *domain.SourceError
			if !errors.As(err, &srcErr) || srcErr.Resource != tt.resource {
				t.Fatalf("error = %#v, want SourceError for %s", err, tt.resource)
			}
		})
	}
}

func TestEmptyArrayIsValid(t *testing.T) {
	ts := newTestServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/products": respond(http.StatusOK, `[]`),
	})

	products, err := NewClient(ts.URL, 0, nil).GetProducts(context.Background())
	if err != nil {
		t.Fatalf("GetProducts() error = %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("GetProducts() = %v, want empty", products)
	}
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewClient(url, 0, nil).GetProducts(context.Background())
	if !errors.Is(err, domain.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
}
