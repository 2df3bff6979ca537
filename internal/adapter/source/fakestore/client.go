package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mmcdole/nador/internal/domain"
)

const (
	productsPath   = "/products"
	categoriesPath = "/products/categories"
	userAgent      = "Nador/1.0"
)

// Client implements domain.CatalogRepository for the Fake Store API
// (and any service exposing the same two endpoints)
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewClient creates a new catalog API client. A zero timeout means requests
// run until the server answers or the context is cancelled.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// SetUserAgent overrides the User-Agent header sent with every request
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// doRequest performs a GET and returns the body of a 200 response.
// Transport failures and unexpected statuses wrap domain.ErrFetchFailed.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrFetchFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "url", reqURL, "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	return body, nil
}

// decodeArray unmarshals a JSON array body. A JSON null is rejected since the
// contract is a complete snapshot, not an absent one.
func decodeArray[T any](body []byte, dest *[]T) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrParseFailed, err)
	}
	if *dest == nil {
		return fmt.Errorf("%w: expected a JSON array", domain.ErrParseFailed)
	}
	return nil
}

// GetProducts returns all products in source order
func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.doRequest(ctx, productsPath)
	if err != nil {
		return nil, &domain.SourceError{Resource: domain.ResourceProducts, Err: err}
	}

	var dtos []Product
	if err := decodeArray(body, &dtos); err != nil {
		c.logger.Error("JSON parse error", "resource", domain.ResourceProducts, "error", err, "bodyLen", len(body))
		return nil, &domain.SourceError{Resource: domain.ResourceProducts, Err: err}
	}

	for i := range dtos {
		if err := c.validate.Struct(dtos[i]); err != nil {
			c.logger.Error("invalid product record", "index", i, "error", err)
			return nil, &domain.SourceError{
				Resource: domain.ResourceProducts,
				Err:      fmt.Errorf("%w: product at index %d: %v", domain.ErrParseFailed, i, err),
			}
		}
	}

	return MapProducts(dtos), nil
}

// GetCategories returns the category labels in source order
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	body, err := c.doRequest(ctx, categoriesPath)
	if err != nil {
		return nil, &domain.SourceError{Resource: domain.ResourceCategories, Err: err}
	}

	var categories []string
	if err := decodeArray(body, &categories); err != nil {
		c.logger.Error("JSON parse error", "resource", domain.ResourceCategories, "error", err, "bodyLen", len(body))
		return nil, &domain.SourceError{Resource: domain.ResourceCategories, Err: err}
	}

	if err := c.validate.Var(categories, "dive,required"); err != nil {
		c.logger.Error("invalid category list", "error", err)
		return nil, &domain.SourceError{
			Resource: domain.ResourceCategories,
			Err:      fmt.Errorf("%w: %v", domain.ErrParseFailed, err),
		}
	}

	return categories, nil
}
