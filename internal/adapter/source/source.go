package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/nador/internal/adapter"
	"github.com/mmcdole/nador/internal/adapter/source/fakestore"
	"github.com/mmcdole/nador/internal/domain"
)

// NewClient creates the catalog repository for the configured source.
// This factory keeps callers independent of the concrete HTTP client.
func NewClient(cfg *adapter.SourceConfig, logger *slog.Logger) (domain.CatalogRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported source URL scheme: %q", u.Scheme)
	}

	client := fakestore.NewClient(cfg.URL, cfg.Timeout, logger)
	client.SetUserAgent(cfg.UserAgent)
	return client, nil
}

// NewClientFromConfig creates a CatalogRepository from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogRepository, error) {
	return NewClient(&cfg.Source, logger)
}
