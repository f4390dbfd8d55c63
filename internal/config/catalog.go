// Package config holds typed application configuration loaded from the
// environment at startup.
package config

import (
	"fmt"
	"time"

	pkgconfig "tourcatalog/pkg/config"
)

// CatalogConfig holds configuration for the upstream catalog service and the
// per-item detail endpoint.
type CatalogConfig struct {
	// BaseURL is the catalog service endpoint, e.g. "https://api.example.com/catalog/v1".
	BaseURL string

	// DetailBaseURL is the per-item detail endpoint. Defaults to BaseURL.
	DetailBaseURL string

	// APIKey authenticates against the catalog service.
	APIKey string

	// PageSize is the number of raw items requested per catalog page.
	// Default: 20
	PageSize int

	// Timeout is the per-request HTTP timeout for catalog calls.
	// Default: 10s
	Timeout time.Duration

	// DetailRateLimit is the maximum detail fallback lookups per second.
	// The fallback path issues one call per listed item; this cap keeps a
	// burst of page loads from hammering the detail endpoint.
	// Default: 20
	DetailRateLimit float64

	// DetailBurst is the rate limiter burst size. Default: equals PageSize.
	DetailBurst int
}

// LoadCatalogConfig loads catalog configuration from environment variables:
//
//	CATALOG_BASE_URL, CATALOG_DETAIL_BASE_URL, CATALOG_API_KEY,
//	CATALOG_PAGE_SIZE, CATALOG_TIMEOUT, DETAIL_RATE_LIMIT, DETAIL_BURST
func LoadCatalogConfig() (CatalogConfig, error) {
	cfg := CatalogConfig{
		BaseURL:         pkgconfig.GetEnvString("CATALOG_BASE_URL", ""),
		APIKey:          pkgconfig.GetEnvString("CATALOG_API_KEY", ""),
		PageSize:        pkgconfig.GetEnvInt("CATALOG_PAGE_SIZE", 20),
		Timeout:         pkgconfig.GetEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
		DetailRateLimit: pkgconfig.GetEnvFloat("DETAIL_RATE_LIMIT", 20),
	}
	cfg.DetailBaseURL = pkgconfig.GetEnvString("CATALOG_DETAIL_BASE_URL", cfg.BaseURL)
	cfg.DetailBurst = pkgconfig.GetEnvInt("DETAIL_BURST", cfg.PageSize)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for startup errors.
func (c CatalogConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL must be set")
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid CATALOG_TIMEOUT: %w", err)
	}
	if c.DetailRateLimit <= 0 {
		return fmt.Errorf("DETAIL_RATE_LIMIT must be positive, got %v", c.DetailRateLimit)
	}
	return nil
}
