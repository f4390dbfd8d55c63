// Package detail is the HTTP client for the per-item detail endpoint used as
// an annotation fallback. It implements listing.DetailSource.
package detail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"tourcatalog/internal/config"
	"tourcatalog/internal/resilience/circuitbreaker"
	"tourcatalog/internal/resilience/retry"
	"tourcatalog/internal/usecase/listing"
)

const maxResponseBytes = 1 << 20 // 1 MiB

// Client fetches detail records one item at a time. The fallback resolution
// path fans out one call per listed item, so all calls pass through a shared
// rate limiter to keep page bursts within the upstream's quota.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	limiter        *rate.Limiter
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	logger         *slog.Logger
}

// New creates a detail client from configuration.
func New(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	base := cfg.DetailBaseURL
	if base == "" {
		base = cfg.BaseURL
	}
	burst := cfg.DetailBurst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL:        strings.TrimRight(base, "/"),
		apiKey:         cfg.APIKey,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		limiter:        rate.NewLimiter(rate.Limit(cfg.DetailRateLimit), burst),
		circuitBreaker: circuitbreaker.New(circuitbreaker.DetailConfig()),
		retryConfig:    retry.DetailConfig(),
		logger:         logger,
	}
}

// GetDetail fetches the detail record for one content item. It blocks until
// the rate limiter admits the request or the context is cancelled.
func (c *Client) GetDetail(ctx context.Context, contentID, category string) (*listing.DetailInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("detail rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("contentId", contentID)
	if category != "" {
		params.Set("category", category)
	}
	reqURL := c.baseURL + "/detail?" + params.Encode()

	var info *listing.DetailInfo
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doFetch(ctx, reqURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				c.logger.Warn("detail circuit breaker open, request rejected",
					"content_id", contentID,
					"state", c.circuitBreaker.State().String())
			}
			return err
		}
		info = cbResult.(*listing.DetailInfo)
		return nil
	})
	if retryErr != nil {
		return nil, fmt.Errorf("detail %s: %w", contentID, retryErr)
	}
	return info, nil
}

func (c *Client) doFetch(ctx context.Context, reqURL string) (*listing.DetailInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    "detail request failed",
		}
	}

	var body detailResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &listing.DetailInfo{RawPetAttribute: body.petAttribute()}, nil
}

// detailResponse mirrors one upstream detail record. The pet admission
// signal has moved between fields across upstream versions; both are read.
type detailResponse struct {
	ContentID   any    `json:"contentId"`
	PetCulture  string `json:"chkpetculture"`
	PetPossible string `json:"petPossible"`
}

func (d detailResponse) petAttribute() string {
	if d.PetCulture != "" {
		return d.PetCulture
	}
	return d.PetPossible
}
