// Package catalog is the HTTP client for the upstream tourist-information
// catalog. It implements listing.CatalogSource with retry and circuit
// breaker protection.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/sony/gobreaker"

	"tourcatalog/internal/config"
	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/observability/tracing"
	"tourcatalog/internal/resilience/circuitbreaker"
	"tourcatalog/internal/resilience/retry"
	"tourcatalog/internal/usecase/listing"
)

const maxResponseBytes = 4 << 20 // 4 MiB

// Client talks to the catalog listing endpoints.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	logger         *slog.Logger
}

// New creates a catalog client from configuration.
func New(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		circuitBreaker: circuitbreaker.New(circuitbreaker.CatalogConfig()),
		retryConfig:    retry.CatalogConfig(),
		logger:         logger,
	}
}

// Search fetches one page of keyword search results.
func (c *Client) Search(ctx context.Context, q listing.Query, page, pageSize int) (*listing.CatalogPage, error) {
	return c.fetchPage(ctx, "search", q, page, pageSize)
}

// List fetches one page of area/category browse results.
func (c *Client) List(ctx context.Context, q listing.Query, page, pageSize int) (*listing.CatalogPage, error) {
	return c.fetchPage(ctx, "places", q, page, pageSize)
}

func (c *Client) fetchPage(ctx context.Context, endpoint string, q listing.Query, page, pageSize int) (*listing.CatalogPage, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "catalog."+endpoint)
	defer span.End()
	span.SetAttributes(
		attribute.Int("catalog.page", page),
		attribute.Int("catalog.page_size", pageSize),
		attribute.String("catalog.area_code", q.AreaCode),
	)

	reqURL := c.buildURL(endpoint, q, page, pageSize)

	var result *listing.CatalogPage
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doFetch(ctx, reqURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				c.logger.Warn("catalog circuit breaker open, request rejected",
					"endpoint", endpoint,
					"state", c.circuitBreaker.State().String())
			}
			return err
		}
		result = cbResult.(*listing.CatalogPage)
		return nil
	})
	if retryErr != nil {
		span.SetStatus(codes.Error, retryErr.Error())
		return nil, fmt.Errorf("catalog %s page %d: %w", endpoint, page, retryErr)
	}

	result.PageNo = page
	result.PageSize = pageSize
	span.SetAttributes(
		attribute.Int("catalog.items", len(result.Items)),
		attribute.Int64("catalog.total_count", result.TotalCount),
	)
	return result, nil
}

func (c *Client) buildURL(endpoint string, q listing.Query, page, pageSize int) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if endpoint == "search" {
		params.Set("keyword", strings.TrimSpace(q.Keyword))
	}
	if q.AreaCode != "" {
		params.Set("areaCode", q.AreaCode)
	}
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}
	return c.baseURL + "/" + endpoint + "?" + params.Encode()
}

// doFetch performs one HTTP request without retry or circuit breaker.
func (c *Client) doFetch(ctx context.Context, reqURL string) (*listing.CatalogPage, error) {
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
			Message:    "catalog request failed",
		}
	}

	var body pageResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := &listing.CatalogPage{
		Items:      make([]*entity.Place, 0, len(body.Items)),
		TotalCount: body.TotalCount,
	}
	for _, it := range body.Items {
		out.Items = append(out.Items, it.toPlace())
	}
	return out, nil
}
