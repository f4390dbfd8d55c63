// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Business metrics track application-specific operations
var (
	// CatalogRequestsTotal counts catalog source calls by operation and status
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog source requests",
		},
		[]string{"operation", "status"},
	)

	// CatalogRequestDuration measures catalog source call duration
	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Catalog source request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"operation"},
	)

	// AnnotationResolutionsTotal counts annotation resolution batches by strategy
	AnnotationResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "annotation_resolutions_total",
			Help: "Total number of annotation resolution batches",
		},
		[]string{"strategy"},
	)

	// DetailFallbackTotal counts per-item detail fallback lookups by outcome
	DetailFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "detail_fallback_lookups_total",
			Help: "Total number of per-item detail fallback lookups",
		},
		[]string{"outcome"},
	)

	// DetailFallbackDuration measures the duration of a full fallback batch
	DetailFallbackDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "detail_fallback_batch_duration_seconds",
			Help:    "Time taken to resolve one page of items via detail fallback",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// PagesAggregatedTotal counts aggregated page loads by mode
	PagesAggregatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_aggregated_total",
			Help: "Total number of aggregated page loads",
		},
		[]string{"mode"},
	)

	// StaleResultsDiscardedTotal counts page loads discarded because the query changed mid-flight
	StaleResultsDiscardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stale_results_discarded_total",
			Help: "Total number of page results discarded as stale",
		},
	)

	// PetPoliciesTotal tracks the total number of stored pet policies
	PetPoliciesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pet_policies_total",
			Help: "Total number of pet policies in the database",
		},
	)

	// PetPoliciesAllowedRatio tracks the ratio of policies marked allowed
	PetPoliciesAllowedRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pet_policies_allowed_ratio",
			Help: "Ratio of stored pet policies with the allowed flag set",
		},
	)

	// BookmarksTotal tracks the total number of stored bookmarks
	BookmarksTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookmarks_total",
			Help: "Total number of bookmarks in the database",
		},
	)
)

// Database metrics
var (
	// DBQueryDuration measures database query duration by operation
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// DBErrorsTotal counts database errors by operation
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total number of database errors",
		},
		[]string{"operation"},
	)
)
