package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of pagination requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_pagination_requests_total",
			Help: "Total number of place pagination requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks request duration distribution.
	// Labels: operation (handler, engine, catalog)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "place_pagination_duration_seconds",
			Help:    "Place pagination request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// TotalCount tracks the upstream total-result count of the most recent query.
	TotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "place_catalog_total_count",
			Help: "Upstream total-result count reported for the most recent query",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, catalog, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "place_pagination_errors_total",
			Help: "Total number of place pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a pagination request with its status and page bucket.
func RecordRequest(statusCode, page int) {
	RequestsTotal.WithLabelValues(
		fmt.Sprintf("%d", statusCode),
		pageRange(page),
	).Inc()
}

// RecordDuration records the duration of a pagination operation stage.
func RecordDuration(operation string, seconds float64) {
	DurationSeconds.WithLabelValues(operation).Observe(seconds)
}

// RecordError records a pagination error by type.
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// UpdateTotalCount updates the upstream total-count gauge.
func UpdateTotalCount(total int64) {
	TotalCount.Set(float64(total))
}

// pageRange buckets a page number for low-cardinality labeling.
func pageRange(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
