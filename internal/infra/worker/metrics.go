package worker

import (
	"tourcatalog/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics exposes Prometheus metrics for the stats refresh worker.
// It embeds the configuration fallback metrics and adds refresh-job
// counters on top.
type WorkerMetrics struct {
	*config.Metrics

	// RefreshRunsTotal counts refresh runs by status (success/failure).
	RefreshRunsTotal *prometheus.CounterVec

	// RefreshDurationSeconds measures refresh run duration.
	RefreshDurationSeconds prometheus.Histogram

	// RefreshLastSuccessTimestamp is the Unix time of the last successful
	// refresh. An alert on its staleness catches a silently stuck worker.
	RefreshLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics initializes and registers the worker metrics.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		Metrics: config.NewMetrics("worker"),

		RefreshRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_stats_refresh_runs_total",
			Help: "Total number of stats refresh runs by status (success/failure)",
		}, []string{"status"}),

		RefreshDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_stats_refresh_duration_seconds",
			Help:    "Duration of stats refresh runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 120},
		}),

		RefreshLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_stats_refresh_last_success_timestamp",
			Help: "Unix timestamp of the last successful stats refresh",
		}),
	}
}

// MustRegister is a no-op: metrics register through promauto at creation.
// The explicit call keeps initialization symmetric with other components.
func (m *WorkerMetrics) MustRegister() {}

// RecordRun increments the run counter. Status is "success" or "failure".
func (m *WorkerMetrics) RecordRun(status string) {
	m.RefreshRunsTotal.WithLabelValues(status).Inc()
}

// RecordDuration observes a refresh run duration in seconds.
func (m *WorkerMetrics) RecordDuration(seconds float64) {
	m.RefreshDurationSeconds.Observe(seconds)
}

// RecordLastSuccess stamps the last successful refresh at now.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.RefreshLastSuccessTimestamp.SetToCurrentTime()
}
