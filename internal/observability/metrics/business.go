package metrics

import "time"

// RecordCatalogRequest records a catalog source call and its duration.
// Operation is "search" or "list"; status is "success" or "failure".
func RecordCatalogRequest(operation string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	CatalogRequestsTotal.WithLabelValues(operation, status).Inc()
	CatalogRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAnnotationResolution records one annotation resolution batch.
// Strategy is "store" or "detail_fallback".
func RecordAnnotationResolution(strategy string) {
	AnnotationResolutionsTotal.WithLabelValues(strategy).Inc()
}

// RecordDetailFallback records one per-item detail fallback lookup.
// Outcome is "positive", "negative", or "error".
func RecordDetailFallback(outcome string) {
	DetailFallbackTotal.WithLabelValues(outcome).Inc()
}

// RecordDetailFallbackBatch records the duration of a full fallback batch.
func RecordDetailFallbackBatch(duration time.Duration) {
	DetailFallbackDuration.Observe(duration.Seconds())
}

// RecordPageAggregated records one aggregated page load.
// Mode is "replace" or "append".
func RecordPageAggregated(mode string) {
	PagesAggregatedTotal.WithLabelValues(mode).Inc()
}

// RecordStaleResultDiscarded records a page result discarded because its
// originating query was superseded before the result arrived.
func RecordStaleResultDiscarded() {
	StaleResultsDiscardedTotal.Inc()
}

// UpdatePetPolicyTotals updates the pet policy gauges.
// These gauges are refreshed periodically by the worker.
func UpdatePetPolicyTotals(total, allowed int64) {
	PetPoliciesTotal.Set(float64(total))
	if total > 0 {
		PetPoliciesAllowedRatio.Set(float64(allowed) / float64(total))
	} else {
		PetPoliciesAllowedRatio.Set(0)
	}
}

// UpdateBookmarksTotal updates the bookmark count gauge.
func UpdateBookmarksTotal(count int64) {
	BookmarksTotal.Set(float64(count))
}

// RecordDBQuery records a database query duration.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDBError records a database error for an operation.
func RecordDBError(operation string) {
	DBErrorsTotal.WithLabelValues(operation).Inc()
}
