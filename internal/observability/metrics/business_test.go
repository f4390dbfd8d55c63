package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordCatalogRequest(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		success   bool
	}{
		{name: "search success", operation: "search", success: true},
		{name: "search failure", operation: "search", success: false},
		{name: "list success", operation: "list", success: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordCatalogRequest(tt.operation, tt.success, 120*time.Millisecond)
			})
		})
	}
}

func TestRecordDetailFallback(t *testing.T) {
	for _, outcome := range []string{"positive", "negative", "error"} {
		assert.NotPanics(t, func() {
			RecordDetailFallback(outcome)
		})
	}
	assert.NotPanics(t, func() {
		RecordDetailFallbackBatch(2 * time.Second)
	})
}

func TestUpdatePetPolicyTotals(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		allowed int64
	}{
		{name: "normal ratio", total: 100, allowed: 60},
		{name: "all allowed", total: 10, allowed: 10},
		{name: "zero total does not divide by zero", total: 0, allowed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				UpdatePetPolicyTotals(tt.total, tt.allowed)
			})
		})
	}
}

func TestRecordAggregationMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordPageAggregated("replace")
		RecordPageAggregated("append")
		RecordAnnotationResolution("store")
		RecordAnnotationResolution("detail_fallback")
		RecordStaleResultDiscarded()
		UpdateBookmarksTotal(42)
		RecordDBQuery("petpolicy_list", 5*time.Millisecond)
		RecordDBError("petpolicy_upsert")
	})
}
