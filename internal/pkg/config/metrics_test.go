package config_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"tourcatalog/internal/pkg/config"
)

// Shared instance: promauto panics on duplicate registration, so the metric
// set is created once for the whole test binary.
var testMetrics = config.NewMetrics("configtest")

func TestNewMetricsInitializesAllCollectors(t *testing.T) {
	if testMetrics.LoadTimestamp == nil ||
		testMetrics.ValidationErrorsTotal == nil ||
		testMetrics.FallbacksTotal == nil ||
		testMetrics.FallbackActive == nil {
		t.Fatal("metric set has uninitialized collectors")
	}
}

func TestMetricsCountersByField(t *testing.T) {
	errBefore := testutil.ToFloat64(testMetrics.ValidationErrorsTotal.WithLabelValues("timezone"))
	fbBefore := testutil.ToFloat64(testMetrics.FallbacksTotal.WithLabelValues("timezone"))

	testMetrics.RecordValidationError("timezone")
	testMetrics.RecordFallback("timezone")

	if got := testutil.ToFloat64(testMetrics.ValidationErrorsTotal.WithLabelValues("timezone")); got != errBefore+1 {
		t.Errorf("validation errors = %v, want %v", got, errBefore+1)
	}
	if got := testutil.ToFloat64(testMetrics.FallbacksTotal.WithLabelValues("timezone")); got != fbBefore+1 {
		t.Errorf("fallbacks = %v, want %v", got, fbBefore+1)
	}
}

func TestMetricsFallbackActiveGauge(t *testing.T) {
	testMetrics.SetFallbackActive(true)
	if got := testutil.ToFloat64(testMetrics.FallbackActive); got != 1 {
		t.Errorf("fallback active = %v, want 1", got)
	}

	testMetrics.SetFallbackActive(false)
	if got := testutil.ToFloat64(testMetrics.FallbackActive); got != 0 {
		t.Errorf("fallback active = %v, want 0", got)
	}
}

func TestMetricsLoadTimestamp(t *testing.T) {
	testMetrics.RecordLoadTimestamp()
	if got := testutil.ToFloat64(testMetrics.LoadTimestamp); got <= 0 {
		t.Errorf("load timestamp = %v, want a positive unix time", got)
	}
}
