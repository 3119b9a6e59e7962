package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the request
			RecordRequest(tt.tool, tt.duration, tt.success)

			// Verify counter was incremented
			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordValidation(t *testing.T) {
	RecordValidation("strict", true)
	RecordValidation("strict", false)
	RecordValidation("relaxed", true)

	counter, err := ValidationsTotal.GetMetricWithLabelValues("strict", "false")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 1 {
		t.Error("expected strict/false counter to be incremented")
	}
}

func TestRecordGeneration(t *testing.T) {
	RecordGeneration("individual", true, 5)
	RecordGeneration("company", false, 2)

	counter, err := GenerationsTotal.GetMetricWithLabelValues("individual", "valid")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 5 {
		t.Errorf("expected counter >= 5, got %v", m.Counter.GetValue())
	}

	counter, err = GenerationsTotal.GetMetricWithLabelValues("company", "skipped")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if m.Counter.GetValue() < 2 {
		t.Errorf("expected counter >= 2, got %v", m.Counter.GetValue())
	}
}

func TestRecordDatasetRecords(t *testing.T) {
	initialValid := getVecCounterValue(t, DatasetRecordsTotal, "true")
	initialInvalid := getVecCounterValue(t, DatasetRecordsTotal, "false")

	RecordDatasetRecords(2, 6)

	if got := getVecCounterValue(t, DatasetRecordsTotal, "true"); got != initialValid+2 {
		t.Errorf("valid records = %v, want %v", got, initialValid+2)
	}
	if got := getVecCounterValue(t, DatasetRecordsTotal, "false"); got != initialInvalid+4 {
		t.Errorf("invalid records = %v, want %v", got, initialInvalid+4)
	}
}

func TestRecordCacheAccess(t *testing.T) {
	// Get initial values
	initialHits := getCounterValue(t, CacheHits)
	initialMisses := getCounterValue(t, CacheMisses)

	// Record a hit
	RecordCacheAccess(true)
	if getCounterValue(t, CacheHits) != initialHits+1 {
		t.Error("expected cache hits to increment")
	}

	// Record a miss
	RecordCacheAccess(false)
	if getCounterValue(t, CacheMisses) != initialMisses+1 {
		t.Error("expected cache misses to increment")
	}
}

func TestSetCacheSize(t *testing.T) {
	SetCacheSize(100)

	var m dto.Metric
	if err := CacheSize.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if m.Gauge.GetValue() != 100 {
		t.Errorf("expected cache size 100, got %v", m.Gauge.GetValue())
	}

	SetCacheSize(50)
	if err := CacheSize.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if m.Gauge.GetValue() != 50 {
		t.Errorf("expected cache size 50, got %v", m.Gauge.GetValue())
	}
}

func TestMetricsRegistered(t *testing.T) {
	// Verify all metrics are registered by checking they can be collected
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		ValidationsTotal,
		GenerationsTotal,
		DatasetRecordsTotal,
		CacheHits,
		CacheMisses,
		CacheSize,
		PanicsRecovered,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "iceland_registry_mcp" {
		t.Errorf("expected namespace 'iceland_registry_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}

func getVecCounterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
