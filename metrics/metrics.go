// Package metrics provides Prometheus metrics for the Iceland Registry MCP
// server. It tracks request counts, latencies, validation outcomes, and
// dataset processing volume.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "iceland_registry_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ValidationsTotal counts kennitala validations by policy and outcome
	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "validations_total",
		Help:      "Kennitala validations by policy and outcome",
	}, []string{"policy", "valid"})

	// GenerationsTotal counts generated kennitölur by entity type and
	// checksum mode
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "generations_total",
		Help:      "Generated kennitölur by entity type and checksum mode",
	}, []string{"entity", "checksum"})

	// DatasetRecordsTotal counts dataset records processed by validity
	DatasetRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "dataset_records_total",
		Help:      "Dataset records processed by strict validity",
	}, []string{"valid"})

	// SentinelRetries counts sequence redraws during strict generation when
	// the MOD11 computation yields the digit-less remainder
	SentinelRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "generation_sentinel_retries_total",
		Help:      "Sequence redraws caused by check digit computations with no valid digit",
	})

	// CacheHits counts dataset cache hits
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hit count",
	})

	// CacheMisses counts dataset cache misses
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_misses_total",
		Help:      "Total cache miss count",
	})

	// CacheSize tracks current cache entry count
	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cache_entries",
		Help:      "Current number of cache entries",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordValidation records one validation outcome under a policy
// ("strict" or "relaxed").
func RecordValidation(policy string, valid bool) {
	ValidationsTotal.WithLabelValues(policy, boolLabel(valid)).Inc()
}

// RecordGeneration records generated kennitölur by entity type
// ("individual" or "company") and whether the check digit is correct.
func RecordGeneration(entity string, validChecksum bool, count int) {
	checksum := "valid"
	if !validChecksum {
		checksum = "skipped"
	}
	GenerationsTotal.WithLabelValues(entity, checksum).Add(float64(count))
}

// RecordDatasetRecords records processed dataset records split by strict
// validity.
func RecordDatasetRecords(strictValid, total int) {
	DatasetRecordsTotal.WithLabelValues("true").Add(float64(strictValid))
	DatasetRecordsTotal.WithLabelValues("false").Add(float64(total - strictValid))
}

// RecordCacheAccess records a cache hit or miss
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// SetCacheSize updates the current cache size gauge
func SetCacheSize(size int64) {
	CacheSize.Set(float64(size))
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
