// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Packet outcomes used as the "outcome" label of PacketsTotal.
const (
	OutcomeObfuscated   = "obfuscated"   // suspicious, payload rewritten
	OutcomeClean        = "clean"        // not suspicious, forwarded unchanged
	OutcomeDisabled     = "disabled"     // feature switched off
	OutcomeRejected     = "rejected"     // circuit breaker open
	OutcomeFailed       = "failed"       // transform error, forwarded unchanged
	OutcomeUnavailable  = "unavailable"  // payload could not be read
	OutcomeIgnored      = "ignored"      // not a monitored packet kind
	OutcomeUnidentified = "unidentified" // no player identity attached
)

var (
	// Packet Path Metrics
	PacketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedshroud_packets_total",
			Help: "Total number of outbound packets seen by the interceptor",
		},
		[]string{"kind", "outcome"},
	)

	SuspiciousTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedshroud_suspicious_total",
			Help: "Total number of packets classified as suspicious",
		},
		[]string{"reason"}, // rapid_requests, login_protection, respawn_protection
	)

	ObfuscatedWordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedshroud_obfuscated_words_total",
			Help: "Total number of candidate words rewritten with palette values",
		},
	)

	TransformDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedshroud_transform_duration_seconds",
			Help:    "Duration of the byte obfuscation transform in seconds",
			Buckets: []float64{0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.01}, // chunk payloads are small
		},
	)

	TransformErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedshroud_transform_errors_total",
			Help: "Total number of failed obfuscation attempts",
		},
		[]string{"error_type"}, // payload_access, transform
	)

	RespawnsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedshroud_respawns_total",
			Help: "Total number of player respawns recorded",
		},
	)

	// State Size Metrics
	ActivityRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "seedshroud_activity_records",
			Help: "Current number of tracked player activity records",
		},
	)

	BiomeCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "seedshroud_biome_cache_entries",
			Help: "Current number of cached per-chunk biome permutations",
		},
	)

	BiomeCacheResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedshroud_biome_cache_resets_total",
			Help: "Total number of biome cache resets triggered by the size bound",
		},
	)

	// Reaper Metrics
	ReaperRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedshroud_reaper_runs_total",
			Help: "Total number of reaper passes",
		},
	)

	ReaperEvictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seedshroud_reaper_evictions_total",
			Help: "Total number of idle activity records evicted",
		},
	)

	ReaperDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedshroud_reaper_duration_seconds",
			Help:    "Duration of a reaper pass in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Configuration Metrics
	ConfigReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedshroud_config_reloads_total",
			Help: "Total number of configuration reload attempts",
		},
		[]string{"result"}, // success, failure
	)

	// Admin API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordPacket records one packet passing through the interceptor.
func RecordPacket(kind, outcome string) {
	PacketsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordSuspicious records a suspicious verdict and its reason.
func RecordSuspicious(reason string) {
	SuspiciousTotal.WithLabelValues(reason).Inc()
}

// RecordTransform records a completed transform.
func RecordTransform(words int, duration time.Duration) {
	ObfuscatedWordsTotal.Add(float64(words))
	TransformDuration.Observe(duration.Seconds())
}

// RecordTransformError records a failed obfuscation attempt.
func RecordTransformError(errorType string) {
	TransformErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordRespawn records a player respawn.
func RecordRespawn() {
	RespawnsTotal.Inc()
}

// SetStateSizes updates the activity record and biome cache gauges.
func SetStateSizes(activityRecords, cacheEntries int) {
	ActivityRecords.Set(float64(activityRecords))
	BiomeCacheEntries.Set(float64(cacheEntries))
}

// RecordReaperRun records one reaper pass.
func RecordReaperRun(evicted int, cacheCleared bool, duration time.Duration) {
	ReaperRunsTotal.Inc()
	ReaperEvictionsTotal.Add(float64(evicted))
	ReaperDuration.Observe(duration.Seconds())
	if cacheCleared {
		BiomeCacheResetsTotal.Inc()
	}
}

// RecordBreakerRequest records one call routed through a circuit breaker.
func RecordBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition records a state change. state follows the gauge
// encoding 0=closed, 1=half-open, 2=open.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordConfigReload records a configuration reload attempt.
func RecordConfigReload(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	ConfigReloadsTotal.WithLabelValues(result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
