// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered with promauto on the default registry and exposed by
the admin API at /metrics:

	curl http://127.0.0.1:9464/metrics

# Available Metrics

Packet Path:
  - seedshroud_packets_total: Packets seen by the interceptor (counter)
    Labels: kind, outcome (obfuscated, clean, disabled, rejected, failed,
    unavailable, ignored, unidentified)
  - seedshroud_suspicious_total: Suspicious verdicts (counter)
    Labels: reason (rapid_requests, login_protection, respawn_protection)
  - seedshroud_obfuscated_words_total: Candidate words rewritten (counter)
  - seedshroud_transform_duration_seconds: Transform latency (histogram)
  - seedshroud_transform_errors_total: Failed obfuscation attempts (counter)
    Labels: error_type (payload_access, transform)
  - seedshroud_respawns_total: Respawns recorded (counter)

State:
  - seedshroud_activity_records: Tracked players (gauge)
  - seedshroud_biome_cache_entries: Cached permutations (gauge)
  - seedshroud_biome_cache_resets_total: Size-bound resets (counter)

Reaper:
  - seedshroud_reaper_runs_total, seedshroud_reaper_evictions_total (counters)
  - seedshroud_reaper_duration_seconds (histogram)

Circuit Breaker:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state (counter)

Configuration and Admin API:
  - seedshroud_config_reloads_total: Labels result (counter)
  - api_requests_total, api_request_duration_seconds

# Thread Safety

All recording helpers are safe for concurrent use; they delegate to
Prometheus collectors, which are goroutine-safe.
*/
package metrics
