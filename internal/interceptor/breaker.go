// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package interceptor

import (
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/seedshroud/internal/config"
	"github.com/tomtom215/seedshroud/internal/logging"
	"github.com/tomtom215/seedshroud/internal/metrics"
	"github.com/tomtom215/seedshroud/internal/obfuscation"
)

// BreakerName labels the transform breaker in logs and metrics.
const BreakerName = "biome-transform"

// transformBreaker wraps the obfuscation step with a circuit breaker. While
// open, packets are forwarded without attempting the transform.
//
// The breaker uses real time (via sony/gobreaker) for its interval and
// timeout; the interceptor's injected clock does not affect it.
type transformBreaker struct {
	cb *gobreaker.CircuitBreaker[int]
}

func newTransformBreaker(cfg config.BreakerConfig) *transformBreaker {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 3, // probes allowed in half-open state
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit, chunks will pass through unobfuscated")
			}
			return shouldTrip
		},

		// Unreadable payloads say nothing about the health of the transform.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, obfuscation.ErrPayloadAccess)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordBreakerTransition(name, fromStr, toStr, stateToFloat(to))
		},
	})

	return &transformBreaker{cb: cb}
}

// execute runs fn through the breaker.
func (b *transformBreaker) execute(fn func() (int, error)) (int, error) {
	n, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.RecordBreakerRequest(BreakerName, "success")
	case isRejected(err):
		metrics.RecordBreakerRequest(BreakerName, "rejected")
	default:
		metrics.RecordBreakerRequest(BreakerName, "failure")
	}
	return n, err
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *transformBreaker) State() string {
	return stateToString(b.cb.State())
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
