// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package api provides the read-only admin HTTP API for SeedShroud.

The API is served on loopback by default and exposes engine state for
operators and soak tests. It never changes engine behavior.

# Endpoints

	GET /healthz               liveness, {"status":"ok"}
	GET /metrics               Prometheus exposition
	GET /api/v1/stats          tracked players, cache size, settings, breaker state
	GET /api/v1/players/{id}   activity snapshot and current verdict for one player

Responses under /api/v1 use the APIResponse envelope:

	{"success":true,"data":{...},"meta":{"timestamp":"...","request_id":"..."}}

A malformed player id returns 400 BAD_REQUEST and an unknown player returns
404 NOT_FOUND.

# Middleware

Every route passes through chi's RequestID, RealIP and Recoverer middleware.
The /api/v1 routes are rate limited per client IP with go-chi/httprate when
admin.rate_limit_per_minute is positive, and every route records request
counts and latency labeled by route pattern.
*/
package api
