// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

// Package logging provides centralized zerolog-based structured logging for SeedShroud.
//
// The package holds one global zerolog logger configured at startup from the
// logging section of the configuration. JSON output is the default; console
// output is available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("player", name).Msg("Rapid chunk requests detected")
//	logging.Warn().Err(err).Int32("chunk_x", x).Msg("Failed to obfuscate chunk")
//
// # Component Loggers
//
// Long-lived components take a child logger tagged with their name:
//
//	log := logging.WithComponent("interceptor")
//
// # Suture Integration
//
// The supervisor tree logs through sutureslog, which needs a *slog.Logger.
// NewSlogLogger returns one backed by the global zerolog logger so all
// output shares a single format:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Log Levels
//
//   - debug: payload access failures, per-request detail
//   - info: rapid-request detections, obfuscated chunks when enabled, lifecycle
//   - warn: transform failures, breaker state changes
//   - error: service failures
//
// Always terminate log chains with .Msg() or .Send().
package logging
