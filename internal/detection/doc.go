// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

// Package detection decides whether a chunk delivery looks like automated
// biome probing.
//
// Detection Architecture:
//
//	activity.Snapshot -> Classify -> Verdict{Suspicious, Reason}
//
// Classify is a pure function over a snapshot of the player's activity taken
// before the current request, the current time, and the configured protection
// windows. Rules are evaluated in a fixed short-circuit order and the first
// match decides the reason:
//   - Rapid Requests: more than RapidRequestThreshold requests inside the
//     trailing activity.RequestWindow
//   - Login Protection: the player joined less than LoginProtection ago
//   - Respawn Protection: the player respawned less than RespawnProtection ago
//
// The thresholds are contractual constants; only the two protection windows are
// read from configuration.
package detection
