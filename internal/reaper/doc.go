// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

// Package reaper bounds the engine's memory. On a fixed period it evicts
// activity records idle for more than IdleThreshold and clears the biome
// cache once it holds more than cache.MaxBiomeEntries keys.
//
// The reaper touches shared state only through the tracker's and cache's
// concurrent operations, so a pass never blocks the packet path.
package reaper
