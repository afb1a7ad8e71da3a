// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package cache provides the per-chunk randomized biome palette cache.

Every chunk that gets obfuscated is assigned a shuffled copy of the fixed
biome palette. The same chunk keeps the same shuffle for the lifetime of the
cache, so a client that receives a chunk twice sees consistent substitutions
instead of noise it could average out.

# Overview

The cache provides:
  - Lock-free get-or-insert on the packet path (sync.Map)
  - Atomic entry counter for O(1) size checks
  - Whole-cache reset by swapping in a fresh generation
  - Zero external dependencies (stdlib only)

# Usage Example

	c := cache.NewBiomeCache()

	key := cache.ChunkKey{World: "overworld", X: 10, Z: -4}
	perm := c.GetOrGenerate(key) // generated on first access
	same := c.GetOrGenerate(key) // perm == same

	// Housekeeping
	if c.ResetIfExceeds(cache.MaxBiomeEntries) {
	    // cache is now empty
	}

# Cache Invalidation

There is no per-entry eviction. Once the cache holds more than
MaxBiomeEntries keys the reaper clears it in one step. Readers that loaded the
previous generation finish against it; new readers start on the empty one.

# Concurrency

Two goroutines missing the same key at the same time may each generate a
permutation. LoadOrStore keeps exactly one and both callers return the stored
value, so every caller observes a complete permutation and later reads agree.

# Limitations

  - No maximum size enforced on the hot path (bounded by the reaper period)
  - No persistence (permutations are regenerated after restart)
*/
package cache
