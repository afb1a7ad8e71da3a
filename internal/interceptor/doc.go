// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package interceptor is the per-packet entry point of the biome obfuscation
engine.

For every outbound chunk packet the host calls OnPacketSending. The
interceptor:

 1. ignores packets of unmonitored kinds, packets while the feature is
    disabled, and packets whose player cannot be identified
 2. resolves or creates the player's activity record
 3. classifies the request against the state before it
 4. when suspicious, fetches the chunk's biome permutation from the cache and
    rewrites candidate words of the first payload buffer in place
 5. records the request in the player's sliding window

The packet is never dropped. Payload-access failures are skipped with a debug
line; any other transform fault, including a panic, is logged at warn level
and the packet is sent unmodified. An optional gobreaker circuit breaker stops
attempting the transform after repeated failures.

Respawn events arrive through OnPlayerRespawn, directly or via a
RespawnListener registered with the host.
*/
package interceptor
