// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package activity tracks per-player chunk request activity.

Each player that receives a monitored chunk packet (or respawns) gets one Record
holding the join time, the last respawn time, the last request time and a
sliding window of request timestamps covering the trailing ten seconds. The
detection package reads a Snapshot of a Record to decide whether the next chunk
delivery looks like automated probing.

# Concurrency

The Tracker map is a sync.Map keyed by player UUID, so lookups and inserts from
many connection goroutines never contend on a process-wide lock. Each Record
carries its own mutex guarding the window; packets for different players never
touch the same lock.

# Lifecycle

	tracker := activity.NewTracker()

	rec := tracker.GetOrCreate(playerID, now)   // first packet or respawn
	snap := rec.Snapshot()                      // read before recording
	rec.RecordRequest(now)                      // append + prune window
	rec.RecordRespawn(now)                      // respawn listener

	evicted := tracker.EvictStale(now, 5*time.Minute) // reaper

The window is pruned lazily on every append; immediately after RecordRequest no
entry is older than now minus RequestWindow.
*/
package activity
