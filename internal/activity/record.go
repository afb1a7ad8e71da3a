// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// RequestWindow is the trailing duration of request timestamps a Record retains.
const RequestWindow = 10 * time.Second

// Record is the mutable activity state of a single player.
type Record struct {
	playerID uuid.UUID
	joinTime time.Time

	mu          sync.Mutex
	lastRespawn time.Time // zero until the first respawn
	lastRequest time.Time
	requests    []time.Time
}

// Snapshot is a consistent, read-only view of a Record at a point in time.
type Snapshot struct {
	PlayerID    uuid.UUID
	JoinTime    time.Time
	LastRespawn time.Time
	LastRequest time.Time

	// RecentRequests counts window entries no older than RequestWindow
	// relative to the time the snapshot was taken.
	RecentRequests int
}

// HasRespawned reports whether a respawn has been recorded.
func (s Snapshot) HasRespawned() bool {
	return !s.LastRespawn.IsZero()
}

// LastActivity returns the later of the last request and the last respawn.
func (s Snapshot) LastActivity() time.Time {
	return latest(s.LastRequest, s.LastRespawn)
}

// NewRecord creates a record for a player that joined at joinTime.
func NewRecord(playerID uuid.UUID, joinTime time.Time) *Record {
	return &Record{
		playerID: playerID,
		joinTime: joinTime,
		requests: make([]time.Time, 0, 8),
	}
}

// PlayerID returns the identity the record belongs to.
func (r *Record) PlayerID() uuid.UUID {
	return r.playerID
}

// JoinTime returns when the record was created.
func (r *Record) JoinTime() time.Time {
	return r.joinTime
}

// RecordRequest appends now to the request window and prunes every entry
// older than now minus RequestWindow.
func (r *Record) RecordRequest(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastRequest = now
	r.requests = append(r.requests, now)
	r.prune(now)
}

// RecordRespawn marks the player as having respawned at now.
func (r *Record) RecordRespawn(now time.Time) {
	r.mu.Lock()
	r.lastRespawn = now
	r.mu.Unlock()
}

// LastActivity returns max(lastRequest, lastRespawn). A record that has seen
// neither returns the zero time.
func (r *Record) LastActivity() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return latest(r.lastRequest, r.lastRespawn)
}

// idleSince is the reference point for eviction: the last activity, or the
// join time for a record created but not yet stamped by its first request.
func (r *Record) idleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return latest(r.joinTime, latest(r.lastRequest, r.lastRespawn))
}

// WindowLen returns the number of timestamps currently held in the window.
func (r *Record) WindowLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// Window returns a copy of the request window in append order.
func (r *Record) Window() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]time.Time, len(r.requests))
	copy(out, r.requests)
	return out
}

// Snapshot captures the record state as seen at now. The window itself is not
// mutated; entries older than RequestWindow are simply not counted.
func (r *Record) Snapshot(now time.Time) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	recent := 0
	for _, ts := range r.requests {
		if now.Sub(ts) <= RequestWindow {
			recent++
		}
	}

	return Snapshot{
		PlayerID:       r.playerID,
		JoinTime:       r.joinTime,
		LastRespawn:    r.lastRespawn,
		LastRequest:    r.lastRequest,
		RecentRequests: recent,
	}
}

// prune drops window entries older than now minus RequestWindow.
// Concurrent callers can append slightly out of order, so every entry is
// checked rather than stopping at the first one inside the window.
// Must be called with mu held.
func (r *Record) prune(now time.Time) {
	kept := r.requests[:0]
	for _, ts := range r.requests {
		if now.Sub(ts) <= RequestWindow {
			kept = append(kept, ts)
		}
	}
	clear(r.requests[len(kept):])
	r.requests = kept
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
