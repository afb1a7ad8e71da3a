// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package activity

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Tracker maps player identities to their activity records.
type Tracker struct {
	records sync.Map // uuid.UUID -> *Record
	size    atomic.Int64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// GetOrCreate returns the record for playerID, creating it with join time now
// when absent. Concurrent creators for the same player all receive the record
// that won the insert.
func (t *Tracker) GetOrCreate(playerID uuid.UUID, now time.Time) *Record {
	if rec, ok := t.records.Load(playerID); ok {
		return rec.(*Record)
	}

	actual, loaded := t.records.LoadOrStore(playerID, NewRecord(playerID, now))
	if !loaded {
		t.size.Add(1)
	}
	return actual.(*Record)
}

// Get returns the record for playerID if one exists.
func (t *Tracker) Get(playerID uuid.UUID) (*Record, bool) {
	rec, ok := t.records.Load(playerID)
	if !ok {
		return nil, false
	}
	return rec.(*Record), true
}

// Remove drops the record for playerID. It reports whether a record was removed.
func (t *Tracker) Remove(playerID uuid.UUID) bool {
	if _, loaded := t.records.LoadAndDelete(playerID); loaded {
		t.size.Add(-1)
		return true
	}
	return false
}

// Len returns the number of tracked players.
func (t *Tracker) Len() int {
	return int(t.size.Load())
}

// Range calls fn for every record until fn returns false.
func (t *Tracker) Range(fn func(*Record) bool) {
	t.records.Range(func(_, value any) bool {
		return fn(value.(*Record))
	})
}

// EvictStale removes every record whose last activity precedes now minus idle.
// It returns the number of records removed.
//
// A record with no activity yet is measured from its join time, so a pass
// landing between GetOrCreate and the first RecordRequest cannot evict it and
// restart login protection. A record is only deleted if it is still the stored
// value for its key, so a record recreated concurrently survives the pass.
func (t *Tracker) EvictStale(now time.Time, idle time.Duration) int {
	cutoff := now.Add(-idle)
	evicted := 0

	t.records.Range(func(key, value any) bool {
		rec := value.(*Record)
		if rec.idleSince().Before(cutoff) && t.records.CompareAndDelete(key, rec) {
			t.size.Add(-1)
			evicted++
		}
		return true
	})

	return evicted
}
