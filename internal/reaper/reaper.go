// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package reaper

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/seedshroud/internal/activity"
	"github.com/tomtom215/seedshroud/internal/cache"
	"github.com/tomtom215/seedshroud/internal/logging"
	"github.com/tomtom215/seedshroud/internal/metrics"
)

const (
	// DefaultInterval is the time between passes.
	DefaultInterval = 5 * time.Minute

	// IdleThreshold is how long a record may go without a request or respawn
	// before it is evicted.
	IdleThreshold = 5 * time.Minute
)

// Result summarizes one pass.
type Result struct {
	Evicted         int
	CacheCleared    bool
	RecordsAfter    int
	CacheSizeBefore int
	CacheSizeAfter  int
	Duration        time.Duration
}

// Reaper runs housekeeping over a tracker and a biome cache.
type Reaper struct {
	tracker  *activity.Tracker
	cache    *cache.BiomeCache
	interval time.Duration
	clock    func() time.Time
	log      zerolog.Logger
}

// Option configures a Reaper.
type Option func(*Reaper)

// WithInterval sets the period between passes. Non-positive values keep the
// default.
func WithInterval(d time.Duration) Option {
	return func(r *Reaper) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(r *Reaper) {
		r.clock = clock
	}
}

// New creates a Reaper.
func New(tracker *activity.Tracker, biomes *cache.BiomeCache, opts ...Option) *Reaper {
	r := &Reaper{
		tracker:  tracker,
		cache:    biomes,
		interval: DefaultInterval,
		clock:    time.Now,
		log:      logging.WithComponent("reaper"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interval returns the period between passes.
func (r *Reaper) Interval() time.Duration {
	return r.interval
}

// RunOnce performs a single pass at now.
func (r *Reaper) RunOnce(now time.Time) Result {
	start := time.Now()

	res := Result{
		Evicted:         r.tracker.EvictStale(now, IdleThreshold),
		CacheSizeBefore: r.cache.Len(),
	}
	res.CacheCleared = r.cache.ResetIfExceeds(cache.MaxBiomeEntries)
	res.CacheSizeAfter = r.cache.Len()
	res.RecordsAfter = r.tracker.Len()
	res.Duration = time.Since(start)

	metrics.RecordReaperRun(res.Evicted, res.CacheCleared, res.Duration)
	metrics.SetStateSizes(res.RecordsAfter, res.CacheSizeAfter)

	if res.Evicted > 0 || res.CacheCleared {
		r.log.Info().
			Int("evicted", res.Evicted).
			Int("records", res.RecordsAfter).
			Bool("cache_cleared", res.CacheCleared).
			Int("cache_size_before", res.CacheSizeBefore).
			Msg("Reaper pass complete")
	} else {
		r.log.Debug().
			Int("records", res.RecordsAfter).
			Int("cache_size", res.CacheSizeAfter).
			Msg("Reaper pass complete, nothing to reclaim")
	}

	return res
}

// RunWithContext runs a pass every interval until ctx is canceled, then
// returns ctx.Err().
func (r *Reaper) RunWithContext(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info().Dur("interval", r.interval).Msg("Reaper started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("Reaper stopped")
			return ctx.Err()
		case <-ticker.C:
			r.RunOnce(r.clock())
		}
	}
}
