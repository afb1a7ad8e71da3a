// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package services

import (
	"context"
)

// Reaper matches reaper.Reaper's run loop.
//
// Satisfied by *reaper.Reaper from internal/reaper.
type Reaper interface {
	// RunWithContext runs periodic passes until ctx is canceled.
	RunWithContext(ctx context.Context) error
}

// ReaperService supervises the periodic eviction of idle activity records and
// the biome cache size bound.
type ReaperService struct {
	reaper Reaper
	name   string
}

// NewReaperService wraps r.
func NewReaperService(r Reaper) *ReaperService {
	return &ReaperService{
		reaper: r,
		name:   "reaper",
	}
}

// Serve implements suture.Service. It returns ctx.Err() on shutdown.
func (s *ReaperService) Serve(ctx context.Context) error {
	return s.reaper.RunWithContext(ctx)
}

// String implements fmt.Stringer.
func (s *ReaperService) String() string {
	return s.name
}
