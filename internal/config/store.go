// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package config

import (
	"sync/atomic"
)

// Store publishes the live obfuscation settings to the packet path.
// Reads are a single atomic load; Update swaps the whole section so readers
// never see a half-applied reload.
type Store struct {
	current atomic.Pointer[ObfuscationConfig]
}

// NewStore returns a Store seeded with cfg.
func NewStore(cfg ObfuscationConfig) *Store {
	s := &Store{}
	s.Update(cfg)
	return s
}

// Obfuscation returns the current settings.
func (s *Store) Obfuscation() ObfuscationConfig {
	return *s.current.Load()
}

// Update replaces the current settings.
func (s *Store) Update(cfg ObfuscationConfig) {
	s.current.Store(&cfg)
}
