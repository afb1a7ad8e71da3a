// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package interceptor

import "github.com/google/uuid"

// RespawnListener forwards host respawn events to an Interceptor. Hosts may
// register it before the interceptor exists; events are dropped until then.
type RespawnListener struct {
	target *Interceptor
}

// NewRespawnListener returns a listener forwarding to target, which may be nil.
func NewRespawnListener(target *Interceptor) *RespawnListener {
	return &RespawnListener{target: target}
}

// OnRespawn handles one respawn event.
func (l *RespawnListener) OnRespawn(playerID uuid.UUID) {
	if l == nil || l.target == nil {
		return
	}
	l.target.OnPlayerRespawn(playerID)
}
