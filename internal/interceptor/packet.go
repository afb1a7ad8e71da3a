// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package interceptor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/seedshroud/internal/obfuscation"
)

// PacketKind identifies an outbound packet type.
type PacketKind int

const (
	// KindOther is any packet the interceptor does not monitor.
	KindOther PacketKind = iota
	// KindMapChunk is the legacy chunk data packet.
	KindMapChunk
	// KindLevelChunkWithLight is the chunk data packet carrying light data.
	KindLevelChunkWithLight
)

// String returns the metric label for k.
func (k PacketKind) String() string {
	switch k {
	case KindMapChunk:
		return "map_chunk"
	case KindLevelChunkWithLight:
		return "level_chunk_with_light"
	default:
		return "other"
	}
}

// Monitored reports whether packets of kind k are candidates for obfuscation.
func (k PacketKind) Monitored() bool {
	return k == KindMapChunk || k == KindLevelChunkWithLight
}

// ErrUnknownKind is returned when a packet of an unmonitored kind reaches the
// transform. It is a payload-access failure.
var ErrUnknownKind = fmt.Errorf("%w: unknown packet kind", obfuscation.ErrPayloadAccess)

// Packet is one outbound chunk packet as handed over by the host.
// Payloads alias the host's buffers; the transform mutates Payloads[0] in place.
type Packet struct {
	Kind       PacketKind
	Payloads   [][]byte
	ChunkX     int32
	ChunkZ     int32
	PlayerID   uuid.UUID
	PlayerName string
	World      string
}

// payload returns the buffer the transform operates on.
func (p *Packet) payload() ([]byte, error) {
	if !p.Kind.Monitored() {
		return nil, ErrUnknownKind
	}
	if len(p.Payloads) == 0 {
		return nil, fmt.Errorf("%w: no payload buffers", obfuscation.ErrPayloadAccess)
	}
	if len(p.Payloads[0]) == 0 {
		return nil, fmt.Errorf("%w: empty payload buffer", obfuscation.ErrPayloadAccess)
	}
	return p.Payloads[0], nil
}
