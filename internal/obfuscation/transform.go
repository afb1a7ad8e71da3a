// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package obfuscation

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"
)

const (
	// WordSize is the width of each scanned word in bytes.
	WordSize = 4

	// CandidateLimit is the exclusive upper bound of values treated as biome IDs.
	CandidateLimit = 1000

	// Probability is the chance that a candidate word is rewritten.
	Probability float32 = 0.3
)

var (
	// ErrEmptyPalette is returned when Apply is given no palette entries.
	ErrEmptyPalette = errors.New("obfuscation: empty palette")

	// ErrPayloadAccess marks a packet whose payload could not be read in the
	// expected shape. Callers skip the packet rather than treating it as a
	// transform failure.
	ErrPayloadAccess = errors.New("obfuscation: payload unavailable")
)

// Rand is the random source used by Apply. *rand.Rand from math/rand/v2
// satisfies it; implementations shared across goroutines must be safe for
// concurrent use.
type Rand interface {
	IntN(n int) int
	Float32() float32
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float32() float32 { return rand.Float32() }

// DefaultRand returns a source backed by the math/rand/v2 package-level
// generator, which is safe for concurrent use.
func DefaultRand() Rand {
	return globalRand{}
}

// IsCandidate reports whether a 4-byte big-endian word holds a signed value in
// [0, CandidateLimit).
func IsCandidate(word []byte) bool {
	if len(word) < WordSize {
		return false
	}
	v := int32(binary.BigEndian.Uint32(word))
	return v >= 0 && v < CandidateLimit
}

// Apply obfuscates buf in place and returns the number of words rewritten.
// Buffers shorter than WordSize are returned untouched.
func Apply(buf []byte, palette []int32, rng Rand) (int, error) {
	if len(buf) < WordSize {
		return 0, nil
	}
	if len(palette) == 0 {
		return 0, ErrEmptyPalette
	}

	rewritten := 0
	for i := 0; i+WordSize <= len(buf); i += WordSize {
		if !IsCandidate(buf[i : i+WordSize]) {
			continue
		}
		if rng.Float32() >= Probability {
			continue
		}
		buf[i] = byte(palette[rng.IntN(len(palette))] & 0xFF)
		rewritten++
	}

	return rewritten, nil
}
