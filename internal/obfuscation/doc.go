// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

// Package obfuscation rewrites biome-like values inside a raw chunk payload.
//
// The wire layout of chunk data differs across protocol versions and is only
// partly known here, so the transform is a heuristic rather than a codec. It
// walks the buffer in non-overlapping big-endian 32-bit words starting at
// offset 0. A word whose signed value lies in [0, CandidateLimit) looks like a
// biome ID and is a candidate; each candidate is rewritten with probability
// Probability by replacing its first byte with the low byte of a random palette
// entry. The other three bytes, any trailing partial word, and the buffer
// length are left alone.
//
// The scan is position-unaware and may touch bytes that are not biome data.
// That is accepted in exchange for not tracking every protocol revision.
//
// Apply is a pure function of its inputs: the buffer, the palette, and a
// random source. It does not log and has no package state.
package obfuscation
