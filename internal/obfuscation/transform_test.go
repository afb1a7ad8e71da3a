// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package obfuscation

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var palette = []int32{1, 4, 6, 7, 12, 21, 25, 27, 29, 30, 35}

// fixedRand always draws the same probability and palette index.
type fixedRand struct {
	draw  float32
	index int
}

func (f fixedRand) IntN(int) int     { return f.index }
func (f fixedRand) Float32() float32 { return f.draw }

func words(values ...int32) []byte {
	buf := make([]byte, 0, len(values)*WordSize)
	for _, v := range values {
		buf = binary.BigEndian.AppendUint32(buf, uint32(v))
	}
	return buf
}

func TestApply_ShortBuffersUntouched(t *testing.T) {
	always := fixedRand{draw: 0, index: 0}

	for n := 0; n < WordSize; n++ {
		buf := bytes.Repeat([]byte{0}, n)
		orig := bytes.Clone(buf)

		count, err := Apply(buf, palette, always)

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Equal(t, orig, buf, "length %d", n)
	}
}

func TestApply_RewritesOnlyFirstByteOfCandidates(t *testing.T) {
	// index 10 -> palette entry 35
	always := fixedRand{draw: 0, index: 10}
	buf := words(0, 999, 1000, -1, 5)

	count, err := Apply(buf, palette, always)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	want := words(0, 999, 1000, -1, 5)
	want[0] = 35  // word 0: value 0
	want[4] = 35  // word 1: value 999
	want[16] = 35 // word 4: value 5
	assert.Equal(t, want, buf)
}

func TestApply_ProbabilityGate(t *testing.T) {
	buf := words(1, 2, 3)
	orig := bytes.Clone(buf)

	count, err := Apply(buf, palette, fixedRand{draw: Probability, index: 0})
	require.NoError(t, err)
	assert.Zero(t, count, "draws at or above the probability must not rewrite")
	assert.Equal(t, orig, buf)

	count, err = Apply(buf, palette, fixedRand{draw: Probability - 0.01, index: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestApply_TrailingPartialWordSkipped(t *testing.T) {
	buf := append(words(7), 0, 0, 0)
	count, err := Apply(buf, palette, fixedRand{draw: 0, index: 4})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []byte{12, 0, 0, 7, 0, 0, 0}, buf)
}

func TestApply_LengthNeverChanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for n := 0; n < 256; n++ {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(rng.IntN(4)) // mostly small words, plenty of candidates
		}

		_, err := Apply(buf, palette, rng)
		require.NoError(t, err)
		assert.Len(t, buf, n)
	}
}

func TestApply_OnlyPaletteBytesWritten(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	buf := make([]byte, 4096) // every word is zero, so every word is a candidate

	count, err := Apply(buf, palette, rng)
	require.NoError(t, err)

	allowed := map[byte]bool{0: true}
	for _, id := range palette {
		allowed[byte(id)] = true
	}
	changed := 0
	for i, b := range buf {
		if i%WordSize != 0 {
			assert.Zero(t, b, "non-leading byte %d modified", i)
			continue
		}
		assert.True(t, allowed[b], "byte %d = %d is not a palette ID", i, b)
		if b != 0 {
			changed++
		}
	}
	assert.Equal(t, count, changed)

	// 1024 candidates at p=0.3 -> ~307 rewrites
	assert.InDelta(t, 307, count, 60)
}

func TestApply_EmptyPalette(t *testing.T) {
	buf := words(1)
	_, err := Apply(buf, nil, fixedRand{})
	assert.ErrorIs(t, err, ErrEmptyPalette)
	assert.Equal(t, words(1), buf)
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		value int32
		want  bool
	}{
		{0, true},
		{1, true},
		{999, true},
		{1000, false},
		{-1, false},
		{1 << 30, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCandidate(words(tt.value)), "value %d", tt.value)
	}
	assert.False(t, IsCandidate([]byte{0, 0, 0}))
}

func TestDefaultRand_ConcurrentUse(t *testing.T) {
	rng := DefaultRand()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, 1024)
			for i := 0; i < 50; i++ {
				_, err := Apply(buf, palette, rng)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
