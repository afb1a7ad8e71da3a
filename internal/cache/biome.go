// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package cache

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
)

// PaletteSize is the number of biome IDs eligible for substitution.
const PaletteSize = 11

// MaxBiomeEntries is the key count above which the cache is cleared.
const MaxBiomeEntries = 1000

// Palette holds the biome IDs used for substitution, in canonical order.
var Palette = [PaletteSize]int32{
	1,  // plains
	4,  // forest
	6,  // swamp
	7,  // river
	12, // desert
	21, // jungle
	25, // birch forest
	27, // birch forest hills
	29, // dark forest
	30, // snowy taiga
	35, // savanna
}

// Permutation is an ordering of Palette.
type Permutation [PaletteSize]int32

// IsValid reports whether p contains every palette ID exactly once.
func (p Permutation) IsValid() bool {
	seen := make(map[int32]int, PaletteSize)
	for _, id := range p {
		seen[id]++
	}
	for _, id := range Palette {
		if seen[id] != 1 {
			return false
		}
	}
	return len(seen) == PaletteSize
}

// Shuffler permutes n elements through swap. rand.Shuffle and
// (*rand.Rand).Shuffle both satisfy it.
type Shuffler func(n int, swap func(i, j int))

// NewPermutation returns a uniformly shuffled copy of Palette.
func NewPermutation(shuffle Shuffler) Permutation {
	p := Permutation(Palette)
	shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// ChunkKey identifies a chunk column within a world.
type ChunkKey struct {
	World string
	X     int32
	Z     int32
}

// String renders the key as world_x_z.
func (k ChunkKey) String() string {
	return k.World + "_" + strconv.FormatInt(int64(k.X), 10) + "_" + strconv.FormatInt(int64(k.Z), 10)
}

// biomeGeneration is one lifetime of the cache between resets.
type biomeGeneration struct {
	entries sync.Map // ChunkKey -> *Permutation
	size    atomic.Int64
}

// BiomeCache maps chunk keys to stable palette permutations.
type BiomeCache struct {
	current atomic.Pointer[biomeGeneration]
	shuffle Shuffler
	resets  atomic.Int64
}

// BiomeCacheOption configures a BiomeCache.
type BiomeCacheOption func(*BiomeCache)

// WithShuffler overrides the shuffle source. The shuffler must be safe for
// concurrent use; the default is the package-level math/rand/v2 generator.
func WithShuffler(s Shuffler) BiomeCacheOption {
	return func(c *BiomeCache) {
		if s != nil {
			c.shuffle = s
		}
	}
}

// NewBiomeCache creates an empty cache.
func NewBiomeCache(opts ...BiomeCacheOption) *BiomeCache {
	c := &BiomeCache{shuffle: rand.Shuffle}
	for _, opt := range opts {
		opt(c)
	}
	c.current.Store(&biomeGeneration{})
	return c
}

// Get returns the permutation cached for key, if any.
func (c *BiomeCache) Get(key ChunkKey) (Permutation, bool) {
	v, ok := c.current.Load().entries.Load(key)
	if !ok {
		return Permutation{}, false
	}
	return *v.(*Permutation), true
}

// GetOrGenerate returns the permutation for key, generating and storing a new
// one on first access.
func (c *BiomeCache) GetOrGenerate(key ChunkKey) Permutation {
	gen := c.current.Load()
	if v, ok := gen.entries.Load(key); ok {
		return *v.(*Permutation)
	}

	perm := NewPermutation(c.shuffle)
	actual, loaded := gen.entries.LoadOrStore(key, &perm)
	if !loaded {
		gen.size.Add(1)
	}
	return *actual.(*Permutation)
}

// Len returns the number of keys in the current generation.
func (c *BiomeCache) Len() int {
	return int(c.current.Load().size.Load())
}

// Reset drops every entry.
func (c *BiomeCache) Reset() {
	c.current.Store(&biomeGeneration{})
	c.resets.Add(1)
}

// ResetIfExceeds clears the cache when it holds more than limit keys and
// reports whether it did. Concurrent callers reset a given generation once.
func (c *BiomeCache) ResetIfExceeds(limit int) bool {
	gen := c.current.Load()
	if gen.size.Load() <= int64(limit) {
		return false
	}
	if !c.current.CompareAndSwap(gen, &biomeGeneration{}) {
		return false
	}
	c.resets.Add(1)
	return true
}

// Resets returns how many times the cache has been cleared.
func (c *BiomeCache) Resets() int64 {
	return c.resets.Load()
}
