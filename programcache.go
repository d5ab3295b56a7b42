// Copyright 2026 The gomapgl Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"hash/fnv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gomapgl/render/gfx"
	"github.com/gomapgl/render/shader"
)

// programShardCount is the number of cache shards. Must be a power of
// 2 for fast modulo via bitwise AND.
const programShardCount = 8

const programShardMask = programShardCount - 1

// ProgramKey identifies one unique layer+projection+define
// combination. Programs are built once per key and reused for every
// frame thereafter.
type ProgramKey struct {
	// Layer is the program name.
	Layer string
	// Projection is the projection name.
	Projection string
	// Defines is the define-list fingerprint produced by
	// NewProgramKey.
	Defines string
}

// NewProgramKey derives the cache key for a program assembled with
// the given options. The fingerprint covers everything that changes
// assembled text: the dialect, the built-in toggles and the extra
// defines in order.
func NewProgramKey(name string, opts shader.Options) ProgramKey {
	parts := make([]string, 0, 3+len(opts.Defines))
	if opts.GLSL300 {
		parts = append(parts, "glsl300")
	}
	if opts.Overdraw {
		parts = append(parts, "overdraw")
	}
	if opts.Terrain {
		parts = append(parts, "terrain")
	}
	parts = append(parts, opts.Defines...)
	return ProgramKey{
		Layer:      name,
		Projection: opts.Projection.Name,
		Defines:    strings.Join(parts, ";"),
	}
}

// hash computes the FNV-1a shard hash of the key.
func (k ProgramKey) hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.Layer))   // fnv.Write never returns an error
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(k.Projection))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(k.Defines))
	return h.Sum64()
}

// ProgramCache holds compiled programs keyed by ProgramKey. Entries
// are never evicted by the cache itself: programs stay usable until
// Clear, which the caller runs on teardown or after context
// restoration to force fresh builds.
//
// The cache is sharded and safe for concurrent reads; the render loop
// is single-threaded, so sharding here is about keeping lookup cost
// flat, not contention.
type ProgramCache struct {
	shards [programShardCount]programCacheShard

	hits   atomic.Uint64
	misses atomic.Uint64
}

type programCacheShard struct {
	mu      sync.Mutex
	entries map[ProgramKey]*Program
}

// NewProgramCache returns an empty cache.
func NewProgramCache() *ProgramCache {
	c := &ProgramCache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[ProgramKey]*Program)
	}
	return c
}

func (c *ProgramCache) shard(key ProgramKey) *programCacheShard {
	return &c.shards[key.hash()&programShardMask]
}

// GetOrBuild returns the cached program for key, building and caching
// it on first use. Build errors are returned without caching, so a
// later call may retry with corrected sources; a soft-failed program
// (context loss) is cached like any other and stays a no-op until
// Clear.
func (c *ProgramCache) GetOrBuild(key ProgramKey, build func() (*Program, error)) (*Program, error) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.entries[key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	c.misses.Add(1)
	p, err := build()
	if err != nil {
		return nil, err
	}
	s.entries[key] = p
	gfx.Logger().Debug("render: program cached",
		"layer", key.Layer, "projection", key.Projection, "defines", key.Defines)
	return p, nil
}

// Len returns the number of cached programs.
func (c *ProgramCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Clear deletes every cached program's device object and empties the
// cache. Call after graphics-context loss and recovery; the next
// GetOrBuild per key builds a fresh program.
func (c *ProgramCache) Clear(ctx gfx.Context) {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		for _, p := range s.entries {
			p.Delete(ctx)
		}
		s.entries = make(map[ProgramKey]*Program)
		s.mu.Unlock()
	}
}

// CacheStats is a point-in-time snapshot of cache effectiveness.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// Stats returns current hit/miss counters and entry count.
func (c *ProgramCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.Len(),
	}
}
