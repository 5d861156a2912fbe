package gridword

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// SegmentCache memoizes SearchSegment results for repeated identical
// probes against the same board generation -- the access pattern a
// hint/preview UI produces when a player nudges a cursor back and forth
// over the same few cells. It is never used by the DAWG builder's own
// signature lookup (nodelookup.go), which must behave as a plain,
// non-evicting chained map; an LRU there would silently reintroduce
// duplicate, already-minimized branches.
//
// Grounded on the teacher repo's dawg.go crossCache, which wraps the same
// simplelru.LRU around repeated CrossSet lookups.
type SegmentCache struct {
	lru *lru.LRU
}

type segmentCacheResult struct {
	count int
	move  Move
}

// NewSegmentCache creates a cache holding up to size recent
// SearchSegment results.
func NewSegmentCache(size int) *SegmentCache {
	l, _ := lru.NewLRU(size, nil)
	return &SegmentCache{lru: l}
}

// Invalidate drops every cached result. Call this after any Board.Write,
// since a write can change checkbits at anchors arbitrarily far along the
// same line.
func (c *SegmentCache) Invalidate() {
	c.lru.Purge()
}

func segmentCacheKey(startIndex int, pattern []byte, length int, across bool, rack Rack) string {
	return fmt.Sprintf("%d|%s|%d|%v|%v", startIndex, pattern, length, across, rack.Counts)
}

// SearchSegment behaves exactly like the package-level SearchSegment, but
// returns a cached result when one exists for the same
// (startIndex, pattern, length, across, rack) combination.
func (c *SegmentCache) SearchSegment(dawg *Dawg, board *Board, rack Rack, startIndex int, pattern []byte, length int, across bool, strategy Strategy) (int, Move) {
	key := segmentCacheKey(startIndex, pattern, length, across, rack)
	if v, ok := c.lru.Get(key); ok {
		r := v.(segmentCacheResult)
		return r.count, r.move
	}
	count, move := SearchSegment(dawg, board, rack, startIndex, pattern, length, across, strategy)
	c.lru.Add(key, segmentCacheResult{count: count, move: move})
	return count, move
}
