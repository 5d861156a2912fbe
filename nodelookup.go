package gridword

import "log"

// nodeLookupItem is one link in a signature-lookup hash bucket's chain.
type nodeLookupItem struct {
	next      *nodeLookupItem
	signature uint64
	node      int32
}

// NodeLookup is a fixed-capacity, separately-chained hash map from node
// signature to arena index, used only during DAWG construction to find an
// existing node structurally equivalent to one just built. Unlike a cache,
// it never evicts: its capacity is fixed for the lifetime of a build, and a
// signature collision (the same signature arriving for what construction
// believes is a different node) is a data point to warn about, not an
// entry to replace.
type NodeLookup struct {
	capacity int32
	buckets  []*nodeLookupItem
}

// NewNodeLookup creates a lookup table with the given fixed bucket count.
// 8192 is the default per the word-list build path (wordlist.go).
func NewNodeLookup(capacity int32) *NodeLookup {
	if capacity <= 0 {
		panic("gridword: NodeLookup capacity must be positive")
	}
	return &NodeLookup{capacity: capacity, buckets: make([]*nodeLookupItem, capacity)}
}

// Insert registers node under signature. If a node is already registered
// under the same signature, the insert is dropped and a warning is logged;
// the existing entry (and the branch it points at) is left exactly as it
// was. This matches the reference minimizer: a collision means the new
// branch simply stays un-merged rather than risking a wrong dedup.
func (l *NodeLookup) Insert(signature uint64, node int32) {
	bucket := signature % uint64(l.capacity)
	for item := l.buckets[bucket]; item != nil; item = item.next {
		if item.signature == signature {
			log.Printf("gridword: duplicate node with signature %d", signature)
			return
		}
	}
	l.buckets[bucket] = &nodeLookupItem{
		next:      l.buckets[bucket],
		signature: signature,
		node:      node,
	}
}

// Find returns the node index registered under signature, if any.
func (l *NodeLookup) Find(signature uint64) (int32, bool) {
	bucket := signature % uint64(l.capacity)
	for item := l.buckets[bucket]; item != nil; item = item.next {
		if item.signature == signature {
			return item.node, true
		}
	}
	return 0, false
}
