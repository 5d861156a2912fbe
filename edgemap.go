package gridword

import "sort"

// Edge is a single labeled transition in the DAWG: a letter byte ('a'..'z')
// paired with the arena index of the child node it leads to.
type Edge struct {
	Letter byte  // 'a'..'z'
	Node   int32 // index into a NodeArena
}

// EdgeMap is a node's outgoing edges, kept sorted by letter. Edge counts per
// node are 0-26 with a strong low-single-digit mode, so a sorted dense slice
// beats a map both in cache footprint and in giving nodes a deterministic,
// hashable byte representation (see nodeSignature in node.go).
type EdgeMap struct {
	edges []Edge
}

// Insert appends a new edge. The caller must insert letters in strictly
// ascending order; this keeps the map sorted for O(1) amortized insertion
// and O(log n) lookup, and is the only insertion discipline the DAWG
// builder ever uses.
func (m *EdgeMap) Insert(letter byte, node int32) {
	if n := len(m.edges); n > 0 && m.edges[n-1].Letter >= letter {
		panic("gridword: EdgeMap.Insert requires strictly ascending letter order")
	}
	m.edges = append(m.edges, Edge{Letter: letter, Node: node})
}

// Find returns the child node for letter, and whether it was present.
func (m *EdgeMap) Find(letter byte) (int32, bool) {
	edges := m.edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Letter >= letter })
	if i < len(edges) && edges[i].Letter == letter {
		return edges[i].Node, true
	}
	return 0, false
}

// Replace overwrites the child node for an existing letter. It is undefined
// (panics) if the letter is absent; callers must have checked with Find.
func (m *EdgeMap) Replace(letter byte, node int32) {
	edges := m.edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Letter >= letter })
	if i >= len(edges) || edges[i].Letter != letter {
		panic("gridword: EdgeMap.Replace on absent letter")
	}
	edges[i].Node = node
}

// Len returns the number of outgoing edges.
func (m *EdgeMap) Len() int { return len(m.edges) }

// At returns the i-th edge in sorted order.
func (m *EdgeMap) At(i int) Edge { return m.edges[i] }

// reset empties the edge map in place, for node-arena pop/recycling.
func (m *EdgeMap) reset() {
	m.edges = m.edges[:0]
}
