package gridword

import "hash/fnv"

// Node is a DAWG node: a terminal flag and its outgoing edges. Two nodes
// with the same IsWord flag and the same ordered edge list are structurally
// interchangeable and collapse to a single arena slot during minimization.
type Node struct {
	IsWord bool
	Edges  EdgeMap
}

// nodeSignature computes a stable 64-bit hash over a node's shape: its
// IsWord flag (folded into the FNV seed so that two nodes with identical
// edges but different terminal status never collide) and the raw sequence
// of its ordered edges. Identical nodes always produce identical
// signatures; the signature space is large enough that unrelated nodes
// colliding is not expected for realistic lexicons (see nodelookup.go for
// the handling when it nonetheless happens).
func nodeSignature(n *Node) uint64 {
	h := fnv.New64a()
	if n.IsWord {
		// A distinct seed byte for word-terminal nodes, so that "cat" (word)
		// and a hypothetical identical-edge non-word node never collide.
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	buf := make([]byte, 0, n.Edges.Len()*5)
	for i := 0; i < n.Edges.Len(); i++ {
		e := n.Edges.At(i)
		buf = append(buf, e.Letter,
			byte(e.Node), byte(e.Node>>8), byte(e.Node>>16), byte(e.Node>>24))
	}
	h.Write(buf)
	return h.Sum64()
}

func (n *Node) reset() {
	n.IsWord = false
	n.Edges.reset()
}
