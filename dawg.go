package gridword

import (
	"bytes"
	"log"
)

// MaxWordLen is the longest word the builder and the search kernel will
// ever hold in a scratch buffer.
const MaxWordLen = 32

// Dawg is a finalized, immutable Directed Acyclic Word Graph plus the
// letter-frequency distribution observed while it was built. Once
// returned from DawgBuilder.Publish, a Dawg has no interior mutability and
// is safe to share read-only across concurrent searches against distinct
// boards.
type Dawg struct {
	Nodes        *NodeArena
	Distribution Distribution
}

// Contains reports whether word (lowercase a-z, already validated by the
// caller) is reachable from the root and terminates on a word node.
func (d *Dawg) Contains(word []byte) bool {
	node := int32(0)
	for _, l := range word {
		child, ok := d.Nodes.Get(node).Edges.Find(l)
		if !ok {
			return false
		}
		node = child
	}
	return d.Nodes.Get(node).IsWord
}

// pendingEdge is an edge appended since the previous word whose
// equivalence class has not yet been resolved by minimization.
type pendingEdge struct {
	from, to int32
	letter   byte
}

// DawgBuilder incrementally constructs a minimized DAWG from words
// presented in strict lexicographic order (Appel & Jacobson, CACM 1988).
// A DawgBuilder is single-use: call Add repeatedly, then Finalize, then
// Publish.
type DawgBuilder struct {
	arena  *NodeArena
	lookup *NodeLookup

	edgeStack    [MaxWordLen]pendingEdge
	edgeStackLen int32

	prevWord [MaxWordLen]byte
	prevLen  int

	letterCounts    [26]uint32
	letterCountsSum uint32
}

// NewDawgBuilder creates an empty builder. lookupCapacity is the fixed
// bucket count of the signature lookup (8192 is the documented default).
func NewDawgBuilder(lookupCapacity int32) *DawgBuilder {
	return &DawgBuilder{
		arena:  newNodeArena(),
		lookup: NewNodeLookup(lookupCapacity),
	}
}

// minimize pops edges off the pending stack down to toDepth, merging each
// popped node into an existing structurally-equivalent one if the
// signature lookup already knows of one, or registering it as new
// otherwise. This is the heart of on-the-fly minimization: as soon as a
// suffix branch stops being extended by the next word, it is either folded
// into an already-seen equivalent branch or recorded as a new one.
func (b *DawgBuilder) minimize(toDepth int32) {
	for b.edgeStackLen > toDepth {
		b.edgeStackLen--
		pe := b.edgeStack[b.edgeStackLen]
		toNode := b.arena.Get(pe.to)
		sig := nodeSignature(toNode)
		if existing, ok := b.lookup.Find(sig); ok {
			b.arena.Get(pe.from).Edges.Replace(pe.letter, existing)
			b.arena.Pop(pe.to)
		} else {
			b.lookup.Insert(sig, pe.to)
		}
	}
}

// Add inserts word into the builder. It returns false (and leaves the
// builder's prevWord state unchanged) if word is rejected: empty, longer
// than MaxWordLen, containing a byte outside a-z, lexicographically less
// than the previous accepted word, or a strict (shorter) prefix of it. An
// exact duplicate of the previous word is accepted as a harmless no-op.
// Rejections are soft: the overall build continues, per spec policy
// (DESIGN.md, Open Question 2).
func (b *DawgBuilder) Add(word []byte) bool {
	if len(word) == 0 || len(word) > MaxWordLen {
		return false
	}
	for _, c := range word {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	for _, c := range word {
		b.letterCounts[c-'a']++
		b.letterCountsSum++
	}

	minLen := len(word)
	if b.prevLen < minLen {
		minLen = b.prevLen
	}
	// Compare only the shared prefix length, matching rl_dawg_ctx_add's
	// memcmp(prev_word, word, min_word_len): a word that merely extends
	// prevWord (or duplicates it exactly) is never out of order, only one
	// that is lexicographically earlier or a strict, shorter prefix of it.
	cmp := bytes.Compare(word[:minLen], b.prevWord[:minLen])
	if cmp < 0 || (cmp == 0 && len(word) < b.prevLen) {
		log.Printf("gridword: rejecting out-of-order word %q", word)
		return false
	}

	commonPrefix := 0
	for commonPrefix < minLen && word[commonPrefix] == b.prevWord[commonPrefix] {
		commonPrefix++
	}
	if int32(commonPrefix) < b.edgeStackLen {
		b.minimize(int32(commonPrefix))
	}

	from := int32(0)
	if b.edgeStackLen > 0 {
		from = b.edgeStack[b.edgeStackLen-1].to
	}
	for i := commonPrefix; i < len(word); i++ {
		isWord := i == len(word)-1
		to := b.arena.Push(isWord)
		b.arena.Get(from).Edges.Insert(word[i], to)
		b.edgeStack[b.edgeStackLen] = pendingEdge{from: from, to: to, letter: word[i]}
		b.edgeStackLen++
		from = to
	}

	copy(b.prevWord[:], word)
	b.prevLen = len(word)
	return true
}

// Finalize drains the pending-edge stack entirely, minimizing every
// remaining branch. Call this once, after the last Add.
func (b *DawgBuilder) Finalize() {
	b.minimize(0)
}

// Publish transfers ownership of the arena to a new, immutable Dawg and
// computes its letter-frequency distribution from the letter counts
// accumulated by Add. Every word that passes Add's length and a-z checks is
// counted, including one then rejected as out of order. The builder must
// not be used again.
func (b *DawgBuilder) Publish() *Dawg {
	d := &Dawg{
		Nodes:        b.arena,
		Distribution: newDistribution(b.letterCounts, b.letterCountsSum),
	}
	b.arena = nil
	return d
}
