package gridword

import (
	"math"
	"strings"
	"testing"
)

// buildSample builds the six-word DAWG used throughout spec §8's
// minimization and distribution scenarios.
func buildSample(t *testing.T) *Dawg {
	t.Helper()
	words := []string{"cat", "cats", "facet", "facets", "fact", "facts"}
	dawg, accepted := BuildFromReader(strings.NewReader(strings.Join(words, "\n")))
	if accepted != len(words) {
		t.Fatalf("accepted = %d, want %d", accepted, len(words))
	}
	return dawg
}

func TestDawgMinimizationNodeCount(t *testing.T) {
	dawg := buildSample(t)
	if got := dawg.Nodes.Len(); got != 8 {
		t.Errorf("node count = %d, want 8", got)
	}
}

func TestDawgSharedSuffixNode(t *testing.T) {
	dawg := buildSample(t)
	walk := func(word string) int32 {
		node := int32(0)
		for i := 0; i < len(word); i++ {
			child, ok := dawg.Nodes.Get(node).Edges.Find(word[i])
			if !ok {
				t.Fatalf("word %q not reachable at position %d", word, i)
			}
			node = child
		}
		return node
	}
	catT := walk("cat")
	facetT := walk("facet")
	if catT != facetT {
		t.Errorf("cat and facet should land on the same shared t->s suffix node, got %d and %d", catT, facetT)
	}
}

func TestDawgRoundTrip(t *testing.T) {
	words := []string{"cat", "cats", "facet", "facets", "fact", "facts"}
	dawg, _ := BuildFromReader(strings.NewReader(strings.Join(words, "\n")))
	for _, w := range words {
		if !dawg.Contains([]byte(w)) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"ca", "fa", "cast", "facetss", "dog", ""} {
		if dawg.Contains([]byte(w)) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
}

func TestDistributionWeights(t *testing.T) {
	dawg := buildSample(t)
	want := map[byte]float64{
		'a': 6.0 / 27.0,
		'c': 6.0 / 27.0,
		'e': 2.0 / 27.0,
		'f': 4.0 / 27.0,
		's': 3.0 / 27.0,
		't': 6.0 / 27.0,
	}
	sum := 0.0
	for i, w := range dawg.Distribution.Weights {
		sum += w
		letter := byte('a' + i)
		expected, ok := want[letter]
		if !ok {
			expected = 0
		}
		if math.Abs(w-expected) > 1e-6 {
			t.Errorf("weight[%c] = %v, want %v", letter, w, expected)
		}
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("sum of weights = %v, want 1.0", sum)
	}
}

func TestDawgBuilderRejectsOutOfOrder(t *testing.T) {
	b := NewDawgBuilder(8192)
	if !b.Add([]byte("cat")) {
		t.Fatal("expected cat to be accepted")
	}
	if b.Add([]byte("bat")) {
		t.Error("expected bat (out of order after cat) to be rejected")
	}
	if !b.Add([]byte("cat")) {
		t.Error("expected an exact duplicate of the prior word to be accepted as a harmless no-op")
	}
	if b.Add([]byte("ca")) {
		t.Error("expected strict prefix of prior word to be rejected")
	}
	if b.Add([]byte("")) {
		t.Error("expected empty word to be rejected")
	}
	if b.Add([]byte("Cat")) {
		t.Error("expected word with non a-z byte to be rejected")
	}
	b.Finalize()
	dawg := b.Publish()
	if !dawg.Contains([]byte("cat")) {
		t.Error("cat should still be present after rejections")
	}
}

func TestDistributionEmptyBuild(t *testing.T) {
	dawg, accepted := BuildFromReader(strings.NewReader(""))
	if accepted != 0 {
		t.Fatalf("accepted = %d, want 0", accepted)
	}
	for i, w := range dawg.Distribution.Weights {
		if w != 0 {
			t.Errorf("weight[%c] = %v, want 0 for an empty build", 'a'+i, w)
		}
	}
}
