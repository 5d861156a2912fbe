package gridword

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestNodeLookupDuplicateSignatureWarning(t *testing.T) {
	lookup := NewNodeLookup(4)
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	lookup.Insert(42, 1)
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output after first insert: %q", buf.String())
	}
	lookup.Insert(42, 2)
	if !strings.Contains(buf.String(), "duplicate node") {
		t.Errorf("expected a duplicate-signature warning, got %q", buf.String())
	}
	if idx, ok := lookup.Find(42); !ok || idx != 1 {
		t.Errorf("Find(42) = (%d, %v), want (1, true): the original entry must survive a collision", idx, ok)
	}
}

func TestNodeLookupNoWarningsForSampleBuild(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	words := []string{"cat", "cats", "facet", "facets", "fact", "facts"}
	BuildFromReader(strings.NewReader(strings.Join(words, "\n")))

	if strings.Contains(buf.String(), "duplicate node") {
		t.Errorf("expected 0 duplicate-signature warnings building the sample dictionary, got log: %q", buf.String())
	}
}
