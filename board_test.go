package gridword

import (
	"strings"
	"testing"
)

func testDawg(t *testing.T) *Dawg {
	t.Helper()
	words := []string{
		"day", "days", "ray", "rays", "say", "says",
		"today", "todays", "yesterday", "yesterdays",
	}
	dawg, accepted := BuildFromReader(strings.NewReader(strings.Join(words, "\n")))
	if accepted != len(words) {
		t.Fatalf("accepted = %d, want %d", accepted, len(words))
	}
	return dawg
}

func TestBoardWriteCreatesAnchorsAtWordEnds(t *testing.T) {
	dawg := testDawg(t)
	b := NewBoard(15, 15)

	start := b.Index(4, 4)
	if !b.Write(dawg, start, true, []byte("yesterday")) {
		t.Fatal("write of yesterday failed")
	}

	before := b.Index(3, 4)
	after := b.Index(13, 4)
	if b.letters[before] != Anchor {
		t.Errorf("cell before the word = %q, want Anchor", b.letters[before])
	}
	if b.letters[after] != Anchor {
		t.Errorf("cell after the word = %q, want Anchor", b.letters[after])
	}
	word := "yesterday"
	for i := 0; i < len(word); i++ {
		idx := b.Index(4+i, 4)
		if b.letters[idx] != word[i] {
			t.Errorf("cell %d = %q, want %q", i, b.letters[idx], word[i])
		}
	}
}

func TestBoardWriteRejectsConflictingLetter(t *testing.T) {
	dawg := testDawg(t)
	b := NewBoard(15, 15)
	start := b.Index(4, 4)
	if !b.Write(dawg, start, true, []byte("day")) {
		t.Fatal("initial write failed")
	}
	if b.Write(dawg, start, true, []byte("ray")) {
		t.Error("expected a conflicting overlapping write to fail")
	}
	// The board must be untouched by the rejected write.
	if b.letters[start] != 'd' {
		t.Errorf("cell 0 = %q after rejected write, want 'd' unchanged", b.letters[start])
	}
}

func TestBoardCheckbitsAnyWhenNoNeighbors(t *testing.T) {
	b := NewBoard(5, 5)
	idx := b.Index(3, 3)
	if b.checkAcross[idx] != CheckbitsAny {
		t.Errorf("checkAcross = %x, want CheckbitsAny", b.checkAcross[idx])
	}
	if b.checkDown[idx] != CheckbitsAny {
		t.Errorf("checkDown = %x, want CheckbitsAny", b.checkDown[idx])
	}
}

func TestResolveCheckbitsMatchesDictionary(t *testing.T) {
	// A tiny purpose-built dictionary: every word is a single letter
	// followed by "d", so the cross-check at a cell whose only
	// perpendicular neighbor is a 'd' immediately after it should have
	// exactly the bits for 'a', 'b' and 'c' set.
	dawg, accepted := BuildFromReader(strings.NewReader("ad\nbd\ncd"))
	if accepted != 3 {
		t.Fatalf("accepted = %d, want 3", accepted)
	}

	b := NewBoard(5, 5)
	anchor := b.Index(3, 3)
	b.letters[anchor+1] = 'd'

	bits := resolveCheckbits(dawg, b, anchor, 1, FlagPrevAcross, FlagNextAcross)
	for _, want := range []byte{'a', 'b', 'c'} {
		if bits&(1<<(want-'a')) == 0 {
			t.Errorf("bit for %q not set, want set", want)
		}
	}
	for _, notWant := range []byte{'d', 'e', 'z'} {
		if bits&(1<<(notWant-'a')) != 0 {
			t.Errorf("bit for %q set, want clear", notWant)
		}
	}
}

func TestResolveCheckbitsAllLegalWithNoNeighbors(t *testing.T) {
	dawg, _ := BuildFromReader(strings.NewReader("ad\nbd"))
	b := NewBoard(5, 5)
	anchor := b.Index(3, 3)
	if bits := resolveCheckbits(dawg, b, anchor, 1, FlagPrevAcross, FlagNextAcross); bits != CheckbitsAny {
		t.Errorf("bits = %x, want CheckbitsAny with no placed neighbors", bits)
	}
}

func TestBoardBlockNextForbidsSpanningMove(t *testing.T) {
	dawg := testDawg(t)
	b := NewBoard(15, 15)
	start := b.Index(4, 4)
	b.BlockNext(b.Index(6, 4), true)
	if b.Write(dawg, start, true, []byte("days")) {
		t.Error("expected write spanning a blocked seam to fail")
	}
}

func TestBoardWriteDoesNotMarkAnchorAcrossBlockedSeam(t *testing.T) {
	dawg := testDawg(t)
	b := NewBoard(5, 5)
	idxA := b.Index(3, 3)
	b.BlockNext(idxA, false) // blocks the seam immediately below idxA
	if !b.Write(dawg, idxA, true, []byte("a")) {
		t.Fatal("write of a single letter failed")
	}
	below := idxA + b.width
	if b.letters[below] == Anchor {
		t.Errorf("cell across a blocked seam was marked Anchor, want it left untouched")
	}
}

func TestResolveCheckbitsIgnoresLetterAcrossBlockedSeam(t *testing.T) {
	dawg, accepted := BuildFromReader(strings.NewReader("ad\nbd\ncd"))
	if accepted != 3 {
		t.Fatalf("accepted = %d, want 3", accepted)
	}
	b := NewBoard(5, 5)
	anchor := b.Index(3, 3)
	b.letters[anchor+1] = 'd'
	b.BlockNext(anchor, true) // blocks the seam between anchor and the 'd'

	if bits := resolveCheckbits(dawg, b, anchor, 1, FlagPrevAcross, FlagNextAcross); bits != CheckbitsAny {
		t.Errorf("bits = %x, want CheckbitsAny: the seam to the 'd' is blocked, so it must not be folded into the anchor's suffix", bits)
	}
}
