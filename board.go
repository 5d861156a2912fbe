package gridword

import "golang.org/x/exp/slices"

// Sentinel cell values, disjoint from any letter byte ('a'-'z' = 97-122).
const (
	Blank  byte = 176 // empty cell, not yet known to be reachable from a letter
	Anchor byte = 177 // empty cell orthogonally adjacent to a letter
)

// Block-flag bits, one per cell, forbidding movement across a seam in a
// given direction.
const (
	FlagNextAcross uint8 = 1 << iota
	FlagNextDown
	FlagPrevAcross
	FlagPrevDown
)

// CheckbitsAny is the cross-check mask meaning "every letter is legal
// here": all 26 low bits set.
const CheckbitsAny uint32 = (1 << 26) - 1

// Board is a rectangle of playable cells padded by a one-cell border on
// every side (the border is never written and exists only so that
// perpendicular/along-axis scans can stop naturally at the edge without
// special-casing it). Storage is flat, row-major, stride = width.
type Board struct {
	playableX, playableY int
	width, height         int

	letters      []byte
	blockflags   []uint8
	checkAcross  []uint32 // consulted when placing a DOWN word
	checkDown    []uint32 // consulted when placing an ACROSS word
}

// NewBoard creates a board with the given playable dimensions (border
// cells are added automatically). Every interior cell starts BLANK with
// both checkbit masks set to CheckbitsAny; a word must still be written
// via Write before any cell becomes an ANCHOR.
func NewBoard(playableX, playableY int) *Board {
	b := &Board{
		playableX: playableX,
		playableY: playableY,
		width:     playableX + 2,
		height:    playableY + 2,
	}
	n := b.width * b.height
	b.letters = make([]byte, n)
	b.blockflags = make([]uint8, n)
	b.checkAcross = make([]uint32, n)
	b.checkDown = make([]uint32, n)

	for i := range b.letters {
		b.letters[i] = Blank
		b.checkAcross[i] = CheckbitsAny
		b.checkDown[i] = CheckbitsAny
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			var f uint8
			if x == 0 || x == b.width-1 || y == 0 || y == b.height-1 {
				// Border cells are fully closed on every side: never
				// written, never steppable through, never adjacent to
				// anything that could be legally crossed.
				f = FlagNextAcross | FlagPrevAcross | FlagNextDown | FlagPrevDown
			} else {
				if x == 1 {
					f |= FlagPrevAcross
				}
				if x == b.width-2 {
					f |= FlagNextAcross
				}
				if y == 1 {
					f |= FlagPrevDown
				}
				if y == b.height-2 {
					f |= FlagNextDown
				}
			}
			b.blockflags[idx] = f
		}
	}
	return b
}

// Index converts 1-based playable coordinates to a flat cell index.
func (b *Board) Index(x, y int) int { return y*b.width + x }

// Coord converts a flat cell index back to 1-based playable coordinates.
func (b *Board) Coord(index int) (x, y int) { return index % b.width, index / b.width }

// Offset returns the step between consecutive cells of a word: 1 across,
// the row stride down.
func (b *Board) Offset(across bool) int {
	if across {
		return 1
	}
	return b.width
}

func (b *Board) isLetter(idx int) bool {
	l := b.letters[idx]
	return l != Blank && l != Anchor
}

// Write places word starting at startIndex in the direction indicated by
// across, returning false without modifying the board if the placement is
// malformed: it would overlap an existing, non-matching letter, or it
// would span a blocked seam mid-word. On success, every newly written
// cell's neighbors are scanned for new anchors, and every affected
// anchor's checkbits are recomputed.
func (b *Board) Write(dawg *Dawg, startIndex int, across bool, word []byte) bool {
	offset := b.Offset(across)
	nextFlag, prevFlag := FlagNextAcross, FlagPrevAcross
	if !across {
		nextFlag, prevFlag = FlagNextDown, FlagPrevDown
	}
	perpOffset := b.Offset(!across)
	perpNextFlag, perpPrevFlag := FlagNextDown, FlagPrevDown
	if !across {
		perpNextFlag, perpPrevFlag = FlagNextAcross, FlagPrevAcross
	}

	// Validate the whole placement before writing anything, so a rejected
	// move never partially corrupts the board.
	idx := startIndex
	for i, ch := range word {
		if i > 0 && b.blockflags[idx-offset]&nextFlag != 0 {
			return false
		}
		existing := b.letters[idx]
		if existing != Blank && existing != Anchor && existing != ch {
			return false
		}
		idx += offset
	}

	dirty := make(map[int]bool)
	idx = startIndex
	for _, ch := range word {
		if b.letters[idx] == Blank || b.letters[idx] == Anchor {
			b.letters[idx] = ch
			b.flagDirtyAnchor(idx, perpOffset, perpNextFlag, dirty)
			b.flagDirtyAnchor(idx, -perpOffset, perpPrevFlag, dirty)
		}
		idx += offset
	}
	b.flagDirtyAnchor(startIndex, -offset, prevFlag, dirty)
	b.flagDirtyAnchor(idx-offset, offset, nextFlag, dirty)

	// Recompute in a deterministic order: map iteration would otherwise
	// make two Write calls that touch the same anchors recompute them in
	// different orders. Each anchor's masks depend only on the letters now
	// on the board, so the order does not change the result; sorting only
	// keeps the sequence of recomputations the same from run to run.
	anchors := make([]int, 0, len(dirty))
	for anchorIdx := range dirty {
		anchors = append(anchors, anchorIdx)
	}
	slices.Sort(anchors)
	for _, anchorIdx := range anchors {
		b.recomputeCheckbits(dawg, anchorIdx)
	}
	return true
}

// flagDirtyAnchor scans outward from fromIndex (a cell just written),
// stepping by step, through any contiguous run of letter cells, to find
// the nearest BLANK/ANCHOR cell in that direction; that cell becomes (or
// remains) an ANCHOR and is added to dirty. Before ever stepping away from
// a cell, its own stopFlag bit is checked first: a blocked seam right at
// fromIndex (or at any letter cell reached while scanning outward) stops
// the scan with nothing marked, since the seam itself is never crossed.
func (b *Board) flagDirtyAnchor(fromIndex, step int, stopFlag uint8, dirty map[int]bool) {
	idx := fromIndex
	for {
		if b.blockflags[idx]&stopFlag != 0 {
			return
		}
		next := idx + step
		l := b.letters[next]
		if l == Blank || l == Anchor {
			b.letters[next] = Anchor
			dirty[next] = true
			return
		}
		idx = next
	}
}

// BlockNext permanently forbids a word from spanning the seam just past
// index in the given direction: sets the NEXT_(ACROSS|DOWN) flag on index
// and the mirrored PREV_ flag on its neighbor.
func (b *Board) BlockNext(index int, across bool) {
	offset := b.Offset(across)
	nextFlag, prevFlag := FlagNextAcross, FlagPrevAcross
	if !across {
		nextFlag, prevFlag = FlagNextDown, FlagPrevDown
	}
	b.blockflags[index] |= nextFlag
	neighbor := index + offset
	if neighbor >= 0 && neighbor < len(b.blockflags) {
		b.blockflags[neighbor] |= prevFlag
	}
}

// scanPrefix collects the contiguous run of letters immediately before
// anchor (in nearest-to-farthest order reversed to reading order). Before
// ever stepping back from a cell, that cell's own prevFlag bit is checked
// first: a blocked seam right at anchor itself stops the scan with an
// empty prefix, exactly as a blocked seam anywhere further back does.
func (b *Board) scanPrefix(anchor, offset int, prevFlag uint8) []byte {
	var letters []byte
	idx := anchor
	for b.blockflags[idx]&prevFlag == 0 {
		prev := idx - offset
		if !b.isLetter(prev) {
			break
		}
		letters = append(letters, b.letters[prev])
		idx = prev
	}
	// letters was collected nearest-anchor-first; reverse to reading order.
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return letters
}

// scanSuffix collects the contiguous run of letters immediately after
// anchor, in reading order. Before ever stepping forward from a cell,
// that cell's own nextFlag bit is checked first: a blocked seam right at
// anchor itself stops the scan with an empty suffix.
func (b *Board) scanSuffix(anchor, offset int, nextFlag uint8) []byte {
	var letters []byte
	idx := anchor
	for b.blockflags[idx]&nextFlag == 0 {
		next := idx + offset
		if !b.isLetter(next) {
			break
		}
		letters = append(letters, b.letters[next])
		idx = next
	}
	return letters
}

// checkSuffix walks node through suffix and reports whether the resulting
// node is word-terminal.
func checkSuffix(dawg *Dawg, node int32, suffix []byte) bool {
	for _, l := range suffix {
		child, ok := dawg.Nodes.Get(node).Edges.Find(l)
		if !ok {
			return false
		}
		node = child
	}
	return dawg.Nodes.Get(node).IsWord
}

// resolveCheckbits computes the cross-check mask at anchor for the given
// axis: which letters L make (prefix + L + suffix) a word in dawg, where
// prefix/suffix are this axis's already-placed neighboring letters. If
// there are no neighboring letters on this axis at all, every letter is
// trivially legal (CheckbitsAny). If the prefix itself is not a path in
// the DAWG, no letter is legal (mask 0) -- see DESIGN.md, Open Question 1.
func resolveCheckbits(dawg *Dawg, board *Board, anchor, offset int, prevFlag, nextFlag uint8) uint32 {
	prefix := board.scanPrefix(anchor, offset, prevFlag)
	suffix := board.scanSuffix(anchor, offset, nextFlag)
	if len(prefix) == 0 && len(suffix) == 0 {
		return CheckbitsAny
	}
	node := int32(0)
	for _, l := range prefix {
		child, ok := dawg.Nodes.Get(node).Edges.Find(l)
		if !ok {
			return 0
		}
		node = child
	}
	var bits uint32
	n := dawg.Nodes.Get(node)
	for i := 0; i < n.Edges.Len(); i++ {
		e := n.Edges.At(i)
		if checkSuffix(dawg, e.Node, suffix) {
			bits |= 1 << (e.Letter - 'a')
		}
	}
	return bits
}

// recomputeCheckbits recomputes both axis masks at anchor: checkAcross
// from the anchor's horizontal neighbors (consulted when a DOWN word is
// later placed through this cell), checkDown from its vertical neighbors
// (consulted when an ACROSS word is placed through it).
func (b *Board) recomputeCheckbits(dawg *Dawg, anchor int) {
	b.checkAcross[anchor] = resolveCheckbits(dawg, b, anchor, 1, FlagPrevAcross, FlagNextAcross)
	b.checkDown[anchor] = resolveCheckbits(dawg, b, anchor, b.width, FlagPrevDown, FlagNextDown)
}
