package gridword

// PatternAny is the pattern-buffer sentinel meaning "no letter required at
// this offset". Any byte outside a-z would serve; zero is used because it
// is also a Go slice/array's natural zero value.
const PatternAny byte = 0

// searchContext holds everything the recursive kernel threads through a
// single search call: a private rack copy (so the caller's rack is never
// mutated), scratch buffers for the word under construction, and the
// single best-move slot a Strategy may overwrite. It is the Go analogue of
// the reference implementation's mutable shared search context, kept
// alive for exactly the lifetime of one search_board/search_segment call.
type searchContext struct {
	dawg  *Dawg
	board *Board
	rack  Rack

	pattern [MaxWordLen]byte
	scratch [MaxWordLen]byte
	drawn   [MaxWordLen]bool // true where scratch[i] was popped from the rack

	offset            int
	nextFlag          uint8
	checkbits         []uint32
	across            bool
	anchorIndex       int
	requiredPrefixLen int // -1 = unconstrained
	requiredSuffixLen int // -1 = unconstrained

	strategy       Strategy
	numLegalMoves  int
	best           Move
	haveBest       bool
}

func (ctx *searchContext) considerWord(sLen, squareIndex, suffixLen int) {
	if ctx.requiredSuffixLen >= 0 && suffixLen != ctx.requiredSuffixLen {
		return
	}
	ctx.numLegalMoves++
	word := ctx.scratch[:sLen]
	if !ctx.strategy.Accept(word) {
		return
	}
	start := squareIndex - sLen*ctx.offset
	var used Rack
	for i := 0; i < sLen; i++ {
		if ctx.drawn[i] {
			used.Push(word[i])
		}
	}
	wordCopy := make([]byte, sLen)
	copy(wordCopy, word)
	ctx.best = Move{
		Start:       start,
		Offset:      ctx.offset,
		Across:      ctx.across,
		Word:        wordCopy,
		LettersUsed: used,
	}
	ctx.haveBest = true
}

func (ctx *searchContext) buildSuffix(sLen int, node int32, squareIndex int) {
	canContinue := ctx.board.blockflags[squareIndex]&ctx.nextFlag == 0
	suffixLen := (squareIndex - ctx.anchorIndex) / ctx.offset
	if ctx.requiredSuffixLen >= 0 && suffixLen > ctx.requiredSuffixLen {
		canContinue = false
	}
	n := ctx.dawg.Nodes.Get(node)
	letter := ctx.board.letters[squareIndex]

	if letter != Blank && letter != Anchor {
		child, ok := n.Edges.Find(letter)
		if !ok {
			return
		}
		ctx.scratch[sLen] = letter
		ctx.drawn[sLen] = false
		childNode := ctx.dawg.Nodes.Get(child)
		if childNode.IsWord {
			ctx.considerWord(sLen+1, squareIndex+ctx.offset, suffixLen+1)
		}
		if canContinue {
			ctx.buildSuffix(sLen+1, child, squareIndex+ctx.offset)
		}
		return
	}

	checkbits := ctx.checkbits[squareIndex]
	for i := 0; i < n.Edges.Len(); i++ {
		e := n.Edges.At(i)
		if ctx.pattern[sLen] != PatternAny && ctx.pattern[sLen] != e.Letter {
			continue
		}
		if checkbits&(1<<(e.Letter-'a')) == 0 {
			continue
		}
		if !ctx.rack.Pop(e.Letter) {
			continue
		}
		ctx.scratch[sLen] = e.Letter
		ctx.drawn[sLen] = true
		childNode := ctx.dawg.Nodes.Get(e.Node)
		if childNode.IsWord {
			ctx.considerWord(sLen+1, squareIndex+ctx.offset, suffixLen+1)
		}
		if canContinue {
			ctx.buildSuffix(sLen+1, e.Node, squareIndex+ctx.offset)
		}
		ctx.rack.Push(e.Letter)
	}
}

func (ctx *searchContext) buildPrefix(sLen int, node int32, limit int) {
	if ctx.requiredPrefixLen < 0 || sLen == ctx.requiredPrefixLen {
		ctx.buildSuffix(sLen, node, ctx.anchorIndex)
	}
	if limit <= 0 {
		return
	}
	n := ctx.dawg.Nodes.Get(node)
	for i := 0; i < n.Edges.Len(); i++ {
		e := n.Edges.At(i)
		if ctx.pattern[sLen] != PatternAny && ctx.pattern[sLen] != e.Letter {
			continue
		}
		if !ctx.rack.Pop(e.Letter) {
			continue
		}
		ctx.scratch[sLen] = e.Letter
		ctx.drawn[sLen] = true
		ctx.buildPrefix(sLen+1, e.Node, limit-1)
		ctx.rack.Push(e.Letter)
	}
}

func (ctx *searchContext) searchAnchor(numPrecedingBlanks, numPrecedingLetters int) {
	if numPrecedingLetters > 0 {
		start := ctx.anchorIndex - numPrecedingLetters*ctx.offset
		node := int32(0)
		for i := 0; i < numPrecedingLetters; i++ {
			idx := start + i*ctx.offset
			l := ctx.board.letters[idx]
			ctx.scratch[i] = l
			ctx.drawn[i] = false
			child, ok := ctx.dawg.Nodes.Get(node).Edges.Find(l)
			if !ok {
				return
			}
			node = child
		}
		ctx.buildSuffix(numPrecedingLetters, node, ctx.anchorIndex)
		return
	}
	ctx.buildPrefix(0, 0, numPrecedingBlanks)
}

// searchLine walks one row or column of the board, maintaining running
// contiguous-blank/contiguous-letter counters that reset whenever a
// blocked seam is crossed, invoking searchAnchor at every ANCHOR cell.
func (ctx *searchContext) searchLine(lineStart, count, step int, prevFlag uint8) {
	numBlanks, numLetters := 0, 0
	idx := lineStart
	for i := 0; i < count; i++ {
		if ctx.board.blockflags[idx]&prevFlag != 0 {
			numBlanks, numLetters = 0, 0
		}
		switch l := ctx.board.letters[idx]; l {
		case Anchor:
			ctx.anchorIndex = idx
			ctx.searchAnchor(numBlanks, numLetters)
			numBlanks, numLetters = 0, 0
		case Blank:
			numBlanks++
			numLetters = 0
		default:
			numLetters++
			numBlanks = 0
		}
		idx += step
	}
}

// SearchBoard enumerates every legal move across the whole board: every
// row played across, then every column played down. It returns the number
// of legal candidates found and the single move strategy selected as
// best. If strategy is nil, LongestWins is used. The caller's rack and
// board are both read-only for the duration of the call.
func SearchBoard(dawg *Dawg, board *Board, rack Rack, strategy Strategy) (int, Move) {
	if strategy == nil {
		strategy = &LongestWins{}
	}
	strategy.Reset()
	ctx := &searchContext{
		dawg:              dawg,
		board:             board,
		strategy:          strategy,
		requiredPrefixLen: -1,
		requiredSuffixLen: -1,
	}

	for y := 1; y <= board.playableY; y++ {
		ctx.rack = rack
		ctx.offset = 1
		ctx.nextFlag = FlagNextAcross
		ctx.checkbits = board.checkDown
		ctx.across = true
		for i := range ctx.pattern {
			ctx.pattern[i] = PatternAny
		}
		ctx.searchLine(board.Index(1, y), board.playableX, 1, FlagPrevAcross)
	}
	for x := 1; x <= board.playableX; x++ {
		ctx.rack = rack
		ctx.offset = board.width
		ctx.nextFlag = FlagNextDown
		ctx.checkbits = board.checkAcross
		ctx.across = false
		for i := range ctx.pattern {
			ctx.pattern[i] = PatternAny
		}
		ctx.searchLine(board.Index(x, 1), board.playableY, board.width, FlagPrevDown)
	}
	return ctx.numLegalMoves, ctx.best
}

// SearchSegment searches a single contiguous segment of length cells
// starting at startIndex along the given axis, optionally constrained by
// pattern: a MaxWordLen-ish buffer where pattern[i] is either a required
// letter or PatternAny. It returns 0 immediately if pattern is longer than
// length (DESIGN.md, Open Question 3) or if the segment already holds a
// letter at every cell with no blanks among them.
func SearchSegment(dawg *Dawg, board *Board, rack Rack, startIndex int, pattern []byte, length int, across bool, strategy Strategy) (int, Move) {
	if len(pattern) > length {
		return 0, Move{}
	}
	if strategy == nil {
		strategy = &LongestWins{}
	}
	strategy.Reset()

	offset := board.Offset(across)
	nextFlag, prevFlag := FlagNextAcross, FlagPrevAcross
	checkbits := board.checkDown
	if !across {
		nextFlag, prevFlag = FlagNextDown, FlagPrevDown
		checkbits = board.checkAcross
	}

	hasLetter, hasBlank, anchorIdx := false, false, -1
	segEnd := length
	idx := startIndex
	for i := 0; i < length; i++ {
		switch l := board.letters[idx]; l {
		case Anchor:
			if anchorIdx < 0 {
				anchorIdx = idx
			}
			hasBlank = true
		case Blank:
			hasBlank = true
		default:
			hasLetter = true
		}
		if board.blockflags[idx]&nextFlag != 0 && i < length-1 {
			segEnd = i + 1
			break
		}
		idx += offset
	}
	length = segEnd
	if hasLetter && !hasBlank {
		return 0, Move{}
	}

	ctx := &searchContext{
		dawg:      dawg,
		board:     board,
		rack:      rack,
		offset:    offset,
		nextFlag:  nextFlag,
		checkbits: checkbits,
		across:    across,
		strategy:  strategy,
	}

	if anchorIdx >= 0 {
		// Before ever stepping back from a cell, that cell's own prevFlag
		// bit is checked first: a blocked seam right at the anchor itself
		// stops the scan with zero preceding letters, same as a blocked
		// seam anywhere further back.
		numPrecedingLetters := 0
		for idx := anchorIdx; board.blockflags[idx]&prevFlag == 0; {
			prev := idx - offset
			if !board.isLetter(prev) {
				break
			}
			numPrecedingLetters++
			idx = prev
		}

		// Base required suffix length: distance from the anchor to the
		// declared end of the segment. If the segment's last cell is
		// itself occupied (letter or anchor) and the seam past it isn't
		// blocked, extend further across any letters the board already
		// continues with beyond that boundary.
		endIndex := startIndex + length*offset
		requiredSuffixLen := (endIndex - anchorIdx) / offset
		if board.letters[endIndex-offset] != Blank && board.blockflags[endIndex-offset]&nextFlag == 0 {
			for idx := endIndex; ; idx += offset {
				if !board.isLetter(idx) {
					break
				}
				requiredSuffixLen++
				if board.blockflags[idx]&nextFlag != 0 {
					break
				}
			}
		}

		ctx.anchorIndex = anchorIdx
		ctx.requiredSuffixLen = requiredSuffixLen
		anchorSegPos := (anchorIdx - startIndex) / offset
		if numPrecedingLetters > 0 {
			ctx.requiredPrefixLen = 0
		} else {
			ctx.requiredPrefixLen = anchorSegPos
		}
		for i := range ctx.pattern {
			ctx.pattern[i] = PatternAny
		}
		// Shift the caller's segment-relative pattern so it lines up with
		// the scratch buffer. With letters preceding the anchor, scratch
		// index 0 is numPrecedingLetters cells before the anchor; without
		// them the word starts at startIndex, so scratch index 0 is the
		// segment's first cell and no shift is needed.
		shift := 0
		if numPrecedingLetters > 0 {
			shift = numPrecedingLetters - anchorSegPos
		}
		for i, p := range pattern {
			if shifted := i + shift; shifted >= 0 && shifted < len(ctx.pattern) {
				ctx.pattern[shifted] = p
			}
		}
		ctx.searchAnchor(ctx.requiredPrefixLen, numPrecedingLetters)
	} else {
		ctx.anchorIndex = startIndex
		ctx.requiredPrefixLen = -1
		ctx.requiredSuffixLen = length
		for i := range ctx.pattern {
			ctx.pattern[i] = PatternAny
		}
		copy(ctx.pattern[:], pattern)
		ctx.searchAnchor(0, 0)
	}

	return ctx.numLegalMoves, ctx.best
}
