package gridword

// Move is a single candidate word placement: a start cell, an axis offset
// (1 for across, the board's row stride for down), the word's letters, and
// the multiset of rack letters it actually consumed (letters landing on
// cells that were empty before the move; letters that merely matched
// already-placed board letters are not "used").
type Move struct {
	Start       int
	Offset      int
	Across      bool
	Word        []byte
	LettersUsed Rack
}
