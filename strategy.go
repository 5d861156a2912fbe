package gridword

import "math/rand"

// Strategy decides which of several legal candidate words a search should
// retain as its single "best" result. A Strategy instance is stateful
// across one search (it remembers the current best) and must be given a
// fresh instance (or Reset) per search.
type Strategy interface {
	// Reset clears any remembered best, to start a new search.
	Reset()
	// Accept is called once per legal candidate word found. It reports
	// whether word should replace the current best.
	Accept(word []byte) bool
}

// LongestWins is the default selection strategy: a candidate replaces the
// current best iff it is strictly longer.
type LongestWins struct {
	bestLen int
}

func (s *LongestWins) Reset() { s.bestLen = 0 }

func (s *LongestWins) Accept(word []byte) bool {
	if len(word) > s.bestLen {
		s.bestLen = len(word)
		return true
	}
	return false
}

// FavoriteLetters is an optional tie-breaking strategy: it fixes four
// "favorite" letters at construction and prefers whichever candidate word
// contains the most occurrences of them, strictly improving on the
// previous best. The random source is an explicit argument (never a
// package-global PRNG) so that searches using this strategy are
// reproducible in tests; see DESIGN.md, Open Question 4.
type FavoriteLetters struct {
	favorites [4]byte
	bestScore int
	has       bool
}

// NewFavoriteLetters picks four favorite letters using rng.
func NewFavoriteLetters(rng *rand.Rand) *FavoriteLetters {
	var f FavoriteLetters
	for i := range f.favorites {
		f.favorites[i] = byte('a' + rng.Intn(26))
	}
	return &f
}

func (s *FavoriteLetters) Reset() {
	s.bestScore = 0
	s.has = false
}

func (s *FavoriteLetters) Accept(word []byte) bool {
	score := 0
	for _, l := range word {
		for _, f := range s.favorites {
			if l == f {
				score++
			}
		}
	}
	if !s.has || score > s.bestScore {
		s.bestScore = score
		s.has = true
		return true
	}
	return false
}
