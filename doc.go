/*
Package gridword implements a word-placement engine for a generalized
crossword/Scrabble-style game on an arbitrarily large rectangular grid.

It is built from two tightly coupled halves:

  - A Directed Acyclic Word Graph (DAWG) dictionary, built incrementally
    from a lexicographically sorted word list with on-the-fly minimization
    (Appel & Jacobson, CACM 1988). See dawg.go, edgemap.go, node.go,
    nodearray.go and nodelookup.go.
  - A Board holding incremental cross-check bitmasks and block flags, and
    a single-threaded recursive Search that enumerates legal moves given a
    held rack of letters. See board.go, rack.go, move.go and search.go.

The DAWG, once finalized, is immutable and safe to share read-only across
searches run against distinct boards.
*/
package gridword
