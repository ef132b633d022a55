// Package perft counts leaf nodes of the legal-move tree to a fixed depth,
// used to cross-check the move generator against known node counts.
package perft

import "bitbucket.org/zurichess/corechess/engine"

// Count walks every legal move to depth plies and returns the number of
// leaf positions reached.
func Count(b *engine.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.LegalMoves() {
		b.Update(m)
		nodes += Count(b, depth-1)
		b.Backdate(m)
	}
	return nodes
}

// Divide returns the leaf count contributed by each root move, keyed by its
// external move-text, for diagnosing which root branch disagrees with a
// known-good count.
func Divide(b *engine.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		b.Update(m)
		result[m.String()] = Count(b, depth-1)
		b.Backdate(m)
	}
	return result
}
