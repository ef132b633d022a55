package engine

import "math/rand/v2"

// Zobrist keys (C3): one per (piece, square) and a side-to-move key
// (WHITE_KEY). Per the board hash invariant, castling rights and the
// en-passant square do NOT contribute to the hash: hash equality is defined
// purely over piece placement and side to move, and en-passant availability
// is instead recovered from move_log, never from the hash. Folded into an
// incremental hash by Board.update/backdate.
var (
	zobristPiece [PieceArraySize][64]uint64
	// zobristColor is WHITE_KEY: XORed into the hash whenever side to move
	// is White. Since the side toggles on every move, XORing it on every
	// update/backdate reproduces the conditional term exactly.
	zobristColor uint64
)

const PieceArraySize = int(King)<<2 + int(Black) + 1 // int(PieceMaxValue) + 1

func init() {
	for pi := 0; pi < PieceArraySize; pi++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pi][sq] = rand.Uint64()
		}
	}
	zobristColor = rand.Uint64()
}
