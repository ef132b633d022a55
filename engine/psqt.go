package engine

// Piece-square tables (C1). Each table is given from White's point of view,
// rank 0 (White's back rank) first; Black's value at a square is read from
// the mirror-image rank of the same table. Pawn and king tables are not
// symmetric across files, matching real pawn-structure and king-safety
// asymmetries.

type psqt [8][8]int16 // [rank][file], file 0..7 = a..h

var (
	pawnTable = psqt{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	knightTable = psqt{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	}
	bishopTable = psqt{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	}
	rookTable = psqt{
		{0, 0, 0, 5, 5, 0, 0, 0},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	queenTable = psqt{
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	}
	kingMidTable = psqt{
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	}
	kingEndTable = psqt{
		{-50, -30, -30, -30, -30, -30, -30, -50},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -20, -10, 0, 0, -10, -20, -30},
		{-50, -40, -30, -20, -20, -30, -40, -50},
	}

	pieceValue = [FigureArraySize]int16{0, 100, 320, 330, 500, 900, 0}
)

func (t psqt) at(rank, file int) int16 { return t[rank][file] }

func tableFor(fig Figure, endgameKing bool) psqt {
	switch fig {
	case Pawn:
		return pawnTable
	case Knight:
		return knightTable
	case Bishop:
		return bishopTable
	case Rook:
		return rookTable
	case Queen:
		return queenTable
	case King:
		if endgameKing {
			return kingEndTable
		}
		return kingMidTable
	}
	return psqt{}
}

// val returns the piece-square value of pi standing on sq, given whether
// the endgame king-table swap (§4.8/glossary "Endgame threshold") applies.
func val(pi Piece, sq Square, endgame bool) int16 {
	if pi == NoPiece {
		return 0
	}
	fig, col := pi.Figure(), pi.Color()
	// Endgame swaps the king's own table to the opposing colour's
	// orientation, per spec.
	orientColor := col
	if fig == King && endgame {
		orientColor = col.Opposite()
	}
	rank, file := sq.Rank(), sq.File()
	if orientColor == Black {
		rank = 7 - rank
	}
	base := pieceValue[fig]
	return base + tableFor(fig, fig == King && endgame).at(rank, file)
}
