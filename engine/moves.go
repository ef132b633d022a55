package engine

// Move generator (C6): pseudo-legal moves per piece kind, then a legality
// filter via update/in_check/backdate.

// computeVal returns the static delta for m if it were played from the
// current board, honouring castle-rook and en-passant-capture deltas.
func computeVal(b *Board, mover Piece, m Move, endgame bool) int16 {
	us := mover.Color()
	from, to := m.Frm(), m.To()
	result := mover
	if m.Transform() {
		result = m.PTransform(us)
	}
	capSq := captureSquareOf(m)
	captured := b.squares[capSq]

	delta := val(result, to, endgame) - val(mover, from, endgame)
	if captured != NoPiece {
		delta -= val(captured, capSq, endgame)
	}
	if m.IsCastle() {
		rookPiece, rookFrom, rookTo := CastlingRook(to)
		delta += val(rookPiece, rookTo, endgame) - val(rookPiece, rookFrom, endgame)
	}
	return delta
}

func (b *Board) scored(mover Piece, m Move, endgame bool) Move {
	m.Val = computeVal(b, mover, m, endgame)
	return m
}

// PseudoLegalMoves generates every pseudo-legal move for the side to move,
// each carrying its static delta score. En-passant eligibility is derived
// from the board's own move log (the immediately preceding move).
func (b *Board) PseudoLegalMoves() []Move {
	us := b.colour
	them := us.Opposite()
	endgame := b.IsEndGame()
	own := b.byColor[us]
	occ := b.occupied()
	moves := make([]Move, 0, 48)

	// Knights.
	for bb := b.ByPiece(us, Knight); bb != 0; {
		from := bb.Pop()
		pi := b.squares[from]
		for att := bbKnightAttack[from] &^ own; att != 0; {
			to := att.Pop()
			moves = append(moves, b.scored(pi, NewMove(false, false, from, to), endgame))
		}
	}

	// King (non-castling steps).
	if kingBB := b.ByPiece(us, King); kingBB != 0 {
		from := kingBB.AsSquare()
		pi := b.squares[from]
		for att := bbKingAttack[from] &^ own; att != 0; {
			to := att.Pop()
			moves = append(moves, b.scored(pi, NewMove(false, false, from, to), endgame))
		}
	}
	b.genCastles(&moves, endgame)

	// Sliders.
	for bb := b.ByPiece(us, Bishop); bb != 0; {
		from := bb.Pop()
		pi := b.squares[from]
		for att := BishopAttacks(from, occ) &^ own; att != 0; {
			to := att.Pop()
			moves = append(moves, b.scored(pi, NewMove(false, false, from, to), endgame))
		}
	}
	for bb := b.ByPiece(us, Rook); bb != 0; {
		from := bb.Pop()
		pi := b.squares[from]
		for att := RookAttacks(from, occ) &^ own; att != 0; {
			to := att.Pop()
			moves = append(moves, b.scored(pi, NewMove(false, false, from, to), endgame))
		}
	}
	for bb := b.ByPiece(us, Queen); bb != 0; {
		from := bb.Pop()
		pi := b.squares[from]
		for att := QueenAttacks(from, occ) &^ own; att != 0; {
			to := att.Pop()
			moves = append(moves, b.scored(pi, NewMove(false, false, from, to), endgame))
		}
	}

	b.genPawnMoves(&moves, us, them, occ, endgame)
	return moves
}

func promotionRank(sq Square) bool {
	r := sq.Rank()
	return r == 0 || r == 7
}

func (b *Board) emitPawnMove(moves *[]Move, pawn Piece, m Move, endgame bool) {
	if promotionRank(m.To()) {
		for _, fig := range [...]Figure{Queen, Rook, Bishop, Knight} {
			pm := NewPromotion(m.Frm(), m.To(), fig)
			*moves = append(*moves, b.scored(pawn, pm, endgame))
		}
		return
	}
	*moves = append(*moves, b.scored(pawn, m, endgame))
}

// enPassantTarget returns the square a pawn may capture onto en passant,
// derived from the immediately preceding move (move_log), and whether one
// exists. There is no dedicated en-passant field in Board state.
func (b *Board) enPassantTarget() (Square, bool) {
	last := b.LastMove()
	if last == NullMove || len(b.moveLog) == 0 {
		return SquareH1, false
	}
	if b.squares[last.To()].Figure() != Pawn {
		return SquareH1, false
	}
	fr, to := last.Frm().Rank(), last.To().Rank()
	diff := fr - to
	if diff != 2 && diff != -2 {
		return SquareH1, false
	}
	return RankFile((fr+to)/2, last.To().File()), true
}

func (b *Board) genPawnMoves(moves *[]Move, us, them Color, occ Bitboard, endgame bool) {
	pawn := ColorFigure(us, Pawn)
	theirs := b.byColor[them]

	epTarget, hasEP := b.enPassantTarget()
	var epBB Bitboard
	if hasEP {
		epBB = epTarget.Bitboard()
	}

	for bb := b.ByPiece(us, Pawn); bb != 0; {
		from := bb.Pop()

		// Pushes.
		one := bbPawnStep1[us][from] &^ occ
		if one != 0 {
			to := one.AsSquare()
			b.emitPawnMove(moves, pawn, NewMove(false, false, from, to), endgame)
			if two := bbPawnStep2[us][from] &^ occ; two != 0 {
				*moves = append(*moves, b.scored(pawn, NewMove(false, false, from, two.AsSquare()), endgame))
			}
		}

		// Captures, including en passant.
		for att := bbPawnAttack[us][from] & (theirs | epBB); att != 0; {
			to := att.Pop()
			if hasEP && to == epTarget && !theirs.Has(to) {
				*moves = append(*moves, b.scored(pawn, NewMove(false, true, from, to), endgame))
				continue
			}
			b.emitPawnMove(moves, pawn, NewMove(false, false, from, to), endgame)
		}
	}
}

func (b *Board) genCastles(moves *[]Move, endgame bool) {
	us := b.colour
	them := us.Opposite()
	rank := us.KingHomeRank()
	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		oo, ooo = BlackOO, BlackOOO
	}
	king := ColorFigure(us, King)
	e := RankFile(rank, 4)

	if b.castle&oo != 0 {
		f, g := RankFile(rank, 5), RankFile(rank, 6)
		if b.squares[f] == NoPiece && b.squares[g] == NoPiece &&
			!b.attacked(e, them) && !b.attacked(f, them) && !b.attacked(g, them) {
			*moves = append(*moves, b.scored(king, NewMove(true, false, e, g), endgame))
		}
	}
	if b.castle&ooo != 0 {
		d, c, sqB := RankFile(rank, 3), RankFile(rank, 2), RankFile(rank, 1)
		if b.squares[d] == NoPiece && b.squares[c] == NoPiece && b.squares[sqB] == NoPiece &&
			!b.attacked(e, them) && !b.attacked(d, them) && !b.attacked(c, them) {
			*moves = append(*moves, b.scored(king, NewMove(true, false, e, c), endgame))
		}
	}
}

// LegalMoves filters PseudoLegalMoves to those that don't leave the mover in
// check, by actually applying/undoing each candidate.
func (b *Board) LegalMoves() []Move {
	us := b.colour
	candidates := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		b.Update(m)
		if !b.InCheck(us) {
			legal = append(legal, m)
		}
		b.Backdate(m)
	}
	return legal
}

// CountPseudoLegalMoves counts pseudo-legal destinations for colour c,
// ignoring en passant and castling, for use by the mobility term of
// evaluation. It does not mutate the board or depend on whose turn it is.
func (b *Board) CountPseudoLegalMoves(c Color) int {
	own := b.byColor[c]
	occ := b.occupied()
	n := 0
	for bb := b.ByPiece(c, Knight); bb != 0; {
		from := bb.Pop()
		n += (bbKnightAttack[from] &^ own).Popcnt()
	}
	if kingBB := b.ByPiece(c, King); kingBB != 0 {
		from := kingBB.AsSquare()
		n += (bbKingAttack[from] &^ own).Popcnt()
	}
	for bb := b.ByPiece(c, Bishop); bb != 0; {
		from := bb.Pop()
		n += (BishopAttacks(from, occ) &^ own).Popcnt()
	}
	for bb := b.ByPiece(c, Rook); bb != 0; {
		from := bb.Pop()
		n += (RookAttacks(from, occ) &^ own).Popcnt()
	}
	for bb := b.ByPiece(c, Queen); bb != 0; {
		from := bb.Pop()
		n += (QueenAttacks(from, occ) &^ own).Popcnt()
	}
	them := c.Opposite()
	theirs := b.byColor[them]
	for bb := b.ByPiece(c, Pawn); bb != 0; {
		from := bb.Pop()
		n += (bbPawnAttack[c][from] & theirs).Popcnt()
		if bbPawnStep1[c][from]&^occ != 0 {
			n++
			if bbPawnStep2[c][from]&^occ != 0 {
				n++
			}
		}
	}
	return n
}
