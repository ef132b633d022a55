// Package notation renders engine.Move values as standard algebraic
// notation for human-facing output (demo binary, test expectations).
package notation

import (
	"fmt"
	"strings"

	"bitbucket.org/zurichess/corechess/engine"
)

// SAN renders m, played from b's current position, in standard algebraic
// notation including check/mate suffixes. b is left unmodified.
func SAN(b *engine.Board, m engine.Move) string {
	if m.IsCastle() {
		s := "O-O"
		if m.To().File() == 2 {
			s = "O-O-O"
		}
		return s + suffix(b, m)
	}

	mover := b.Get(m.Frm())
	fig := mover.Figure()
	capture := b.Get(m.To()) != engine.NoPiece || m.IsEnPassant()

	var sb strings.Builder
	if fig == engine.Pawn {
		if capture {
			sb.WriteByte(byte('a' + m.Frm().File()))
		}
	} else {
		sb.WriteString(figureLetter(fig))
		sb.WriteString(disambiguate(b, mover, m))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To().String())
	if m.Transform() {
		sb.WriteByte('=')
		sb.WriteString(figureLetter(m.PTransform(mover.Color()).Figure()))
	}
	sb.WriteString(suffix(b, m))
	return sb.String()
}

func figureLetter(fig engine.Figure) string {
	switch fig {
	case engine.Knight:
		return "N"
	case engine.Bishop:
		return "B"
	case engine.Rook:
		return "R"
	case engine.Queen:
		return "Q"
	case engine.King:
		return "K"
	default:
		return ""
	}
}

// disambiguate returns the minimal file/rank/square qualifier needed to
// distinguish m from other legal moves of the same figure and colour to the
// same destination.
func disambiguate(b *engine.Board, mover engine.Piece, m engine.Move) string {
	var sameFile, sameRank, other bool
	for _, cand := range b.LegalMoves() {
		if cand.To() != m.To() || cand.Frm() == m.Frm() {
			continue
		}
		if b.Get(cand.Frm()) != mover {
			continue
		}
		other = true
		if cand.Frm().File() == m.Frm().File() {
			sameFile = true
		}
		if cand.Frm().Rank() == m.Frm().Rank() {
			sameRank = true
		}
	}
	if !other {
		return ""
	}
	switch {
	case !sameFile:
		return string(byte('a' + m.Frm().File()))
	case !sameRank:
		return string(byte('1' + m.Frm().Rank()))
	default:
		return m.Frm().String()
	}
}

// suffix plays m on a scratch copy's worth of state (via Update/Backdate)
// and returns "+" if the opponent is left in check, "#" if checkmated, or
// "" otherwise.
func suffix(b *engine.Board, m engine.Move) string {
	us := b.Turn()
	them := us.Opposite()
	b.Update(m)
	inCheck := b.InCheck(them)
	mated := inCheck && len(b.LegalMoves()) == 0
	b.Backdate(m)

	switch {
	case mated:
		return "#"
	case inCheck:
		return "+"
	default:
		return ""
	}
}

// Parse is the inverse of Move.String: it looks up the legal move on b
// whose from/to/promotion match the external move-text format
// "<from><to>[=P]".
func Parse(b *engine.Board, text string) (engine.Move, error) {
	if len(text) < 4 {
		return engine.NullMove, fmt.Errorf("notation: %q too short", text)
	}
	from, err := engine.SquareFromString(text[0:2])
	if err != nil {
		return engine.NullMove, err
	}
	to, err := engine.SquareFromString(text[2:4])
	if err != nil {
		return engine.NullMove, err
	}
	var promo engine.Figure
	if len(text) == 6 && text[4] == '=' {
		switch text[5] {
		case 'Q':
			promo = engine.Queen
		case 'R':
			promo = engine.Rook
		case 'B':
			promo = engine.Bishop
		case 'N':
			promo = engine.Knight
		default:
			return engine.NullMove, fmt.Errorf("notation: %q unknown promotion figure", text)
		}
	}
	for _, cand := range b.LegalMoves() {
		if cand.Frm() != from || cand.To() != to {
			continue
		}
		if promo != 0 && cand.PTransform(b.Turn()).Figure() != promo {
			continue
		}
		if promo == 0 && cand.Transform() {
			continue
		}
		return cand, nil
	}
	return engine.NullMove, fmt.Errorf("notation: %q is not a legal move", text)
}
