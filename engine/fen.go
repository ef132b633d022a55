package engine

import (
	"strconv"
	"strings"
)

// FENStartPos is the standard starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses the six whitespace-separated FEN fields (§6). Missing
// trailing fields default to "-", 0, 1.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	for len(fields) < 6 {
		switch len(fields) {
		case 4:
			fields = append(fields, "0")
		case 5:
			fields = append(fields, "1")
		default:
			fields = append(fields, "-")
		}
	}
	if len(fields) > 6 {
		return nil, &FenParseError{Field: "fen", Reason: "too many fields"}
	}

	b := emptyBoard()
	if err := parsePlacement(fields[0], b); err != nil {
		return nil, err
	}
	if err := parseSideToMove(fields[1], b); err != nil {
		return nil, err
	}
	if err := parseCastling(fields[2], b); err != nil {
		return nil, err
	}
	if err := parseEnpassant(fields[3], b); err != nil {
		return nil, err
	}
	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &FenParseError{Field: "halfmove", Reason: err.Error()}
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, &FenParseError{Field: "fullmove", Reason: err.Error()}
	}
	b.halfMoveClock = half
	b.fullMoveNumber = full

	if b.colour == White {
		b.hash ^= zobristColor
	}
	b.rep[b.hash] = 1
	return b, nil
}

func parsePlacement(s string, b *Board) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return &FenParseError{Field: "piece placement", Reason: "expected 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i // ranks listed from 8 down to 1
		file := 0
		for _, ch := range rankStr {
			if file > 8 {
				return &FenParseError{Field: "piece placement", Reason: "rank too long"}
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pi, ok := asciiToPiece[byte(ch)]
			if !ok {
				return &FenParseError{Field: "piece placement", Reason: "invalid piece symbol"}
			}
			if file > 7 {
				return &FenParseError{Field: "piece placement", Reason: "rank overflows board"}
			}
			sq := RankFile(rank, file)
			b.placePieceAt(sq, pi, false)
			file++
		}
		if file != 8 {
			return &FenParseError{Field: "piece placement", Reason: "rank does not cover 8 files"}
		}
	}
	// Pieces were valued with the middlegame king table; rescore once the
	// whole position is known.
	if b.IsEndGame() {
		b.material = 0
		for sq := Square(0); sq < 64; sq++ {
			b.material += val(b.squares[sq], sq, true)
		}
	}
	return nil
}

func parseSideToMove(s string, b *Board) error {
	switch s {
	case "w":
		b.colour = White
	case "b":
		b.colour = Black
	default:
		return &FenParseError{Field: "side to move", Reason: "expected 'w' or 'b'"}
	}
	return nil
}

func parseCastling(s string, b *Board) error {
	if s == "-" {
		return nil
	}
	for _, ch := range s {
		switch ch {
		case 'K':
			b.castle |= WhiteOO
		case 'Q':
			b.castle |= WhiteOOO
		case 'k':
			b.castle |= BlackOO
		case 'q':
			b.castle |= BlackOOO
		default:
			return &FenParseError{Field: "castling", Reason: "invalid character"}
		}
	}
	return nil
}

func parseEnpassant(s string, b *Board) error {
	if s == "-" {
		return nil
	}
	sq, err := SquareFromString(s)
	if err != nil {
		return &FenParseError{Field: "en passant", Reason: err.Error()}
	}
	// Synthesize the double pawn push that would have produced this target,
	// so move_log-derived en-passant detection works without a dedicated
	// field on Board (§3 data model has none).
	var from, to Square
	if sq.Rank() == 2 { // White just pushed
		from, to = RankFile(1, sq.File()), RankFile(3, sq.File())
	} else if sq.Rank() == 5 { // Black just pushed
		from, to = RankFile(6, sq.File()), RankFile(4, sq.File())
	} else {
		return &FenParseError{Field: "en passant", Reason: "square not on rank 3 or 6"}
	}
	b.moveLog = append(b.moveLog, NewMove(false, false, from, to))
	return nil
}

// ToFEN serialises b in standard FEN field order.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pi := b.squares[RankFile(rank, file)]
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pi.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.colour == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castle.String())

	sb.WriteByte(' ')
	if sq, ok := b.enPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}
