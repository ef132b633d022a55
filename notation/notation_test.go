package notation

import (
	"testing"

	"bitbucket.org/zurichess/corechess/engine"
)

func findMove(t *testing.T, b *engine.Board, from, to string) engine.Move {
	t.Helper()
	fromSq, err := engine.SquareFromString(from)
	if err != nil {
		t.Fatalf("SquareFromString(%q) error: %v", from, err)
	}
	toSq, err := engine.SquareFromString(to)
	if err != nil {
		t.Fatalf("SquareFromString(%q) error: %v", to, err)
	}
	for _, m := range b.LegalMoves() {
		if m.Frm() == fromSq && m.To() == toSq {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s", from, to)
	return engine.NullMove
}

func TestSANMateInOne(t *testing.T) {
	b, err := engine.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m := findMove(t, b, "a1", "a8")
	if got := SAN(b, m); got != "Ra8#" {
		t.Errorf("SAN(Ra1-a8) = %q, want Ra8#", got)
	}
}

func TestSANPawnCapture(t *testing.T) {
	b, err := engine.FromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m := findMove(t, b, "e4", "d5")
	if got := SAN(b, m); got != "exd5" {
		t.Errorf("SAN(pawn capture) = %q, want exd5", got)
	}
}

func TestSANDisambiguatesByFile(t *testing.T) {
	b, err := engine.FromFEN("1k6/8/8/4K3/8/8/8/R6R w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	m := findMove(t, b, "a1", "d1")
	got := SAN(b, m)
	if got != "Rad1" {
		t.Errorf("SAN(ambiguous rook move) = %q, want Rad1", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	b, err := engine.FromFEN(engine.FENStartPos)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	for _, m := range b.LegalMoves() {
		parsed, err := Parse(b, m.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", m.String(), err)
		}
		if parsed.Frm() != m.Frm() || parsed.To() != m.To() {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), parsed, m)
		}
	}
}
