package engine

import "testing"

func TestFromFENStartPos(t *testing.T) {
	b, err := FromFEN(FENStartPos)
	if err != nil {
		t.Fatalf("FromFEN(start) error: %v", err)
	}
	if b.Turn() != White {
		t.Errorf("Turn() = %v, want White", b.Turn())
	}
	if b.CastleRights() != AnyCastle {
		t.Errorf("CastleRights() = %v, want AnyCastle", b.CastleRights())
	}
	if got := b.ByPiece(White, Pawn).Popcnt(); got != 8 {
		t.Errorf("white pawns = %d, want 8", got)
	}
	if got := b.ByPiece(Black, King).Popcnt(); got != 1 {
		t.Errorf("black kings = %d, want 1", got)
	}
	if _, ok := b.enPassantTarget(); ok {
		t.Error("start position should have no en-passant target")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) error: %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip: FromFEN(%q).ToFEN() = %q", fen, got)
		}
	}
}

func TestFromFENEnPassant(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	target, ok := b.enPassantTarget()
	if !ok {
		t.Fatal("expected an en-passant target")
	}
	if target.String() != "d6" {
		t.Errorf("en-passant target = %s, want d6", target.String())
	}
}

func TestFromFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := FromFEN(fen); err == nil {
			t.Errorf("FromFEN(%q) expected an error", fen)
		}
	}
}
