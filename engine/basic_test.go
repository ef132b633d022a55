package engine

import "testing"

func TestSquareRankFileRoundTrip(t *testing.T) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			if sq.Rank() != r {
				t.Errorf("RankFile(%d,%d).Rank() = %d, want %d", r, f, sq.Rank(), r)
			}
			if sq.File() != f {
				t.Errorf("RankFile(%d,%d).File() = %d, want %d", r, f, sq.File(), f)
			}
		}
	}
}

func TestSquareFromString(t *testing.T) {
	cases := []struct {
		s    string
		want Square
	}{
		{"a1", RankFile(0, 0)},
		{"h1", RankFile(0, 7)},
		{"e4", RankFile(3, 4)},
		{"a8", RankFile(7, 0)},
		{"h8", RankFile(7, 7)},
	}
	for _, c := range cases {
		got, err := SquareFromString(c.s)
		if err != nil {
			t.Fatalf("SquareFromString(%q) error: %v", c.s, err)
		}
		if got != c.want {
			t.Errorf("SquareFromString(%q) = %d, want %d", c.s, got, c.want)
		}
		if got.String() != c.s {
			t.Errorf("Square(%d).String() = %q, want %q", got, got.String(), c.s)
		}
	}
}

func TestSquareFromStringInvalid(t *testing.T) {
	for _, s := range []string{"", "z1", "a9", "a", "aa1"} {
		if _, err := SquareFromString(s); err == nil {
			t.Errorf("SquareFromString(%q) expected error, got nil", s)
		}
	}
}

func TestBitboardPop(t *testing.T) {
	bb := SquareA1.Bitboard() | SquareD4.Bitboard() | SquareH8.Bitboard()
	var got []Square
	for bb != 0 {
		got = append(got, bb.Pop())
	}
	if len(got) != 3 {
		t.Fatalf("popped %d squares, want 3", len(got))
	}
	if bb != 0 {
		t.Errorf("bitboard not empty after popping every square")
	}
}

func TestCastleString(t *testing.T) {
	cases := []struct {
		c    Castle
		want string
	}{
		{NoCastle, "-"},
		{AnyCastle, "KQkq"},
		{WhiteOO | BlackOOO, "Kq"},
	}
	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("Castle(%v).String() = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestCastlingRook(t *testing.T) {
	cases := []struct {
		kingEnd        Square
		wantFrom, wantTo Square
		wantColor      Color
	}{
		{RankFile(0, 6), RankFile(0, 7), RankFile(0, 5), White},
		{RankFile(0, 2), RankFile(0, 0), RankFile(0, 3), White},
		{RankFile(7, 6), RankFile(7, 7), RankFile(7, 5), Black},
		{RankFile(7, 2), RankFile(7, 0), RankFile(7, 3), Black},
	}
	for _, c := range cases {
		rook, from, to := CastlingRook(c.kingEnd)
		if rook.Color() != c.wantColor || rook.Figure() != Rook {
			t.Errorf("CastlingRook(%v) piece = %v, want %v rook", c.kingEnd, rook, c.wantColor)
		}
		if from != c.wantFrom || to != c.wantTo {
			t.Errorf("CastlingRook(%v) = (%v,%v), want (%v,%v)", c.kingEnd, from, to, c.wantFrom, c.wantTo)
		}
	}
}

func TestForward(t *testing.T) {
	sq := RankFile(3, 4)
	if Forward(White, sq.Bitboard()) != North(sq.Bitboard()) {
		t.Error("Forward(White, ...) should equal North(...)")
	}
	if Forward(Black, sq.Bitboard()) != South(sq.Bitboard()) {
		t.Error("Forward(Black, ...) should equal South(...)")
	}
}
