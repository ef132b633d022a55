package perft

import (
	"testing"

	"bitbucket.org/zurichess/corechess/engine"
)

func TestCountStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
	}
	for _, c := range cases {
		b, err := engine.FromFEN(engine.FENStartPos)
		if err != nil {
			t.Fatalf("FromFEN error: %v", err)
		}
		if got := Count(b, c.depth); got != c.want {
			t.Errorf("Count(start, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestDivideSumsToCount(t *testing.T) {
	b, err := engine.FromFEN(engine.FENStartPos)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	div := Divide(b, 2)

	var sum uint64
	for _, n := range div {
		sum += n
	}

	b2, err := engine.FromFEN(engine.FENStartPos)
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	want := Count(b2, 2)
	if sum != want {
		t.Errorf("sum of Divide(start, 2) = %d, want Count(start, 2) = %d", sum, want)
	}
}
