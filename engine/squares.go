package engine

// Square constants, numbered per the big*8+rank convention (big = 7-file).
const (
	SquareH1 Square = 0
	SquareH2 Square = 1
	SquareH3 Square = 2
	SquareH4 Square = 3
	SquareH5 Square = 4
	SquareH6 Square = 5
	SquareH7 Square = 6
	SquareH8 Square = 7
	SquareG1 Square = 8
	SquareG2 Square = 9
	SquareG3 Square = 10
	SquareG4 Square = 11
	SquareG5 Square = 12
	SquareG6 Square = 13
	SquareG7 Square = 14
	SquareG8 Square = 15
	SquareF1 Square = 16
	SquareF2 Square = 17
	SquareF3 Square = 18
	SquareF4 Square = 19
	SquareF5 Square = 20
	SquareF6 Square = 21
	SquareF7 Square = 22
	SquareF8 Square = 23
	SquareE1 Square = 24
	SquareE2 Square = 25
	SquareE3 Square = 26
	SquareE4 Square = 27
	SquareE5 Square = 28
	SquareE6 Square = 29
	SquareE7 Square = 30
	SquareE8 Square = 31
	SquareD1 Square = 32
	SquareD2 Square = 33
	SquareD3 Square = 34
	SquareD4 Square = 35
	SquareD5 Square = 36
	SquareD6 Square = 37
	SquareD7 Square = 38
	SquareD8 Square = 39
	SquareC1 Square = 40
	SquareC2 Square = 41
	SquareC3 Square = 42
	SquareC4 Square = 43
	SquareC5 Square = 44
	SquareC6 Square = 45
	SquareC7 Square = 46
	SquareC8 Square = 47
	SquareB1 Square = 48
	SquareB2 Square = 49
	SquareB3 Square = 50
	SquareB4 Square = 51
	SquareB5 Square = 52
	SquareB6 Square = 53
	SquareB7 Square = 54
	SquareB8 Square = 55
	SquareA1 Square = 56
	SquareA2 Square = 57
	SquareA3 Square = 58
	SquareA4 Square = 59
	SquareA5 Square = 60
	SquareA6 Square = 61
	SquareA7 Square = 62
	SquareA8 Square = 63
)

var (
	BbRank1 = RankBb(0)
	BbRank2 = RankBb(1)
	BbRank4 = RankBb(3)
	BbRank5 = RankBb(4)
	BbRank7 = RankBb(6)
	BbRank8 = RankBb(7)

	BbFileA = FileBb(7)
	BbFileH = FileBb(0)
)
