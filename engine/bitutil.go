package engine

// Bit-scan and population count, grounded on the de Bruijn lookup technique
// used across the example pack's bitboard engines.

const deBruijn64 = 0x03f79d71b4cb0a89

var deBruijnLookup = [64]uint{
	0, 1, 48, 2, 57, 49, 28, 3, 61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22, 45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16, 54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10, 25, 14, 19, 9, 13, 8, 7, 6,
}

// bitScan returns the index of the least significant set bit of bb.
// Undefined for bb == 0.
func bitScan(bb uint64) uint {
	return deBruijnLookup[((bb&-bb)*deBruijn64)>>58]
}

// popcnt returns the number of set bits in bb.
func popcnt(bb uint64) int {
	bb = bb - ((bb >> 1) & 0x5555555555555555)
	bb = (bb & 0x3333333333333333) + ((bb >> 2) & 0x3333333333333333)
	bb = (bb + (bb >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((bb * 0x0101010101010101) >> 56)
}
