package tak

import (
	"math/bits"
)

// Bitboard is a board mask with one bit per square, lowest bit = square
// index 0 = (0,0). Index = x + size*y.
type Bitboard uint64

// SquareBB returns a bitboard with only the given index set.
func SquareBB(idx int) Bitboard {
	return 1 << uint(idx)
}

// IsSet reports whether the bit at idx is set.
func (b Bitboard) IsSet(idx int) bool {
	return b&(1<<uint(idx)) != 0
}

// Set returns b with the bit at idx set.
func (b Bitboard) Set(idx int) Bitboard {
	return b | (1 << uint(idx))
}

// Clear returns b with the bit at idx cleared.
func (b Bitboard) Clear(idx int) Bitboard {
	return b &^ (1 << uint(idx))
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the index of the lowest set bit, or -1 if empty.
func (b Bitboard) LSB() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// PopLSB clears and returns the lowest set bit's index.
func (b *Bitboard) PopLSB() int {
	idx := b.LSB()
	*b &= *b - 1
	return idx
}

// ForEach calls f once for every set bit, lowest to highest.
func (b Bitboard) ForEach(f func(idx int)) {
	for b != 0 {
		f(b.PopLSB())
	}
}
