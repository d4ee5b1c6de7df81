package board

import "math/bits"

// Bitboard is a set of squares, bit i standing for square i.
type Bitboard uint64

const (
	Rank1        Bitboard = 0x00000000000000FF
	Rank8        Bitboard = 0xFF00000000000000
	FileA        Bitboard = 0x0101010101010101
	FileH        Bitboard = 0x8080808080808080
	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares  Bitboard = ^LightSquares
)

// SquareBB returns the bitboard holding only sq.
func SquareBB(sq Square) Bitboard { return 1 << uint(sq) }

// RankBB returns the bitboard of a 0-based rank.
func RankBB(rank int) Bitboard { return Rank1 << (8 * uint(rank)) }

// FileBB returns the bitboard of a 0-based file.
func FileBB(file int) Bitboard { return FileA << uint(file) }

func (b Bitboard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }
func (b Bitboard) Count() int         { return bits.OnesCount64(uint64(b)) }
func (b Bitboard) Empty() bool        { return b == 0 }

// LSB returns the lowest square of the set, or NoSquare if it is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest square of the set, or NoSquare if it is empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square of the set.
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for x := b; x != 0; {
		out = append(out, x.PopLSB())
	}
	return out
}
