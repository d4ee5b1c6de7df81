package board

import "strings"

// CastlingRights records, for each color and side, the file of the rook that
// may still castle. Each of the four corners uses 4 bits: bit 3 marks the
// right as present, bits 0-2 hold the rook file.
//
//	bits  0-3  white king side
//	bits  4-7  white queen side
//	bits  8-11 black king side
//	bits 12-15 black queen side
type CastlingRights uint16

// NoCastling holds no castling right at all.
const NoCastling CastlingRights = 0

const cornerPresent = 8

func cornerShift(c Color, s Side) uint {
	return uint(c)*8 + uint(s)*4
}

// corner is the 0..3 index of a color/side pair, used by the Zobrist tables.
func corner(c Color, s Side) int { return int(c)*2 + int(s) }

// WithRook returns a copy of r where the given corner may castle with the rook
// on file.
func (r CastlingRights) WithRook(c Color, s Side, file int) CastlingRights {
	shift := cornerShift(c, s)
	r &^= 0xF << shift
	return r | CastlingRights(cornerPresent|file&7)<<shift
}

// Without returns a copy of r with the given corner cleared.
func (r CastlingRights) Without(c Color, s Side) CastlingRights {
	return r &^ (0xF << cornerShift(c, s))
}

// WithoutColor clears both corners of a color.
func (r CastlingRights) WithoutColor(c Color) CastlingRights {
	return r &^ (0xFF << (uint(c) * 8))
}

// Rook returns the file of the rook entitled to castle on the given side.
// ok is false when that corner has no right.
func (r CastlingRights) Rook(c Color, s Side) (file int, ok bool) {
	v := int(r>>cornerShift(c, s)) & 0xF
	if v&cornerPresent == 0 {
		return 0, false
	}
	return v & 7, true
}

// KingsideAllowed reports whether c keeps a king side castling right.
func (r CastlingRights) KingsideAllowed(c Color) bool {
	_, ok := r.Rook(c, Kingside)
	return ok
}

// QueensideAllowed reports whether c keeps a queen side castling right.
func (r CastlingRights) QueensideAllowed(c Color) bool {
	_, ok := r.Rook(c, Queenside)
	return ok
}

// Any reports whether c keeps at least one castling right.
func (r CastlingRights) Any(c Color) bool {
	return r.KingsideAllowed(c) || r.QueensideAllowed(c)
}

// StandardRookFile is the starting file of the castling rook in standard chess.
func StandardRookFile(s Side) int {
	if s == Kingside {
		return 7
	}
	return 0
}

// String renders the rights in Shredder style (rook file letters, uppercase
// for White), "-" when empty.
func (r CastlingRights) String() string {
	if r == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		for _, s := range [2]Side{Kingside, Queenside} {
			if file, ok := r.Rook(c, s); ok {
				letter := FileLetter(file)
				if c == White {
					letter -= 'a' - 'A'
				}
				sb.WriteByte(letter)
			}
		}
	}
	return sb.String()
}
