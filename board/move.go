package board

// Move encodes a move in a 32-bit value.
//
// A castle is stored as the king's square followed by the square of the rook
// it castles with, in both variants, so that Chess960 castles where the king
// does not move (or lands on the rook's square) stay unambiguous.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePromoteShift = 12 // 3 bits
	moveFlagShift    = 15 // 2 bits
)

// Move flags
const (
	FlagNone      = 0
	FlagCastle    = 1
	FlagEnPassant = 2
)

// NoMove is the zero move; a real move never encodes to 0 since from != to.
const NoMove Move = 0

func packMove(from, to Square, promotion PieceType, flag uint8) Move {
	return Move(uint32(from&0x3F)<<moveFromShift |
		uint32(to&0x3F)<<moveToShift |
		uint32(promotion&0x7)<<movePromoteShift |
		uint32(flag&0x3)<<moveFlagShift)
}

// NewMove builds a normal move or capture.
func NewMove(from, to Square) Move { return packMove(from, to, NoPieceType, FlagNone) }

// NewPromotion builds a pawn move that promotes to pt.
func NewPromotion(from, to Square, pt PieceType) Move {
	return packMove(from, to, pt, FlagNone)
}

// NewCastle builds a castle from the king's square and the castling rook's square.
func NewCastle(kingFrom, rookFrom Square) Move {
	return packMove(kingFrom, rookFrom, NoPieceType, FlagCastle)
}

// NewEnPassant builds an en passant capture; to is the target square.
func NewEnPassant(from, to Square) Move {
	return packMove(from, to, NoPieceType, FlagEnPassant)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square, the rook's square for a castle.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Promotion returns the promoted piece type, NoPieceType if none.
func (m Move) Promotion() PieceType { return PieceType((uint32(m) >> movePromoteShift) & 0x7) }

// Flags returns the special move flags.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0x3) }

func (m Move) IsCastle() bool    { return m.Flags() == FlagCastle }
func (m Move) IsEnPassant() bool { return m.Flags() == FlagEnPassant }

// CastleSide reports the wing of a castle, judged from the rook's position
// relative to the king.
func (m Move) CastleSide() Side {
	if m.To() > m.From() {
		return Kingside
	}
	return Queenside
}

// CastleTargets returns where king and rook land after castling on side s.
func CastleTargets(c Color, s Side) (king, rook Square) {
	rank := c.HomeRank()
	if s == Kingside {
		return NewSquare(6, rank), NewSquare(5, rank)
	}
	return NewSquare(2, rank), NewSquare(3, rank)
}

// String renders the move in coordinate form with the internal castle
// encoding (king square then rook square), e.g. "e1h1", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.Promotion() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}
