package board

// Snapshot is the irreversible part of a position at one ply. The Builder
// records the first one; every MakeMove pushes another and UnmakeMove pops it.
type Snapshot struct {
	rights   CastlingRights
	epFile   int8 // -1 when no en passant capture is possible
	halfMove int
	keys     Keys

	// move that led to this snapshot and the piece type it captured;
	// NoMove and NoPieceType for the snapshot created by the Builder.
	move     Move
	captured PieceType
}

func (s Snapshot) CastlingRights() CastlingRights { return s.rights }
func (s Snapshot) HalfMoveClock() int             { return s.halfMove }
func (s Snapshot) Keys() Keys                     { return s.keys }
func (s Snapshot) Move() Move                     { return s.move }
func (s Snapshot) Captured() PieceType            { return s.captured }

// EnPassantFile returns the file a pawn may be captured on en passant.
func (s Snapshot) EnPassantFile() (int, bool) {
	if s.epFile < 0 {
		return 0, false
	}
	return int(s.epFile), true
}
