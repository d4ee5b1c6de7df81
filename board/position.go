package board

import "fmt"

// Position is a chess position together with the snapshots needed to undo
// every move played on it since it was built.
//
// A Position is not safe for concurrent use. Work on copies when exploring
// several lines in parallel.
type Position struct {
	// Piece bitboards, colors merged, indexed by PieceType-1.
	pieces [6]Bitboard
	// Occupancy bitboards for each side.
	colors [2]Bitboard

	side    Color
	ply     int
	variant Variant

	// history[0] is created by the Builder, one more entry per move played.
	history []Snapshot
}

func (p *Position) top() *Snapshot { return &p.history[len(p.history)-1] }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.side }

// Variant returns the castling rules the position follows.
func (p *Position) Variant() Variant { return p.variant }

// Ply counts half-moves from the start of the game.
func (p *Position) Ply() int { return p.ply }

// FullMoveNumber is the move number shown in FEN and PGN, starting at 1.
func (p *Position) FullMoveNumber() int { return 1 + p.ply/2 }

// Pieces returns the squares holding pieces of type pt, both colors.
func (p *Position) Pieces(pt PieceType) Bitboard {
	if pt == NoPieceType {
		return 0
	}
	return p.pieces[pt.index()]
}

// ByColor returns the squares occupied by c.
func (p *Position) ByColor(c Color) Bitboard { return p.colors[c] }

// PiecesOf returns the squares holding pieces of type pt and color c.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	return p.Pieces(pt) & p.colors[c]
}

// Occupied returns all occupied squares.
func (p *Position) Occupied() Bitboard { return p.colors[White] | p.colors[Black] }

// PieceAt returns the piece on sq, NoPiece when empty.
func (p *Position) PieceAt(sq Square) Piece {
	bit := SquareBB(sq)
	if p.Occupied()&bit == 0 {
		return NoPiece
	}
	c := White
	if p.colors[Black]&bit != 0 {
		c = Black
	}
	for i, bb := range p.pieces {
		if bb&bit != 0 {
			return NewPiece(c, PieceTypes[i])
		}
	}
	return NoPiece
}

// ColorAt returns the color of the piece on sq; ok is false for an empty square.
func (p *Position) ColorAt(sq Square) (c Color, ok bool) {
	bit := SquareBB(sq)
	switch {
	case p.colors[White]&bit != 0:
		return White, true
	case p.colors[Black]&bit != 0:
		return Black, true
	}
	return White, false
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.PiecesOf(c, King).LSB()
}

// CastlingRights returns the rights that remain in the current position.
func (p *Position) CastlingRights() CastlingRights { return p.top().rights }

// EnPassantFile returns the file on which an en passant capture is possible.
func (p *Position) EnPassantFile() (int, bool) { return p.top().EnPassantFile() }

// EnPassantSquare returns the square a capturing pawn would land on.
func (p *Position) EnPassantSquare() (Square, bool) {
	file, ok := p.EnPassantFile()
	if !ok {
		return NoSquare, false
	}
	if p.side == White {
		return NewSquare(file, 5), true
	}
	return NewSquare(file, 2), true
}

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int { return p.top().halfMove }

// Keys returns the hash keys of the current position.
func (p *Position) Keys() Keys { return p.top().keys }

// Key returns the full position key, the one used for repetition detection.
func (p *Position) Key() uint64 { return p.top().keys.Position }

func (p *Position) PawnKey() uint64           { return p.top().keys.Pawn }
func (p *Position) NonPawnKey(c Color) uint64 { return p.top().keys.NonPawn[c] }

// Snapshot returns the snapshot recorded pliesAgo plies before the current
// one (0 is the current position). ok is false past the build snapshot.
func (p *Position) Snapshot(pliesAgo int) (Snapshot, bool) {
	i := len(p.history) - 1 - pliesAgo
	if pliesAgo < 0 || i < 0 {
		return Snapshot{}, false
	}
	return p.history[i], true
}

// Moves returns the moves played since the position was built, oldest first.
func (p *Position) Moves() []Move {
	moves := make([]Move, 0, len(p.history)-1)
	for _, s := range p.history[1:] {
		moves = append(moves, s.move)
	}
	return moves
}

// Copy returns a deep, independent copy including the undo history.
func (p *Position) Copy() *Position {
	cp := *p
	cp.history = make([]Snapshot, len(p.history), cap(p.history))
	copy(cp.history, p.history)
	return &cp
}

// Validate checks internal consistency: disjoint colors, pieces matching
// occupancy, one king per color and keys equal to a from-scratch
// computation.
func (p *Position) Validate() error {
	if p.colors[White]&p.colors[Black] != 0 {
		return fmt.Errorf("colors overlap on %#x", uint64(p.colors[White]&p.colors[Black]))
	}
	var all Bitboard
	for i, bb := range p.pieces {
		if all&bb != 0 {
			return fmt.Errorf("%s bitboard overlaps another piece type", PieceTypes[i])
		}
		all |= bb
	}
	if all != p.Occupied() {
		return fmt.Errorf("piece bitboards do not match occupancy")
	}
	for _, c := range [2]Color{White, Black} {
		if n := p.PiecesOf(c, King).Count(); n != 1 {
			return fmt.Errorf("expected one %s king, found %d", c, n)
		}
	}
	if got, want := p.Keys(), p.ComputeKeys(); got != want {
		return fmt.Errorf("incremental keys %+v differ from computed %+v", got, want)
	}
	return nil
}
