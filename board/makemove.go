package board

// toggle flips a piece on sq in the piece and occupancy bitboards.
func (p *Position) toggle(c Color, pt PieceType, sq Square) {
	bit := SquareBB(sq)
	p.pieces[pt.index()] ^= bit
	p.colors[c] ^= bit
}

// movePiece toggles the board and the keys for a piece added or removed on sq.
func (p *Position) movePiece(k *Keys, c Color, pt PieceType, sq Square) {
	p.toggle(c, pt, sq)
	k.togglePiece(c, pt, sq)
}

// MakeMove plays m and pushes a new Snapshot. m must be legal in the current
// position, which is the move generator's responsibility; MakeMove does not
// check it.
func (p *Position) MakeMove(m Move) {
	prev := p.top()
	next := Snapshot{
		rights:   prev.rights,
		epFile:   -1,
		halfMove: prev.halfMove + 1,
		keys:     prev.keys,
		move:     m,
	}
	k := &next.keys
	us, them := p.side, p.side.Other()
	from, to := m.From(), m.To()

	switch m.Flags() {
	case FlagCastle:
		kingTo, rookTo := CastleTargets(us, m.CastleSide())
		// Lift both pieces first: in Chess960 either may land on the
		// other's starting square.
		p.movePiece(k, us, King, from)
		p.movePiece(k, us, Rook, to)
		p.movePiece(k, us, King, kingTo)
		p.movePiece(k, us, Rook, rookTo)
		next.rights = next.rights.WithoutColor(us)

	case FlagEnPassant:
		captureSq := NewSquare(to.File(), from.Rank())
		p.movePiece(k, them, Pawn, captureSq)
		p.movePiece(k, us, Pawn, from)
		p.movePiece(k, us, Pawn, to)
		next.captured = Pawn
		next.halfMove = 0

	default:
		moved := p.PieceAt(from).Type()
		if captured := p.PieceAt(to).Type(); captured != NoPieceType {
			p.movePiece(k, them, captured, to)
			next.captured = captured
			next.halfMove = 0
			if captured == Rook {
				next.rights = clearRookRight(next.rights, them, to)
			}
		}
		p.movePiece(k, us, moved, from)
		if promo := m.Promotion(); promo != NoPieceType {
			p.movePiece(k, us, promo, to)
		} else {
			p.movePiece(k, us, moved, to)
		}
		switch moved {
		case Pawn:
			next.halfMove = 0
			if to-from == 16 || from-to == 16 {
				next.epFile = int8(from.File())
			}
		case King:
			next.rights = next.rights.WithoutColor(us)
		case Rook:
			next.rights = clearRookRight(next.rights, us, from)
		}
	}

	k.Position ^= castlingKey(prev.rights) ^ castlingKey(next.rights)
	k.Position ^= enPassantKey(prev.epFile) ^ enPassantKey(next.epFile)
	k.Position ^= zobristSide

	p.side = them
	p.ply++
	p.history = append(p.history, next)
}

// clearRookRight drops c's right tied to a rook leaving or captured on sq.
func clearRookRight(r CastlingRights, c Color, sq Square) CastlingRights {
	if sq.Rank() != c.HomeRank() {
		return r
	}
	for _, s := range [2]Side{Kingside, Queenside} {
		if file, ok := r.Rook(c, s); ok && file == sq.File() {
			r = r.Without(c, s)
		}
	}
	return r
}

// UnmakeMove takes back the last move played and pops its Snapshot. Keys are
// restored from the previous snapshot rather than recomputed.
// It panics if no move has been played since the position was built.
func (p *Position) UnmakeMove() {
	if len(p.history) < 2 {
		panic("UnmakeMove: no move to take back")
	}
	last := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.side = p.side.Other()
	p.ply--

	us, them := p.side, p.side.Other()
	m := last.move
	from, to := m.From(), m.To()

	switch m.Flags() {
	case FlagCastle:
		kingTo, rookTo := CastleTargets(us, m.CastleSide())
		p.toggle(us, King, kingTo)
		p.toggle(us, Rook, rookTo)
		p.toggle(us, King, from)
		p.toggle(us, Rook, to)

	case FlagEnPassant:
		p.toggle(us, Pawn, to)
		p.toggle(us, Pawn, from)
		p.toggle(them, Pawn, NewSquare(to.File(), from.Rank()))

	default:
		landed := p.PieceAt(to).Type()
		p.toggle(us, landed, to)
		if m.Promotion() != NoPieceType {
			p.toggle(us, Pawn, from)
		} else {
			p.toggle(us, landed, from)
		}
		if last.captured != NoPieceType {
			p.toggle(them, last.captured, to)
		}
	}
}
