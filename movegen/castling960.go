package movegen

import "chess-core/board"

// span returns the squares of one rank from a to b, both included.
func span(a, b board.Square) board.Bitboard {
	if a > b {
		a, b = b, a
	}
	var bb board.Bitboard
	for sq := a; sq <= b; sq++ {
		bb |= board.SquareBB(sq)
	}
	return bb
}

// appendChess960Castles adds the castles the side to move may play under
// Chess960 rules:
//   - every square the king and the rook cross or land on is empty apart from
//     the two castling pieces;
//   - no square from the king's start to its target is attacked, judged with
//     king and rook lifted off the board;
//   - the king is not attacked once both pieces stand on their targets.
func appendChess960Castles(moves []board.Move, p *board.Position) []board.Move {
	us := p.SideToMove()
	them := us.Other()
	rights := p.CastlingRights()
	if !rights.Any(us) {
		return moves
	}
	kingFrom := p.KingSquare(us)
	occ := p.Occupied()
	if attacked(p, kingFrom, them, occ) {
		return moves
	}

	for _, side := range [2]board.Side{board.Kingside, board.Queenside} {
		file, ok := rights.Rook(us, side)
		if !ok {
			continue
		}
		rookFrom := board.NewSquare(file, us.HomeRank())
		kingTo, rookTo := board.CastleTargets(us, side)

		rest := occ &^ (board.SquareBB(kingFrom) | board.SquareBB(rookFrom))
		if rest&(span(kingFrom, kingTo)|span(rookFrom, rookTo)) != 0 {
			continue
		}
		safe := true
		for path := span(kingFrom, kingTo); path != 0; {
			if attacked(p, path.PopLSB(), them, rest) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		final := rest | board.SquareBB(kingTo) | board.SquareBB(rookTo)
		if attacked(p, kingTo, them, final) {
			continue
		}
		moves = append(moves, board.NewCastle(kingFrom, rookFrom))
	}
	return moves
}
