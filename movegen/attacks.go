package movegen

import (
	"chess-core/board"

	"github.com/dylhunn/dragontoothmg"
)

// Precomputed attack bitboards for the leapers and pawn captures.
var knightAttacks [64]board.Bitboard
var kingAttacks [64]board.Bitboard
var pawnAttacks [2][64]board.Bitboard // [color][square]

func init() {
	initAttackTables()
}

func initAttackTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		knightAttacks[sq] = offsetMask(sq, knightOffsets)
		kingAttacks[sq] = offsetMask(sq, kingOffsets)

		// White pawns capture upward, black pawns downward.
		file, rank := sq%8, sq/8
		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			if rank < 7 {
				pawnAttacks[board.White][sq] |= board.SquareBB(board.NewSquare(f, rank+1))
			}
			if rank > 0 {
				pawnAttacks[board.Black][sq] |= board.SquareBB(board.NewSquare(f, rank-1))
			}
		}
	}
}

func offsetMask(sq int, offsets [8][2]int) board.Bitboard {
	file, rank := sq%8, sq/8
	var mask board.Bitboard
	for _, off := range offsets {
		r, f := rank+off[0], file+off[1]
		if r >= 0 && r < 8 && f >= 0 && f < 8 {
			mask |= board.SquareBB(board.NewSquare(f, r))
		}
	}
	return mask
}

// rookAttacks and bishopAttacks delegate slider lookups to dragontoothmg's
// magic bitboards; the result includes the first blocker in each direction.
func rookAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	return board.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
}

func bishopAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	return board.Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
}

// attacked reports whether sq is attacked by color by, with sliders blocked by occ.
func attacked(p *board.Position, sq board.Square, by board.Color, occ board.Bitboard) bool {
	// A pawn of color by attacks sq if a pawn of the other color on sq would attack it.
	if pawnAttacks[by.Other()][sq]&p.PiecesOf(by, board.Pawn) != 0 {
		return true
	}
	if knightAttacks[sq]&p.PiecesOf(by, board.Knight) != 0 {
		return true
	}
	if kingAttacks[sq]&p.PiecesOf(by, board.King) != 0 {
		return true
	}
	queens := p.PiecesOf(by, board.Queen)
	if rookAttacks(sq, occ)&(p.PiecesOf(by, board.Rook)|queens) != 0 {
		return true
	}
	return bishopAttacks(sq, occ)&(p.PiecesOf(by, board.Bishop)|queens) != 0
}

// SquareAttacked reports whether sq is attacked by color by in p.
func SquareAttacked(p *board.Position, sq board.Square, by board.Color) bool {
	return attacked(p, sq, by, p.Occupied())
}
