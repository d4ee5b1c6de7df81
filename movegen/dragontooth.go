package movegen

import (
	"chess-core/board"

	"github.com/dylhunn/dragontoothmg"
)

func dragontoothMoves(p *board.Position, fen string) []board.Move {
	b := dragontoothmg.ParseFen(fen)
	legal := b.GenerateLegalMoves()
	moves := make([]board.Move, 0, len(legal)+2)
	for _, m := range legal {
		from, to := board.Square(m.From()), board.Square(m.To())
		moves = append(moves, translate(p, from, to, dragontoothPromotion(m.Promote())))
	}
	return moves
}

func dragontoothPromotion(pc dragontoothmg.Piece) board.PieceType {
	switch pc {
	case dragontoothmg.Knight:
		return board.Knight
	case dragontoothmg.Bishop:
		return board.Bishop
	case dragontoothmg.Rook:
		return board.Rook
	case dragontoothmg.Queen:
		return board.Queen
	}
	return board.NoPieceType
}
