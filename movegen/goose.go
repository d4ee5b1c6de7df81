package movegen

import (
	"fmt"

	"chess-core/board"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

func gooseMoves(p *board.Position, fen string) []board.Move {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		// The FEN comes from a validated position; failing here is a bug.
		panic(fmt.Sprintf("goosemg rejected %q: %v", fen, err))
	}
	legal := b.GenerateMoves()
	moves := make([]board.Move, 0, len(legal)+2)
	for _, m := range legal {
		from, to := board.Square(m.From()), board.Square(m.To())
		if m.Flags() == goosemg.FlagCastle {
			moves = append(moves, castleFromKingStep(from, to))
			continue
		}
		moves = append(moves, translate(p, from, to, goosePromotion(m.PromotionPiece())))
	}
	return moves
}

func goosePromotion(pc goosemg.Piece) board.PieceType {
	switch pc {
	case goosemg.WhiteKnight, goosemg.BlackKnight:
		return board.Knight
	case goosemg.WhiteBishop, goosemg.BlackBishop:
		return board.Bishop
	case goosemg.WhiteRook, goosemg.BlackRook:
		return board.Rook
	case goosemg.WhiteQueen, goosemg.BlackQueen:
		return board.Queen
	}
	return board.NoPieceType
}
