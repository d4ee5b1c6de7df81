// Package movegen provides the legal move oracle for board positions. Move
// generation itself is delegated to an external generator (dragontoothmg by
// default, GooseEngineMG on request); this package translates positions and
// moves, adds Chess960 castling, answers check queries and counts perft.
package movegen

import (
	"fmt"
	"strings"

	"chess-core/board"
	"chess-core/notation"
)

// Backend selects the library that generates the non-castling moves.
type Backend uint8

const (
	Dragontooth Backend = iota
	Goose
)

func (b Backend) String() string {
	if b == Goose {
		return "goose"
	}
	return "dragontooth"
}

// ParseBackend converts a backend name as printed by String.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "", "dragontooth", "dt":
		return Dragontooth, nil
	case "goose", "goosemg":
		return Goose, nil
	}
	return Dragontooth, fmt.Errorf("unknown backend %q", s)
}

// Option configures a Generator.
type Option func(*Generator)

// WithBackend chooses the move generation library.
func WithBackend(b Backend) Option {
	return func(g *Generator) {
		g.backend = b
	}
}

// Generator implements board.MoveGenerator. It holds no per-position state
// and may be shared between goroutines.
type Generator struct {
	backend Backend
}

var _ board.MoveGenerator = (*Generator)(nil)

// New returns a Generator using dragontoothmg unless an option says otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{backend: Dragontooth}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Backend reports the library in use.
func (g *Generator) Backend() Backend { return g.backend }

// GenerateMoves returns the legal moves of the side to move. Castles are
// encoded king square to rook square in both variants.
func (g *Generator) GenerateMoves(p *board.Position) []board.Move {
	opts := []notation.FENOption{}
	if p.Variant() == board.Chess960 {
		// Neither library knows Chess960 castling; those castles are added below.
		opts = append(opts, notation.WithoutCastling())
	}
	fen := notation.FormatFEN(p, opts...)

	var moves []board.Move
	switch g.backend {
	case Goose:
		moves = gooseMoves(p, fen)
	default:
		moves = dragontoothMoves(p, fen)
	}
	if p.Variant() == board.Chess960 {
		moves = appendChess960Castles(moves, p)
	}
	return moves
}

// IsLegal reports whether m is among the legal moves of p.
func (g *Generator) IsLegal(p *board.Position, m board.Move) bool {
	for _, legal := range g.GenerateMoves(p) {
		if legal == m {
			return true
		}
	}
	return false
}

// IsCheck reports whether c's king is attacked.
func (g *Generator) IsCheck(p *board.Position, c board.Color) bool {
	return attacked(p, p.KingSquare(c), c.Other(), p.Occupied())
}

// IsCheckmate reports that the side to move is in check without a legal move.
func IsCheckmate(p *board.Position, gen board.MoveGenerator) bool {
	return gen.IsCheck(p, p.SideToMove()) && len(gen.GenerateMoves(p)) == 0
}

// castleFromKingStep converts a standard castle given as a two-square king
// move (e1g1) into the king-takes-rook encoding (e1h1).
func castleFromKingStep(from, to board.Square) board.Move {
	side := board.Queenside
	if to > from {
		side = board.Kingside
	}
	return board.NewCastle(from, board.NewSquare(board.StandardRookFile(side), from.Rank()))
}

// translate builds a board.Move from raw squares and a promotion, detecting
// standard castles and en passant from the position.
func translate(p *board.Position, from, to board.Square, promo board.PieceType) board.Move {
	switch p.PieceAt(from).Type() {
	case board.King:
		if d := int(to) - int(from); d == 2 || d == -2 {
			return castleFromKingStep(from, to)
		}
	case board.Pawn:
		if from.File() != to.File() && p.PieceAt(to) == board.NoPiece {
			return board.NewEnPassant(from, to)
		}
		if promo != board.NoPieceType {
			return board.NewPromotion(from, to, promo)
		}
	}
	return board.NewMove(from, to)
}
