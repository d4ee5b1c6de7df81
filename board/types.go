// Package board models a chess position for standard chess and Chess960:
// bitboards, castling rights, undo snapshots, Zobrist keys and the validating
// builder that is the only way to obtain a Position.
package board

import (
	"fmt"
	"strings"
)

// Color is the side owning a piece or having the move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// Index converts the color to an array index (White=0, Black=1).
func (c Color) Index() int { return int(c) }

// HomeRank is the rank index the color's pieces start on.
func (c Color) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// PieceTypes lists the six real piece kinds in ascending order.
var PieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func (pt PieceType) index() int { return int(pt) - 1 }

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Piece is a colored piece. Black pieces are encoded as (type | 8) so that
// piece&7 gives the type and piece&8 != 0 marks Black.
type Piece uint8

const NoPiece Piece = 0

// NewPiece combines a color and a piece type.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Variant selects the castling rules applied by the builder and move code.
type Variant uint8

const (
	Standard Variant = iota
	Chess960
)

func (v Variant) String() string {
	if v == Chess960 {
		return "Chess960"
	}
	return "Standard"
}

// ParseVariant accepts the names printed by String, case-insensitively, and
// the common aliases "960" and "frc".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "", "standard", "chess":
		return Standard, nil
	case "chess960", "960", "frc", "fischerrandom":
		return Chess960, nil
	}
	return Standard, fmt.Errorf("unknown variant %q", s)
}

// Side is the wing a castling move goes to.
type Side uint8

const (
	Kingside Side = iota
	Queenside
)

func (s Side) String() string {
	if s == Kingside {
		return "king side"
	}
	return "queen side"
}

// Square is a board index 0..63, a1=0, h1=7, a8=56.
type Square int

const NoSquare Square = -1

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

// FlipRank mirrors the square vertically (a1 <-> a8).
func (sq Square) FlipRank() Square { return sq ^ 56 }

// IsLight reports whether the square is a light square (h1 is light).
func (sq Square) IsLight() bool { return (sq.File()+sq.Rank())%2 == 1 }

func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic coordinates such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}

// FileLetter returns the lowercase letter of a 0-based file.
func FileLetter(file int) byte { return 'a' + byte(file) }
