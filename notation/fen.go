// Package notation reads and writes positions and moves as text: FEN with
// X-FEN and Shredder castling fields, UCI coordinates, SAN and PGN.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"chess-core/board"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type castlingStyle uint8

const (
	castlingXFEN castlingStyle = iota
	castlingShredder
	castlingNone
)

type fenConfig struct {
	castling castlingStyle
}

// FENOption configures FormatFEN.
type FENOption func(*fenConfig)

// WithShredder writes castling rights as rook file letters (HAha) instead of
// KQkq, whatever the variant.
func WithShredder() FENOption {
	return func(c *fenConfig) { c.castling = castlingShredder }
}

// WithoutCastling writes "-" as the castling field.
func WithoutCastling() FENOption {
	return func(c *fenConfig) { c.castling = castlingNone }
}

var pieceLetters = [7]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

// PieceLetter returns the FEN letter of pc, uppercase for White.
func PieceLetter(pc board.Piece) byte {
	ch := pieceLetters[pc.Type()]
	if pc.Color() == board.White {
		ch -= 'a' - 'A'
	}
	return ch
}

func pieceFromLetter(ch byte) (board.Color, board.PieceType, bool) {
	c := board.White
	if ch >= 'a' && ch <= 'z' {
		c = board.Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return c, board.Pawn, true
	case 'N':
		return c, board.Knight, true
	case 'B':
		return c, board.Bishop, true
	case 'R':
		return c, board.Rook, true
	case 'Q':
		return c, board.Queen, true
	case 'K':
		return c, board.King, true
	}
	return c, board.NoPieceType, false
}

// ParseFEN builds a position of variant v from a FEN string. The half move
// clock and full move number are optional. Castling accepts KQkq (outermost
// rook on that side of the king) as well as Shredder file letters, which may
// be mixed.
func ParseFEN(fen string, v board.Variant) (*board.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: expected 4 to 6 fields, found %d", ErrInvalidFEN, len(fields))
	}

	b := board.NewBuilder(v)
	kings, err := parsePlacement(b, fields[0])
	if err != nil {
		return nil, err
	}

	var side board.Color
	switch fields[1] {
	case "w":
		side = board.White
	case "b":
		side = board.Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b', found %q", ErrInvalidFEN, fields[1])
	}
	b.SetSideToMove(side)

	if err := parseCastling(b, fields[2], kings); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		sq, err := board.ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square: %v", ErrInvalidFEN, err)
		}
		want := 5
		if side == board.Black {
			want = 2
		}
		if sq.Rank() != want {
			return nil, fmt.Errorf("%w: en passant square %s must be on rank %d", ErrInvalidFEN, sq, want+1)
		}
		b.SetEnPassantFile(sq.File())
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: half move clock %q", ErrInvalidFEN, fields[4])
		}
		b.SetHalfMoveClock(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: full move number %q", ErrInvalidFEN, fields[5])
		}
		b.SetFullMoveNumber(n)
	}
	return b.Build()
}

// parsePlacement fills b from the first FEN field and returns the squares of
// the last king seen per color (NoSquare when absent).
func parsePlacement(b *board.Builder, field string) ([2]board.Square, error) {
	kings := [2]board.Square{board.NoSquare, board.NoSquare}
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return kings, fmt.Errorf("%w: rank count is %d, not 8", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		if rankStr == "" {
			return kings, fmt.Errorf("%w: rank %d is empty", ErrInvalidFEN, 8-i)
		}
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			c, pt, ok := pieceFromLetter(ch)
			if !ok {
				return kings, fmt.Errorf("%w: '%c' is not a valid piece", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return kings, fmt.Errorf("%w: rank %d has more than 8 files", ErrInvalidFEN, rank+1)
			}
			sq := board.NewSquare(file, rank)
			b.AddPiece(sq, pt, c)
			if pt == board.King {
				kings[c] = sq
			}
			file++
		}
		if file != 8 {
			return kings, fmt.Errorf("%w: rank %d does not have 8 files", ErrInvalidFEN, rank+1)
		}
	}
	return kings, nil
}

func parseCastling(b *board.Builder, field string, kings [2]board.Square) error {
	if field == "-" {
		return nil
	}
	if len(field) > 4 {
		return fmt.Errorf("%w: castling field %q is too long", ErrInvalidFEN, field)
	}
	var seen [2][2]bool
	for i := 0; i < len(field); i++ {
		ch := field[i]
		var (
			c    board.Color
			s    board.Side
			file = -1
		)
		switch {
		case ch == 'K' || ch == 'k':
			s = board.Kingside
		case ch == 'Q' || ch == 'q':
			s = board.Queenside
		case ch >= 'A' && ch <= 'H':
			file = int(ch - 'A')
		case ch >= 'a' && ch <= 'h':
			file = int(ch - 'a')
		default:
			return fmt.Errorf("%w: invalid castling character '%c'", ErrInvalidFEN, ch)
		}
		if ch >= 'a' {
			c = board.Black
		}
		if file >= 0 {
			// A rook file names its side through the king's position. A
			// missing king is reported by the builder.
			kingFile := 4
			if kings[c] != board.NoSquare {
				kingFile = kings[c].File()
			}
			s = board.Queenside
			if file > kingFile {
				s = board.Kingside
			}
		}
		if seen[c][s] {
			return fmt.Errorf("%w: %s %s castling rights are defined multiple times", ErrInvalidFEN, c, s)
		}
		seen[c][s] = true
		if file >= 0 {
			b.AddCastlingRook(c, s, file)
		} else {
			b.AddCastlingRights(c, s)
		}
	}
	return nil
}

// FormatFEN writes p as FEN. By default castling uses X-FEN: K, Q, k and q
// for a right held by the outermost rook on that side of the king, and the
// rook's file letter otherwise.
func FormatFEN(p *board.Position, opts ...FENOption) string {
	cfg := fenConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	sb.WriteString(placement(p))
	sb.WriteByte(' ')
	if p.SideToMove() == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(castlingField(p, cfg.castling))
	sb.WriteByte(' ')
	if sq, ok := p.EnPassantSquare(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber()))
	return sb.String()
}

func placement(p *board.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(board.NewSquare(file, rank))
			if pc == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(PieceLetter(pc))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func castlingField(p *board.Position, style castlingStyle) string {
	rights := p.CastlingRights()
	if style == castlingNone || rights == board.NoCastling {
		return "-"
	}
	var sb strings.Builder
	for _, c := range [2]board.Color{board.White, board.Black} {
		for _, s := range [2]board.Side{board.Kingside, board.Queenside} {
			file, ok := rights.Rook(c, s)
			if !ok {
				continue
			}
			var ch byte
			switch {
			case style == castlingXFEN && isOutermostRook(p, c, s, file):
				ch = 'K'
				if s == board.Queenside {
					ch = 'Q'
				}
			default:
				ch = 'A' + byte(file)
			}
			if c == board.Black {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// isOutermostRook reports whether no rook of c stands on its home rank
// beyond file, on side s of the king.
func isOutermostRook(p *board.Position, c board.Color, s board.Side, file int) bool {
	rank := c.HomeRank()
	rooks := p.PiecesOf(c, board.Rook) & board.RankBB(rank)
	if s == board.Kingside {
		for f := file + 1; f < 8; f++ {
			if rooks.Has(board.NewSquare(f, rank)) {
				return false
			}
		}
		return true
	}
	for f := file - 1; f >= 0; f-- {
		if rooks.Has(board.NewSquare(f, rank)) {
			return false
		}
	}
	return true
}
