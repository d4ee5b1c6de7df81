package board

import "fmt"

// castlingRequest is what a caller asked for one corner; it is resolved
// against the placed pieces only when Build runs.
type castlingRequest struct {
	set       bool
	outermost bool
	file      int
}

// Builder accumulates a position piece by piece and validates it once, in
// Build. The zero value is not usable; create builders with NewBuilder.
type Builder struct {
	variant  Variant
	squares  [64]Piece
	side     Color
	castling [4]castlingRequest // by corner
	epFile   int
	halfMove int
	fullMove int

	// first setter misuse, reported by Build
	err error
}

// NewBuilder returns an empty builder: no pieces, White to move, no castling
// rights, no en passant file, clocks at "0 1".
func NewBuilder(v Variant) *Builder {
	return &Builder{variant: v, epFile: -1, fullMove: 1}
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// AddPiece places a piece on sq, replacing whatever was there. NoPieceType
// empties the square.
func (b *Builder) AddPiece(sq Square, pt PieceType, c Color) *Builder {
	if sq < 0 || sq > 63 {
		b.fail(invalidf("square %d is off the board", int(sq)))
		return b
	}
	if pt > King {
		b.fail(invalidf("unknown piece type %d at %s", pt, sq))
		return b
	}
	b.squares[sq] = NewPiece(c, pt)
	return b
}

// SetSideToMove sets the side to play.
func (b *Builder) SetSideToMove(c Color) *Builder {
	b.side = c
	return b
}

// AddCastlingRights grants c the right to castle on side s with its
// outermost rook on that side of the home rank, resolved by Build.
func (b *Builder) AddCastlingRights(c Color, s Side) *Builder {
	b.castling[corner(c, s)] = castlingRequest{set: true, outermost: true}
	return b
}

// AddCastlingRook grants c the right to castle on side s with the rook on
// file. Chess960 positions need it when an inner rook keeps the right; in
// standard chess Build rejects any file but a or h.
func (b *Builder) AddCastlingRook(c Color, s Side, file int) *Builder {
	if file < 0 || file > 7 {
		b.fail(invalidf("castling rook file %d is off the board", file))
		return b
	}
	b.castling[corner(c, s)] = castlingRequest{set: true, file: file}
	return b
}

// SetEnPassantFile marks the file of a pawn that just advanced two squares.
func (b *Builder) SetEnPassantFile(file int) *Builder {
	if file < 0 || file > 7 {
		b.fail(invalidf("en passant file %d is off the board", file))
		return b
	}
	b.epFile = file
	return b
}

// ClearEnPassant removes a previously set en passant file.
func (b *Builder) ClearEnPassant() *Builder {
	b.epFile = -1
	return b
}

// SetHalfMoveClock sets the fifty-move rule counter, in plies.
func (b *Builder) SetHalfMoveClock(n int) *Builder {
	if n < 0 {
		b.fail(invalidf("negative half-move clock %d", n))
		return b
	}
	b.halfMove = n
	return b
}

// SetFullMoveNumber sets the move number; values below 1 count as 1.
func (b *Builder) SetFullMoveNumber(n int) *Builder {
	if n < 1 {
		n = 1
	}
	b.fullMove = n
	return b
}

// Build validates what was accumulated and returns the position. Every
// failure is a *PositionError wrapping ErrInvalidPosition; no partial
// position is ever returned.
func (b *Builder) Build() (*Position, error) {
	if b.err != nil {
		return nil, b.err
	}
	p := &Position{variant: b.variant, side: b.side}

	for sq, pc := range b.squares {
		if pc == NoPiece {
			continue
		}
		pt := pc.Type()
		if pt == NoPieceType || pt > King {
			return nil, invalidf("corrupt piece %#x at %s", uint8(pc), Square(sq))
		}
		p.toggle(pc.Color(), pt, Square(sq))
	}
	if p.colors[White]&p.colors[Black] != 0 {
		return nil, invalidf("a square is claimed by both colors")
	}

	for _, c := range [2]Color{White, Black} {
		if n := p.PiecesOf(c, King).Count(); n != 1 {
			return nil, invalidf("expected one %s king, found %d", c, n)
		}
	}

	if b.epFile >= 0 {
		rank := 4
		if b.side == Black {
			rank = 3
		}
		sq := NewSquare(b.epFile, rank)
		if b.squares[sq] != NewPiece(b.side.Other(), Pawn) {
			return nil, invalidf("illegal en passant square, there is no %s pawn at %s", b.side.Other(), sq)
		}
	}

	rights, err := b.resolveCastling(p)
	if err != nil {
		return nil, err
	}

	ply := 2 * (b.fullMove - 1)
	if b.side == Black {
		ply++
	}
	p.ply = ply
	p.history = append(make([]Snapshot, 0, 64), Snapshot{
		rights:   rights,
		epFile:   int8(b.epFile),
		halfMove: b.halfMove,
	})
	p.top().keys = p.ComputeKeys()
	return p, nil
}

// castling corners in validation order
var castlingOrder = [4]struct {
	c Color
	s Side
}{
	{White, Kingside}, {Black, Kingside}, {White, Queenside}, {Black, Queenside},
}

func (b *Builder) resolveCastling(p *Position) (CastlingRights, error) {
	rights := NoCastling
	for _, cs := range castlingOrder {
		req := b.castling[corner(cs.c, cs.s)]
		if !req.set {
			continue
		}
		file, err := b.castlingFile(p, cs.c, cs.s, req)
		if err != nil {
			return NoCastling, err
		}
		rights = rights.WithRook(cs.c, cs.s, file)
	}
	if b.variant != Chess960 {
		return rights, nil
	}

	if rights.Any(White) && rights.Any(Black) &&
		p.KingSquare(White).File() != p.KingSquare(Black).File() {
		return NoCastling, invalidf("illegal castling rights, both kings are not on the same file")
	}
	for _, s := range [2]Side{Kingside, Queenside} {
		wf, wok := rights.Rook(White, s)
		bf, bok := rights.Rook(Black, s)
		if wok && bok && wf != bf {
			return NoCastling, invalidf("illegal castling rights, %s rooks are not on the same file", s)
		}
	}
	return rights, nil
}

// castlingFile resolves and checks the rook file of one castling corner.
func (b *Builder) castlingFile(p *Position, c Color, s Side, req castlingRequest) (int, error) {
	home := c.HomeRank()
	file := req.file
	if req.outermost {
		rooks := p.PiecesOf(c, Rook) & RankBB(home)
		if rooks.Empty() {
			return 0, invalidf("illegal castling rights, there are no %s rooks on the home rank", c)
		}
		if (p.PiecesOf(c, King) & RankBB(home)).Empty() {
			return 0, invalidf("illegal castling rights, there is no %s king on the home rank", c)
		}
		if s == Kingside {
			file = rooks.MSB().File()
		} else {
			file = rooks.LSB().File()
		}
	}

	king := p.KingSquare(c)
	if b.variant == Chess960 {
		if king.Rank() != home {
			return 0, invalidf("illegal castling rights for %s, king is not on its home rank", c)
		}
		kingside := king.File() < file
		if king.File() == 0 || king.File() == 7 || kingside != (s == Kingside) {
			return 0, invalidf("illegal castling rights for %s, king is not on its starting file", c)
		}
	} else {
		if want := NewSquare(4, home); king != want {
			return 0, invalidf("illegal castling rights for %s, king is not at %s", c, want)
		}
		if !req.outermost && file != StandardRookFile(s) {
			return 0, invalidf("illegal castling rights for %s, %s rook must start on the %c file in standard chess",
				c, s, FileLetter(StandardRookFile(s)))
		}
		file = StandardRookFile(s)
	}

	rookSq := NewSquare(file, home)
	if b.squares[rookSq] != NewPiece(c, Rook) {
		return 0, invalidf("illegal castling rights for %s, there is no rook at %s", c, rookSq)
	}
	return file, nil
}

// NewStandard returns the standard starting position.
func NewStandard() *Position {
	b := NewBuilder(Standard)
	if err := b.FillStartPosition(StandardID); err != nil {
		panic(err)
	}
	p, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("standard start position: %v", err))
	}
	return p
}
