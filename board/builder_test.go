package board

import (
	"errors"
	"strings"
	"testing"
)

// place fills b from the piece placement field of a FEN string.
func place(t *testing.T, b *Builder, placement string) *Builder {
	t.Helper()
	kinds := map[byte]PieceType{'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King}
	rank, file := 7, 0
	for i := 0; i < len(placement); i++ {
		ch := placement[i]
		switch {
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			c := White
			if ch >= 'a' {
				c = Black
			} else {
				ch += 'a' - 'A'
			}
			pt, ok := kinds[ch]
			if !ok {
				t.Fatalf("bad placement %q", placement)
			}
			b.AddPiece(NewSquare(file, rank), pt, c)
			file++
		}
	}
	return b
}

func mustBuild(t *testing.T, b *Builder) *Position {
	t.Helper()
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestNewStandard(t *testing.T) {
	p := NewStandard()
	if p.Variant() != Standard || p.SideToMove() != White {
		t.Fatalf("unexpected variant/side %s/%s", p.Variant(), p.SideToMove())
	}
	want := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, pt := range want {
		if got := p.PieceAt(NewSquare(f, 0)); got != NewPiece(White, pt) {
			t.Fatalf("file %c: got %s want white %s", FileLetter(f), got.Type(), pt)
		}
		if got := p.PieceAt(NewSquare(f, 7)); got != NewPiece(Black, pt) {
			t.Fatalf("file %c: got %s want black %s", FileLetter(f), got.Type(), pt)
		}
		if p.PieceAt(NewSquare(f, 1)) != NewPiece(White, Pawn) || p.PieceAt(NewSquare(f, 6)) != NewPiece(Black, Pawn) {
			t.Fatalf("missing pawn on file %c", FileLetter(f))
		}
	}
	if p.CastlingRights().String() != "HAha" {
		t.Fatalf("castling rights %s, want HAha", p.CastlingRights())
	}
	if _, ok := p.EnPassantFile(); ok {
		t.Fatalf("start position has an en passant file")
	}
	if p.FullMoveNumber() != 1 || p.HalfMoveClock() != 0 {
		t.Fatalf("clocks %d %d", p.HalfMoveClock(), p.FullMoveNumber())
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBuilderLaterPieceWins(t *testing.T) {
	b := NewBuilder(Standard)
	place(t, b, "4k3/8/8/8/8/8/8/4K3")
	b.AddPiece(NewSquare(0, 0), Queen, White)
	b.AddPiece(NewSquare(0, 0), Knight, Black)
	b.AddPiece(NewSquare(1, 0), Rook, White)
	b.AddPiece(NewSquare(1, 0), NoPieceType, White)
	p := mustBuild(t, b)
	if got := p.PieceAt(NewSquare(0, 0)); got != NewPiece(Black, Knight) {
		t.Fatalf("a1 holds %v, want black knight", got)
	}
	if got := p.PieceAt(NewSquare(1, 0)); got != NoPiece {
		t.Fatalf("b1 should be empty, holds %v", got)
	}
	if p.ByColor(White).Count() != 1 || p.ByColor(Black).Count() != 2 {
		t.Fatalf("unexpected occupancy %d/%d", p.ByColor(White).Count(), p.ByColor(Black).Count())
	}
}

func TestBuilderFullMoveNumber(t *testing.T) {
	b := place(t, NewBuilder(Standard), "4k3/8/8/8/8/8/8/4K3")
	b.SetSideToMove(Black).SetFullMoveNumber(12).SetHalfMoveClock(7)
	p := mustBuild(t, b)
	if p.Ply() != 23 || p.FullMoveNumber() != 12 || p.HalfMoveClock() != 7 {
		t.Fatalf("ply %d move %d clock %d", p.Ply(), p.FullMoveNumber(), p.HalfMoveClock())
	}
}

func TestBuilderEnPassant(t *testing.T) {
	// White to move: the black pawn that just advanced stands on rank 5.
	b := place(t, NewBuilder(Standard), "4k3/8/8/3pP3/8/8/8/4K3")
	b.SetEnPassantFile(3)
	p := mustBuild(t, b)
	if file, ok := p.EnPassantFile(); !ok || file != 3 {
		t.Fatalf("en passant file %d,%v", file, ok)
	}
	if sq, _ := p.EnPassantSquare(); sq.String() != "d6" {
		t.Fatalf("en passant square %s, want d6", sq)
	}

	// Black to move: white pawn on rank 4.
	b = place(t, NewBuilder(Standard), "4k3/8/8/8/4Pp2/8/8/4K3")
	b.SetSideToMove(Black).SetEnPassantFile(4)
	p = mustBuild(t, b)
	if sq, _ := p.EnPassantSquare(); sq.String() != "e3" {
		t.Fatalf("en passant square %s, want e3", sq)
	}
}

func TestBuilderRejects(t *testing.T) {
	cases := []struct {
		name   string
		build  func(b *Builder)
		reason string
	}{
		{
			name: "two white kings",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/3KK3")
			},
			reason: "expected one white king, found 2",
		},
		{
			name: "no black king",
			build: func(b *Builder) {
				place(t, b, "8/8/8/8/8/8/8/4K3")
			},
			reason: "expected one black king, found 0",
		},
		{
			name: "en passant without pawn",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/4K3")
				b.SetEnPassantFile(2)
			},
			reason: "there is no black pawn at c5",
		},
		{
			name: "en passant pawn of the side to move",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/2P5/8/8/8/4K3")
				b.SetEnPassantFile(2)
			},
			reason: "there is no black pawn at c5",
		},
		{
			name: "missing queen side rook",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/4K2R")
				b.AddCastlingRights(White, Queenside)
			},
			reason: "illegal castling rights for white, there is no rook at a1",
		},
		{
			name: "no rook on the home rank",
			build: func(b *Builder) {
				place(t, b, "r3k3/8/8/8/8/8/8/4K3")
				b.AddCastlingRights(White, Kingside)
			},
			reason: "there are no white rooks on the home rank",
		},
		{
			name: "explicit rook file without rook",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/1R2K3")
				b.AddCastlingRook(White, Kingside, 7)
			},
			reason: "illegal castling rights for white, there is no rook at h1",
		},
		{
			name: "standard king off e1",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/R2K3R")
				b.AddCastlingRights(White, Kingside)
			},
			reason: "king is not at e1",
		},
		{
			name: "black rights with black king away",
			build: func(b *Builder) {
				place(t, b, "r6r/8/3k4/8/8/8/8/4K3")
				b.AddCastlingRights(Black, Kingside)
			},
			reason: "there is no black king on the home rank",
		},
		{
			name: "standard castling rook off the corner",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/4KR1R")
				b.AddCastlingRook(White, Kingside, 5)
			},
			reason: "illegal castling rights for white, king side rook must start on the h file in standard chess",
		},
		{
			name: "castling file out of range",
			build: func(b *Builder) {
				place(t, b, "4k3/8/8/8/8/8/8/4K3")
				b.AddCastlingRook(White, Kingside, 9)
			},
			reason: "castling rook file 9 is off the board",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder(Standard)
			tc.build(b)
			p, err := b.Build()
			if err == nil {
				t.Fatalf("expected error, got position")
			}
			if p != nil {
				t.Fatalf("partial position returned with error %v", err)
			}
			if !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("error %v does not wrap ErrInvalidPosition", err)
			}
			var perr *PositionError
			if !errors.As(err, &perr) || !strings.Contains(perr.Reason, tc.reason) {
				t.Fatalf("reason %q does not contain %q", err, tc.reason)
			}
		})
	}
}

func TestBuilderChess960Castling(t *testing.T) {
	// Inner rooks: white may castle king side with the g1 rook only.
	b := place(t, NewBuilder(Chess960), "rn2k1r1/ppp1pp1p/3p2p1/5bn1/P7/2N2B2/1PPPPP2/2BNK1RR")
	b.AddCastlingRook(White, Kingside, 6).
		AddCastlingRights(Black, Kingside).
		AddCastlingRights(Black, Queenside).
		SetFullMoveNumber(4).SetHalfMoveClock(4)
	p := mustBuild(t, b)
	if got := p.CastlingRights().String(); got != "Gga" {
		t.Fatalf("rights %s, want Gga", got)
	}

	b = place(t, NewBuilder(Chess960), "1r2k1r1/ppp1pp2/3p2pp/5bn1/P7/2N2B2/1PPPPP2/RR2K3")
	b.AddCastlingRook(White, Queenside, 1).
		AddCastlingRights(Black, Kingside).
		AddCastlingRights(Black, Queenside)
	p = mustBuild(t, b)
	if file, ok := p.CastlingRights().Rook(White, Queenside); !ok || file != 1 {
		t.Fatalf("white queen side rook %d,%v want 1", file, ok)
	}
}

func TestBuilderChess960Rejects(t *testing.T) {
	cases := []struct {
		name      string
		placement string
		rights    func(b *Builder)
		reason    string
	}{
		{
			name:      "kings on different files",
			placement: "1r3kr1/8/8/8/8/8/8/1R2K1R1",
			rights: func(b *Builder) {
				b.AddCastlingRights(White, Kingside).AddCastlingRights(Black, Kingside)
			},
			reason: "both kings are not on the same file",
		},
		{
			name:      "king side rooks on different files",
			placement: "1r2k2r/8/8/8/8/8/8/1R2K1R1",
			rights: func(b *Builder) {
				b.AddCastlingRights(White, Kingside).AddCastlingRights(Black, Kingside)
			},
			reason: "king side rooks are not on the same file",
		},
		{
			name:      "queen side rooks on different files",
			placement: "r3k3/8/8/8/8/8/8/1R2K3",
			rights: func(b *Builder) {
				b.AddCastlingRights(White, Queenside).AddCastlingRights(Black, Queenside)
			},
			reason: "queen side rooks are not on the same file",
		},
		{
			name:      "king in the corner",
			placement: "4k3/8/8/8/8/8/8/K6R",
			rights: func(b *Builder) {
				b.AddCastlingRights(White, Kingside)
			},
			reason: "king is not on its starting file",
		},
		{
			name:      "rook on the wrong side",
			placement: "4k3/8/8/8/8/8/8/1R4K1",
			rights: func(b *Builder) {
				b.AddCastlingRook(White, Kingside, 1)
			},
			reason: "king is not on its starting file",
		},
		{
			name:      "king off the home rank",
			placement: "4k3/8/8/8/8/8/4K3/1R5R",
			rights: func(b *Builder) {
				b.AddCastlingRook(White, Kingside, 7)
			},
			reason: "king is not on its home rank",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := place(t, NewBuilder(Chess960), tc.placement)
			tc.rights(b)
			_, err := b.Build()
			if err == nil || !strings.Contains(err.Error(), tc.reason) {
				t.Fatalf("got %v, want reason %q", err, tc.reason)
			}
		})
	}
}
