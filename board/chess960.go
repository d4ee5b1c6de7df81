package board

import (
	"math/rand"
	"time"
)

// StandardID is the Chess960 number of the standard starting position.
const StandardID = 518

// Chess960Count is the number of Chess960 starting positions.
const Chess960Count = 960

// krn lists, for the last factor of a position id, the pieces that go on the
// five files left free by the bishops and the queen, in ascending file order.
var krn = [10][5]PieceType{
	{Knight, Knight, Rook, King, Rook},
	{Knight, Rook, Knight, King, Rook},
	{Knight, Rook, King, Knight, Rook},
	{Knight, Rook, King, Rook, Knight},
	{Rook, Knight, Knight, King, Rook},
	{Rook, Knight, King, Knight, Rook},
	{Rook, Knight, King, Rook, Knight},
	{Rook, King, Knight, Knight, Rook},
	{Rook, King, Knight, Rook, Knight},
	{Rook, King, Rook, Knight, Knight},
}

// backRank computes the home rank arrangement of a position id.
func backRank(id int) [8]PieceType {
	var rank [8]PieceType

	light := 1 + (id%4)*2
	id /= 4
	dark := (id % 4) * 2
	id /= 4
	rank[light] = Bishop
	rank[dark] = Bishop

	free := make([]int, 0, 6)
	for f := 0; f < 8; f++ {
		if f != light && f != dark {
			free = append(free, f)
		}
	}
	q := id % 6
	id /= 6
	rank[free[q]] = Queen
	free = append(free[:q], free[q+1:]...)

	for i, pt := range krn[id] {
		rank[free[i]] = pt
	}
	return rank
}

// FillStartPosition places the Chess960 starting position id (0..959) with
// pawns and all four castling rights. Id 518 is the standard position.
func (b *Builder) FillStartPosition(id int) error {
	if id < 0 || id >= Chess960Count {
		return invalidf("Chess960 position id %d is out of range [0, %d)", id, Chess960Count)
	}
	for f, pt := range backRank(id) {
		b.AddPiece(NewSquare(f, 1), Pawn, White)
		b.AddPiece(NewSquare(f, 6), Pawn, Black)
		b.AddPiece(NewSquare(f, 0), pt, White)
		b.AddPiece(NewSquare(f, 7), pt, Black)
	}
	for _, c := range [2]Color{White, Black} {
		b.AddCastlingRights(c, Kingside)
		b.AddCastlingRights(c, Queenside)
	}
	return nil
}

// NewChess960 returns the Chess960 starting position with the given id.
func NewChess960(id int) (*Position, error) {
	b := NewBuilder(Chess960)
	if err := b.FillStartPosition(id); err != nil {
		return nil, err
	}
	return b.Build()
}

// RandomChess960 returns a starting position drawn from rng. A nil rng uses a
// time seeded source.
func RandomChess960(rng *rand.Rand) *Position {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p, err := NewChess960(rng.Intn(Chess960Count))
	if err != nil {
		panic(err)
	}
	return p
}

// Chess960ID returns the number of the starting arrangement the position is
// in, if its pieces are exactly those of a Chess960 starting position.
func (p *Position) Chess960ID() (int, bool) {
	var rank [8]PieceType
	for f := 0; f < 8; f++ {
		pc := p.PieceAt(NewSquare(f, 0))
		if pc == NoPiece || pc.Color() != White {
			return 0, false
		}
		rank[f] = pc.Type()
	}

	var light, dark = -1, -1
	for f, pt := range rank {
		if pt != Bishop {
			continue
		}
		if f%2 == 1 {
			light = f
		} else {
			dark = f
		}
	}
	if light < 0 || dark < 0 {
		return 0, false
	}
	q, k := -1, -1
	var rest [5]PieceType
	n := 0
	for f, pt := range rank {
		if f == light || f == dark {
			continue
		}
		if pt == Queen && q < 0 {
			q = f - countBefore(f, light, dark)
			continue
		}
		if n == 5 {
			return 0, false
		}
		rest[n] = pt
		n++
	}
	for i, row := range krn {
		if row == rest {
			k = i
		}
	}
	if q < 0 || k < 0 {
		return 0, false
	}
	id := (light-1)/2 + 4*(dark/2) + 16*q + 96*k

	want := NewBuilder(Chess960)
	if err := want.FillStartPosition(id); err != nil {
		return 0, false
	}
	start, err := want.Build()
	if err != nil || start.pieces != p.pieces || start.colors != p.colors {
		return 0, false
	}
	return id, true
}

// countBefore counts how many of the bishop files lie left of f.
func countBefore(f int, bishops ...int) int {
	n := 0
	for _, b := range bishops {
		if b < f {
			n++
		}
	}
	return n
}
