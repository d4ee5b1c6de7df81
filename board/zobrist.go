package board

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [2][6][64]uint64 // by color, piece type index and square
var zobristCastle [4][8]uint64    // by corner and rook file
var zobristEnPassant [8]uint64    // by en passant file
var zobristSide uint64            // black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed: keys must be identical from one run to the next.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for corner := 0; corner < 4; corner++ {
		for file := 0; file < 8; file++ {
			zobristCastle[corner][file] = rnd.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Keys holds the fingerprints of a position. Position covers everything that
// matters for repetition; Pawn only the pawns of both colors; NonPawn, per
// color, that color's knights, bishops, rooks, queens and king.
type Keys struct {
	Position uint64
	Pawn     uint64
	NonPawn  [2]uint64
}

// togglePiece XORs the contribution of a piece on sq into every affected key.
func (k *Keys) togglePiece(c Color, pt PieceType, sq Square) {
	z := zobristPiece[c][pt.index()][sq]
	k.Position ^= z
	if pt == Pawn {
		k.Pawn ^= z
	} else {
		k.NonPawn[c] ^= z
	}
}

func castlingKey(r CastlingRights) uint64 {
	var key uint64
	for _, c := range [2]Color{White, Black} {
		for _, s := range [2]Side{Kingside, Queenside} {
			if file, ok := r.Rook(c, s); ok {
				key ^= zobristCastle[corner(c, s)][file]
			}
		}
	}
	return key
}

func enPassantKey(file int8) uint64 {
	if file < 0 {
		return 0
	}
	return zobristEnPassant[file]
}

// ComputeKeys derives all keys from scratch from the current contents.
func (p *Position) ComputeKeys() Keys {
	var k Keys
	for _, c := range [2]Color{White, Black} {
		for _, pt := range PieceTypes {
			for bb := p.PiecesOf(c, pt); bb != 0; {
				k.togglePiece(c, pt, bb.PopLSB())
			}
		}
	}
	if p.side == Black {
		k.Position ^= zobristSide
	}
	st := p.top()
	k.Position ^= castlingKey(st.rights)
	k.Position ^= enPassantKey(st.epFile)
	return k
}
