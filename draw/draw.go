// Package draw classifies drawn positions: repetitions, the fifty-move rule,
// insufficient material and stalemate.
package draw

import "chess-core/board"

// Reason names the rule a position is drawn by.
type Reason uint8

const (
	None Reason = iota
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
	DoubleRepetition
	Stalemate
)

func (r Reason) String() string {
	switch r {
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	case DoubleRepetition:
		return "repetition"
	case Stalemate:
		return "stalemate"
	}
	return "none"
}

// IsDoubleRepetition reports whether the current position already occurred
// once since the last irreversible move.
func IsDoubleRepetition(p *board.Position) bool { return repeated(p, 1) }

// IsThreefoldRepetition reports whether the current position already occurred
// twice since the last irreversible move.
func IsThreefoldRepetition(p *board.Position) bool { return repeated(p, 2) }

// repeated scans earlier positions with the same side to move, going back no
// further than the half-move clock: every capture or pawn move resets it and
// no position before such a move can come back.
func repeated(p *board.Position, times int) bool {
	key := p.Key()
	limit := p.HalfMoveClock()
	matches := 0
	for back := 2; back <= limit; back += 2 {
		s, ok := p.Snapshot(back)
		if !ok {
			break
		}
		if s.Keys().Position == key {
			matches++
			if matches >= times {
				return true
			}
		}
	}
	return false
}

// IsInsufficientMaterial reports bare kings, a single minor piece against a
// bare king, and bishops that each stand on one square color per side. It
// deliberately leaves out other drawn endings, such as opposite colored
// single bishops against a knight.
func IsInsufficientMaterial(p *board.Position) bool {
	if p.Pieces(board.Pawn)|p.Pieces(board.Rook)|p.Pieces(board.Queen) != 0 {
		return false
	}
	knights, bishops := p.Pieces(board.Knight), p.Pieces(board.Bishop)
	white := (knights | bishops) & p.ByColor(board.White)
	black := (knights | bishops) & p.ByColor(board.Black)
	switch {
	case white.Empty() && black.Empty():
		return true
	case white.Empty() && black.Count() == 1, black.Empty() && white.Count() == 1:
		return true
	case !knights.Empty():
		return false
	}
	return monochrome(bishops&p.ByColor(board.White)) && monochrome(bishops&p.ByColor(board.Black))
}

func monochrome(b board.Bitboard) bool {
	return b&board.LightSquares == 0 || b&board.DarkSquares == 0
}

// IsFiftyMoveRule reports a half-move clock of at least 100.
func IsFiftyMoveRule(p *board.Position) bool { return p.HalfMoveClock() >= 100 }

// IsStalemate reports that the side to move is not in check and has no legal move.
func IsStalemate(p *board.Position, gen board.MoveGenerator) bool {
	return !gen.IsCheck(p, p.SideToMove()) && len(gen.GenerateMoves(p)) == 0
}

// IsEffectiveDraw covers the rules that need no move generation.
func IsEffectiveDraw(p *board.Position) bool {
	return IsDoubleRepetition(p) || IsInsufficientMaterial(p) || IsFiftyMoveRule(p)
}

// IsDraw reports whether the game is drawn: fifty-move rule, insufficient
// material, threefold repetition or stalemate. A single repetition is only an
// effective draw and does not end the game.
func IsDraw(p *board.Position, gen board.MoveGenerator) bool {
	r := Classify(p, gen)
	return r != None && r != DoubleRepetition
}

// Classify returns the first rule the position is drawn by, None otherwise.
// DoubleRepetition is checked last.
func Classify(p *board.Position, gen board.MoveGenerator) Reason {
	switch {
	case IsFiftyMoveRule(p):
		return FiftyMoveRule
	case IsInsufficientMaterial(p):
		return InsufficientMaterial
	case IsThreefoldRepetition(p):
		return ThreefoldRepetition
	case IsStalemate(p, gen):
		return Stalemate
	case IsDoubleRepetition(p):
		return DoubleRepetition
	}
	return None
}
