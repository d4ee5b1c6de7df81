package board

// MoveGenerator is the legal move oracle used by draw detection and notation.
// Implementations must leave the position they are given unchanged.
type MoveGenerator interface {
	// GenerateMoves returns every legal move of the side to move.
	GenerateMoves(p *Position) []Move
	// IsLegal reports whether m is legal in p.
	IsLegal(p *Position, m Move) bool
	// IsCheck reports whether the king of c is attacked.
	IsCheck(p *Position, c Color) bool
}
