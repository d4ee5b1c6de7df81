package notation

import (
	"fmt"
	"strings"

	"chess-core/board"
)

// FormatUCI writes m in UCI coordinates. Standard castles are written as the
// king's two-square step (e1g1); Chess960 castles as king takes own rook
// (e1h1), as UCI_Chess960 expects.
func FormatUCI(p *board.Position, m board.Move) string {
	if m.IsCastle() && p.Variant() == board.Standard {
		kingTo, _ := board.CastleTargets(p.SideToMove(), m.CastleSide())
		return m.From().String() + kingTo.String()
	}
	return m.String()
}

// ParseUCI finds the legal move of p written as s. A standard castle may also
// be given as king takes rook.
func ParseUCI(p *board.Position, s string, gen board.MoveGenerator) (board.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range gen.GenerateMoves(p) {
		if s == FormatUCI(p, m) || s == m.String() {
			return m, nil
		}
	}
	return board.NoMove, fmt.Errorf("%w: %q is not legal in %s", ErrInvalidMove, s, FormatFEN(p))
}
