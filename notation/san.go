package notation

import (
	"fmt"
	"strings"

	"chess-core/board"
)

// FormatSAN writes m, a legal move of p, in Standard Algebraic Notation as
// used in PGN movetext (no "e.p." marker). The move is played on p to decide
// the check suffix and taken back before returning.
func FormatSAN(p *board.Position, m board.Move, gen board.MoveGenerator) string {
	san := sanBase(p, m, gen.GenerateMoves(p))
	p.MakeMove(m)
	if gen.IsCheck(p, p.SideToMove()) {
		if len(gen.GenerateMoves(p)) == 0 {
			san += "#"
		} else {
			san += "+"
		}
	}
	p.UnmakeMove()
	return san
}

// sanBase is the SAN of m without a check suffix. legal holds the legal
// moves of p and is used for disambiguation.
func sanBase(p *board.Position, m board.Move, legal []board.Move) string {
	if m.IsCastle() {
		if m.CastleSide() == board.Kingside {
			return "O-O"
		}
		return "O-O-O"
	}

	from, to := m.From(), m.To()
	pt := p.PieceAt(from).Type()
	var sb strings.Builder
	if pt != board.Pawn {
		sb.WriteByte(pieceLetters[pt] - ('a' - 'A'))
	}
	if pt != board.Pawn && pt != board.King {
		sb.WriteString(disambiguation(p, m, legal))
	}
	if p.PieceAt(to) != board.NoPiece || m.IsEnPassant() {
		if pt == board.Pawn {
			sb.WriteByte(board.FileLetter(from.File()))
		}
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	if promo := m.Promotion(); promo != board.NoPieceType {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[promo] - ('a' - 'A'))
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece kind to the same square.
func disambiguation(p *board.Position, m board.Move, legal []board.Move) string {
	from := m.From()
	pt := p.PieceAt(from).Type()
	var rivals, sameFile, sameRank bool
	for _, other := range legal {
		if other.IsCastle() || other.To() != m.To() || other.From() == from {
			continue
		}
		if p.PieceAt(other.From()).Type() != pt {
			continue
		}
		rivals = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return string(board.FileLetter(from.File()))
	case !sameRank:
		return string(byte('1' + from.Rank()))
	}
	return from.String()
}

// ParseSAN finds the legal move of p written as s. Check and annotation
// suffixes are ignored and castles may be written with zeros.
func ParseSAN(p *board.Position, s string, gen board.MoveGenerator) (board.Move, error) {
	text := strings.TrimRight(strings.TrimSpace(s), "+#!?")
	text = strings.ReplaceAll(text, "0", "O")
	legal := gen.GenerateMoves(p)
	for _, m := range legal {
		if sanBase(p, m, legal) == text {
			return m, nil
		}
	}
	return board.NoMove, fmt.Errorf("%w: %q is not legal in %s", ErrInvalidMove, s, FormatFEN(p))
}
