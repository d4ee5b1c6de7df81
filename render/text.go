// Package render draws positions for people: a fixed-width text diagram for
// terminals and logs, and an SVG image.
package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"chess-core/board"
	"chess-core/notation"
)

const (
	borderLine = " +---+---+---+---+---+---+---+---+"
	fileLine   = "   a   b   c   d   e   f   g   h"
)

// Printer writes text diagrams, rank 8 at the top.
type Printer struct {
	borders     bool
	coordinates bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithBorders turns the +---+ separators between ranks on or off.
func WithBorders(on bool) Option {
	return func(pr *Printer) { pr.borders = on }
}

// WithCoordinates turns rank numbers and file letters on or off.
func WithCoordinates(on bool) Option {
	return func(pr *Printer) { pr.coordinates = on }
}

// NewPrinter returns a Printer with borders and coordinates unless options
// say otherwise.
func NewPrinter(opts ...Option) *Printer {
	pr := &Printer{borders: true, coordinates: true}
	for _, opt := range opts {
		opt(pr)
	}
	return pr
}

// Fprint writes p to w, white pieces in uppercase.
func (pr *Printer) Fprint(w io.Writer, p *board.Position) error {
	return pr.print(w, func(sq board.Square) byte {
		if pc := p.PieceAt(sq); pc != board.NoPiece {
			return notation.PieceLetter(pc)
		}
		return ' '
	})
}

// FprintBitboard writes b to w with a 1 on every member square.
func (pr *Printer) FprintBitboard(w io.Writer, b board.Bitboard) error {
	return pr.print(w, func(sq board.Square) byte {
		if b.Has(sq) {
			return '1'
		}
		return ' '
	})
}

// Sprint returns the diagram of p.
func (pr *Printer) Sprint(p *board.Position) string {
	var sb strings.Builder
	_ = pr.Fprint(&sb, p)
	return sb.String()
}

func (pr *Printer) print(w io.Writer, cell func(board.Square) byte) error {
	bw := bufio.NewWriter(w)
	for rank := 7; rank >= 0; rank-- {
		if pr.borders {
			bw.WriteString(borderLine + "\n")
		}
		for file := 0; file < 8; file++ {
			bw.WriteString(" | ")
			bw.WriteByte(cell(board.NewSquare(file, rank)))
		}
		bw.WriteString(" |")
		if pr.coordinates {
			bw.WriteString(" " + strconv.Itoa(rank+1))
		}
		bw.WriteByte('\n')
	}
	if pr.borders {
		bw.WriteString(borderLine + "\n")
	}
	if pr.coordinates {
		bw.WriteString(fileLine + "\n")
	}
	return bw.Flush()
}
