package render

import (
	"fmt"
	"io"

	"chess-core/board"

	svg "github.com/ajstarks/svgo"
)

const (
	lightFill  = "#f0d9b5"
	darkFill   = "#b58863"
	markFill   = "#cdd26a"
	markedDark = "#aaa23a"
)

var glyphs = [2][7]string{
	board.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	board.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

type svgConfig struct {
	squareSize int
	flipped    bool
	marked     board.Bitboard
}

// SVGOption configures SVG.
type SVGOption func(*svgConfig)

// WithSquareSize sets the side of one square in pixels (default 45).
func WithSquareSize(px int) SVGOption {
	return func(c *svgConfig) {
		if px > 0 {
			c.squareSize = px
		}
	}
}

// WithFlipped draws the board from Black's side.
func WithFlipped() SVGOption {
	return func(c *svgConfig) { c.flipped = true }
}

// WithMarkedSquares highlights squares, typically the last move.
func WithMarkedSquares(sqs ...board.Square) SVGOption {
	return func(c *svgConfig) {
		for _, sq := range sqs {
			c.marked |= board.SquareBB(sq)
		}
	}
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

// SVG writes an image of p to w.
func SVG(w io.Writer, p *board.Position, opts ...SVGOption) error {
	cfg := svgConfig{squareSize: 45}
	for _, opt := range opts {
		opt(&cfg)
	}
	size := cfg.squareSize
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(8*size, 8*size)
	canvas.Title(fmt.Sprintf("%s to move", p.SideToMove()))

	fontStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*4/5)
	for sq := board.Square(0); sq < 64; sq++ {
		col, row := sq.File(), 7-sq.Rank()
		if cfg.flipped {
			col, row = 7-col, 7-row
		}
		x, y := col*size, row*size
		fill := darkFill
		switch {
		case cfg.marked.Has(sq) && sq.IsLight():
			fill = markFill
		case cfg.marked.Has(sq):
			fill = markedDark
		case sq.IsLight():
			fill = lightFill
		}
		canvas.Rect(x, y, size, size, "fill:"+fill, fmt.Sprintf(`id="%s"`, sq))

		if pc := p.PieceAt(sq); pc != board.NoPiece {
			canvas.Text(x+size/2, y+size/2, glyphs[pc.Color()][pc.Type()], fontStyle)
		}
	}
	canvas.End()
	return ew.err
}
