package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chess-core/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterStartPosition(t *testing.T) {
	want := strings.Join([]string{
		borderLine,
		" | r | n | b | q | k | b | n | r | 8",
		borderLine,
		" | p | p | p | p | p | p | p | p | 7",
		borderLine,
		" |   |   |   |   |   |   |   |   | 6",
		borderLine,
		" |   |   |   |   |   |   |   |   | 5",
		borderLine,
		" |   |   |   |   |   |   |   |   | 4",
		borderLine,
		" |   |   |   |   |   |   |   |   | 3",
		borderLine,
		" | P | P | P | P | P | P | P | P | 2",
		borderLine,
		" | R | N | B | Q | K | B | N | R | 1",
		borderLine,
		fileLine,
		"",
	}, "\n")
	assert.Equal(t, want, NewPrinter().Sprint(board.NewStandard()))
}

func TestPrinterOptions(t *testing.T) {
	out := NewPrinter(WithBorders(false), WithCoordinates(false)).Sprint(board.NewStandard())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, " | r | n | b | q | k | b | n | r |", lines[0])
	assert.Equal(t, " | R | N | B | Q | K | B | N | R |", lines[7])
	assert.NotContains(t, out, "+---")

	out = NewPrinter(WithBorders(false)).Sprint(board.NewStandard())
	assert.True(t, strings.HasSuffix(out, " | R | N | B | Q | K | B | N | R | 1\n"+fileLine+"\n"))
}

func TestPrinterBitboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(WithBorders(false), WithCoordinates(false)).FprintBitboard(&buf, board.Rank1|board.SquareBB(63)))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, " |   |   |   |   |   |   |   | 1 |", lines[0])
	assert.Equal(t, " | 1 | 1 | 1 | 1 | 1 | 1 | 1 | 1 |", lines[7])
	for _, line := range lines[1:7] {
		assert.NotContains(t, line, "1")
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, board.NewStandard(), WithSquareSize(40)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="320"`)
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 32, strings.Count(out, "<text"))
	assert.Equal(t, 8, strings.Count(out, "♟"))
	assert.Equal(t, 1, strings.Count(out, "♔"))
	assert.Equal(t, 32, strings.Count(out, "fill:"+lightFill))
	assert.Contains(t, out, "<title>white to move</title>")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestSVGOrientationAndMarks(t *testing.T) {
	p := board.NewStandard()
	e2, _ := board.ParseSquare("e2")
	e3, _ := board.ParseSquare("e3")

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, p, WithMarkedSquares(e2, e3)))
	out := buf.String()
	assert.Regexp(t, `<rect x="0" y="0" width="45" height="45" style="fill:#f0d9b5" id="a8"`, out)
	assert.Equal(t, 1, strings.Count(out, "fill:"+markFill))
	assert.Equal(t, 1, strings.Count(out, "fill:"+markedDark))

	buf.Reset()
	require.NoError(t, SVG(&buf, p, WithFlipped()))
	assert.Regexp(t, `<rect x="0" y="0" width="45" height="45" style="fill:#f0d9b5" id="h1"`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGReportsWriteErrors(t *testing.T) {
	err := SVG(failingWriter{}, board.NewStandard())
	assert.EqualError(t, err, "disk full")
}
