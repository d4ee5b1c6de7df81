package notation

import (
	"fmt"
	"strconv"
	"strings"

	"chess-core/board"
	"chess-core/draw"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PGN result tokens.
const (
	WhiteWon   = "1-0"
	BlackWon   = "0-1"
	Drawn      = "1/2-1/2"
	InProgress = "*"
)

const pgnLineWidth = 80

// rosterTags is the seven tag roster, in export order.
var rosterTags = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

var rosterDefaults = map[string]string{
	"Event": "?",
	"Site":  "?",
	"Date":  "????.??.??",
	"Round": "?",
	"White": "?",
	"Black": "?",
}

// Result returns the PGN result token for p: a win when the side to move is
// checkmated, a draw when draw.IsDraw holds and "*" otherwise.
func Result(p *board.Position, gen board.MoveGenerator) string {
	if gen.IsCheck(p, p.SideToMove()) && len(gen.GenerateMoves(p)) == 0 {
		if p.SideToMove() == board.White {
			return BlackWon
		}
		return WhiteWon
	}
	if draw.IsDraw(p, gen) {
		return Drawn
	}
	return InProgress
}

// FormatPGN exports the moves played on p since it was built. The seven tag
// roster comes first, filled from tags or with "?" placeholders; Result is
// computed from the final position unless tags set it. Variant and FEN tags
// follow for Chess960 games and non-standard starts, then any other tags in
// name order. p is left unchanged.
func FormatPGN(p *board.Position, gen board.MoveGenerator, tags map[string]string) string {
	moves := p.Moves()
	start := p.Copy()
	for range moves {
		start.UnmakeMove()
	}

	values := maps.Clone(rosterDefaults)
	values["Result"] = Result(p, gen)
	extra := make(map[string]string, len(tags))
	for k, v := range tags {
		if _, ok := rosterDefaults[k]; ok || k == "Result" {
			values[k] = v
			continue
		}
		extra[k] = v
	}

	var sb strings.Builder
	for _, name := range rosterTags {
		writeTag(&sb, name, values[name])
	}
	if start.Variant() == board.Chess960 {
		writeTag(&sb, "Variant", "Chess960")
		delete(extra, "Variant")
	}
	if fen := FormatFEN(start); fen != StartFEN {
		writeTag(&sb, "FEN", fen)
		writeTag(&sb, "SetUp", "1")
		delete(extra, "FEN")
		delete(extra, "SetUp")
	}
	names := maps.Keys(extra)
	slices.Sort(names)
	for _, name := range names {
		writeTag(&sb, name, extra[name])
	}
	sb.WriteByte('\n')

	w := movetextWriter{out: &sb}
	for i, m := range moves {
		switch {
		case start.SideToMove() == board.White:
			w.token(strconv.Itoa(start.FullMoveNumber()) + ".")
		case i == 0:
			w.token(strconv.Itoa(start.FullMoveNumber()) + "...")
		}
		w.token(FormatSAN(start, m, gen))
		start.MakeMove(m)
	}
	w.token(values["Result"])
	w.flush()
	return sb.String()
}

func writeTag(sb *strings.Builder, name, value string) {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	fmt.Fprintf(sb, "[%s \"%s\"]\n", name, value)
}

// movetextWriter wraps tokens into lines shorter than pgnLineWidth.
type movetextWriter struct {
	out  *strings.Builder
	line strings.Builder
}

func (w *movetextWriter) token(tok string) {
	if w.line.Len() > 0 && w.line.Len()+1+len(tok) >= pgnLineWidth {
		w.flush()
	}
	if w.line.Len() > 0 {
		w.line.WriteByte(' ')
	}
	w.line.WriteString(tok)
}

func (w *movetextWriter) flush() {
	if w.line.Len() == 0 {
		return
	}
	w.out.WriteString(w.line.String())
	w.out.WriteByte('\n')
	w.line.Reset()
}
