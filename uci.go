package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"chess-core/board"
	"chess-core/draw"
	"chess-core/movegen"
	"chess-core/notation"
	"chess-core/render"
)

func main() {
	if err := uciLoop(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the state shared by the commands of one uciLoop.
type session struct {
	out     io.Writer
	variant board.Variant
	gen     *movegen.Generator
	pos     *board.Position
}

// uciLoop reads UCI-style commands from in until EOF or "quit". It knows the
// position handling part of the protocol plus a few inspection commands:
//
//	position startpos|fen <fen> [moves <uci>...]
//	setoption name UCI_Chess960 value true|false
//	setoption name Backend value dragontooth|goose
//	go perft <depth>
//	d | fen | moves | draw | pgn
func uciLoop(in io.Reader, out io.Writer) error {
	s := &session{out: out, variant: board.Standard, gen: movegen.New(), pos: board.NewStandard()}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-core")
			fmt.Fprintln(out, "option name UCI_Chess960 type check default false")
			fmt.Fprintln(out, "option name Backend type combo default dragontooth var dragontooth var goose")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			s.newGame()
		case "quit":
			return nil
		case "setoption":
			s.setOption(tokens[1:])
		case "position":
			s.position(tokens[1:])
		case "go":
			s.goCommand(tokens[1:])
		case "d":
			_ = render.NewPrinter().Fprint(out, s.pos)
			fmt.Fprintln(out, "Fen:", notation.FormatFEN(s.pos))
			fmt.Fprintf(out, "Key: %016x\n", s.pos.Key())
		case "fen":
			fmt.Fprintln(out, notation.FormatFEN(s.pos))
		case "moves":
			var list []string
			for _, m := range s.gen.GenerateMoves(s.pos) {
				list = append(list, notation.FormatSAN(s.pos, m, s.gen))
			}
			fmt.Fprintln(out, strings.Join(list, " "))
		case "draw":
			fmt.Fprintln(out, draw.Classify(s.pos, s.gen))
		case "pgn":
			fmt.Fprint(out, notation.FormatPGN(s.pos, s.gen, nil))
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
	return scanner.Err()
}

func (s *session) newGame() {
	if s.variant == board.Chess960 {
		pos, _ := board.NewChess960(board.StandardID)
		s.pos = pos
		return
	}
	s.pos = board.NewStandard()
}

func (s *session) setOption(tokens []string) {
	// setoption name <id> value <x>
	if len(tokens) != 4 || !strings.EqualFold(tokens[0], "name") || !strings.EqualFold(tokens[2], "value") {
		fmt.Fprintln(s.out, "info string Malformed setoption command")
		return
	}
	switch strings.ToLower(tokens[1]) {
	case "uci_chess960":
		on, err := strconv.ParseBool(tokens[3])
		if err != nil {
			fmt.Fprintln(s.out, "info string Malformed UCI_Chess960 value", tokens[3])
			return
		}
		s.variant = board.Standard
		if on {
			s.variant = board.Chess960
		}
		s.newGame()
	case "backend":
		b, err := movegen.ParseBackend(tokens[3])
		if err != nil {
			fmt.Fprintln(s.out, "info string", err)
			return
		}
		s.gen = movegen.New(movegen.WithBackend(b))
	default:
		fmt.Fprintln(s.out, "info string Unknown option", tokens[1])
	}
}

func (s *session) position(tokens []string) {
	if len(tokens) == 0 {
		fmt.Fprintln(s.out, "info string Malformed position command")
		return
	}
	rest := tokens[1:]
	var pos *board.Position
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		p, err := notation.ParseFEN(notation.StartFEN, s.variant)
		if err != nil {
			fmt.Fprintln(s.out, "info string", err)
			return
		}
		pos = p
	case "fen":
		end := len(rest)
		for i, tok := range rest {
			if strings.EqualFold(tok, "moves") {
				end = i
				break
			}
		}
		p, err := notation.ParseFEN(strings.Join(rest[:end], " "), s.variant)
		if err != nil {
			fmt.Fprintln(s.out, "info string Invalid fen position:", err)
			return
		}
		pos, rest = p, rest[end:]
	default:
		fmt.Fprintln(s.out, "info string Invalid position subcommand")
		return
	}
	if len(rest) > 0 && strings.EqualFold(rest[0], "moves") {
		for _, text := range rest[1:] {
			m, err := notation.ParseUCI(pos, text, s.gen)
			if err != nil {
				fmt.Fprintln(s.out, "info string Move", text, "not found for position", notation.FormatFEN(pos))
				break
			}
			pos.MakeMove(m)
		}
	}
	s.pos = pos
}

func (s *session) goCommand(tokens []string) {
	if len(tokens) != 2 || !strings.EqualFold(tokens[0], "perft") {
		fmt.Fprintln(s.out, "info string Only 'go perft <depth>' is supported")
		return
	}
	depth, err := strconv.Atoi(tokens[1])
	if err != nil || depth < 1 {
		fmt.Fprintln(s.out, "info string Malformed go command option; could not convert depth")
		return
	}
	entries, total := movegen.Divide(s.pos, s.gen, depth, runtime.NumCPU())
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s: %d\n", notation.FormatUCI(s.pos, e.Move), e.Nodes)
	}
	fmt.Fprintf(s.out, "\nNodes searched: %d\n", total)
}
