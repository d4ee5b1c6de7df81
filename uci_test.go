package main

import (
	"strings"
	"testing"
)

func run(t *testing.T, script ...string) string {
	t.Helper()
	var out strings.Builder
	if err := uciLoop(strings.NewReader(strings.Join(script, "\n")), &out); err != nil {
		t.Fatalf("uciLoop: %v", err)
	}
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := run(t, "uci", "isready", "quit", "isready")
	if !strings.Contains(out, "uciok\n") {
		t.Fatalf("missing uciok:\n%s", out)
	}
	if strings.Count(out, "readyok") != 1 {
		t.Fatalf("commands after quit were run:\n%s", out)
	}
}

func TestUCIPositionMoves(t *testing.T) {
	out := run(t, "position startpos moves e2e4 e7e5 g1f3", "fen")
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2\n"
	if out != want {
		t.Fatalf("fen = %q; want %q", out, want)
	}

	out = run(t, "position fen 4k3/8/8/8/8/8/8/4K2R w K - 0 1 moves e1g1", "fen")
	if out != "4k3/8/8/8/8/8/8/5RK1 b - - 1 1\n" {
		t.Fatalf("castle via UCI: %q", out)
	}
}

func TestUCIBadInput(t *testing.T) {
	out := run(t, "position startpos moves e2e5", "position fen nonsense", "position", "bogus", "go", "setoption name Hash value 16")
	for _, want := range []string{
		"info string Move e2e5 not found",
		"info string Invalid fen position",
		"info string Malformed position command",
		"info string Unknown command bogus",
		"info string Only 'go perft <depth>' is supported",
		"info string Unknown option Hash",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUCIChess960(t *testing.T) {
	out := run(t,
		"setoption name UCI_Chess960 value true",
		"position fen 1k6/8/8/8/8/8/8/R2K4 w Q - 0 1 moves d1a1",
		"fen")
	if out != "1k6/8/8/8/8/8/8/2KR4 b - - 1 1\n" {
		t.Fatalf("chess960 castle: %q", out)
	}
}

func TestUCIPerftAndDraw(t *testing.T) {
	out := run(t, "go perft 2")
	if !strings.HasSuffix(out, "\nNodes searched: 400\n") || strings.Count(out, ": 20\n") != 20 {
		t.Fatalf("unexpected perft output:\n%s", out)
	}

	out = run(t, "position startpos moves b1c3 b8c6 c3b1 c6b8", "draw")
	if out != "repetition\n" {
		t.Fatalf("draw = %q", out)
	}

	out = run(t, "setoption name Backend value goose", "position fen 7k/3Q4/8/8/2B5/8/8/4K3 b - - 0 1", "draw", "moves")
	if out != "stalemate\n\n" {
		t.Fatalf("stalemate output = %q", out)
	}
}

func BenchmarkPerftCommand(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var out strings.Builder
		_ = uciLoop(strings.NewReader("go perft 3"), &out)
	}
}
