// Command startpos prints a Chess960 starting position: a given id, a seeded
// random one or a fresh random one.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"chess-core/board"
	"chess-core/notation"
	"chess-core/render"
)

func main() {
	id := flag.Int("id", -1, "Position id in [0, 960); random when negative")
	seed := flag.Int64("seed", 0, "Seed for the random choice (0 = time based)")
	shredder := flag.Bool("shredder", false, "Write castling rights as rook files (HAha)")
	diagram := flag.Bool("diagram", true, "Print a text diagram")
	svgPath := flag.String("svg", "", "Also write an SVG image to this file")
	flag.Parse()

	var (
		pos *board.Position
		err error
	)
	switch {
	case *id >= 0:
		pos, err = board.NewChess960(*id)
		if err != nil {
			log.Fatalf("%v", err)
		}
	case *seed != 0:
		pos = board.RandomChess960(rand.New(rand.NewSource(*seed)))
	default:
		pos = board.RandomChess960(nil)
	}

	n, _ := pos.Chess960ID()
	var opts []notation.FENOption
	if *shredder {
		opts = append(opts, notation.WithShredder())
	}
	fmt.Printf("id:  %d\n", n)
	fmt.Printf("fen: %s\n", notation.FormatFEN(pos, opts...))
	if *diagram {
		if err := render.NewPrinter().Fprint(os.Stdout, pos); err != nil {
			log.Fatalf("print: %v", err)
		}
	}

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			log.Fatalf("creating svg: %v", err)
		}
		if err := render.SVG(f, pos); err != nil {
			_ = f.Close()
			log.Fatalf("write svg: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close svg: %v", err)
		}
	}
}
