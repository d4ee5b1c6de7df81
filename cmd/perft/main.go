package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"chess-core/board"
	"chess-core/movegen"
	"chess-core/notation"
)

func main() {
	fen := flag.String("fen", notation.StartFEN, "FEN string (defaults to initial position)")
	variant := flag.String("variant", "standard", "Rules: standard or chess960")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", runtime.NumCPU(), "Goroutines used by -divide")
	backend := flag.String("backend", "dragontooth", "Move generator: dragontooth or goose")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	v, err := board.ParseVariant(*variant)
	if err != nil {
		log.Fatalf("variant: %v", err)
	}
	b, err := movegen.ParseBackend(*backend)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}
	gen := movegen.New(movegen.WithBackend(b))

	pos, err := notation.ParseFEN(*fen, v)
	if err != nil {
		log.Fatalf("ParseFEN error: %v", err)
	}

	if *divide {
		entries, total := movegen.Divide(pos, gen, *depth, *workers)
		for _, e := range entries {
			fmt.Printf("%s: %d\n", notation.FormatUCI(pos, e.Move), e.Nodes)
		}
		fmt.Printf("Total: %d\n", total)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += movegen.Perft(pos, gen, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatalf("creating memprofile: %v", err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("write heap profile: %v", err)
		}
		_ = f.Close()
	}
}
