package movegen

import (
	"chess-core/board"
	"chess-core/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of p to the given depth.
// p is restored before returning.
func Perft(p *board.Position, gen board.MoveGenerator, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := gen.GenerateMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += Perft(p, gen, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// DivideEntry is the subtree size below one root move.
type DivideEntry struct {
	Move  board.Move
	Nodes uint64
}

// Divide runs perft below each root move on its own copy of p, spread over
// workers goroutines. Entries come back in the order gen generates the root
// moves; total is their sum. gen must be safe for concurrent use.
func Divide(p *board.Position, gen board.MoveGenerator, depth, workers int) (entries []DivideEntry, total uint64) {
	if depth < 1 {
		depth = 1
	}
	moves := gen.GenerateMoves(p)

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		item.Position.MakeMove(item.Move)
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: Perft(item.Position, gen, item.Depth-1),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Position: p.Copy(), Move: m, Depth: depth, Index: i}
	}
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	entries = make([]DivideEntry, len(moves))
	for r := range pool.Results() {
		entries[r.Index] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
		total += r.Nodes
	}
	return entries, total
}
