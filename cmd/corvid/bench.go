// corvid bench replays a fixed set of EPD positions at a fixed depth
// and reports total nodes and nodes/sec, a non-functional-change
// regression check in the spirit of the teacher's bench/bench_test.go,
// generalized from a hardcoded PGN move list to EPD fixtures via
// internal/epd so the same tool can run against any test suite file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/epd"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/feature"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/timemanager"
	"github.com/corvidchess/corvid/internal/tt"
)

// defaultBenchPositions is used when no -suite file is given, so
// `corvid bench` works out of the box.
var defaultBenchPositions = []string{
	board.FENStartPos,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"rnbqkb1r/pp3ppp/2p1pn2/3p4/2PP4/2N2N2/PP2PPPP/R1BQKB1R w KQkq - 0 5",
	"8/8/8/4k3/8/4K3/8/4R3 w - - 0 1",
}

func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	suite := fs.String("suite", "", "path to an EPD suite file (default: a small built-in set)")
	depth := fs.Int("depth", 6, "depth to search each position to")
	fs.Parse(args)

	fens := defaultBenchPositions
	if *suite != "" {
		loaded, err := loadSuite(*suite)
		if err != nil {
			log.Fatalf("bench: %v", err)
		}
		fens = loaded
	}

	set := feature.DefaultSet()
	ev := eval.New(set)
	start := time.Now()
	var totalNodes uint64

	for i, fen := range fens {
		pos, err := board.PositionFromFEN(fen)
		if err != nil {
			log.Printf("bench: skipping #%d (%q): %v", i, fen, err)
			continue
		}
		table := tt.New(16)
		s := search.NewSearcher(ev, table, 128)
		tc := timemanager.NewFixedDepth(*depth)
		tc.Start(false)
		result := s.Search(pos, tc, nil)
		totalNodes += result.Nodes
		fmt.Printf("#%d %d nodes, bestmove %s\n", i, result.Nodes, result.BestMove.String())
	}

	elapsed := time.Since(start)
	fmt.Printf("nodes %d\n", totalNodes)
	fmt.Printf("  nps %.0f\n", float64(totalNodes)/elapsed.Seconds())
}

func loadSuite(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		e, err := epd.Parse(line)
		if err != nil {
			return nil, err
		}
		fens = append(fens, e.FEN+" 0 1")
	}
	return fens, scanner.Err()
}
