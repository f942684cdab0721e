// corvid solve runs a search against every position in an EPD suite
// and reports whether the engine's best move matches the suite's `bm`
// tag (or avoids its `am` tag), adapted from the teacher's standalone
// puzzle/puzzle.go tool into a corvid subcommand built on internal/epd
// and internal/driver instead of a bespoke EPD reader.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/epd"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/feature"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/timemanager"
	"github.com/corvidchess/corvid/internal/tt"
)

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	input := fs.String("input", "", "EPD suite file (required)")
	depth := fs.Int("depth", 8, "depth to search each position to")
	fs.Parse(args)

	if *input == "" {
		log.Fatal("solve: --input is required")
	}
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	defer f.Close()

	set := feature.DefaultSet()
	ev := eval.New(set)

	solved, total := 0, 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		e, err := epd.Parse(line)
		if err != nil {
			log.Printf("solve: skipping %q: %v", line, err)
			continue
		}
		total++

		pos, err := board.PositionFromFEN(e.FEN + " 0 1")
		if err != nil {
			log.Printf("solve: bad FEN %q: %v", e.FEN, err)
			continue
		}

		table := tt.New(16)
		s := search.NewSearcher(ev, table, 128)
		tc := timemanager.NewFixedDepth(*depth)
		tc.Start(false)
		result := s.Search(pos, tc, nil)

		played := result.BestMove.String()
		ok := (len(e.BestMoves) == 0 || matches(played, e.BestMoves)) && !matches(played, e.AvoidMoves)
		if ok {
			solved++
		}
		status := "fail"
		if ok {
			status = "ok"
		}
		fmt.Printf("%-4s id=%s played=%s bm=%v am=%v\n", status, e.ID, played, e.BestMoves, e.AvoidMoves)
	}

	fmt.Printf("solved %d/%d\n", solved, total)
}

func matches(played string, candidates []string) bool {
	for _, c := range candidates {
		if played == c {
			return true
		}
	}
	return false
}
