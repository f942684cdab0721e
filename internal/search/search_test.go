package search

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/feature"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/timemanager"
	"github.com/corvidchess/corvid/internal/tt"
)

func newTestSearcher() *Searcher {
	ev := eval.New(feature.DefaultSet())
	table := tt.New(4)
	return NewSearcher(ev, table, 64)
}

func TestSearchFromStartPosReturnsLegalMove(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	s := newTestSearcher()
	tc := timemanager.NewFixedDepth(3)
	tc.Start(false)

	result := s.Search(pos, tc, nil)
	if result.BestMove.IsNull() {
		t.Fatalf("expected a best move")
	}
	legal := false
	for _, m := range pos.LegalMoves() {
		legal = legal || m == result.BestMove
	}
	if !legal {
		t.Errorf("best move %v is not legal in the start position", result.BestMove)
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, back-rank mate available: Rd8 is mate.
	pos, err := board.PositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	s := newTestSearcher()
	tc := timemanager.NewFixedDepth(3)
	tc.Start(false)

	result := s.Search(pos, tc, nil)
	if !result.Score.IsMate() || result.Score <= 0 {
		t.Fatalf("expected a winning mate score, got %v", result.Score.UCI())
	}
}

func TestQuiescenceFindsAFreeCapture(t *testing.T) {
	// White queen on a8 can capture an undefended black rook on h8 along
	// the open 8th rank; quiescence must find Qxh8 and report a score
	// well above the stand-pat static eval.
	pos, err := board.PositionFromFEN("Q6r/4k3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	s := newTestSearcher()
	staticEval := s.eval.Evaluate(pos)
	v := s.quiescence(pos, -score.Inf, score.Inf, 0, 0)
	if v <= staticEval {
		t.Fatalf("expected quiescence to improve on stand-pat by capturing the hanging rook, got %v (static %v)", v, staticEval)
	}
	if gain := int32(v - staticEval); gain < 400 {
		t.Fatalf("expected quiescence's gain from Qxh8 to be at least a rook (400cp), got %d", gain)
	}
}

func TestSearchMultiPVReturnsDistinctBestMoves(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	s := newTestSearcher()
	tc := timemanager.NewFixedDepth(2)
	tc.Start(false)

	results := s.SearchMultiPV(pos, tc, 2, nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 PV lines, got %d", len(results))
	}
	if results[0].BestMove == results[1].BestMove {
		t.Errorf("expected distinct best moves across PV lines, got %v twice", results[0].BestMove)
	}
}
