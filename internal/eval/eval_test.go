package eval

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestStartPositionIsRoughlyBalanced(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	e := New(nil)
	s := e.Evaluate(pos)
	if s < -50 || s > 50 {
		t.Errorf("expected the start position to be roughly balanced, got %d", s)
	}
}

func TestExtraQueenIsWinning(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	e := New(nil)
	if s := e.Evaluate(pos); s < 500 {
		t.Errorf("expected a large advantage for the side with an extra queen, got %d", s)
	}
}

func TestBareKingsIsDraw(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	e := New(nil)
	if s := e.Evaluate(pos); s != 0 {
		t.Errorf("expected 0, got %d", s)
	}
}

func TestEvaluateIsCached(t *testing.T) {
	pos, err := board.PositionFromFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	e := New(nil)
	a := e.Evaluate(pos)
	b := e.Evaluate(pos)
	if a != b {
		t.Errorf("repeated evaluation of the same position should be stable: %d != %d", a, b)
	}
}

func TestSEEWinningCaptureIsPositive(t *testing.T) {
	pos, err := board.PositionFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := pos.ParseUCIMove("e4d5")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if s := SEE(pos, m); s <= 0 {
		t.Errorf("expected a winning pawn capture to have positive SEE, got %d", s)
	}
}
