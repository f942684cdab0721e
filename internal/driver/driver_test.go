package driver

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/timemanager"
)

func TestSearchFromStartPosReturnsALegalMove(t *testing.T) {
	d := New(config.Default(), nil)
	pos, err := board.PositionFromFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	tc := timemanager.NewFixedDepth(2)
	tc.Start(false)

	res := d.Search(pos, tc, nil)
	if res.BestMove == "" {
		t.Fatalf("expected a best move")
	}
	if _, err := pos.ParseUCIMove(res.BestMove); err != nil {
		t.Errorf("best move %q is not legal in the start position: %v", res.BestMove, err)
	}
}

func TestNewGameClearsDriverState(t *testing.T) {
	d := New(config.Default(), nil)
	d.NewGame() // must not panic on a fresh driver
}

func TestSetOptionRejectsUnknownKey(t *testing.T) {
	d := New(config.Default(), nil)
	if err := d.SetOption("no.such.key", 1); err == nil {
		t.Errorf("expected an error for an unregistered option")
	}
}

func TestStopBeforeSearchIsHarmless(t *testing.T) {
	d := New(config.Default(), nil)
	d.Stop(nil)
}
