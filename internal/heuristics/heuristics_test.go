package heuristics

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func move(from, to string) board.Move {
	f, _ := board.SquareFromString(from)
	t, _ := board.SquareFromString(to)
	return board.NewMove(f, t, board.MakePiece(board.White, board.Knight), board.NoPiece)
}

func TestKillersTryFirstOrder(t *testing.T) {
	k := NewKillers(64)
	m1, m2 := move("g1", "f3"), move("b1", "c3")
	k.Add(5, m1)
	k.Add(5, m2)
	a, b := k.Get(5)
	if a != m2 || b != m1 {
		t.Errorf("expected most recent killer first: got %v, %v", a, b)
	}
}

func TestKillersDedup(t *testing.T) {
	k := NewKillers(64)
	m := move("g1", "f3")
	k.Add(1, m)
	k.Add(1, m)
	a, b := k.Get(1)
	if a != m || b != board.NullMove {
		t.Errorf("adding the same killer twice should not duplicate it: %v %v", a, b)
	}
}

func TestHistoryBonusIncreasesScore(t *testing.T) {
	h := NewHistory()
	m := move("g1", "f3")
	before := h.Score(board.White, m)
	h.Bonus(board.White, m, 4)
	if after := h.Score(board.White, m); after <= before {
		t.Errorf("bonus should increase the score: %d -> %d", before, after)
	}
}

func TestHistoryMalusDecreasesScore(t *testing.T) {
	h := NewHistory()
	m := move("g1", "f3")
	h.Bonus(board.White, m, 4)
	before := h.Score(board.White, m)
	h.Malus(board.White, m, 4)
	if after := h.Score(board.White, m); after >= before {
		t.Errorf("malus should decrease the score: %d -> %d", before, after)
	}
}

func TestCounterMoveRoundTrip(t *testing.T) {
	c := NewCounterMoves()
	prev := move("e2", "e4")
	reply := move("e7", "e5")
	c.Set(board.Black, prev, reply)
	if got := c.Get(board.Black, prev); got != reply {
		t.Errorf("got %v, want %v", got, reply)
	}
}
