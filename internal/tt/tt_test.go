package tt

import (
	"testing"

	"github.com/corvidchess/corvid/internal/score"
)

func TestStoreProbeRoundTrip(t *testing.T) {
	table := New(1)
	e := Entry{Move: 0x1234, Score: score.FromCP(55), Depth: 6, Bound: BoundExact}
	table.Store(0xdeadbeef, e)
	got, ok := table.Probe(0xdeadbeef)
	if !ok {
		t.Fatalf("expected entry to be found")
	}
	if got.Move != e.Move || got.Score != e.Score || got.Depth != e.Depth || got.Bound != e.Bound {
		t.Errorf("got %+v, want %+v", got, e)
	}
}

func TestProbeMissOnDifferentKey(t *testing.T) {
	table := New(1)
	table.Store(1, Entry{Depth: 3, Bound: BoundExact})
	if _, ok := table.Probe(2); ok {
		t.Errorf("expected a miss for an unstored key")
	}
}

func TestClearRemovesEntries(t *testing.T) {
	table := New(1)
	table.Store(1, Entry{Depth: 3, Bound: BoundExact})
	table.Clear()
	if _, ok := table.Probe(1); ok {
		t.Errorf("expected no entry after Clear")
	}
}

func TestDeeperEntryReplacesShallower(t *testing.T) {
	table := New(1)
	key := uint64(42)
	table.Store(key, Entry{Depth: 2, Bound: BoundExact, Score: score.FromCP(1)})
	table.Store(key, Entry{Depth: 8, Bound: BoundExact, Score: score.FromCP(2)})
	got, _ := table.Probe(key)
	if got.Depth != 8 {
		t.Errorf("expected the deeper entry to win, got depth %d", got.Depth)
	}
}

func TestMateScoreRoundTripsThroughPlyAdjustment(t *testing.T) {
	s := score.WeWinIn(2)
	stored := AdjustStoreScore(s, 5)
	back := AdjustProbeScore(stored, 5)
	if back != s {
		t.Errorf("got %d, want %d", back, s)
	}
}

func TestHashFullOnEmptyTableIsZero(t *testing.T) {
	table := New(1)
	if hf := table.HashFull(); hf != 0 {
		t.Errorf("expected 0, got %d", hf)
	}
}
