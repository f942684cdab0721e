package feature

import "testing"

func TestSumAccumulatesSignedCounts(t *testing.T) {
	set := DefaultSet()
	sum := &Sum{Set: set, Phase: 0}
	sum.Add(MaterialPawn, 8)
	sum.Add(MaterialPawn, -7)
	want := set.Weight(MaterialPawn).Interpolate(0)
	if got := sum.Total(); got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestDefaultSetOrdersMaterialByValue(t *testing.T) {
	set := DefaultSet()
	p := set.Weight(MaterialPawn).Interpolate(0)
	n := set.Weight(MaterialKnight).Interpolate(0)
	r := set.Weight(MaterialRook).Interpolate(0)
	q := set.Weight(MaterialQueen).Interpolate(0)
	if !(p < n && n < r && r < q) {
		t.Errorf("expected pawn < knight < rook < queen, got %d %d %d %d", p, n, r, q)
	}
}

func TestAddWithZeroCountIsNoop(t *testing.T) {
	sum := &Sum{Set: DefaultSet()}
	sum.Add(MaterialQueen, 0)
	if sum.Total() != 0 {
		t.Errorf("expected zero-count Add to be a no-op, got %d", sum.Total())
	}
}
