package phase

import "testing"

func TestInterpolateEndpoints(t *testing.T) {
	w := W(100, -40)
	if got := w.Interpolate(0); got != 100 {
		t.Errorf("phase 0 should return Start, got %d", got)
	}
	if got := w.Interpolate(100); got != -40 {
		t.Errorf("phase 100 should return End, got %d", got)
	}
}

func TestInterpolateClampsOutOfRangePhase(t *testing.T) {
	w := W(10, 20)
	if got := w.Interpolate(-5); got != 10 {
		t.Errorf("negative phase should clamp to Start, got %d", got)
	}
	if got := w.Interpolate(200); got != 20 {
		t.Errorf("phase above 100 should clamp to End, got %d", got)
	}
}

func TestAddIsComponentWise(t *testing.T) {
	got := W(1, 2).Add(W(3, 4))
	if want := (W(4, 6)); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPhaserOpeningIsZero(t *testing.T) {
	var ph Phaser
	full := Material{Knights: 4, Bishops: 4, Rooks: 4, Queens: 2}
	if got := ph.Phase(full); got != 0 {
		t.Errorf("full material should be phase 0 (opening), got %d", got)
	}
}

func TestPhaserBareKingsIsEndgame(t *testing.T) {
	var ph Phaser
	if got := ph.Phase(Material{}); got != 100 {
		t.Errorf("no material should be phase 100 (endgame), got %d", got)
	}
}

func TestPhaserIsMonotonicInMaterial(t *testing.T) {
	var ph Phaser
	less := ph.Phase(Material{Queens: 2})
	more := ph.Phase(Material{Queens: 2, Rooks: 4})
	if !(more < less) {
		t.Errorf("adding material should decrease (not increase) the phase: %d vs %d", more, less)
	}
}
