package score

import "testing"

func TestMateEncodingIsMonotonic(t *testing.T) {
	// A mate in 1 ply is worth more than a mate in 3 plies.
	near := WeWinIn(1)
	far := WeWinIn(3)
	if !(near > far) {
		t.Errorf("expected WeWinIn(1) > WeWinIn(3), got %d <= %d", near, far)
	}
}

func TestLoseIsNegatedWin(t *testing.T) {
	for ply := int32(0); ply < 10; ply++ {
		if got, want := -WeWinIn(ply), WeLoseIn(ply); got != want {
			t.Errorf("ply %d: -WeWinIn = %d, want WeLoseIn = %d", ply, got, want)
		}
	}
}

func TestIsMate(t *testing.T) {
	if FromCP(150).IsMate() {
		t.Errorf("a centipawn score must not be a mate score")
	}
	if !WeWinIn(4).IsMate() {
		t.Errorf("WeWinIn(4) must be a mate score")
	}
	if !WeLoseIn(4).IsMate() {
		t.Errorf("WeLoseIn(4) must be a mate score")
	}
}

func TestMateInMoves(t *testing.T) {
	cases := []struct {
		s    Score
		want int32
	}{
		{WeWinIn(0), 1},  // mate delivered this ply: mate in 1 move
		{WeWinIn(1), 1},  // one reply then mate: still mate in 1 move
		{WeWinIn(2), 2},  // mate in 2 moves
		{WeWinIn(3), 2},
		{WeLoseIn(0), -1},
		{WeLoseIn(2), -2},
	}
	for _, c := range cases {
		if got := c.s.MateIn(); got != c.want {
			t.Errorf("Score(%d).MateIn() = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestUCIRoundTripFormat(t *testing.T) {
	if got, want := FromCP(37).UCI(), "cp 37"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := WeWinIn(3).UCI(), "mate 2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := WeLoseIn(3).UCI(), "mate -2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddSaturates(t *testing.T) {
	s := FromCP(int32(MaxNumeric) - 1)
	got := s.Add(FromCP(1000))
	if got != MaxNumeric {
		t.Errorf("Add should saturate at MaxNumeric, got %d", got)
	}
}

func TestAddPanicsOnMateOperand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Add to panic when given a mate operand")
		}
	}()
	WeWinIn(2).Add(FromCP(10))
}

func TestAdjustMateOnlyAcceptsUnitDelta(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected AdjustMate to panic on a non-unit delta")
		}
	}()
	WeWinIn(2).AdjustMate(2)
}

func TestClampToPly(t *testing.T) {
	s := Score(-40000).ClampToPly(5)
	if want := WeLoseIn(5); s != want {
		t.Errorf("expected clamp to WeLoseIn(5) = %d, got %d", want, s)
	}
}

func TestWinProbabilityMonotonic(t *testing.T) {
	a := FromCP(50).WinProbability(1)
	b := FromCP(500).WinProbability(1)
	if !(a < b) {
		t.Errorf("expected win probability to increase with score: %f >= %f", a, b)
	}
	if p := WeWinIn(1).WinProbability(1); p != 1 {
		t.Errorf("a winning mate score must have win probability 1, got %f", p)
	}
	if p := WeLoseIn(1).WinProbability(1); p != 0 {
		t.Errorf("a losing mate score must have win probability 0, got %f", p)
	}
}
