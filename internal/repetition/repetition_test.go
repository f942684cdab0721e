package repetition

import "testing"

func TestIsRepeatedNeedsThreeOccurrences(t *testing.T) {
	tr := NewTrail()
	tr.Push(1)
	tr.Push(2)
	tr.Push(1)
	if tr.IsRepeated(1) {
		t.Errorf("two occurrences should not be a repetition yet")
	}
	if !tr.IsTwofold(1) {
		t.Errorf("two occurrences should be a twofold")
	}
	tr.Push(3)
	tr.Push(1)
	if !tr.IsRepeated(1) {
		t.Errorf("three occurrences should be a repetition")
	}
}

func TestPushPopSymmetry(t *testing.T) {
	tr := NewTrail()
	tr.Push(7)
	tr.Push(8)
	if tr.Len() != 2 {
		t.Fatalf("expected len 2, got %d", tr.Len())
	}
	tr.Pop()
	if tr.Len() != 1 || tr.Count(8) != 0 {
		t.Errorf("pop should remove the most recent fingerprint")
	}
}

func TestResetClears(t *testing.T) {
	tr := NewTrail()
	tr.Push(1)
	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("expected empty trail after reset")
	}
}
