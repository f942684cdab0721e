package endgame

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestBareKingsIsDraw(t *testing.T) {
	outcome, _ := Classify(Signature{})
	if outcome != Draw {
		t.Errorf("expected Draw, got %v", outcome)
	}
}

func TestLoneMinorCannotWin(t *testing.T) {
	outcome, _ := Classify(Signature{WhiteKnights: 1})
	if outcome != Draw {
		t.Errorf("expected Draw for a lone knight, got %v", outcome)
	}
}

func TestKBNvKIsCertainWin(t *testing.T) {
	outcome, favored := Classify(Signature{WhiteKnights: 1, WhiteBishops: 1})
	if outcome != CertainWin || favored != board.White {
		t.Errorf("expected CertainWin for White, got %v/%v", outcome, favored)
	}
}

func TestOppositeColoredBishopsIsLikelyDraw(t *testing.T) {
	outcome, _ := Classify(Signature{
		WhiteBishops: 1, BlackBishops: 1,
		WhiteBishopLight: true, BlackBishopLight: false,
	})
	if outcome != LikelyDraw {
		t.Errorf("expected LikelyDraw, got %v", outcome)
	}
}

func TestDriveToCornerBonusPrefersMatchingCorner(t *testing.T) {
	a1, _ := board.SquareFromString("a1")
	a8, _ := board.SquareFromString("a8")
	atA1 := DriveToCornerBonus(a1, false) // a1 is a dark corner
	atA8 := DriveToCornerBonus(a8, false) // a8 is a light corner, wrong one
	if atA1 <= atA8 {
		t.Errorf("expected higher bonus for the matching corner: %d <= %d", atA1, atA8)
	}
}

func TestChebyshevDistance(t *testing.T) {
	a1, _ := board.SquareFromString("a1")
	h8, _ := board.SquareFromString("h8")
	if d := Chebyshev(a1, h8); d != 7 {
		t.Errorf("got %d, want 7", d)
	}
}
