// Package endgame implements C5, the EndgameClassifier: material-
// signature recognizers that override or scale the general evaluator
// for positions where feature-based evaluation is known to mislead
// (most famously KBN vs K, which general mobility/PST features score
// as a tiny edge when it is actually a forced, if slow, win).
//
// Grounded on original_source's eg/endgame.rs (material-signature
// dispatch, king-drive-to-corner/edge distance metrics, and the
// "certain win bonus" idea), expressed with this package's own
// Signature of per-side piece counts instead of the original's.
package endgame

import "github.com/corvidchess/corvid/internal/board"

// Outcome is the classifier's verdict for a recognized signature.
type Outcome int

const (
	// Unclassified means no recognizer matched; the general evaluator's
	// output should be used unmodified.
	Unclassified Outcome = iota
	Draw
	CertainWin  // the side ahead wins with any reasonable play.
	LikelyDraw  // technically drawn or very hard to convert (opposite bishops).
)

// Signature is a material fingerprint: piece counts per side, pawns
// counted separately since pawn presence disqualifies most endgame-
// table recognizers.
type Signature struct {
	WhitePawns, BlackPawns     int32
	WhiteKnights, BlackKnights int32
	WhiteBishops, BlackBishops int32
	WhiteRooks, BlackRooks     int32
	WhiteQueens, BlackQueens   int32
	// WhiteBishopLight/WhiteBishopDark and BlackBishopLight/
	// BlackBishopDark record whether a side's bishop(s) sit on light or
	// dark squares; Classify's opposite-colored-bishop recognizer reads
	// the Light flags.
	WhiteBishopLight, WhiteBishopDark bool
	BlackBishopLight, BlackBishopDark bool
}

func (s Signature) whiteNonPawn() int32 {
	return s.WhiteKnights + s.WhiteBishops + s.WhiteRooks + s.WhiteQueens
}

func (s Signature) blackNonPawn() int32 {
	return s.BlackKnights + s.BlackBishops + s.BlackRooks + s.BlackQueens
}

// Classify recognizes s and returns an outcome plus which color (if
// any) the outcome favors. favored is meaningless when outcome is Draw
// or Unclassified.
func Classify(s Signature) (outcome Outcome, favored board.Color) {
	if s.WhitePawns == 0 && s.BlackPawns == 0 {
		switch {
		case s.whiteNonPawn() == 0 && s.blackNonPawn() == 0:
			return Draw, board.White
		case s.whiteNonPawn() == 0 && s.blackNonPawn() == 1 && (s.BlackKnights == 1 || s.BlackBishops == 1):
			return Draw, board.White // lone minor can't force mate.
		case s.blackNonPawn() == 0 && s.whiteNonPawn() == 1 && (s.WhiteKnights == 1 || s.WhiteBishops == 1):
			return Draw, board.White
		case s.WhiteKnights == 1 && s.WhiteBishops == 1 && s.whiteNonPawn() == 2 && s.blackNonPawn() == 0:
			return CertainWin, board.White
		case s.BlackKnights == 1 && s.BlackBishops == 1 && s.blackNonPawn() == 2 && s.whiteNonPawn() == 0:
			return CertainWin, board.Black
		case s.WhiteRooks == 1 && s.whiteNonPawn() == 1 && s.blackNonPawn() == 0:
			return CertainWin, board.White
		case s.BlackRooks == 1 && s.blackNonPawn() == 1 && s.whiteNonPawn() == 0:
			return CertainWin, board.Black
		case s.WhiteQueens == 1 && s.whiteNonPawn() == 1 && s.blackNonPawn() == 0:
			return CertainWin, board.White
		case s.BlackQueens == 1 && s.blackNonPawn() == 1 && s.whiteNonPawn() == 0:
			return CertainWin, board.Black
		}
	}
	if s.WhiteBishops == 1 && s.BlackBishops == 1 && s.whiteNonPawn() == 1 && s.blackNonPawn() == 1 {
		oppositeColors := s.WhiteBishopLight != s.BlackBishopLight
		if oppositeColors {
			return LikelyDraw, board.White
		}
	}
	return Unclassified, board.White
}

// cornerDistance metrics used by the KBN-vs-K "drive to the bishop's
// corner" technique: the defending king must be driven into the
// corner matching the attacking bishop's square color, not just any
// corner, or the position is a known draw under the 50-move rule.

// Chebyshev returns max(|dr|,|df|) between two squares.
func Chebyshev(a, b board.Square) int {
	dr := abs(a.Rank() - b.Rank())
	df := abs(a.File() - b.File())
	if dr > df {
		return dr
	}
	return df
}

// Manhattan returns |dr|+|df| between two squares.
func Manhattan(a, b board.Square) int {
	return abs(a.Rank()-b.Rank()) + abs(a.File()-b.File())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// bishopCorners are the two same-colored corners a KBN-vs-K defender
// must be driven to, indexed by [isLightSquaredBishop].
var bishopCorners = [2][2]board.Square{
	0: {board.RankFile(0, 0), board.RankFile(7, 7)}, // dark corners: a1, h8
	1: {board.RankFile(0, 7), board.RankFile(7, 0)}, // light corners: h1, a8
}

func false2int(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DriveToCornerBonus scores how close defenderKing is to the nearer of
// the two corners matching the attacking bishop's square color: higher
// is better for the attacker. Used as a certain-win endgame's
// evaluation override, added on top of material.
func DriveToCornerBonus(defenderKing board.Square, bishopIsLight bool) int32 {
	corners := bishopCorners[false2int(bishopIsLight)]
	d0 := Chebyshev(defenderKing, corners[0])
	d1 := Chebyshev(defenderKing, corners[1])
	d := d0
	if d1 < d {
		d = d1
	}
	// d is 0 at a correct corner and at most 7 anywhere else;
	// inverted and scaled so "closer to corner" is a larger bonus
	// (210 at the corner down to 140).
	return int32(21-d) * 10
}

// CenterDistance returns how far sq is from the board's geometric
// center, used to drive a lone king toward the edge in basic mating
// techniques that don't care which corner (KQ/KR vs K).
func CenterDistance(sq board.Square) int {
	dr := abs(sq.Rank()*2 - 7)
	df := abs(sq.File()*2 - 7)
	if dr > df {
		return dr
	}
	return df
}
