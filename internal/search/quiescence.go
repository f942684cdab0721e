package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/score"
)

// quiescenceMaxPly caps how much deeper quiescence can go than the
// depth-0 node that invoked it, a safety net against pathological
// check-evasion chains rather than a tuning parameter.
const quiescenceMaxPly = 32

// quiescence resolves tactical sequences (captures, promotions, and,
// while in check, every legal reply) until the position is "quiet",
// implementing C11. It never searches below qply 0 by generating
// non-captures, so its cost is bounded by the position's tactical
// density rather than the main search's depth.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta score.Score, ply int32, qply int32) score.Score {
	s.nodes++
	if s.tc != nil {
		s.tc.AddNodes(1)
	}
	if s.shouldStop() {
		return alpha
	}

	inCheck := pos.IsInCheck(pos.SideToMove())
	var standPat score.Score
	if !inCheck {
		standPat = s.eval.Evaluate(pos)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if qply > quiescenceMaxPly {
		return alpha
	}

	bestScore := standPat
	if inCheck {
		bestScore = score.WeLoseIn(ply)
	}

	for _, m := range s.quiescenceMoves(pos, inCheck) {
		if !inCheck {
			// Delta pruning: even the best case (winning the captured
			// piece outright) can't raise alpha, so skip the move
			// without playing it.
			gain := capturedValue(m) + 200
			if standPat+score.Score(gain) < alpha && m.MoveType() != board.Promotion {
				continue
			}
			if m.IsViolent() && eval.SEE(pos, m) < 0 {
				continue
			}
		}

		pos.DoMove(m)
		if pos.IsInCheck(pos.SideToMove().Opposite()) {
			pos.UndoMove(m)
			continue
		}
		v := -s.quiescence(pos, beta.Negate(), alpha.Negate(), ply+1, qply+1)
		pos.UndoMove(m)

		if v > bestScore {
			bestScore = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}

	if inCheck && bestScore == score.WeLoseIn(ply) {
		// No legal reply was found: checkmate.
		return score.WeLoseIn(ply)
	}
	return bestScore
}

// quiescenceMoves returns every capture/promotion when not in check,
// or every pseudo-legal move when in check (a check must be answered
// somehow, quiet or not).
func (s *Searcher) quiescenceMoves(pos *board.Position, inCheck bool) []board.Move {
	all := pos.GenerateMoves(nil)
	if inCheck {
		return all
	}
	violent := all[:0:0]
	for _, m := range all {
		if m.IsViolent() {
			violent = append(violent, m)
		}
	}
	return violent
}

var figureValue = [board.FigureArraySize]int32{0, 100, 320, 330, 500, 900, 0}

func capturedValue(m board.Move) int32 {
	v := figureValue[m.Capture().Figure()]
	if m.MoveType() == board.Promotion {
		v += figureValue[m.Promotion().Figure()] - figureValue[board.Pawn]
	}
	return v
}
