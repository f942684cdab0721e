package search

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/heuristics"
	"github.com/corvidchess/corvid/internal/moveorder"
	"github.com/corvidchess/corvid/internal/repetition"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/timemanager"
	"github.com/corvidchess/corvid/internal/tt"
)

// Searcher owns everything a single search needs: the shared tables
// (transposition, heuristics, evaluator) plus per-search bookkeeping
// (node count, stop signal, principal variation). A Searcher is
// reused across moves within one game; NewGame resets its tables.
type Searcher struct {
	eval    *eval.Evaluator
	tt      *tt.Table
	killers *heuristics.Killers
	history *heuristics.History
	counter *heuristics.CounterMoves
	trail   *repetition.Trail

	tc    *timemanager.Control
	nodes uint64

	pv           [][]board.Move
	selDepth     int32
	excludeRoots []board.Move

	// prevMove, indexed by ply, lets the counter-move heuristic look up
	// "what did the opponent just play".
	prevMove []board.Move
}

// NewSearcher builds a Searcher with fresh tables. maxPly bounds the
// killer/PV/prevMove table sizes.
func NewSearcher(ev *eval.Evaluator, table *tt.Table, maxPly int) *Searcher {
	s := &Searcher{
		eval:     ev,
		tt:       table,
		killers:  heuristics.NewKillers(maxPly),
		history:  heuristics.NewHistory(),
		counter:  heuristics.NewCounterMoves(),
		trail:    repetition.NewTrail(),
		pv:       make([][]board.Move, maxPly+1),
		prevMove: make([]board.Move, maxPly+1),
	}
	return s
}

// NewGame clears every table that must not leak information between
// games, per spec.md's SearchDriver.NewGame contract.
func (s *Searcher) NewGame() {
	s.tt.Clear()
	s.killers.Clear()
	s.history.Clear()
	s.counter.Clear()
	s.trail.Reset()
}

func (s *Searcher) shouldStop() bool {
	return s.tc != nil && s.tc.Stopped()
}

func (s *Searcher) isExcludedRoot(m board.Move) bool {
	for _, e := range s.excludeRoots {
		if e == m {
			return true
		}
	}
	return false
}

// futilityMargin grows linearly with remaining depth, matching
// original_source's search/futility.rs shape rather than the
// teacher's (which doesn't implement futility pruning at all).
func futilityMargin(depth int32) int32 {
	return 90 * depth
}

const (
	nullMoveMinDepth   = 3
	razorMaxDepth      = 3
	futilityMaxDepth   = 6
	lmrMinDepth        = 3
	lmrMinMoveIndex    = 4
)

// pvs runs a principal-variation search of n in pos and returns the
// score from the side-to-move's point of view, implementing C12. It
// assumes pos is not in a position the caller has already determined
// to be a draw; draw detection for repetition/fifty-move/insufficient
// material happens in the preamble below.
func (s *Searcher) pvs(pos *board.Position, n node, cutNode bool) score.Score {
	s.nodes++
	if s.tc != nil {
		s.tc.AddNodes(1)
	}
	if n.ply > s.selDepth {
		s.selDepth = n.ply
	}
	s.pv[n.ply] = s.pv[n.ply][:0]

	if s.shouldStop() {
		return n.alpha
	}

	key := pos.Zobrist()
	if n.ply > 0 && (s.trail.IsRepeated(key) || pos.FiftyMoveRule() || pos.InsufficientMaterial()) {
		return score.FromCP(0)
	}

	// Mate-distance pruning: no line through this node can matter if
	// even delivering mate immediately wouldn't beat the window.
	n.alpha = n.alpha.ClampToPly(n.ply)
	n.beta = n.beta.ClampToPly(n.ply)
	if n.alpha >= n.beta {
		return n.alpha
	}

	if n.depth <= 0 {
		return s.quiescence(pos, n.alpha, n.beta, n.ply, 0)
	}

	inCheck := pos.IsInCheck(pos.SideToMove())

	var hashMove board.Move
	if e, ok := s.tt.Probe(key); ok {
		hashMove = board.UnpackMove(e.Move) // validated lazily by IsPseudoLegal in moveorder.
		if int32(e.Depth) >= n.depth {
			stored := tt.AdjustProbeScore(e.Score, n.ply)
			switch e.Bound {
			case tt.BoundExact:
				if !n.isPV() {
					return stored
				}
			case tt.BoundLower:
				if stored >= n.beta {
					return stored
				}
			case tt.BoundUpper:
				if stored <= n.alpha {
					return stored
				}
			}
		}
	}

	staticEval := s.eval.Evaluate(pos)

	if !n.isPV() && !inCheck {
		// Reverse futility pruning: if static eval already clears beta
		// by a depth-scaled margin, assume a real move won't do worse.
		if n.depth <= futilityMaxDepth && staticEval-score.Score(futilityMargin(n.depth)) >= n.beta {
			return staticEval
		}
		// Razoring: a large deficit at low depth is unlikely to recover
		// outside of quiescence, so verify with a quiescence call.
		if n.depth <= razorMaxDepth && staticEval+score.Score(futilityMargin(n.depth))*2 < n.alpha {
			v := s.quiescence(pos, n.alpha, widen(n.alpha, 1), n.ply, 0)
			if v < n.alpha {
				return v
			}
		}
		// Null-move pruning: skip our move entirely and see if the
		// opponent still can't beat beta, a cheap zugzwang-risking test
		// skipped in king-and-pawn-only endgames where it misfires.
		if n.depth >= nullMoveMinDepth && staticEval >= n.beta && hasNonPawnMaterial(pos) {
			r := int32(2) + n.depth/4
			child := node{ply: n.ply + 1, depth: n.depth - 1 - r, alpha: n.beta.Negate(), beta: widen(n.beta.Negate(), 1)}
			pos.PassMove()
			v := -s.pvs(pos, child, !cutNode)
			pos.UndoPassMove()
			if v >= n.beta && v.IsNumeric() {
				return v
			}
		}
	}

	orderer := moveorder.New(pos, int(n.ply), hashMove, s.prevAt(n.ply), s.killers, s.history, s.counter)
	us := pos.SideToMove()

	var best score.Score = score.WeLoseIn(n.ply)
	var bestMove board.Move
	movesSearched := 0
	origAlpha := n.alpha
	var quietsTried []board.Move

	for {
		m, ok := orderer.Next()
		if !ok {
			break
		}
		if n.ply == 0 && s.isExcludedRoot(m) {
			continue
		}
		pos.DoMove(m)
		if pos.IsInCheck(us) {
			pos.UndoMove(m)
			continue
		}
		movesSearched++
		s.setPrevAt(n.ply+1, m)
		s.trail.Push(pos.Zobrist())

		givesCheck := pos.IsInCheck(pos.SideToMove())
		depthDelta := int32(1)
		if givesCheck {
			depthDelta = 0 // check extension
		}

		var v score.Score
		if movesSearched == 1 {
			v = -s.pvs(pos, n.child(depthDelta), false)
		} else {
			reduction := int32(0)
			if !givesCheck && m.IsQuiet() && n.depth >= lmrMinDepth && movesSearched >= lmrMinMoveIndex && !n.isPV() {
				reduction = 1
			}
			scout := n.nullWindowChild(depthDelta + reduction)
			v = -s.pvs(pos, scout, true)
			if v > origAlpha && (reduction > 0 || n.isPV()) {
				v = -s.pvs(pos, n.child(depthDelta), false)
			}
		}

		s.trail.Pop()
		pos.UndoMove(m)

		if v > best {
			best = v
			bestMove = m
			if v > n.alpha {
				n.alpha = v
				s.pv[n.ply] = append(s.pv[n.ply][:0], m)
				s.pv[n.ply] = append(s.pv[n.ply], s.pv[n.ply+1]...)
			}
		}
		if n.alpha >= n.beta {
			if m.IsQuiet() {
				s.killers.Add(int(n.ply), m)
				s.history.Bonus(us, m, int(n.depth))
				s.counter.Set(us, s.prevAt(n.ply), m)
				for _, failed := range quietsTried {
					s.history.Malus(us, failed, int(n.depth))
				}
			}
			break
		}
		if m.IsQuiet() {
			quietsTried = append(quietsTried, m)
		}
	}

	if movesSearched == 0 {
		if inCheck {
			return score.WeLoseIn(n.ply)
		}
		return score.FromCP(0)
	}

	bound := tt.BoundExact
	if best <= origAlpha {
		bound = tt.BoundUpper
	} else if best >= n.beta {
		bound = tt.BoundLower
	}
	s.tt.Store(key, tt.Entry{
		Move:  board.PackMove(bestMove),
		Score: tt.AdjustStoreScore(best, n.ply),
		Depth: int8(n.depth),
		Bound: bound,
	})
	return best
}

func (s *Searcher) prevAt(ply int32) board.Move {
	if int(ply) >= len(s.prevMove) {
		return board.NullMove
	}
	return s.prevMove[ply]
}

func (s *Searcher) setPrevAt(ply int32, m board.Move) {
	if int(ply) < len(s.prevMove) {
		s.prevMove[ply] = m
	}
}

func hasNonPawnMaterial(pos *board.Position) bool {
	us := pos.SideToMove()
	return pos.PieceCount(us, board.Knight)+pos.PieceCount(us, board.Bishop)+
		pos.PieceCount(us, board.Rook)+pos.PieceCount(us, board.Queen) > 0
}
