package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/score"
	"github.com/corvidchess/corvid/internal/timemanager"
)

// aspirationMinDepth is the depth at which iterative deepening starts
// narrowing the window around the previous iteration's score instead
// of searching full-width; shallow depths are cheap enough that a
// narrow window just causes extra re-searches for no benefit.
const aspirationMinDepth = 5

// aspirationStartWindow is the initial half-width of an aspiration
// window, in centipawns.
const aspirationStartWindow = 25

// Info is one "info" line IterativeDeepening hands to its caller after
// finishing a depth, the data a UCI front end needs to format a wire
// "info" command.
type Info struct {
	Depth    int
	SelDepth int
	Nodes    uint64
	NPS      uint64
	Time     time.Duration
	Score    score.Score
	PV       []board.Move
	HashFull int
}

// InfoFunc receives one Info per completed iteration; aspiration
// re-searches within a depth are not reported.
type InfoFunc func(Info)

// Result is what a finished (or stopped) search settles on: the move
// to play, and everything about the deepest completed iteration that
// a caller might want to report or log.
type Result struct {
	BestMove   board.Move
	PonderMove board.Move
	Depth      int
	SelDepth   int
	Nodes      uint64
	NPS        uint64
	TimeMS     int64
	Score      score.Score
	PV         []board.Move
}

// Search runs iterative deepening (C13) over pos until tc says to
// stop, reporting each completed depth through info (which may be
// nil). It owns tc for the duration of the call: callers must not
// call tc.Start concurrently with this.
func (s *Searcher) Search(pos *board.Position, tc *timemanager.Control, info InfoFunc) Result {
	s.tc = tc
	s.nodes = 0
	s.selDepth = 0
	s.tt.NewSearch()

	var result Result
	alpha, beta := -score.Inf, score.Inf
	prevScore := score.FromCP(0)

	for depth := 1; tc.NextDepth(depth); depth++ {
		window := score.Score(aspirationStartWindow)
		if depth >= aspirationMinDepth {
			alpha = clampWindow(prevScore - window)
			beta = clampWindow(prevScore + window)
		} else {
			alpha, beta = -score.Inf, score.Inf
		}

		var v score.Score
		for {
			root := node{ply: 0, depth: int32(depth), alpha: alpha, beta: beta}
			v = s.pvs(pos, root, false)
			if tc.Stopped() && depth > 1 {
				break
			}
			if v <= alpha {
				alpha = clampWindow(alpha - window)
				window *= 2
				continue
			}
			if v >= beta {
				beta = clampWindow(beta + window)
				window *= 2
				continue
			}
			break
		}

		if tc.Stopped() && depth > 1 {
			break
		}

		prevScore = v
		pv := append([]board.Move(nil), s.pv[0]...)
		elapsed := tc.Elapsed()
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(s.nodes) / elapsed.Seconds())
		}
		result = Result{
			BestMove: firstMove(pv),
			Depth:    depth,
			SelDepth: int(s.selDepth),
			Nodes:    s.nodes,
			NPS:      nps,
			TimeMS:   elapsed.Milliseconds(),
			Score:    v,
			PV:       pv,
		}
		if len(pv) > 1 {
			result.PonderMove = pv[1]
		}

		if info != nil {
			info(Info{
				Depth:    depth,
				SelDepth: int(s.selDepth),
				Nodes:    s.nodes,
				NPS:      nps,
				Time:     elapsed,
				Score:    v,
				PV:       pv,
				HashFull: s.tt.HashFull(),
			})
		}

		if v.IsMate() && v > 0 && int32(v.MateIn())*2-1 <= int32(depth) {
			// A mate has been found shallower than or at the current
			// depth; deepening further can't change the result.
			break
		}
	}

	return result
}

// SearchMultiPV runs Search once per requested PV line, excluding the
// best moves already found by earlier lines from the root move list,
// implementing the multi-PV mode of C13/C15. Lines after the first
// share the same tc, so later lines get whatever time remains.
func (s *Searcher) SearchMultiPV(pos *board.Position, tc *timemanager.Control, multiPV int, info InfoFunc) []Result {
	if multiPV < 1 {
		multiPV = 1
	}
	results := make([]Result, 0, multiPV)
	s.excludeRoots = s.excludeRoots[:0]
	for i := 0; i < multiPV; i++ {
		r := s.Search(pos, tc, info)
		if r.BestMove.IsNull() {
			break
		}
		results = append(results, r)
		s.excludeRoots = append(s.excludeRoots, r.BestMove)
		if tc.Stopped() {
			break
		}
	}
	s.excludeRoots = s.excludeRoots[:0]
	return results
}

func clampWindow(s score.Score) score.Score {
	if s.IsMate() {
		return s
	}
	if int32(s) > int32(score.MaxNumeric) {
		return score.Score(score.MaxNumeric)
	}
	if int32(s) < int32(score.MinNumeric) {
		return score.Score(score.MinNumeric)
	}
	return s
}

func firstMove(pv []board.Move) board.Move {
	if len(pv) == 0 {
		return board.NullMove
	}
	return pv[0]
}
