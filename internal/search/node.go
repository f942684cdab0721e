// Package search implements C11 (QuiescenceSearch), C12
// (AlphaBeta/PVS) and C13 (IterativeDeepening): the actual tree walk,
// built on top of the board, eval, tt, moveorder, heuristics and
// repetition components.
//
// Grounded on the teacher's engine.go search loop (search/SearchPV,
// the null-window re-search ladder, the quiescence loop with stand-pat
// and delta pruning) and on original_source's search/futility.rs for
// the linear-in-depth futility margin shape.
package search

import "github.com/corvidchess/corvid/internal/score"

// node bundles the per-call search window so every recursive call
// site doesn't repeat the same four parameters; it is a plain value,
// not a tree structure search keeps around after a call returns.
type node struct {
	ply   int32
	depth int32
	alpha score.Score
	beta  score.Score
}

// widen applies raw (non-saturating, non-mate-checked) score
// arithmetic: window bounds never approach Score's overflow range in
// practice (they start at ±Inf at most and only ever shrink), so the
// ±1 adjustments PVS needs are done directly on the underlying int32
// instead of through Score.Add, which exists to guard accumulation of
// many small numeric deltas, not single-unit window nudges.
func widen(s score.Score, delta int32) score.Score { return score.Score(int32(s) + delta) }

// child returns the full-window node one ply deeper, with the window
// negated and swapped the way negamax always flips perspective.
func (n node) child(depthDelta int32) node {
	return node{ply: n.ply + 1, depth: n.depth - depthDelta, alpha: n.beta.Negate(), beta: n.alpha.Negate()}
}

// nullWindowChild returns a zero-width ("scout") window one below
// alpha, used by PVS to cheaply test whether a move beats alpha before
// committing to a full re-search.
func (n node) nullWindowChild(depthDelta int32) node {
	return node{ply: n.ply + 1, depth: n.depth - depthDelta, alpha: widen(n.alpha.Negate(), -1), beta: n.alpha.Negate()}
}

func (n node) isPV() bool { return int32(n.beta)-int32(n.alpha) > 1 }
