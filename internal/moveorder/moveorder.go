// Package moveorder implements C9, the MoveOrderer: a staged, lazy
// move iterator. Stages are only generated when the earlier ones are
// exhausted, so a cutoff in the hash-move or good-captures stage never
// pays for sorting the quiet moves.
//
// Grounded on the teacher's move_ordering.go state machine (msHash,
// msGenViolent/msReturnViolent, msGenKiller/msReturnKiller,
// msGenRest/msReturnRest) and its MVV-LVA scoring, generalized to pull
// killer/counter/history hints from internal/heuristics instead of an
// engine-local stack.
package moveorder

import (
	"sort"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/heuristics"
)

type stage int

const (
	stageHash stage = iota
	stageGoodCaptures
	stageKillers
	stageCounter
	stageQuiet
	stageBadCaptures
	stageDone
)

// mvvlvaBonus values based on one pawn = 10, matching the teacher.
var mvvlvaBonus = [board.FigureArraySize]int32{0, 10, 40, 45, 68, 145, 256}

// Orderer iterates pseudo-legal moves for one node in staged order:
// hash move, good captures (SEE >= 0, MVV-LVA ordered), killers,
// counter move, quiet moves (history ordered), bad captures (SEE < 0).
type Orderer struct {
	pos     *board.Position
	hash    board.Move
	killers *heuristics.Killers
	history *heuristics.History
	counter board.Move

	ply int

	stage stage

	goodCaptures, badCaptures []scored
	quiet                     []scored
	killerA, killerB          board.Move

	idx int
}

type scored struct {
	m     board.Move
	score int32
}

// New returns an Orderer for pos at the given ply. hash is the move
// from a transposition-table probe (or board.NullMove); prevMove is
// the move that led to this node, used to look up a counter move.
func New(pos *board.Position, ply int, hash board.Move, prevMove board.Move, killers *heuristics.Killers, history *heuristics.History, counters *heuristics.CounterMoves) *Orderer {
	o := &Orderer{pos: pos, hash: hash, killers: killers, history: history, ply: ply}
	if hash.IsNull() || !pos.IsPseudoLegal(hash) {
		o.hash = board.NullMove
		o.stage = stageGoodCaptures
	}
	if killers != nil {
		o.killerA, o.killerB = killers.Get(ply)
	}
	if counters != nil {
		o.counter = counters.Get(pos.SideToMove(), prevMove)
	}
	return o
}

// Next returns the next move to try, or ok=false once every move has
// been returned.
func (o *Orderer) Next() (board.Move, bool) {
	for {
		switch o.stage {
		case stageHash:
			o.stage = stageGoodCaptures
			if !o.hash.IsNull() {
				return o.hash, true
			}
		case stageGoodCaptures:
			if o.goodCaptures == nil {
				o.generateCaptures()
				o.stage = stageGoodCaptures
				o.idx = 0
			}
			if o.idx < len(o.goodCaptures) {
				m := o.goodCaptures[o.idx].m
				o.idx++
				if m == o.hash {
					continue
				}
				return m, true
			}
			o.stage = stageKillers
			o.idx = 0
		case stageKillers:
			for o.idx < 2 {
				k := o.killerA
				if o.idx == 1 {
					k = o.killerB
				}
				o.idx++
				if k.IsNull() || k == o.hash || !o.pos.IsPseudoLegal(k) || k.IsViolent() {
					continue
				}
				return k, true
			}
			o.stage = stageCounter
		case stageCounter:
			o.stage = stageQuiet
			c := o.counter
			if !c.IsNull() && c != o.hash && c != o.killerA && c != o.killerB && o.pos.IsPseudoLegal(c) && c.IsQuiet() {
				return c, true
			}
		case stageQuiet:
			if o.quiet == nil {
				o.generateQuiet()
				o.idx = 0
			}
			for o.idx < len(o.quiet) {
				m := o.quiet[o.idx].m
				o.idx++
				if m == o.hash || m == o.killerA || m == o.killerB || m == o.counter {
					continue
				}
				return m, true
			}
			o.stage = stageBadCaptures
			o.idx = 0
		case stageBadCaptures:
			if o.idx < len(o.badCaptures) {
				m := o.badCaptures[o.idx].m
				o.idx++
				if m == o.hash {
					continue
				}
				return m, true
			}
			o.stage = stageDone
		case stageDone:
			return board.NullMove, false
		}
	}
}

func (o *Orderer) generateCaptures() {
	all := o.pos.GenerateMoves(nil)
	for _, m := range all {
		if m.IsQuiet() {
			continue
		}
		see := eval.SEE(o.pos, m)
		s := scored{m: m, score: mvvlvaBonus[m.Capture().Figure()]*64 - mvvlvaBonus[m.Target().Figure()]}
		if see >= 0 {
			o.goodCaptures = append(o.goodCaptures, s)
		} else {
			o.badCaptures = append(o.badCaptures, s)
		}
	}
	sort.SliceStable(o.goodCaptures, func(i, j int) bool { return o.goodCaptures[i].score > o.goodCaptures[j].score })
	sort.SliceStable(o.badCaptures, func(i, j int) bool { return o.badCaptures[i].score > o.badCaptures[j].score })
	if o.goodCaptures == nil {
		o.goodCaptures = []scored{}
	}
}

func (o *Orderer) generateQuiet() {
	all := o.pos.GenerateMoves(nil)
	us := o.pos.SideToMove()
	for _, m := range all {
		if m.IsViolent() {
			continue
		}
		s := scored{m: m, score: o.history.Score(us, m)}
		o.quiet = append(o.quiet, s)
	}
	sort.SliceStable(o.quiet, func(i, j int) bool { return o.quiet[i].score > o.quiet[j].score })
	if o.quiet == nil {
		o.quiet = []scored{}
	}
}
