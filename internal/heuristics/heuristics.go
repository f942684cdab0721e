// Package heuristics holds the C10 move-ordering heuristic tables:
// killer moves, history scores and the counter-move table. They are
// move-ordering hints only, never correctness-affecting: a stale or
// wrong entry can only cost a cutoff, never return a bad result.
//
// Grounded on the teacher's killer-move stack (engine.go's
// stack.IsKiller/SaveKiller) and history table, generalized into a
// standalone component per spec.md §3.9/§4.9.
package heuristics

import "github.com/corvidchess/corvid/internal/board"

const killersPerPly = 2

// Killers holds up to killersPerPly quiet moves per ply that caused a
// beta cutoff, tried early in sibling nodes at the same ply.
type Killers struct {
	table [][killersPerPly]board.Move
}

// NewKillers returns a table sized for up to maxPly plies.
func NewKillers(maxPly int) *Killers {
	return &Killers{table: make([][killersPerPly]board.Move, maxPly+1)}
}

// Add records m as a killer at ply, evicting the older slot. Callers
// should skip this for captures/promotions; killers are a quiet-move
// heuristic only.
func (k *Killers) Add(ply int, m board.Move) {
	slot := &k.table[ply]
	if slot[0] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

// Get returns the killer moves at ply, in try-first order. Either or
// both may be the zero Move if no killer has been recorded yet.
func (k *Killers) Get(ply int) (board.Move, board.Move) {
	slot := &k.table[ply]
	return slot[0], slot[1]
}

// Clear wipes every recorded killer, called at the start of a new game.
func (k *Killers) Clear() {
	for i := range k.table {
		k.table[i] = [killersPerPly]board.Move{}
	}
}

const historyMax = 1 << 14

// History scores quiet moves by how often they have caused cutoffs,
// indexed by [color][from][to] exactly like the teacher's table, so
// a history score survives across different positions that share the
// same quiet move.
type History struct {
	table [board.ColorArraySize][64][64]int32
}

// NewHistory returns a zeroed history table.
func NewHistory() *History { return &History{} }

// Bonus increases the score for a quiet move that caused a cutoff at
// the given depth. Malus is its companion, applied by the caller to
// each quiet move that was tried before the cutoff move and failed to
// cut off. Both go through bump, which keeps the table self-normalizing
// instead of growing unbounded.
func (h *History) Bonus(us board.Color, m board.Move, depth int) {
	h.bump(us, m, bonusFor(depth))
}

func (h *History) Malus(us board.Color, m board.Move, depth int) {
	h.bump(us, m, -bonusFor(depth))
}

func bonusFor(depth int) int32 {
	b := int32(depth * depth)
	if b > 400 {
		b = 400
	}
	return b
}

// bump applies a gravity-weighted update: the further *cell already is
// from 0, the smaller an additional step in the same direction moves
// it, which keeps the table self-normalizing without a periodic decay
// pass over the whole table.
func (h *History) bump(us board.Color, m board.Move, delta int32) {
	cell := &h.table[us][m.From()][m.To()]
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	*cell += delta - *cell*abs/historyMax
}

// Score returns the current history score for m, used as the ordering
// key within the quiet-move stage.
func (h *History) Score(us board.Color, m board.Move) int32 {
	return h.table[us][m.From()][m.To()]
}

// Clear wipes the table, called at the start of a new game.
func (h *History) Clear() {
	h.table = [board.ColorArraySize][64][64]int32{}
}

// CounterMoves records, per side-to-move and per opponent move, the
// quiet reply that most recently caused a cutoff, tried right after
// killers.
type CounterMoves struct {
	table [board.ColorArraySize][64][64]board.Move
}

// NewCounterMoves returns an empty counter-move table.
func NewCounterMoves() *CounterMoves { return &CounterMoves{} }

// Set records reply as the counter to prev, played by us.
func (c *CounterMoves) Set(us board.Color, prev, reply board.Move) {
	if prev.IsNull() {
		return
	}
	c.table[us][prev.From()][prev.To()] = reply
}

// Get returns the recorded counter to prev for us, or the zero Move.
func (c *CounterMoves) Get(us board.Color, prev board.Move) board.Move {
	if prev.IsNull() {
		return board.NullMove
	}
	return c.table[us][prev.From()][prev.To()]
}

// Clear wipes the table, called at the start of a new game.
func (c *CounterMoves) Clear() {
	c.table = [board.ColorArraySize][64][64]board.Move{}
}
