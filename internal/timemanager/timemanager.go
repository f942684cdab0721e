// Package timemanager implements C14, the TimeManager: translating a
// UCI "go" command's time control into a deadline, plus a node-limit
// mode and pondering support.
//
// Adapted closely from the teacher's time_control.go: the same
// branching-factor-scaled thinking-time formula, the same atomic
// stopped/ponderhit flags, and the same searchDeadline vs
// ponderDeadline (used while pondering) split. Only one deadline is in
// force at a time, and it both keeps iterative deepening from starting
// a new depth and stops the running search; there is no separate soft
// deadline.
package timemanager

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultMovesToGo   = 30
	defaultBranchFactor = 2
)

// Mode selects which field of a Control governs when IterativeDeepening
// stops.
type Mode int

const (
	ModeClock Mode = iota // wtime/btime/winc/binc/movestogo
	ModeMoveTime
	ModeDepth
	ModeNodes
	ModeInfinite
)

// atomicFlag is a set-once-read-many atomic bool, kept as a tiny
// wrapper (rather than a bare atomic.Bool) to match the teacher's
// explicit atomicFlag type.
type atomicFlag struct {
	v atomic.Bool
}

func (f *atomicFlag) set()       { f.v.Store(true) }
func (f *atomicFlag) get() bool  { return f.v.Load() }

// Control is one search's time control, built from a UCI "go" command.
type Control struct {
	Mode Mode

	WTime, WInc time.Duration
	BTime, BInc time.Duration
	MoveTime    time.Duration
	Depth       int
	NodeLimit   uint64
	MovesToGo   int

	numPieces  int
	whiteToMove bool

	stopped   atomicFlag
	ponderhit atomicFlag

	mu             sync.Mutex
	startTime      time.Time
	searchTime     time.Duration
	searchDeadline time.Time
	ponderTime     time.Duration
	ponderDeadline time.Time

	nodes atomic.Uint64
}

// New returns a clock-mode control with no limit, ready for its
// fields to be overridden by a UCI "go" parser before Start is called.
func New(numPieces int, whiteToMove bool) *Control {
	inf := time.Duration(math.MaxInt64)
	return &Control{
		Mode: ModeClock,
		WTime: inf, BTime: inf,
		Depth:     64,
		MovesToGo: defaultMovesToGo,
		numPieces: numPieces, whiteToMove: whiteToMove,
	}
}

// NewFixedDepth returns a depth-limited control used by tests and the
// `go depth N` UCI command.
func NewFixedDepth(depth int) *Control {
	tc := New(32, true)
	tc.Mode = ModeDepth
	tc.Depth = depth
	return tc
}

// NewMoveTime returns a control that allots exactly d per move.
func NewMoveTime(d time.Duration) *Control {
	tc := New(32, true)
	tc.Mode = ModeMoveTime
	tc.MoveTime = d
	return tc
}

func (tc *Control) thinkingTime(t, i time.Duration) time.Duration {
	n := time.Duration(tc.MovesToGo)
	if n < 1 {
		n = 1
	}
	if tt := (t + (n-1)*i) / n; tt < t {
		return tt
	}
	return t
}

// Start begins the clock. Must be called as close to receiving "go" as
// possible so elapsed UCI-parsing time isn't charged against the
// search.
func (tc *Control) Start(ponder bool) {
	branchFactor := time.Duration(defaultBranchFactor)
	for np := tc.numPieces - 2; np > 0; np /= 6 {
		branchFactor++
	}
	for i := 4; i > 0; i /= 2 {
		if tc.MovesToGo <= i {
			branchFactor++
		}
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	switch tc.Mode {
	case ModeMoveTime:
		tc.searchTime = tc.MoveTime
		tc.ponderTime = tc.MoveTime
	case ModeDepth, ModeNodes, ModeInfinite:
		tc.searchTime = time.Duration(math.MaxInt64)
		tc.ponderTime = tc.searchTime
	default:
		var otime, oinc, ttime, tinc time.Duration
		if tc.whiteToMove {
			otime, oinc, ttime, tinc = tc.WTime, tc.WInc, tc.BTime, tc.BInc
		} else {
			otime, oinc, ttime, tinc = tc.BTime, tc.BInc, tc.WTime, tc.WInc
		}
		tc.searchTime = tc.thinkingTime(otime, oinc) / branchFactor
		tc.ponderTime = (tc.thinkingTime(ttime, tinc) + tc.searchTime/2) / branchFactor
	}

	now := time.Now()
	tc.startTime = now
	tc.searchDeadline = now.Add(tc.searchTime)
	tc.ponderDeadline = now.Add(tc.ponderTime)
	if !ponder {
		tc.ponderhit.set()
	}
}

// NextDepth reports whether IterativeDeepening may start a search at
// depth: always true up to depth 2 (so the engine never returns
// without a move), bounded above by Depth/ModeDepth and otherwise
// gated on the deadline not yet being reached.
func (tc *Control) NextDepth(depth int) bool {
	if tc.Mode == ModeDepth && depth > tc.Depth {
		return false
	}
	return depth <= 2 || !tc.Stopped()
}

// PonderHit switches the control from pondering time to normal search
// time, called when the UCI "ponderhit" command arrives.
func (tc *Control) PonderHit() {
	tc.mu.Lock()
	tc.searchDeadline = time.Now().Add(tc.searchTime)
	tc.mu.Unlock()
	tc.ponderhit.set()
}

// Stop marks the search as stopped, called by the UCI "stop" command
// or by SearchDriver.Stop.
func (tc *Control) Stop() { tc.stopped.set() }

// Stopped reports whether the search should stop now: explicitly
// stopped, or the relevant deadline (ponder or search) has passed.
func (tc *Control) Stopped() bool {
	if tc.stopped.get() {
		return true
	}
	if tc.Mode == ModeNodes && tc.nodes.Load() >= tc.NodeLimit {
		tc.stopped.set()
		return true
	}
	tc.mu.Lock()
	deadline := tc.ponderDeadline
	if tc.ponderhit.get() {
		deadline = tc.searchDeadline
	}
	tc.mu.Unlock()
	if time.Now().After(deadline) {
		tc.stopped.set()
		return true
	}
	return false
}

// AddNodes accumulates searched nodes for ModeNodes' limit check; the
// search driver calls this once per node (or in small batches).
func (tc *Control) AddNodes(n uint64) { tc.nodes.Add(n) }

// Elapsed returns the time since Start, for the UCI "info time" field.
func (tc *Control) Elapsed() time.Duration {
	tc.mu.Lock()
	start := tc.startTime
	tc.mu.Unlock()
	return time.Since(start)
}
