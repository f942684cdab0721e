// Package repetition implements C8: tracking an ordered sequence of
// position fingerprints, and answering whether the current fingerprint
// has now occurred often enough to be claimed (or assumed, inside
// search) a draw.
//
// The teacher folds this directly into Position.IsThreeFoldRepetition;
// this keeps the same fingerprint-scan idea but as its own component,
// since the spec treats repetition detection as independent of board
// representation (a position fingerprint is just a uint64 to this
// package).
package repetition

// Trail is an ordered fingerprint history. Search pushes a fingerprint
// on entering a node and pops it on leaving, so the trail holds the
// positions on the current search path below the root; it does not
// hold the root or the positions played before it, and it is not cut
// back at irreversible moves.
type Trail struct {
	keys []uint64
}

// NewTrail returns an empty trail.
func NewTrail() *Trail { return &Trail{} }

// Reset clears the trail, called by SearchDriver.NewGame.
func (t *Trail) Reset() { t.keys = t.keys[:0] }

// Push appends key as the most recent fingerprint.
func (t *Trail) Push(key uint64) { t.keys = append(t.keys, key) }

// Pop removes the most recently pushed fingerprint. It must be called
// exactly once for every Push, in LIFO order, mirroring DoMove/UndoMove.
func (t *Trail) Pop() { t.keys = t.keys[:len(t.keys)-1] }

// Len returns the number of fingerprints currently tracked.
func (t *Trail) Len() int { return len(t.keys) }

// Count returns how many times key occurs in the trail, including the
// most recently pushed occurrence.
func (t *Trail) Count(key uint64) int {
	n := 0
	for _, k := range t.keys {
		if k == key {
			n++
		}
	}
	return n
}

// IsRepeated reports whether key has now occurred at least twice
// before the current occurrence, i.e. the current position is a
// threefold repetition. Search treats this the same as a draw score.
func (t *Trail) IsRepeated(key uint64) bool {
	return t.Count(key) >= 3
}

// IsTwofold reports whether key has occurred once already, an early,
// cheap "this line is heading for a repetition" signal distinct from
// the stricter threefold rule.
func (t *Trail) IsTwofold(key uint64) bool {
	return t.Count(key) >= 2
}
