// Package tt implements C7, the transposition table: a fixed-size,
// power-of-two bucketed cache from position fingerprint to a previous
// search's best move, score and bound.
//
// Grounded on the teacher's hash_table.go (two-way bucket, lock word
// to reject collisions, depth-aware replacement) with the torn-write
// guard generalized from a single lock word into a full XOR checksum
// (data XOR key == storedKey) the way original_source's
// cache/lockless_hashmap.rs validates a slot without a mutex: any
// single torn 64-bit write is caught because the XOR no longer
// matches, and the probe is treated as a miss rather than trusted.
package tt

import (
	"sync/atomic"

	"github.com/corvidchess/corvid/internal/score"
)

// Bound classifies a stored score relative to the window it was
// produced with.
type Bound uint8

const (
	BoundNone  Bound = iota
	BoundExact       // score is exact (a PV node).
	BoundLower       // score is a lower bound (failed high, beta cutoff).
	BoundUpper       // score is an upper bound (failed low).
)

// Entry is the logical (unpacked) content of one slot.
type Entry struct {
	Move  uint32 // a board.Move packed by board.PackMove/UnpackMove.
	Score score.Score
	Depth int8
	Bound Bound
	Age   uint8
}

// Table is the transposition table.
type Table struct {
	slots []slot
	mask  uint64
	age   uint8
}

type slot struct {
	keyXorData uint64 // fingerprint XOR data; self-validating against torn writes.
	data       uint64
}

func packData(e Entry) uint64 {
	var d uint64
	d |= uint64(e.Move) & 0xffffffff
	d |= uint64(uint16(int16(e.Score))) << 32
	d |= uint64(uint8(e.Depth)) << 48
	d |= uint64(e.Bound) << 56
	d |= uint64(e.Age) << 58
	return d
}

func unpackData(d uint64) Entry {
	return Entry{
		Move:  uint32(d & 0xffffffff),
		Score: score.Score(int16(uint16(d >> 32))),
		Depth: int8(uint8(d >> 48)),
		Bound: Bound((d >> 56) & 0x3),
		Age:   uint8((d >> 58) & 0x3f),
	}
}

// New builds a table sized to approximately sizeMB megabytes, rounded
// down to a power-of-two number of 16-byte slots.
func New(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	const slotSize = 16
	n := uint64(sizeMB) << 20 / slotSize
	var pow uint64 = 1
	for pow*2 <= n {
		pow *= 2
	}
	return &Table{slots: make([]slot, pow), mask: pow - 1}
}

// Resize rebuilds the table at a new size, discarding all entries.
func (t *Table) Resize(sizeMB int) {
	*t = *New(sizeMB)
}

func index(key uint64, mask uint64) uint64 { return key & mask }

// Store writes entry under key. A slot that is empty or holds a
// different position is always overwritten; an entry for the same
// position is replaced only by one at least as deep, by any entry when
// the stored one is from an earlier search, or by an exact entry over
// a bound.
//
// Mate scores are stored relative to the storing node, not the root:
// callers convert with AdjustStoreScore before Store and with
// AdjustProbeScore after Probe.
func (t *Table) Store(key uint64, e Entry) {
	e.Age = t.age
	idx := index(key, t.mask)
	s := &t.slots[idx]
	existing := unpackData(atomic.LoadUint64(&s.data))
	oldKey := atomic.LoadUint64(&s.keyXorData) ^ atomic.LoadUint64(&s.data)

	replace := oldKey != key || // empty or collision: always take it
		existing.Depth <= e.Depth ||
		existing.Age != t.age ||
		(existing.Bound != BoundExact && e.Bound == BoundExact)
	if !replace {
		return
	}

	data := packData(e)
	atomic.StoreUint64(&s.data, data)
	atomic.StoreUint64(&s.keyXorData, key^data)
}

// Probe looks up key and reports whether a valid (non-torn, matching)
// entry was found.
func (t *Table) Probe(key uint64) (Entry, bool) {
	idx := index(key, t.mask)
	s := &t.slots[idx]
	data := atomic.LoadUint64(&s.data)
	kx := atomic.LoadUint64(&s.keyXorData)
	if kx^data != key {
		return Entry{}, false
	}
	return unpackData(data), true
}

// NewSearch bumps the generation counter so Store's replacement policy
// prefers entries from the current search over stale ones, without
// clearing the table.
func (t *Table) NewSearch() { t.age = (t.age + 1) & 0x3f }

// Clear wipes every slot, used by SearchDriver.NewGame.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.age = 0
}

// HashFull samples the table and returns occupancy in parts-per-mille,
// the UCI "hashfull" info field (spec.md §6.3/§4.7).
func (t *Table) HashFull() int {
	const sample = 1000
	n := uint64(len(t.slots))
	if n < sample {
		used := 0
		for i := range t.slots {
			if t.slots[i].data != 0 {
				used++
			}
		}
		if n == 0 {
			return 0
		}
		return used * 1000 / int(n)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.slots[i].data != 0 {
			used++
		}
	}
	return used
}

// AdjustStoreScore converts s, a root-relative score as search produces
// it at a node ply plies from the root, into a node-relative score
// suitable for storage: a mate ply+k plies from the root is stored as
// a mate k plies from the storing node.
func AdjustStoreScore(s score.Score, ply int32) score.Score {
	if !s.IsMate() {
		return s
	}
	if s > 0 {
		return s + score.Score(ply)
	}
	return s - score.Score(ply)
}

// AdjustProbeScore is the inverse of AdjustStoreScore: it converts a
// stored node-relative mate score back into a root-relative one for
// the probing node at the given ply.
func AdjustProbeScore(s score.Score, ply int32) score.Score {
	if !s.IsMate() {
		return s
	}
	if s > 0 {
		return s - score.Score(ply)
	}
	return s + score.Score(ply)
}
