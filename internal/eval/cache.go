package eval

import "github.com/corvidchess/corvid/internal/score"

// evalCache is a small direct-mapped cache from position fingerprint
// to static evaluation, the same shape as the teacher's pawn-hash
// table (pawn_table.go) but keyed on the whole-position Zobrist
// instead of just the pawn structure, since this evaluator's features
// aren't split into a separately-cacheable pawn-only component.
type evalCache struct {
	entries []evalCacheEntry
	mask    uint64
}

type evalCacheEntry struct {
	key   uint64
	value score.Score
	used  bool
}

func newEvalCache(size int) evalCache {
	n := 1
	for n < size {
		n *= 2
	}
	return evalCache{entries: make([]evalCacheEntry, n), mask: uint64(n - 1)}
}

func (c *evalCache) get(key uint64) (score.Score, bool) {
	e := &c.entries[key&c.mask]
	if e.used && e.key == key {
		return e.value, true
	}
	return 0, false
}

func (c *evalCache) put(key uint64, v score.Score) {
	e := &c.entries[key&c.mask]
	e.key, e.value, e.used = key, v, true
}
