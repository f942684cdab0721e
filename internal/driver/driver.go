// Package driver implements C15, the SearchDriver: it glues the
// evaluator, transposition table and internal/search's iterative
// deepening into the three operations a front end needs (search,
// set_option, new_game) plus cancellation, matching spec.md §4.11.
//
// Grounded on the teacher's engine.go, which plays the same role of
// owning the long-lived tables (hash table, killers, history) across
// moves within one game and exposing a single entry point a UCI layer
// calls into.
package driver

import (
	"log"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/feature"
	"github.com/corvidchess/corvid/internal/openingbook"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/timemanager"
	"github.com/corvidchess/corvid/internal/tt"
)

const maxPly = 256

// SearchResult is spec.md §4.11's SearchResult, reported once a search
// finishes or is stopped.
type SearchResult struct {
	BestMove   string
	PonderMove string
	Depth      int
	SelDepth   int
	Nodes      uint64
	NPS        uint64
	TimeMS     int64
	Score      string
	PV         []string
	MultiPV    int
}

// Driver owns every table that must persist across moves within one
// game (transposition table, evaluator cache, heuristics via the
// Searcher) and the optional opening book.
type Driver struct {
	cfg      *config.Registry
	evalSet  *feature.Set
	searcher *search.Searcher
	book     *openingbook.Book
	logger   *log.Logger
}

// New builds a Driver with a transposition table sized from cfg's
// "tt.mb" parameter.
func New(cfg *config.Registry, logger *log.Logger) *Driver {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	set := feature.DefaultSet()
	ev := eval.New(set)
	table := tt.New(cfg.MustGet("tt.mb"))
	return &Driver{
		cfg:      cfg,
		evalSet:  set,
		searcher: search.NewSearcher(ev, table, maxPly),
		logger:   logger,
	}
}

// OpenBook attaches a read-only opening book at dir; failures are
// logged and leave the driver without a book rather than failing
// outright, since a missing book is never fatal to play.
func (d *Driver) OpenBook(dir string) {
	book, err := openingbook.Open(dir)
	if err != nil {
		d.logger.Printf("openingbook: %v (continuing without a book)", err)
		return
	}
	d.book = book
}

// NewGame clears every table that must not leak information between
// games (spec.md §4.11's new_game).
func (d *Driver) NewGame() {
	d.searcher.NewGame()
}

// SetOption sets a configuration key. An unknown key is reported
// through the error return rather than a panic, since it originates
// from external UCI input; an out-of-range value is clamped to the
// key's registered range.
func (d *Driver) SetOption(name string, value int) error {
	return d.cfg.Set(name, value)
}

// Stop requests cancellation of whatever search is in flight. Safe to
// call even when no search is running.
func (d *Driver) Stop(tc *timemanager.Control) {
	if tc != nil {
		tc.Stop()
	}
}

// Search runs one search to completion (or until tc says to stop) and
// returns the deepest completed iteration's result. info is called once
// per completed iteration; it may be nil.
func (d *Driver) Search(pos *board.Position, tc *timemanager.Control, info search.InfoFunc) SearchResult {
	multiPV := d.cfg.MustGet("search.multipv")

	if d.cfg.MustGet("book.enabled") != 0 && d.book != nil {
		if e, ok := d.book.Lookup(pos.Zobrist()); ok && len(e.Moves) > 0 {
			return SearchResult{BestMove: e.Moves[0], MultiPV: 1}
		}
	}

	if multiPV <= 1 {
		r := d.searcher.Search(pos, tc, info)
		return toResult(r, multiPV)
	}

	results := d.searcher.SearchMultiPV(pos, tc, multiPV, info)
	if len(results) == 0 {
		return SearchResult{}
	}
	return toResult(results[0], len(results))
}

func toResult(r search.Result, multiPV int) SearchResult {
	pv := make([]string, len(r.PV))
	for i, m := range r.PV {
		pv[i] = m.String()
	}
	res := SearchResult{
		BestMove: r.BestMove.String(),
		Depth:    r.Depth,
		SelDepth: r.SelDepth,
		Nodes:    r.Nodes,
		NPS:      r.NPS,
		TimeMS:   r.TimeMS,
		Score:    r.Score.UCI(),
		PV:       pv,
		MultiPV:  multiPV,
	}
	if !r.PonderMove.IsNull() {
		res.PonderMove = r.PonderMove.String()
	}
	return res
}
