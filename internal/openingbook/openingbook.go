// Package openingbook implements the opening-book collaborator named
// but not specified by spec.md §6.6: a read-only store mapping a
// position's Zobrist fingerprint to a short list of recommended moves,
// consulted by internal/driver before a search starts.
//
// Grounded on hailam-chessplay's internal/storage/storage.go: the same
// embedded BadgerDB, the same View/Update transaction shape and
// json.Marshal'd values, generalized from user preferences/stats to
// position->moves entries keyed by an 8-byte big-endian Zobrist hash
// rather than a string constant.
package openingbook

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Entry is the book's recommendation for one position: UCI move
// strings (not board.Move, so the book format doesn't depend on the
// board package's internal move encoding) with an integer weight used
// to pick among several book moves.
type Entry struct {
	Moves   []string `json:"moves"`
	Weights []int32  `json:"weights"`
}

// Book is a read-only handle onto an opening-book file. The engine
// itself never writes through this handle; a separate offline import
// tool builds the file.
type Book struct {
	db *badger.DB
}

// Open opens the book at dir, which must already exist (created by an
// offline import step, out of this package's scope per spec.md §6.6).
func Open(dir string) (*Book, error) {
	opts := badger.DefaultOptions(dir).WithReadOnly(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("openingbook: open %s: %w", dir, err)
	}
	return &Book{db: db}, nil
}

// Close releases the underlying database handle.
func (b *Book) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

func keyFor(zobrist uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], zobrist)
	return k[:]
}

// Lookup returns the recommended moves for the position with the given
// Zobrist hash, and whether the book has an entry for it at all.
func (b *Book) Lookup(zobrist uint64) (Entry, bool) {
	var entry Entry
	found := false
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyFor(zobrist))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return Entry{}, false
	}
	return entry, found
}

// Importer builds a book file offline; it is the write side the
// engine process itself never exercises (spec.md §6.6 scopes book
// construction out of the core), kept here only so the format has one
// authoritative writer to test Lookup against.
type Importer struct {
	db *badger.DB
}

// OpenImporter opens dir for writing, creating it if necessary.
func OpenImporter(dir string) (*Importer, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("openingbook: open importer %s: %w", dir, err)
	}
	return &Importer{db: db}, nil
}

// Close releases the underlying database handle.
func (im *Importer) Close() error {
	if im.db == nil {
		return nil
	}
	return im.db.Close()
}

// Put records e as the book's recommendation for zobrist, overwriting
// any previous entry.
func (im *Importer) Put(zobrist uint64, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return im.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyFor(zobrist), data)
	})
}
