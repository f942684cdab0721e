package openingbook

import "testing"

func TestImportThenLookupRoundTrips(t *testing.T) {
	dir := t.TempDir()

	im, err := OpenImporter(dir)
	if err != nil {
		t.Fatalf("OpenImporter: %v", err)
	}
	want := Entry{Moves: []string{"e2e4", "d2d4"}, Weights: []int32{10, 8}}
	if err := im.Put(12345, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := im.Close(); err != nil {
		t.Fatalf("Close importer: %v", err)
	}

	book, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer book.Close()

	got, ok := book.Lookup(12345)
	if !ok {
		t.Fatalf("expected a book entry for the imported position")
	}
	if len(got.Moves) != 2 || got.Moves[0] != "e2e4" {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLookupMissIsFalse(t *testing.T) {
	dir := t.TempDir()
	im, err := OpenImporter(dir)
	if err != nil {
		t.Fatalf("OpenImporter: %v", err)
	}
	if err := im.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	book, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer book.Close()

	if _, ok := book.Lookup(999); ok {
		t.Errorf("expected no entry in an empty book")
	}
}
