package uci

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/driver"
)

func newTestSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	d := driver.New(config.Default(), log.New(&bytes.Buffer{}, "", 0))
	return NewSession(d, &out, log.New(&bytes.Buffer{}, "", 0)), &out
}

func TestUCICommandPrintsUciok(t *testing.T) {
	s, out := newTestSession()
	if err := s.Execute("uci"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "uciok") {
		t.Errorf("expected uciok in output, got %q", out.String())
	}
}

func TestIsReadyPrintsReadyok(t *testing.T) {
	s, out := newTestSession()
	if err := s.Execute("isready"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "readyok") {
		t.Errorf("expected readyok in output, got %q", out.String())
	}
}

func TestPositionStartposThenMoves(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Execute("position startpos moves e2e4 e7e5"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if s.pos == nil {
		t.Fatalf("expected a position to be set")
	}
	if s.pos.SideToMove().String() != "w" {
		t.Errorf("expected white to move after two plies, got %v", s.pos.SideToMove())
	}
}

func TestPositionRejectsBadKeyword(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Execute("position banana"); err == nil {
		t.Errorf("expected an error for an unrecognized position argument")
	}
}

func TestGoDepthProducesBestMove(t *testing.T) {
	s, out := newTestSession()
	if err := s.Execute("position startpos"); err != nil {
		t.Fatalf("Execute position: %v", err)
	}
	if err := s.Execute("go depth 2"); err != nil {
		t.Fatalf("Execute go: %v", err)
	}
	if !strings.Contains(out.String(), "bestmove") {
		t.Errorf("expected a bestmove line, got %q", out.String())
	}
}

func TestSetOptionUnknownKeyIsError(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Execute("setoption name nonexistent.key value 1"); err == nil {
		t.Errorf("expected an error for an unknown option")
	}
}

func TestQuitReturnsErrQuit(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Execute("quit"); err != ErrQuit {
		t.Errorf("Execute(quit) = %v, want ErrQuit", err)
	}
}
