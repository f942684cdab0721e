// Package uci implements the protocol front end of spec.md §6.2: it
// parses one UCI command per line and calls into internal/driver,
// formatting responses (id, uciok, readyok, info, bestmove) back onto
// the given writer. The "uci" command announces no "option" lines.
//
// Adapted from the teacher's uci.go Execute dispatch (cmd[0] switch,
// one method per command) and its setoption handler, generalized from
// a single random-mover position to a Driver-backed search and from a
// fixed Options struct to internal/config's registry.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/driver"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/timemanager"
)

// ErrQuit is returned by Execute for the "quit" command, the signal a
// caller's read loop should stop on.
var ErrQuit = fmt.Errorf("quit")

// Session holds the mutable state one UCI connection accumulates:
// the current position and the time control of a search in flight.
type Session struct {
	out    *bufio.Writer
	log    *log.Logger
	driver *driver.Driver

	mu  sync.Mutex
	pos *board.Position
	tc  *timemanager.Control
}

// NewSession wires a Driver to w (the engine's stdout) and logger (the
// engine's stderr), matching the teacher's split of "info"/"bestmove"
// on stdout versus diagnostics on stderr.
func NewSession(d *driver.Driver, w io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{out: bufio.NewWriter(w), log: logger, driver: d}
}

// Execute parses and runs one line of UCI input.
func (s *Session) Execute(line string) error {
	cmd := strings.Fields(line)
	if len(cmd) == 0 {
		return nil
	}
	fun, args := cmd[0], cmd[1:]

	var err error
	switch fun {
	case "uci":
		s.uci()
	case "isready":
		s.isready()
	case "ucinewgame":
		s.ucinewgame()
	case "position":
		err = s.position(args)
	case "go":
		s.goCmd(args)
	case "stop":
		s.stop()
	case "ponderhit":
		s.ponderhit()
	case "setoption":
		err = s.setoption(args)
	case "quit":
		err = ErrQuit
	default:
		s.log.Println("unhandled input:", line)
	}
	return err
}

func (s *Session) println(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
	s.out.Flush()
}

func (s *Session) uci() {
	s.println("id name corvid")
	s.println("id author the corvid contributors")
	s.mu.Lock()
	d := s.driver
	s.mu.Unlock()
	_ = d
	s.println("uciok")
}

func (s *Session) isready() {
	s.println("readyok")
}

func (s *Session) ucinewgame() {
	s.mu.Lock()
	s.pos = nil
	s.mu.Unlock()
	s.driver.NewGame()
}

func (s *Session) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uci: position: missing argument")
	}

	var pos *board.Position
	var err error
	idx := 1
	switch args[0] {
	case "startpos":
		pos, err = board.PositionFromFEN(board.FENStartPos)
	case "fen":
		if len(args) < 7 {
			return fmt.Errorf("uci: position fen: too few fields")
		}
		fen := strings.Join(args[1:7], " ")
		pos, err = board.PositionFromFEN(fen)
		idx = 7
	default:
		return fmt.Errorf("uci: position: expected 'startpos' or 'fen', got %q", args[0])
	}
	if err != nil {
		return err
	}

	if idx < len(args) {
		if args[idx] != "moves" {
			return fmt.Errorf("uci: position: expected 'moves', got %q", args[idx])
		}
		for _, uciMove := range args[idx+1:] {
			m, err := pos.ParseUCIMove(uciMove)
			if err != nil {
				return fmt.Errorf("uci: position: %w", err)
			}
			pos.DoMove(m)
		}
	}

	s.mu.Lock()
	s.pos = pos
	s.mu.Unlock()
	return nil
}

func (s *Session) goCmd(args []string) {
	s.mu.Lock()
	pos := s.pos
	s.mu.Unlock()
	if pos == nil {
		s.log.Println("uci: go with no position set")
		return
	}

	tc := parseGo(args, pos)
	ponder := hasFlag(args, "ponder")

	s.mu.Lock()
	s.tc = tc
	s.mu.Unlock()

	tc.Start(ponder)
	result := s.driver.Search(pos, tc, s.reportInfo)

	if result.PonderMove != "" {
		s.println("bestmove %s ponder %s", result.BestMove, result.PonderMove)
	} else {
		s.println("bestmove %s", result.BestMove)
	}
}

func (s *Session) reportInfo(info search.Info) {
	var pv strings.Builder
	for i, m := range info.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(m.String())
	}
	s.println("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d score %s pv %s",
		info.Depth, info.SelDepth, info.Nodes, info.NPS, info.Time.Milliseconds(), info.HashFull, info.Score.UCI(), pv.String())
}

func (s *Session) stop() {
	s.mu.Lock()
	tc := s.tc
	s.mu.Unlock()
	s.driver.Stop(tc)
}

func (s *Session) ponderhit() {
	s.mu.Lock()
	tc := s.tc
	s.mu.Unlock()
	if tc != nil {
		tc.PonderHit()
	}
}

func (s *Session) setoption(args []string) error {
	// "setoption name <name...> value <value>"
	nameIdx, valueIdx := -1, -1
	for i, a := range args {
		switch a {
		case "name":
			nameIdx = i
		case "value":
			valueIdx = i
		}
	}
	if nameIdx < 0 || valueIdx < 0 || valueIdx <= nameIdx {
		return fmt.Errorf("uci: setoption: malformed arguments %v", args)
	}
	name := strings.Join(args[nameIdx+1:valueIdx], " ")
	valueStr := strings.Join(args[valueIdx+1:], " ")
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fmt.Errorf("uci: setoption: non-numeric value %q: %w", valueStr, err)
	}
	return s.driver.SetOption(name, value)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
