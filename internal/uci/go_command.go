package uci

import (
	"strconv"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/timemanager"
)

// parseGo builds a timemanager.Control from a "go" command's
// arguments, dispatching on which time-control fields are present the
// way spec.md §6.2 lists them: depth/nodes/movetime take priority over
// the clock fields when given explicitly.
func parseGo(args []string, pos *board.Position) *timemanager.Control {
	numPieces := int(pos.Occupied().Count())
	whiteToMove := pos.SideToMove() == board.White

	var (
		depth                        int
		nodes                        uint64
		moveTimeMS                   int
		wtimeMS, btimeMS             int
		wincMS, bincMS               int
		movesToGo                    int
		infinite                    bool
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			depth = atoiOr(args, i, 0)
		case "nodes":
			i++
			nodes = uint64(atoiOr(args, i, 0))
		case "movetime":
			i++
			moveTimeMS = atoiOr(args, i, 0)
		case "wtime":
			i++
			wtimeMS = atoiOr(args, i, 0)
		case "btime":
			i++
			btimeMS = atoiOr(args, i, 0)
		case "winc":
			i++
			wincMS = atoiOr(args, i, 0)
		case "binc":
			i++
			bincMS = atoiOr(args, i, 0)
		case "movestogo":
			i++
			movesToGo = atoiOr(args, i, 0)
		case "infinite":
			infinite = true
		}
	}

	switch {
	case infinite:
		tc := timemanager.New(numPieces, whiteToMove)
		tc.Mode = timemanager.ModeInfinite
		return tc
	case depth > 0:
		return timemanager.NewFixedDepth(depth)
	case moveTimeMS > 0:
		return timemanager.NewMoveTime(time.Duration(moveTimeMS) * time.Millisecond)
	case nodes > 0:
		tc := timemanager.New(numPieces, whiteToMove)
		tc.Mode = timemanager.ModeNodes
		tc.NodeLimit = nodes
		return tc
	default:
		tc := timemanager.New(numPieces, whiteToMove)
		tc.WTime = time.Duration(wtimeMS) * time.Millisecond
		tc.BTime = time.Duration(btimeMS) * time.Millisecond
		tc.WInc = time.Duration(wincMS) * time.Millisecond
		tc.BInc = time.Duration(bincMS) * time.Millisecond
		if movesToGo > 0 {
			tc.MovesToGo = movesToGo
		}
		return tc
	}
}

func atoiOr(args []string, i int, fallback int) int {
	if i < 0 || i >= len(args) {
		return fallback
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return v
}
