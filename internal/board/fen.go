package board

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionFromFEN parses a Forsyth-Edwards Notation string into a
// playable Position.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: fen has too few fields: %q", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}
	if fields[4] == "" {
		fields[4] = "0"
	}
	if fields[5] == "" {
		fields[5] = "1"
	}

	pos := NewPosition()
	if err := parsePiecePlacement(fields[0], pos); err != nil {
		return nil, err
	}
	if err := parseSideToMove(fields[1], pos); err != nil {
		return nil, err
	}
	if err := parseCastlingAbility(fields[2], pos); err != nil {
		return nil, err
	}
	if err := parseEnpassantSquare(fields[3], pos); err != nil {
		return nil, err
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: bad halfmove clock %q: %w", fields[4], err)
	}
	pos.curr().halfMoveClock = clock
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: bad fullmove number %q: %w", fields[5], err)
	}
	pos.fullMoveNumber = full
	return pos, nil
}

func parsePiecePlacement(s string, pos *Position) error {
	rank, file := 7, 0
	for _, c := range s {
		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("board: rank %d has %d files, want 8", rank+1, file)
			}
			rank--
			file = 0
		case '1' <= c && c <= '8':
			file += int(c - '0')
		default:
			fig, col, err := pieceFromLetter(byte(c))
			if err != nil {
				return err
			}
			if file >= 8 || rank < 0 {
				return fmt.Errorf("board: piece placement overflows the board")
			}
			pos.put(RankFile(rank, file), MakePiece(col, fig))
			file++
		}
	}
	if rank != 0 || file != 8 {
		return fmt.Errorf("board: piece placement %q doesn't cover 8 ranks", s)
	}
	return nil
}

func pieceFromLetter(c byte) (Figure, Color, error) {
	col := White
	lc := c
	if 'a' <= c && c <= 'z' {
		col = Black
		lc = c - ('a' - 'A')
	}
	var fig Figure
	switch lc {
	case 'P':
		fig = Pawn
	case 'N':
		fig = Knight
	case 'B':
		fig = Bishop
	case 'R':
		fig = Rook
	case 'Q':
		fig = Queen
	case 'K':
		fig = King
	default:
		return 0, 0, fmt.Errorf("board: unknown piece letter %q", string(c))
	}
	return fig, col, nil
}

func parseSideToMove(s string, pos *Position) error {
	switch s {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return fmt.Errorf("board: bad side to move %q", s)
	}
	return nil
}

func parseCastlingAbility(s string, pos *Position) error {
	var c Castle
	if s != "-" {
		for _, r := range s {
			switch r {
			case 'K':
				c |= WhiteOO
			case 'Q':
				c |= WhiteOOO
			case 'k':
				c |= BlackOO
			case 'q':
				c |= BlackOOO
			default:
				return fmt.Errorf("board: bad castling field %q", s)
			}
		}
	}
	pos.curr().castling = c
	return nil
}

func parseEnpassantSquare(s string, pos *Position) error {
	if s == "-" {
		pos.curr().enpassant = SquareA1
		return nil
	}
	sq, err := SquareFromString(s)
	if err != nil {
		return fmt.Errorf("board: bad en passant square %q: %w", s, err)
	}
	pos.curr().enpassant = sq
	return nil
}

// String renders pos in FEN.
func (pos *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(RankFile(rank, file))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(pos.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(pos.curr().castling.String())
	b.WriteByte(' ')
	if ep, ok := pos.EnpassantSquare(); ok {
		b.WriteString(ep.String())
	} else {
		b.WriteByte('-')
	}
	fmt.Fprintf(&b, " %d %d", pos.curr().halfMoveClock, pos.fullMoveNumber)
	return b.String()
}
