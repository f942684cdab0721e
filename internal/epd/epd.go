// Package epd parses the EPD test-position format of spec.md §6.4: a
// FEN-like piece placement followed by semicolon-terminated opcode/
// operand tags (bm, am, id, pv, ce, acd, acn, acs, c0..c9).
//
// The teacher's notation/epd.go parses the same tag grammar through a
// goyacc-generated lexer/parser pair (epd_ast.go, epd_parser.go,
// epd.y). This package keeps the teacher's EPD struct shape (fields
// for position, id, best/avoid moves, and free-form comments) but
// parses the tag stream with a hand-written scanner instead of a
// generated one, since EPD's grammar is regular enough not to need a
// yacc grammar of its own.
package epd

import (
	"fmt"
	"strconv"
	"strings"
)

// EPD is one parsed test position.
type EPD struct {
	FEN         string
	ID          string
	BestMoves   []string
	AvoidMoves  []string
	PV          []string
	CentipawnEval int
	HasCE       bool
	AnalysisDepth int
	AnalysisNodes int64
	AnalysisSecs  float64
	Comments    map[string]string // c0..c9
}

// Parse parses one EPD record. The first four whitespace-separated
// fields are the FEN piece-placement/side/castling/en-passant fields
// (EPD omits halfmove/fullmove counters, unlike a full FEN); everything
// after that is a sequence of `opcode operand[ operand...];` tags.
func Parse(line string) (*EPD, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("epd: %q: fewer than 4 board fields", line)
	}
	e := &EPD{
		FEN:      strings.Join(fields[:4], " "),
		Comments: make(map[string]string),
	}

	rest := strings.TrimSpace(strings.Join(fields[4:], " "))
	for _, tag := range splitTags(rest) {
		if err := e.applyTag(tag); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// splitTags splits a EPD's tag section on ';', respecting double-quoted
// operands so a ';' inside a comment string isn't mistaken for a tag
// terminator.
func splitTags(s string) []string {
	var tags []string
	var cur strings.Builder
	inQuote := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ';' && !inQuote:
			if t := strings.TrimSpace(cur.String()); t != "" {
				tags = append(tags, t)
			}
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if t := strings.TrimSpace(cur.String()); t != "" {
		tags = append(tags, t)
	}
	return tags
}

func (e *EPD) applyTag(tag string) error {
	opcode, operandStr, ok := strings.Cut(tag, " ")
	if !ok {
		opcode, operandStr = tag, ""
	}
	operands := splitOperands(operandStr)

	switch opcode {
	case "bm":
		e.BestMoves = operands
	case "am":
		e.AvoidMoves = operands
	case "id":
		e.ID = unquote(firstOr(operands, ""))
	case "pv":
		e.PV = operands
	case "ce":
		v, err := strconv.Atoi(firstOr(operands, "0"))
		if err != nil {
			return fmt.Errorf("epd: bad ce operand in %q: %w", tag, err)
		}
		e.CentipawnEval = v
		e.HasCE = true
	case "acd":
		v, err := strconv.Atoi(firstOr(operands, "0"))
		if err != nil {
			return fmt.Errorf("epd: bad acd operand in %q: %w", tag, err)
		}
		e.AnalysisDepth = v
	case "acn":
		v, err := strconv.ParseInt(firstOr(operands, "0"), 10, 64)
		if err != nil {
			return fmt.Errorf("epd: bad acn operand in %q: %w", tag, err)
		}
		e.AnalysisNodes = v
	case "acs":
		v, err := strconv.ParseFloat(firstOr(operands, "0"), 64)
		if err != nil {
			return fmt.Errorf("epd: bad acs operand in %q: %w", tag, err)
		}
		e.AnalysisSecs = v
	default:
		if len(opcode) == 2 && opcode[0] == 'c' && opcode[1] >= '0' && opcode[1] <= '9' {
			e.Comments[opcode] = unquote(firstOr(operands, ""))
			return nil
		}
		return fmt.Errorf("epd: unrecognized opcode %q", opcode)
	}
	return nil
}

func splitOperands(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Operands are space separated except inside a quoted string, which
	// is always a single operand (id/comment tags).
	if strings.HasPrefix(s, `"`) {
		return []string{s}
	}
	return strings.Fields(s)
}

func firstOr(operands []string, fallback string) string {
	if len(operands) == 0 {
		return fallback
	}
	return operands[0]
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// String renders e back to EPD text, inverse enough of Parse to round
// trip id/bm/am.
func (e *EPD) String() string {
	var b strings.Builder
	b.WriteString(e.FEN)
	if len(e.BestMoves) > 0 {
		fmt.Fprintf(&b, " bm %s;", strings.Join(e.BestMoves, " "))
	}
	if len(e.AvoidMoves) > 0 {
		fmt.Fprintf(&b, " am %s;", strings.Join(e.AvoidMoves, " "))
	}
	if e.ID != "" {
		fmt.Fprintf(&b, " id %q;", e.ID)
	}
	return b.String()
}
