package epd

import "testing"

func TestParseBestMoveAndID(t *testing.T) {
	line := `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - bm e2e4; id "start.1";`
	e, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(e.BestMoves) != 1 || e.BestMoves[0] != "e2e4" {
		t.Errorf("BestMoves = %v, want [e2e4]", e.BestMoves)
	}
	if e.ID != "start.1" {
		t.Errorf("ID = %q, want start.1", e.ID)
	}
}

func TestParseCentipawnAndAnalysisTags(t *testing.T) {
	line := `8/8/8/8/8/8/8/K6k w - - ce 120; acd 20; acn 1500000; acs 3.5;`
	e, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !e.HasCE || e.CentipawnEval != 120 {
		t.Errorf("CentipawnEval = %d (HasCE=%v), want 120", e.CentipawnEval, e.HasCE)
	}
	if e.AnalysisDepth != 20 || e.AnalysisNodes != 1500000 || e.AnalysisSecs != 3.5 {
		t.Errorf("unexpected analysis fields: %+v", e)
	}
}

func TestParseCommentWithSemicolonInsideQuotes(t *testing.T) {
	line := `8/8/8/8/8/8/8/K6k w - - c0 "a; b"; id "q1";`
	e, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e.Comments["c0"] != "a; b" {
		t.Errorf("c0 = %q, want %q", e.Comments["c0"], "a; b")
	}
	if e.ID != "q1" {
		t.Errorf("ID = %q, want q1", e.ID)
	}
}

func TestParseTooFewFieldsIsError(t *testing.T) {
	if _, err := Parse("only two fields"); err == nil {
		t.Errorf("expected an error for a malformed board field")
	}
}

func TestParseUnknownOpcodeIsError(t *testing.T) {
	line := `8/8/8/8/8/8/8/K6k w - - zz 1;`
	if _, err := Parse(line); err == nil {
		t.Errorf("expected an error for an unrecognized opcode")
	}
}
