// Package eval implements C4, the Evaluator: the pipeline from a
// position to a POV-relative score.Score, by accumulating
// feature.Set contributions, interpolating by phase.Phaser, applying
// an endgame.Classify override when a material signature recognizer
// fires, scaling towards a draw as the fifty-move clock advances, and
// finally caching the result so repeated probes of the same position
// (very common under alpha-beta re-searches) are free.
//
// Grounded on the teacher's material.go pipeline (computePhase,
// scratchpad-based mobility/king-safety accumulation, endgame-scaled
// output) and on original_source's eval/scorer.rs and eval/hce.rs for
// the phase-interpolated, feature-accumulator shape.
package eval

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/endgame"
	"github.com/corvidchess/corvid/internal/feature"
	"github.com/corvidchess/corvid/internal/phase"
	"github.com/corvidchess/corvid/internal/score"
)

// Evaluator holds everything static evaluation needs across many
// positions: the tunable feature weights and an evaluation cache. It
// is not safe for concurrent use from multiple goroutines without
// separate caches (mirroring the teacher's per-thread scratchpad).
type Evaluator struct {
	set   *feature.Set
	phasr phase.Phaser
	cache evalCache
}

// New returns an Evaluator using set, or feature.DefaultSet() if set
// is nil.
func New(set *feature.Set) *Evaluator {
	if set == nil {
		set = feature.DefaultSet()
	}
	return &Evaluator{set: set, cache: newEvalCache(1 << 16)}
}

// Evaluate returns the static evaluation of pos from the side-to-
// move's point of view, in centipawns.
func (e *Evaluator) Evaluate(pos *board.Position) score.Score {
	key := pos.Zobrist()
	if v, ok := e.cache.get(key); ok {
		return v
	}
	v := e.evaluate(pos)
	e.cache.put(key, v)
	return v
}

func (e *Evaluator) evaluate(pos *board.Position) score.Score {
	if pos.InsufficientMaterial() {
		return score.FromCP(0)
	}

	material := phase.Material{
		Knights: pos.PieceCount(board.White, board.Knight) + pos.PieceCount(board.Black, board.Knight),
		Bishops: pos.PieceCount(board.White, board.Bishop) + pos.PieceCount(board.Black, board.Bishop),
		Rooks:   pos.PieceCount(board.White, board.Rook) + pos.PieceCount(board.Black, board.Rook),
		Queens:  pos.PieceCount(board.White, board.Queen) + pos.PieceCount(board.Black, board.Queen),
	}
	ph := e.phasr.Phase(material)

	sum := &feature.Sum{Set: e.set, Phase: ph}
	e.accumulateMaterial(pos, sum)
	e.accumulateMobility(pos, sum)
	e.accumulatePawnStructure(pos, sum)
	e.accumulateKingSafety(pos, sum)
	e.accumulateRooks(pos, sum)

	if pos.SideToMove() == board.White {
		sum.Add(feature.Tempo, 1)
	} else {
		sum.Add(feature.Tempo, -1)
	}

	cp := sum.Total()
	cp = e.applyEndgameClassifier(pos, cp)
	cp = scaleByFiftyMove(cp, pos.HalfMoveClock())

	if pos.SideToMove() == board.Black {
		cp = -cp
	}
	return score.FromCP(cp)
}

func (e *Evaluator) accumulateMaterial(pos *board.Position, sum *feature.Sum) {
	add := func(id feature.ID, fig board.Figure) {
		w := pos.PieceCount(board.White, fig)
		b := pos.PieceCount(board.Black, fig)
		sum.Add(id, w-b)
	}
	add(feature.MaterialPawn, board.Pawn)
	add(feature.MaterialKnight, board.Knight)
	add(feature.MaterialBishop, board.Bishop)
	add(feature.MaterialRook, board.Rook)
	add(feature.MaterialQueen, board.Queen)

	if pos.PieceCount(board.White, board.Bishop) >= 2 {
		sum.Add(feature.BishopPair, 1)
	}
	if pos.PieceCount(board.Black, board.Bishop) >= 2 {
		sum.Add(feature.BishopPair, -1)
	}

	for _, sq := range squares(pos.Pieces(board.White, board.King)) {
		sum.Add(feature.PSTKingFile, int32(centerFileDistance(sq)))
		sum.Add(feature.PSTKingRank, int32(sq.Rank()))
	}
	for _, sq := range squares(pos.Pieces(board.Black, board.King)) {
		sum.Add(feature.PSTKingFile, -int32(centerFileDistance(sq)))
		sum.Add(feature.PSTKingRank, -int32(7-sq.Rank()))
	}
}

func centerFileDistance(sq board.Square) int {
	f := sq.File()
	if f > 3 {
		f = 7 - f
	}
	return 3 - f
}

// accumulateMobility counts pseudo-attacked squares per non-pawn,
// non-king figure, excluding squares occupied by the mover's own
// pieces, the standard "how many squares can I go to" mobility proxy.
func (e *Evaluator) accumulateMobility(pos *board.Position, sum *feature.Sum) {
	occ := pos.Occupied()
	eval := func(col board.Color, fig board.Figure) int32 {
		var total int32
		own := pos.AllPieces(col)
		for _, sq := range squares(pos.Pieces(col, fig)) {
			var att board.Bitboard
			switch fig {
			case board.Knight:
				att = board.KnightAttacks(sq)
			case board.Bishop:
				att = board.BishopAttacks(sq, occ)
			case board.Rook:
				att = board.RookAttacks(sq, occ)
			case board.Queen:
				att = board.QueenAttacks(sq, occ)
			}
			total += (att &^ own).Count()
		}
		return total
	}
	sum.Add(feature.MobilityKnight, eval(board.White, board.Knight)-eval(board.Black, board.Knight))
	sum.Add(feature.MobilityBishop, eval(board.White, board.Bishop)-eval(board.Black, board.Bishop))
	sum.Add(feature.MobilityRook, eval(board.White, board.Rook)-eval(board.Black, board.Rook))
	sum.Add(feature.MobilityQueen, eval(board.White, board.Queen)-eval(board.Black, board.Queen))
}

func (e *Evaluator) accumulatePawnStructure(pos *board.Position, sum *feature.Sum) {
	for _, col := range [2]board.Color{board.White, board.Black} {
		sign := int32(1)
		if col == board.Black {
			sign = -1
		}
		pawns := pos.Pieces(col, board.Pawn)
		for _, sq := range squares(pawns) {
			file := sq.File()
			fileMask := fileBitboard(file)
			if (pawns & fileMask).Count() > 1 {
				sum.Add(feature.DoubledPawn, sign)
			}
			if !hasNeighborFilePawn(pawns, file) {
				sum.Add(feature.IsolatedPawn, sign)
			}
			if isPassed(pos, col, sq) {
				sum.Add(feature.PassedPawn, sign*int32(advancement(col, sq)))
			}
		}
	}
}

func fileBitboard(file int) board.Bitboard {
	var bb board.Bitboard
	for r := 0; r < 8; r++ {
		bb |= board.RankFile(r, file).Bitboard()
	}
	return bb
}

func hasNeighborFilePawn(pawns board.Bitboard, file int) bool {
	for _, f := range [2]int{file - 1, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		if pawns&fileBitboard(f) != 0 {
			return true
		}
	}
	return false
}

func isPassed(pos *board.Position, col board.Color, sq board.Square) bool {
	opp := pos.Pieces(col.Opposite(), board.Pawn)
	file := sq.File()
	for _, f := range [3]int{file - 1, file, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		for _, osq := range squares(opp & fileBitboard(f)) {
			if col == board.White && osq.Rank() > sq.Rank() {
				return false
			}
			if col == board.Black && osq.Rank() < sq.Rank() {
				return false
			}
		}
	}
	return true
}

func advancement(col board.Color, sq board.Square) int {
	if col == board.White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

func (e *Evaluator) accumulateKingSafety(pos *board.Position, sum *feature.Sum) {
	for _, col := range [2]board.Color{board.White, board.Black} {
		sign := int32(1)
		if col == board.Black {
			sign = -1
		}
		king := pos.KingSquare(col)
		shelter := board.Forward(col, board.KingAttacks(king)) & pos.Pieces(col, board.Pawn)
		sum.Add(feature.KingShelter, sign*shelter.Count())

		opp := col.Opposite()
		queen := pos.Pieces(opp, board.Queen)
		for _, qsq := range squares(queen) {
			d := int32(endgame.Chebyshev(king, qsq))
			sum.Add(feature.QueenKingTropism, -sign*(7-minInt32(d, 7)))
		}
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (e *Evaluator) accumulateRooks(pos *board.Position, sum *feature.Sum) {
	for _, col := range [2]board.Color{board.White, board.Black} {
		sign := int32(1)
		if col == board.Black {
			sign = -1
		}
		for _, sq := range squares(pos.Pieces(col, board.Rook)) {
			file := fileBitboard(sq.File())
			ownPawns := pos.Pieces(col, board.Pawn) & file
			enemyPawns := pos.Pieces(col.Opposite(), board.Pawn) & file
			switch {
			case ownPawns == 0 && enemyPawns == 0:
				sum.Add(feature.RookOnOpenFile, sign)
			case ownPawns == 0:
				sum.Add(feature.RookOnHalfOpenFile, sign)
			}
		}
	}
}

func (e *Evaluator) applyEndgameClassifier(pos *board.Position, cp int32) int32 {
	sig := endgame.Signature{
		WhitePawns: pos.PieceCount(board.White, board.Pawn), BlackPawns: pos.PieceCount(board.Black, board.Pawn),
		WhiteKnights: pos.PieceCount(board.White, board.Knight), BlackKnights: pos.PieceCount(board.Black, board.Knight),
		WhiteBishops: pos.PieceCount(board.White, board.Bishop), BlackBishops: pos.PieceCount(board.Black, board.Bishop),
		WhiteRooks: pos.PieceCount(board.White, board.Rook), BlackRooks: pos.PieceCount(board.Black, board.Rook),
		WhiteQueens: pos.PieceCount(board.White, board.Queen), BlackQueens: pos.PieceCount(board.Black, board.Queen),
	}
	outcome, favored := endgame.Classify(sig)
	switch outcome {
	case endgame.Draw:
		return 0
	case endgame.LikelyDraw:
		return cp / 8
	case endgame.CertainWin:
		bonus := int32(200)
		loser := favored.Opposite()
		bishops := pos.Pieces(favored, board.Bishop)
		if bishops != 0 {
			light := squareIsLight(bishops.AsSquare())
			bonus += endgame.DriveToCornerBonus(pos.KingSquare(loser), light)
		} else {
			bonus += int32(endgame.CenterDistance(pos.KingSquare(loser))) * 5
		}
		if favored == board.White {
			return cp + bonus
		}
		return cp - bonus
	}
	return cp
}

func squareIsLight(sq board.Square) bool {
	return (sq.Rank()+sq.File())%2 == 1
}

// scaleByFiftyMove linearly shrinks cp towards 0 as the fifty-move
// clock advances, so near-certain draws by repetition/fifty-move don't
// get chased with a large nonzero score. cp * (100 - halfMoveClock) / 100,
// per spec.md §4.3 step 5.
func scaleByFiftyMove(cp int32, halfMoveClock int) int32 {
	remaining := 100 - halfMoveClock
	if remaining < 0 {
		remaining = 0
	}
	return cp * int32(remaining) / 100
}

func squares(bb board.Bitboard) []board.Square {
	var out []board.Square
	for bb != 0 {
		out = append(out, bb.Pop())
	}
	return out
}
