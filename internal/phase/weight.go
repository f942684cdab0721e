// Package phase implements the phase-interpolated Weight pair (C2) and
// the Phaser that maps material to a 0..100 game-phase percentage (C6),
// per spec.md §3.6 and §4.2.
package phase

// Weight is an ordered (start, end) pair of evaluation numbers,
// interpolated between the opening (start) and the endgame (end) value
// by the current phase.
type Weight struct {
	Start, End int32
}

// W is a convenience constructor.
func W(start, end int32) Weight {
	return Weight{Start: start, End: end}
}

// Add returns the component-wise sum of w and o.
func (w Weight) Add(o Weight) Weight {
	return Weight{Start: w.Start + o.Start, End: w.End + o.End}
}

// AddN returns w + o*n, a scaled accumulation used when a feature
// occurs n times in a position.
func (w Weight) AddN(o Weight, n int32) Weight {
	return Weight{Start: w.Start + o.Start*n, End: w.End + o.End*n}
}

// Neg returns the negated weight, used to flip a contribution to the
// opposite side's point of view.
func (w Weight) Neg() Weight {
	return Weight{Start: -w.Start, End: -w.End}
}

// Scale returns w scaled by a fixed-point numerator/denominator pair:
// both components are multiplied by num and divided by den.
func (w Weight) Scale(num, den int32) Weight {
	return Weight{Start: w.Start * num / den, End: w.End * num / den}
}

// Interpolate blends w.Start and w.End at phase p, an integer in
// [0,100] where 0 is opening and 100 is a pure endgame. The formula is
// deterministic and order independent: (start*(100-p) + end*p) / 100.
func (w Weight) Interpolate(p int32) int32 {
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}
	return (w.Start*(100-p) + w.End*p) / 100
}

// MaxPhase is the phase value (fully-loaded opening material) used as
// the Phaser's normalization denominator.
const MaxPhase = 24

// phaseWeight gives each piece type's contribution to the phase count,
// mirroring the usual "24 at the start, 0 with only pawns left" scale:
// 4 knights + 4 bishops (1 each), 4 rooks (2 each), 2 queens (4 each).
var phaseWeight = [6]int32{0, 0, 1, 1, 2, 4} // none, pawn, knight, bishop, rook, queen

// Material is the minimal input a Phaser needs: counts of each
// non-king, non-pawn piece type currently on the board, indexed the
// same way as phaseWeight (pawn and king entries are ignored).
type Material struct {
	Knights, Bishops, Rooks, Queens int32
}

// Phaser maps material counts to a phase percentage in 0..100, where 0
// is the opening (all material present) and 100 is a pure pawn
// endgame. It is a pure function of material, so interpolation results
// are deterministic and independent of move order.
type Phaser struct{}

// Phase computes the 0..100 phase for the given material counts.
func (Phaser) Phase(m Material) int32 {
	raw := m.Knights*phaseWeight[2] + m.Bishops*phaseWeight[3] +
		m.Rooks*phaseWeight[4] + m.Queens*phaseWeight[5]
	if raw > MaxPhase {
		raw = MaxPhase
	}
	// Phase 0 == opening (raw == MaxPhase), phase 100 == endgame (raw == 0).
	return (MaxPhase - raw) * 100 / MaxPhase
}
