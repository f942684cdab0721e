// Package feature implements C3, the FeatureSet: a fixed catalogue of
// named, phase-weighted evaluation terms plus the visitor/accumulator
// contract Evaluator drives while walking a position.
//
// Grounded on the teacher's material.go Weights array and its named
// wFigure/wMobility/wPawn/wFigureFile/wFigureRank/wKingAttack/
// wBackwardPawn/wConnectedPawn/wDoublePawn/wIsolatedPawn/wPawnThreat/
// wKingShelter/wBishopPair/wRookOnOpenFile/wRookOnHalfOpenFile/
// wQueenKingTropism chunks, each kept as its own named feature group
// instead of one flat array, and enriched with the passed-pawn and
// mobility shapes described in original_source's eval/scorer.rs and
// eval/hce.rs.
package feature

import "github.com/corvidchess/corvid/internal/phase"

// ID names one evaluation feature. IDs are stable across a process
// run (not across builds) and index directly into a Set's weight
// table.
type ID int

const (
	// Material value of each figure, pawn through queen (king excluded,
	// its "value" is accounted for by king safety instead).
	MaterialPawn ID = iota
	MaterialKnight
	MaterialBishop
	MaterialRook
	MaterialQueen

	// BishopPair rewards holding both bishops.
	BishopPair

	// MobilityKnight..MobilityQueen: bonus per reachable square, one
	// feature per figure, excluding squares occupied by own pieces.
	MobilityKnight
	MobilityBishop
	MobilityRook
	MobilityQueen

	// PSTPawnFile/PSTPawnRank etc: file- and rank-indexed piece-square
	// components, collapsed from a full 64-square table into one
	// file-axis and one rank-axis feature per figure, the way the
	// teacher's wFigureFile/wFigureRank tables do, which is most of a
	// full PST's strength at a fraction of the tunable parameters.
	PSTPawnFile
	PSTPawnRank
	PSTKnightFile
	PSTKnightRank
	PSTBishopFile
	PSTBishopRank
	PSTRookFile
	PSTRookRank
	PSTQueenFile
	PSTQueenRank
	PSTKingFile
	PSTKingRank

	// Pawn structure.
	DoubledPawn
	IsolatedPawn
	BackwardPawn
	ConnectedPawn
	PassedPawn
	PassedPawnKingDistance

	// King safety.
	KingShelter
	KingAttackZone
	QueenKingTropism

	// RookOnOpenFile/RookOnHalfOpenFile reward rook activity relative to
	// pawn structure.
	RookOnOpenFile
	RookOnHalfOpenFile

	// PawnThreat is a small per-attacked-enemy-piece bonus for pawns
	// attacking something, encouraging pawn breaks.
	PawnThreat

	// Tempo is a small constant bonus for the side to move, offsetting
	// the fact every other feature is otherwise symmetric.
	Tempo

	numFeatures
)

// NumFeatures is the size of the feature catalogue.
const NumFeatures = int(numFeatures)

// Set holds one phase.Weight per feature ID: the tunable parameters an
// Evaluator interpolates by game phase and accumulates against.
type Set struct {
	weights [NumFeatures]phase.Weight
}

// Weight returns the weight registered for id.
func (s *Set) Weight(id ID) phase.Weight { return s.weights[id] }

// SetWeight installs w as the weight for id, used by the default
// table below and by any future tuner.
func (s *Set) SetWeight(id ID, w phase.Weight) { s.weights[id] = w }

// Accumulator is the visitor Evaluator drives while walking a
// position: for every feature instance found, Add is called once with
// the feature id and the signed count (positive for white, negative
// for black, matching the teacher's symmetric-feature convention).
type Accumulator interface {
	Add(id ID, count int32)
}

// Sum is the simplest Accumulator: it interpolates each contribution
// immediately and keeps a running total, which is all Evaluator needs
// once mobility/king-safety/pawn-structure scanning is done.
type Sum struct {
	Set   *Set
	Phase int32
	total int32
}

// Add implements Accumulator.
func (s *Sum) Add(id ID, count int32) {
	if count == 0 {
		return
	}
	s.total += s.Set.Weight(id).Interpolate(s.Phase) * count
}

// Total returns the accumulated, phase-interpolated score from White's
// point of view.
func (s *Sum) Total() int32 { return s.total }

// DefaultSet returns a reasonable, hand-set weight table: not texel-
// tuned, but in the right proportions (pawn=100 centipawns, a minor
// roughly 3 pawns, a rook 5, a queen 9), used until a tuner produces a
// trained table. Tuning itself is out of scope (spec.md Non-goals).
func DefaultSet() *Set {
	s := &Set{}
	s.SetWeight(MaterialPawn, phase.W(100, 120))
	s.SetWeight(MaterialKnight, phase.W(320, 300))
	s.SetWeight(MaterialBishop, phase.W(330, 320))
	s.SetWeight(MaterialRook, phase.W(500, 520))
	s.SetWeight(MaterialQueen, phase.W(900, 940))
	s.SetWeight(BishopPair, phase.W(25, 45))

	s.SetWeight(MobilityKnight, phase.W(4, 4))
	s.SetWeight(MobilityBishop, phase.W(3, 4))
	s.SetWeight(MobilityRook, phase.W(2, 3))
	s.SetWeight(MobilityQueen, phase.W(1, 2))

	s.SetWeight(PSTPawnFile, phase.W(0, 0))
	s.SetWeight(PSTPawnRank, phase.W(5, 10))
	s.SetWeight(PSTKnightFile, phase.W(4, 0))
	s.SetWeight(PSTKnightRank, phase.W(4, 0))
	s.SetWeight(PSTBishopFile, phase.W(2, 0))
	s.SetWeight(PSTBishopRank, phase.W(2, 0))
	s.SetWeight(PSTRookFile, phase.W(2, 0))
	s.SetWeight(PSTRookRank, phase.W(0, 2))
	s.SetWeight(PSTQueenFile, phase.W(1, 0))
	s.SetWeight(PSTQueenRank, phase.W(0, 1))
	s.SetWeight(PSTKingFile, phase.W(10, -2))
	s.SetWeight(PSTKingRank, phase.W(15, -4))

	s.SetWeight(DoubledPawn, phase.W(-10, -20))
	s.SetWeight(IsolatedPawn, phase.W(-12, -16))
	s.SetWeight(BackwardPawn, phase.W(-8, -8))
	s.SetWeight(ConnectedPawn, phase.W(6, 8))
	s.SetWeight(PassedPawn, phase.W(10, 60))
	s.SetWeight(PassedPawnKingDistance, phase.W(0, 8))

	s.SetWeight(KingShelter, phase.W(8, 0))
	s.SetWeight(KingAttackZone, phase.W(6, 0))
	s.SetWeight(QueenKingTropism, phase.W(2, 1))

	s.SetWeight(RookOnOpenFile, phase.W(20, 10))
	s.SetWeight(RookOnHalfOpenFile, phase.W(10, 5))

	s.SetWeight(PawnThreat, phase.W(12, 16))
	s.SetWeight(Tempo, phase.W(15, 10))
	return s
}
