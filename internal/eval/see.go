// Static exchange evaluation, adapted from the teacher's see.go swap
// algorithm to this module's board.Position/board.Move API. SEE is
// used both by move ordering (to separate good from bad captures) and
// by quiescence search (to prune captures that clearly lose material).
package eval

import "github.com/corvidchess/corvid/internal/board"

// seeBonus gives each figure a fixed value for exchange evaluation,
// independent of (and coarser than) the tuned material feature
// weights, matching the teacher's see.go.
var seeBonus = [board.FigureArraySize]int32{0, 100, 357, 377, 712, 1253, 2000}

// SEE returns the static exchange evaluation of m in pos (not yet
// played): positive means the side to move gains material by playing
// m and letting every recapture happen in order of increasing attacker
// value.
func SEE(pos *board.Position, m board.Move) int32 {
	us := pos.SideToMove()
	sq := m.To()
	target := m.Target()

	occ := [board.ColorArraySize]board.Bitboard{
		board.White: pos.AllPieces(board.White),
		board.Black: pos.AllPieces(board.Black),
	}
	occ[us] &^= m.From().Bitboard()
	occ[us] |= m.To().Bitboard()
	them := us.Opposite()
	occ[them] &^= m.CaptureSquare().Bitboard()
	us = them

	all := occ[board.White] | occ[board.Black]

	score := seeBonus[m.Capture().Figure()]
	if m.MoveType() == board.Promotion {
		score += seeBonus[m.Target().Figure()] - seeBonus[board.Pawn]
	}
	gain := []int32{score}

	for {
		ours := occ[us]
		var att board.Bitboard
		var fig board.Figure

		bb := sq.Bitboard()
		back27 := bb &^ (board.BbRank1 | board.BbRank8)
		if att = board.Backward(us, board.West(back27)|board.East(back27)) & ours & pieces(pos, occ, us, board.Pawn); att != 0 {
			fig = board.Pawn
		} else if att = board.KnightAttacks(sq) & ours & pieces(pos, occ, us, board.Knight); att != 0 {
			fig = board.Knight
		} else if bAtt := board.BishopAttacks(sq, all) & ours & pieces(pos, occ, us, board.Bishop); bAtt != 0 {
			att, fig = bAtt, board.Bishop
		} else if rAtt := board.RookAttacks(sq, all) & ours & pieces(pos, occ, us, board.Rook); rAtt != 0 {
			att, fig = rAtt, board.Rook
		} else if qAtt := (board.RookAttacks(sq, all) | board.BishopAttacks(sq, all)) & ours & pieces(pos, occ, us, board.Queen); qAtt != 0 {
			att, fig = qAtt, board.Queen
		} else if kAtt := board.KingAttacks(sq) & ours & pieces(pos, occ, us, board.King); kAtt != 0 {
			att, fig = kAtt, board.King
		} else {
			break
		}

		from := att.LSB()
		attacker := board.MakePiece(us, fig)
		step := seeBonus[target.Figure()] - score
		score = step
		gain = append(gain, score)
		target = attacker

		occ[us] &^= from
		all &^= from
		us = us.Opposite()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

// pieces restricts pos's figure bitboard to the hypothetical occupancy
// occ[col] the swap-off loop is tracking, since captured attackers
// must disappear from later iterations.
func pieces(pos *board.Position, occ [board.ColorArraySize]board.Bitboard, col board.Color, fig board.Figure) board.Bitboard {
	return pos.Pieces(col, fig) & occ[col]
}

// SEESign reports whether SEE(m) is negative without paying for the
// full swap-off loop when the capturing piece is already worth less
// than what it captures (an MVV-LVA fast path the teacher's seeSign
// uses identically).
func SEESign(pos *board.Position, m board.Move) bool {
	if m.Piece().Figure() <= m.Capture().Figure() {
		return false
	}
	return SEE(pos, m) < 0
}
