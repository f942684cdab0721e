package board

// MoveType distinguishes the handful of special move shapes from a
// plain piece move; capture is orthogonal and tracked separately.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	Castling
	Enpassant
)

// Move is a single ply. It carries enough information to be undone
// without consulting the position it was generated from (MoveOrderer
// and the search only ever see already-applied/undoable moves).
type Move struct {
	from, to   Square
	piece      Piece
	capture    Piece
	promotion  Piece
	moveType   MoveType
}

// NullMove is the zero value, used as a "no move yet" sentinel in the
// transposition table and move-ordering hash-move slot.
var NullMove = Move{}

// NewMove builds a normal (possibly capturing) move.
func NewMove(from, to Square, piece, capture Piece) Move {
	return Move{from: from, to: to, piece: piece, capture: capture, moveType: Normal}
}

// NewPromotion builds a pawn promotion, possibly capturing.
func NewPromotion(from, to Square, piece, capture, promotion Piece) Move {
	return Move{from: from, to: to, piece: piece, capture: capture, promotion: promotion, moveType: Promotion}
}

// NewEnpassant builds an en passant capture; capture is always the
// opposing pawn, on a different square than `to`.
func NewEnpassant(from, to Square, piece, capture Piece) Move {
	return Move{from: from, to: to, piece: piece, capture: capture, moveType: Enpassant}
}

// NewCastling builds a castling move; to is the king's destination.
func NewCastling(from, to Square, piece Piece) Move {
	return Move{from: from, to: to, piece: piece, moveType: Castling}
}

func (m Move) From() Square       { return m.from }
func (m Move) To() Square         { return m.to }
func (m Move) Piece() Piece       { return m.piece }
func (m Move) Capture() Piece     { return m.capture }
func (m Move) Promotion() Piece   { return m.promotion }
func (m Move) MoveType() MoveType { return m.moveType }

// Target returns the piece that ends up on the `to` square: the
// promoted piece for a promotion, m.Piece() otherwise. Used as the
// MVV-LVA "victim/attacker" value and as the piece DoMove places.
func (m Move) Target() Piece {
	if m.moveType == Promotion {
		return m.promotion
	}
	return m.piece
}

// CaptureSquare returns the square the captured piece actually sits
// on, which differs from `to` only for en passant.
func (m Move) CaptureSquare() Square {
	if m.moveType == Enpassant {
		if m.piece.Color() == White {
			return m.to - 8
		}
		return m.to + 8
	}
	return m.to
}

// IsQuiet reports whether m is neither a capture nor a promotion; used
// by MoveOrderer to route into the quiet/history-ordered stage.
func (m Move) IsQuiet() bool {
	return m.capture == NoPiece && m.moveType != Promotion
}

// IsViolent is the complement of IsQuiet: a capture or a promotion,
// the moves quiescence search considers.
func (m Move) IsViolent() bool { return !m.IsQuiet() }

func (m Move) String() string {
	s := m.from.String() + m.to.String()
	if m.moveType == Promotion {
		s += lower(figureSymbol[m.promotion.Figure()])
	}
	return s
}

// IsNull reports whether m is the zero-value NullMove.
func (m Move) IsNull() bool { return m == NullMove }

// PackMove encodes m into 32 bits, the form the transposition table
// stores a hash move as.
func PackMove(m Move) uint32 {
	return uint32(m.from) |
		uint32(m.to)<<6 |
		uint32(m.piece)<<12 |
		uint32(m.capture)<<16 |
		uint32(m.promotion)<<20 |
		uint32(m.moveType)<<24
}

// UnpackMove is the inverse of PackMove.
func UnpackMove(v uint32) Move {
	return Move{
		from:      Square(v & 0x3f),
		to:        Square((v >> 6) & 0x3f),
		piece:     Piece((v >> 12) & 0xf),
		capture:   Piece((v >> 16) & 0xf),
		promotion: Piece((v >> 20) & 0xf),
		moveType:  MoveType((v >> 24) & 0x3),
	}
}
