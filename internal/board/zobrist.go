package board

import "math/rand"

var (
	zobristPiece     [16][64]uint64
	zobristEnpassant [64]uint64
	zobristCastle    [16]uint64
	zobristColor     [ColorArraySize]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))
	for col := Color(0); col < ColorArraySize; col++ {
		for fig := FigureMinValue; fig <= FigureMaxValue; fig++ {
			p := MakePiece(col, fig)
			for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
				zobristPiece[p][sq] = rand64(r)
			}
		}
	}
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		zobristEnpassant[sq] = rand64(r)
	}
	for c := Castle(0); c < 16; c++ {
		zobristCastle[c] = rand64(r)
	}
	for col := Color(0); col < ColorArraySize; col++ {
		zobristColor[col] = rand64(r)
	}
}
