package board

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [2][7][64]uint64 // [color][kind][square]
var zobristCastle [16]uint64      // one key per castling rights state
var zobristEnPassant [8]uint64    // en passant file
var zobristSide uint64            // Black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps hashes reproducible across runs and tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for k := Pawn; k <= King; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func pieceKey(pc *Piece, sq Square) uint64 { return zobristPiece[pc.Color][pc.Kind][sq] }

// epKey is the en passant contribution of a last-move record.
func epKey(lm LastMove) uint64 {
	if f := lm.doublePushFile(); f >= 0 {
		return zobristEnPassant[f]
	}
	return 0
}

// ComputeZobrist calculates the hash of the current position from scratch.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if h := p.squares[sq]; h != NoHandle {
			key ^= pieceKey(&p.arena[h], sq)
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling]
	key ^= epKey(p.lastMove)
	return key
}
