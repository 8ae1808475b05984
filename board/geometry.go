package board

import (
	"errors"
	"math/bits"
)

// Square represents a board position (0-63). a1 is 0, h1 is 7, a8 is 56.
type Square int

const NoSquare Square = -1

// File returns the file index 0..7 (a..h).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank index 0..7 (1..8).
func (s Square) Rank() int { return int(s) >> 3 }

// Mirror swaps ranks: a1 <-> a8.
func (s Square) Mirror() Square { return s ^ 56 }

// Valid reports whether s lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// MakeSquare builds a square from file and rank indexes.
func MakeSquare(file, rank int) Square { return Square(rank*8 + file) }

// ParseSquare converts "a1".."h8" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return MakeSquare(int(file-'a'), int(rank-'1')), nil
}

// Direction offsets.
const (
	North     = 8
	South     = -8
	East      = 1
	West      = -1
	NorthEast = 9
	NorthWest = 7
	SouthEast = -7
	SouthWest = -9
)

// Ray direction indexes. The first four are orthogonal, the last four diagonal.
const (
	DirN = iota
	DirS
	DirE
	DirW
	DirNE
	DirNW
	DirSE
	DirSW
)

var dirOffsets = [8]int{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

var (
	orthogonalDirs = []int{DirN, DirS, DirE, DirW}
	diagonalDirs   = []int{DirNE, DirNW, DirSE, DirSW}
	allDirs        = []int{DirN, DirS, DirE, DirW, DirNE, DirNW, DirSE, DirSW}
)

func isOrthogonal(dir int) bool { return dir < DirNE }

// Bitboard masks for whole files and ranks.
var (
	Files [8]uint64
	Ranks [8]uint64
)

const (
	FileA uint64 = 0x0101010101010101
	FileH uint64 = FileA << 7
)

// Rays holds, per square and direction, the squares reachable up to the board edge
// ordered outwards from the origin.
var Rays [64][8][]Square

// rayMask is the bitboard form of Rays.
var rayMask [64][8]uint64

// KnightTargets and KingTargets hold edge-filtered jump targets per square.
var (
	KnightTargets [64][]Square
	KingTargets   [64][]Square
)

var (
	knightMask [64]uint64
	kingMask   [64]uint64
	// pawnAttackMask[c][s] is the set of squares a pawn of color c on s attacks.
	pawnAttackMask [2][64]uint64
)

// between[a][b] is the set of squares strictly between two aligned squares.
var between [64][64]uint64

// lineDir[a][b] is the ray direction leading from a to b, or -1.
var lineDir [64][64]int8

var knightOffsets = [8]int{17, 15, 10, 6, -6, -10, -15, -17}

func init() {
	initGeometry()
}

func initGeometry() {
	for i := 0; i < 8; i++ {
		Files[i] = FileA << uint(i)
		Ranks[i] = uint64(0xFF) << uint(8*i)
	}

	for sq := Square(0); sq < 64; sq++ {
		for d := 0; d < 8; d++ {
			var ray []Square
			var mask uint64
			for cur := sq; ; {
				next, ok := step(cur, d)
				if !ok {
					break
				}
				ray = append(ray, next)
				mask |= bb(next)
				cur = next
			}
			Rays[sq][d] = ray
			rayMask[sq][d] = mask
		}

		for _, off := range knightOffsets {
			t := int(sq) + off
			if t < 0 || t >= 64 {
				continue
			}
			if fd := Square(t).File() - sq.File(); fd > 2 || fd < -2 {
				continue
			}
			KnightTargets[sq] = append(KnightTargets[sq], Square(t))
			knightMask[sq] |= bb(Square(t))
		}

		for d := 0; d < 8; d++ {
			if t, ok := step(sq, d); ok {
				KingTargets[sq] = append(KingTargets[sq], t)
				kingMask[sq] |= bb(t)
			}
		}

		for _, c := range []Color{White, Black} {
			f := c.Forward()
			if t := int(sq) + f - 1; sq.File() > 0 && t >= 0 && t < 64 {
				pawnAttackMask[c][sq] |= bb(Square(t))
			}
			if t := int(sq) + f + 1; sq.File() < 7 && t >= 0 && t < 64 {
				pawnAttackMask[c][sq] |= bb(Square(t))
			}
		}
	}

	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			lineDir[a][b] = -1
		}
		for d := 0; d < 8; d++ {
			var acc uint64
			for _, t := range Rays[a][d] {
				between[a][t] = acc
				lineDir[a][t] = int8(d)
				acc |= bb(t)
			}
		}
	}
}

// step moves one square in direction d, refusing to wrap around the A or H file.
func step(sq Square, d int) (Square, bool) {
	off := dirOffsets[d]
	switch off {
	case East, NorthEast, SouthEast:
		if bb(sq)&FileH != 0 {
			return NoSquare, false
		}
	case West, NorthWest, SouthWest:
		if bb(sq)&FileA != 0 {
			return NoSquare, false
		}
	}
	next := Square(int(sq) + off)
	if !next.Valid() {
		return NoSquare, false
	}
	return next, true
}

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) Square {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return Square(idx)
}

// SquareSet is a 64-bit set of squares.
type SquareSet uint64

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool { return uint64(s)&bb(sq) != 0 }

// Count returns the number of squares in the set.
func (s SquareSet) Count() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Count())
	m := uint64(s)
	for m != 0 {
		out = append(out, popLSB(&m))
	}
	return out
}
