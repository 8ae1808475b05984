package engine

import (
	"math/bits"

	"negamax-chess/board"
)

var SeePieceValue = [7]int{
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   5000,
}

func bit(sq board.Square) uint64 { return 1 << uint(sq) }

// SEE returns the material balance, from the mover's side, of the exchange
// sequence that m starts on its target square when both sides always recapture
// with their least valuable piece and may stop whenever that is better.
func SEE(p *board.Position, m board.Move) int {
	var gain [32]int
	from, to := m.From(), m.To()
	mover, _ := p.PieceAt(from)
	occ := p.Occupancy(board.White) | p.Occupancy(board.Black)

	victim := board.NoKind
	if pc, ok := p.PieceAt(to); ok {
		victim = pc.Kind
	} else if m.IsEnPassant() {
		victim = board.Pawn
		occ &^= bit(to - board.Square(mover.Color.Forward()))
	}
	gain[0] = SeePieceValue[victim]

	// The piece standing on the target square after each capture.
	onTarget := mover.Kind
	if promo := m.Promotion(); promo != board.NoKind {
		gain[0] += SeePieceValue[promo] - SeePieceValue[board.Pawn]
		onTarget = promo
	}
	occ &^= bit(from)

	side := mover.Color.Other()
	depth := 0
	for depth < len(gain)-1 {
		sq, kind, ok := leastValuableAttacker(p, attackersTo(p, to, occ), side)
		if !ok {
			break
		}
		depth++
		gain[depth] = SeePieceValue[onTarget] - gain[depth-1]
		// Neither side can improve by continuing.
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}
		occ &^= bit(sq)
		onTarget = kind
		side = side.Other()
	}

	for ; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

// attackersTo returns the squares in occ whose pieces, of either color, attack
// sq. Pieces outside occ are treated as gone, which uncovers x-ray attackers.
func attackersTo(p *board.Position, sq board.Square, occ uint64) uint64 {
	var att uint64
	is := func(t board.Square, kinds ...board.PieceKind) bool {
		if occ&bit(t) == 0 {
			return false
		}
		pc, ok := p.PieceAt(t)
		if !ok {
			return false
		}
		for _, k := range kinds {
			if pc.Kind == k {
				return true
			}
		}
		return false
	}

	for _, t := range board.KnightTargets[sq] {
		if is(t, board.Knight) {
			att |= bit(t)
		}
	}
	for _, t := range board.KingTargets[sq] {
		if is(t, board.King) {
			att |= bit(t)
		}
	}
	att |= pawnAttackers(p, sq, occ)

	for dir := board.DirN; dir <= board.DirSW; dir++ {
		sliders := []board.PieceKind{board.Rook, board.Queen}
		if dir >= board.DirNE {
			sliders = []board.PieceKind{board.Bishop, board.Queen}
		}
		for _, t := range board.Rays[sq][dir] {
			if occ&bit(t) == 0 {
				continue
			}
			if is(t, sliders...) {
				att |= bit(t)
			}
			break
		}
	}
	return att
}

func pawnAttackers(p *board.Position, sq board.Square, occ uint64) uint64 {
	var att uint64
	try := func(from board.Square, c board.Color) {
		if !from.Valid() || occ&bit(from) == 0 {
			return
		}
		if pc, ok := p.PieceAt(from); ok && pc.Kind == board.Pawn && pc.Color == c {
			att |= bit(from)
		}
	}
	if sq.File() > 0 {
		try(sq-9, board.White)
		try(sq+7, board.Black)
	}
	if sq.File() < 7 {
		try(sq-7, board.White)
		try(sq+9, board.Black)
	}
	return att
}

func leastValuableAttacker(p *board.Position, att uint64, side board.Color) (board.Square, board.PieceKind, bool) {
	best, bestKind := board.NoSquare, board.NoKind
	for att != 0 {
		sq := board.Square(bits.TrailingZeros64(att))
		att &= att - 1
		pc, _ := p.PieceAt(sq)
		if pc.Color != side {
			continue
		}
		if bestKind == board.NoKind || SeePieceValue[pc.Kind] < SeePieceValue[bestKind] {
			best, bestKind = sq, pc.Kind
		}
	}
	return best, bestKind, bestKind != board.NoKind
}
