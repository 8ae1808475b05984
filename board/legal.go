package board

import "math/bits"

// pinInfo maps a pinned piece's square to the ray it may still move along
// (the squares between its king and the pinner, plus the pinner itself).
type pinInfo struct {
	pinned uint64
	ray    [64]uint64
}

// computePins finds the pieces of color us that shield their king from an
// opposing slider moving along the matching line.
func (p *Position) computePins(us Color, ksq Square) (pins pinInfo) {
	for d := 0; d < 8; d++ {
		shield := NoSquare
		for _, t := range Rays[ksq][d] {
			h := p.squares[t]
			if h == NoHandle {
				continue
			}
			pc := &p.arena[h]
			if shield == NoSquare {
				if pc.Color != us {
					break
				}
				shield = t
				continue
			}
			if pc.Color != us && (pc.Kind == Queen || (isOrthogonal(d) && pc.Kind == Rook) || (!isOrthogonal(d) && pc.Kind == Bishop)) {
				pins.pinned |= bb(shield)
				pins.ray[shield] = between[ksq][t] | bb(t)
			}
			break
		}
	}
	return pins
}

// LegalMoves appends every legal move of the side to move to dst, in piece-list
// order and per-kind direction order.
//
// Pinned pieces are confined to their pin ray and, when in check, non-king moves
// must capture the checker or interpose on the checking line. King steps are
// tested against the opponent's attacks computed with the king lifted off its
// square, so it cannot retreat along a slider's line.
func (p *Position) LegalMoves(dst []Move) []Move {
	us := p.sideToMove
	them := us.Other()
	kh := p.kings[us]
	ksq := p.arena[kh].Square

	danger, checkers := p.dangerMap(them, ksq)
	checks := bits.OnesCount64(checkers)

	if checks >= 2 {
		return p.appendKingMoves(dst, kh, danger, false)
	}

	checkMask := ^uint64(0)
	if checks == 1 {
		csq := Square(bits.TrailingZeros64(checkers))
		checkMask = bb(csq)
		if p.arena[p.squares[csq]].IsSlider() {
			checkMask |= between[ksq][csq]
		}
	}
	pins := p.computePins(us, ksq)

	for _, h := range p.lists[us] {
		if h == kh {
			dst = p.appendKingMoves(dst, kh, danger, checks == 0)
			continue
		}
		pc := &p.arena[h]
		if pc.Kind == Knight && pins.pinned&bb(pc.Square) != 0 {
			continue
		}
		start := len(dst)
		dst = moveGenerators[pc.Kind](p, pc, dst)

		allowed := checkMask
		if pins.pinned&bb(pc.Square) != 0 {
			allowed &= pins.ray[pc.Square]
		}
		n := start
		for _, m := range dst[start:] {
			if m.IsEnPassant() {
				if p.enPassantIsSafe(m) {
					dst[n] = m
					n++
				}
				continue
			}
			if allowed&bb(m.To()) != 0 {
				dst[n] = m
				n++
			}
		}
		dst = dst[:n]
	}
	return dst
}

// enPassantIsSafe plays the capture and checks the king. Removing two pawns from
// one rank can expose the king in ways the pin scan does not see.
func (p *Position) enPassantIsSafe(m Move) bool {
	us := p.sideToMove
	u := p.Make(m)
	safe := !p.IsSquareAttacked(p.KingSquare(us), us.Other())
	p.Unmake(u)
	return safe
}

func (p *Position) appendKingMoves(dst []Move, kh Handle, danger uint64, mayCastle bool) []Move {
	pc := &p.arena[kh]
	start := len(dst)
	dst = genKingSteps(p, pc, dst)
	n := start
	for _, m := range dst[start:] {
		if danger&bb(m.To()) == 0 {
			dst[n] = m
			n++
		}
	}
	dst = dst[:n]
	if mayCastle {
		dst = p.appendCastles(dst, pc, danger)
	}
	return dst
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var buf [256]Move
	return len(p.LegalMoves(buf[:0])) > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool { return p.InCheck() && !p.HasLegalMoves() }

// IsStalemate reports whether the side to move has no moves and is not in check.
func (p *Position) IsStalemate() bool { return !p.InCheck() && !p.HasLegalMoves() }

// MovesOf returns the legal moves of the piece on sq (empty if it is not the
// side to move's piece).
func (p *Position) MovesOf(sq Square) []Move {
	var out []Move
	for _, m := range p.LegalMoves(make([]Move, 0, 64)) {
		if m.From() == sq {
			out = append(out, m)
		}
	}
	return out
}
