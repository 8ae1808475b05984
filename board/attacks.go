package board

// attacksOf returns every square the piece attacks, including squares held by its
// own side. Sliders stop on the first occupied square; the square in ignore is
// treated as empty so attacks can pass through it.
func (p *Position) attacksOf(pc *Piece, ignore Square) uint64 {
	switch pc.Kind {
	case Pawn:
		return pawnAttackMask[pc.Color][pc.Square]
	case Knight:
		return knightMask[pc.Square]
	case King:
		return kingMask[pc.Square]
	case Bishop:
		return p.slideAttacks(pc.Square, diagonalDirs, ignore)
	case Rook:
		return p.slideAttacks(pc.Square, orthogonalDirs, ignore)
	case Queen:
		return p.slideAttacks(pc.Square, allDirs, ignore)
	}
	return 0
}

func (p *Position) slideAttacks(from Square, dirs []int, ignore Square) uint64 {
	var att uint64
	for _, d := range dirs {
		for _, t := range Rays[from][d] {
			att |= bb(t)
			if t != ignore && p.squares[t] != NoHandle {
				break
			}
		}
	}
	return att
}

// Controlled returns every square attacked by color c, including squares occupied
// by c's own pieces.
func (p *Position) Controlled(c Color) SquareSet {
	var att uint64
	for _, h := range p.lists[c] {
		att |= p.attacksOf(&p.arena[h], NoSquare)
	}
	return SquareSet(att)
}

// Protected returns the squares of c's pieces that another piece of c attacks.
// An opposing king may not capture on these squares.
func (p *Position) Protected(c Color) SquareSet {
	return p.Controlled(c) & SquareSet(p.Occupancy(c))
}

// dangerMap returns the squares attacked by color by with the square kingSq treated
// as empty, plus the set of by's pieces that attack kingSq.
func (p *Position) dangerMap(by Color, kingSq Square) (danger, checkers uint64) {
	for _, h := range p.lists[by] {
		pc := &p.arena[h]
		att := p.attacksOf(pc, kingSq)
		danger |= att
		if att&bb(kingSq) != 0 {
			checkers |= bb(pc.Square)
		}
	}
	return danger, checkers
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// A pawn of color by attacks sq from the squares a pawn of the other color on sq would attack.
	m := pawnAttackMask[by.Other()][sq]
	for m != 0 {
		if p.isPiece(popLSB(&m), by, Pawn) {
			return true
		}
	}
	for _, t := range KnightTargets[sq] {
		if p.isPiece(t, by, Knight) {
			return true
		}
	}
	for _, t := range KingTargets[sq] {
		if p.isPiece(t, by, King) {
			return true
		}
	}
	for d := 0; d < 8; d++ {
		for _, t := range Rays[sq][d] {
			h := p.squares[t]
			if h == NoHandle {
				continue
			}
			pc := &p.arena[h]
			if pc.Color == by && (pc.Kind == Queen || (isOrthogonal(d) && pc.Kind == Rook) || (!isOrthogonal(d) && pc.Kind == Bishop)) {
				return true
			}
			break
		}
	}
	return false
}

func (p *Position) isPiece(sq Square, c Color, k PieceKind) bool {
	h := p.squares[sq]
	return h != NoHandle && p.arena[h].Color == c && p.arena[h].Kind == k
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Other())
}
