package board

// genFunc appends the pseudo-legal moves of one piece to dst.
type genFunc func(p *Position, pc *Piece, dst []Move) []Move

// moveGenerators dispatches on piece kind. The king entry covers single steps
// only; castling is added by the legality pass, which knows the attacked squares.
var moveGenerators = [7]genFunc{
	Pawn:   genPawnMoves,
	Knight: genKnightMoves,
	Bishop: genBishopMoves,
	Rook:   genRookMoves,
	Queen:  genQueenMoves,
	King:   genKingSteps,
}

// target classifies a destination: empty, enemy (capture) or friendly (protected).
func (p *Position) target(sq Square, us Color) (occupied, enemy bool) {
	h := p.squares[sq]
	if h == NoHandle {
		return false, false
	}
	return true, p.arena[h].Color != us
}

func appendPawnMove(dst []Move, from, to Square, flags uint8) []Move {
	if r := to.Rank(); r == 0 || r == 7 {
		for _, k := range PromotionKinds {
			dst = append(dst, NewMove(from, to, k, flags))
		}
		return dst
	}
	return append(dst, NewMove(from, to, NoKind, flags))
}

func genPawnMoves(p *Position, pc *Piece, dst []Move) []Move {
	from := pc.Square
	f := pc.Color.Forward()

	// Pushes. A pawn never stands on a back rank, so from+f is always on the board.
	one := from + Square(f)
	if p.squares[one] == NoHandle {
		dst = appendPawnMove(dst, from, one, FlagNone)
		if !pc.HasMoved {
			two := one + Square(f)
			if two.Valid() && p.squares[two] == NoHandle {
				dst = append(dst, NewMove(from, two, NoKind, FlagDoublePush))
			}
		}
	}

	// Captures; the attack mask is already file-filtered.
	m := pawnAttackMask[pc.Color][from]
	for m != 0 {
		to := popLSB(&m)
		if occ, enemy := p.target(to, pc.Color); occ && enemy {
			dst = appendPawnMove(dst, from, to, FlagCapture)
		}
	}

	// En passant against a pawn that just advanced two squares beside us.
	lm := p.lastMove
	if lm.DoublePush && p.arena[lm.Mover].Color != pc.Color &&
		lm.To.Rank() == from.Rank() && absInt(lm.To.File()-from.File()) == 1 {
		behind := Square((int(lm.From) + int(lm.To)) / 2)
		dst = append(dst, NewMove(from, behind, NoKind, FlagCapture|FlagEnPassant))
	}
	return dst
}

func genKnightMoves(p *Position, pc *Piece, dst []Move) []Move {
	for _, to := range KnightTargets[pc.Square] {
		occ, enemy := p.target(to, pc.Color)
		switch {
		case !occ:
			dst = append(dst, NewMove(pc.Square, to, NoKind, FlagNone))
		case enemy:
			dst = append(dst, NewMove(pc.Square, to, NoKind, FlagCapture))
		}
	}
	return dst
}

func genSlides(p *Position, pc *Piece, dirs []int, dst []Move) []Move {
	for _, d := range dirs {
		for _, to := range Rays[pc.Square][d] {
			occ, enemy := p.target(to, pc.Color)
			if !occ {
				dst = append(dst, NewMove(pc.Square, to, NoKind, FlagNone))
				continue
			}
			if enemy {
				dst = append(dst, NewMove(pc.Square, to, NoKind, FlagCapture))
			}
			break
		}
	}
	return dst
}

func genBishopMoves(p *Position, pc *Piece, dst []Move) []Move {
	return genSlides(p, pc, diagonalDirs, dst)
}

func genRookMoves(p *Position, pc *Piece, dst []Move) []Move {
	return genSlides(p, pc, orthogonalDirs, dst)
}

func genQueenMoves(p *Position, pc *Piece, dst []Move) []Move {
	return genSlides(p, pc, allDirs, dst)
}

func genKingSteps(p *Position, pc *Piece, dst []Move) []Move {
	for _, to := range KingTargets[pc.Square] {
		occ, enemy := p.target(to, pc.Color)
		switch {
		case !occ:
			dst = append(dst, NewMove(pc.Square, to, NoKind, FlagNone))
		case enemy:
			dst = append(dst, NewMove(pc.Square, to, NoKind, FlagCapture))
		}
	}
	return dst
}

// PseudoMoves appends the pseudo-legal moves of the side to move (no castling,
// no king-safety filtering).
func (p *Position) PseudoMoves(dst []Move) []Move {
	for _, h := range p.lists[p.sideToMove] {
		pc := &p.arena[h]
		dst = moveGenerators[pc.Kind](p, pc, dst)
	}
	return dst
}

// PieceMoves appends the pseudo-legal moves of a single piece.
func (p *Position) PieceMoves(h Handle, dst []Move) []Move {
	pc := &p.arena[h]
	return moveGenerators[pc.Kind](p, pc, dst)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
