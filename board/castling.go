package board

// castleSide describes one castling option relative to the king's home square.
type castleSide struct {
	right    func(Color) CastlingRights
	rookFrom int // offset from the king's home square
	kingTo   int
}

var castleSides = [2]castleSide{
	{right: kingside, rookFrom: 3, kingTo: 2},
	{right: queenside, rookFrom: -4, kingTo: -2},
}

// appendCastles adds the castling moves available to the king. The caller has
// already established that the king is not in check.
func (p *Position) appendCastles(dst []Move, king *Piece, danger uint64) []Move {
	c := king.Color
	home := homeSquare(c)
	if king.HasMoved || king.Square != home {
		return dst
	}
	for _, cs := range castleSides {
		if p.castling&cs.right(c) == 0 {
			continue
		}
		rookSq := home + Square(cs.rookFrom)
		if !p.unmovedRookOn(rookSq, c) {
			continue
		}
		if !p.allEmpty(between[home][rookSq]) {
			continue
		}
		kingTo := home + Square(cs.kingTo)
		path := between[home][kingTo] | bb(kingTo)
		if path&danger != 0 {
			continue
		}
		dst = append(dst, NewMove(home, kingTo, NoKind, FlagCastle))
	}
	return dst
}

// castleRook returns the rook squares for a castling king move.
func castleRook(kingFrom, kingTo Square) (from, to Square) {
	if kingTo > kingFrom {
		return kingFrom + 3, kingFrom + 1
	}
	return kingFrom - 4, kingFrom - 1
}

func (p *Position) allEmpty(set uint64) bool {
	for set != 0 {
		if p.squares[popLSB(&set)] != NoHandle {
			return false
		}
	}
	return true
}
