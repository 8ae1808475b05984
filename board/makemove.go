package board

import "fmt"

// Undo holds the state needed to reverse one Make.
type Undo struct {
	move          Move
	mover         Handle
	moverHasMoved bool
	// moverIndex is the list slot of a promoting pawn.
	moverIndex    int
	captured      Handle
	capturedIndex int
	capturedSq    Square
	rook          Handle
	rookHasMoved  bool
	promoted      Handle
	arenaLen      int
	prevLastMove  LastMove
	prevCastling  CastlingRights
	prevHash      uint64
}

// Move returns the move this record undoes.
func (u Undo) Move() Move { return u.move }

// Make plays a move produced by the generator for the side to move and returns
// the record that Unmake needs. Make does not check legality.
func (p *Position) Make(m Move) Undo {
	from, to := m.From(), m.To()
	us := p.sideToMove
	them := us.Other()

	h := p.squares[from]
	if h == NoHandle {
		panic(fmt.Sprintf("board: make %s from an empty square", m))
	}
	u := Undo{
		move:         m,
		mover:        h,
		captured:     NoHandle,
		capturedSq:   NoSquare,
		rook:         NoHandle,
		promoted:     NoHandle,
		arenaLen:     len(p.arena),
		prevLastMove: p.lastMove,
		prevCastling: p.castling,
		prevHash:     p.hash,
	}
	hash := p.hash

	// Capture; the en passant victim sits behind the destination.
	capSq := to
	if m.IsEnPassant() {
		capSq = to - Square(us.Forward())
	}
	if ch := p.squares[capSq]; ch != NoHandle {
		cp := &p.arena[ch]
		if cp.Kind == King {
			panic(fmt.Sprintf("board: %s captures the %s king", m, cp.Color))
		}
		if cp.Color == us {
			panic(fmt.Sprintf("board: %s captures its own %s", m, cp.Kind))
		}
		u.captured = ch
		u.capturedSq = capSq
		u.capturedIndex = p.removeFromList(them, ch)
		p.squares[capSq] = NoHandle
		hash ^= pieceKey(cp, capSq)
	}

	pc := &p.arena[h]
	p.squares[from] = NoHandle
	p.squares[to] = h
	hash ^= pieceKey(pc, from) ^ pieceKey(pc, to)
	pc.Square = to
	u.moverHasMoved = pc.HasMoved
	pc.HasMoved = true

	if m.IsCastle() {
		rf, rt := castleRook(from, to)
		rh := p.squares[rf]
		r := &p.arena[rh]
		u.rook = rh
		u.rookHasMoved = r.HasMoved
		p.squares[rf] = NoHandle
		p.squares[rt] = rh
		r.Square = rt
		r.HasMoved = true
		hash ^= pieceKey(r, rf) ^ pieceKey(r, rt)
	}

	lastMover := h
	if promo := m.Promotion(); promo != NoKind {
		// The pawn retires in the arena; a new piece takes its list slot and square.
		idx := indexOf(p.lists[us], h)
		nh := Handle(len(p.arena))
		p.arena = append(p.arena, Piece{Kind: promo, Color: us, Square: to, HasMoved: true, ID: int(nh)})
		p.lists[us][idx] = nh
		p.squares[to] = nh
		hash ^= zobristPiece[us][Pawn][to] ^ zobristPiece[us][promo][to]
		u.moverIndex = idx
		u.promoted = nh
		lastMover = nh
	}

	p.lastMove = LastMove{From: from, To: to, Mover: lastMover, DoublePush: m.Flags()&FlagDoublePush != 0}
	hash ^= epKey(u.prevLastMove) ^ epKey(p.lastMove)

	p.sideToMove = them
	hash ^= zobristSide

	if p.castling != 0 {
		cr := p.deriveCastling()
		hash ^= zobristCastle[p.castling] ^ zobristCastle[cr]
		p.castling = cr
	}
	p.hash = hash
	return u
}

// Unmake reverses Make exactly: squares, list order, flags, last move and hash.
func (p *Position) Unmake(u Undo) {
	m := u.move
	from, to := m.From(), m.To()
	p.sideToMove = p.sideToMove.Other()
	us := p.sideToMove

	if u.promoted != NoHandle {
		p.lists[us][u.moverIndex] = u.mover
		p.arena = p.arena[:u.arenaLen]
	}

	if u.rook != NoHandle {
		rf, rt := castleRook(from, to)
		r := &p.arena[u.rook]
		p.squares[rt] = NoHandle
		p.squares[rf] = u.rook
		r.Square = rf
		r.HasMoved = u.rookHasMoved
	}

	pc := &p.arena[u.mover]
	p.squares[to] = NoHandle
	p.squares[from] = u.mover
	pc.Square = from
	pc.HasMoved = u.moverHasMoved

	if u.captured != NoHandle {
		p.squares[u.capturedSq] = u.captured
		p.insertIntoList(us.Other(), u.capturedIndex, u.captured)
	}

	p.lastMove = u.prevLastMove
	p.castling = u.prevCastling
	p.hash = u.prevHash
}

func indexOf(list []Handle, h Handle) int {
	for i, x := range list {
		if x == h {
			return i
		}
	}
	panic(fmt.Sprintf("board: piece %d missing from its list", h))
}

func (p *Position) removeFromList(c Color, h Handle) int {
	l := p.lists[c]
	i := indexOf(l, h)
	copy(l[i:], l[i+1:])
	p.lists[c] = l[:len(l)-1]
	return i
}

func (p *Position) insertIntoList(c Color, i int, h Handle) {
	l := append(p.lists[c], NoHandle)
	copy(l[i+1:], l[i:])
	l[i] = h
	p.lists[c] = l
}
