package board

import (
	"errors"
	"fmt"
)

// CastlingRights is a bitmask of the four castling options.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

func kingside(c Color) CastlingRights  { return CastlingWhiteK << (2 * c) }
func queenside(c Color) CastlingRights { return CastlingWhiteQ << (2 * c) }

// homeSquare is where the king of color c starts.
func homeSquare(c Color) Square {
	if c == White {
		return 4
	}
	return 60
}

// LastMove records the previous move, used for en passant eligibility.
type LastMove struct {
	From, To Square
	Mover    Handle
	// DoublePush is set when the mover was a pawn advancing two squares.
	DoublePush bool
}

var noLastMove = LastMove{From: NoSquare, To: NoSquare, Mover: NoHandle}

// Valid reports whether a move has been recorded.
func (lm LastMove) Valid() bool { return lm.Mover != NoHandle }

func (lm LastMove) doublePushFile() int {
	if !lm.DoublePush {
		return -1
	}
	return lm.To.File()
}

// Position is the mailbox board: a square array and per-color piece lists, both
// holding handles into an arena that owns every Piece.
type Position struct {
	squares    [64]Handle
	arena      []Piece
	lists      [2][]Handle
	kings      [2]Handle
	sideToMove Color
	lastMove   LastMove
	castling   CastlingRights
	hash       uint64
}

// NewPosition returns an empty board with White to move.
func NewPosition() *Position {
	p := &Position{
		arena:    make([]Piece, 0, 40),
		lastMove: noLastMove,
		kings:    [2]Handle{NoHandle, NoHandle},
	}
	for i := range p.squares {
		p.squares[i] = NoHandle
	}
	p.lists[White] = make([]Handle, 0, 16)
	p.lists[Black] = make([]Handle, 0, 16)
	return p
}

// StartPosition returns the standard initial layout.
func StartPosition() *Position {
	p, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return p
}

// place adds a new piece during setup. Has-moved flags are finalized by the caller.
func (p *Position) place(kind PieceKind, c Color, sq Square) Handle {
	h := Handle(len(p.arena))
	p.arena = append(p.arena, Piece{Kind: kind, Color: c, Square: sq, ID: int(h)})
	p.squares[sq] = h
	p.lists[c] = append(p.lists[c], h)
	if kind == King {
		p.kings[c] = h
	}
	return h
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Hash returns the incrementally maintained Zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights { return p.castling }

// LastMove returns the previous move record.
func (p *Position) LastMove() LastMove { return p.lastMove }

// HandleAt returns the handle on sq, or NoHandle.
func (p *Position) HandleAt(sq Square) Handle { return p.squares[sq] }

// Piece returns a copy of the piece behind a handle.
func (p *Position) Piece(h Handle) Piece { return p.arena[h] }

// PieceAt returns the piece on sq and whether the square is occupied.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	h := p.squares[sq]
	if h == NoHandle {
		return Piece{}, false
	}
	return p.arena[h], true
}

// Pieces returns the live pieces of a color in list order. The slice is shared;
// callers must not modify it.
func (p *Position) Pieces(c Color) []Handle { return p.lists[c] }

// KingSquare returns the square of the king of color c.
func (p *Position) KingSquare(c Color) Square { return p.arena[p.kings[c]].Square }

// Occupancy returns the bitboard of squares holding pieces of color c.
func (p *Position) Occupancy(c Color) uint64 {
	var occ uint64
	for _, h := range p.lists[c] {
		occ |= bb(p.arena[h].Square)
	}
	return occ
}

// deriveCastling computes rights from king and rook has-moved flags.
func (p *Position) deriveCastling() CastlingRights {
	var cr CastlingRights
	for _, c := range [2]Color{White, Black} {
		kh := p.kings[c]
		if kh == NoHandle {
			continue
		}
		home := homeSquare(c)
		if k := &p.arena[kh]; k.Square != home || k.HasMoved {
			continue
		}
		if p.unmovedRookOn(home+3, c) {
			cr |= kingside(c)
		}
		if p.unmovedRookOn(home-4, c) {
			cr |= queenside(c)
		}
	}
	return cr
}

func (p *Position) unmovedRookOn(sq Square, c Color) bool {
	h := p.squares[sq]
	if h == NoHandle {
		return false
	}
	r := &p.arena[h]
	return r.Kind == Rook && r.Color == c && !r.HasMoved
}

// Clone returns a deep copy sharing no mutable state with p.
func (p *Position) Clone() *Position {
	q := *p
	q.arena = append(make([]Piece, 0, cap(p.arena)), p.arena...)
	for c := range p.lists {
		q.lists[c] = append(make([]Handle, 0, 16), p.lists[c]...)
	}
	return &q
}

var errInvariant = errors.New("position invariant violated")

// Validate checks the structural invariants of the position: one king per side,
// square array and piece lists in agreement, no pawn on a back rank, the hash in
// sync, and the side that just moved not left in check.
func (p *Position) Validate() error {
	var seen [64]bool
	for _, c := range [2]Color{White, Black} {
		kings := 0
		if len(p.lists[c]) > 16 {
			return fmt.Errorf("%w: %s has %d pieces", errInvariant, c, len(p.lists[c]))
		}
		for _, h := range p.lists[c] {
			if h < 0 || int(h) >= len(p.arena) {
				return fmt.Errorf("%w: handle %d out of arena", errInvariant, h)
			}
			pc := &p.arena[h]
			if pc.Color != c {
				return fmt.Errorf("%w: %s list holds a %s piece on %s", errInvariant, c, pc.Color, pc.Square)
			}
			if !pc.Square.Valid() || p.squares[pc.Square] != h {
				return fmt.Errorf("%w: piece %d claims %s but the square disagrees", errInvariant, h, pc.Square)
			}
			if seen[pc.Square] {
				return fmt.Errorf("%w: %s listed twice", errInvariant, pc.Square)
			}
			seen[pc.Square] = true
			if pc.Kind == King {
				kings++
				if p.kings[c] != h {
					return fmt.Errorf("%w: %s king handle out of date", errInvariant, c)
				}
			}
			if pc.Kind == Pawn && (pc.Square.Rank() == 0 || pc.Square.Rank() == 7) {
				return fmt.Errorf("%w: pawn on back rank %s", errInvariant, pc.Square)
			}
		}
		if kings != 1 {
			return fmt.Errorf("%w: %s has %d kings", errInvariant, c, kings)
		}
	}
	for sq := Square(0); sq < 64; sq++ {
		if h := p.squares[sq]; h != NoHandle {
			if !seen[sq] {
				return fmt.Errorf("%w: %s holds a piece missing from the lists", errInvariant, sq)
			}
			if p.arena[h].Square != sq {
				return fmt.Errorf("%w: %s holds a piece that claims %s", errInvariant, sq, p.arena[h].Square)
			}
		}
	}
	if p.castling != p.deriveCastling() {
		return fmt.Errorf("%w: castling rights out of date", errInvariant)
	}
	if p.hash != p.ComputeZobrist() {
		return fmt.Errorf("%w: zobrist hash out of date", errInvariant)
	}
	them := p.sideToMove.Other()
	if p.IsSquareAttacked(p.KingSquare(them), p.sideToMove) {
		return fmt.Errorf("%w: %s king can be captured", errInvariant, them)
	}
	return nil
}
