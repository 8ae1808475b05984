package board

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN builds a position from a FEN string. The truncated form (placement and
// side to move) is the native format; the castling and en passant fields of a
// full FEN are honored when present and the move counters are ignored.
//
// Without a castling field, kings and rooks on their home squares are treated as
// unmoved. Pawns on their starting rank are unmoved.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, fenError("want placement and side to move, got %d fields", len(fields))
	}

	p := NewPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind := kindFromLetter(ch)
			if kind == NoKind {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("too many squares in rank %d", rank+1)
			}
			c := White
			if ch >= 'a' {
				c = Black
			}
			if kind == King && p.kings[c] != NoHandle {
				return nil, fenError("more than one %s king", c)
			}
			if kind == Pawn && (rank == 0 || rank == 7) {
				return nil, fenError("pawn on back rank")
			}
			if len(p.lists[c]) == 16 {
				return nil, fenError("more than 16 %s pieces", c)
			}
			p.place(kind, c, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d does not have 8 columns", rank+1)
		}
	}
	for _, c := range [2]Color{White, Black} {
		if p.kings[c] == NoHandle {
			return nil, fenError("missing %s king", c)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b'")
	}

	for i := range p.arena {
		pc := &p.arena[i]
		switch pc.Kind {
		case Pawn:
			start := 1
			if pc.Color == Black {
				start = 6
			}
			pc.HasMoved = pc.Square.Rank() != start
		case King:
			pc.HasMoved = pc.Square != homeSquare(pc.Color)
		case Rook:
			home := homeSquare(pc.Color)
			pc.HasMoved = pc.Square != home+3 && pc.Square != home-4
		default:
			pc.HasMoved = true
		}
	}

	if len(fields) > 2 {
		if err := p.applyCastlingField(fields[2]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 3 {
		if err := p.applyEnPassantField(fields[3]); err != nil {
			return nil, err
		}
	}

	p.castling = p.deriveCastling()
	p.hash = p.ComputeZobrist()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return p, nil
}

// applyCastlingField marks kings and rooks as moved when the field denies the
// matching right.
func (p *Position) applyCastlingField(field string) error {
	var cr CastlingRights
	if field != "-" {
		for _, ch := range field {
			switch ch {
			case 'K':
				cr |= CastlingWhiteK
			case 'Q':
				cr |= CastlingWhiteQ
			case 'k':
				cr |= CastlingBlackK
			case 'q':
				cr |= CastlingBlackQ
			default:
				return fenError("invalid castling rights character %q", ch)
			}
		}
	}
	for _, c := range [2]Color{White, Black} {
		home := homeSquare(c)
		for _, cs := range castleSides {
			if cr&cs.right(c) != 0 {
				continue
			}
			if h := p.squares[home+Square(cs.rookFrom)]; h != NoHandle && p.arena[h].Kind == Rook && p.arena[h].Color == c {
				p.arena[h].HasMoved = true
			}
		}
		if cr&(kingside(c)|queenside(c)) == 0 {
			p.arena[p.kings[c]].HasMoved = true
		}
	}
	return nil
}

// applyEnPassantField turns a target square into the double push that created it.
func (p *Position) applyEnPassantField(field string) error {
	if field == "-" {
		return nil
	}
	target, err := ParseSquare(field)
	if err != nil {
		return fenError("en passant square: %v", err)
	}
	mover := p.sideToMove.Other()
	wantRank := 2
	if mover == Black {
		wantRank = 5
	}
	if target.Rank() != wantRank {
		return fenError("en passant square %s on the wrong rank", target)
	}
	f := Square(mover.Forward())
	from, to := target-f, target+f
	h := p.squares[to]
	if h == NoHandle || p.arena[h].Kind != Pawn || p.arena[h].Color != mover || p.squares[target] != NoHandle || p.squares[from] != NoHandle {
		return fenError("en passant square %s without a matching pawn", target)
	}
	p.lastMove = LastMove{From: from, To: to, Mover: h, DoublePush: true}
	return nil
}

// FEN produces the truncated FEN: placement and side to move.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			h := p.squares[MakeSquare(file, rank)]
			if h == NoHandle {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.arena[h].Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// FullFEN produces a six-field FEN for tools that need castling and en passant
// fields. The move counters are always "0 1".
func (p *Position) FullFEN() string {
	var sb strings.Builder
	sb.WriteString(p.FEN())
	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		for i, ch := range "KQkq" {
			if p.castling&(1<<uint(i)) != 0 {
				sb.WriteRune(ch)
			}
		}
	}
	sb.WriteByte(' ')
	if p.lastMove.DoublePush {
		sb.WriteString(Square((int(p.lastMove.From) + int(p.lastMove.To)) / 2).String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")
	return sb.String()
}
