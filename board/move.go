package board

import (
	"errors"
	"fmt"
	"strings"
)

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePromoteShift = 12 // 3 bits
	moveFlagShift    = 16 // 4 bits
)

// Move flags
const (
	FlagNone       uint8 = 0
	FlagCapture    uint8 = 1
	FlagEnPassant  uint8 = 2
	FlagCastle     uint8 = 4
	FlagDoublePush uint8 = 8
)

// NoMove is the zero move (a1a1), which is never legal.
const NoMove Move = 0

var (
	ErrInvalidMove = errors.New("invalid move text")
	ErrIllegalMove = errors.New("illegal move")
)

// IllegalMoveError reports a well-formed move the position does not allow.
type IllegalMoveError struct {
	Move   string
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool { return target == ErrIllegalMove }

// NewMove constructs a Move value from components.
func NewMove(from, to Square, promotion PieceKind, flags uint8) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(promotion&0x7)<<movePromoteShift |
		uint32(flags&0xF)<<moveFlagShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Promotion returns the promotion kind (or NoKind).
func (m Move) Promotion() PieceKind { return PieceKind((uint32(m) >> movePromoteShift) & 0x7) }

// Flags returns the special move flags.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & 0xF) }

func (m Move) IsCapture() bool   { return m.Flags()&FlagCapture != 0 }
func (m Move) IsEnPassant() bool { return m.Flags()&FlagEnPassant != 0 }
func (m Move) IsCastle() bool    { return m.Flags()&FlagCastle != 0 }

// String renders long algebraic notation: "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoKind {
		s += string(p.Letter())
	}
	return s
}

// ParsedMove is the squares and promotion named by a long-algebraic string,
// before it has been matched against a position.
type ParsedMove struct {
	From, To  Square
	Promotion PieceKind
}

// ParseMove converts "e2e4" or "e7e8q" into its components.
func ParseMove(text string) (ParsedMove, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if len(text) < 4 || len(text) > 5 {
		return ParsedMove{}, fmt.Errorf("%w: %q", ErrInvalidMove, text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return ParsedMove{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return ParsedMove{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	pm := ParsedMove{From: from, To: to}
	if len(text) == 5 {
		switch k := kindFromLetter(text[4]); k {
		case Queen, Rook, Bishop, Knight:
			pm.Promotion = k
		default:
			return ParsedMove{}, fmt.Errorf("%w: %q: bad promotion piece", ErrInvalidMove, text)
		}
	}
	return pm, nil
}

// FindMove matches move text against the legal moves of the position.
func (p *Position) FindMove(text string) (Move, error) {
	pm, err := ParseMove(text)
	if err != nil {
		return NoMove, err
	}
	h := p.squares[pm.From]
	if h == NoHandle {
		return NoMove, &IllegalMoveError{Move: text, Reason: "no piece on " + pm.From.String()}
	}
	if p.arena[h].Color != p.sideToMove {
		return NoMove, &IllegalMoveError{Move: text, Reason: "piece on " + pm.From.String() + " belongs to " + p.arena[h].Color.String()}
	}
	for _, m := range p.LegalMoves(make([]Move, 0, 64)) {
		if m.From() == pm.From && m.To() == pm.To && m.Promotion() == pm.Promotion {
			return m, nil
		}
	}
	reason := "not a legal destination"
	if p.arena[h].Kind == Pawn && (pm.To.Rank() == 0 || pm.To.Rank() == 7) && pm.Promotion == NoKind {
		reason = "promotion piece required"
	} else if p.InCheck() {
		reason = "king is in check"
	}
	return NoMove, &IllegalMoveError{Move: text, Reason: reason}
}

// ApplyText parses, validates and plays a move. On error the position is unchanged.
// Invariant violations after the move are fatal.
func (p *Position) ApplyText(text string) error {
	m, err := p.FindMove(text)
	if err != nil {
		return err
	}
	p.Make(m)
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("board invariant violated after %s: %v", text, err))
	}
	return nil
}
