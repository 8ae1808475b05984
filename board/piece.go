package board

// Color identifies a side. White moves first and advances towards rank 8.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// Forward is the square offset of one step towards the opponent.
func (c Color) Forward() int {
	if c == White {
		return North
	}
	return South
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type used for table lookups.
type PieceKind uint8

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

var kindLetters = [7]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase letter of the kind ('p', 'n', ...).
func (k PieceKind) Letter() byte { return kindLetters[k] }

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

func kindFromLetter(ch byte) PieceKind {
	switch ch {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoKind
}

// Handle is a stable index into the position's piece arena. The square array and
// the per-color piece lists hold handles, never pointers.
type Handle int16

// NoHandle marks an empty square.
const NoHandle Handle = -1

// Piece is one live (or retired) man on the board.
type Piece struct {
	Kind     PieceKind
	Color    Color
	Square   Square
	HasMoved bool
	// ID is the arena handle the piece was created with; it only serves debugging.
	ID int
}

// Letter returns the FEN letter, uppercase for White.
func (p Piece) Letter() byte {
	ch := p.Kind.Letter()
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p.Kind == Bishop || p.Kind == Rook || p.Kind == Queen
}
