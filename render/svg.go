package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"negamax-chess/board"
)

// SVGOptions controls the board image.
type SVGOptions struct {
	// Size is the side of one square in pixels.
	Size int
	// Highlight marks the from and to squares of a move; NoMove draws none.
	Highlight board.Move
	// Coordinates draws file letters and rank digits along the edges.
	Coordinates bool
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Size: 48, Coordinates: true}
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	highlight   = "fill:#cdd26a;fill-opacity:0.8"
)

// Unicode chess figures indexed by kind; White uses the outlined set.
var figures = [2][7]string{
	board.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	board.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}

// SVG writes an image of the position, White at the bottom.
func SVG(w io.Writer, p *board.Position, opts SVGOptions) error {
	if opts.Size <= 0 {
		opts.Size = DefaultSVGOptions().Size
	}
	sz := opts.Size
	margin := 0
	if opts.Coordinates {
		margin = sz / 2
	}
	side := 8*sz + 2*margin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(side, side)
	canvas.Title(p.FEN())
	canvas.Rect(0, 0, side, side, "fill:#ffffff")

	for sq := board.Square(0); sq < 64; sq++ {
		x := margin + sq.File()*sz
		y := margin + (7-sq.Rank())*sz
		style := lightSquare
		if (sq.File()+sq.Rank())%2 == 0 {
			style = darkSquare
		}
		canvas.Rect(x, y, sz, sz, style)
		if opts.Highlight != board.NoMove && (sq == opts.Highlight.From() || sq == opts.Highlight.To()) {
			canvas.Rect(x, y, sz, sz, highlight)
		}
		if pc, ok := p.PieceAt(sq); ok {
			canvas.Text(x+sz/2, y+sz*4/5, figures[pc.Color][pc.Kind],
				fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#000000", sz*4/5))
		}
	}

	if opts.Coordinates {
		label := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#333333", sz/3)
		for i := 0; i < 8; i++ {
			canvas.Text(margin+i*sz+sz/2, side-margin/3, string(rune('a'+i)), label)
			canvas.Text(margin/2, margin+(7-i)*sz+sz/2+sz/8, string(rune('1'+i)), label)
		}
	}
	canvas.End()
	return ew.err
}
