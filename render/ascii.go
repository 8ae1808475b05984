// Package render draws positions as text diagrams and SVG images.
package render

import (
	"strings"

	"negamax-chess/board"
)

// ASCII draws the board as eight lines, rank 8 first, each of the form
// |r|n|b|q|k|b|n|r| with uppercase letters for White and a space for an empty
// square.
func ASCII(p *board.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('|')
		for file := 0; file < 8; file++ {
			if pc, ok := p.PieceAt(board.MakeSquare(file, rank)); ok {
				sb.WriteByte(pc.Letter())
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
