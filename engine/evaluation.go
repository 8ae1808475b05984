package engine

import (
	"fmt"
	"strings"

	"negamax-chess/board"
)

// Piece base values in centipawns.
var pieceValue = [7]int{
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   10000,
}

const (
	TempoBonus     = 100
	MobilityWeight = 10
	// PawnPenalty is charged per blocked or isolated pawn and scales doubled files.
	PawnPenalty = 500

	// Non-pawn material on a full board: the phase reference.
	totalPhaseMaterial = 2 * (2*300 + 2*300 + 2*500 + 900)
)

// PieceValue returns the material value of a kind.
func PieceValue(k board.PieceKind) int { return pieceValue[k] }

// Breakdown is the evaluation split into its terms, each from White's view.
type Breakdown struct {
	Material      int
	Tempo         int
	Mobility      int
	PawnStructure int
	PieceSquare   int
	// Phase is the remaining non-pawn material, clamped to [0, totalPhaseMaterial].
	Phase int
}

// Total sums the terms.
func (b Breakdown) Total() int {
	return b.Material + b.Tempo + b.Mobility + b.PawnStructure + b.PieceSquare
}

func (b Breakdown) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "material %d tempo %d mobility %d pawns %d psqt %d", b.Material, b.Tempo, b.Mobility, b.PawnStructure, b.PieceSquare)
	fmt.Fprintf(&sb, " phase %d/%d total %d", b.Phase, totalPhaseMaterial, b.Total())
	return sb.String()
}

// Evaluate scores the position in centipawns from White's point of view.
// It does not modify the position.
func Evaluate(p *board.Position) int {
	return Explain(p).Total()
}

// evaluateRelative scores the position for the side to move.
func evaluateRelative(p *board.Position) int32 {
	score := int32(Evaluate(p))
	if p.SideToMove() == board.Black {
		return -score
	}
	return score
}

// Explain computes every evaluation term.
func Explain(p *board.Position) Breakdown {
	var b Breakdown
	var mg, eg, npm int

	for _, c := range [2]board.Color{board.White, board.Black} {
		sign := 1
		if c == board.Black {
			sign = -1
		}
		for _, h := range p.Pieces(c) {
			pc := p.Piece(h)
			b.Material += sign * pieceValue[pc.Kind]
			if pc.Kind != board.Pawn && pc.Kind != board.King {
				npm += pieceValue[pc.Kind]
			}
			m, e := PieceSquare(pc.Kind, c, pc.Square)
			mg += sign * m
			eg += sign * e
		}
		b.PawnStructure -= sign * pawnStructurePenalty(p, c)
	}

	if lm := p.LastMove(); lm.Valid() {
		// The side that just moved is the one not on move.
		if p.SideToMove() == board.Black {
			b.Tempo = TempoBonus
		} else {
			b.Tempo = -TempoBonus
		}
	}

	b.Mobility = MobilityWeight * (p.Controlled(board.White).Count() - p.Controlled(board.Black).Count())

	// (1-phi)*mg + phi*eg with phi = 1 - npm/total.
	b.Phase = clamp(npm, 0, totalPhaseMaterial)
	b.PieceSquare = (mg*b.Phase + eg*(totalPhaseMaterial-b.Phase)) / totalPhaseMaterial
	return b
}

// pawnStructurePenalty totals doubled, blocked and isolated pawn penalties for c.
func pawnStructurePenalty(p *board.Position, c board.Color) int {
	var files [8]int
	var pawns []board.Square
	for _, h := range p.Pieces(c) {
		pc := p.Piece(h)
		if pc.Kind != board.Pawn {
			continue
		}
		files[pc.Square.File()]++
		pawns = append(pawns, pc.Square)
	}

	penalty := 0
	for _, n := range files {
		if n > 1 {
			penalty += PawnPenalty * n / 2
		}
	}
	for _, sq := range pawns {
		// A pawn never stands on its last rank, so the push square exists.
		if _, occupied := p.PieceAt(sq + board.Square(c.Forward())); occupied {
			penalty += PawnPenalty
		}
		f := sq.File()
		if (f == 0 || files[f-1] == 0) && (f == 7 || files[f+1] == 0) {
			penalty += PawnPenalty
		}
	}
	return penalty
}
