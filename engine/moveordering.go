package engine

import "negamax-chess/board"

type move struct {
	move  board.Move
	score uint16
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// Ordering offsets. The TT move goes first, then promotions, captures that do
// not lose material, killers, losing captures and finally quiet moves by
// history score.
const (
	ttMoveOffset     uint16 = 25000
	promotionOffset  uint16 = 20000
	captureOffset    uint16 = 15000
	killerOffset     uint16 = 2000
	badCaptureOffset uint16 = 1000
)

// scoreMoves attaches an ordering score to every move. dst is reused.
func (s *Searcher) scoreMoves(p *board.Position, moves []board.Move, ttMove board.Move, ply int, dst []move) []move {
	dst = dst[:0]
	killers := &s.killers.KillerMoves[ply]
	for _, m := range moves {
		var score uint16
		switch {
		case m == ttMove:
			score = ttMoveOffset
		case m.Promotion() != board.NoKind:
			score = promotionOffset + uint16(pieceValue[m.Promotion()]/10)
		case m.IsCapture():
			victim := board.Pawn
			if pc, ok := p.PieceAt(m.To()); ok {
				victim = pc.Kind
			}
			attacker, _ := p.PieceAt(m.From())
			score = captureOffset + mvvLva[victim][attacker.Kind]
			if victim < attacker.Kind && SEE(p, m) < 0 {
				score = badCaptureOffset + mvvLva[victim][attacker.Kind]
			}
		case killers[0] == m:
			score = killerOffset + 200
		case killers[1] == m:
			score = killerOffset
		default:
			score = s.history.Score(p.SideToMove(), m)
		}
		dst = append(dst, move{move: m, score: score})
	}
	return dst
}

func isQuiet(m board.Move) bool {
	return !m.IsCapture() && m.Promotion() == board.NoKind
}

// Ordering the moves one at a time, at index given. Ties keep generation order.
func orderNextMove(currIndex int, moves []move) {
	bestIndex := currIndex
	bestScore := moves[bestIndex].score

	for index := currIndex + 1; index < len(moves); index++ {
		if moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves[index].score
		}
	}
	if bestIndex == currIndex {
		return
	}
	// Shift instead of swap so the skipped moves stay in order.
	best := moves[bestIndex]
	copy(moves[currIndex+1:bestIndex+1], moves[currIndex:bestIndex])
	moves[currIndex] = best
}
