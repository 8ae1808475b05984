package engine

import "negamax-chess/board"

// KillerTable keeps two quiet moves per ply that recently caused a beta cutoff.
type KillerTable struct {
	KillerMoves [MaxPly + 1][2]board.Move
}

func (k *KillerTable) Insert(move board.Move, ply int) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// Clear the killer moves table.
func (k *KillerTable) Clear() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply] = [2]board.Move{}
	}
}
