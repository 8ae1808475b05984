package engine

import (
	"testing"

	"negamax-chess/board"
)

func TestHistoryRewardAndAge(t *testing.T) {
	var h HistoryTable
	m := board.NewMove(12, 28, board.NoKind, board.FlagDoublePush)
	h.Reward(board.White, m, 3)
	if got := h.Score(board.White, m); got != 9 {
		t.Fatalf("score after reward: got %d want 9", got)
	}
	if got := h.Score(board.Black, m); got != 0 {
		t.Fatalf("black score: got %d want 0", got)
	}
	h.Penalize(board.White, m)
	if got := h.Score(board.White, m); got != 8 {
		t.Fatalf("score after penalty: got %d want 8", got)
	}

	// 8 + 45*45 crosses the aging threshold and halves the table.
	h.Reward(board.White, m, 45)
	if got := h.scores[board.White][12][28]; got != (8+45*45)/2 {
		t.Fatalf("aged entry: got %d want %d", got, (8+45*45)/2)
	}
	if got := h.Score(board.White, m); int(got) != historyCap {
		t.Fatalf("ordering score: got %d want cap %d", got, historyCap)
	}
	h.Clear()
	if got := h.Score(board.White, m); got != 0 {
		t.Fatalf("score after Clear: got %d", got)
	}
}

func TestHistoryOrdersQuietMoves(t *testing.T) {
	s := newTestSearcher()
	p := board.StartPosition()
	favored, err := p.FindMove("b1c3")
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	s.history.Reward(board.White, favored, 4)
	scored := s.scoreMoves(p, p.LegalMoves(nil), board.NoMove, 0, nil)
	orderNextMove(0, scored)
	if scored[0].move != favored {
		t.Fatalf("first move: got %s want %s", scored[0].move, favored)
	}
}
