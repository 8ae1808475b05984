package engine

import "negamax-chess/board"

/*
	HISTORY HEURISTIC
	A quiet move that causes a beta cutoff gets depth*depth added to its
	from/to entry for the side that played it; quiet moves searched before the
	cutoff lose a point. Quiet moves are ordered by this score, below every
	capture and killer.
*/

// historyMaxVal triggers aging; historyCap keeps ordering scores below losing captures.
const (
	historyMaxVal = 2000
	historyCap    = int(badCaptureOffset) - 1
)

type HistoryTable struct {
	scores [2][64][64]int
}

func (h *HistoryTable) Reward(c board.Color, m board.Move, depth int) {
	v := &h.scores[c][m.From()][m.To()]
	*v += depth * depth
	if *v >= historyMaxVal {
		h.age()
	}
}

func (h *HistoryTable) Penalize(c board.Color, m board.Move) {
	if v := &h.scores[c][m.From()][m.To()]; *v > 0 {
		*v--
	}
}

// Score is the ordering bonus of a quiet move.
func (h *HistoryTable) Score(c board.Color, m board.Move) uint16 {
	return uint16(min(h.scores[c][m.From()][m.To()], historyCap))
}

// age halves every entry so that recent cutoffs dominate.
func (h *HistoryTable) age() {
	for c := range h.scores {
		for from := range h.scores[c] {
			for to := range h.scores[c][from] {
				h.scores[c][from][to] /= 2
			}
		}
	}
}

func (h *HistoryTable) Clear() {
	clear(h.scores[0][:])
	clear(h.scores[1][:])
}
