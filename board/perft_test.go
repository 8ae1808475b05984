package board_test

import (
	"testing"

	"negamax-chess/board"
)

type perftCase struct {
	name  string
	fen   string
	nodes []uint64 // nodes[i] is the count at depth i+1
	// slow is the first depth skipped under -short.
	slow int
}

var perftSuite = []perftCase{
	{"startpos", board.FENStartPos, []uint64{20, 400, 8902, 197281}, 4},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w", []uint64{48, 2039, 97862}, 3},
	{"promotion", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b", []uint64{24, 496, 9483}, 3},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w", []uint64{14, 191, 2812, 43238}, 4},
	{"mirror-castles", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}, 3},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}, 3},
}

func TestPerftSuite(t *testing.T) {
	for _, tc := range perftSuite {
		t.Run(tc.name, func(t *testing.T) {
			p, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
			}
			for i, want := range tc.nodes {
				depth := i + 1
				if testing.Short() && depth >= tc.slow {
					break
				}
				if got := board.Perft(p, depth); got != want {
					t.Fatalf("perft depth%d: got %d want %d", depth, got, want)
				}
			}
			if got := p.FullFEN(); got == "" {
				t.Fatalf("position lost after perft")
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("position invalid after perft: %v", err)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	div := board.PerftDivide(p, 2)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want %d", len(div), 48)
	}
	var sum uint64
	for _, e := range div {
		sum += e.Nodes
	}
	if sum != 2039 {
		t.Fatalf("divide total: got %d want %d", sum, 2039)
	}
}

func TestPerftDepthZero(t *testing.T) {
	if got := board.Perft(board.StartPosition(), 0); got != 1 {
		t.Fatalf("perft depth0: got %d want 1", got)
	}
	if div := board.PerftDivide(board.StartPosition(), 0); div != nil {
		t.Fatalf("divide depth0: got %d entries want none", len(div))
	}
}
