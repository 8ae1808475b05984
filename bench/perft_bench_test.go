package bench

import (
	"testing"

	"negamax-chess/board"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustParse(b *testing.B, fen string) *board.Position {
	p, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return p
}

func benchPerft(b *testing.B, fen string, depth int) {
	p := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(p, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

func BenchmarkPerft_Endgame_D4(b *testing.B) {
	benchPerft(b, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w", 4)
}
