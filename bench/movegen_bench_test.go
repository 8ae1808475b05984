package bench

import (
	"testing"

	"negamax-chess/board"
	"negamax-chess/engine"
)

func benchLegalMoves(b *testing.B, fen string) {
	p := mustParse(b, fen)
	buf := make([]board.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.LegalMoves(buf[:0])
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, board.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, kiwipete)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	benchLegalMoves(b, "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
}

func BenchmarkLegalMoves_InCheck(b *testing.B) {
	benchLegalMoves(b, "4k3/8/8/8/1b6/8/8/4K3 w")
}

func BenchmarkMakeUnmake_Kiwipete(b *testing.B) {
	p := mustParse(b, kiwipete)
	moves := p.LegalMoves(nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			u := p.Make(m)
			p.Unmake(u)
		}
	}
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	p := mustParse(b, kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(p)
	}
}
