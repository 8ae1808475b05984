package board_test

import (
	"reflect"
	"testing"

	"negamax-chess/board"
)

// walk makes and unmakes every legal move down to depth, checking after each
// make that the position is consistent and after each unmake that nothing changed.
func walk(t *testing.T, p *board.Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	before := p.Clone()
	for _, m := range p.LegalMoves(nil) {
		u := p.Make(m)
		if err := p.Validate(); err != nil {
			t.Fatalf("after %s from %s: %v", m, before.FullFEN(), err)
		}
		walk(t, p, depth-1)
		p.Unmake(u)
		if !reflect.DeepEqual(p, before) {
			t.Fatalf("make/unmake %s changed %s into %s", m, before.FullFEN(), p.FullFEN())
		}
	}
}

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	for _, fen := range fens {
		p, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		walk(t, p, 2)
	}
}

func TestHashTransposition(t *testing.T) {
	p := board.StartPosition()
	start := p.Hash()
	for _, mv := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		if err := p.ApplyText(mv); err != nil {
			t.Fatalf("ApplyText(%s): %v", mv, err)
		}
	}
	if p.Hash() != start {
		t.Fatalf("hash after knight shuffle: got %x want %x", p.Hash(), start)
	}

	// Same placement but a pending en passant must hash differently.
	a, _ := board.ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b")
	b := board.StartPosition()
	if err := b.ApplyText("e2e4"); err != nil {
		t.Fatalf("ApplyText(e2e4): %v", err)
	}
	if a.FEN() != b.FEN() {
		t.Fatalf("placement mismatch: %s vs %s", a.FEN(), b.FEN())
	}
	if a.Hash() == b.Hash() {
		t.Fatalf("en passant file not part of the hash")
	}
}

func TestCastlingMovesRook(t *testing.T) {
	p, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if err := p.ApplyText("e1g1"); err != nil {
		t.Fatalf("ApplyText(e1g1): %v", err)
	}
	if err := p.ApplyText("e8c8"); err != nil {
		t.Fatalf("ApplyText(e8c8): %v", err)
	}
	if got, want := p.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w"; got != want {
		t.Fatalf("FEN after castling: got %s want %s", got, want)
	}
	if p.Castling() != 0 {
		t.Fatalf("castling rights after both sides castled: got %d want 0", p.Castling())
	}
}

func TestPromotionReplacesPawnInList(t *testing.T) {
	p, err := board.ParseFEN("8/P6k/8/8/8/8/8/K7 w")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := append([]board.Handle(nil), p.Pieces(board.White)...)
	m, err := p.FindMove("a7a8n")
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	u := p.Make(m)
	pc, ok := p.PieceAt(56)
	if !ok || pc.Kind != board.Knight || pc.Color != board.White {
		t.Fatalf("a8 after promotion: got %+v", pc)
	}
	after := p.Pieces(board.White)
	if len(after) != len(before) {
		t.Fatalf("white list length: got %d want %d", len(after), len(before))
	}
	p.Unmake(u)
	if !reflect.DeepEqual(p.Pieces(board.White), before) {
		t.Fatalf("white list after unmake: got %v want %v", p.Pieces(board.White), before)
	}
	if pc, _ := p.PieceAt(48); pc.Kind != board.Pawn {
		t.Fatalf("a7 after unmake: got %s want pawn", pc.Kind)
	}
}

func TestMakePanicsOnKingCapture(t *testing.T) {
	p, err := board.ParseFEN("k7/8/8/8/8/8/8/K7 b")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("capturing the king did not panic")
		}
	}()
	p.Make(board.NewMove(56, 0, board.NoKind, board.FlagCapture))
}
