package board_test

import (
	"errors"
	"testing"

	"negamax-chess/board"
)

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func sq(t *testing.T, alg string) board.Square {
	t.Helper()
	s, err := board.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func destinations(moves []board.Move) map[board.Square]bool {
	out := make(map[board.Square]bool, len(moves))
	for _, m := range moves {
		out[m.To()] = true
	}
	return out
}

func TestCastlingThroughCheckForbidden(t *testing.T) {
	// The bare layout has no black king and is rejected.
	if _, err := board.ParseFEN("3r1r2/8/8/8/8/8/8/R3K2R w"); !errors.Is(err, board.ErrInvalidFEN) {
		t.Fatalf("FEN without black king: got %v want ErrInvalidFEN", err)
	}
	p := mustParse(t, "1k1r1r2/8/8/8/8/8/8/R3K2R w")
	dst := destinations(p.MovesOf(sq(t, "e1")))
	if dst[2] || dst[6] {
		t.Fatalf("king may castle through attacked squares: %v", p.MovesOf(sq(t, "e1")))
	}
	if !dst[sq(t, "e2")] {
		t.Fatalf("king step to e2 missing: %v", p.MovesOf(sq(t, "e1")))
	}
}

func TestCastlingAllowed(t *testing.T) {
	p := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w")
	var castles int
	for _, m := range p.MovesOf(sq(t, "e1")) {
		if m.IsCastle() {
			castles++
		}
	}
	if castles != 2 {
		t.Fatalf("castling moves: got %d want 2", castles)
	}

	// In check: no castling.
	p = mustParse(t, "r3k2r/8/8/8/8/8/8/R3K1rR w")
	for _, m := range p.LegalMoves(nil) {
		if m.IsCastle() {
			t.Fatalf("castling while in check: %s", m)
		}
	}

	// Rook attacked but path safe: queenside still allowed.
	p = mustParse(t, "1r2k3/8/8/8/8/8/8/R3K3 w")
	if _, err := p.FindMove("e1c1"); err != nil {
		t.Fatalf("e1c1 with b1 attacked: %v", err)
	}
}

func TestEnPassantAfterDoublePush(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/3p4/8/4P3/4K3 w")
	if err := p.ApplyText("e2e4"); err != nil {
		t.Fatalf("ApplyText(e2e4): %v", err)
	}
	var found bool
	for _, m := range p.MovesOf(sq(t, "d4")) {
		if m.To() == sq(t, "e3") && m.IsEnPassant() {
			found = true
		}
	}
	if !found {
		t.Fatalf("d4e3 en passant missing: %v", p.MovesOf(sq(t, "d4")))
	}
	if err := p.ApplyText("d4e3"); err != nil {
		t.Fatalf("ApplyText(d4e3): %v", err)
	}
	if got, want := p.FEN(), "4k3/8/8/8/8/4p3/8/4K3 w"; got != want {
		t.Fatalf("FEN after en passant: got %s want %s", got, want)
	}
}

func TestEnPassantExposingKingIsIllegal(t *testing.T) {
	// Both pawns leave the fifth rank and the rook sees the king.
	p := mustParse(t, "8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	if _, err := p.FindMove("b5c6"); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("b5c6: got %v want ErrIllegalMove", err)
	}
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/3p4/8/4P3/4K3 w")
	for _, mv := range []string{"e2e4", "e8d8", "e1d1"} {
		if err := p.ApplyText(mv); err != nil {
			t.Fatalf("ApplyText(%s): %v", mv, err)
		}
	}
	for _, m := range p.MovesOf(sq(t, "d4")) {
		if m.IsEnPassant() {
			t.Fatalf("stale en passant generated: %s", m)
		}
	}
}

func TestKnightInCorner(t *testing.T) {
	p := mustParse(t, "7k/8/8/8/8/8/8/N6K w")
	moves := p.MovesOf(0)
	if len(moves) != 2 {
		t.Fatalf("knight on a1: got %d moves want 2", len(moves))
	}
	dst := destinations(moves)
	if !dst[sq(t, "b3")] || !dst[sq(t, "c2")] {
		t.Fatalf("knight on a1 targets: %v", moves)
	}
}

func TestPawnCapturesDoNotWrap(t *testing.T) {
	p := mustParse(t, "7k/8/8/1n6/P6n/8/8/7K w")
	dst := destinations(p.MovesOf(sq(t, "a4")))
	if len(dst) != 2 || !dst[sq(t, "a5")] || !dst[sq(t, "b5")] {
		t.Fatalf("a-file pawn: got %v want a5 and b5", p.MovesOf(sq(t, "a4")))
	}

	p = mustParse(t, "k7/8/8/6n1/n6P/8/8/K7 w")
	dst = destinations(p.MovesOf(sq(t, "h4")))
	if len(dst) != 2 || !dst[sq(t, "h5")] || !dst[sq(t, "g5")] {
		t.Fatalf("h-file pawn: got %v want h5 and g5", p.MovesOf(sq(t, "h4")))
	}
}

func TestKingCannotRetreatAlongCheckLine(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/8/8/r3K3 w")
	dst := destinations(p.MovesOf(sq(t, "e1")))
	if dst[sq(t, "f1")] || dst[sq(t, "d1")] {
		t.Fatalf("king stays on the rook's rank: %v", p.MovesOf(sq(t, "e1")))
	}
	if !dst[sq(t, "d2")] || !dst[sq(t, "f2")] {
		t.Fatalf("king escapes missing: %v", p.MovesOf(sq(t, "e1")))
	}
}

func TestKingCannotCaptureProtectedPiece(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/8/3p4/2b1K3 w")
	if _, err := p.FindMove("e1d2"); !errors.Is(err, board.ErrIllegalMove) {
		t.Fatalf("Kxd2 of a protected pawn: got %v want ErrIllegalMove", err)
	}
	if !p.Protected(board.Black).Has(sq(t, "d2")) {
		t.Fatalf("d2 not reported as protected")
	}
}

func TestPinnedPieces(t *testing.T) {
	// The knight on e2 is pinned by the rook and cannot move.
	p := mustParse(t, "4r2k/8/8/8/8/8/4N3/4K3 w")
	if n := len(p.MovesOf(sq(t, "e2"))); n != 0 {
		t.Fatalf("pinned knight: got %d moves want 0", n)
	}
	// The rook on e4 may slide along the pin and capture the pinner.
	p = mustParse(t, "4r2k/8/8/8/4R3/8/8/4K3 w")
	dst := destinations(p.MovesOf(sq(t, "e4")))
	if len(dst) != 6 || !dst[sq(t, "e8")] || dst[sq(t, "d4")] {
		t.Fatalf("pinned rook: got %v", p.MovesOf(sq(t, "e4")))
	}
}

func TestCheckEvasions(t *testing.T) {
	// Single slider check: capture, interpose, or king move.
	p := mustParse(t, "4r2k/8/8/8/8/8/3B4/R3K3 w")
	for _, m := range p.LegalMoves(nil) {
		pc, _ := p.PieceAt(m.From())
		if pc.Kind == board.King {
			continue
		}
		if m.To().File() != 4 {
			t.Fatalf("non-evading move while in check: %s", m)
		}
	}
	if _, err := p.FindMove("d2e3"); err != nil {
		t.Fatalf("interposition d2e3: %v", err)
	}

	// Double check: only the king moves.
	p = mustParse(t, "4r2k/8/8/8/8/5n2/3B4/R3K3 w")
	for _, m := range p.LegalMoves(nil) {
		if m.From() != sq(t, "e1") {
			t.Fatalf("double check allows %s", m)
		}
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	p := mustParse(t, "R5k1/5ppp/8/8/8/8/8/6K1 b")
	if !p.IsCheckmate() || p.IsStalemate() {
		t.Fatalf("back rank mate not detected")
	}
	p = mustParse(t, "7k/5Q2/8/8/8/8/8/K7 b")
	if !p.IsStalemate() || p.IsCheckmate() {
		t.Fatalf("stalemate not detected")
	}
}

func TestIllegalMoveReasons(t *testing.T) {
	p := board.StartPosition()
	cases := []struct {
		text   string
		reason string
	}{
		{"e3e4", "no piece on e3"},
		{"e7e5", "piece on e7 belongs to black"},
		{"e2e5", "not a legal destination"},
	}
	for _, tc := range cases {
		_, err := p.FindMove(tc.text)
		var ime *board.IllegalMoveError
		if !errors.As(err, &ime) {
			t.Fatalf("FindMove(%s): got %v want IllegalMoveError", tc.text, err)
		}
		if ime.Reason != tc.reason {
			t.Fatalf("FindMove(%s) reason: got %q want %q", tc.text, ime.Reason, tc.reason)
		}
		if !errors.Is(err, board.ErrIllegalMove) {
			t.Fatalf("FindMove(%s): not ErrIllegalMove", tc.text)
		}
	}
	if _, err := p.FindMove("e2"); !errors.Is(err, board.ErrInvalidMove) {
		t.Fatalf("FindMove(e2): got %v want ErrInvalidMove", err)
	}
	if _, err := p.FindMove("e2e4x"); !errors.Is(err, board.ErrInvalidMove) {
		t.Fatalf("FindMove(e2e4x): got %v want ErrInvalidMove", err)
	}

	q := mustParse(t, "8/P6k/8/8/8/8/8/K7 w")
	_, err := q.FindMove("a7a8")
	var ime *board.IllegalMoveError
	if !errors.As(err, &ime) || ime.Reason != "promotion piece required" {
		t.Fatalf("FindMove(a7a8): got %v", err)
	}
}

func TestPromotionOrder(t *testing.T) {
	p := mustParse(t, "8/P6k/8/8/8/8/8/K7 w")
	var kinds []board.PieceKind
	for _, m := range p.MovesOf(sq(t, "a7")) {
		kinds = append(kinds, m.Promotion())
	}
	want := board.PromotionKinds[:]
	if len(kinds) != len(want) {
		t.Fatalf("promotion moves: got %v want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("promotion order: got %v want %v", kinds, want)
		}
	}
}
