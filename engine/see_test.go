package engine

import "testing"

func TestSEE(t *testing.T) {
	cases := []struct {
		name, fen, move string
		want            int
	}{
		{"free pawn", "4k3/8/8/3p4/4P3/8/8/4K3 w", "e4d5", 100},
		{"pawn trade", "4k3/8/2p5/3p4/4P3/8/8/4K3 w", "e4d5", 0},
		{"queen takes defended pawn", "4k3/8/2p5/3p4/8/8/8/3QK3 w", "d1d5", -800},
		{"revealed slider", "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", "c4e6", 0},
		{"en passant", "7k/8/8/3pP3/8/8/8/6K1 w - d6 0 1", "e5d6", 100},
		{"x-ray battery", "3rk3/8/8/3p4/8/8/3R4/3QK3 w", "d2d5", 100},
		{"queen in front of the battery", "3rk3/8/8/3p4/8/8/3Q4/3RK3 w", "d2d5", -300},
		{"promotion", "4k3/1P6/8/8/8/8/8/4K3 w", "b7b8q", 800},
	}
	for _, tc := range cases {
		p := mustParse(t, tc.fen)
		m, err := p.FindMove(tc.move)
		if err != nil {
			t.Fatalf("%s: FindMove: %v", tc.name, err)
		}
		if got := SEE(p, m); got != tc.want {
			t.Fatalf("%s: SEE(%s): got %d want %d", tc.name, tc.move, got, tc.want)
		}
	}
}
