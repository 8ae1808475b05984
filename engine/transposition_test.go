package engine

import (
	"testing"

	"negamax-chess/board"
)

func TestTTStoreProbe(t *testing.T) {
	tt := NewTransTable(1)
	m := board.NewMove(12, 28, board.NoKind, board.FlagDoublePush)
	tt.Store(0xABCDEF, 4, 2, m, 37, Exact)
	e, ok := tt.Probe(0xABCDEF)
	if !ok || e.Move != m || e.Score != 37 || e.Depth != 4 || e.Flag != Exact {
		t.Fatalf("probe: got %+v found=%v", e, ok)
	}
	if _, ok := tt.Probe(0xABCDEE); ok {
		t.Fatalf("probe of a missing key succeeded")
	}
	tt.Clear()
	if _, ok := tt.Probe(0xABCDEF); ok {
		t.Fatalf("probe after Clear succeeded")
	}
}

func TestTTMateScoresAreNodeRelative(t *testing.T) {
	tt := NewTransTable(1)
	// Mate five plies from the root, found at ply 3.
	tt.Store(42, 2, 3, board.NoMove, MateScore-5, Exact)
	e, _ := tt.Probe(42)
	if e.Score != MateScore-2 {
		t.Fatalf("stored score: got %d want %d", e.Score, MateScore-2)
	}
	// Reached again at ply 1 the mate is three plies from the root.
	ok, score := e.usable(2, -Infinity, Infinity, 1)
	if !ok || score != MateScore-3 {
		t.Fatalf("usable: got %v %d want true %d", ok, score, MateScore-3)
	}
}

func TestTTUsableBounds(t *testing.T) {
	upper := TTEntry{Hash: 1, Score: 10, Depth: 3, Flag: UpperBound}
	if ok, score := upper.usable(3, 20, 30, 0); !ok || score != 20 {
		t.Fatalf("upper bound below alpha: got %v %d", ok, score)
	}
	if ok, _ := upper.usable(3, 0, 30, 0); ok {
		t.Fatalf("upper bound inside window used")
	}
	lower := TTEntry{Hash: 1, Score: 50, Depth: 3, Flag: LowerBound}
	if ok, score := lower.usable(2, 20, 30, 0); !ok || score != 30 {
		t.Fatalf("lower bound above beta: got %v %d", ok, score)
	}
	if ok, _ := lower.usable(4, 20, 30, 0); ok {
		t.Fatalf("shallow entry used for a deeper search")
	}
}

func TestTTReplacesShallowestInCluster(t *testing.T) {
	tt := NewTransTable(1)
	n := tt.clusterCount
	keys := []uint64{5, 5 + n, 5 + 2*n, 5 + 3*n, 5 + 4*n}
	depths := []int{5, 2, 7, 3, 1}
	for i, k := range keys {
		tt.Store(k, depths[i], 0, board.NoMove, int32(i), Exact)
	}
	if _, ok := tt.Probe(keys[1]); ok {
		t.Fatalf("shallowest entry survived")
	}
	for _, i := range []int{0, 2, 3, 4} {
		if e, ok := tt.Probe(keys[i]); !ok || e.Score != int32(i) {
			t.Fatalf("entry %d: got %+v found=%v", i, e, ok)
		}
	}
	// Same key overwrites in place.
	tt.Store(keys[0], 9, 0, board.NoMove, 99, LowerBound)
	if e, _ := tt.Probe(keys[0]); e.Score != 99 || e.Depth != 9 {
		t.Fatalf("overwrite: got %+v", e)
	}
}

func TestTTResizeClamps(t *testing.T) {
	tt := NewTransTable(0)
	small := tt.Len()
	tt.Resize(2)
	if tt.Len() <= small {
		t.Fatalf("resize to 2MB: got %d slots, 1MB had %d", tt.Len(), small)
	}
}
