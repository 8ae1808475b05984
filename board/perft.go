package board

// Perft counts leaf nodes (legal move sequences) from the position for a given depth.
// Per-depth move buffers are reused to avoid allocations.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.LegalMoves(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.Make(m)
		nodes += perftRec(p, depth-1, pc)
		p.Unmake(u)
	}
	return nodes
}

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide returns, in generation order, each legal root move with the number
// of leaf nodes reachable from it at the given depth.
func PerftDivide(p *Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := p.LegalMoves(make([]Move, 0, 64))
	out := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		u := p.Make(m)
		out = append(out, DivideEntry{Move: m, Nodes: Perft(p, depth-1)})
		p.Unmake(u)
	}
	return out
}
