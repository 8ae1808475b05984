package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"negamax-chess/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MateScore int32 = 1_000_000
	// Scores beyond MateThreshold encode a forced mate.
	MateThreshold = MateScore - 2*MaxPly
	Infinity      = MateScore + 1
	DrawScore     int32 = 0
)

// PVLine is the principal variation collected during search.
type PVLine struct {
	Moves []board.Move
}

func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

// Update sets the line to m followed by the child's line.
func (pv *PVLine) Update(m board.Move, child PVLine) {
	pv.Moves = append(append(pv.Moves[:0], m), child.Moves...)
}

func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]board.Move(nil), pv.Moves...)}
}

func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Info describes one completed iteration.
type Info struct {
	Depth   int
	Score   int32
	Nodes   uint64
	Elapsed time.Duration
	PV      PVLine
}

// NPS is nodes per second over the elapsed time.
func (i Info) NPS() uint64 {
	ns := i.Elapsed.Nanoseconds()
	if ns <= 0 {
		ns = 1
	}
	return uint64(float64(i.Nodes) * 1e9 / float64(ns))
}

// Result is the outcome of a search.
type Result struct {
	Move  board.Move
	Score int32
	// Depth is the deepest fully searched iteration; 0 if none completed.
	Depth   int
	PV      PVLine
	Stats   Stats
	Stopped bool
}

// Searcher runs fixed-depth negamax searches with alpha-beta pruning. It owns
// the transposition table, which survives between searches. A Searcher is not
// safe for concurrent searches; cancel a running one through its context.
type Searcher struct {
	opts    Options
	tt      *TransTable
	killers KillerTable
	history HistoryTable
	stats   Stats

	ctx     context.Context
	stopped bool

	moveBufs  [MaxPly + 1][]board.Move
	scoreBufs [MaxPly + 1][]move

	// OnInfo, when set, receives a report after every completed iteration.
	OnInfo func(Info)
}

func NewSearcher(opts Options) *Searcher {
	return &Searcher{
		opts: opts,
		tt:   NewTransTable(opts.HashMB),
	}
}

func (s *Searcher) Options() Options { return s.opts }

// SetHash resizes the transposition table.
func (s *Searcher) SetHash(mb int) {
	s.opts.HashMB = clamp(mb, MinHashMB, MaxHashMB)
	s.tt.Resize(s.opts.HashMB)
}

// SetDepth changes the default search depth.
func (s *Searcher) SetDepth(depth int) {
	s.opts.Depth = clamp(depth, MinDepth, MaxDepth)
}

// ClearHash empties the transposition table.
func (s *Searcher) ClearHash() { s.tt.Clear() }

// NewGame forgets everything learned from earlier searches.
func (s *Searcher) NewGame() {
	s.tt.Clear()
	s.killers.Clear()
	s.history.Clear()
}

// Search iterates depths 1..depth from p and returns the best move found. A
// depth <= 0 uses the configured default. When ctx is cancelled the search
// unwinds, leaving p as it was, and returns the best move of the deepest
// completed iteration, or the best fully searched root move if the first
// iteration did not complete.
func (s *Searcher) Search(ctx context.Context, p *board.Position, depth int) Result {
	if depth <= 0 {
		depth = s.opts.Depth
	}
	depth = clamp(depth, MinDepth, MaxDepth)

	s.ctx = ctx
	s.stopped = false
	s.stats = Stats{}
	s.killers.Clear()

	var res Result
	root := p.LegalMoves(make([]board.Move, 0, 64))
	if len(root) == 0 {
		if p.InCheck() {
			res.Score = -MateScore
		}
		return res
	}
	res.Move = root[0]

	start := time.Now()
	var scored []move
	for d := 1; d <= depth; d++ {
		var pv PVLine
		scored = s.scoreMoves(p, root, res.Move, 0, scored)
		score, best, complete := s.searchRoot(p, scored, d, &pv)
		if !complete {
			res.Stopped = true
			if res.Depth == 0 && best != board.NoMove {
				res.Move, res.Score = best, score
				res.PV = pv.Clone()
			}
			break
		}

		res = Result{Move: best, Score: score, Depth: d, PV: pv.Clone()}
		if s.OnInfo != nil {
			s.OnInfo(Info{
				Depth:   d,
				Score:   score,
				Nodes:   s.stats.Nodes,
				Elapsed: time.Since(start),
				PV:      res.PV,
			})
		}
		// A forced mate cannot get any shorter.
		if absValue(score) > MateThreshold {
			break
		}
	}
	res.Stats = s.stats
	return res
}

// searchRoot searches every root move with a full window so that each root
// score is exact. complete is false when the search was cancelled; best and
// score then describe the moves finished before cancellation.
func (s *Searcher) searchRoot(p *board.Position, scored []move, depth int, pv *PVLine) (score int32, best board.Move, complete bool) {
	alpha := -Infinity
	score = -Infinity
	var child PVLine
	for i := range scored {
		orderNextMove(i, scored)
		m := scored[i].move
		u := p.Make(m)
		v := -s.negamax(p, depth-1, 1, -Infinity, -alpha, &child)
		p.Unmake(u)
		if s.stopped {
			return score, best, false
		}
		if v > score {
			score, best = v, m
			pv.Update(m, child)
		}
		if v > alpha {
			alpha = v
		}
	}
	s.tt.Store(p.Hash(), depth, 0, best, score, Exact)
	return score, best, true
}

// negamax returns the score of p for the side to move. The window is (alpha, beta);
// ply is the distance from the root.
func (s *Searcher) negamax(p *board.Position, depth, ply int, alpha, beta int32, pv *PVLine) int32 {
	pv.Clear()
	if s.pollStop() {
		return 0
	}
	s.stats.Nodes++

	if depth <= 0 || ply >= MaxPly {
		return evaluateRelative(p)
	}

	hash := p.Hash()
	var ttMove board.Move
	s.stats.TTProbes++
	if e, found := s.tt.Probe(hash); found {
		s.stats.TTHits++
		ttMove = e.Move
		if ok, score := e.usable(depth, alpha, beta, ply); ok {
			s.stats.TTCutoffs++
			return score
		}
	}

	moves := p.LegalMoves(s.moveBufs[ply][:0])
	s.moveBufs[ply] = moves
	if len(moves) == 0 {
		if p.InCheck() {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	scored := s.scoreMoves(p, moves, ttMove, ply, s.scoreBufs[ply])
	s.scoreBufs[ply] = scored

	alphaOrig := alpha
	best := -Infinity
	bestMove := board.NoMove
	var child PVLine
	for i := range scored {
		orderNextMove(i, scored)
		m := scored[i].move

		u := p.Make(m)
		score := -s.negamax(p, depth-1, ply+1, -beta, -alpha, &child)
		p.Unmake(u)
		if s.stopped {
			return 0
		}

		if score > best {
			best, bestMove = score, m
			if score > alpha {
				alpha = score
				pv.Update(m, child)
			}
		}
		if alpha >= beta {
			s.stats.BetaCutoffs++
			if isQuiet(m) {
				s.killers.Insert(m, ply)
				us := p.SideToMove()
				s.history.Reward(us, m, depth)
				for _, tried := range scored[:i] {
					if isQuiet(tried.move) {
						s.history.Penalize(us, tried.move)
					}
				}
			}
			break
		}
	}

	flag := Exact
	if best <= alphaOrig {
		flag = UpperBound
	} else if best >= beta {
		flag = LowerBound
	}
	s.tt.Store(hash, depth, ply, bestMove, best, flag)
	return best
}

// pollStop checks the context every 1024 nodes.
func (s *Searcher) pollStop() bool {
	if s.stopped {
		return true
	}
	if s.stats.Nodes&1023 == 0 && s.ctx != nil {
		select {
		case <-s.ctx.Done():
			s.stopped = true
		default:
		}
	}
	return s.stopped
}

// ScoreString renders a score the way UCI reports it: "cp N" or "mate N",
// where a negative mate count means the side to move is being mated.
func ScoreString(score int32) string {
	if score > MateThreshold {
		plies := MateScore - score
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if score < -MateThreshold {
		plies := MateScore + score
		return fmt.Sprintf("mate %d", -(plies+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
