// Package perftcheck cross-checks board.Perft against independent move
// generators. Each oracle receives the six-field FEN of the position so that
// castling rights and the en passant square are unambiguous.
package perftcheck

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"negamax-chess/board"
)

// Oracle counts perft leaves with a third-party generator.
type Oracle interface {
	Name() string
	Perft(fen string, depth int) (uint64, error)
	// Divide returns the leaf count below each root move, keyed by the move in
	// long algebraic notation.
	Divide(fen string, depth int) (map[string]uint64, error)
}

// Oracles returns every available oracle, sorted by name.
func Oracles() []Oracle {
	return []Oracle{Dragontooth{}, Goose{}, Notnil{}}
}

// Lookup finds an oracle by name.
func Lookup(name string) (Oracle, bool) {
	all := Oracles()
	i := slices.IndexFunc(all, func(o Oracle) bool { return o.Name() == name })
	if i < 0 {
		return nil, false
	}
	return all[i], true
}

// Report is one oracle's answer.
type Report struct {
	Oracle string
	Nodes  uint64
	Err    error
}

// Comparison is the engine's count next to each oracle's.
type Comparison struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Reports []Report
}

// Mismatches lists the reports that failed or disagree with the engine.
func (c Comparison) Mismatches() []Report {
	var bad []Report
	for _, r := range c.Reports {
		if r.Err != nil || r.Nodes != c.Nodes {
			bad = append(bad, r)
		}
	}
	return bad
}

func (c Comparison) String() string {
	s := fmt.Sprintf("perft(%d) = %d", c.Depth, c.Nodes)
	for _, r := range c.Reports {
		switch {
		case r.Err != nil:
			s += fmt.Sprintf("; %s: %v", r.Oracle, r.Err)
		case r.Nodes != c.Nodes:
			s += fmt.Sprintf("; %s: %d MISMATCH", r.Oracle, r.Nodes)
		default:
			s += fmt.Sprintf("; %s: ok", r.Oracle)
		}
	}
	return s
}

// Compare runs board.Perft on fen and asks each oracle for the same count.
func Compare(fen string, depth int, oracles ...Oracle) (Comparison, error) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		return Comparison{}, err
	}
	full := p.FullFEN()
	c := Comparison{FEN: full, Depth: depth, Nodes: board.Perft(p, depth)}
	for _, o := range oracles {
		n, err := o.Perft(full, depth)
		c.Reports = append(c.Reports, Report{Oracle: o.Name(), Nodes: n, Err: err})
	}
	return c, nil
}

// DivideDiff is one root move whose subtree count differs. A zero Engine or
// Oracle count means the move is missing on that side.
type DivideDiff struct {
	Move           string
	Engine, Oracle uint64
}

// DivideDiffs compares the engine's divide with the oracle's, sorted by move.
func DivideDiffs(fen string, depth int, o Oracle) ([]DivideDiff, error) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	theirs, err := o.Divide(p.FullFEN(), depth)
	if err != nil {
		return nil, err
	}
	ours := make(map[string]uint64)
	for _, d := range board.PerftDivide(p, depth) {
		ours[d.Move.String()] = d.Nodes
	}

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var diffs []DivideDiff
	for _, k := range keys {
		if ours[k] != theirs[k] {
			diffs = append(diffs, DivideDiff{Move: k, Engine: ours[k], Oracle: theirs[k]})
		}
	}
	return diffs, nil
}

// guard turns a panic inside a third-party generator into an error.
func guard(name string, err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%s: panic: %v", name, v)
	}
}
