package uci

import (
	"os"
	"strconv"
	"strings"

	"negamax-chess/board"
	"negamax-chess/engine"
	"negamax-chess/render"
)

// handlePosition builds the new position aside and installs it only when the
// FEN and every move are accepted.
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		e.diag.Print("malformed position command")
		return
	}
	var (
		p    *board.Position
		rest []string
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		p, rest = board.StartPosition(), args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		if i == 1 {
			e.diag.Print("position fen: missing FEN")
			return
		}
		var err error
		p, err = board.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			e.diag.Printf("position fen: %v", err)
			return
		}
		rest = args[i:]
	default:
		e.diag.Printf("invalid position subcommand %q", args[0])
		return
	}

	if len(rest) > 0 {
		if strings.ToLower(rest[0]) != "moves" {
			e.diag.Printf("position: unexpected %q", rest[0])
			return
		}
		for _, text := range rest[1:] {
			if err := p.ApplyText(text); err != nil {
				e.diag.Printf("position: %v; position unchanged", err)
				return
			}
		}
	}
	e.pos = p
}

// handleGo starts a fixed-depth search. Clock tokens are accepted and ignored.
func (e *Engine) handleGo(args []string) {
	depth := 0
	for i := 0; i < len(args); i++ {
		tok := strings.ToLower(args[i])
		switch tok {
		case "depth":
			if i+1 >= len(args) {
				e.diag.Print("malformed go command: depth needs a value")
				return
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < engine.MinDepth || n > engine.MaxDepth {
				e.diag.Printf("malformed go command: depth %q, want %d..%d", args[i], engine.MinDepth, engine.MaxDepth)
				return
			}
			depth = n
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes", "mate":
			if i+1 < len(args) {
				i++
			}
			e.diag.Printf("go %s ignored; searching to fixed depth", tok)
		case "infinite", "ponder":
			e.diag.Printf("go %s ignored; searching to fixed depth", tok)
		default:
			e.diag.Printf("unknown go subcommand %q", args[i])
		}
	}
	e.startSearch(depth)
}

// handleSetOption accepts "name <Name...> value <V...>"; names are matched
// case-insensitively and may contain spaces.
func (e *Engine) handleSetOption(args []string) {
	var name, value []string
	var cur *[]string
	for _, tok := range args {
		switch strings.ToLower(tok) {
		case "name":
			cur = &name
			continue
		case "value":
			cur = &value
			continue
		}
		if cur == nil {
			e.diag.Print("malformed setoption command")
			return
		}
		*cur = append(*cur, tok)
	}
	if len(name) == 0 {
		e.diag.Print("malformed setoption command: missing name")
		return
	}
	opt := strings.ToLower(strings.Join(name, " "))
	val := strings.Join(value, " ")

	switch opt {
	case "hash":
		n, err := strconv.Atoi(val)
		if err != nil || n < engine.MinHashMB || n > engine.MaxHashMB {
			e.diag.Printf("setoption Hash: bad value %q, want %d..%d", val, engine.MinHashMB, engine.MaxHashMB)
			return
		}
		e.searcher.SetHash(n)
	case "depth":
		n, err := strconv.Atoi(val)
		if err != nil || n < engine.MinDepth || n > engine.MaxDepth {
			e.diag.Printf("setoption Depth: bad value %q, want %d..%d", val, engine.MinDepth, engine.MaxDepth)
			return
		}
		e.searcher.SetDepth(n)
	case "clear hash":
		e.searcher.ClearHash()
	default:
		e.diag.Printf("unknown option %q", strings.Join(name, " "))
	}
}

func (e *Engine) handleDebug(args []string) {
	if len(args) != 1 {
		e.diag.Print("malformed debug command")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		e.debug = true
	case "off":
		e.debug = false
	default:
		e.diag.Printf("malformed debug command: %q", args[0])
	}
}

// handleDisplay prints the board diagram, or with "svg <file>" writes an image.
func (e *Engine) handleDisplay(args []string) {
	if len(args) == 0 {
		e.printf("%s", render.ASCII(e.pos))
		e.println("Fen:", e.pos.FEN())
		e.printf("Key: %016x\n", e.pos.Hash())
		return
	}
	if strings.ToLower(args[0]) != "svg" || len(args) != 2 {
		e.diag.Print("usage: d [svg <file>]")
		return
	}
	if err := writeSVG(args[1], e.pos); err != nil {
		e.diag.Printf("d svg: %v", err)
		return
	}
	e.diag.Printf("wrote %s", args[1])
}

func writeSVG(path string, p *board.Position) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	opts := render.DefaultSVGOptions()
	if lm := p.LastMove(); lm.Valid() {
		opts.Highlight = board.NewMove(lm.From, lm.To, board.NoKind, 0)
	}
	return render.SVG(f, p, opts)
}

// handlePerft prints the per-move divide and the total node count.
func (e *Engine) handlePerft(args []string) {
	if len(args) != 1 {
		e.diag.Print("usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		e.diag.Printf("perft: bad depth %q", args[0])
		return
	}
	var total uint64
	for _, d := range board.PerftDivide(e.pos, depth) {
		e.printf("%s: %d\n", d.Move, d.Nodes)
		total += d.Nodes
	}
	e.println()
	e.printf("Nodes searched: %d\n", total)
}
