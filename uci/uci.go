// Package uci implements the line-oriented command loop that drives the
// engine: a subset of the Universal Chess Interface plus a few debugging
// commands (d, eval, perft).
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"negamax-chess/board"
	"negamax-chess/engine"
)

const (
	EngineName   = "negamax-chess"
	EngineAuthor = "negamax-chess developers"
)

// Engine holds the state of one command session. Protocol replies go to the
// output writer; diagnostics go to a separate stream as "info string" lines.
type Engine struct {
	out   io.Writer
	outMu sync.Mutex
	diag  *log.Logger

	pos      *board.Position
	searcher *engine.Searcher
	debug    bool

	cancel context.CancelFunc
	done   chan struct{}

	// OnPanic, when set, receives any panic raised while handling a command
	// or searching, together with the position being worked on. The panic is
	// re-raised when OnPanic is nil.
	OnPanic func(v any, fen string)
}

// New returns a session set up at the start position.
func New(out, diag io.Writer, opts engine.Options) *Engine {
	e := &Engine{
		out:      out,
		diag:     log.New(diag, "info string ", 0),
		pos:      board.StartPosition(),
		searcher: engine.NewSearcher(opts),
	}
	e.searcher.OnInfo = e.printInfo
	return e
}

// Position returns the current position. It must not be called while a
// search is running.
func (e *Engine) Position() *board.Position { return e.pos }

func (e *Engine) println(a ...any) {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	fmt.Fprintln(e.out, a...)
}

func (e *Engine) printf(format string, a ...any) {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	fmt.Fprintf(e.out, format, a...)
}

func (e *Engine) recoverPanic(fen string) {
	if v := recover(); v != nil {
		if e.OnPanic == nil {
			panic(v)
		}
		e.OnPanic(v, fen)
	}
}

// Run reads commands until quit or end of input. A search started by go runs
// in the background so that stop and quit are seen while it thinks; other
// commands wait for it to finish. At end of input Run waits for the running
// search and returns the reader's error, if any.
func (e *Engine) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := e.handle(scanner.Text()); quit {
			return nil
		}
	}
	e.wait()
	return scanner.Err()
}

// handle dispatches one line and reports whether the session should end.
func (e *Engine) handle(line string) (quit bool) {
	defer e.recoverPanic(e.pos.FullFEN())

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]

	switch cmd {
	case "quit":
		e.stop()
		return true
	case "stop":
		e.stop()
		return false
	case "isready":
		e.println("readyok")
		return false
	}

	e.wait()
	switch cmd {
	case "uci":
		e.println("id name", EngineName)
		e.println("id author", EngineAuthor)
		opts := e.searcher.Options()
		e.printf("option name Hash type spin default %d min %d max %d\n", opts.HashMB, engine.MinHashMB, engine.MaxHashMB)
		e.printf("option name Depth type spin default %d min %d max %d\n", opts.Depth, engine.MinDepth, engine.MaxDepth)
		e.println("option name Clear Hash type button")
		e.println("uciok")
	case "ucinewgame":
		e.pos = board.StartPosition()
		e.searcher.NewGame()
	case "position":
		e.handlePosition(args)
	case "go":
		e.handleGo(args)
	case "setoption":
		e.handleSetOption(args)
	case "debug":
		e.handleDebug(args)
	case "d":
		e.handleDisplay(args)
	case "eval":
		e.println(engine.Explain(e.pos))
	case "perft":
		e.handlePerft(args)
	default:
		e.diag.Printf("unknown command %q", tokens[0])
	}
	return false
}

// stop cancels the running search, if any, and waits for its bestmove line.
func (e *Engine) stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wait()
}

func (e *Engine) wait() {
	if e.done == nil {
		return
	}
	<-e.done
	e.cancel()
	e.done, e.cancel = nil, nil
}

func (e *Engine) printInfo(info engine.Info) {
	e.printf("info depth %d score %s nodes %d time %d nps %d pv %s\n",
		info.Depth, engine.ScoreString(info.Score), info.Nodes,
		info.Elapsed.Milliseconds(), info.NPS(), info.PV)
}

// startSearch runs a search on a copy of the current position in the
// background and prints bestmove when it ends.
func (e *Engine) startSearch(depth int) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	e.cancel, e.done = cancel, done

	root := e.pos.Clone()
	fen := root.FullFEN()
	go func() {
		defer close(done)
		defer e.recoverPanic(fen)
		res := e.searcher.Search(ctx, root, depth)
		if e.debug {
			e.diag.Printf("depth %d stopped %v %s", res.Depth, res.Stopped, res.Stats)
		}
		e.println("bestmove", res.Move)
	}()
}
