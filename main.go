package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"negamax-chess/engine"
	"negamax-chess/uci"
)

func main() {
	defaults := engine.DefaultOptions()
	hash := flag.Int("hash", defaults.HashMB, "Transposition table size in MB")
	depth := flag.Int("depth", defaults.Depth, "Search depth used by go without a depth")
	bugLog := flag.String("buglog", "chess_bugs.log", "File that records crashes, one line each")
	flag.Parse()

	opts := engine.Options{HashMB: *hash, Depth: *depth}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	e := uci.New(os.Stdout, os.Stderr, opts)
	e.OnPanic = func(v any, fen string) {
		fmt.Fprintf(os.Stderr, "info string fatal: %v\n", v)
		if err := appendBugLog(*bugLog, v, fen); err != nil {
			fmt.Fprintf(os.Stderr, "info string writing %s: %v\n", *bugLog, err)
		}
		os.Exit(1)
	}
	if err := e.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "info string reading input: %v\n", err)
		os.Exit(1)
	}
}

func appendBugLog(path string, v any, fen string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(f, "%s\t%v\t%s\n", time.Now().Format(time.RFC3339), v, fen)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
