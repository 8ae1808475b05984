package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/slices"

	"negamax-chess/board"
	"negamax-chess/perftcheck"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Compare the count against every reference generator")
	oracle := flag.String("oracle", "", "With -divide, print only the moves that differ from this reference generator")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide && *oracle != "" {
		o, ok := perftcheck.Lookup(*oracle)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown oracle %q\n", *oracle)
			os.Exit(2)
		}
		diffs, err := perftcheck.DivideDiffs(*fen, *depth, o)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", o.Name(), err)
			os.Exit(2)
		}
		for _, d := range diffs {
			fmt.Printf("%s: engine %d %s %d\n", d.Move, d.Engine, o.Name(), d.Oracle)
		}
		if len(diffs) != 0 {
			os.Exit(1)
		}
		fmt.Println("divide matches", o.Name())
		return
	}

	if *divide {
		div := board.PerftDivide(pos, *depth)
		// Sort moves for stable output
		slices.SortFunc(div, func(a, b board.DivideEntry) bool { return a.Move.String() < b.Move.String() })
		var sum uint64
		for _, d := range div {
			fmt.Printf("%s: %d\n", d.Move, d.Nodes)
			sum += d.Nodes
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *verify {
		c, err := perftcheck.Compare(*fen, *depth, perftcheck.Oracles()...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(c)
		if len(c.Mismatches()) != 0 {
			os.Exit(1)
		}
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
