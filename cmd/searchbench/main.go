package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"negamax-chess/board"
	"negamax-chess/engine"
)

// Positions searched when no -fen is given.
var suite = []string{
	board.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w",
	"6k1/5ppp/8/8/8/8/8/R5K1 w",
}

func main() {
	depthFlag := flag.Int("depth", 5, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run per position")
	fenFlag := flag.String("fen", "", "FEN to search (empty = built-in suite)")
	hashFlag := flag.Int("hash", engine.DefaultOptions().HashMB, "transposition table size in MB")
	verbose := flag.Bool("v", false, "print an info line per completed depth")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	opts := engine.Options{HashMB: *hashFlag, Depth: *depthFlag}
	if err := opts.Validate(); err != nil {
		log.Fatalf("bad options: %v", err)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fens := suite
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}

	fmt.Printf("searchbench: positions=%d depth=%d repeat=%d hash=%dMB\n", len(fens), *depthFlag, *repeatFlag, *hashFlag)

	var totalNodes uint64
	startAll := time.Now()
	for _, fen := range fens {
		for i := 0; i < *repeatFlag; i++ {
			// Fresh position and table for each run
			pos, err := board.ParseFEN(fen)
			if err != nil {
				log.Fatalf("ParseFEN %q: %v", fen, err)
			}
			s := engine.NewSearcher(opts)
			if *verbose {
				s.OnInfo = func(info engine.Info) {
					fmt.Printf("  info depth %d score %s nodes %d time %d pv %s\n",
						info.Depth, engine.ScoreString(info.Score), info.Nodes, info.Elapsed.Milliseconds(), info.PV)
				}
			}

			iterStart := time.Now()
			res := s.Search(context.Background(), pos, *depthFlag)
			iterElapsed := time.Since(iterStart)
			totalNodes += res.Stats.Nodes

			fmt.Printf("%s\n  bestmove %s score %s depth %d time=%v %s\n",
				fen, res.Move, engine.ScoreString(res.Score), res.Depth, iterElapsed, res.Stats)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d nps: %.0f\n", totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
