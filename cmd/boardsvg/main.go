package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"negamax-chess/board"
	"negamax-chess/render"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "position to draw")
	moves := flag.String("moves", "", "space separated moves played from -fen before drawing")
	out := flag.String("out", "board.svg", "output file, - for stdout")
	size := flag.Int("size", render.DefaultSVGOptions().Size, "square size in pixels")
	coords := flag.Bool("coords", true, "draw file and rank labels")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	opts := render.SVGOptions{Size: *size, Coordinates: *coords}
	for _, text := range strings.Fields(*moves) {
		m, err := pos.FindMove(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		pos.Make(m)
		opts.Highlight = m
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *out, err)
			os.Exit(2)
		}
		w = f
	}
	err = render.SVG(w, pos, opts)
	if w != os.Stdout {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "writing svg: %v\n", err)
		os.Exit(1)
	}
}
