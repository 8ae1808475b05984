package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"negamax-chess/board"
)

func TestASCIIStartPosition(t *testing.T) {
	want := "|r|n|b|q|k|b|n|r|\n" +
		"|p|p|p|p|p|p|p|p|\n" +
		"| | | | | | | | |\n" +
		"| | | | | | | | |\n" +
		"| | | | | | | | |\n" +
		"| | | | | | | | |\n" +
		"|P|P|P|P|P|P|P|P|\n" +
		"|R|N|B|Q|K|B|N|R|\n"
	if got := ASCII(board.StartPosition()); got != want {
		t.Fatalf("ASCII start:\n%s\nwant:\n%s", got, want)
	}
}

func TestASCIILineShape(t *testing.T) {
	p, err := board.ParseFEN("k7/8/8/8/6rR/8/8/K7 w")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(ASCII(p), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("lines: got %d want 8", len(lines))
	}
	for _, l := range lines {
		if len(l) != 17 {
			t.Fatalf("line %q: got length %d want 17", l, len(l))
		}
	}
	if lines[4] != "| | | | | | |r|R|" {
		t.Fatalf("rank 4: got %q", lines[4])
	}
}

func TestSVGContainsPieces(t *testing.T) {
	var buf bytes.Buffer
	p := board.StartPosition()
	m, err := p.FindMove("e2e4")
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	opts := DefaultSVGOptions()
	opts.Highlight = m
	if err := SVG(&buf, p, opts); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document: %.80s", out)
	}
	if n := strings.Count(out, "♟"); n != 8 {
		t.Fatalf("black pawns drawn: got %d want 8", n)
	}
	if n := strings.Count(out, "fill-opacity:0.8"); n != 2 {
		t.Fatalf("highlighted squares: got %d want 2", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGReportsWriteErrors(t *testing.T) {
	if err := SVG(failingWriter{}, board.StartPosition(), DefaultSVGOptions()); err == nil {
		t.Fatalf("write error not reported")
	}
}
