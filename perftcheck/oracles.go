package perftcheck

import (
	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// Dragontooth counts with dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) Perft(fen string, depth int) (n uint64, err error) {
	defer guard("dragontoothmg", &err)
	b := dragontoothmg.ParseFen(fen)
	return dragontoothPerft(&b, depth), nil
}

func (Dragontooth) Divide(fen string, depth int) (div map[string]uint64, err error) {
	defer guard("dragontoothmg", &err)
	b := dragontoothmg.ParseFen(fen)
	div = make(map[string]uint64)
	if depth <= 0 {
		return div, nil
	}
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		div[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return div, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Goose counts with the GooseEngineMG move generator.
type Goose struct{}

func (Goose) Name() string { return "goosemg" }

func (Goose) Perft(fen string, depth int) (n uint64, err error) {
	defer guard("goosemg", &err)
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, err
	}
	return goosemg.Perft(b, depth), nil
}

func (Goose) Divide(fen string, depth int) (div map[string]uint64, err error) {
	defer guard("goosemg", &err)
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	div = make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(b, depth) {
		div[m.String()] = n
	}
	return div, nil
}

// Notnil counts with notnil/chess. It is far slower than the others and
// suits depths up to 3.
type Notnil struct{}

func (Notnil) Name() string { return "notnil/chess" }

func (Notnil) Perft(fen string, depth int) (n uint64, err error) {
	defer guard("notnil/chess", &err)
	pos, err := notnilPosition(fen)
	if err != nil {
		return 0, err
	}
	return notnilPerft(pos, depth), nil
}

func (Notnil) Divide(fen string, depth int) (div map[string]uint64, err error) {
	defer guard("notnil/chess", &err)
	pos, err := notnilPosition(fen)
	if err != nil {
		return nil, err
	}
	div = make(map[string]uint64)
	if depth <= 0 {
		return div, nil
	}
	var uci chess.UCINotation
	for _, m := range pos.ValidMoves() {
		div[uci.Encode(pos, m)] = notnilPerft(pos.Update(m), depth-1)
	}
	return div, nil
}

func notnilPosition(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt).Position(), nil
}

func notnilPerft(pos *chess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += notnilPerft(pos.Update(m), depth-1)
	}
	return nodes
}
