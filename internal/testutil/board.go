package testutil

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// MustSample returns sample board n, failing the test on error.
func MustSample(t testing.TB, n int) checkers.Board {
	t.Helper()
	b, err := checkers.SampleBoard(n)
	if err != nil {
		t.Fatalf("SampleBoard(%d): %v", n, err)
	}
	return b
}

// MustDiagram parses a diagram, failing the test on error.
func MustDiagram(t testing.TB, text string) checkers.Board {
	t.Helper()
	b, err := checkers.ParseDiagram("test", text)
	if err != nil {
		t.Fatalf("ParseDiagram: %v", err)
	}
	return b
}

// BoardWith returns an empty board carrying the given cells.
func BoardWith(cells map[checkers.Position]checkers.Cell) checkers.Board {
	b := checkers.NewEmptyBoard()
	for p, c := range cells {
		b.Replace(p, c)
	}
	return b
}

// MoveEnd is the origin and destination of a move, without its board.
type MoveEnd struct {
	From, To checkers.Position
}

// Ends strips the resulting boards from moves so they compare compactly.
func Ends(moves []checkers.Move) []MoveEnd {
	out := make([]MoveEnd, 0, len(moves))
	for _, m := range moves {
		out = append(out, MoveEnd{From: m.From, To: m.To})
	}
	return out
}

// Pos is shorthand for checkers.Position{X: x, Y: y}.
func Pos(x, y int) checkers.Position {
	return checkers.Position{X: x, Y: y}
}
