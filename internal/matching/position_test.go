package matching

import (
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

// fenAfter returns the FEN after the first n plies of moves.
func fenAfter(t *testing.T, n int, moves ...string) string {
	t.Helper()
	g := playGame(t, nil, moves[:n]...)
	return g.FEN()
}

func TestPositionMatcher(t *testing.T) {
	t.Parallel()

	g := playGame(t, nil, exchange...)

	pm := NewPositionMatcher()
	testutil.AssertFalse(t, pm.Match(g))
	testutil.AssertNoError(t, pm.AddFEN(fenAfter(t, 2, exchange...), "Old Fourteenth"))
	testutil.AssertEqual(t, pm.PositionCount(), 1)

	e := pm.Find(g)
	testutil.AssertTrue(t, e != nil)
	testutil.AssertEqual(t, e.Label, "Old Fourteenth")
	testutil.AssertTrue(t, pm.Match(g))
	testutil.AssertEqual(t, pm.Name(), "PositionMatcher")
}

func TestPositionMatcher_StartAndSideToMove(t *testing.T) {
	t.Parallel()

	g := playGame(t, nil, exchange...)

	pm := NewPositionMatcher()
	testutil.AssertNoError(t, pm.AddFEN(engine.InitialFEN, ""))
	e := pm.Find(g)
	testutil.AssertTrue(t, e != nil)
	testutil.AssertEqual(t, e.Label, engine.InitialFEN, "label defaults to the FEN")

	// The same men with Black to move never occur.
	pm = NewPositionMatcher()
	blackToMove := "B" + strings.TrimPrefix(engine.InitialFEN, "W")
	testutil.AssertNoError(t, pm.AddFEN(blackToMove, ""))
	testutil.AssertFalse(t, pm.Match(g))
}

func TestPositionMatcher_AddPosition(t *testing.T) {
	t.Parallel()

	g := playGame(t, nil, exchange...)
	pm := NewPositionMatcher()
	pm.AddPosition(&PositionEntry{Label: "final", Board: g.Board(), ToMove: checkers.White})
	testutil.AssertEqual(t, pm.Find(g).Label, "final")
}

func TestPositionMatcher_BadFEN(t *testing.T) {
	t.Parallel()

	pm := NewPositionMatcher()
	testutil.AssertErrorIs(t, pm.AddFEN("X:W1:B2", ""), errors.ErrInvalidFEN)
	testutil.AssertEqual(t, pm.PositionCount(), 0)
}
