package processing

import (
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/parser"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func play(t *testing.T, board checkers.Board, moves ...string) *game.Game {
	t.Helper()
	g := game.New(board, checkers.White, nil)
	for _, m := range moves {
		if _, err := g.ApplyText(m); err != nil {
			t.Fatalf("ApplyText(%q): %v", m, err)
		}
	}
	return g
}

func parseOne(t *testing.T, input string) *parser.Game {
	t.Helper()
	games, err := parser.NewParser(strings.NewReader(input), nil).ParseAllGames()
	testutil.AssertNoError(t, err)
	if len(games) != 1 {
		t.Fatalf("parsed %d games, want 1", len(games))
	}
	return games[0]
}

func TestAnalyzeGame(t *testing.T) {
	t.Parallel()

	g := play(t, checkers.InitialBoard(), "22-18", "11-15", "18x11", "8x15")
	a := AnalyzeGame(g)

	testutil.AssertEqual(t, len(a.Positions), 5)
	testutil.AssertEqual(t, a.MaxRepetitions, 1)
	testutil.AssertFalse(t, a.HasRepetition)
	testutil.AssertEqual(t, a.Captures, 2)
	testutil.AssertEqual(t, a.PiecesTaken, 2)
	testutil.AssertEqual(t, a.LongestCapture, 1)
	testutil.AssertFalse(t, a.MultiJump())
	testutil.AssertEqual(t, a.Crownings, 0)
	testutil.AssertFalse(t, a.HasMaterialOdds)
	testutil.AssertEqual(t, a.FinalCounts, checkers.PieceCounts{WhiteMen: 11, BlackMen: 11, Empty: 42})
}

func TestAnalyzeGame_Repetition(t *testing.T) {
	t.Parallel()

	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		testutil.Pos(0, 7): checkers.WhiteQueen,
		testutil.Pos(7, 0): checkers.BlackQueen,
	})
	shuffle := []string{"29-25", "4-8", "25-29", "8-4"}
	g := play(t, board, append(shuffle, shuffle...)...)

	a := AnalyzeGame(g)
	testutil.AssertEqual(t, a.MaxRepetitions, 3)
	testutil.AssertTrue(t, a.HasRepetition)
	testutil.AssertEqual(t, a.Positions[0], a.Positions[8])
}

func TestAnalyzeGame_MultiJumpAndOdds(t *testing.T) {
	t.Parallel()

	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		testutil.Pos(1, 6): checkers.WhiteMan,
		testutil.Pos(2, 5): checkers.BlackMan,
		testutil.Pos(4, 3): checkers.BlackMan,
	})
	a := AnalyzeGame(play(t, board, "25x18x11"))

	testutil.AssertTrue(t, a.HasMaterialOdds)
	testutil.AssertEqual(t, a.Captures, 1)
	testutil.AssertEqual(t, a.PiecesTaken, 2)
	testutil.AssertTrue(t, a.MultiJump())
	testutil.AssertEqual(t, a.FinalCounts.BlackMen, 0)
}

func TestAnalyzeGame_Crowning(t *testing.T) {
	t.Parallel()

	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		testutil.Pos(2, 1): checkers.WhiteMan,
		testutil.Pos(7, 4): checkers.BlackMan,
	})
	a := AnalyzeGame(play(t, board, "6-1"))
	testutil.AssertEqual(t, a.Crownings, 1)
	testutil.AssertEqual(t, a.FinalCounts.WhiteQueens, 1)
}

const fullHeader = `[Event "Club"]
[Site "Hall"]
[Date "2024.01.01"]
[Round "1"]
[White "Ann"]
[Black "Bo"]
[Result "*"]

`

func TestValidateGame(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()
		v, g := ValidateGame(parseOne(t, fullHeader+"1. 22-18 11-15 *\n"), nil, 1)
		testutil.AssertTrue(t, v.Valid)
		testutil.AssertTrue(t, v.Strict())
		testutil.AssertEqual(t, g.Plies(), 2)
	})

	t.Run("missing tags", func(t *testing.T) {
		t.Parallel()
		v, g := ValidateGame(parseOne(t, "[Event \"Club\"]\n\n1. 22-18 *\n"), nil, 1)
		testutil.AssertTrue(t, v.Valid)
		testutil.AssertFalse(t, v.Strict())
		testutil.AssertEqual(t, len(v.ParseErrors), 5)
		testutil.AssertEqual(t, v.ParseErrors[0], "missing required tag: Site")
		testutil.AssertTrue(t, g != nil)
	})

	t.Run("chess result", func(t *testing.T) {
		t.Parallel()
		header := strings.Replace(fullHeader, `[Result "*"]`, `[Result "1-0"]`, 1)
		v, _ := ValidateGame(parseOne(t, header+"1. 22-18\n"), nil, 1)
		testutil.AssertEqual(t, v.ParseErrors, []string{"invalid result: 1-0"})
	})

	t.Run("illegal move", func(t *testing.T) {
		t.Parallel()
		v, g := ValidateGame(parseOne(t, fullHeader+"1. 22-18 18-14 *\n"), nil, 1)
		testutil.AssertFalse(t, v.Valid)
		testutil.AssertEqual(t, v.ErrorPly, 2)
		testutil.AssertContains(t, v.ErrorMsg, "18-14")
		testutil.AssertTrue(t, g == nil)
	})
}

func TestHasComments(t *testing.T) {
	t.Parallel()

	testutil.AssertFalse(t, HasComments(parseOne(t, "1. 22-18 11-15 *\n")))
	testutil.AssertTrue(t, HasComments(parseOne(t, "1. 22-18 {book} 11-15 *\n")))
	testutil.AssertTrue(t, HasComments(parseOne(t, "{annotated by Ann}\n1. 22-18 *\n")))
}

func TestSplitVariations(t *testing.T) {
	t.Parallel()

	pg := parseOne(t, `[Event "Club"]

1. 22-18 (1. 24-19 11-15 (1... 9-13 2. 28-24) 2. 28-24) 11-15 2. 18x11 8x15 2-0
`)
	games := SplitVariations(pg)
	testutil.AssertEqual(t, len(games), 3)

	testutil.AssertEqual(t, games[0].MoveTexts(), []string{"22-18", "11-15", "18x11", "8x15"})
	testutil.AssertEqual(t, games[0].Result, parser.ResultWhiteWins)
	testutil.AssertEqual(t, games[1].MoveTexts(), []string{"24-19", "11-15", "28-24"})
	testutil.AssertEqual(t, games[2].MoveTexts(), []string{"24-19", "9-13", "28-24"})

	for _, g := range games {
		testutil.AssertEqual(t, g.GetTag("Event"), "Club")
		for _, m := range g.Moves {
			testutil.AssertEqual(t, len(m.Variations), 0)
		}
	}
	testutil.AssertEqual(t, games[1].Result, parser.ResultUnknown)
	testutil.AssertEqual(t, games[1].GetTag("Result"), parser.ResultUnknown)

	// The original keeps its variations.
	testutil.AssertEqual(t, len(pg.Moves[0].Variations), 1)
}

func TestSplitVariations_NoVariations(t *testing.T) {
	t.Parallel()

	games := SplitVariations(parseOne(t, "1. 22-18 11-15 *\n"))
	testutil.AssertEqual(t, len(games), 1)
	testutil.AssertEqual(t, games[0].MoveTexts(), []string{"22-18", "11-15"})
}
