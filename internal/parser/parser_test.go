package parser

import (
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/testutil"
)

func parseAll(t *testing.T, input string) []*Game {
	t.Helper()
	games, err := NewParser(strings.NewReader(input), nil).ParseAllGames()
	testutil.AssertNoError(t, err)
	return games
}

const twoGames = `[Event "Club match"]
[Round "1"]
[White "Ann"]
[Black "Bo"]
[Result "2-0"]

1. 22-18 11-15 2. 18x11 8x15 2-0

[Event "Club match"]
[Round "2"]

1. 24-19 {quiet} 9-14! 2. 22-17 (2. 28-24 5-9) 14x21 *
`

func TestParser_Tags(t *testing.T) {
	t.Parallel()

	games := parseAll(t, twoGames)
	testutil.AssertEqual(t, len(games), 2)

	g := games[0]
	testutil.AssertEqual(t, g.TagOrder, []string{"Event", "Round", "White", "Black", "Result"})
	testutil.AssertEqual(t, g.GetTag("White"), "Ann")
	testutil.AssertEqual(t, g.GetTag("Missing"), "")
	testutil.AssertEqual(t, g.StartLine, uint(1))

	// The Result tag is filled in from the move text when absent.
	testutil.AssertEqual(t, games[1].GetTag("Result"), ResultUnknown)
	testutil.AssertEqual(t, games[1].TagOrder, []string{"Event", "Round", "Result"})
}

func TestParser_MainLine(t *testing.T) {
	t.Parallel()

	games := parseAll(t, twoGames)

	testutil.AssertEqual(t, games[0].MoveTexts(), []string{"22-18", "11-15", "18x11", "8x15"})
	testutil.AssertEqual(t, games[0].PlyCount(), 4)
	testutil.AssertEqual(t, games[0].Result, ResultWhiteWins)

	second := games[1]
	testutil.AssertEqual(t, second.MoveTexts(), []string{"24-19", "9-14", "22-17", "14x21"})
	testutil.AssertEqual(t, second.Result, ResultUnknown)
	testutil.AssertEqual(t, second.Moves[0].Comments, []string{"quiet"})
	testutil.AssertEqual(t, second.Moves[1].NAGs, []string{"$1"})
}

func TestParser_Variations(t *testing.T) {
	t.Parallel()

	games := parseAll(t, twoGames)
	move := games[1].Moves[2]
	testutil.AssertEqual(t, len(move.Variations), 1)

	var texts []string
	for _, m := range move.Variations[0].Moves {
		texts = append(texts, m.Text)
	}
	testutil.AssertEqual(t, texts, []string{"28-24", "5-9"})
	testutil.AssertEqual(t, move.Variations[0].Result, "")
}

func TestParser_NestedVariationWithResult(t *testing.T) {
	t.Parallel()

	games := parseAll(t, "1. 22-18 (1. 24-19 11-15 (1... 9-13) 0-2) 11-15 1-1\n")
	testutil.AssertEqual(t, len(games), 1)

	g := games[0]
	testutil.AssertEqual(t, g.MoveTexts(), []string{"22-18", "11-15"})
	testutil.AssertEqual(t, g.Result, ResultDraw)

	outer := g.Moves[0].Variations[0]
	testutil.AssertEqual(t, outer.Result, ResultBlackWins)
	testutil.AssertEqual(t, len(outer.Moves), 2)
	testutil.AssertEqual(t, outer.Moves[1].Variations[0].Moves[0].Text, "9-13")
}

func TestParser_Comments(t *testing.T) {
	t.Parallel()

	input := `{before the tags}
[Event "x"]
{before the moves}
1. 22-18 11-15 {after the last move} *
`
	games := parseAll(t, input)
	testutil.AssertEqual(t, len(games), 1)

	g := games[0]
	testutil.AssertEqual(t, g.PrefixComment, []string{"before the tags", "before the moves"})
	testutil.AssertEqual(t, g.Moves[1].Comments, []string{"after the last move"})
}

func TestParser_NoTags(t *testing.T) {
	t.Parallel()

	games := parseAll(t, "1. 22-18 11-15 *\n\n1. 21-17 *\n")
	testutil.AssertEqual(t, len(games), 2)
	testutil.AssertEqual(t, len(games[0].Tags), 1)
	testutil.AssertEqual(t, games[1].MoveTexts(), []string{"21-17"})
}

func TestParser_ResultFromTag(t *testing.T) {
	t.Parallel()

	games := parseAll(t, "[Result \"0-2\"]\n\n1. 22-18\n")
	testutil.AssertEqual(t, len(games), 1)
	testutil.AssertEqual(t, games[0].Result, ResultBlackWins)
}

func TestParser_Empty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n\n", "% only an escape line\n"} {
		games := parseAll(t, input)
		testutil.AssertEqual(t, len(games), 0, "input %q", input)
	}
}

func TestParser_ParseGameOneAtATime(t *testing.T) {
	t.Parallel()

	p := NewParser(strings.NewReader(twoGames), nil)
	first, err := p.ParseGame()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, first.GetTag("Round"), "1")

	second, err := p.ParseGame()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second.GetTag("Round"), "2")

	done, err := p.ParseGame()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, done == nil)
}

func TestGame_SetTag(t *testing.T) {
	t.Parallel()

	g := NewGame()
	g.SetTag("Event", "a")
	g.SetTag("Site", "b")
	g.SetTag("Event", "c")
	testutil.AssertEqual(t, g.TagOrder, []string{"Event", "Site"})
	testutil.AssertEqual(t, g.GetTag("Event"), "c")
}
