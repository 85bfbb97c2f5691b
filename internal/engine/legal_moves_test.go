package engine

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

var pos = testutil.Pos

func TestAvailableMoves_InitialBoard(t *testing.T) {
	board := checkers.InitialBoard()

	tests := []struct {
		name   string
		player checkers.Player
		want   []testutil.MoveEnd
	}{
		{
			name:   "white",
			player: checkers.White,
			want: []testutil.MoveEnd{
				{From: pos(0, 5), To: pos(1, 4)},
				{From: pos(2, 5), To: pos(1, 4)},
				{From: pos(2, 5), To: pos(3, 4)},
				{From: pos(4, 5), To: pos(3, 4)},
				{From: pos(4, 5), To: pos(5, 4)},
				{From: pos(6, 5), To: pos(5, 4)},
				{From: pos(6, 5), To: pos(7, 4)},
			},
		},
		{
			name:   "black",
			player: checkers.Black,
			want: []testutil.MoveEnd{
				{From: pos(1, 2), To: pos(0, 3)},
				{From: pos(1, 2), To: pos(2, 3)},
				{From: pos(3, 2), To: pos(2, 3)},
				{From: pos(3, 2), To: pos(4, 3)},
				{From: pos(5, 2), To: pos(4, 3)},
				{From: pos(5, 2), To: pos(6, 3)},
				{From: pos(7, 2), To: pos(6, 3)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			moves := AvailableMoves(&board, tt.player)
			testutil.AssertEqual(t, testutil.Ends(moves), tt.want)
			for _, m := range moves {
				testutil.AssertFalse(t, m.IsCapture(), "move %s", MoveText(m))
			}
		})
	}
}

func TestAvailableMoves_DoesNotModifyBoard(t *testing.T) {
	board := testutil.MustSample(t, 2)
	before := board
	_ = AvailableMoves(&board, checkers.White)
	_ = AvailableMoves(&board, checkers.Black)
	testutil.AssertEqual(t, board, before)
}

func TestAvailableMoves_SimpleMoveBoard(t *testing.T) {
	board := checkers.InitialBoard()
	moves := AvailableMoves(&board, checkers.White)

	want := checkers.InitialBoard()
	want.Replace(pos(1, 4), checkers.WhiteMan)
	want.Remove(pos(0, 5))
	testutil.AssertEqual(t, moves[0].Board, want)

	counts := moves[0].Board.Count()
	testutil.AssertEqual(t, counts, checkers.PieceCounts{WhiteMen: 12, BlackMen: 12, Empty: 40})
}

func TestAvailableMoves_MandatoryCapture(t *testing.T) {
	board := testutil.MustSample(t, 2)

	t.Run("white", func(t *testing.T) {
		moves := AvailableMoves(&board, checkers.White)
		testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{
			{From: pos(4, 5), To: pos(2, 3)},
			{From: pos(4, 5), To: pos(6, 3)},
			{From: pos(6, 5), To: pos(4, 3)},
		})
		for _, m := range moves {
			testutil.AssertTrue(t, m.IsCapture(), "move %s", MoveText(m))
		}
	})

	t.Run("black", func(t *testing.T) {
		moves := AvailableMoves(&board, checkers.Black)
		testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{
			{From: pos(1, 0), To: pos(3, 2)},
			{From: pos(3, 4), To: pos(5, 6)},
			{From: pos(5, 4), To: pos(3, 6)},
			{From: pos(5, 4), To: pos(7, 6)},
		})
	})
}

func TestCaptureChains_DoubleJump(t *testing.T) {
	board := testutil.MustSample(t, 1)
	moves := AvailableMoves(&board, checkers.White)

	if len(moves) != 1 {
		t.Fatalf("AvailableMoves() returned %d moves, want 1", len(moves))
	}
	m := moves[0]
	testutil.AssertEqual(t, m.From, pos(1, 6), "chain keeps its origin")
	testutil.AssertEqual(t, m.To, pos(5, 2))
	testutil.AssertEqual(t, m.Path, []checkers.Position{pos(3, 4), pos(5, 2)})
	testutil.AssertEqual(t, m.Jumps(), 2)

	want := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		pos(5, 2): checkers.WhiteMan,
		pos(6, 3): checkers.BlackMan,
	})
	testutil.AssertEqual(t, m.Board, want)
}

func TestCaptureChains_PromotionOnLanding(t *testing.T) {
	board := testutil.MustSample(t, 1)
	moves := AvailableMoves(&board, checkers.Black)

	testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{{From: pos(2, 5), To: pos(0, 7)}})
	testutil.AssertEqual(t, moves[0].Board.CellAt(pos(0, 7)), checkers.BlackQueen)
	testutil.AssertEqual(t, moves[0].Board.CellAt(pos(1, 6)), checkers.DarkSquare)
}

func TestCaptureChains_PromotionEndsChain(t *testing.T) {
	// A Queen on (3,0) could go on to jump (2,1); the promoted Man may not.
	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		pos(5, 2): checkers.WhiteMan,
		pos(4, 1): checkers.BlackMan,
		pos(2, 1): checkers.BlackMan,
	})
	moves := AvailableMoves(&board, checkers.White)

	testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{{From: pos(5, 2), To: pos(3, 0)}})
	testutil.AssertEqual(t, moves[0].Board.CellAt(pos(3, 0)), checkers.WhiteQueen)
	testutil.AssertEqual(t, moves[0].Board.CellAt(pos(2, 1)), checkers.BlackMan)
}

func TestCaptureChains_Branches(t *testing.T) {
	// From (3,4) the chain splits over (2,3) and (4,3).
	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		pos(5, 6): checkers.WhiteMan,
		pos(4, 5): checkers.BlackMan,
		pos(2, 3): checkers.BlackMan,
		pos(4, 3): checkers.BlackMan,
	})
	moves := CaptureChains(&board, pos(5, 6), checkers.Piece{Player: checkers.White, Rank: checkers.Man})

	testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{
		{From: pos(5, 6), To: pos(1, 2)},
		{From: pos(5, 6), To: pos(5, 2)},
	})
	testutil.AssertEqual(t, moves[0].Path, []checkers.Position{pos(3, 4), pos(1, 2)})
	testutil.AssertEqual(t, moves[1].Path, []checkers.Position{pos(3, 4), pos(5, 2)})
	testutil.AssertEqual(t, moves[0].Board.CellAt(pos(4, 3)), checkers.BlackMan, "sibling branch board untouched")
	testutil.AssertEqual(t, moves[1].Board.CellAt(pos(2, 3)), checkers.BlackMan, "sibling branch board untouched")
}

func TestCaptureChains_DepthFirstOrder(t *testing.T) {
	// The up-left capture continues to (1,2); the up-right one stops at
	// (7,4). The longer branch is still listed first.
	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		pos(5, 6): checkers.WhiteMan,
		pos(4, 5): checkers.BlackMan,
		pos(2, 3): checkers.BlackMan,
		pos(6, 5): checkers.BlackMan,
	})
	moves := CaptureChains(&board, pos(5, 6), checkers.Piece{Player: checkers.White, Rank: checkers.Man})

	testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{
		{From: pos(5, 6), To: pos(1, 2)},
		{From: pos(5, 6), To: pos(7, 4)},
	})
	testutil.AssertEqual(t, moves[0].Jumps(), 2)
	testutil.AssertEqual(t, moves[1].Jumps(), 1)
}

func TestSimpleMoves_ByRank(t *testing.T) {
	tests := []struct {
		name string
		cell checkers.Cell
		want []checkers.Position
	}{
		{"white man", checkers.WhiteMan, []checkers.Position{pos(2, 3), pos(4, 3)}},
		{"black man", checkers.BlackMan, []checkers.Position{pos(2, 5), pos(4, 5)}},
		{"white queen", checkers.WhiteQueen, []checkers.Position{pos(2, 3), pos(4, 3), pos(2, 5), pos(4, 5)}},
		{"black queen", checkers.BlackQueen, []checkers.Position{pos(2, 5), pos(4, 5), pos(2, 3), pos(4, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			from := pos(3, 4)
			board := testutil.BoardWith(map[checkers.Position]checkers.Cell{from: tt.cell})
			piece, _ := tt.cell.Piece()

			var got []checkers.Position
			for _, m := range SimpleMoves(&board, from, piece) {
				testutil.AssertEqual(t, m.From, from)
				got = append(got, m.To)
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestSimpleMoves_Edges(t *testing.T) {
	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		pos(0, 5): checkers.WhiteMan,
		pos(7, 0): checkers.BlackQueen,
	})

	white := SimpleMoves(&board, pos(0, 5), checkers.Piece{Player: checkers.White, Rank: checkers.Man})
	testutil.AssertEqual(t, testutil.Ends(white), []testutil.MoveEnd{{From: pos(0, 5), To: pos(1, 4)}})

	black := SimpleMoves(&board, pos(7, 0), checkers.Piece{Player: checkers.Black, Rank: checkers.Queen})
	testutil.AssertEqual(t, testutil.Ends(black), []testutil.MoveEnd{{From: pos(7, 0), To: pos(6, 1)}})
}

func TestCanCapture(t *testing.T) {
	board := testutil.MustSample(t, 2)
	testutil.AssertEqual(t, CanCapture(&board, checkers.White), []checkers.Position{pos(4, 5), pos(6, 5)})

	initial := checkers.InitialBoard()
	testutil.AssertEqual(t, len(CanCapture(&initial, checkers.Black)), 0)
}

func TestMovesFor(t *testing.T) {
	board := testutil.MustSample(t, 2)

	t.Run("empty square", func(t *testing.T) {
		moves, ok := MovesFor(&board, pos(0, 0))
		testutil.AssertFalse(t, ok)
		testutil.AssertTrue(t, moves == nil)
	})

	t.Run("piece without capture under mandatory capture", func(t *testing.T) {
		moves, ok := MovesFor(&board, pos(2, 1))
		testutil.AssertTrue(t, ok)
		testutil.AssertTrue(t, moves != nil)
		testutil.AssertEqual(t, len(moves), 0)
	})

	t.Run("capturing piece", func(t *testing.T) {
		moves, ok := MovesFor(&board, pos(4, 5))
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{
			{From: pos(4, 5), To: pos(2, 3)},
			{From: pos(4, 5), To: pos(6, 3)},
		})
	})

	t.Run("simple moves when nobody captures", func(t *testing.T) {
		initial := checkers.InitialBoard()
		moves, ok := MovesFor(&initial, pos(6, 5))
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, testutil.Ends(moves), []testutil.MoveEnd{
			{From: pos(6, 5), To: pos(5, 4)},
			{From: pos(6, 5), To: pos(7, 4)},
		})
	})

	t.Run("blocked piece", func(t *testing.T) {
		initial := checkers.InitialBoard()
		moves, ok := MovesFor(&initial, pos(1, 6))
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, moves, []checkers.Move{})
	})
}

func TestHasMoves(t *testing.T) {
	tests := []struct {
		sample int
		white  bool
		black  bool
	}{
		{sample: 1, white: true, black: true},
		{sample: 3, white: true, black: false},
		{sample: 4, white: false, black: true},
		{sample: 5, white: true, black: true},
	}

	for _, tt := range tests {
		board := testutil.MustSample(t, tt.sample)
		testutil.AssertEqual(t, HasMoves(&board, checkers.White), tt.white, "sample %d white", tt.sample)
		testutil.AssertEqual(t, HasMoves(&board, checkers.Black), tt.black, "sample %d black", tt.sample)
	}
}

func BenchmarkAvailableMoves(b *testing.B) {
	board := checkers.InitialBoard()
	for i := 0; i < b.N; i++ {
		AvailableMoves(&board, checkers.White)
	}
}

func BenchmarkCaptureChains(b *testing.B) {
	board := testutil.MustSample(b, 1)
	piece := checkers.Piece{Player: checkers.White, Rank: checkers.Man}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CaptureChains(&board, pos(1, 6), piece)
	}
}
