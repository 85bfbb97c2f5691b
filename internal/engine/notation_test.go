package engine

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func TestMoveText(t *testing.T) {
	initial := checkers.InitialBoard()
	var texts []string
	for _, m := range AvailableMoves(&initial, checkers.White) {
		texts = append(texts, MoveText(m))
	}
	testutil.AssertEqual(t, texts, []string{"21-17", "22-17", "22-18", "23-18", "23-19", "24-19", "24-20"})

	sample := testutil.MustSample(t, 1)
	chain := AvailableMoves(&sample, checkers.White)[0]
	testutil.AssertEqual(t, MoveText(chain), "25x18x11")
}

func TestFindMove(t *testing.T) {
	initial := checkers.InitialBoard()
	sample := testutil.MustSample(t, 1)

	tests := []struct {
		name     string
		board    checkers.Board
		player   checkers.Player
		text     string
		wantFrom checkers.Position
		wantTo   checkers.Position
	}{
		{"simple", initial, checkers.White, "22-18", pos(2, 5), pos(3, 4)},
		{"black simple", initial, checkers.Black, "9-13", pos(1, 2), pos(0, 3)},
		{"chain by endpoints", sample, checkers.White, "25x11", pos(1, 6), pos(5, 2)},
		{"chain with every square", sample, checkers.White, "25x18x11", pos(1, 6), pos(5, 2)},
		{"upper case and spaces", sample, checkers.White, " 25X11 ", pos(1, 6), pos(5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mv, err := FindMove(&tt.board, tt.player, tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mv.From, tt.wantFrom)
			testutil.AssertEqual(t, mv.To, tt.wantTo)
		})
	}
}

func TestFindMove_Illegal(t *testing.T) {
	initial := checkers.InitialBoard()
	sample := testutil.MustSample(t, 1)

	tests := []struct {
		name  string
		board checkers.Board
		text  string
	}{
		{"not reachable", initial, "22-19"},
		{"capture written for simple move", initial, "22x18"},
		{"simple move while capture is mandatory", sample, "25-22"},
		{"wrong intermediate square", sample, "25x17x11"},
		{"garbage", initial, "abc"},
		{"single square", initial, "22"},
		{"square out of range", initial, "22-40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := FindMove(&tt.board, checkers.White, tt.text)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		})
	}
}
