package matching

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func TestMaterialMatcher(t *testing.T) {
	t.Parallel()

	g := playGame(t, nil, exchange...)

	tests := []struct {
		pattern string
		exact   bool
		want    bool
	}{
		{"12M:12M", true, true},
		{"11M:11m", true, true},
		{"12M:11M", true, true},
		{"10M:10M", true, false},
		{"10M:10M", false, true},
		{"MK:", false, false},
		{":", false, true},
		{"mmm:MMM", false, true},
	}
	for _, tt := range tests {
		mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
		testutil.AssertNoError(t, err, tt.pattern)
		testutil.AssertEqual(t, mm.Match(g), tt.want, "%s exact=%v", tt.pattern, tt.exact)
	}
}

func TestMaterialMatcher_Kings(t *testing.T) {
	t.Parallel()

	board := testutil.BoardWith(map[checkers.Position]checkers.Cell{
		testutil.Pos(1, 0): checkers.WhiteQueen,
		testutil.Pos(3, 0): checkers.WhiteQueen,
		testutil.Pos(2, 5): checkers.WhiteMan,
		testutil.Pos(4, 5): checkers.BlackQueen,
	})

	for _, pattern := range []string{"M2K:K", "MKK:q", "1m2q:1k"} {
		mm, err := NewMaterialMatcher(pattern, true)
		testutil.AssertNoError(t, err, pattern)
		testutil.AssertTrue(t, mm.MatchBoard(&board), pattern)
	}

	mm, err := NewMaterialMatcher("K:K", true)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, mm.MatchBoard(&board))
	testutil.AssertEqual(t, mm.Name(), "MaterialMatcher(K:K)")
}

func TestMaterialMatcher_Errors(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"MM", "M:M:M", "MX:m", "3:m", "M:2"} {
		_, err := NewMaterialMatcher(pattern, false)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCriterion, pattern)
	}
}

func TestPieceCountMatcher(t *testing.T) {
	t.Parallel()

	g := playGame(t, nil, exchange...)
	testutil.AssertTrue(t, PieceCountMatcher(24).Match(g))
	testutil.AssertTrue(t, PieceCountMatcher(22).Match(g))
	testutil.AssertFalse(t, PieceCountMatcher(21).Match(g))
}
