package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrOutOfBounds, ErrInvalidCell, ErrInvalidBoard, ErrInvalidFEN, ErrIllegalMove,
		ErrInvalidDepth, ErrUnknownAlgorithm, ErrUnknownSample, ErrInvalidConfig, ErrInvalidPlayer,
		ErrGameOver, ErrGameNotFound, ErrNotYourTurn, ErrInvalidCriterion,
	}
	for _, s := range sentinels {
		for _, wrapped := range []error{
			fmt.Errorf("decoding request: %w", s),
			Wrap(s, "session"),
			&PlyError{Err: s, PlyNum: 3},
			&ParseError{Err: s, Source: "fen"},
		} {
			if !errors.Is(wrapped, s) {
				t.Errorf("%q does not unwrap to %q", wrapped, s)
			}
		}
	}
}

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ply error with full context",
			err:  &PlyError{Err: ErrIllegalMove, GameNum: 5, PlyNum: 12, MoveText: "22x15"},
			want: `game 5, ply 12, move "22x15": illegal move`,
		},
		{
			name: "ply error with ply only",
			err:  &PlyError{Err: ErrIllegalMove, PlyNum: 1},
			want: "ply 1: illegal move",
		},
		{
			name: "ply error without context",
			err:  &PlyError{Err: ErrIllegalMove},
			want: "illegal move",
		},
		{
			name: "ply error without cause",
			err:  &PlyError{GameNum: 2},
			want: "game 2",
		},
		{
			name: "parse error with location and expectation",
			err: &ParseError{
				Err:      ErrInvalidCell,
				Source:   "board.txt",
				Line:     3,
				Column:   5,
				Expected: "cell code",
				Got:      `"x"`,
			},
			want: `board.txt:3:5: expected cell code, got "x": invalid cell`,
		},
		{
			name: "parse error with line but no source",
			err:  &ParseError{Err: ErrInvalidBoard, Line: 9, Got: "extra row"},
			want: "9: unexpected extra row: invalid board",
		},
		{
			name: "parse error column needs a line",
			err:  &ParseError{Err: ErrInvalidFEN, Source: "fen", Column: 2, Expected: "W or B"},
			want: "fen: expected W or B: invalid FEN string",
		},
		{
			name: "bare parse error",
			err:  &ParseError{},
			want: "parse error",
		},
		{
			name: "wrap",
			err:  Wrap(ErrOutOfBounds, "position (9, 0)"),
			want: "position (9, 0): coordinate out of bounds",
		},
		{
			name: "wrapf",
			err:  Wrapf(ErrInvalidDepth, "depth %d", -1),
			want: "depth -1: invalid search depth",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	if Wrap(nil, "ignored") != nil || Wrapf(nil, "ignored %d", 1) != nil {
		t.Error("wrapping nil should give nil")
	}
}

func TestIsAsThroughLayers(t *testing.T) {
	t.Parallel()

	err := Wrap(fmt.Errorf("self-play: %w", &PlyError{Err: ErrGameOver, GameNum: 3, PlyNum: 24}), "server")

	if !Is(err, ErrGameOver) {
		t.Error("Is should find the sentinel through every wrapper")
	}
	if Is(err, ErrIllegalMove) {
		t.Error("Is matched an unrelated sentinel")
	}

	var pe *PlyError
	if !As(err, &pe) {
		t.Fatal("As should find the PlyError")
	}
	if pe.PlyNum != 24 || pe.GameNum != 3 {
		t.Errorf("extracted %+v", pe)
	}
}
