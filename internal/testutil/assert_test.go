package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions(t *testing.T) {
	t.Parallel()

	errBase := errors.New("base")

	tests := []struct {
		name   string
		run    func(tb testing.TB)
		fails  bool
		report string
	}{
		{"equal boards", func(tb testing.TB) {
			AssertEqual(tb, checkers.InitialBoard(), checkers.InitialBoard())
		}, false, ""},
		{"nil equals empty", func(tb testing.TB) { AssertEqual(tb, []MoveEnd(nil), []MoveEnd{}) }, false, ""},
		{"unequal counts", func(tb testing.TB) {
			AssertEqual(tb, checkers.PieceCounts{WhiteMen: 11}, checkers.PieceCounts{WhiteMen: 12})
		}, true, "mismatch (-want +got)"},
		{"unexported fields", func(tb testing.TB) {
			type ply struct{ from, to int }
			AssertEqual(tb, ply{22, 18}, ply{22, 17})
		}, true, "mismatch (-want +got)"},
		{"equal unexported fields", func(tb testing.TB) {
			type ply struct{ from, to int }
			AssertEqual(tb, ply{22, 18}, ply{22, 18})
		}, false, ""},
		{"labelled", func(tb testing.TB) { AssertEqual(tb, 1, 2, "ply %d", 7) }, true, "ply 7: mismatch"},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, false, ""},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, errBase) }, true, "unexpected error: base"},
		{"missing error", func(tb testing.TB) { AssertError(tb, nil, "parse") }, true, "parse: expected an error"},
		{"wrapped error", func(tb testing.TB) {
			AssertErrorIs(tb, fmt.Errorf("square 33: %w", errBase), errBase)
		}, false, ""},
		{"foreign error", func(tb testing.TB) {
			AssertErrorIs(tb, errors.New("other"), errBase)
		}, true, "does not wrap base"},
		{"contains", func(tb testing.TB) { AssertContains(tb, "22-18 11-15", "11-15") }, false, ""},
		{"does not contain", func(tb testing.TB) {
			AssertContains(tb, "22-18", "18x11")
		}, true, `"22-18" does not contain "18x11"`},
		{"true", func(tb testing.TB) { AssertTrue(tb, false) }, true, "condition is false"},
		{"false", func(tb testing.TB) { AssertFalse(tb, true, 3) }, true, "3: condition is true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{TB: t}
			tt.run(r)
			if !tt.fails {
				if len(r.failures) != 0 {
					t.Fatalf("unexpected failure: %v", r.failures)
				}
				return
			}
			if len(r.failures) != 1 {
				t.Fatalf("want one failure, got %v", r.failures)
			}
			AssertContains(t, r.failures[0], tt.report)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []interface{}
		want string
	}{
		{nil, ""},
		{[]interface{}{"opening"}, "opening"},
		{[]interface{}{42}, "42"},
		{[]interface{}{"square %d", 18}, "square 18"},
		{[]interface{}{"%s x %s", "25", "18"}, "25 x 18"},
	}
	for _, tt := range tests {
		if got := formatMessage(tt.args...); got != tt.want {
			t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
