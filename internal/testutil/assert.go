// Package testutil holds assertion helpers and board fixtures shared by the
// package tests.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Nil and empty slices or maps compare equal in AssertEqual, and unexported
// struct fields are compared like exported ones.
var equalOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// AssertEqual reports a -want +got diff when got and want differ. A trailing
// format string and arguments label the failure.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	diff := cmp.Diff(want, got, equalOpts...)
	check(t, diff == "", func() string { return "mismatch (-want +got):\n" + diff }, msgAndArgs)
}

func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	check(t, err == nil, func() string { return fmt.Sprintf("unexpected error: %v", err) }, msgAndArgs)
}

func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	check(t, err != nil, func() string { return "expected an error, got nil" }, msgAndArgs)
}

// AssertErrorIs fails unless err wraps target.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	check(t, errors.Is(err, target), func() string {
		return fmt.Sprintf("error %v does not wrap %v", err, target)
	}, msgAndArgs)
}

func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	check(t, strings.Contains(got, substr), func() string {
		return fmt.Sprintf("%q does not contain %q", got, substr)
	}, msgAndArgs)
}

func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	check(t, condition, func() string { return "condition is false" }, msgAndArgs)
}

func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	check(t, !condition, func() string { return "condition is true" }, msgAndArgs)
}

// check reports problem() as a test error when ok is false.
func check(t testing.TB, ok bool, problem func() string, msgAndArgs []interface{}) {
	t.Helper()
	if ok {
		return
	}
	if label := formatMessage(msgAndArgs...); label != "" {
		t.Errorf("%s: %s", label, problem())
		return
	}
	t.Error(problem())
}

func formatMessage(msgAndArgs ...interface{}) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) > 1:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
	}
	return fmt.Sprint(msgAndArgs[0])
}
