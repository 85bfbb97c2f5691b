// Package errors holds the sentinel errors shared across the engine and the
// two wrappers that add game or input location to them.
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callers match these with Is; every wrapper in this module unwraps.
var (
	// Board and position decoding.
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrInvalidCell  = errors.New("invalid cell")
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidFEN   = errors.New("invalid FEN string")

	// Play and search.
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidDepth     = errors.New("invalid search depth")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrUnknownSample    = errors.New("unknown sample board")
	ErrInvalidPlayer    = errors.New("invalid player")

	// Game sessions.
	ErrGameOver     = errors.New("game is over")
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not this player's turn")

	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidCriterion = errors.New("invalid selection criterion")
)

// PlyError places a failure inside a game by game number, ply and move
// text. Zero fields are left out of the message.
type PlyError struct {
	Err      error
	GameNum  int // 1-based, 0 when unknown
	PlyNum   int // 1-based, 0 when unknown
	MoveText string
}

func (e *PlyError) Error() string {
	var where []string
	if e.GameNum > 0 {
		where = append(where, "game "+strconv.Itoa(e.GameNum))
	}
	if e.PlyNum > 0 {
		where = append(where, "ply "+strconv.Itoa(e.PlyNum))
	}
	if e.MoveText != "" {
		where = append(where, "move "+strconv.Quote(e.MoveText))
	}
	return joinCause(strings.Join(where, ", "), e.Err, "")
}

func (e *PlyError) Unwrap() error {
	return e.Err
}

// ParseError is a decoding failure in a board diagram, a FEN string or a
// request body. Source names the input; Line and Column are 1-based.
type ParseError struct {
	Err      error
	Source   string
	Line     int
	Column   int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var parts []string
	if loc := e.location(); loc != "" {
		parts = append(parts, loc)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, "expected "+e.Expected+", got "+e.Got)
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	return joinCause(strings.Join(parts, ": "), e.Err, "parse error")
}

// location renders source:line:column, omitting what is unknown. A column
// without a line is not shown.
func (e *ParseError) location() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Line > 0 {
		if b.Len() > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.Itoa(e.Line))
		if e.Column > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.Column))
		}
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// joinCause appends cause to context. fallback is returned when both are
// empty.
func joinCause(context string, cause error, fallback string) string {
	switch {
	case cause == nil && context == "":
		return fallback
	case cause == nil:
		return context
	case context == "":
		return cause.Error()
	}
	return context + ": " + cause.Error()
}

// Wrap prefixes err with context. A nil err stays nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is and As forward to the standard library so callers need only this
// package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }
