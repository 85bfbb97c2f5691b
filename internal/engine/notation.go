package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// MoveText returns the standard numeric notation of m: "22-18" for a
// simple move, "22x15" or "22x15x6" for captures, listing every landing
// square of a multi-jump.
func MoveText(m checkers.Move) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(checkers.SquareNumber(m.From)))
	if !m.IsCapture() {
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(checkers.SquareNumber(m.To)))
		return sb.String()
	}
	for _, p := range m.Path {
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(checkers.SquareNumber(p)))
	}
	return sb.String()
}

// parseMoveText splits "22-18" or "22x15x6" into square numbers.
func parseMoveText(text string) (squares []int, capture bool, err error) {
	text = strings.ToLower(strings.TrimSpace(text))
	sep := "-"
	if strings.Contains(text, "x") {
		sep = "x"
		capture = true
	}
	fields := strings.Split(text, sep)
	if len(fields) < 2 {
		return nil, false, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > checkers.BoardSize*checkers.BoardSize/2 {
			return nil, false, fmt.Errorf("move %q: bad square %q: %w", text, f, errors.ErrIllegalMove)
		}
		squares = append(squares, n)
	}
	return squares, capture, nil
}

// FindMove resolves text to one of player's legal moves on board. A capture
// may be written with its endpoints only ("22x6") or with every landing
// square; when the endpoints alone are ambiguous the first matching chain
// in generation order is returned.
func FindMove(board *checkers.Board, player checkers.Player, text string) (checkers.Move, error) {
	squares, capture, err := parseMoveText(text)
	if err != nil {
		return checkers.Move{}, err
	}
	from, to := squares[0], squares[len(squares)-1]

	for _, mv := range AvailableMoves(board, player) {
		if mv.IsCapture() != capture {
			continue
		}
		if checkers.SquareNumber(mv.From) != from || checkers.SquareNumber(mv.To) != to {
			continue
		}
		if len(squares) > 2 && !pathMatches(mv.Path, squares[1:]) {
			continue
		}
		return mv, nil
	}
	return checkers.Move{}, fmt.Errorf("%s to move, %q: %w", player, text, errors.ErrIllegalMove)
}

func pathMatches(path []checkers.Position, squares []int) bool {
	if len(path) != len(squares) {
		return false
	}
	for i, p := range path {
		if checkers.SquareNumber(p) != squares[i] {
			return false
		}
	}
	return true
}
