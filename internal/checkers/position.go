package checkers

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Position is a board coordinate. X is the column, Y the row; row 0 is
// Black's home row and White's promotion row.
type Position struct {
	X int
	Y int
}

// NewPosition returns the position (x, y), failing with ErrOutOfBounds
// when either coordinate is outside 0..7.
func NewPosition(x, y int) (Position, error) {
	p := Position{X: x, Y: y}
	if !p.InBounds() {
		return Position{}, fmt.Errorf("position (%d, %d): %w", x, y, errors.ErrOutOfBounds)
	}
	return p, nil
}

// InBounds reports whether both coordinates are within the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// IsDark reports whether the position is a playable dark square.
func (p Position) IsDark() bool {
	return (p.X+p.Y)%2 == 1
}

// Offset returns the position n steps away along (dx, dy).
// The result is not bounds-checked.
func (p Position) Offset(dx, dy, n int) Position {
	return Position{X: p.X + dx*n, Y: p.Y + dy*n}
}

// String returns "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SquareNumber returns the standard 1..32 number of a dark square,
// counting dark squares row by row from row 0. Light squares return 0.
func SquareNumber(p Position) int {
	if !p.InBounds() || !p.IsDark() {
		return 0
	}
	return p.Y*BoardSize/2 + p.X/2 + 1
}

// SquarePosition is the inverse of SquareNumber.
func SquarePosition(n int) (Position, error) {
	if n < 1 || n > BoardSize*BoardSize/2 {
		return Position{}, fmt.Errorf("square %d: %w", n, errors.ErrOutOfBounds)
	}
	idx := n - 1
	y := idx / (BoardSize / 2)
	x := (idx%(BoardSize/2))*2 + 1 - y%2
	return Position{X: x, Y: y}, nil
}
