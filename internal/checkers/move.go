package checkers

// Move is a complete turn: the piece on From ends on To and Board is the
// resulting position, with captured pieces removed and promotion applied.
type Move struct {
	From  Position
	To    Position
	Board Board

	// Path lists the landing square of every jump for captures, ending
	// with To. It is nil for simple moves.
	Path []Position
}

// IsCapture reports whether the move jumps at least one piece.
func (m Move) IsCapture() bool {
	return len(m.Path) > 0
}

// Jumps returns the number of pieces captured by the move.
func (m Move) Jumps() int {
	return len(m.Path)
}

// Extend returns a copy of m continued by the jump next, which must start
// at m.To. The path is copied so that sibling branches never share it.
func (m Move) Extend(next Move) Move {
	path := make([]Position, 0, len(m.Path)+len(next.Path))
	path = append(path, m.Path...)
	path = append(path, next.Path...)
	return Move{From: m.From, To: next.To, Board: next.Board, Path: path}
}
