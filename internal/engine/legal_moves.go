package engine

import (
	"slices"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// SimpleMoves returns the non-capturing moves of piece on from:
// at most two for a Man, four for a Queen.
func SimpleMoves(board *checkers.Board, from checkers.Position, piece checkers.Piece) []checkers.Move {
	return simpleRules.Moves(board, from, piece)
}

// DirectCaptures returns the single-jump captures of piece on from.
func DirectCaptures(board *checkers.Board, from checkers.Position, piece checkers.Piece) []checkers.Move {
	return captureRules.Moves(board, from, piece)
}

// CaptureChains expands the direct captures of piece on from into complete
// multi-jump turns. Pending moves sit on a stack, so each direct capture is
// followed to all of its terminal branches before the next one is tried and
// chains come out in depth-first rule order. Intermediate jumps are never
// returned. The piece keeps the rank it started the turn with.
func CaptureChains(board *checkers.Board, from checkers.Position, piece checkers.Piece) []checkers.Move {
	stack := DirectCaptures(board, from, piece)
	slices.Reverse(stack)
	var out []checkers.Move
	for len(stack) > 0 {
		mv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		next := DirectCaptures(&mv.Board, mv.To, piece)
		if len(next) == 0 {
			out = append(out, mv)
			continue
		}
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, mv.Extend(next[i]))
		}
	}
	return out
}

// HasCapture reports whether piece on from has at least one direct capture.
func HasCapture(board *checkers.Board, from checkers.Position, piece checkers.Piece) bool {
	return captureRules.Any(board, from, piece)
}

// CanCapture returns the positions of player's pieces that have a direct
// capture available, in row-major order.
func CanCapture(board *checkers.Board, player checkers.Player) []checkers.Position {
	var out []checkers.Position
	for _, pp := range board.Pieces(player) {
		if HasCapture(board, pp.Position, pp.Piece) {
			out = append(out, pp.Position)
		}
	}
	return out
}

// mustCapture reports whether any piece of player can capture.
func mustCapture(board *checkers.Board, player checkers.Player) bool {
	for _, pp := range board.Pieces(player) {
		if HasCapture(board, pp.Position, pp.Piece) {
			return true
		}
	}
	return false
}

// AvailableMoves returns every legal move of player. When any piece can
// capture, only capture chains are legal; otherwise all simple moves are.
// An empty result means player cannot move.
func AvailableMoves(board *checkers.Board, player checkers.Player) []checkers.Move {
	pieces := board.Pieces(player)

	var captures []checkers.Move
	for _, pp := range pieces {
		captures = append(captures, CaptureChains(board, pp.Position, pp.Piece)...)
	}
	if len(captures) > 0 {
		return captures
	}

	var moves []checkers.Move
	for _, pp := range pieces {
		moves = append(moves, SimpleMoves(board, pp.Position, pp.Piece)...)
	}
	return moves
}

// MovesFor returns the legal moves of the piece on position. ok is false
// when the square holds no piece. Under mandatory capture a piece that
// cannot itself capture gets an empty, non-nil list.
func MovesFor(board *checkers.Board, position checkers.Position) (moves []checkers.Move, ok bool) {
	piece, ok := board.CellAt(position).Piece()
	if !ok {
		return nil, false
	}
	if mustCapture(board, piece.Player) {
		moves = CaptureChains(board, position, piece)
	} else {
		moves = SimpleMoves(board, position, piece)
	}
	if moves == nil {
		moves = []checkers.Move{}
	}
	return moves, true
}

// HasMoves reports whether some piece of player has a simple move or a
// capture. A player without moves has lost.
func HasMoves(board *checkers.Board, player checkers.Player) bool {
	for _, pp := range board.Pieces(player) {
		if simpleRules.Any(board, pp.Position, pp.Piece) || captureRules.Any(board, pp.Position, pp.Piece) {
			return true
		}
	}
	return false
}
