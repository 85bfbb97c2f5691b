package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// Scores of decided positions, from White's point of view.
const (
	WhiteLostScore = -200
	BlackLostScore = 200
)

// Evaluate scores board from White's point of view. A side without moves
// has lost (White is checked first); otherwise the score is the material
// balance with Man 1 and Queen 5.
func Evaluate(board *checkers.Board) int {
	if !HasMoves(board, checkers.White) {
		return WhiteLostScore
	}
	if !HasMoves(board, checkers.Black) {
		return BlackLostScore
	}
	return board.Material()
}

// IsDecided reports whether score is one of the win/loss scores.
func IsDecided(score int) bool {
	return score == WhiteLostScore || score == BlackLostScore
}
