// Package search picks moves by exhaustive minimax or alpha-beta game-tree
// search over the move generator, scoring leaves with engine.Evaluate.
package search

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
)

// Kind tells which fields of a Solution are meaningful.
type Kind int

const (
	// NoMoves means the side to move had no legal move at a node with depth left.
	NoMoves Kind = iota
	// ScoreOnly is a leaf score without a move.
	ScoreOnly
	// MoveWithScore carries the best move found and its score.
	MoveWithScore
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case NoMoves:
		return "none"
	case ScoreOnly:
		return "score"
	case MoveWithScore:
		return "move"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Solution is the immutable result of a search call.
type Solution struct {
	Kind  Kind
	Score int
	Move  checkers.Move
}

// NoMovesSolution returns the result of a node without legal moves.
func NoMovesSolution() Solution {
	return Solution{Kind: NoMoves}
}

// ScoreSolution returns a score without a move.
func ScoreSolution(score int) Solution {
	return Solution{Kind: ScoreOnly, Score: score}
}

// MoveSolution returns a best move together with its score.
func MoveSolution(m checkers.Move, score int) Solution {
	return Solution{Kind: MoveWithScore, Score: score, Move: m}
}

// HasScore reports whether the solution carries a score.
func (s Solution) HasScore() bool {
	return s.Kind != NoMoves
}

// HasMove reports whether the solution carries a move.
func (s Solution) HasMove() bool {
	return s.Kind == MoveWithScore
}

// ScoreOr returns the solution's score, or the static evaluation of board
// when the solution is NoMoves. board is the position the search ran on.
func (s Solution) ScoreOr(board *checkers.Board) int {
	if s.HasScore() {
		return s.Score
	}
	return engine.Evaluate(board)
}

func (s Solution) String() string {
	switch s.Kind {
	case NoMoves:
		return "no moves"
	case ScoreOnly:
		return fmt.Sprintf("score %d", s.Score)
	}
	return fmt.Sprintf("%s score %d", engine.MoveText(s.Move), s.Score)
}
