package search

import (
	"fmt"
	"math"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Stats counts the work done by a Searcher.
type Stats struct {
	Nodes   int64 // search calls, root included
	Leaves  int64 // nodes scored at depth zero
	Cutoffs int64 // alpha-beta sibling scans abandoned
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Leaves += other.Leaves
	s.Cutoffs += other.Cutoffs
}

// Searcher runs searches and records statistics. It is not safe for
// concurrent use; give each goroutine its own.
type Searcher struct {
	stats Stats
}

// NewSearcher returns a Searcher with zeroed statistics.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Stats returns the statistics accumulated so far.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Reset zeroes the statistics.
func (s *Searcher) Reset() {
	s.stats = Stats{}
}

// Minimax returns the best move of player on board by exhaustive search of
// depth plies. White maximizes the score, Black minimizes it; among equal
// scores the first move in generation order is kept. A position without
// moves yields NoMoves.
func (s *Searcher) Minimax(board *checkers.Board, player checkers.Player, depth int) Solution {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.Leaves++
		return ScoreSolution(engine.Evaluate(board))
	}

	moves := engine.AvailableMoves(board, player)
	if len(moves) == 0 {
		return NoMovesSolution()
	}

	maximizing := player.IsMaximizing()
	best, bestIdx := 0, -1
	for i := range moves {
		child := s.Minimax(&moves[i].Board, player.Opponent(), depth-1)
		score := child.ScoreOr(&moves[i].Board)
		if bestIdx < 0 || better(score, best, maximizing) {
			best, bestIdx = score, i
		}
	}
	return MoveSolution(moves[bestIdx], best)
}

// AlphaBeta returns the same score as Minimax for the root, and the same
// move, while skipping siblings that cannot change the result.
func (s *Searcher) AlphaBeta(board *checkers.Board, player checkers.Player, depth int) Solution {
	return s.alphaBeta(board, player, depth, math.MinInt, math.MaxInt)
}

func (s *Searcher) alphaBeta(board *checkers.Board, player checkers.Player, depth, alpha, beta int) Solution {
	s.stats.Nodes++
	if depth <= 0 {
		s.stats.Leaves++
		return ScoreSolution(engine.Evaluate(board))
	}

	moves := engine.AvailableMoves(board, player)
	if len(moves) == 0 {
		return NoMovesSolution()
	}

	maximizing := player.IsMaximizing()
	best, bestIdx := 0, -1
	for i := range moves {
		child := s.alphaBeta(&moves[i].Board, player.Opponent(), depth-1, alpha, beta)
		score := child.ScoreOr(&moves[i].Board)
		if bestIdx < 0 || better(score, best, maximizing) {
			best, bestIdx = score, i
		}

		if maximizing && best > alpha {
			alpha = best
		} else if !maximizing && best < beta {
			beta = best
		}
		if alpha >= beta {
			if i < len(moves)-1 {
				s.stats.Cutoffs++
			}
			break
		}
	}
	return MoveSolution(moves[bestIdx], best)
}

// better reports whether score strictly improves on best for the side.
func better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// Minimax searches without collecting statistics.
func Minimax(board *checkers.Board, player checkers.Player, depth int) Solution {
	return NewSearcher().Minimax(board, player, depth)
}

// AlphaBeta searches without collecting statistics.
func AlphaBeta(board *checkers.Board, player checkers.Player, depth int) Solution {
	return NewSearcher().AlphaBeta(board, player, depth)
}

// Run dispatches to the algorithm's search method.
func (s *Searcher) Run(board *checkers.Board, player checkers.Player, algorithm config.Algorithm, depth int) (Solution, error) {
	if depth < 0 {
		return Solution{}, fmt.Errorf("depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	switch algorithm {
	case config.AlphaBeta:
		return s.AlphaBeta(board, player, depth), nil
	case config.Minimax:
		return s.Minimax(board, player, depth), nil
	}
	return Solution{}, fmt.Errorf("%v: %w", algorithm, errors.ErrUnknownAlgorithm)
}

// Best searches board with the configured algorithm, depth and worker count.
// More than one worker searches the root moves in parallel.
func Best(board *checkers.Board, player checkers.Player, cfg *config.SearchConfig) (Solution, Stats, error) {
	if cfg.Workers > 1 {
		return Parallel(board, player, cfg.Depth, cfg.Algorithm, cfg.Workers)
	}
	s := NewSearcher()
	sol, err := s.Run(board, player, cfg.Algorithm, cfg.Depth)
	return sol, s.Stats(), err
}
