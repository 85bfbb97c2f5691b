package search

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// rootResult is the outcome of searching below one root move.
type rootResult struct {
	score int
	stats Stats
}

// Parallel searches each root move of player on its own worker. Every
// subtree gets a full alpha-beta window, so each root score is exact and
// the move picked, first best in generation order, matches the sequential
// search.
func Parallel(board *checkers.Board, player checkers.Player, depth int, algorithm config.Algorithm, workers int) (Solution, Stats, error) {
	if depth < 0 {
		return Solution{}, Stats{}, fmt.Errorf("depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	if algorithm != config.AlphaBeta && algorithm != config.Minimax {
		return Solution{}, Stats{}, fmt.Errorf("%v: %w", algorithm, errors.ErrUnknownAlgorithm)
	}

	stats := Stats{Nodes: 1}
	if depth == 0 {
		stats.Leaves = 1
		return ScoreSolution(engine.Evaluate(board)), stats, nil
	}
	moves := engine.AvailableMoves(board, player)
	if len(moves) == 0 {
		return NoMovesSolution(), stats, nil
	}

	results, err := worker.Map(moves, workers, func(mv checkers.Move) (rootResult, error) {
		s := NewSearcher()
		child, err := s.Run(&mv.Board, player.Opponent(), algorithm, depth-1)
		if err != nil {
			return rootResult{}, err
		}
		return rootResult{score: child.ScoreOr(&mv.Board), stats: s.Stats()}, nil
	})
	if err != nil {
		return Solution{}, Stats{}, err
	}

	maximizing := player.IsMaximizing()
	best, bestIdx := 0, -1
	for i, r := range results {
		stats.Add(r.stats)
		if bestIdx < 0 || better(r.score, best, maximizing) {
			best, bestIdx = r.score, i
		}
	}
	return MoveSolution(moves[bestIdx], best), stats, nil
}
