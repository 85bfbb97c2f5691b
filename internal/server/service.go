package server

import (
	"github.com/google/uuid"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/search"
)

// AnalysisService answers stateless questions about a board.
type AnalysisService struct {
	cfg *config.Config
}

func NewAnalysisService(cfg *config.Config) *AnalysisService {
	return &AnalysisService{cfg: cfg}
}

func (as *AnalysisService) MovesFor(board *checkers.Board, pos checkers.Position) ([]checkers.Move, bool) {
	return engine.MovesFor(board, pos)
}

func (as *AnalysisService) CanCapture(board *checkers.Board, player checkers.Player) []checkers.Position {
	return engine.CanCapture(board, player)
}

func (as *AnalysisService) AvailableMoves(board *checkers.Board, player checkers.Player) []checkers.Move {
	return engine.AvailableMoves(board, player)
}

func (as *AnalysisService) Evaluate(board *checkers.Board) int {
	return engine.Evaluate(board)
}

// SearchResult is one finished search.
type SearchResult struct {
	ID        string
	Algorithm config.Algorithm
	Depth     int
	Solution  search.Solution
	Stats     search.Stats
}

// Search runs the engine on board. A nil depth or empty algorithm falls
// back to the configured defaults; depth is capped at Server.MaxDepth.
func (as *AnalysisService) Search(board *checkers.Board, player checkers.Player, depth *int, algorithm string) (SearchResult, error) {
	searchCfg := *as.cfg.Search
	if depth != nil {
		searchCfg.Depth = *depth
	}
	if searchCfg.Depth < 0 {
		return SearchResult{}, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", searchCfg.Depth)
	}
	if searchCfg.Depth > as.cfg.Server.MaxDepth {
		searchCfg.Depth = as.cfg.Server.MaxDepth
	}
	if algorithm != "" {
		a, err := config.ParseAlgorithm(algorithm)
		if err != nil {
			return SearchResult{}, err
		}
		searchCfg.Algorithm = a
	}

	sol, stats, err := search.Best(board, player, &searchCfg)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		ID:        uuid.New().String(),
		Algorithm: searchCfg.Algorithm,
		Depth:     searchCfg.Depth,
		Solution:  sol,
		Stats:     stats,
	}, nil
}
