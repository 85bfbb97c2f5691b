package game

import (
	"math/rand"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// Summary describes a finished self-play game.
type Summary struct {
	GameNum   int
	ID        string
	Status    Status
	Plies     int
	Moves     []string
	FinalFEN  string
	Duplicate bool

	Game *Game
}

// PlaySelf plays one game of the engine against itself from the initial
// position. gameNum selects the random opening seed.
func PlaySelf(cfg *config.Config, gameNum int) (*Game, error) {
	g := New(checkers.InitialBoard(), checkers.White, cfg.Game)

	rng := rand.New(rand.NewSource(cfg.Game.Seed + int64(gameNum)))
	for i := 0; i < cfg.Game.RandomOpeningPlies && !g.Status().IsOver(); i++ {
		moves := g.LegalMoves()
		if err := g.Apply(moves[rng.Intn(len(moves))]); err != nil {
			return g, err
		}
	}

	// Each game searches sequentially; parallelism is across games.
	searchCfg := *cfg.Search
	searchCfg.Workers = 1
	for !g.Status().IsOver() {
		if _, _, err := g.PlayEngineMove(&searchCfg); err != nil {
			return g, err
		}
		cfg.Logf(2, "game %d ply %d: %s\n", gameNum, g.Plies(), g.history[len(g.history)-1].Text)
	}
	return g, nil
}

// SelfPlay plays cfg.Game.Games games on cfg.Search.Workers goroutines.
// Games whose final position was already reached by an earlier finished
// game are flagged as duplicates.
func SelfPlay(cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector) ([]Summary, error) {
	nums := make([]int, cfg.Game.Games)
	for i := range nums {
		nums[i] = i + 1
	}

	return worker.Map(nums, cfg.Search.Workers, func(n int) (Summary, error) {
		g, err := PlaySelf(cfg, n)
		if err != nil {
			if pe, ok := err.(*errors.PlyError); ok {
				pe.GameNum = n
			}
			return Summary{GameNum: n}, err
		}
		board := g.Board()
		sum := Summary{
			GameNum:  n,
			ID:       g.ID.String(),
			Status:   g.Status(),
			Plies:    g.Plies(),
			Moves:    g.MoveTexts(),
			FinalFEN: g.FEN(),
			Game:     g,
		}
		if detector != nil {
			sum.Duplicate = detector.CheckAndAdd(&board, g.ToMove(), g.Plies())
		}
		cfg.Logf(1, "game %d: %s after %d plies\n", n, sum.Status, sum.Plies)
		return sum, nil
	})
}
