package parser

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/game"
)

// StartPosition returns the position a game starts from: its FEN tag, or
// the initial board with White to move.
func (g *Game) StartPosition() (checkers.Board, checkers.Player, error) {
	fen := g.GetTag("FEN")
	if fen == "" {
		return checkers.InitialBoard(), checkers.White, nil
	}
	board, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		return board, toMove, fmt.Errorf("FEN tag: %w", err)
	}
	return board, toMove, nil
}

// Replay plays the main line of pg and returns the resulting game. A move
// limit of cfg shorter than the line is raised past it. An illegal move stops
// the replay with a *errors.PlyError carrying gameNum; the game played up
// to that move is returned with it.
func Replay(pg *Game, cfg *config.GameConfig, gameNum int) (*game.Game, error) {
	board, toMove, err := pg.StartPosition()
	if err != nil {
		return nil, &errors.PlyError{Err: err, GameNum: gameNum}
	}

	gameCfg := config.NewGameConfig()
	if cfg != nil {
		*gameCfg = *cfg
	}
	if gameCfg.MaxPlies < len(pg.Moves) {
		gameCfg.MaxPlies = len(pg.Moves) + 1
	}

	g := game.New(board, toMove, gameCfg)
	for _, name := range pg.TagOrder {
		g.SetTag(name, pg.Tags[name])
	}
	for _, m := range pg.Moves {
		if _, err := g.ApplyText(m.Text); err != nil {
			var pe *errors.PlyError
			if errors.As(err, &pe) {
				pe.GameNum = gameNum
				return g, pe
			}
			return g, &errors.PlyError{Err: err, GameNum: gameNum, PlyNum: g.Plies() + 1, MoveText: m.Text}
		}
	}
	return g, nil
}

// ResultMatches reports whether the result written in pg agrees with the
// status of the replayed game. An unknown or missing result always agrees.
func ResultMatches(pg *Game, g *game.Game) bool {
	switch pg.Result {
	case "", ResultUnknown:
		return true
	}
	return pg.Result == g.Status().Result()
}
