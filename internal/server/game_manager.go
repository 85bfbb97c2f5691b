package server

import (
	"sync"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/codec"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/game"
)

// GameState is the JSON view of a stored game.
type GameState struct {
	ID         string       `json:"id"`
	Board      codec.Board  `json:"board"`
	ToMove     string       `json:"toMove"`
	FEN        string       `json:"fen"`
	Status     string       `json:"status"`
	Result     string       `json:"result"`
	Moves      []string     `json:"moves"`
	LegalMoves []codec.Move `json:"legalMoves"`
}

// storedGame serializes access to one game; the manager lock only guards the map.
type storedGame struct {
	mu   sync.Mutex
	game *game.Game
}

// GameManager keeps games played through the HTTP API in memory.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*storedGame
	cfg   *config.Config
}

func NewGameManager(cfg *config.Config) *GameManager {
	return &GameManager{
		games: make(map[string]*storedGame),
		cfg:   cfg,
	}
}

// CreateGame stores a new game and returns its state.
func (gm *GameManager) CreateGame(board checkers.Board, toMove checkers.Player) GameState {
	g := game.New(board, toMove, gm.cfg.Game)
	id := g.ID.String()

	gm.mu.Lock()
	gm.games[id] = &storedGame{game: g}
	gm.mu.Unlock()

	return stateOf(g)
}

func (gm *GameManager) lookup(id string) (*storedGame, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	sg, ok := gm.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return sg, nil
}

func (gm *GameManager) GetGameState(id string) (GameState, error) {
	sg, err := gm.lookup(id)
	if err != nil {
		return GameState{}, err
	}
	sg.mu.Lock()
	defer sg.mu.Unlock()
	return stateOf(sg.game), nil
}

// MakeMove plays text in game id. A non-empty player must be the side to move.
func (gm *GameManager) MakeMove(id, player, text string) (GameState, error) {
	sg, err := gm.lookup(id)
	if err != nil {
		return GameState{}, err
	}
	sg.mu.Lock()
	defer sg.mu.Unlock()

	if player != "" {
		p, err := codec.DecodePlayer(player)
		if err != nil {
			return GameState{}, err
		}
		if p != sg.game.ToMove() && !sg.game.Status().IsOver() {
			return GameState{}, errors.Wrapf(errors.ErrNotYourTurn, "%s to move", sg.game.ToMove())
		}
	}
	if _, err := sg.game.ApplyText(text); err != nil {
		return GameState{}, err
	}
	return stateOf(sg.game), nil
}

// EngineMove lets the engine play for the side to move. The depth is
// capped at Server.MaxDepth.
func (gm *GameManager) EngineMove(id string) (GameState, error) {
	sg, err := gm.lookup(id)
	if err != nil {
		return GameState{}, err
	}
	sg.mu.Lock()
	defer sg.mu.Unlock()

	searchCfg := *gm.cfg.Search
	if searchCfg.Depth > gm.cfg.Server.MaxDepth {
		searchCfg.Depth = gm.cfg.Server.MaxDepth
	}
	if _, _, err := sg.game.PlayEngineMove(&searchCfg); err != nil {
		return GameState{}, err
	}
	return stateOf(sg.game), nil
}

// DeleteGame forgets game id.
func (gm *GameManager) DeleteGame(id string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, ok := gm.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	delete(gm.games, id)
	return nil
}

// NumGames returns the number of stored games.
func (gm *GameManager) NumGames() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func stateOf(g *game.Game) GameState {
	board := g.Board()
	moves := g.MoveTexts()
	return GameState{
		ID:         g.ID.String(),
		Board:      codec.EncodeBoard(&board),
		ToMove:     g.ToMove().String(),
		FEN:        engine.BoardToFEN(&board, g.ToMove()),
		Status:     g.Status().String(),
		Result:     g.Status().Result(),
		Moves:      moves,
		LegalMoves: codec.EncodeMoves(g.LegalMoves()),
	}
}
