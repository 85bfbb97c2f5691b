package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// GameConfig holds settings for playing whole games.
type GameConfig struct {
	// MaxPlies ends a game as a draw after this many plies
	MaxPlies int

	// RepetitionLimit ends a game as a draw when a position occurs this often
	RepetitionLimit int

	// Games is the number of self-play games
	Games int

	// RandomOpeningPlies plays this many random legal plies at the start of
	// each self-play game so that games differ
	RandomOpeningPlies int

	// Seed seeds the random opening of game i with Seed+i
	Seed int64
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		MaxPlies:        200,
		RepetitionLimit: 3,
		Games:           1,
	}
}

// Validate checks that the game configuration is usable.
func (g *GameConfig) Validate() error {
	if g.MaxPlies < 1 {
		return fmt.Errorf("max plies %d: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	if g.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit %d: %w", g.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if g.Games < 0 || g.RandomOpeningPlies < 0 {
		return fmt.Errorf("games %d, random plies %d: %w", g.Games, g.RandomOpeningPlies, errors.ErrInvalidConfig)
	}
	return nil
}
