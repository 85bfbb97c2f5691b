package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// SearchConfig holds settings for move search.
type SearchConfig struct {
	// Algorithm is the search procedure
	Algorithm Algorithm

	// Depth is the number of plies searched
	Depth int

	// Workers is the number of goroutines for root-parallel search; 1 searches sequentially
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Algorithm: AlphaBeta,
		Depth:     4,
		Workers:   1,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 {
		return fmt.Errorf("depth %d: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.Algorithm != AlphaBeta && s.Algorithm != Minimax {
		return fmt.Errorf("%v: %w", s.Algorithm, errors.ErrInvalidConfig)
	}
	return nil
}
