package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// ServerConfig holds settings for the HTTP analysis server.
type ServerConfig struct {
	// Addr is the listen address
	Addr string

	// MaxDepth caps the search depth a request may ask for
	MaxDepth int

	// AllowOrigins is the CORS origin list
	AllowOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		MaxDepth:     8,
		AllowOrigins: "*",
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth %d: %w", s.MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}
