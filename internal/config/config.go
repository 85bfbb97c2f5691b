// Package config provides configuration for the checkers tools.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Algorithm selects the search procedure.
type Algorithm int

const (
	AlphaBeta Algorithm = iota // Pruned search (default)
	Minimax                    // Exhaustive search
)

// String returns the flag name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlphaBeta:
		return "alphabeta"
	case Minimax:
		return "minimax"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name to an Algorithm. "ab" and "mm" are accepted
// as short forms.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	case "minimax", "mm":
		return Minimax, nil
	}
	return AlphaBeta, fmt.Errorf("%q: %w", name, errors.ErrUnknownAlgorithm)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Search *SearchConfig
	Output *OutputConfig
	Game   *GameConfig
	Server *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		Game:       NewGameConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
