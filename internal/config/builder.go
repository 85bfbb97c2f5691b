package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAlgorithm sets the search algorithm.
func (b *ConfigBuilder) WithAlgorithm(a Algorithm) *ConfigBuilder {
	b.cfg.Search.Algorithm = a
	return b
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of search or self-play workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithShowBoard controls board diagrams in text output.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithFENAfterMoves records the position after each move in game output.
func (b *ConfigBuilder) WithFENAfterMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.AddFEN = enabled
	return b
}

// WithMaxPlies sets the game length limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = n
	return b
}

// WithRepetitionLimit sets how often a position may recur before a draw.
func (b *ConfigBuilder) WithRepetitionLimit(n int) *ConfigBuilder {
	b.cfg.Game.RepetitionLimit = n
	return b
}

// WithGames sets the number of self-play games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Game.Games = n
	return b
}

// WithRandomOpening sets the random opening length and seed for self-play.
func (b *ConfigBuilder) WithRandomOpening(plies int, seed int64) *ConfigBuilder {
	b.cfg.Game.RandomOpeningPlies = plies
	b.cfg.Game.Seed = seed
	return b
}

// WithMaxDepth caps the depth the server searches to.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Server.MaxDepth = depth
	return b
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
