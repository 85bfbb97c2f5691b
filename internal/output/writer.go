package output

import (
	"io"

	"github.com/lgbarn/checkers-go/internal/codec"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/game"
)

// GameWriter receives finished games. round numbers a game within a
// batch; 0 leaves it unnumbered. Close must be called once the batch is
// complete.
type GameWriter interface {
	WriteGame(g *game.Game, round int) error
	Flush() error
	Close() error
}

// NewGameWriter picks JSON or PDN from cfg.Output.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewPDNWriter(w, cfg)
}

// PDNWriter writes each game as soon as it arrives.
type PDNWriter struct {
	w   io.Writer
	cfg *config.Config
}

func NewPDNWriter(w io.Writer, cfg *config.Config) *PDNWriter {
	return &PDNWriter{w: w, cfg: cfg}
}

func (pw *PDNWriter) WriteGame(g *game.Game, round int) error {
	return OutputGame(pw.w, g, round, pw.cfg)
}

func (pw *PDNWriter) Flush() error { return nil }

func (pw *PDNWriter) Close() error { return nil }

// JSONWriter collects games into one {"games": [...]} document written on
// Flush, or, when streaming, writes one object per game.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	pending []*JSONGame
	stream  bool
}

func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle returns a streaming JSONWriter. Parallel self-play
// uses it so each game reaches the output as it finishes.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, stream: true}
}

// WriteGame converts g at once, so later moves on g do not change the
// output.
func (jw *JSONWriter) WriteGame(g *game.Game, round int) error {
	jg := GameToJSON(g, round, jw.cfg)
	if jw.stream {
		return codec.WriteJSON(jw.w, jg)
	}
	jw.pending = append(jw.pending, jg)
	return nil
}

func (jw *JSONWriter) Flush() error {
	if len(jw.pending) == 0 {
		return nil
	}
	batch := jw.pending
	jw.pending = nil
	return codec.WriteJSON(jw.w, &JSONOutput{Games: batch})
}

func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
