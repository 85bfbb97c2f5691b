package output

import (
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/codec"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id"`
	Round      int               `json:"round,omitempty"`
	Status     string            `json:"status"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN"`
	Tags       map[string]string `json:"tags,omitempty"`
	Moves      []JSONMove        `json:"moves"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int              `json:"moveNumber"`
	Player     string           `json:"player"`
	Text       string           `json:"text"`
	From       codec.Position   `json:"from"`
	To         codec.Position   `json:"to"`
	Captures   int              `json:"captures,omitempty"`
	Path       []codec.Position `json:"path,omitempty"`
	Promotion  bool             `json:"promotion,omitempty"`
	FEN        string           `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(w io.Writer, g *game.Game, round int, cfg *config.Config) error {
	return codec.WriteJSON(w, GameToJSON(g, round, cfg))
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, round int, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		ID:       g.ID.String(),
		Round:    round,
		Status:   g.Status().String(),
		Result:   g.Status().Result(),
		PlyCount: g.Plies(),
		FinalFEN: g.FEN(),
		Moves:    make([]JSONMove, 0, g.Plies()),
	}
	if fen, ok := setupFEN(g); ok {
		jg.InitialFEN = fen
	}
	if len(g.Tags) > 0 {
		jg.Tags = make(map[string]string, len(g.Tags))
		for k, v := range g.Tags {
			jg.Tags[k] = v
		}
	}

	moveNum := 1
	for _, ply := range g.History() {
		jg.Moves = append(jg.Moves, convertPly(ply, moveNum, cfg))
		if ply.Player == checkers.Black {
			moveNum++
		}
	}
	return jg
}

// convertPly converts a single ply.
func convertPly(ply game.Ply, moveNum int, cfg *config.Config) JSONMove {
	m := ply.Move
	jm := JSONMove{
		MoveNumber: moveNum,
		Player:     ply.Player.String(),
		Text:       ply.Text,
		From:       codec.EncodePosition(m.From),
		To:         codec.EncodePosition(m.To),
		Captures:   m.Jumps(),
		Promotion:  ply.Promoted,
	}
	if m.IsCapture() {
		jm.Path = codec.EncodePositions(m.Path)
	}
	if cfg.Output.AddFEN {
		jm.FEN = engine.BoardToFEN(&m.Board, ply.Player.Opponent())
	}
	return jm
}

