// Package game drives whole games: it applies moves in turn, keeps the
// history and decides when a game is over.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/search"
)

// Status is the state of a game.
type Status int

const (
	InProgress Status = iota
	WhiteWins
	BlackWins
	DrawRepetition
	DrawMaxPlies
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case DrawRepetition:
		return "draw by repetition"
	case DrawMaxPlies:
		return "draw by move limit"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s != InProgress
}

// Result returns the PDN result string: "2-0", "0-2", "1-1" or "*".
func (s Status) Result() string {
	switch s {
	case WhiteWins:
		return "2-0"
	case BlackWins:
		return "0-2"
	case DrawRepetition, DrawMaxPlies:
		return "1-1"
	}
	return "*"
}

// Ply is one played move. Promoted is set when a Man became a Queen.
type Ply struct {
	Player   checkers.Player
	Move     checkers.Move
	Text     string
	Promoted bool
}

// Game is a game in progress. It is not safe for concurrent use.
type Game struct {
	ID          uuid.UUID
	Start       checkers.Board
	StartToMove checkers.Player

	// Tags are PDN header pairs carried with the game, in TagOrder.
	Tags     map[string]string
	TagOrder []string

	board   checkers.Board
	toMove  checkers.Player
	history []Ply
	status  Status

	cfg  *config.GameConfig
	reps *hashing.RepetitionDetector
}

// New starts a game from board with toMove to play. A nil cfg uses the
// default game settings.
func New(board checkers.Board, toMove checkers.Player, cfg *config.GameConfig) *Game {
	if cfg == nil {
		cfg = config.NewGameConfig()
	}
	g := &Game{
		ID:          uuid.New(),
		Start:       board,
		StartToMove: toMove,
		board:       board,
		toMove:      toMove,
		cfg:         cfg,
		reps:        hashing.NewRepetitionDetector(),
	}
	g.reps.Record(&g.board, g.toMove)
	g.updateStatus()
	return g
}

// SetTag sets header tag name, keeping the order tags were first set in.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	if _, ok := g.Tags[name]; !ok {
		g.TagOrder = append(g.TagOrder, name)
	}
	g.Tags[name] = value
}

// Tag returns header tag name, or "" if it is not set.
func (g *Game) Tag(name string) string {
	return g.Tags[name]
}

// Positions returns the starting position followed by the position after
// every ply.
func (g *Game) Positions() []checkers.Board {
	out := make([]checkers.Board, 0, len(g.history)+1)
	out = append(out, g.Start)
	for _, p := range g.history {
		out = append(out, p.Move.Board)
	}
	return out
}

// Board returns the current position.
func (g *Game) Board() checkers.Board {
	return g.board
}

// ToMove returns the player to move.
func (g *Game) ToMove() checkers.Player {
	return g.toMove
}

// Status returns the state of the game.
func (g *Game) Status() Status {
	return g.status
}

// History returns the plies played so far.
func (g *Game) History() []Ply {
	return g.history
}

// Plies returns the number of plies played.
func (g *Game) Plies() int {
	return len(g.history)
}

// MoveTexts returns the numeric notation of every ply.
func (g *Game) MoveTexts() []string {
	out := make([]string, len(g.history))
	for i, p := range g.history {
		out[i] = p.Text
	}
	return out
}

// FEN returns the current position as a PDN FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(&g.board, g.toMove)
}

// LegalMoves returns the moves available to the player to move.
func (g *Game) LegalMoves() []checkers.Move {
	if g.status.IsOver() {
		return nil
	}
	return engine.AvailableMoves(&g.board, g.toMove)
}

// Apply plays m for the player to move. m must be one of LegalMoves.
func (g *Game) Apply(m checkers.Move) error {
	text := engine.MoveText(m)
	if g.status.IsOver() {
		return g.plyError(errors.ErrGameOver, text)
	}
	for _, legal := range engine.AvailableMoves(&g.board, g.toMove) {
		if legal.From == m.From && legal.To == m.To && legal.Board == m.Board {
			g.push(legal, text)
			return nil
		}
	}
	return g.plyError(errors.ErrIllegalMove, text)
}

// ApplyText parses text such as "22-18" or "25x11" and plays it.
func (g *Game) ApplyText(text string) (checkers.Move, error) {
	if g.status.IsOver() {
		return checkers.Move{}, g.plyError(errors.ErrGameOver, text)
	}
	m, err := engine.FindMove(&g.board, g.toMove, text)
	if err != nil {
		return checkers.Move{}, g.plyError(err, text)
	}
	g.push(m, engine.MoveText(m))
	return m, nil
}

// PlayEngineMove searches the current position and plays the best move.
func (g *Game) PlayEngineMove(cfg *config.SearchConfig) (checkers.Move, search.Solution, error) {
	if g.status.IsOver() {
		return checkers.Move{}, search.Solution{}, g.plyError(errors.ErrGameOver, "")
	}
	sol, _, err := search.Best(&g.board, g.toMove, cfg)
	if err != nil {
		return checkers.Move{}, sol, err
	}
	if !sol.HasMove() {
		// Only reachable at depth 0; fall back to the first legal move.
		moves := engine.AvailableMoves(&g.board, g.toMove)
		sol = search.MoveSolution(moves[0], sol.ScoreOr(&g.board))
	}
	g.push(sol.Move, engine.MoveText(sol.Move))
	return sol.Move, sol, nil
}

func (g *Game) push(m checkers.Move, text string) {
	before, _ := g.board.CellAt(m.From).Piece()
	after, _ := m.Board.CellAt(m.To).Piece()
	g.history = append(g.history, Ply{
		Player:   g.toMove,
		Move:     m,
		Text:     text,
		Promoted: before.Rank == checkers.Man && after.Rank == checkers.Queen,
	})
	g.board = m.Board
	g.toMove = g.toMove.Opponent()
	g.reps.Record(&g.board, g.toMove)
	g.updateStatus()
}

// updateStatus decides the game state after a ply. The player to move who
// cannot move loses; otherwise repetition and then length limits apply.
func (g *Game) updateStatus() {
	switch {
	case !engine.HasMoves(&g.board, g.toMove):
		if g.toMove == checkers.White {
			g.status = BlackWins
		} else {
			g.status = WhiteWins
		}
	case g.reps.Count(&g.board, g.toMove) >= g.cfg.RepetitionLimit:
		g.status = DrawRepetition
	case len(g.history) >= g.cfg.MaxPlies:
		g.status = DrawMaxPlies
	default:
		g.status = InProgress
	}
}

func (g *Game) plyError(err error, text string) error {
	return &errors.PlyError{Err: err, PlyNum: len(g.history) + 1, MoveText: text}
}
