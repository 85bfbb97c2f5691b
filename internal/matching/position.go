package matching

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/hashing"
)

// PositionEntry is a position to look for, with the label reported when a
// game reaches it.
type PositionEntry struct {
	FEN    string
	Label  string
	Board  checkers.Board
	ToMove checkers.Player
}

// PositionMatcher matches games passing through any of a set of positions.
type PositionMatcher struct {
	entries map[uint64][]*PositionEntry
	count   int
}

// NewPositionMatcher creates an empty position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{entries: make(map[uint64][]*PositionEntry)}
}

// AddFEN adds the position given as PDN FEN. label defaults to the FEN.
func (pm *PositionMatcher) AddFEN(fen, label string) error {
	board, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	if label == "" {
		label = fen
	}
	pm.AddPosition(&PositionEntry{FEN: fen, Label: label, Board: board, ToMove: toMove})
	return nil
}

// AddPosition adds an entry.
func (pm *PositionMatcher) AddPosition(e *PositionEntry) {
	h := hashing.GenerateZobristHash(&e.Board, e.ToMove)
	pm.entries[h] = append(pm.entries[h], e)
	pm.count++
}

// Find returns the first entry reached by g, checking the start and then
// the position after each ply, or nil.
func (pm *PositionMatcher) Find(g *game.Game) *PositionEntry {
	toMove := g.StartToMove
	for _, board := range g.Positions() {
		if e := pm.lookup(&board, toMove); e != nil {
			return e
		}
		toMove = toMove.Opponent()
	}
	return nil
}

func (pm *PositionMatcher) lookup(board *checkers.Board, toMove checkers.Player) *PositionEntry {
	for _, e := range pm.entries[hashing.GenerateZobristHash(board, toMove)] {
		if e.Board == *board && e.ToMove == toMove {
			return e
		}
	}
	return nil
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(g *game.Game) bool {
	return pm.Find(g) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}

// PositionCount returns the number of positions added.
func (pm *PositionMatcher) PositionCount() int {
	return pm.count
}
