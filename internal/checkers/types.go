// Package checkers provides the core draughts types: players, pieces, cells,
// positions, boards and moves.
package checkers

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Player represents one side of the game.
// White is the maximizing side in evaluation, Black the minimizing side.
type Player int

const (
	White Player = iota
	Black
)

// String returns the lower-case name of the player.
func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// IsEnemyTo reports whether p and other are on opposite sides.
func (p Player) IsEnemyTo(other Player) bool {
	return p != other
}

// IsMaximizing reports whether the player maximizes the evaluation.
func (p Player) IsMaximizing() bool {
	return p == White
}

// PromotionRow returns the row on which a Man of this player becomes a Queen.
func (p Player) PromotionRow() int {
	if p == White {
		return 0
	}
	return BoardSize - 1
}

// ParsePlayer converts "white"/"black" (case-insensitive, or "w"/"b") to a Player.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("%q: %w", s, errors.ErrInvalidPlayer)
}

// Rank distinguishes unpromoted and promoted pieces.
type Rank int

const (
	Man Rank = iota
	Queen
)

// String returns the name of the rank.
func (r Rank) String() string {
	if r == Queen {
		return "queen"
	}
	return "man"
}

// Piece is a player's piece of a given rank.
type Piece struct {
	Player Player
	Rank   Rank
}

// String returns e.g. "white man".
func (p Piece) String() string {
	return p.Player.String() + " " + p.Rank.String()
}

// Promoted returns the piece as it stands after landing on row y.
func (p Piece) Promoted(y int) Piece {
	if p.Rank == Man && y == p.Player.PromotionRow() {
		return Piece{Player: p.Player, Rank: Queen}
	}
	return p
}

// Value returns the signed material value: Man 1, Queen 5, positive for White.
func (p Piece) Value() int {
	v := 1
	if p.Rank == Queen {
		v = 5
	}
	if p.Player == Black {
		return -v
	}
	return v
}
