// Package codec converts boards, moves and search results to and from their
// JSON wire form.
//
// A board is 8 arrays of 8 cell codes ("0", "1", "w", "b", "wq", "bq"),
// row 0 first; a position is [x, y].
package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/search"
)

// Board is the wire form of a board.
type Board [][]string

// Position is the wire form of a coordinate, [x, y].
type Position [2]int

// Move is the wire form of a move.
type Move struct {
	From      Position   `json:"from"`
	To        Position   `json:"to"`
	Path      []Position `json:"path,omitempty"`
	Text      string     `json:"text"`
	NextBoard Board      `json:"nextBoard"`
}

// Solution is the wire form of a search result. Score is absent for
// "none"; Move is present only for "move".
type Solution struct {
	Kind  string `json:"kind"`
	Score *int   `json:"score,omitempty"`
	Move  *Move  `json:"move,omitempty"`
}

// EncodeBoard converts b to its wire form.
func EncodeBoard(b *checkers.Board) Board {
	rows := make(Board, checkers.BoardSize)
	for y := range rows {
		rows[y] = make([]string, checkers.BoardSize)
		for x := range rows[y] {
			rows[y][x] = b[y][x].Code()
		}
	}
	return rows
}

// DecodeBoard validates the shape and cell codes of rows. Light squares
// must hold "0" and dark squares anything else.
func DecodeBoard(rows Board) (checkers.Board, error) {
	var b checkers.Board
	if len(rows) != checkers.BoardSize {
		return b, &errors.ParseError{
			Err: errors.ErrInvalidBoard, Source: "board",
			Expected: fmt.Sprintf("%d rows", checkers.BoardSize), Got: fmt.Sprintf("%d", len(rows)),
		}
	}
	for y, row := range rows {
		if len(row) != checkers.BoardSize {
			return b, &errors.ParseError{
				Err: errors.ErrInvalidBoard, Source: "board", Line: y + 1,
				Expected: fmt.Sprintf("%d cells", checkers.BoardSize), Got: fmt.Sprintf("%d", len(row)),
			}
		}
		for x, code := range row {
			cell, err := checkers.ParseCellCode(code)
			if err != nil {
				return b, &errors.ParseError{
					Err: errors.ErrInvalidCell, Source: "board", Line: y + 1, Column: x + 1,
					Expected: "cell code", Got: fmt.Sprintf("%q", code),
				}
			}
			if dark := (checkers.Position{X: x, Y: y}).IsDark(); dark == (cell == checkers.LightSquare) {
				expected := "light square code"
				if dark {
					expected = "dark square or piece code"
				}
				return b, &errors.ParseError{
					Err: errors.ErrInvalidBoard, Source: "board", Line: y + 1, Column: x + 1,
					Expected: expected, Got: fmt.Sprintf("%q", code),
				}
			}
			b[y][x] = cell
		}
	}
	return b, nil
}

// EncodePosition converts p to its wire form.
func EncodePosition(p checkers.Position) Position {
	return Position{p.X, p.Y}
}

// DecodePosition validates p, failing with ErrOutOfBounds.
func DecodePosition(p Position) (checkers.Position, error) {
	return checkers.NewPosition(p[0], p[1])
}

// EncodeMove converts m to its wire form.
func EncodeMove(m checkers.Move) Move {
	out := Move{
		From:      EncodePosition(m.From),
		To:        EncodePosition(m.To),
		Text:      engine.MoveText(m),
		NextBoard: EncodeBoard(&m.Board),
	}
	for _, p := range m.Path {
		out.Path = append(out.Path, EncodePosition(p))
	}
	return out
}

// EncodeMoves converts a move list, keeping an empty list non-nil so that
// it encodes as [] rather than null.
func EncodeMoves(moves []checkers.Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, EncodeMove(m))
	}
	return out
}

// EncodePositions converts a coordinate list, never returning nil.
func EncodePositions(ps []checkers.Position) []Position {
	out := make([]Position, 0, len(ps))
	for _, p := range ps {
		out = append(out, EncodePosition(p))
	}
	return out
}

// EncodeSolution converts s to its wire form.
func EncodeSolution(s search.Solution) Solution {
	out := Solution{Kind: s.Kind.String()}
	if s.HasScore() {
		score := s.Score
		out.Score = &score
	}
	if s.HasMove() {
		m := EncodeMove(s.Move)
		out.Move = &m
	}
	return out
}

// DecodePlayer parses "white" or "black".
func DecodePlayer(s string) (checkers.Player, error) {
	return checkers.ParsePlayer(s)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
