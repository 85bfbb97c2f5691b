package checkers

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Cell is the content of one square.
//
// The values pack three flags: bit 2 marks a piece, bit 1 a Queen and
// bit 0 the colour (Black, or a dark square when empty). Raw values only
// enter through DecodeCell.
type Cell uint8

const (
	LightSquare Cell = 0b000 // empty light square, never holds a piece
	DarkSquare  Cell = 0b001 // empty dark square
	WhiteMan    Cell = 0b100
	BlackMan    Cell = 0b101
	WhiteQueen  Cell = 0b110
	BlackQueen  Cell = 0b111
)

const (
	colourBit = 0b001
	queenBit  = 0b010
	pieceBit  = 0b100
)

// DecodeCell converts a packed cell value, failing for bit patterns that name no cell.
func DecodeCell(v uint8) (Cell, error) {
	c := Cell(v)
	if !c.IsValid() {
		return DarkSquare, fmt.Errorf("value %#03b: %w", v, errors.ErrInvalidCell)
	}
	return c, nil
}

// Encode returns the packed value of the cell.
func (c Cell) Encode() uint8 {
	return uint8(c)
}

// IsValid reports whether c is one of the six defined cells.
func (c Cell) IsValid() bool {
	switch c {
	case LightSquare, DarkSquare, WhiteMan, BlackMan, WhiteQueen, BlackQueen:
		return true
	}
	return false
}

// IsPiece reports whether the cell holds a piece.
func (c Cell) IsPiece() bool {
	return c.IsValid() && c&pieceBit != 0
}

// Piece returns the piece held by the cell, if any.
func (c Cell) Piece() (Piece, bool) {
	if !c.IsPiece() {
		return Piece{}, false
	}
	p := Piece{Player: White, Rank: Man}
	if c&colourBit != 0 {
		p.Player = Black
	}
	if c&queenBit != 0 {
		p.Rank = Queen
	}
	return p, true
}

// IsEnemyTo reports whether the cell holds a piece of the opponent of player.
func (c Cell) IsEnemyTo(player Player) bool {
	p, ok := c.Piece()
	return ok && p.Player.IsEnemyTo(player)
}

// CellOf returns the cell holding piece p.
func CellOf(p Piece) Cell {
	c := Cell(pieceBit)
	if p.Player == Black {
		c |= colourBit
	}
	if p.Rank == Queen {
		c |= queenBit
	}
	return c
}

// Value returns the signed material value of the cell's piece, 0 if empty.
func (c Cell) Value() int {
	p, ok := c.Piece()
	if !ok {
		return 0
	}
	return p.Value()
}

var cellCodes = map[Cell]string{
	LightSquare: "0",
	DarkSquare:  "1",
	WhiteMan:    "w",
	BlackMan:    "b",
	WhiteQueen:  "wq",
	BlackQueen:  "bq",
}

// Code returns the text code of the cell: "0", "1", "w", "b", "wq" or "bq".
func (c Cell) Code() string {
	if s, ok := cellCodes[c]; ok {
		return s
	}
	return "?"
}

// String returns the text code of the cell.
func (c Cell) String() string {
	return c.Code()
}

// ParseCellCode converts a text code back to a cell.
func ParseCellCode(s string) (Cell, error) {
	for c, code := range cellCodes {
		if code == s {
			return c, nil
		}
	}
	return DarkSquare, fmt.Errorf("code %q: %w", s, errors.ErrInvalidCell)
}
