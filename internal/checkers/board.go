package checkers

// Board is the 8x8 grid indexed [y][x].
// It is a value type: assigning a Board copies every cell, so a board
// derived for one move never shares storage with its parent.
type Board [BoardSize][BoardSize]Cell

// NewEmptyBoard returns a board with no pieces, light and dark squares laid out.
func NewEmptyBoard() Board {
	var b Board
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if (Position{X: x, Y: y}).IsDark() {
				b[y][x] = DarkSquare
			} else {
				b[y][x] = LightSquare
			}
		}
	}
	return b
}

// InitialBoard returns the standard starting position: 12 Black Men on
// rows 0-2 and 12 White Men on rows 5-7, dark squares only.
func InitialBoard() Board {
	b := NewEmptyBoard()
	for y := 0; y < BoardSize; y++ {
		var cell Cell
		switch {
		case y < 3:
			cell = BlackMan
		case y > 4:
			cell = WhiteMan
		default:
			continue
		}
		for x := 0; x < BoardSize; x++ {
			if (Position{X: x, Y: y}).IsDark() {
				b[y][x] = cell
			}
		}
	}
	return b
}

// CellAt returns the cell at pos. pos must be in bounds.
func (b *Board) CellAt(pos Position) Cell {
	return b[pos.Y][pos.X]
}

// Replace overwrites the cell at pos.
func (b *Board) Replace(pos Position, cell Cell) {
	b[pos.Y][pos.X] = cell
}

// Remove clears the cell at pos to an empty dark square.
func (b *Board) Remove(pos Position) {
	b[pos.Y][pos.X] = DarkSquare
}

// MoveCell moves the content of from to to, promoting a Man that lands on
// its promotion row, and clears from. Captured pieces are not touched.
func (b *Board) MoveCell(from, to Position) {
	cell := b.CellAt(from)
	if p, ok := cell.Piece(); ok {
		cell = CellOf(p.Promoted(to.Y))
	}
	b.Replace(to, cell)
	b.Remove(from)
}

// IsOccupied reports whether a piece stands on pos.
func (b *Board) IsOccupied(pos Position) bool {
	return b.CellAt(pos).IsPiece()
}

// PlacedPiece is a piece together with the square it stands on.
type PlacedPiece struct {
	Position Position
	Piece    Piece
}

// Pieces returns the pieces of player in row-major order.
func (b *Board) Pieces(player Player) []PlacedPiece {
	var out []PlacedPiece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p, ok := b[y][x].Piece(); ok && p.Player == player {
				out = append(out, PlacedPiece{Position: Position{X: x, Y: y}, Piece: p})
			}
		}
	}
	return out
}

// Material returns the signed piece-value sum (Man 1, Queen 5, White positive).
func (b *Board) Material() int {
	sum := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			sum += b[y][x].Value()
		}
	}
	return sum
}

// PieceCounts holds how many of each piece a board carries.
type PieceCounts struct {
	WhiteMen, WhiteQueens int
	BlackMen, BlackQueens int
	Empty                 int
}

// Count tallies the cells of the board.
func (b *Board) Count() PieceCounts {
	var c PieceCounts
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			switch b[y][x] {
			case WhiteMan:
				c.WhiteMen++
			case WhiteQueen:
				c.WhiteQueens++
			case BlackMan:
				c.BlackMen++
			case BlackQueen:
				c.BlackQueens++
			default:
				c.Empty++
			}
		}
	}
	return c
}
