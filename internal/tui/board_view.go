package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

var (
	lightSquareStyle = lipgloss.NewStyle().Background(lipgloss.Color("230")).Foreground(lipgloss.Color("0"))
	darkSquareStyle  = lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("15"))
	lastMoveStyle    = lipgloss.NewStyle().Background(lipgloss.Color("136")).Foreground(lipgloss.Color("15"))
	whitePieceStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	blackPieceStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0"))
)

// cellText returns the 3-column text of a cell: "w"/"b" for Men, "W"/"B"
// for Queens, "." for an empty dark square.
func cellText(c checkers.Cell) string {
	switch c {
	case checkers.WhiteMan:
		return " w "
	case checkers.WhiteQueen:
		return " W "
	case checkers.BlackMan:
		return " b "
	case checkers.BlackQueen:
		return " B "
	case checkers.DarkSquare:
		return " . "
	}
	return "   "
}

// RenderBoard draws the board row 0 first, with square numbers of the
// dark squares in the margin. Squares in marked are highlighted.
func RenderBoard(board *checkers.Board, marked map[checkers.Position]bool) string {
	var b strings.Builder
	for y := 0; y < checkers.BoardSize; y++ {
		for x := 0; x < checkers.BoardSize; x++ {
			pos := checkers.Position{X: x, Y: y}
			c := board.CellAt(pos)
			text := cellText(c)

			if p, ok := c.Piece(); ok {
				if p.Player == checkers.White {
					text = whitePieceStyle.Render(text)
				} else {
					text = blackPieceStyle.Render(text)
				}
			}

			switch {
			case marked[pos]:
				b.WriteString(lastMoveStyle.Render(text))
			case pos.IsDark():
				b.WriteString(darkSquareStyle.Render(text))
			default:
				b.WriteString(lightSquareStyle.Render(text))
			}
		}
		first := checkers.SquareNumber(checkers.Position{X: 1 - y%2, Y: y})
		b.WriteString(fmt.Sprintf("  %2d-%2d\n", first, first+3))
	}
	return b.String()
}

// RenderNumbers draws the square numbering used for move entry.
func RenderNumbers() string {
	var b strings.Builder
	for y := 0; y < checkers.BoardSize; y++ {
		for x := 0; x < checkers.BoardSize; x++ {
			n := checkers.SquareNumber(checkers.Position{X: x, Y: y})
			if n == 0 {
				b.WriteString("   ")
				continue
			}
			b.WriteString(fmt.Sprintf("%3d", n))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
