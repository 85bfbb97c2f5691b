package checkers

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// ParseDiagram reads a board written as 8 lines of 8 whitespace-separated
// cell codes, row 0 first. Blank lines and lines starting with '#' are skipped.
// source names the input in error messages.
func ParseDiagram(source, text string) (Board, error) {
	var b Board
	row := 0
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if row == BoardSize {
			return Board{}, &errors.ParseError{
				Err: errors.ErrInvalidBoard, Source: source, Line: lineNum,
				Expected: fmt.Sprintf("%d rows", BoardSize), Got: "extra row",
			}
		}
		fields := strings.Fields(line)
		if len(fields) != BoardSize {
			return Board{}, &errors.ParseError{
				Err: errors.ErrInvalidBoard, Source: source, Line: lineNum,
				Expected: fmt.Sprintf("%d cells", BoardSize), Got: fmt.Sprintf("%d", len(fields)),
			}
		}
		for x, field := range fields {
			cell, err := ParseCellCode(field)
			if err != nil {
				return Board{}, &errors.ParseError{
					Err: errors.ErrInvalidCell, Source: source, Line: lineNum, Column: x + 1,
					Expected: "cell code", Got: fmt.Sprintf("%q", field),
				}
			}
			b[row][x] = cell
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return Board{}, errors.Wrapf(err, "reading %s", source)
	}
	if row != BoardSize {
		return Board{}, &errors.ParseError{
			Err: errors.ErrInvalidBoard, Source: source, Line: lineNum,
			Expected: fmt.Sprintf("%d rows", BoardSize), Got: fmt.Sprintf("%d", row),
		}
	}
	return b, nil
}

// FormatDiagram writes the board in the layout ParseDiagram reads.
func FormatDiagram(b *Board) string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[y][x].Code())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
