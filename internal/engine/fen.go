package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// InitialFEN is the PDN FEN string for the standard starting position.
// Black holds squares 1-12, White squares 21-32, White to move.
const InitialFEN = "W:W21-32:B1-12"

// ParseFEN parses a PDN FEN string such as "W:W21,22,K30:B1-4,K9".
// Squares use the standard 1..32 numbering, 'K' marks a Queen and
// "a-b" denotes a range of squares of the same rank.
func ParseFEN(fen string) (checkers.Board, checkers.Player, error) {
	fen = strings.TrimSuffix(strings.TrimSpace(fen), ".")
	parts := strings.Split(fen, ":")
	if parts[0] == "" {
		return checkers.Board{}, checkers.White, fenError(1, "side to move", "empty string")
	}

	toMove, err := parseFENSide(parts[0])
	if err != nil {
		return checkers.Board{}, checkers.White, err
	}
	board := checkers.NewEmptyBoard()
	for i, section := range parts[1:] {
		if err := parseFENSection(&board, section, i+2); err != nil {
			return checkers.Board{}, checkers.White, err
		}
	}
	return board, toMove, nil
}

// parseFENSide parses the side to move field.
func parseFENSide(field string) (checkers.Player, error) {
	switch strings.ToUpper(field) {
	case "W":
		return checkers.White, nil
	case "B":
		return checkers.Black, nil
	}
	return checkers.White, fenError(1, "W or B", fmt.Sprintf("%q", field))
}

// parseFENSection parses one colour's piece list, e.g. "W21,22,K30".
func parseFENSection(board *checkers.Board, section string, field int) error {
	section = strings.TrimSpace(section)
	if section == "" {
		return fenError(field, "piece list", "empty field")
	}

	var player checkers.Player
	switch section[0] {
	case 'W', 'w':
		player = checkers.White
	case 'B', 'b':
		player = checkers.Black
	default:
		return fenError(field, "W or B", fmt.Sprintf("%q", section[:1]))
	}

	list := section[1:]
	if list == "" {
		return nil
	}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		piece := checkers.Piece{Player: player, Rank: checkers.Man}
		if strings.HasPrefix(item, "K") || strings.HasPrefix(item, "k") {
			piece.Rank = checkers.Queen
			item = item[1:]
		}
		lo, hi, err := parseSquareRange(item)
		if err != nil {
			return fenError(field, "square number", fmt.Sprintf("%q", item))
		}
		for n := lo; n <= hi; n++ {
			p, err := checkers.SquarePosition(n)
			if err != nil {
				return fenError(field, "square 1-32", strconv.Itoa(n))
			}
			board.Replace(p, checkers.CellOf(piece))
		}
	}
	return nil
}

// parseSquareRange parses "n" or "a-b".
func parseSquareRange(item string) (int, int, error) {
	if lo, hi, found := strings.Cut(item, "-"); found {
		a, err := strconv.Atoi(lo)
		if err != nil {
			return 0, 0, err
		}
		b, err := strconv.Atoi(hi)
		if err != nil {
			return 0, 0, err
		}
		if b < a {
			return 0, 0, errors.ErrInvalidFEN
		}
		return a, b, nil
	}
	n, err := strconv.Atoi(item)
	return n, n, err
}

func fenError(field int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Source:   "fen",
		Column:   field,
		Expected: expected,
		Got:      got,
	}
}

// BoardToFEN converts a board and side to move to a PDN FEN string.
// Squares are listed individually in ascending order.
func BoardToFEN(board *checkers.Board, toMove checkers.Player) string {
	var sb strings.Builder
	if toMove == checkers.White {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	writeFENSection(&sb, board, checkers.White)
	writeFENSection(&sb, board, checkers.Black)
	return sb.String()
}

// writeFENSection writes ":W..." or ":B..." for player.
func writeFENSection(sb *strings.Builder, board *checkers.Board, player checkers.Player) {
	sb.WriteByte(':')
	if player == checkers.White {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	first := true
	for n := 1; n <= checkers.BoardSize*checkers.BoardSize/2; n++ {
		p, _ := checkers.SquarePosition(n)
		piece, ok := board.CellAt(p).Piece()
		if !ok || piece.Player != player {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if piece.Rank == checkers.Queen {
			sb.WriteByte('K')
		}
		sb.WriteString(strconv.Itoa(n))
	}
}
