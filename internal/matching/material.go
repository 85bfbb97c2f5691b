package matching

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/game"
)

// MaterialMatcher matches games reaching a given material balance.
type MaterialMatcher struct {
	pattern    string
	exactMatch bool
	want       checkers.PieceCounts
}

// NewMaterialMatcher parses a pattern "white:black" where each side lists
// its pieces as M (man) and K or Q (king), each optionally preceded by a
// count: "MMK:mm" and "2M1K:2M" are the same balance. With exact the
// position must hold precisely those pieces; otherwise at least them.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	sides := strings.Split(pattern, ":")
	if len(sides) != 2 {
		return nil, fmt.Errorf("material %q: want white:black: %w", pattern, errors.ErrInvalidCriterion)
	}
	var err error
	if mm.want.WhiteMen, mm.want.WhiteQueens, err = parseMaterialSide(sides[0]); err != nil {
		return nil, fmt.Errorf("material %q: %w", pattern, err)
	}
	if mm.want.BlackMen, mm.want.BlackQueens, err = parseMaterialSide(sides[1]); err != nil {
		return nil, fmt.Errorf("material %q: %w", pattern, err)
	}
	return mm, nil
}

// parseMaterialSide counts the men and kings of one side of a pattern.
func parseMaterialSide(s string) (men, kings int, err error) {
	count := ""
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsDigit(r) {
			count += string(r)
			continue
		}
		n := 1
		if count != "" {
			n, _ = strconv.Atoi(count)
			count = ""
		}
		switch unicode.ToUpper(r) {
		case 'M':
			men += n
		case 'K', 'Q':
			kings += n
		default:
			return 0, 0, fmt.Errorf("piece %q: %w", r, errors.ErrInvalidCriterion)
		}
	}
	if count != "" {
		return 0, 0, fmt.Errorf("count %s without piece: %w", count, errors.ErrInvalidCriterion)
	}
	return men, kings, nil
}

// Match implements GameMatcher: any position of g, the start included, has
// the material.
func (mm *MaterialMatcher) Match(g *game.Game) bool {
	for _, board := range g.Positions() {
		if mm.MatchBoard(&board) {
			return true
		}
	}
	return false
}

// MatchBoard reports whether board has the material.
func (mm *MaterialMatcher) MatchBoard(board *checkers.Board) bool {
	c := board.Count()
	if mm.exactMatch {
		return c.WhiteMen == mm.want.WhiteMen && c.WhiteQueens == mm.want.WhiteQueens &&
			c.BlackMen == mm.want.BlackMen && c.BlackQueens == mm.want.BlackQueens
	}
	return c.WhiteMen >= mm.want.WhiteMen && c.WhiteQueens >= mm.want.WhiteQueens &&
		c.BlackMen >= mm.want.BlackMen && c.BlackQueens >= mm.want.BlackQueens
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	return "MaterialMatcher(" + mm.pattern + ")"
}

// PieceCountMatcher matches games reaching exactly n pieces on the board.
func PieceCountMatcher(n int) GameMatcher {
	return MatcherFunc{
		Label: fmt.Sprintf("PieceCount(%d)", n),
		Fn: func(g *game.Game) bool {
			for _, board := range g.Positions() {
				c := board.Count()
				if c.WhiteMen+c.WhiteQueens+c.BlackMen+c.BlackQueens == n {
					return true
				}
			}
			return false
		},
	}
}
