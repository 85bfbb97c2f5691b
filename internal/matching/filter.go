package matching

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/game"
)

// GameFilter is the header and position selection behind the -t file and
// the -T flags. Tag criteria and positions must both be satisfied when both
// are present.
type GameFilter struct {
	TagMatcher      *TagMatcher
	PositionMatcher *PositionMatcher
}

func NewGameFilter() *GameFilter {
	return &GameFilter{TagMatcher: NewTagMatcher(), PositionMatcher: NewPositionMatcher()}
}

// LoadTagFile reads criteria from filename. See LoadTagCriteria.
func (gf *GameFilter) LoadTagFile(filename string) error {
	f, err := os.Open(filename) //nolint:gosec // G304: the file is named on the command line
	if err != nil {
		return err
	}
	defer f.Close()
	return gf.LoadTagCriteria(filename, f)
}

// LoadTagCriteria reads one criterion per line:
//
//	White "Ann"
//	Date >= "2020.01.01"
//	FEN "W:W21,22:B9,10"
//
// FEN lines name a position the game must reach; every other line is a
// tag criterion. Errors carry name and the line number.
func (gf *GameFilter) LoadTagCriteria(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		if err := gf.addLine(strings.TrimSpace(scanner.Text())); err != nil {
			return &errors.ParseError{Err: err, Source: name, Line: n, Got: scanner.Text()}
		}
	}
	return scanner.Err()
}

func (gf *GameFilter) addLine(line string) error {
	if fen, ok := strings.CutPrefix(line, "FEN "); ok {
		return gf.PositionMatcher.AddFEN(strings.Trim(strings.TrimSpace(fen), `"`), "")
	}
	return gf.TagMatcher.ParseCriterion(line)
}

// AddPlayerFilter selects games where either name contains name.
func (gf *GameFilter) AddPlayerFilter(name string) {
	gf.TagMatcher.AddPlayerCriterion(name)
}

func (gf *GameFilter) AddWhiteFilter(name string) {
	gf.mustAdd("White", name, OpContains)
}

func (gf *GameFilter) AddBlackFilter(name string) {
	gf.mustAdd("Black", name, OpContains)
}

func (gf *GameFilter) AddResultFilter(result string) {
	gf.mustAdd("Result", result, OpEqual)
}

// mustAdd adds a criterion whose operator cannot fail to compile.
func (gf *GameFilter) mustAdd(tag, value string, op TagOperator) {
	if err := gf.TagMatcher.AddCriterion(tag, value, op); err != nil {
		panic(err)
	}
}

// AddFENFilter selects games that reach the position.
func (gf *GameFilter) AddFENFilter(fen string) error {
	return gf.PositionMatcher.AddFEN(fen, "")
}

func (gf *GameFilter) HasCriteria() bool {
	return gf.TagMatcher.CriteriaCount() > 0 || gf.PositionMatcher.PositionCount() > 0
}

// Match selects every game when there are no criteria.
func (gf *GameFilter) Match(g *game.Game) bool {
	tagsOK := gf.TagMatcher.CriteriaCount() == 0 || gf.TagMatcher.Match(g)
	return tagsOK && (gf.PositionMatcher.PositionCount() == 0 || gf.PositionMatcher.Match(g))
}

func (gf *GameFilter) Name() string {
	return "GameFilter"
}
