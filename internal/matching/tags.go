package matching

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/game"
)

// TagOperator is the comparison a tag criterion applies.
type TagOperator int

const (
	OpEqual TagOperator = iota
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpContains
	OpRegex
)

// Two-character symbols come first so "<=" is not read as "<".
var operatorSymbols = []struct {
	symbol string
	op     TagOperator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLess},
	{">", OpGreater},
	{"=", OpEqual},
	{"~", OpRegex},
}

// playerTag stands for "White or Black".
const playerTag = "_Player"

type tagCriterion struct {
	tag   string
	value string
	lower string
	op    TagOperator
	re    *regexp.Regexp
}

// TagMatcher selects games by their header tags. Equality ignores case;
// regular expressions do not.
type TagMatcher struct {
	criteria  []*tagCriterion
	substring bool
	all       bool
}

// NewTagMatcher returns a matcher that requires every criterion.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{all: true}
}

// SetMatchAll chooses between requiring every criterion and any one.
func (tm *TagMatcher) SetMatchAll(all bool) {
	tm.all = all
}

// SetSubstringMatch lets equality criteria match anywhere in the value.
func (tm *TagMatcher) SetSubstringMatch(use bool) {
	tm.substring = use
}

func (tm *TagMatcher) AddCriterion(tag, value string, op TagOperator) error {
	c := &tagCriterion{tag: tag, value: value, lower: strings.ToLower(value), op: op}
	if op == OpRegex {
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s: %w", tag, err)
		}
		c.re = re
	}
	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayerCriterion matches name anywhere in White or Black.
func (tm *TagMatcher) AddPlayerCriterion(name string) {
	tm.criteria = append(tm.criteria, &tagCriterion{
		tag: playerTag, value: name, lower: strings.ToLower(name), op: OpContains,
	})
}

// ParseCriterion adds a criterion written as a tag name, an optional
// operator and a value, quoted or not:
//
//	White "Ann"
//	Date >= "2020.01.01"
//	Event ~ "^Club"
//
// Blank lines and '#' comments add nothing.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return nil
	}

	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return fmt.Errorf("criterion %q: %w", line, errors.ErrInvalidCriterion)
	}
	tag, rest := line[:end], strings.TrimSpace(line[end:])

	op := OpEqual
	for _, s := range operatorSymbols {
		if after, ok := strings.CutPrefix(rest, s.symbol); ok {
			op, rest = s.op, after
			break
		}
	}

	value := strings.TrimSpace(rest)
	if n := len(value); n >= 2 && value[0] == '"' && value[n-1] == '"' {
		value = value[1 : n-1]
	}
	if value == "" && op != OpNotEqual {
		return fmt.Errorf("criterion %q: missing value: %w", line, errors.ErrInvalidCriterion)
	}
	return tm.AddCriterion(tag, value, op)
}

// Match selects every game when there are no criteria.
func (tm *TagMatcher) Match(g *game.Game) bool {
	if len(tm.criteria) == 0 {
		return true
	}
	for _, c := range tm.criteria {
		if tm.matches(g, c) != tm.all {
			return !tm.all
		}
	}
	return tm.all
}

func (tm *TagMatcher) Name() string {
	return "TagMatcher"
}

func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}

func (tm *TagMatcher) matches(g *game.Game, c *tagCriterion) bool {
	if c.tag == playerTag {
		return tm.accepts(c, g.Tag("White")) || tm.accepts(c, g.Tag("Black"))
	}
	value, ok := g.Tags[c.tag]
	if !ok {
		return c.op == OpNotEqual
	}
	return tm.accepts(c, value)
}

func (tm *TagMatcher) accepts(c *tagCriterion, value string) bool {
	switch c.op {
	case OpEqual:
		if tm.substring {
			return strings.Contains(strings.ToLower(value), c.lower)
		}
		return strings.EqualFold(value, c.value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.lower)
	case OpRegex:
		return c.re != nil && c.re.MatchString(value)
	}

	order := orderValues(value, c.value)
	switch c.op {
	case OpLess:
		return order < 0
	case OpLessOrEqual:
		return order <= 0
	case OpGreater:
		return order > 0
	case OpGreaterOrEqual:
		return order >= 0
	}
	return false
}

// orderValues compares tag values as dates when both are dates, as
// numbers when both are numbers, and as case-folded strings otherwise.
func orderValues(a, b string) int {
	if da, db := parseDate(a), parseDate(b); da > 0 && db > 0 {
		return cmp.Compare(da, db)
	}
	if fa, err := strconv.ParseFloat(a, 64); err == nil {
		if fb, err := strconv.ParseFloat(b, 64); err == nil {
			return cmp.Compare(fa, fb)
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// parseDate reads YYYY.MM.DD as the number YYYYMMDD, or 0 when s has no
// plausible year. Unknown month or day ("??") counts as 1.
func parseDate(s string) int {
	fields := strings.SplitN(s, ".", 3)
	year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}
	part := func(i, hi int) int {
		if i < len(fields) {
			if v, err := strconv.Atoi(strings.TrimSpace(fields[i])); err == nil && v >= 1 && v <= hi {
				return v
			}
		}
		return 1
	}
	return year*10000 + part(1, 12)*100 + part(2, 31)
}
