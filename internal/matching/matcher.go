// Package matching selects replayed games by their tags, the positions
// they pass through, their material and their move sequences.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/game"
)

// GameMatcher is one selection criterion over replayed games.
type GameMatcher interface {
	Match(g *game.Game) bool
	// Name describes the criterion in logs and tests.
	Name() string
}

// MatchMode says how a CompositeMatcher combines its members.
type MatchMode int

const (
	MatchAll MatchMode = iota
	MatchAny
)

func (m MatchMode) String() string {
	if m == MatchAny {
		return "Any"
	}
	return "All"
}

// CompositeMatcher combines matchers. An empty MatchAll composite selects
// every game and an empty MatchAny composite selects none.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{matchers: matchers, mode: mode}
}

// Match evaluates members in order. MatchAll stops at the first miss and
// MatchAny at the first hit.
func (c *CompositeMatcher) Match(g *game.Game) bool {
	decisive := c.mode == MatchAny
	for _, m := range c.matchers {
		if m.Match(g) == decisive {
			return decisive
		}
	}
	return !decisive
}

func (c *CompositeMatcher) Name() string {
	var b strings.Builder
	b.WriteString(c.mode.String())
	b.WriteByte('(')
	for i, m := range c.matchers {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name())
	}
	b.WriteByte(')')
	return b.String()
}

func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// MatcherFunc adapts a predicate into a GameMatcher.
type MatcherFunc struct {
	Label string
	Fn    func(g *game.Game) bool
}

func (f MatcherFunc) Match(g *game.Game) bool {
	return f.Fn(g)
}

func (f MatcherFunc) Name() string {
	return f.Label
}

// Not inverts a matcher.
func Not(m GameMatcher) GameMatcher {
	return MatcherFunc{
		Label: "Not(" + m.Name() + ")",
		Fn:    func(g *game.Game) bool { return !m.Match(g) },
	}
}

// PlyRange matches games whose length is within [min, max]. A max of 0
// means no upper limit.
func PlyRange(min, max int) GameMatcher {
	return MatcherFunc{
		Label: fmt.Sprintf("PlyRange(%d-%d)", min, max),
		Fn: func(g *game.Game) bool {
			n := g.Plies()
			return n >= min && (max == 0 || n <= max)
		},
	}
}
