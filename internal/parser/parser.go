package parser

import (
	"io"

	"github.com/lgbarn/checkers-go/internal/config"
)

// Move is one ply as written in a game file. Its legality is only known
// once the game is replayed.
type Move struct {
	Text       string
	NAGs       []string
	Comments   []string
	Variations []*Variation
}

// Variation is an alternative line given in parentheses after a move.
type Variation struct {
	Moves  []*Move
	Result string
}

// Game is a game read from PDN: its tags and main line.
type Game struct {
	Tags          map[string]string
	TagOrder      []string
	PrefixComment []string
	Moves         []*Move
	Result        string

	StartLine uint
	EndLine   uint
}

func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// GetTag returns the value of tag name, or "" if absent.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets tag name. TagOrder keeps the order of first appearance.
func (g *Game) SetTag(name, value string) {
	if _, seen := g.Tags[name]; !seen {
		g.TagOrder = append(g.TagOrder, name)
	}
	g.Tags[name] = value
}

func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// MoveTexts returns the main-line move texts.
func (g *Game) MoveTexts() []string {
	texts := make([]string, 0, len(g.Moves))
	for _, m := range g.Moves {
		texts = append(texts, m.Text)
	}
	return texts
}

// Parser reads games from a PDN stream one at a time. Malformed input is
// reported through the config log and skipped.
type Parser struct {
	lex   *Lexer
	tok   *Token
	depth uint
	cfg   *config.Config
}

// NewParser creates a parser reading r. A nil cfg gets the defaults.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{lex: NewLexer(r, cfg), cfg: cfg}
}

func (p *Parser) advance() {
	p.tok = p.lex.NextToken()
}

func (p *Parser) at(t TokenType) bool {
	return p.tok.Type == t
}

// take consumes the current token if it has type t.
func (p *Parser) take(t TokenType) (string, bool) {
	if !p.at(t) {
		return "", false
	}
	text := p.tok.TokenString
	p.advance()
	return text, true
}

func (p *Parser) comments() []string {
	var out []string
	for {
		c, ok := p.take(CommentToken)
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// ParseGame returns the next game, or nil once the input is exhausted.
func (p *Parser) ParseGame() (*Game, error) {
	for {
		if p.tok == nil || p.at(NoToken) {
			p.advance()
		}
		if p.at(EOFToken) {
			return nil, nil
		}
		if g := p.game(); g != nil {
			return g, nil
		}
	}
}

// ParseAllGames reads every remaining game.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		g, err := p.ParseGame()
		if err != nil || g == nil {
			return games, err
		}
		games = append(games, g)
	}
}

// game reads one game. Input holding neither tags nor moves yields nil.
func (p *Parser) game() *Game {
	p.seekGameStart()

	g := NewGame()
	g.PrefixComment = p.comments()
	g.StartLine = p.lex.LineNumber()
	p.tags(g)
	g.PrefixComment = append(g.PrefixComment, p.comments()...)

	g.Moves = p.moves()
	trailing := p.comments()
	result := p.result()
	g.EndLine = p.lex.LineNumber()

	if len(g.Moves) == 0 && len(g.Tags) == 0 {
		return nil
	}
	if n := len(g.Moves); n > 0 {
		g.Moves[n-1].Comments = append(g.Moves[n-1].Comments, trailing...)
	}

	tag := g.GetTag("Result")
	switch {
	case result == "":
		g.Result = tag
	case tag == "" || tag == "?":
		g.SetTag("Result", result)
		g.Result = result
	default:
		g.Result = result
	}
	return g
}

func (p *Parser) seekGameStart() {
	for {
		switch p.tok.Type {
		case EOFToken, TagToken, MoveToken, MoveNumber, CommentToken, TerminatingResult:
			return
		}
		p.advance()
	}
}

func (p *Parser) tags(g *Game) {
	for {
		switch p.tok.Type {
		case TagToken:
			name := p.tok.TokenString
			p.advance()
			if value, ok := p.take(StringToken); ok {
				g.SetTag(name, value)
			} else {
				p.cfg.Logf(1, "Tag %s has no value on line %d.\n", name, p.lex.LineNumber())
			}
		case StringToken:
			p.cfg.Logf(1, "Tag value %q has no name on line %d.\n", p.tok.TokenString, p.lex.LineNumber())
			p.advance()
		default:
			return
		}
	}
}

// moves reads a line of moves, each with its NAGs, comments and
// variations.
func (p *Parser) moves() []*Move {
	var line []*Move
	for {
		p.take(MoveNumber)
		text, ok := p.take(MoveToken)
		if !ok {
			return line
		}
		m := &Move{Text: text}
		for nag, ok := p.take(NAGToken); ok; nag, ok = p.take(NAGToken) {
			m.NAGs = append(m.NAGs, nag)
		}
		m.Comments = p.comments()
		for p.at(RAVStart) {
			m.Variations = append(m.Variations, p.variation())
		}
		m.Comments = append(m.Comments, p.comments()...)
		line = append(line, m)
	}
}

func (p *Parser) variation() *Variation {
	p.depth++
	p.advance()
	p.comments()

	v := &Variation{Moves: p.moves()}
	if len(v.Moves) == 0 {
		p.cfg.Logf(1, "Variation without moves on line %d.\n", p.lex.LineNumber())
	}
	v.Result = p.result()

	p.depth--
	if _, ok := p.take(RAVEnd); !ok {
		p.cfg.Logf(1, "Variation not closed on line %d.\n", p.lex.LineNumber())
	}
	return v
}

// result consumes a terminating result. At the top level the token is
// replaced by NoToken so the next game starts from fresh input.
func (p *Parser) result() string {
	if !p.at(TerminatingResult) {
		return ""
	}
	r := p.tok.TokenString
	if p.depth == 0 {
		p.tok = &Token{Type: NoToken}
	} else {
		p.advance()
	}
	return r
}
