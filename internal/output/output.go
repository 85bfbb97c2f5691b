// Package output provides game output formatting in PDN and JSON.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/game"
)

// lineWriter joins tokens with single spaces and breaks the line before a
// token that would pass the width.
type lineWriter struct {
	w     *bufio.Writer
	width int
	col   int
}

func newLineWriter(w io.Writer, width int) *lineWriter {
	if width <= 0 {
		width = 80
	}
	return &lineWriter{w: bufio.NewWriter(w), width: width}
}

func (lw *lineWriter) token(s string) {
	if s == "" {
		return
	}
	switch {
	case lw.col == 0:
	case lw.col+1+len(s) > lw.width:
		lw.w.WriteByte('\n')
		lw.col = 0
	default:
		lw.w.WriteByte(' ')
		lw.col++
	}
	lw.w.WriteString(s)
	lw.col += len(s)
}

// end terminates the current line and flushes. The first write error, if
// any, is returned.
func (lw *lineWriter) end() error {
	lw.w.WriteByte('\n')
	lw.col = 0
	return lw.w.Flush()
}

// GameTypeEnglish is the PDN GameType of 8x8 English draughts.
const GameTypeEnglish = "21"

// Tag is a PDN header pair.
type Tag struct {
	Name  string
	Value string
}

// GameTags returns the header of g in output order. Event, Round, White,
// Black and GameType come from the tags of g when set; Result always
// reflects the status of g. round is used when g has no Round tag and is
// omitted when 0. The FEN tag appears only when the game did not start
// from the initial position with White to move. Other tags of g follow in
// their own order.
func GameTags(g *game.Game, round int) []Tag {
	tags := []Tag{{"Event", tagOr(g, "Event", "checkers-go")}}
	if r := g.Tag("Round"); r != "" {
		tags = append(tags, Tag{"Round", r})
	} else if round > 0 {
		tags = append(tags, Tag{"Round", strconv.Itoa(round)})
	}
	tags = append(tags,
		Tag{"White", tagOr(g, "White", "engine")},
		Tag{"Black", tagOr(g, "Black", "engine")},
		Tag{"Result", g.Status().Result()},
		Tag{"GameType", tagOr(g, "GameType", GameTypeEnglish)},
	)
	if fen, ok := setupFEN(g); ok {
		tags = append(tags, Tag{"FEN", fen})
	}
	for _, name := range g.TagOrder {
		if !headerTags[name] {
			tags = append(tags, Tag{name, g.Tags[name]})
		}
	}
	return tags
}

// headerTags are written by GameTags in fixed positions.
var headerTags = map[string]bool{
	"Event": true, "Round": true, "White": true, "Black": true,
	"Result": true, "GameType": true, "FEN": true,
}

func tagOr(g *game.Game, name, def string) string {
	if v := g.Tag(name); v != "" {
		return v
	}
	return def
}

// setupFEN returns the FEN of the starting position of g, and whether it
// differs from the standard start.
func setupFEN(g *game.Game) (string, bool) {
	if g.Start == checkers.InitialBoard() && g.StartToMove == checkers.White {
		return "", false
	}
	return engine.BoardToFEN(&g.Start, g.StartToMove), true
}

// OutputGame writes g in PDN: the tag header, a blank line, the numbered
// move text ending with the result, and a blank line.
func OutputGame(w io.Writer, g *game.Game, round int, cfg *config.Config) error {
	bw := bufio.NewWriter(w)
	for _, tag := range GameTags(g, round) {
		fmt.Fprintf(bw, "[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value))
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := outputMoves(w, g, cfg); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

var tagEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeTagValue(s string) string {
	return tagEscaper.Replace(s)
}

// outputMoves writes the move text. White moves carry their number, as
// does a first move by Black ("1...").
func outputMoves(w io.Writer, g *game.Game, cfg *config.Config) error {
	lw := newLineWriter(w, int(cfg.Output.MaxLineLength))

	for i, ply := range g.History() {
		number := i/2 + 1
		if g.StartToMove == checkers.Black {
			number = (i+1)/2 + 1
		}
		switch {
		case ply.Player == checkers.White:
			lw.token(strconv.Itoa(number) + ".")
		case i == 0:
			lw.token(strconv.Itoa(number) + "...")
		}
		lw.token(ply.Text)
		if cfg.Output.AddFEN {
			lw.token("{" + engine.BoardToFEN(&ply.Move.Board, ply.Player.Opponent()) + "}")
		}
	}

	lw.token(g.Status().Result())
	return lw.end()
}
