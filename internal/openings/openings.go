// Package openings names the opening a game was played from, using a book
// of PDN games tagged with Opening and Variation.
package openings

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/parser"
)

// PlyLimit is how far a game may be from a book line's length and still
// match it by transposition.
const PlyLimit = 6

// TableSize is the number of hash buckets in a Classifier.
const TableSize = 4096

// Entry is one book line.
type Entry struct {
	Opening   string // e.g. "Single Corner"
	Variation string
	Ballot    string // the move list the line was drawn from, e.g. "22-18 11-15"

	RequiredHash   uint64 // position at the end of the line
	CumulativeHash uint64 // XOR of every position along the line
	Plies          int
	next           *Entry
}

// Classifier matches games against a loaded book.
type Classifier struct {
	table         [TableSize]*Entry
	maxPlies      int
	entriesLoaded int
	cfg           *config.Config
}

// NewClassifier creates an empty classifier. A nil cfg logs nothing.
func NewClassifier(cfg *config.Config) *Classifier {
	if cfg == nil {
		cfg = config.NewConfig()
		cfg.Verbosity = 0
	}
	return &Classifier{maxPlies: PlyLimit, cfg: cfg}
}

// LoadFromFile loads a book from a PDN file.
func (c *Classifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: user-specified book file
	if err != nil {
		return fmt.Errorf("cannot open opening book: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	return c.LoadFromReader(file)
}

// LoadFromReader loads a book from PDN text. Games without an Opening tag
// are skipped; a line with an illegal move is cut short at that move.
func (c *Classifier) LoadFromReader(r io.Reader) error {
	quiet := *c.cfg
	quiet.Verbosity = 0

	games, err := parser.NewParser(r, &quiet).ParseAllGames()
	if err != nil {
		return fmt.Errorf("error parsing opening book: %w", err)
	}
	for i, pg := range games {
		c.addEntry(pg, i+1)
	}
	return nil
}

func (c *Classifier) addEntry(pg *parser.Game, num int) {
	opening := pg.GetTag("Opening")
	if opening == "" {
		return
	}

	g, err := parser.Replay(pg, nil, num)
	if err != nil {
		c.cfg.Logf(1, "Opening book: %v\n", err)
		if g == nil {
			return
		}
	}
	if g.Plies() == 0 {
		return
	}

	hashes := lineHashes(g)
	entry := &Entry{
		Opening:      opening,
		Variation:    pg.GetTag("Variation"),
		Ballot:       pg.GetTag("Ballot"),
		RequiredHash: hashes[len(hashes)-1],
		Plies:        len(hashes),
	}
	for _, h := range hashes {
		entry.CumulativeHash ^= h
	}

	ix := entry.RequiredHash % TableSize
	for existing := c.table[ix]; existing != nil; existing = existing.next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.Plies == entry.Plies &&
			existing.CumulativeHash == entry.CumulativeHash {
			return
		}
	}

	entry.next = c.table[ix]
	c.table[ix] = entry
	c.entriesLoaded++

	if entry.Plies+PlyLimit > c.maxPlies {
		c.maxPlies = entry.Plies + PlyLimit
	}
}

// lineHashes returns the hash of the position after each ply of g.
func lineHashes(g *game.Game) []uint64 {
	history := g.History()
	hashes := make([]uint64, len(history))
	for i, ply := range history {
		board := ply.Move.Board
		hashes[i] = hashing.GenerateZobristHash(&board, ply.Player.Opponent())
	}
	return hashes
}

// Classify returns the book line g was played from, or nil. The deepest
// line that g follows exactly wins; failing that, the last position of g
// that some line reaches by a different move order.
func (c *Classifier) Classify(g *game.Game) *Entry {
	if c.entriesLoaded == 0 {
		return nil
	}

	var best *Entry
	var cumulative uint64
	for i, h := range lineHashes(g) {
		plies := i + 1
		if plies > c.maxPlies {
			break
		}
		cumulative ^= h
		if match := c.findMatch(h, cumulative, plies); match != nil {
			best = match
		}
	}
	return best
}

func (c *Classifier) findMatch(posHash, cumulative uint64, plies int) *Entry {
	var possible *Entry
	for entry := c.table[posHash%TableSize]; entry != nil; entry = entry.next {
		if entry.RequiredHash != posHash {
			continue
		}
		if entry.Plies == plies && entry.CumulativeHash == cumulative {
			return entry
		}
		if abs(plies-entry.Plies) <= PlyLimit {
			possible = entry
		}
	}
	return possible
}

// AddTags sets the Opening, Variation and Ballot tags of g from its book
// line. It reports whether a line was found.
func (c *Classifier) AddTags(g *game.Game) bool {
	match := c.Classify(g)
	if match == nil {
		return false
	}

	g.SetTag("Opening", match.Opening)
	if match.Variation != "" {
		g.SetTag("Variation", match.Variation)
	}
	if match.Ballot != "" {
		g.SetTag("Ballot", match.Ballot)
	}
	return true
}

// EntriesLoaded returns the number of book lines loaded.
func (c *Classifier) EntriesLoaded() int {
	return c.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
