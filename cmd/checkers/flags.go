// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/checkers-go/internal/config"
)

var (
	// Position options
	fenPosition = flag.String("fen", "", "Analyse the position given as PDN FEN (W:W21,22:B1,2)")
	boardFile   = flag.String("b", "", "Analyse the board diagram in this file")
	sampleBoard = flag.Int("sample", 0, "Analyse diagnostic position N")
	playerName  = flag.String("p", "", "Side to move: white or black (default: from FEN, else white)")
	squareNum   = flag.Int("square", 0, "Also list the moves of the piece on square N")

	// Search options
	searchDepth = flag.Int("depth", 4, "Search depth in plies")
	algorithm   = flag.String("algo", "alphabeta", "Search algorithm: minimax or alphabeta")
	workers     = flag.Int("workers", 1, "Goroutines for root-parallel search and self-play")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	appendOut   = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	lineLength  = flag.Int("w", 80, "Maximum line length of move text")
	noBoard     = flag.Bool("noboard", false, "Don't print the board diagram")
	fenComments = flag.Bool("fencomments", false, "Add a FEN comment after every move")
	splitGames  = flag.Int("#", 0, "Split self-play output into files of N games each")

	// Logging options
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose = flag.Bool("v", false, "Report every self-play ply")

	// Self-play options
	selfPlay          = flag.Bool("selfplay", false, "Let the engine play against itself")
	numGames          = flag.Int("games", 1, "Number of self-play games")
	randomPlies       = flag.Int("random", 0, "Random opening plies per self-play game")
	seed              = flag.Int64("seed", 0, "Seed for random openings")
	maxPlies          = flag.Int("maxplies", 200, "Draw a game after this many plies")
	repetitionLimit   = flag.Int("replimit", 3, "Draw a game when a position occurs this often")
	suppressDups      = flag.Bool("D", false, "Suppress games ending in an already seen position")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Selection options (replay mode)
	tagFile          = flag.String("t", "", "Keep games matching the tag criteria in this file")
	whiteFilter      = flag.String("Tw", "", "Keep games where White's name contains this")
	blackFilter      = flag.String("Tb", "", "Keep games where Black's name contains this")
	playerFilter     = flag.String("Tp", "", "Keep games where either player's name contains this")
	resultFilter     = flag.String("Tr", "", "Keep games with this result (2-0, 0-2, 1-1, *)")
	fenFilter        = flag.String("Tf", "", "Keep games passing through this FEN position")
	tagSubstring     = flag.Bool("tagsubstr", false, "Match tag criteria values as substrings")
	moveFile         = flag.String("moves", "", "Keep games following a move sequence from this file")
	positionFile     = flag.String("positions", "", "Keep games passing through a FEN sequence from this file")
	anywhere         = flag.Bool("anywhere", false, "Move sequences may start at any ply")
	materialExact    = flag.String("z", "", "Keep games reaching exactly this material (e.g. 3MK:4M)")
	materialAtLeast  = flag.String("y", "", "Keep games reaching at least this material")
	pieceCount       = flag.Int("piececount", 0, "Keep games reaching a position with N pieces")
	minPly           = flag.Int("minply", 0, "Keep games of at least N plies")
	maxPly           = flag.Int("maxply", 0, "Keep games of at most N plies (0 = no limit)")
	repetitionFilter = flag.Bool("repetition", false, "Keep games where a position occurs three times")
	crowningFilter   = flag.Bool("crowning", false, "Keep games with a crowning")
	multiJumpFilter  = flag.Bool("multijump", false, "Keep games with a capture of two or more pieces")
	oddsFilter       = flag.Bool("odds", false, "Keep games starting with unequal material")
	commentedFilter  = flag.Bool("commented", false, "Keep games with comments")
	negateMatch      = flag.Bool("n", false, "Output the games that do not match the selection")
	strictMode       = flag.Bool("strict", false, "Reject games without the seven-tag header")
	splitVariants    = flag.Bool("splitvariants", false, "Replay each variation as a game of its own")
	openingBook      = flag.String("e", "", "Add Opening tags from this PDN opening book")

	// Benchmark options
	benchmark  = flag.Bool("bench", false, "Time searches of the initial position")
	benchFrom  = flag.Int("from", 2, "Benchmark: first depth")
	benchTo    = flag.Int("to", 6, "Benchmark: last depth")
	benchIters = flag.Int("iterations", 10, "Benchmark: runs per depth")
	benchAlgo  = flag.String("benchalgo", "", "Benchmark only this algorithm (default: both)")

	// Play options
	play      = flag.Bool("play", false, "Play against the engine in the terminal")
	humanSide = flag.String("human", "white", "Play as white or black")

	// Meta options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyGameFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applySearchFlags configures the search algorithm, depth and workers.
func applySearchFlags(cfg *config.Config) error {
	algo, err := config.ParseAlgorithm(*algorithm)
	if err != nil {
		return err
	}
	cfg.Search.Algorithm = algo
	cfg.Search.Depth = *searchDepth
	cfg.Search.Workers = *workers
	return nil
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.AddFEN = *fenComments
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyGameFlags configures self-play games.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.Games = *numGames
	cfg.Game.RandomOpeningPlies = *randomPlies
	cfg.Game.Seed = *seed
	cfg.Game.MaxPlies = *maxPlies
	cfg.Game.RepetitionLimit = *repetitionLimit
}
