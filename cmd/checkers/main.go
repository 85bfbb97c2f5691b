// checkers analyses draughts positions, plays engine self-play matches,
// replays PDN game files, benchmarks the search and lets a human play
// against the engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/tui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	switch {
	case *help:
		usage()
		return
	case *version:
		fmt.Printf("checkers-go version %s\n", programVersion)
		return
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fail(err)
	}

	if *play {
		human, err := checkers.ParsePlayer(*humanSide)
		if err == nil {
			err = tui.Run(cfg, human)
		}
		if err != nil {
			fail(err)
		}
		return
	}

	if err := openFiles(cfg); err != nil {
		fail(err)
	}

	var err error
	switch {
	case *selfPlay:
		var split *splitWriter
		if *splitGames > 0 {
			base := "selfplay"
			if *outputFile != "" {
				base = strings.TrimSuffix(*outputFile, filepath.Ext(*outputFile))
			}
			ext := ".pdn"
			if cfg.Output.JSONFormat {
				ext = ".json"
			}
			split = newSplitWriter(base, ext, *splitGames)
			cfg.OutputFile = split
			defer split.Close() //nolint:errcheck // closed on exit
		}
		var res selfPlayResult
		res, err = runSelfPlay(cfg, split)
		if err == nil && cfg.Verbosity > 0 {
			reportStatistics(cfg, res)
		}

	case *benchmark:
		var algos []config.Algorithm
		algos, err = benchAlgorithms(*benchAlgo)
		if err == nil {
			err = runBenchmark(cfg, algos, *benchFrom, *benchTo, *benchIters)
		}

	case flag.NArg() > 0:
		var res replayResult
		res, err = runReplay(cfg, flag.Args())
		if err == nil {
			reportReplay(cfg, res)
			if res.Errors > 0 {
				os.Exit(2)
			}
		}

	default:
		var board checkers.Board
		var toMove checkers.Player
		board, toMove, err = loadPosition()
		if err == nil {
			err = analysePosition(cfg, &board, toMove, *squareNum)
		}
	}

	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// openFiles points the log and output streams at the -l and -o files.
// -a appends to the output file instead of truncating it.
func openFiles(cfg *config.Config) error {
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		cfg.SetLog(f)
	}
	if *outputFile == "" {
		return nil
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if *appendOut {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(*outputFile, flags, 0o644) //nolint:gosec // G302: ordinary user output file
	if err != nil {
		return fmt.Errorf("output file: %w", err)
	}
	cfg.SetOutput(f)
	return nil
}

// loadPosition picks the position to analyse from -fen, -b or -sample,
// falling back to the initial board. -p overrides the side to move.
func loadPosition() (checkers.Board, checkers.Player, error) {
	board := checkers.InitialBoard()
	toMove := checkers.White

	switch {
	case *fenPosition != "":
		b, p, err := engine.ParseFEN(*fenPosition)
		if err != nil {
			return board, toMove, err
		}
		board, toMove = b, p

	case *boardFile != "":
		data, err := os.ReadFile(*boardFile) //nolint:gosec // G304: user-specified input file
		if err != nil {
			return board, toMove, err
		}
		b, err := checkers.ParseDiagram(*boardFile, string(data))
		if err != nil {
			return board, toMove, err
		}
		board = b

	case *sampleBoard != 0:
		b, err := checkers.SampleBoard(*sampleBoard)
		if err != nil {
			return board, toMove, err
		}
		board = b
	}

	if *playerName != "" {
		p, err := checkers.ParsePlayer(*playerName)
		if err != nil {
			return board, toMove, err
		}
		toMove = p
	}
	return board, toMove, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: checkers [options] [pdn-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A draughts engine: analysis, self-play, benchmarks and terminal play.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)  analyse a position: moves, evaluation and best move\n")
	fmt.Fprintf(os.Stderr, "  -selfplay  engine against itself, games written as PDN or JSON\n")
	fmt.Fprintf(os.Stderr, "  -bench     time searches of the initial position per depth\n")
	fmt.Fprintf(os.Stderr, "  files      replay PDN games, report illegal moves, write the legal games\n")
	fmt.Fprintf(os.Stderr, "             that pass the selection options (-t, -T*, -moves, -z, ...)\n")
	fmt.Fprintf(os.Stderr, "  -play      interactive game in the terminal\n")
	fmt.Fprintf(os.Stderr, "\nSquares are numbered 1-32 over the dark squares, row 0 first.\n")
}
