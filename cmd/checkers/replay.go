// replay.go - Replaying and re-emitting PDN game files
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/parser"
	"github.com/lgbarn/checkers-go/internal/processing"
)

// replayResult tallies a replay run.
type replayResult struct {
	Games      int
	Output     int
	Errors     int
	Mismatches int
	Duplicates int
	Filtered   int
	Rejected   int
}

// runReplay reads every game in paths, replays its main line and writes
// the legal, selected ones to cfg.OutputFile. A game with an illegal move is
// reported and skipped; only I/O failures and bad selection files stop the
// run.
func runReplay(cfg *config.Config, paths []string) (replayResult, error) {
	var res replayResult

	sel, err := newSelection(cfg)
	if err != nil {
		return res, err
	}
	detector := hashing.NewDuplicateDetector(false, *duplicateCapacity)
	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	ctx := &replayContext{writer: writer, detector: detector, sel: sel}

	for _, path := range paths {
		file, err := os.Open(path) //nolint:gosec // G304: user-specified input file
		if err != nil {
			return res, err
		}
		err = replayGames(cfg, path, file, ctx, &res)
		file.Close() //nolint:errcheck,gosec // read-only file
		if err != nil {
			return res, err
		}
	}
	return res, writer.Close()
}

// replayContext holds what every replayed game passes through.
type replayContext struct {
	writer   output.GameWriter
	detector *hashing.DuplicateDetector
	sel      *selection
}

// replayGames replays the games read from r, numbering them on from res.
func replayGames(cfg *config.Config, name string, r io.Reader, ctx *replayContext, res *replayResult) error {
	p := parser.NewParser(r, cfg)
	for {
		pg, err := p.ParseGame()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if pg == nil {
			return nil
		}
		res.Games++

		lines := []*parser.Game{pg}
		if *splitVariants {
			lines = processing.SplitVariations(pg)
		}
		for _, line := range lines {
			if err := replayLine(cfg, name, line, ctx, res); err != nil {
				return err
			}
		}
	}
}

// replayLine replays and, when selected, writes one line of play.
func replayLine(cfg *config.Config, name string, pg *parser.Game, ctx *replayContext, res *replayResult) error {
	v, g := processing.ValidateGame(pg, cfg.Game, res.Games)
	if !v.Valid {
		res.Errors++
		cfg.Logf(1, "%s:%d: %s\n", name, pg.StartLine, v.ErrorMsg)
		return nil
	}
	if *strictMode && !v.Strict() {
		res.Rejected++
		cfg.Logf(1, "%s:%d: game %d: %s\n", name, pg.StartLine, res.Games, v.ParseErrors[0])
		return nil
	}
	if !parser.ResultMatches(pg, g) {
		res.Mismatches++
		cfg.Logf(1, "%s:%d: game %d: result %s but the position gives %s\n",
			name, pg.StartLine, res.Games, pg.Result, g.Status().Result())
	}

	ctx.sel.annotate(g)
	if !ctx.sel.keep(pg, g) {
		res.Filtered++
		return nil
	}

	board := g.Board()
	if ctx.detector.CheckAndAdd(&board, g.ToMove(), g.Plies()) {
		res.Duplicates++
		if *suppressDups {
			return nil
		}
	}
	if err := ctx.writer.WriteGame(g, res.Games); err != nil {
		return err
	}
	res.Output++
	return nil
}

// reportReplay prints the replay totals to the log.
func reportReplay(cfg *config.Config, res replayResult) {
	cfg.Logf(1, "%d game(s) output, %d error(s), %d duplicate(s) out of %d.\n",
		res.Output, res.Errors, res.Duplicates, res.Games)
	if res.Filtered > 0 {
		cfg.Logf(1, "%d game(s) not selected\n", res.Filtered)
	}
	if res.Rejected > 0 {
		cfg.Logf(1, "%d game(s) rejected for an incomplete header\n", res.Rejected)
	}
	if res.Mismatches > 0 {
		cfg.Logf(1, "%d game(s) with a result that does not match the play\n", res.Mismatches)
	}
}
