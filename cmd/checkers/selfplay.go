package main

import (
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/game"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/output"
)

type selfPlayResult struct {
	Games      int
	Output     int
	Duplicates int
	WhiteWins  int
	BlackWins  int
	Draws      int
}

func (r *selfPlayResult) count(s game.Summary) {
	r.Games++
	switch s.Status {
	case game.WhiteWins:
		r.WhiteWins++
	case game.BlackWins:
		r.BlackWins++
	default:
		r.Draws++
	}
	if s.Duplicate {
		r.Duplicates++
	}
}

// runSelfPlay plays cfg.Game.Games games and writes them to cfg.OutputFile.
// split is non-nil when cfg.OutputFile is a splitWriter.
func runSelfPlay(cfg *config.Config, split *splitWriter) (selfPlayResult, error) {
	var res selfPlayResult

	detector := hashing.NewThreadSafeDuplicateDetector(false, *duplicateCapacity)
	summaries, err := game.SelfPlay(cfg, detector)
	if err != nil {
		return res, err
	}

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if cfg.Output.JSONFormat && split != nil {
		// One JSON document cannot span several files.
		writer = output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	}

	for _, s := range summaries {
		res.count(s)
		if s.Duplicate && *suppressDups {
			continue
		}
		if err := writer.WriteGame(s.Game, s.GameNum); err != nil {
			return res, err
		}
		res.Output++
		if split != nil {
			split.gameDone()
		}
	}
	return res, writer.Close()
}

func reportStatistics(cfg *config.Config, res selfPlayResult) {
	cfg.Logf(1, "%d game(s) output, %d duplicate(s) out of %d.\n", res.Output, res.Duplicates, res.Games)
	cfg.Logf(1, "white %d, black %d, drawn %d\n", res.WhiteWins, res.BlackWins, res.Draws)
}
