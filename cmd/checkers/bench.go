// bench.go - Search timing harness
package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/codec"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/search"
)

// benchResult is one timed search.
type benchResult struct {
	Algorithm string  `json:"algorithm"`
	Iteration int     `json:"iteration"`
	Depth     int     `json:"depth"`
	Millis    float64 `json:"millis"`
	Nodes     int64   `json:"nodes"`
}

// benchAlgorithms resolves the -benchalgo flag; empty means both.
func benchAlgorithms(name string) ([]config.Algorithm, error) {
	if name == "" {
		return []config.Algorithm{config.Minimax, config.AlphaBeta}, nil
	}
	algo, err := config.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []config.Algorithm{algo}, nil
}

// measure times iterations searches of the initial position with White to
// move for every depth in from..to.
func measure(cfg *config.Config, algos []config.Algorithm, from, to, iterations int) ([]benchResult, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("depths %d..%d: %w", from, to, errors.ErrInvalidDepth)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("iterations %d: %w", iterations, errors.ErrInvalidConfig)
	}

	board := checkers.InitialBoard()
	results := make([]benchResult, 0, len(algos)*(to-from+1)*iterations)
	for _, algo := range algos {
		searchCfg := *cfg.Search
		searchCfg.Algorithm = algo
		for depth := from; depth <= to; depth++ {
			searchCfg.Depth = depth
			for i := 0; i < iterations; i++ {
				start := time.Now()
				_, stats, err := search.Best(&board, checkers.White, &searchCfg)
				if err != nil {
					return results, err
				}
				elapsed := time.Since(start)
				results = append(results, benchResult{
					Algorithm: algo.String(),
					Iteration: i,
					Depth:     depth,
					Millis:    float64(elapsed.Microseconds()) / 1000,
					Nodes:     stats.Nodes,
				})
				cfg.Logf(2, "%s depth %d iteration %d: %v\n", algo, depth, i, elapsed)
			}
		}
	}
	return results, nil
}

// runBenchmark measures and writes a table, or JSON with -J.
func runBenchmark(cfg *config.Config, algos []config.Algorithm, from, to, iterations int) error {
	cfg.Logf(1, "Measuring search performance...\n")
	results, err := measure(cfg, algos, from, to, iterations)
	if err != nil {
		return err
	}
	if cfg.Output.JSONFormat {
		return codec.WriteJSON(cfg.OutputFile, results)
	}
	return writeBenchTable(cfg.OutputFile, results)
}

func writeBenchTable(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tIteration\tSearch Depth\tTime (ms)\tNodes")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%d\n", r.Algorithm, r.Iteration, r.Depth, r.Millis, r.Nodes)
	}
	return tw.Flush()
}
