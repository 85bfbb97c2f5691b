// checkers-server serves the engine's analysis and game endpoints over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/server"
)

var (
	addr      = flag.String("addr", ":8080", "Listen address")
	maxDepth  = flag.Int("maxdepth", 8, "Largest search depth a request may use")
	depth     = flag.Int("depth", 4, "Search depth when a request names none")
	algorithm = flag.String("algo", "alphabeta", "Default search algorithm: minimax or alphabeta")
	workers   = flag.Int("workers", 1, "Goroutines per root-parallel search")
	origins   = flag.String("origins", "*", "CORS allowed origins")
	quiet     = flag.Bool("s", false, "No access log")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	algo, err := config.ParseAlgorithm(*algorithm)
	if err != nil {
		return err
	}
	cfg.Search.Algorithm = algo
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Server.Addr = *addr
	cfg.Server.MaxDepth = *maxDepth
	cfg.Server.AllowOrigins = *origins
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Fatal(server.Run(cfg))
}
