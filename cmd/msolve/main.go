// Command msolve runs the constraint-propagating solver headlessly
// against one or more Minesweeper games and reports the outcome.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"github.com/azadravec/msolve/internal/bridge"
	"github.com/azadravec/msolve/internal/mineboard"
	"github.com/azadravec/msolve/internal/runstats"
	"github.com/azadravec/msolve/internal/solver"
	"github.com/azadravec/msolve/internal/solverconfig"
)

func main() {
	preset := flag.String("preset", "beginner", "board preset: beginner, intermediate, or expert")
	games := flag.Int("games", 1, "number of games to play")
	maxFrontierWidth := flag.Int("max-frontier-width", 0, "cap exhaustive frontier enumeration (0 = default)")
	verbose := flag.Bool("v", false, "enable debug-level diagnostic logging")
	quiet := flag.Bool("q", false, "disable diagnostic logging entirely")
	save := flag.Bool("save", true, "persist run statistics to ~/.msolve/runstats.json")
	flag.Parse()

	logger, err := newLogger(*verbose, *quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "msolve: logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	cfg := solverconfig.Config{BoardPreset: *preset, MaxFrontierWidth: *maxFrontierWidth}
	board := cfg.BoardConfig()

	newOracle := func() solver.Oracle {
		g, err := mineboard.New(board.Rows, board.Cols, board.Mines)
		if err != nil {
			logger.Fatal("failed to create board", zap.Error(err))
		}
		return bridge.NewGameOracle(g)
	}

	solverCfg := solver.Config{
		RNG:              rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Logger:           logger,
		MaxFrontierWidth: *maxFrontierWidth,
	}

	summary, err := solver.PlayGames(*games, newOracle, solverCfg)
	if err != nil {
		logger.Error("run aborted", zap.Error(err))
		fmt.Fprintf(os.Stderr, "msolve: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d/%d won\n", *preset, summary.Wins, summary.Games)
	for i, r := range summary.Results {
		fmt.Printf("  game %d: won=%v moves=%d duration=%s\n", i+1, r.Won, r.Moves, r.Duration)
	}

	if *save {
		if err := persistStats(*preset, summary); err != nil {
			logger.Warn("failed to persist run statistics", zap.Error(err))
		}
	}
}

func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func persistStats(preset string, summary solver.Summary) error {
	store, err := runstats.Load()
	if err != nil {
		return err
	}
	for _, r := range summary.Results {
		store.Record(preset, r.Won, r.Moves, r.Duration)
	}
	return store.Save()
}
