// Command lvltsp generates or loads a TSP scenario and solves it with one of
// the tsp strategies.
//
// Usage:
//
//	lvltsp [-config file.yaml] [-n 12] [-difficulty hard] [-seed 1]
//	       [-algo bb|greedy|random] [-time 60s] [-start 0] [-tries 0]
//	       [-bench N] [-v] [-quiet]
//
// Flags given on the command line override the config file. With -bench N
// the strategy runs on N scenarios seeded seed, seed+1, ..., and the elapsed
// time and cost are summarised instead of printing each tour.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/katalvlaran/lvltsp/tsp"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "lvltsp:", err)
		os.Exit(1)
	}
}

// run parses args, builds the configuration and dispatches to a single solve
// or a benchmark batch.
func run(args []string, out io.Writer) error {
	var (
		fs         = flag.NewFlagSet("lvltsp", flag.ContinueOnError)
		configPath = fs.String("config", "", "YAML config file")
		count      = fs.Int("n", 0, "number of cities to generate")
		difficulty = fs.String("difficulty", "", "easy, normal, hard or hard-deterministic")
		seed       = fs.Uint64("seed", 0, "scenario and solver seed")
		algo       = fs.String("algo", "", "bb, greedy or random")
		limit      = fs.Duration("time", 0, "time budget, 0 for unlimited")
		start      = fs.Int("start", 0, "start city index for branch and bound")
		tries      = fs.Int("tries", 0, "random attempts cap, 0 for the default")
		bench      = fs.Int("bench", 0, "run N seeded scenarios and summarise")
		verbose    = fs.Bool("v", false, "debug logging")
		quiet      = fs.Bool("quiet", false, "disable logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}

	// Explicit flags win over the file.
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		if ferr != nil {
			return
		}
		switch f.Name {
		case "n":
			cfg.Scenario.Count = *count
			cfg.Scenario.Costs, cfg.Scenario.Cities = nil, nil
		case "difficulty":
			ferr = cfg.Scenario.Difficulty.UnmarshalText([]byte(*difficulty))
		case "seed":
			cfg.Scenario.Seed, cfg.Solver.Seed = *seed, *seed
		case "algo":
			ferr = cfg.Solver.Algorithm.UnmarshalText([]byte(*algo))
		case "time":
			cfg.Solver.TimeLimit = *limit
		case "start":
			cfg.Solver.StartCity = *start
		case "tries":
			cfg.Solver.RandomTries = *tries
		case "bench":
			cfg.Bench.Runs = *bench
		}
	})
	if ferr != nil {
		return ferr
	}

	logger, err := newLogger(*verbose, *quiet)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Bench.Runs > 0 {
		return runBench(cfg, logger, out)
	}

	return runOnce(cfg, logger, out)
}

// newLogger picks the zap preset for the verbosity flags.
func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	switch {
	case quiet:
		return zap.NewNop(), nil
	case verbose:
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}

// runOnce builds the scenario, solves it and prints one result block.
func runOnce(cfg Config, logger *zap.Logger, out io.Writer) error {
	s, err := cfg.Scenario.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}

	opts := cfg.Solver.Options()
	opts.Logger = logger
	res, err := tsp.Solve(s, opts)
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		return err
	}

	logger.Info("solved",
		zap.String("algorithm", opts.Algo.String()),
		zap.Int("cities", s.Len()),
		zap.Stringer("cost", res.Cost),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int("count", res.Count),
		zap.Bool("exhausted", res.Exhausted),
	)
	printResult(out, s, opts.Algo, res)

	return nil
}

// printResult writes the human-readable result block.
func printResult(out io.Writer, s *scenario.Scenario, algo tsp.Algorithm, res tsp.Result) {
	fmt.Fprintf(out, "scenario:  %s cities, %s, %s edges removed\n",
		humanize.Comma(int64(s.Len())), s.Difficulty(), humanize.Comma(int64(s.RemovedEdges())))
	fmt.Fprintf(out, "algorithm: %s\n", algo)
	fmt.Fprintf(out, "cost:      %s\n", formatCost(res.Cost))
	if res.Tour != nil {
		fmt.Fprintf(out, "tour:      %s\n", res.Tour)
	} else {
		fmt.Fprintln(out, "tour:      none")
	}
	fmt.Fprintf(out, "elapsed:   %s\n", res.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(out, "count:     %s\n", humanize.Comma(int64(res.Count)))
	fmt.Fprintf(out, "exhausted: %t\n", res.Exhausted)
	if st := res.Stats; st != nil {
		fmt.Fprintf(out, "seed:      %s (%s)\n", formatCost(st.SeedCost), orNone(st.Seeder))
		fmt.Fprintf(out, "max queue: %s\n", humanize.Comma(int64(st.MaxQueue)))
		fmt.Fprintf(out, "states:    %s\n", humanize.Comma(int64(st.Total)))
		fmt.Fprintf(out, "pruned:    %s\n", humanize.Comma(int64(st.Pruned)))
	}
}

// formatCost prints Inf as "inf" and finite costs with thousands separators.
func formatCost(c matrix.Cost) string {
	if c.IsInf() {
		return c.String()
	}

	return humanize.Comma(int64(c))
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}

	return s
}
