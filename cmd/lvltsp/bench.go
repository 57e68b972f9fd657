package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvltsp/tsp"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// summary is the spread of one measured quantity across bench runs.
type summary struct {
	mean, stddev, median, p90 float64
}

// summarize computes mean, standard deviation, median and p90 of data.
func summarize(data []float64) (summary, error) {
	var (
		s   summary
		err error
	)
	if s.mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.stddev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.p90, err = stats.Percentile(data, 90); err != nil {
		return s, err
	}

	return s, nil
}

// runBench solves cfg.Bench.Runs scenarios with consecutive seeds and prints
// elapsed-time and cost summaries. Infeasible runs are counted but left out
// of the cost summary.
func runBench(cfg Config, logger *zap.Logger, out io.Writer) error {
	var (
		runs       = cfg.Bench.Runs
		base       = cfg.Scenario.Seed
		elapsedMs  = make([]float64, 0, runs)
		costs      = make([]float64, 0, runs)
		optimal    int
		infeasible int
		i          int
	)
	for i = 0; i < runs; i++ {
		spec := cfg.Scenario
		spec.Seed = base + uint64(i)
		s, err := spec.Build()
		if err != nil {
			return fmt.Errorf("build scenario %d: %w", i, err)
		}

		opts := cfg.Solver.Options()
		opts.Seed = spec.Seed
		opts.Logger = logger
		res, err := tsp.Solve(s, opts)
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}

		elapsedMs = append(elapsedMs, float64(res.Elapsed)/float64(time.Millisecond))
		if res.Cost.IsInf() {
			infeasible++
		} else {
			costs = append(costs, float64(res.Cost))
		}
		if res.Exhausted {
			optimal++
		}
		logger.Debug("bench run",
			zap.Int("run", i),
			zap.Uint64("seed", spec.Seed),
			zap.Stringer("cost", res.Cost),
			zap.Duration("elapsed", res.Elapsed),
		)
	}

	fmt.Fprintf(out, "runs:       %s (%s exhausted, %s infeasible)\n",
		humanize.Comma(int64(runs)), humanize.Comma(int64(optimal)), humanize.Comma(int64(infeasible)))

	el, err := summarize(elapsedMs)
	if err != nil {
		return fmt.Errorf("summarise elapsed: %w", err)
	}
	fmt.Fprintf(out, "elapsed ms: mean %.3f  stddev %.3f  median %.3f  p90 %.3f\n",
		el.mean, el.stddev, el.median, el.p90)

	if len(costs) > 0 {
		cs, err := summarize(costs)
		if err != nil {
			return fmt.Errorf("summarise cost: %w", err)
		}
		fmt.Fprintf(out, "cost:       mean %s  stddev %s  median %s  p90 %s\n",
			humanize.Commaf(cs.mean), humanize.Commaf(cs.stddev),
			humanize.Commaf(cs.median), humanize.Commaf(cs.p90))
	}

	logger.Info("bench finished",
		zap.Int("runs", runs),
		zap.Int("exhausted", optimal),
		zap.Int("infeasible", infeasible),
		zap.Float64("elapsed_mean_ms", el.mean),
	)

	return nil
}
