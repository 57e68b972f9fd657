// Package tsp — unified dispatcher and the shared time budget.
//
// Solve is the canonical entry point: it validates the scenario and options
// and routes to RandomTour, Greedy or BranchAndBound by Options.Algo.
//
// Every strategy measures one budget from the moment it is called. For
// branch and bound the seeding phase spends from that same budget, so the
// search only gets what seeding left over.
package tsp

import (
	"time"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
)

// Solve validates inputs and routes to the chosen strategy.
//
// Errors: ErrNilScenario, ErrNegativeTimeLimit, ErrNegativeTries,
// ErrStartOutOfRange, ErrUnsupportedAlgorithm.
//
// Complexity: per strategy (random O(n) per attempt, greedy O(n³),
// branch and bound exponential in the worst case).
func Solve(s *scenario.Scenario, opts Options) (Result, error) {
	if err := validate(s, opts); err != nil {
		return Result{}, err
	}
	if err := validateAlgorithm(opts.Algo); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case GreedyNN:
		return Greedy(s, opts)
	case BranchAndBoundAlgo:
		return BranchAndBound(s, opts)
	default:
		return RandomTour(s, opts)
	}
}

// budget is a wall-clock deadline; limited == false means unlimited.
type budget struct {
	start    time.Time
	deadline time.Time
	limited  bool
}

// newBudget starts the clock. A zero limit means no deadline.
func newBudget(limit time.Duration) budget {
	var now = time.Now()

	return budget{
		start:    now,
		deadline: now.Add(limit),
		limited:  limit > 0,
	}
}

// expired reports whether the deadline has passed.
func (b budget) expired() bool { return b.limited && !time.Now().Before(b.deadline) }

// elapsed returns the time spent since the budget started.
func (b budget) elapsed() time.Duration { return time.Since(b.start) }

// trivialResult handles scenarios with fewer than three cities, which have
// exactly one candidate cycle: the cities in index order.
//   - 0 cities: empty tour, cost 0.
//   - 1 city: the city alone, cost 0.
//   - 2 cities: A → B → A, cost c(A,B) + c(B,A), or Inf if either edge is missing.
func trivialResult(s *scenario.Scenario, b budget) Result {
	var (
		t   = NewTour(s.Cities())
		res = Result{Cost: t.Cost(), Exhausted: true}
	)
	if !t.Cost().IsInf() {
		res.Tour = t
		res.Count = 1
	}
	res.Elapsed = b.elapsed()

	return res
}

// heuristicResult packages the outcome of the greedy and random strategies.
func heuristicResult(t *Tour, count int, b budget) Result {
	res := Result{Cost: matrix.Inf, Count: count, Tour: t}
	if t != nil {
		res.Cost = t.Cost()
	}
	res.Elapsed = b.elapsed()

	return res
}
