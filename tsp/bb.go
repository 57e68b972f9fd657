// Package tsp — Branch-and-Bound (exact best-first search over reduced matrices).
//
// BranchAndBound runs three phases against one wall-clock deadline:
//
//  1. SEED: nearest neighbour (Greedy) from every start city; if no feasible
//     tour comes out, random permutations (RandomTour) with what is left of
//     the budget. The seed cost becomes the incumbent upper bound (UB). With
//     no seed, UB = Inf and the search runs anyway.
//  2. SEARCH: a min-heap of States ordered by bound/(2·depth), rooted at
//     Options.StartCity. Each iteration:
//     - pop the best state; if bound ≥ UB, prune it (its subtree is never built);
//     - otherwise expand it; a child whose Solution beats UB becomes the
//       incumbent, a child with bound < UB is queued, anything else is pruned.
//     Complete children are never queued.
//  3. FINALIZE: report the incumbent, telemetry and elapsed time.
//
// An empty queue means the search is exhausted and the incumbent is optimal
// (or, with Cost == Inf, that no Hamiltonian cycle exists).
//
// Time budget: checked once per iteration, so a call overruns by at most one
// expansion, O(n³).
//
// Complexity:
//   - Worst case exponential in n (exact search). Practical speed comes from pruning.
//   - Per expansion: O(n) children × O(n²) copy and reduce.
//   - Memory: O(n²) per queued state.
package tsp

import (
	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
	"go.uber.org/zap"
)

// bbEngine holds all search data for one call.
type bbEngine struct {
	// Inputs
	s      *scenario.Scenario
	cities []*scenario.City
	opts   Options
	log    *zap.Logger

	// Time budget shared by every phase
	b budget

	// Incumbent (UB)
	best     *Tour
	bestCost matrix.Cost

	// Frontier and telemetry
	q         stateQueue
	count     int
	stats     Stats
	exhausted bool
}

// BranchAndBound solves the scenario exactly when the budget allows and
// returns the best tour found otherwise. Result.Stats is always non-nil.
//
// Scenarios with fewer than three cities are answered without search
// (see trivialResult); Count is then 0.
//
// Errors: ErrNilScenario, ErrNegativeTimeLimit, ErrNegativeTries,
// ErrStartOutOfRange.
func BranchAndBound(s *scenario.Scenario, opts Options) (Result, error) {
	if err := validate(s, opts); err != nil {
		return Result{}, err
	}

	var b = newBudget(opts.TimeLimit)
	if s.Len() < 3 {
		res := trivialResult(s, b)
		res.Count = 0
		res.Stats = &Stats{SeedCost: matrix.Inf}

		return res, nil
	}

	e := &bbEngine{
		s:        s,
		cities:   s.Cities(),
		opts:     opts,
		log:      opts.Logger,
		b:        b,
		bestCost: matrix.Inf,
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}

	e.seed()
	if err := e.search(); err != nil {
		return Result{}, err
	}

	return e.finalize(), nil
}

// seed installs the initial incumbent: greedy first, random as fallback.
func (e *bbEngine) seed() {
	if t, _ := greedy(e.s, e.b); t != nil {
		e.best, e.bestCost, e.stats.Seeder = t, t.Cost(), GreedyNN.String()
	} else if t, _ = randomTour(e.s, e.opts, e.b); t != nil {
		e.best, e.bestCost, e.stats.Seeder = t, t.Cost(), DefaultRandom.String()
	}
	e.stats.SeedCost = e.bestCost

	e.log.Debug("seeded incumbent",
		zap.String("seeder", e.stats.Seeder),
		zap.Stringer("cost", e.bestCost),
		zap.Duration("elapsed", e.b.elapsed()),
	)
}

// search runs the best-first loop until the queue empties or time runs out.
func (e *bbEngine) search() error {
	root, err := NewState(e.s.CostMatrix(), e.opts.StartCity)
	if err != nil {
		return err
	}
	e.q.push(root)
	e.stats.MaxQueue = 1

	var (
		cur   *State
		child *State
	)
	for e.q.len() > 0 {
		if e.b.expired() {
			e.log.Debug("time budget exhausted", zap.Int("queue", e.q.len()))
			return nil
		}

		// 1) Best state first; prune the whole subtree if it cannot beat UB.
		cur = e.q.pop()
		if cur.Bound() >= e.bestCost {
			e.stats.Pruned++
			continue
		}

		// 2) Expand and classify children.
		for _, child = range cur.Expand() {
			e.stats.Total++
			if sol := child.Solution(); sol < e.bestCost {
				e.improve(child, sol)
				continue
			}
			if child.Complete() || child.Bound() >= e.bestCost {
				e.stats.Pruned++
				continue
			}
			e.q.push(child)
		}

		if e.q.len() > e.stats.MaxQueue {
			e.stats.MaxQueue = e.q.len()
		}
	}
	e.exhausted = true

	return nil
}

// improve replaces the incumbent with the complete route of st.
func (e *bbEngine) improve(st *State, cost matrix.Cost) {
	var (
		route = st.route
		path  = make([]*scenario.City, len(route))
		i     int
	)
	for i = range route {
		path[i] = e.cities[route[i]]
	}

	e.best, e.bestCost = NewTour(path), cost
	e.count++

	e.log.Debug("new incumbent",
		zap.Stringer("cost", cost),
		zap.Int("improvements", e.count),
		zap.Int("queue", e.q.len()),
		zap.Duration("elapsed", e.b.elapsed()),
	)
}

// finalize packages the incumbent and telemetry.
func (e *bbEngine) finalize() Result {
	res := Result{
		Cost:      e.bestCost,
		Elapsed:   e.b.elapsed(),
		Count:     e.count,
		Exhausted: e.exhausted,
		Stats:     &e.stats,
	}
	if !e.bestCost.IsInf() {
		res.Tour = e.best
	}

	e.log.Debug("search finished",
		zap.Stringer("cost", res.Cost),
		zap.Bool("exhausted", res.Exhausted),
		zap.Int("max_queue", e.stats.MaxQueue),
		zap.Int("total", e.stats.Total),
		zap.Int("pruned", e.stats.Pruned),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res
}
