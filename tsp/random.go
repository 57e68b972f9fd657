// Package tsp — random-permutation strategy and RNG plumbing.
//
// RandomTour draws uniformly random permutations of the cities until one
// forms a feasible cycle. It doubles as the fallback seeder of branch and
// bound when nearest neighbour cannot complete a tour.
//
// Determinism: every call builds its own *rand.Rand from Options.Seed
// (golang.org/x/exp/rand), so the same seed reproduces the same attempts.
// Nothing here touches a process-global random source.
package tsp

import (
	"github.com/katalvlaran/lvltsp/scenario"
	"golang.org/x/exp/rand"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed uint64 = 1

// defaultRandomTries caps attempts when there is neither a deadline nor an
// explicit RandomTries, so the call always terminates.
const defaultRandomTries = 1_000_000

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomTour returns the first feasible random permutation found within the
// time budget and attempt cap. Result.Count is the number of attempts.
// When no attempt succeeds, Cost is matrix.Inf and Tour is nil.
//
// Complexity: O(n) per attempt.
func RandomTour(s *scenario.Scenario, opts Options) (Result, error) {
	if err := validate(s, opts); err != nil {
		return Result{}, err
	}

	var b = newBudget(opts.TimeLimit)
	if s.Len() < 3 {
		return trivialResult(s, b), nil
	}

	t, attempts := randomTour(s, opts, b)

	return heuristicResult(t, attempts, b), nil
}

// randomTour is the deadline-aware core shared with the branch-and-bound seeder.
func randomTour(s *scenario.Scenario, opts Options, b budget) (*Tour, int) {
	var (
		n        = s.Len()
		cities   = s.Cities()
		rng      = rngFromSeed(opts.Seed)
		limit    = opts.RandomTries
		route    = make([]*scenario.City, n)
		attempts int
		perm     []int
		i        int
		t        *Tour
	)
	if limit == 0 && !b.limited {
		limit = defaultRandomTries
	}

	for (limit == 0 || attempts < limit) && !b.expired() {
		perm = rng.Perm(n)
		attempts++
		for i = 0; i < n; i++ {
			route[i] = cities[perm[i]]
		}
		if t = NewTour(route); !t.Cost().IsInf() {
			return t, attempts
		}
	}

	return nil, attempts
}
