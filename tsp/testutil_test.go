// Package tsp_test holds helpers shared across the tsp test files.
package tsp_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/katalvlaran/lvltsp/tsp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const (
	inf = matrix.Inf

	// budgetGenerous bounds tests that are expected to finish far earlier.
	budgetGenerous = 10 * time.Second

	// randomTriesSmall keeps the random fallback short on infeasible inputs.
	randomTriesSmall = 200
)

// literalCosts is the 4-city asymmetric instance used across tests.
// Optimum: A → C → D → B → A, cost 15.
var literalCosts = [][]matrix.Cost{
	{inf, 7, 3, 12},
	{3, inf, 6, 14},
	{5, 8, inf, 6},
	{9, 3, 5, inf},
}

// literalScenario builds the 4-city scenario from literalCosts.
func literalScenario(t testing.TB) *scenario.Scenario {
	t.Helper()
	s, err := scenario.FromCosts(literalCosts)
	require.NoError(t, err)

	return s
}

// costsScenario builds a scenario from an explicit table.
func costsScenario(t testing.TB, rows [][]matrix.Cost) *scenario.Scenario {
	t.Helper()
	s, err := scenario.FromCosts(rows)
	require.NoError(t, err)

	return s
}

// generated draws an n-city scenario from a fixed seed.
func generated(t testing.TB, n int, d scenario.Difficulty, seed uint64) *scenario.Scenario {
	t.Helper()
	s, err := scenario.Generate(n, d, scenario.DefaultBounds(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return s
}

// randomSparseCosts returns an n×n table where each off-diagonal edge is
// missing with probability pMissing. The result may admit no tour at all.
func randomSparseCosts(n int, pMissing float64, seed uint64) [][]matrix.Cost {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]matrix.Cost, n)
	for i := range rows {
		rows[i] = make([]matrix.Cost, n)
		for j := range rows[i] {
			switch {
			case i == j, rng.Float64() < pMissing:
				rows[i][j] = inf
			default:
				rows[i][j] = matrix.Cost(1 + rng.Intn(50))
			}
		}
	}

	return rows
}

// bruteForce enumerates every cycle through city 0 and returns the cheapest
// cost (matrix.Inf when no cycle exists).
func bruteForce(s *scenario.Scenario) matrix.Cost {
	var (
		n      = s.Len()
		cities = s.Cities()
		best   = inf
		route  = make([]*scenario.City, n)
		used   = make([]bool, n)
	)
	if n == 0 {
		return 0
	}
	route[0] = cities[0]
	used[0] = true

	var walk func(depth int)
	walk = func(depth int) {
		if depth == n {
			if c := tsp.NewTour(route).Cost(); c < best {
				best = c
			}
			return
		}
		for j := 1; j < n; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			route[depth] = cities[j]
			walk(depth + 1)
			used[j] = false
		}
	}
	walk(1)

	return best
}

// requireTourConsistent checks that a result's tour is a permutation whose
// cost matches the reported cost.
func requireTourConsistent(t *testing.T, s *scenario.Scenario, res tsp.Result) {
	t.Helper()
	if res.Cost.IsInf() {
		require.Nil(t, res.Tour)
		return
	}
	require.NotNil(t, res.Tour)
	require.Equal(t, s.Len(), res.Tour.Len())
	require.Equal(t, res.Cost, res.Tour.Cost())

	seen := make(map[int]bool, s.Len())
	for _, idx := range res.Tour.Indices() {
		require.False(t, seen[idx], "city %d repeated", idx)
		seen[idx] = true
	}
}
