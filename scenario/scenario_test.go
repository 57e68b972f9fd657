// Package scenario_test covers the cost model, edge thinning and generation.
package scenario_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newRNG(seed uint64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// TestCostToEasyIsSymmetricEuclid checks the flat model on a 3-4-5 triangle.
func TestCostToEasyIsSymmetricEuclid(t *testing.T) {
	s, err := scenario.NewFromSites([]scenario.Site{
		{X: 0, Y: 0, Elevation: 0},
		{X: 3, Y: 4, Elevation: 0.25},
	}, scenario.Easy, nil)
	require.NoError(t, err)

	a, b := s.City(0), s.City(1)
	require.Equal(t, matrix.Cost(5000), a.CostTo(b))
	require.Equal(t, matrix.Cost(5000), b.CostTo(a))
	require.Equal(t, matrix.Inf, a.CostTo(a))
}

// TestCostToChargesUphillOnly verifies that climbing adds cost and descending
// never makes an edge cheaper than the flat distance.
func TestCostToChargesUphillOnly(t *testing.T) {
	s, err := scenario.NewFromSites([]scenario.Site{
		{X: 0, Y: 0, Elevation: 0},
		{X: 3, Y: 4, Elevation: 0.25},
	}, scenario.Normal, nil)
	require.NoError(t, err)

	a, b := s.City(0), s.City(1)
	require.Equal(t, matrix.Cost(5250), a.CostTo(b))
	require.Equal(t, matrix.Cost(5000), b.CostTo(a))
}

func TestCostToForeignCityIsInf(t *testing.T) {
	pts := []scenario.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	s1, err := scenario.New(pts, scenario.Easy, nil)
	require.NoError(t, err)
	s2, err := scenario.New(pts, scenario.Easy, nil)
	require.NoError(t, err)

	require.Equal(t, matrix.Inf, s1.City(0).CostTo(s2.City(1)))
	require.Equal(t, matrix.Inf, s1.City(0).CostTo(nil))
}

func TestCostToSaturatesBelowInf(t *testing.T) {
	s, err := scenario.NewFromSites([]scenario.Site{
		{X: 0, Y: 0},
		{X: 1e18, Y: 0},
	}, scenario.Easy, nil)
	require.NoError(t, err)

	c := s.City(0).CostTo(s.City(1))
	require.False(t, c.IsInf())
	require.Equal(t, matrix.Inf-1, c)
}

// TestNewValidatesInputs exercises the constructor guards.
func TestNewValidatesInputs(t *testing.T) {
	pts := []scenario.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	_, err := scenario.New(pts, scenario.Normal, nil)
	require.ErrorIs(t, err, scenario.ErrNilRNG)

	_, err = scenario.New(pts, scenario.Difficulty(42), newRNG(1))
	require.ErrorIs(t, err, scenario.ErrBadDifficulty)

	_, err = scenario.NewFromSites([]scenario.Site{{X: 0}, {X: 1}}, scenario.Hard, nil)
	require.ErrorIs(t, err, scenario.ErrNilRNG)

	_, err = scenario.NewFromSites([]scenario.Site{{X: math.NaN()}}, scenario.Easy, nil)
	require.ErrorIs(t, err, scenario.ErrBadSite)

	_, err = scenario.Generate(-1, scenario.Easy, scenario.DefaultBounds(), newRNG(1))
	require.ErrorIs(t, err, scenario.ErrNegativeCount)

	_, err = scenario.Generate(3, scenario.Easy, scenario.DefaultBounds(), nil)
	require.ErrorIs(t, err, scenario.ErrNilRNG)

	_, err = scenario.Generate(3, scenario.Easy, scenario.Bounds{MinX: 1, MaxX: 0}, newRNG(1))
	require.ErrorIs(t, err, scenario.ErrBadBounds)
}

// TestGenerateStaysInBounds checks coordinate and elevation ranges.
func TestGenerateStaysInBounds(t *testing.T) {
	b := scenario.DefaultBounds()
	s, err := scenario.Generate(50, scenario.Normal, b, newRNG(7))
	require.NoError(t, err)
	require.Equal(t, 50, s.Len())
	require.Equal(t, 0, s.RemovedEdges())

	for _, c := range s.Cities() {
		require.GreaterOrEqual(t, c.X(), b.MinX)
		require.LessOrEqual(t, c.X(), b.MaxX)
		require.GreaterOrEqual(t, c.Y(), b.MinY)
		require.LessOrEqual(t, c.Y(), b.MaxY)
		require.GreaterOrEqual(t, c.Elevation(), 0.0)
		require.Less(t, c.Elevation(), 1.0)
		require.Same(t, s, c.Scenario())
	}
}

// TestGenerateIsDeterministicPerSeed compares two builds from the same seed.
func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	s1, err := scenario.Generate(9, scenario.Hard, scenario.DefaultBounds(), newRNG(123))
	require.NoError(t, err)
	s2, err := scenario.Generate(9, scenario.Hard, scenario.DefaultBounds(), newRNG(123))
	require.NoError(t, err)

	require.True(t, s1.CostMatrix().Equal(s2.CostMatrix()))
}

// TestHardThinningCountAndCycle checks the removed-edge count and that a
// Hamiltonian cycle survives thinning.
func TestHardThinningCountAndCycle(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		const n = 7
		s, err := scenario.Generate(n, scenario.Hard, scenario.DefaultBounds(), newRNG(seed))
		require.NoError(t, err)

		want := int(math.Floor(0.2 * float64(n*(n-1))))
		require.Equal(t, want, s.RemovedEdges())

		missing := 0
		for i := 0; i < n; i++ {
			require.False(t, s.EdgeExists(i, i))
			for j := 0; j < n; j++ {
				if i != j && !s.EdgeExists(i, j) {
					missing++
					require.Equal(t, matrix.Inf, s.City(i).CostTo(s.City(j)))
				}
			}
		}
		require.Equal(t, want, missing)
		require.True(t, hasHamiltonianCycle(s), "seed %d", seed)
	}
}

func TestHardTinyScenarios(t *testing.T) {
	for n := 0; n <= 2; n++ {
		s, err := scenario.Generate(n, scenario.HardDeterministic, scenario.DefaultBounds(), newRNG(5))
		require.NoError(t, err)
		require.Equal(t, n, s.Len())
		require.Equal(t, 0, s.RemovedEdges())
	}
}

// TestFromCosts checks the explicit-table constructor.
func TestFromCosts(t *testing.T) {
	inf := matrix.Inf
	s, err := scenario.FromCosts([][]matrix.Cost{
		{0, 7, inf},
		{3, 0, 6},
		{5, 8, 0},
	})
	require.NoError(t, err)
	require.Equal(t, scenario.Easy, s.Difficulty())

	require.Equal(t, inf, s.City(0).CostTo(s.City(0)))
	require.Equal(t, matrix.Cost(7), s.City(0).CostTo(s.City(1)))
	require.Equal(t, inf, s.City(0).CostTo(s.City(2)))
	require.False(t, s.EdgeExists(0, 2))
	require.True(t, s.EdgeExists(2, 0))

	_, err = scenario.FromCosts([][]matrix.Cost{{0, 1}, {1}})
	require.ErrorIs(t, err, scenario.ErrCostShape)

	_, err = scenario.FromCosts([][]matrix.Cost{{0, -1}, {1, 0}})
	require.ErrorIs(t, err, scenario.ErrBadCost)
}

func TestAccessorsOutOfRange(t *testing.T) {
	s, err := scenario.New([]scenario.Point{{X: 0, Y: 0}}, scenario.Easy, nil)
	require.NoError(t, err)
	require.Nil(t, s.City(-1))
	require.Nil(t, s.City(1))
	require.False(t, s.EdgeExists(0, 5))
	require.Equal(t, "A", s.City(0).String())
}

// hasHamiltonianCycle runs a plain DFS from city 0 over existing edges.
func hasHamiltonianCycle(s *scenario.Scenario) bool {
	n := s.Len()
	if n < 2 {
		return true
	}
	seen := make([]bool, n)
	seen[0] = true

	var dfs func(cur, depth int) bool
	dfs = func(cur, depth int) bool {
		if depth == n {
			return s.EdgeExists(cur, 0)
		}
		for next := 1; next < n; next++ {
			if seen[next] || !s.EdgeExists(cur, next) {
				continue
			}
			seen[next] = true
			if dfs(next, depth+1) {
				return true
			}
			seen[next] = false
		}

		return false
	}

	return dfs(0, 1)
}
