package scenario

import (
	"math"

	"golang.org/x/exp/rand"
)

// thinEdges removes floor(20% · n(n−1)) directed edges chosen uniformly at
// random. Before removing anything it sets aside a random Hamiltonian cycle
// whose edges may not be deleted, so the thinned scenario always admits at
// least one tour.
//
// Termination: for n ≥ 3 the deletable edges number n(n−2), which is at
// least 0.2·n(n−1); for n ≤ 2 nothing is removed.
//
// Complexity: expected O(n²) draws.
func (s *Scenario) thinEdges(rng *rand.Rand) {
	var (
		n        = len(s.cities)
		toRemove = int(math.Floor(hardModeFractionToRemove * float64(n*(n-1))))
	)
	if n == 0 {
		return
	}

	canDelete := make([]bool, len(s.edges))
	copy(canDelete, s.edges)

	// Protect one random cycle.
	keep := rng.Perm(n)

	var i int
	for i = 0; i < n; i++ {
		canDelete[keep[i]*n+keep[(i+1)%n]] = false
	}

	var src, dst, idx int
	for toRemove > 0 {
		src = rng.Intn(n)
		dst = rng.Intn(n)
		idx = src*n + dst
		if s.edges[idx] && canDelete[idx] {
			s.edges[idx] = false
			s.removed++
			toRemove--
		}
	}
}
