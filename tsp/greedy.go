// Package tsp — nearest-neighbour strategy.
//
// Greedy builds one route from every start city: repeatedly move to the
// cheapest unvisited city reachable over an existing edge, ties broken by
// the lowest index. A route that gets stuck, or whose closing edge is
// missing, is discarded. The cheapest feasible tour wins.
//
// The deadline is checked before each start city, so a call overruns its
// budget by at most one O(n²) route construction.
//
// Complexity: O(n³) time, O(n) extra memory.
package tsp

import (
	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
	"github.com/yourbasic/bit"
)

// Greedy runs nearest neighbour from every start city within the budget.
// Result.Count is the number of feasible tours built. When none is feasible,
// Cost is matrix.Inf and Tour is nil.
func Greedy(s *scenario.Scenario, opts Options) (Result, error) {
	if err := validate(s, opts); err != nil {
		return Result{}, err
	}

	var b = newBudget(opts.TimeLimit)
	if s.Len() < 3 {
		return trivialResult(s, b), nil
	}

	t, found := greedy(s, b)

	return heuristicResult(t, found, b), nil
}

// greedy is the deadline-aware core shared with the branch-and-bound seeder.
func greedy(s *scenario.Scenario, b budget) (*Tour, int) {
	var (
		cities = s.Cities()
		size   = len(cities)
		route  = make([]*scenario.City, 0, size)
		best   *Tour
		found  int
		start  int
	)
	for start = 0; start < size; start++ {
		if b.expired() {
			break
		}
		route = nearestNeighbour(cities, start, route[:0])
		if len(route) < size {
			continue // stuck
		}

		t := NewTour(route)
		if t.Cost().IsInf() {
			continue // no closing edge
		}
		found++
		if best == nil || t.Cost() < best.Cost() {
			best = t
		}
	}

	return best, found
}

// nearestNeighbour appends to route the walk from start, stopping early when
// the current city has no edge to an unvisited one.
func nearestNeighbour(cities []*scenario.City, start int, route []*scenario.City) []*scenario.City {
	var (
		size    = len(cities)
		visited = bit.New(start)
		cur     = start
		next, j int
		best, c matrix.Cost
	)
	route = append(route, cities[start])

	for len(route) < size {
		next, best = -1, matrix.Inf
		for j = 0; j < size; j++ {
			if visited.Contains(j) {
				continue
			}
			if c = cities[cur].CostTo(cities[j]); c < best {
				next, best = j, c
			}
		}
		if next < 0 {
			break
		}
		visited.Add(next)
		route = append(route, cities[next])
		cur = next
	}

	return route
}
