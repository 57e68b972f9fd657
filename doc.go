// Package lvltsp is an exact and heuristic solver for the asymmetric
// Travelling Salesperson Problem over directed, possibly incomplete cost
// graphs.
//
// The core is a best-first branch-and-bound search: every node carries its
// own reduced cost matrix, the sum of row and column minima gives an
// admissible lower bound, and a priority queue explores the most promising
// partial tours first within a wall-clock budget.
//
// Packages:
//
//	matrix/     — extended integer Cost (Inf = missing edge), dense n×n matrix, row/column reduction
//	scenario/   — cities, asymmetric cost model with elevation, edge thinning, YAML scenario specs
//	tsp/        — search states, branch and bound, greedy and random strategies, Tour
//	cmd/lvltsp/ — command-line driver with YAML config, benchmarks and structured logs
//	examples/   — runnable demo
//
// Quick example:
//
//	s, _ := scenario.Generate(12, scenario.Hard, scenario.DefaultBounds(), rand.New(rand.NewSource(7)))
//	res, _ := tsp.Solve(s, tsp.DefaultOptions())
//	fmt.Println(res.Tour, res.Exhausted)
//
// Missing edges are matrix.Inf, never an error: an instance without a
// Hamiltonian cycle returns Cost == matrix.Inf and a nil Tour.
package lvltsp
