// Package tsp solves the asymmetric Travelling Salesperson Problem over a
// scenario.Scenario.
//
// Three strategies share one Options/Result contract:
//
//   - RandomTour: random permutations until one is feasible.
//     Complexity: O(n) per attempt.
//   - Greedy: nearest neighbour from every start city, best kept.
//     Complexity: O(n³).
//   - BranchAndBound: exact best-first search over reduced cost matrices,
//     seeded by Greedy (RandomTour as fallback).
//     Complexity: exponential worst case, O(n²) memory per queued state.
//
// Missing edges are matrix.Inf. A tour using one costs Inf, and a strategy
// that finds no feasible tour returns Cost == matrix.Inf with a nil Tour
// rather than an error. Errors are reserved for invalid input (see types.go).
//
// Scenarios with fewer than three cities have a single candidate cycle and
// are answered without search: cost 0 for zero or one city, and
// c(A,B) + c(B,A) for two.
//
// All strategies are single-threaded and honour Options.TimeLimit as one
// wall-clock budget for the whole call.
package tsp
