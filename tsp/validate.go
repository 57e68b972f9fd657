// Package tsp — input validation shared by every strategy.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input; only sentinel errors from types.go.
package tsp

import "github.com/katalvlaran/lvltsp/scenario"

// validate checks the scenario and the options that every strategy reads.
// Algo is checked by Solve only, since the direct entry points ignore it.
//
// Complexity: O(1).
func validate(s *scenario.Scenario, opts Options) error {
	if s == nil {
		return ErrNilScenario
	}
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	if opts.RandomTries < 0 {
		return ErrNegativeTries
	}

	return validateStartCity(s.Len(), opts.StartCity)
}

// validateStartCity requires start ∈ [0, n). An empty scenario only
// accepts start 0.
//
// Complexity: O(1).
func validateStartCity(n, start int) error {
	if n == 0 && start == 0 {
		return nil
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateAlgorithm accepts only the declared strategies.
func validateAlgorithm(a Algorithm) error {
	switch a {
	case DefaultRandom, GreedyNN, BranchAndBoundAlgo:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}
