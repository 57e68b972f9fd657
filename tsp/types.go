// Package tsp — shared types, options and sentinel errors.
//
// Everything a caller passes into or receives from the solvers lives here:
//   - Algorithm selects the strategy run by Solve.
//   - Options carries the time budget, start city, seed and logger.
//   - Result is the per-call outcome; Stats holds search telemetry and is
//     only populated by the branch-and-bound strategy.
//
// Infeasibility and timeouts are not errors: an infeasible instance yields
// Cost == matrix.Inf with a nil Tour, and a timeout yields Exhausted == false.
package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvltsp/matrix"
	"go.uber.org/zap"
)

// Sentinel errors returned by the dispatcher and the solvers.
var (
	// ErrNilScenario indicates that the scenario argument was nil.
	ErrNilScenario = errors.New("tsp: scenario is nil")

	// ErrStartOutOfRange indicates that Options.StartCity is not a city index.
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrNegativeTimeLimit indicates a negative Options.TimeLimit.
	ErrNegativeTimeLimit = errors.New("tsp: time limit must be >= 0")

	// ErrNegativeTries indicates a negative Options.RandomTries.
	ErrNegativeTries = errors.New("tsp: random tries must be >= 0")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrBadState indicates a search state built from an invalid matrix or start.
	ErrBadState = errors.New("tsp: invalid search state")
)

// Algorithm enumerates the available strategies.
type Algorithm int

const (
	// DefaultRandom draws random permutations until one is feasible.
	DefaultRandom Algorithm = iota

	// GreedyNN runs nearest neighbour from every start city and keeps the best.
	GreedyNN

	// BranchAndBoundAlgo runs the exact best-first branch-and-bound search.
	BranchAndBoundAlgo
)

// String returns the canonical lowercase name of a.
func (a Algorithm) String() string {
	switch a {
	case DefaultRandom:
		return "random"
	case GreedyNN:
		return "greedy"
	case BranchAndBoundAlgo:
		return "bb"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name onto an Algorithm.
// Accepted: "random", "default", "greedy", "nn", "bb", "branch-and-bound".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "default":
		return DefaultRandom, nil
	case "greedy", "nn":
		return GreedyNN, nil
	case "bb", "branch-and-bound", "branch_and_bound", "bnb":
		return BranchAndBoundAlgo, nil
	default:
		return DefaultRandom, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	switch a {
	case DefaultRandom, GreedyNN, BranchAndBoundAlgo:
		return []byte(a.String()), nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Options configures a solver call.
type Options struct {
	// Algo selects the strategy used by Solve.
	Algo Algorithm

	// TimeLimit is the wall-clock budget for the whole call, seeding included.
	// Zero means unlimited.
	TimeLimit time.Duration

	// StartCity is the city the branch-and-bound route starts from.
	StartCity int

	// Seed feeds the random-tour generator; 0 selects a fixed default stream.
	Seed uint64

	// RandomTries caps the attempts of the random strategy. Zero means
	// "until the deadline", or defaultRandomTries when there is no deadline.
	RandomTries int

	// Logger receives debug events from the search. Nil disables logging.
	Logger *zap.Logger
}

// DefaultTimeLimit is the budget used by DefaultOptions.
const DefaultTimeLimit = 60 * time.Second

// DefaultOptions returns branch-and-bound with a 60 s budget from city 0.
func DefaultOptions() Options {
	return Options{
		Algo:      BranchAndBoundAlgo,
		TimeLimit: DefaultTimeLimit,
	}
}

// Stats is the branch-and-bound telemetry.
type Stats struct {
	// MaxQueue is the largest priority-queue size observed.
	MaxQueue int

	// Total counts child states generated by expansion.
	Total int

	// Pruned counts states discarded by the bound, popped or freshly generated.
	Pruned int

	// SeedCost is the incumbent cost before the search started (Inf if none).
	SeedCost matrix.Cost

	// Seeder names the strategy that produced the seed ("" if none did).
	Seeder string
}

// Result is the outcome of one solver call.
type Result struct {
	// Cost is the tour cost, or matrix.Inf when no feasible tour was found.
	Cost matrix.Cost

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration

	// Count is strategy-specific: feasible tours built (greedy), attempts
	// made (random) or incumbent improvements during the search (branch and
	// bound, the seed excluded).
	Count int

	// Tour is the best tour found, nil when Cost is Inf.
	Tour *Tour

	// Exhausted reports that the search space was fully explored, so Cost
	// is optimal (or proves infeasibility when Inf).
	Exhausted bool

	// Stats is non-nil only for branch and bound.
	Stats *Stats
}
