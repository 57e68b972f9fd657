// Package scenario models the city set a TSP search runs against.
//
// A Scenario owns:
//
//   - an ordered list of Cities (index, spreadsheet-style name, x/y
//     coordinates, elevation, and a back reference to the Scenario);
//   - an n×n edge-existence mask. The diagonal is always false, and
//     mask[i][j] need not equal mask[j][i];
//   - a Difficulty that decides whether elevation is charged and whether
//     edges are thinned.
//
// Cost model:
//
//	CostTo(a, b) = Inf                                  if !mask[a][b]
//	             = ceil((‖a−b‖ + max(0, b.z − a.z)) × 1000)   otherwise
//
// The elevation term is dropped in Easy mode. Downhill travel never costs
// less than the flat distance; uphill travel adds to it. Scenarios built
// from an explicit cost table (FromCosts) return the table entries instead.
//
// Hard modes remove 20% of the directed edges at random after protecting
// one random Hamiltonian cycle, so at least one tour always exists.
//
// Randomness is never global: every constructor that needs it takes an
// explicit *rand.Rand from golang.org/x/exp/rand, and elevation/coordinate
// draws go through gonum's distuv.Uniform over that source. Same seed, same
// scenario.
//
// Scenarios are immutable after construction and safe for concurrent reads.
package scenario
