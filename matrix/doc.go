// Package matrix provides the reduced-cost matrix used by the lvltsp
// branch-and-bound search.
//
// The package offers:
//
//   - Cost — an extended non-negative integer. Inf marks a missing edge or
//     a connection that a partial tour has already consumed. Addition
//     saturates at Inf, so no cost ever wraps around.
//   - Dense — a square, row-major n×n matrix of Cost. Rows are "from"
//     cities, columns are "to" cities.
//   - Reduce — classic row-then-column reduction: every row and every column
//     that is not entirely Inf ends up with a minimum of exactly 0, and the
//     total subtracted is returned as the lower-bound contribution.
//
// Complexity:
//
//   - At/Set: O(1) with bounds checks.
//   - Clone, Reduce, SetRowInf, SetColInf: O(n²), O(n²), O(n), O(n).
//
// Dense values are plain data: nothing is shared between clones, which is
// what lets every search state own its matrix exclusively.
package matrix
