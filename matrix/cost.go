package matrix

import (
	"math"
	"strconv"
)

// Cost is an extended non-negative integer travel cost.
// The zero value is a free edge; Inf is the "no edge" sentinel.
type Cost int64

// Inf marks a missing edge, or a row/column already consumed by a partial tour.
const Inf Cost = math.MaxInt64

// IsInf reports whether c is the Inf sentinel (or beyond it after a bad cast).
func (c Cost) IsInf() bool { return c >= Inf }

// Add returns c+d, saturating at Inf.
// Both operands are expected to be non-negative.
//
// Complexity: O(1).
func (c Cost) Add(d Cost) Cost {
	if c.IsInf() || d.IsInf() {
		return Inf
	}
	if c > Inf-d {
		return Inf
	}

	return c + d
}

// Less reports whether c is strictly cheaper than d. Inf is never less than Inf.
func (c Cost) Less(d Cost) bool { return c < d }

// String renders the sentinel as "inf" and everything else in decimal.
func (c Cost) String() string {
	if c.IsInf() {
		return "inf"
	}

	return strconv.FormatInt(int64(c), 10)
}

// Min returns the smaller of a and b.
func Min(a, b Cost) Cost {
	if a < b {
		return a
	}

	return b
}
