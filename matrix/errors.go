// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and indexers return these sentinels; callers match them
// with errors.Is. Context, when needed, is added by the caller with
// fmt.Errorf("ctx: %w", ErrX).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a requested order is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNonSquare indicates that row data passed to NewDenseFrom is ragged
	// or not n×n.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNegativeCost indicates that a negative cost was stored. Costs are
	// extended non-negative integers; reduction relies on it.
	ErrNegativeCost = errors.New("matrix: negative cost")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
