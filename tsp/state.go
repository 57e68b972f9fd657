// Package tsp — Search State: a partial tour with its reduced cost matrix.
//
// A State owns:
//   - a reduced n×n cost matrix (deep copy, never shared with parent or siblings);
//   - a lower bound on every full tour extending the partial route;
//   - the partial route (city indices, no duplicates) and its visited set.
//
// Reduction (see matrix.Dense.Reduce) subtracts each row minimum and then each
// column minimum; the subtracted total is an admissible lower bound because
// every tour leaves each remaining city once and enters it once.
//
// Expansion from the last city row to a column col:
//
//	child.bound = parent.bound + M[row][col] + reduce(child.M)
//	child.M     = M with row `row` and column `col` set to Inf, M[col][row] = Inf
//
// The bound never decreases along a branch, and once the route holds every
// city the only finite cell left is the closing edge, so the bound equals the
// exact cycle cost.
//
// States are immutable after construction; Expand builds fresh children.
package tsp

import (
	"math"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/yourbasic/bit"
)

// State is one node of the branch-and-bound search tree.
type State struct {
	m       *matrix.Dense // reduced matrix, owned exclusively
	bound   matrix.Cost   // admissible lower bound
	route   []int         // partial route, route[0] is the start city
	visited *bit.Set      // cities on route
}

// NewState builds the root state: a private copy of m, route [start],
// bound equal to the reduction of the copy.
//
// Errors: ErrBadState if m is nil or start is not a row of m.
//
// Complexity: O(n²).
func NewState(m *matrix.Dense, start int) (*State, error) {
	if m == nil || start < 0 || start >= m.Order() {
		return nil, ErrBadState
	}

	var cp = m.Clone()
	s := &State{
		m:       cp,
		route:   []int{start},
		visited: bit.New(start),
	}
	s.bound = cp.Reduce()

	return s, nil
}

// Bound returns the lower bound of the state.
func (s *State) Bound() matrix.Cost { return s.bound }

// Route returns a copy of the partial route.
func (s *State) Route() []int {
	out := make([]int, len(s.route))
	copy(out, s.route)

	return out
}

// Depth returns the number of cities on the route.
func (s *State) Depth() int { return len(s.route) }

// Last returns the city the route currently ends at.
func (s *State) Last() int { return s.route[len(s.route)-1] }

// Matrix returns a deep copy of the reduced matrix.
func (s *State) Matrix() *matrix.Dense { return s.m.Clone() }

// Complete reports whether the route visits every city.
func (s *State) Complete() bool { return len(s.route) == s.m.Order() }

// Priority is the bound per unit of depth, bound / (2·depth). Lower is
// better; deep cheap states beat shallow ones with the same bound.
// An Inf bound yields +Inf.
func (s *State) Priority() float64 {
	if s.bound.IsInf() {
		return math.Inf(1)
	}

	return float64(s.bound) / float64(2*len(s.route))
}

// Expand returns one child per finite, unvisited column of the last city's
// row. A complete route, or a last city with no usable outgoing edge,
// yields no children.
//
// Complexity: O(k·n²) time and memory for k children.
func (s *State) Expand() []*State {
	if s.Complete() {
		return nil
	}

	var (
		n        = s.m.Order()
		row      = s.Last()
		costs    = s.m.Row(row)
		children []*State
		col      int
	)
	for col = 0; col < n; col++ {
		if costs[col].IsInf() || s.visited.Contains(col) {
			continue
		}
		children = append(children, s.child(row, col, costs[col]))
	}

	return children
}

// child extends the route by row→col.
func (s *State) child(row, col int, step matrix.Cost) *State {
	var m = s.m.Clone()
	// Indices come from s.m, so none of these can fail.
	_ = m.SetRowInf(row)
	_ = m.SetColInf(col)
	_ = m.Set(col, row, matrix.Inf)

	route := make([]int, len(s.route)+1)
	copy(route, s.route)
	route[len(s.route)] = col

	return &State{
		m:       m,
		bound:   s.bound.Add(step).Add(m.Reduce()),
		route:   route,
		visited: new(bit.Set).Set(s.visited).Add(col),
	}
}

// Solution returns the bound when the route is complete and the closing
// edge back to the start is still present, matrix.Inf otherwise. At that
// point the bound is the exact cycle cost.
//
// Complexity: O(1).
func (s *State) Solution() matrix.Cost {
	if !s.Complete() {
		return matrix.Inf
	}
	closing, err := s.m.At(s.Last(), s.route[0])
	if err != nil || closing.IsInf() {
		return matrix.Inf
	}

	return s.bound
}
