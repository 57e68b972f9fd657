// Package tsp — the Tour value returned by every strategy.
//
// A Tour is an ordered permutation of scenario cities. Its cost is the sum of
// CostTo over consecutive pairs plus the closing edge back to the first city,
// with matrix.Inf absorbing: a single missing edge makes the whole tour Inf.
//
// Conventions for short tours:
//   - 0 or 1 cities: cost 0, no edges to travel;
//   - 2 cities: c(A,B) + c(B,A).
package tsp

import (
	"strings"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/katalvlaran/lvltsp/scenario"
)

// Edge is one leg of a tour.
type Edge struct {
	From *scenario.City
	To   *scenario.City
	Cost matrix.Cost
}

// Tour is an immutable closed route over scenario cities.
type Tour struct {
	route []*scenario.City
	cost  matrix.Cost
}

// NewTour copies route and computes its cycle cost.
//
// Complexity: O(n).
func NewTour(route []*scenario.City) *Tour {
	cp := make([]*scenario.City, len(route))
	copy(cp, route)

	return &Tour{route: cp, cost: cycleCost(cp)}
}

// cycleCost sums consecutive legs plus the closing leg.
func cycleCost(route []*scenario.City) matrix.Cost {
	var n = len(route)
	if n < 2 {
		return 0
	}

	var (
		total matrix.Cost
		i     int
	)
	for i = 0; i < n; i++ {
		total = total.Add(route[i].CostTo(route[(i+1)%n]))
		if total.IsInf() {
			return matrix.Inf
		}
	}

	return total
}

// Cities returns the route in visiting order. The slice is a copy.
func (t *Tour) Cities() []*scenario.City {
	out := make([]*scenario.City, len(t.route))
	copy(out, t.route)

	return out
}

// Indices returns the city indices in visiting order.
func (t *Tour) Indices() []int {
	out := make([]int, len(t.route))

	var i int
	for i = range t.route {
		out[i] = t.route[i].Index()
	}

	return out
}

// Len returns the number of cities on the tour.
func (t *Tour) Len() int { return len(t.route) }

// Cost returns the cycle cost (matrix.Inf when infeasible).
func (t *Tour) Cost() matrix.Cost { return t.cost }

// EnumerateEdges lists the legs of the cycle, closing leg last.
// It returns nil iff the tour cost is Inf. Tours of fewer than two
// cities have no legs and yield an empty, non-nil slice.
//
// Complexity: O(n).
func (t *Tour) EnumerateEdges() []Edge {
	if t.cost.IsInf() {
		return nil
	}
	var n = len(t.route)
	if n < 2 {
		return []Edge{}
	}

	edges := make([]Edge, n)

	var (
		i        int
		from, to *scenario.City
	)
	for i = 0; i < n; i++ {
		from, to = t.route[i], t.route[(i+1)%n]
		edges[i] = Edge{From: from, To: to, Cost: from.CostTo(to)}
	}

	return edges
}

// String renders the cycle as "A → C → D → B → A (15)".
func (t *Tour) String() string {
	if len(t.route) == 0 {
		return "(empty) (0)"
	}

	var sb strings.Builder
	for _, c := range t.route {
		sb.WriteString(c.Name())
		sb.WriteString(" → ")
	}
	sb.WriteString(t.route[0].Name())
	sb.WriteString(" (")
	sb.WriteString(t.cost.String())
	sb.WriteString(")")

	return sb.String()
}
