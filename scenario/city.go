package scenario

import (
	"math"

	"github.com/katalvlaran/lvltsp/matrix"
)

// maxFinite is the largest cost the geometric model reports before Inf.
const maxFinite = matrix.Inf - 1

// City is one stop of a Scenario. It is immutable after the Scenario is built.
type City struct {
	index     int
	name      string
	x, y      float64
	elevation float64
	scenario  *Scenario // owning scenario, read-only
}

// Index returns the position of c in its Scenario, stable for its lifetime.
func (c *City) Index() int { return c.index }

// Name returns the spreadsheet-style display name ("A", "B", ..., "AA").
func (c *City) Name() string { return c.name }

// X returns the horizontal coordinate.
func (c *City) X() float64 { return c.x }

// Y returns the vertical coordinate.
func (c *City) Y() float64 { return c.y }

// Elevation returns the elevation (0 in Easy scenarios).
func (c *City) Elevation() float64 { return c.elevation }

// Scenario returns the owning scenario.
func (c *City) Scenario() *Scenario { return c.scenario }

// String returns the city name.
func (c *City) String() string { return c.name }

// CostTo returns the asymmetric travel cost from c to other, or matrix.Inf
// when the edge does not exist. Self edges never exist. Cities from
// different scenarios are never connected.
//
// Complexity: O(1).
func (c *City) CostTo(other *City) matrix.Cost {
	if c == nil || other == nil || c.scenario == nil || c.scenario != other.scenario {
		return matrix.Inf
	}
	s := c.scenario
	if !s.EdgeExists(c.index, other.index) {
		return matrix.Inf
	}
	if s.costs != nil {
		return s.costs[c.index*len(s.cities)+other.index]
	}

	// Euclidean distance plus the uphill part of the elevation change.
	cost := math.Hypot(other.x-c.x, other.y-c.y)
	if s.difficulty.chargesElevation() {
		if rise := other.elevation - c.elevation; rise > 0 {
			cost += rise
		}
	}

	scaled := math.Ceil(cost * mapScale)
	if scaled >= float64(maxFinite) {
		return maxFinite
	}

	return matrix.Cost(scaled)
}
