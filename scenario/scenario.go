package scenario

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvltsp/matrix"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Scenario owns the cities, the edge mask and the difficulty.
// It is built once and never mutated afterwards.
type Scenario struct {
	cities     []*City
	edges      []bool // n*n row-major edge-existence mask
	difficulty Difficulty
	costs      []matrix.Cost // explicit n*n cost table, nil for geometric scenarios
	removed    int           // edges removed by thinning
}

// New builds a scenario from map points. For every mode except Easy each
// city gets an elevation drawn uniformly from [0, 1) using rng; Hard modes
// then thin the edges with the same rng. rng may be nil only for Easy.
//
// Complexity: O(n²) time and memory for the edge mask.
func New(points []Point, d Difficulty, rng *rand.Rand) (*Scenario, error) {
	if !d.valid() {
		return nil, ErrBadDifficulty
	}
	if d != Easy && rng == nil {
		return nil, ErrNilRNG
	}

	sites := make([]Site, len(points))

	var (
		i    int
		elev distuv.Uniform
	)
	if d != Easy {
		elev = distuv.Uniform{Min: 0, Max: 1, Src: rng}
	}
	for i = range points {
		sites[i] = Site{X: points[i].X, Y: points[i].Y}
		if d != Easy {
			sites[i].Elevation = elev.Rand()
		}
	}

	return build(sites, d, rng)
}

// NewFromSites builds a scenario whose elevations are given explicitly.
// rng is only consulted, and then required, for Hard modes.
//
// Complexity: O(n²).
func NewFromSites(sites []Site, d Difficulty, rng *rand.Rand) (*Scenario, error) {
	if !d.valid() {
		return nil, ErrBadDifficulty
	}
	if d.thinsEdges() && rng == nil {
		return nil, ErrNilRNG
	}
	cp := make([]Site, len(sites))
	copy(cp, sites)

	return build(cp, d, rng)
}

// Generate draws n points uniformly inside b and builds a scenario from them
// with New. All coordinates are drawn before any elevation.
//
// Complexity: O(n²).
func Generate(n int, d Difficulty, b Bounds, rng *rand.Rand) (*Scenario, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	var (
		xs  = distuv.Uniform{Min: b.MinX, Max: b.MaxX, Src: rng}
		ys  = distuv.Uniform{Min: b.MinY, Max: b.MaxY, Src: rng}
		pts = make([]Point, n)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i] = Point{X: xs.Rand(), Y: ys.Rand()}
	}

	return New(pts, d, rng)
}

// FromCosts builds a scenario from an explicit asymmetric cost table.
// matrix.Inf entries are missing edges; the diagonal is always missing.
// Cities get zero coordinates and are only identified by index and name.
//
// Complexity: O(n²).
func FromCosts(rows [][]matrix.Cost) (*Scenario, error) {
	var (
		n    = len(rows)
		i, j int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrCostShape
		}
		for j = 0; j < n; j++ {
			if rows[i][j] < 0 {
				return nil, fmt.Errorf("%w: costs[%d][%d]=%d", ErrBadCost, i, j, rows[i][j])
			}
		}
	}

	s := &Scenario{
		cities:     make([]*City, n),
		edges:      make([]bool, n*n),
		difficulty: Easy,
		costs:      make([]matrix.Cost, n*n),
	}
	for i = 0; i < n; i++ {
		s.cities[i] = &City{index: i, name: NameForIndex(i), scenario: s}
		for j = 0; j < n; j++ {
			if i == j || rows[i][j].IsInf() {
				s.costs[i*n+j] = matrix.Inf
				continue
			}
			s.costs[i*n+j] = rows[i][j]
			s.edges[i*n+j] = true
		}
	}

	return s, nil
}

// build wires cities to the scenario, sets the full mask and thins it if
// the difficulty asks for it.
func build(sites []Site, d Difficulty, rng *rand.Rand) (*Scenario, error) {
	var (
		n    = len(sites)
		i, j int
	)
	for i = 0; i < n; i++ {
		if !finite(sites[i].X) || !finite(sites[i].Y) || !finite(sites[i].Elevation) {
			return nil, fmt.Errorf("%w: site %d", ErrBadSite, i)
		}
	}

	s := &Scenario{
		cities:     make([]*City, n),
		edges:      make([]bool, n*n),
		difficulty: d,
	}
	for i = 0; i < n; i++ {
		s.cities[i] = &City{
			index:     i,
			name:      NameForIndex(i),
			x:         sites[i].X,
			y:         sites[i].Y,
			elevation: sites[i].Elevation,
			scenario:  s,
		}
		// Every edge exists except self edges.
		for j = 0; j < n; j++ {
			s.edges[i*n+j] = i != j
		}
	}

	if d.thinsEdges() {
		s.thinEdges(rng)
	}

	return s, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Cities returns the cities in index order. The slice is a copy; the
// *City values are shared and immutable.
func (s *Scenario) Cities() []*City {
	out := make([]*City, len(s.cities))
	copy(out, s.cities)

	return out
}

// City returns the city at index i, or nil when out of range.
func (s *Scenario) City(i int) *City {
	if i < 0 || i >= len(s.cities) {
		return nil
	}

	return s.cities[i]
}

// Len returns the number of cities.
func (s *Scenario) Len() int { return len(s.cities) }

// Difficulty returns the mode the scenario was built with.
func (s *Scenario) Difficulty() Difficulty { return s.difficulty }

// RemovedEdges returns how many directed edges thinning removed.
func (s *Scenario) RemovedEdges() int { return s.removed }

// EdgeExists reports whether the directed edge i→j is present.
// Out-of-range indices and self edges report false.
func (s *Scenario) EdgeExists(i, j int) bool {
	n := len(s.cities)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}

	return s.edges[i*n+j]
}

// CostMatrix materialises CostTo for every ordered pair into a fresh Dense.
// The caller owns the result.
//
// Complexity: O(n²).
func (s *Scenario) CostMatrix() *matrix.Dense {
	var n = len(s.cities)
	m, _ := matrix.NewDense(n) // n >= 0 always

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = m.Set(i, j, s.cities[i].CostTo(s.cities[j])) // in range, never negative
		}
	}

	return m
}
