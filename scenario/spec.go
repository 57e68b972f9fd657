// Declarative scenario descriptions.
//
// A Spec is the YAML-facing form of a scenario. Exactly one source of
// cities is used, in this order of precedence:
//
//  1. costs: an explicit asymmetric cost table ("inf" marks a missing edge);
//  2. cities: explicit sites with optional elevations;
//  3. count: that many cities generated inside bounds.
//
// Example:
//
//	difficulty: hard
//	seed: 42
//	count: 12
//	bounds: {min_x: -1.5, max_x: 1.5, min_y: -1, max_y: 1}

package scenario

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvltsp/matrix"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

// Spec describes how to build a Scenario.
type Spec struct {
	Difficulty Difficulty `yaml:"difficulty"`
	Seed       uint64     `yaml:"seed"`
	Count      int        `yaml:"count,omitempty"`
	Bounds     *Bounds    `yaml:"bounds,omitempty"`
	Cities     []Site     `yaml:"cities,omitempty"`
	Costs      CostTable  `yaml:"costs,omitempty"`
}

// CostTable is an explicit cost matrix that reads and writes "inf" for
// missing edges.
type CostTable [][]matrix.Cost

// UnmarshalYAML decodes a sequence of sequences of integers or inf markers
// ("inf", "∞", "-", "x", ".inf").
func (t *CostTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: costs must be a list of rows", ErrBadCost, value.Line)
	}

	out := make(CostTable, len(value.Content))

	var (
		i, j int
		row  *yaml.Node
		cell *yaml.Node
		c    matrix.Cost
		err  error
	)
	for i, row = range value.Content {
		if row.Kind != yaml.SequenceNode {
			return fmt.Errorf("%w: line %d: row %d is not a list", ErrBadCost, row.Line, i)
		}
		out[i] = make([]matrix.Cost, len(row.Content))
		for j, cell = range row.Content {
			if c, err = parseCost(cell.Value); err != nil {
				return fmt.Errorf("line %d col %d: %w", cell.Line, cell.Column, err)
			}
			out[i][j] = c
		}
	}
	*t = out

	return nil
}

// MarshalYAML writes numbers as-is and Inf as "inf".
func (t CostTable) MarshalYAML() (interface{}, error) {
	rows := make([][]interface{}, len(t))

	var i, j int
	for i = range t {
		rows[i] = make([]interface{}, len(t[i]))
		for j = range t[i] {
			if t[i][j].IsInf() {
				rows[i][j] = "inf"
			} else {
				rows[i][j] = int64(t[i][j])
			}
		}
	}

	return rows, nil
}

// parseCost reads one table cell.
func parseCost(s string) (matrix.Cost, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "∞", "-", "x", ".inf", "+inf":
		return matrix.Inf, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadCost, s)
	}

	return matrix.Cost(v), nil
}

// Build turns the description into a Scenario. The seed feeds a fresh
// golang.org/x/exp/rand source, so a Spec always builds the same scenario.
func (sp Spec) Build() (*Scenario, error) {
	if len(sp.Costs) > 0 {
		return FromCosts(sp.Costs)
	}

	rng := rand.New(rand.NewSource(sp.Seed))
	if len(sp.Cities) > 0 {
		return NewFromSites(sp.Cities, sp.Difficulty, rng)
	}
	if sp.Count < 0 {
		return nil, ErrNegativeCount
	}
	if sp.Count == 0 {
		return nil, ErrEmptySpec
	}

	b := DefaultBounds()
	if sp.Bounds != nil {
		b = *sp.Bounds
	}

	return Generate(sp.Count, sp.Difficulty, b, rng)
}

// DecodeSpec reads a YAML Spec from r. Unknown fields are rejected.
func DecodeSpec(r io.Reader) (*Spec, error) {
	var sp Spec
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&sp); err != nil {
		return nil, fmt.Errorf("scenario: decode spec: %w", err)
	}

	return &sp, nil
}

// LoadSpec reads a YAML Spec from the file at path.
func LoadSpec(path string) (*Spec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeSpec(file)
}
