package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by scenario constructors and decoders.
var (
	// ErrNilRNG indicates that a random source was required (elevation draws,
	// point generation, or edge thinning) but nil was passed.
	ErrNilRNG = errors.New("scenario: random source is nil")

	// ErrBadDifficulty indicates an unknown difficulty name or value.
	ErrBadDifficulty = errors.New("scenario: unknown difficulty")

	// ErrBadBounds indicates a generation box with Min > Max or NaN edges.
	ErrBadBounds = errors.New("scenario: invalid bounds")

	// ErrNegativeCount indicates a negative number of cities to generate.
	ErrNegativeCount = errors.New("scenario: city count must be >= 0")

	// ErrCostShape indicates that an explicit cost table is not n×n.
	ErrCostShape = errors.New("scenario: cost table is not square")

	// ErrBadCost indicates a negative or unparsable explicit cost entry.
	ErrBadCost = errors.New("scenario: invalid cost entry")

	// ErrBadSite indicates a NaN or infinite coordinate or elevation.
	ErrBadSite = errors.New("scenario: site values must be finite")

	// ErrEmptySpec indicates a Spec with no cities, no costs and no count.
	ErrEmptySpec = errors.New("scenario: spec describes no cities")
)

// mapScale converts map units into integer cost units.
const mapScale = 1000.0

// hardModeFractionToRemove is the share of directed edges removed in Hard modes.
const hardModeFractionToRemove = 0.20

// Difficulty selects the cost model and the edge-thinning policy.
type Difficulty int

const (
	// Easy: flat Euclidean costs, every edge present.
	Easy Difficulty = iota

	// Normal: elevation penalties, every edge present.
	Normal

	// Hard: elevation penalties and 20% of edges removed.
	Hard

	// HardDeterministic behaves exactly like Hard. It is kept as a separate
	// value because scenario files name it; with an explicit seeded RNG every
	// mode is deterministic.
	HardDeterministic
)

// String returns the display name of d.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case HardDeterministic:
		return "Hard (Deterministic)"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// chargesElevation reports whether uphill travel adds cost.
func (d Difficulty) chargesElevation() bool { return d != Easy }

// thinsEdges reports whether 20% of the edges are removed.
func (d Difficulty) thinsEdges() bool { return d == Hard || d == HardDeterministic }

// valid reports whether d is one of the declared modes.
func (d Difficulty) valid() bool { return d >= Easy && d <= HardDeterministic }

// ParseDifficulty maps a case-insensitive name onto a Difficulty.
// Accepted: "easy", "normal", "hard", "hard-deterministic",
// "hard_deterministic", "hard (deterministic)".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	case "hard-deterministic", "hard_deterministic", "hard (deterministic)":
		return HardDeterministic, nil
	default:
		return Easy, fmt.Errorf("%w: %q", ErrBadDifficulty, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, ErrBadDifficulty
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by YAML and flags).
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Point is a location on the map.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Site is a location with an explicit elevation.
type Site struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Elevation float64 `yaml:"elevation"`
}

// Bounds is the axis-aligned box generated cities are drawn from.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// DefaultBounds is the 3×2 canvas used when a spec gives no box.
func DefaultBounds() Bounds {
	return Bounds{MinX: -1.5, MaxX: 1.5, MinY: -1.0, MaxY: 1.0}
}

// validate rejects inverted or NaN boxes.
func (b Bounds) validate() error {
	// NaN fails every comparison, so !(a <= b) catches it too.
	if !(b.MinX <= b.MaxX) || !(b.MinY <= b.MaxY) {
		return ErrBadBounds
	}

	return nil
}
