// Package matrix — Dense is a square, row-major matrix of Cost values,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import "strings"

// Dense is an n×n cost matrix.
// n is the order and data holds n*n elements in row-major order.
type Dense struct {
	n    int    // order (rows == cols)
	data []Cost // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix with every entry set to Inf.
// An order of 0 is valid and yields an empty matrix.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]Cost, n*n)

	var i int
	for i = range data {
		data[i] = Inf
	}

	return &Dense{n: n, data: data}, nil
}

// NewDenseFrom copies rows into a new Dense.
// Stage 1 (Validate): rows must be n×n; every entry non-negative.
// Stage 2 (Copy): flatten into row-major storage.
//
// Complexity: O(n²).
func NewDenseFrom(rows [][]Cost) (*Dense, error) {
	var n = len(rows)

	var (
		i, j int
		c    Cost
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			if rows[i][j] < 0 {
				return nil, denseErrorf("NewDenseFrom", i, j, ErrNegativeCost)
			}
		}
	}

	m := &Dense{n: n, data: make([]Cost, n*n)}
	for i = 0; i < n; i++ {
		for j, c = range rows[i] {
			m.data[i*n+j] = c
		}
	}

	return m, nil
}

// Order returns n, the number of rows (and columns).
func (m *Dense) Order() int { return m.n }

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (Cost, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns c at (row, col). Negative costs are rejected.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, c Cost) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if c < 0 {
		return denseErrorf("Set", row, col, ErrNegativeCost)
	}
	m.data[idx] = c

	return nil
}

// Row returns row i as a slice that aliases the matrix storage.
// It exists for hot read loops; callers must not write through it.
// Panics if i is out of range, like any slice index.
func (m *Dense) Row(i int) []Cost {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// SetRowInf overwrites row i with Inf (the city has departed).
//
// Complexity: O(n).
func (m *Dense) SetRowInf(i int) error {
	if i < 0 || i >= m.n {
		return denseErrorf("SetRowInf", i, 0, ErrIndexOutOfBounds)
	}
	var j int
	for j = i * m.n; j < (i+1)*m.n; j++ {
		m.data[j] = Inf
	}

	return nil
}

// SetColInf overwrites column j with Inf (the city has been arrived at).
//
// Complexity: O(n).
func (m *Dense) SetColInf(j int) error {
	if j < 0 || j >= m.n {
		return denseErrorf("SetColInf", 0, j, ErrIndexOutOfBounds)
	}
	var i int
	for i = 0; i < m.n; i++ {
		m.data[i*m.n+j] = Inf
	}

	return nil
}

// Clone returns a deep copy; no storage is shared with m.
//
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]Cost, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same order and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	var i int
	for i = range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToRows returns an independent [][]Cost copy of the matrix.
//
// Complexity: O(n²).
func (m *Dense) ToRows() [][]Cost {
	out := make([][]Cost, m.n)

	var i int
	for i = 0; i < m.n; i++ {
		out[i] = make([]Cost, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.n+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
