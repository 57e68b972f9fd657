// Package matrix — row/column reduction.
//
// Reduction subtracts the minimum of every row, then of every column, so
// that each line that still has a finite entry contains a 0. The amounts
// subtracted add up to a lower bound on any assignment (and therefore any
// tour) that can still be completed from the matrix. Lines that are
// entirely Inf contribute nothing and are left untouched.
package matrix

// RowMin returns the minimum entry of row i (Inf if the row is all Inf).
//
// Complexity: O(n).
func (m *Dense) RowMin(i int) Cost {
	var (
		best = Inf
		c    Cost
	)
	for _, c = range m.Row(i) {
		if c < best {
			best = c
		}
	}

	return best
}

// ColMin returns the minimum entry of column j (Inf if the column is all Inf).
//
// Complexity: O(n).
func (m *Dense) ColMin(j int) Cost {
	var (
		best = Inf
		i    int
		c    Cost
	)
	for i = 0; i < m.n; i++ {
		c = m.data[i*m.n+j]
		if c < best {
			best = c
		}
	}

	return best
}

// Reduce performs row reduction followed by column reduction in place and
// returns the total amount subtracted. Inf entries stay Inf.
// Reducing an already reduced matrix returns 0 and changes nothing.
//
// Complexity: O(n²).
func (m *Dense) Reduce() Cost {
	var (
		total Cost
		i, j  int
		low   Cost
		idx   int
	)

	// Stage 1: rows.
	for i = 0; i < m.n; i++ {
		low = m.RowMin(i)
		if low == 0 || low.IsInf() {
			continue
		}
		for idx = i * m.n; idx < (i+1)*m.n; idx++ {
			if !m.data[idx].IsInf() {
				m.data[idx] -= low
			}
		}
		total = total.Add(low)
	}

	// Stage 2: columns.
	for j = 0; j < m.n; j++ {
		low = m.ColMin(j)
		if low == 0 || low.IsInf() {
			continue
		}
		for i = 0; i < m.n; i++ {
			idx = i*m.n + j
			if !m.data[idx].IsInf() {
				m.data[idx] -= low
			}
		}
		total = total.Add(low)
	}

	return total
}

// IsReduced reports whether every row and column that has a finite entry
// has a minimum of exactly 0.
//
// Complexity: O(n²).
func (m *Dense) IsReduced() bool {
	var (
		i   int
		low Cost
	)
	for i = 0; i < m.n; i++ {
		low = m.RowMin(i)
		if !low.IsInf() && low != 0 {
			return false
		}
		low = m.ColMin(i)
		if !low.IsInf() && low != 0 {
			return false
		}
	}

	return true
}
