// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"
	"strings"
)

// Dense is an immutable rows×cols matrix over Q stored in row-major order.
//
// A Dense may have zero rows; it still remembers its column count so that
// kernels and stacks of empty relation systems stay well-typed.
type Dense struct {
	r, c int
	data []*big.Rat
}

// NewDense builds a rows×cols matrix from row-major entries.
// Entries are copied. len(entries) must equal rows*cols.
//
// Errors: ErrBadShape on negative dimensions or wrong entry count,
// ErrNilEntry if any entry is nil.
func NewDense(rows, cols int, entries []*big.Rat) (*Dense, error) {
	// Stage 1 (Validate): shape and payload length.
	if rows < 0 || cols < 0 || len(entries) != rows*cols {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	// Stage 2 (Copy): never alias caller-owned rationals.
	data := make([]*big.Rat, len(entries))
	for k, x := range entries {
		if x == nil {
			return nil, matrixErrorAt(opNewDense, k/max(cols, 1), k%max(cols, 1), ErrNilEntry)
		}
		data[k] = new(big.Rat).Set(x)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Zero returns the rows×cols zero matrix.
func Zero(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}
	data := make([]*big.Rat, rows*cols)
	for k := range data {
		data[k] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := Zero(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromInts builds a matrix from integer rows. All rows must share one length
// and at least one row is required (use Zero for 0×c).
func FromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromInts, ErrBadShape)
	}
	cols := len(rows[0])
	data := make([]*big.Rat, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromInts, ErrBadShape)
		}
		for _, x := range row {
			data = append(data, big.NewRat(x, 1))
		}
	}

	return &Dense{r: len(rows), c: cols, data: data}, nil
}

// FromRows stacks vectors of length cols into a len(rows)×cols matrix.
func FromRows(cols int, rows []Vector) (*Dense, error) {
	if cols < 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	data := make([]*big.Rat, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		for _, x := range row {
			data = append(data, ratCopy(x))
		}
	}

	return &Dense{r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns a copy of entry (i, j).
func (m *Dense) At(i, j int) (*big.Rat, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, matrixErrorAt(opAt, i, j, ErrOutOfRange)
	}

	return new(big.Rat).Set(m.data[i*m.c+j]), nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorAt(opRow, i, 0, ErrOutOfRange)
	}

	return Vector(m.data[i*m.c : (i+1)*m.c]).Clone(), nil
}

// RowVectors returns copies of all rows in order.
func (m *Dense) RowVectors() []Vector {
	out := make([]Vector, m.r)
	for i := range out {
		out[i] = Vector(m.data[i*m.c : (i+1)*m.c]).Clone()
	}

	return out
}

// Transpose returns mᵀ.
func (m *Dense) Transpose() *Dense {
	data := make([]*big.Rat, len(m.data))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			data[j*m.r+i] = new(big.Rat).Set(m.data[i*m.c+j])
		}
	}

	return &Dense{r: m.c, c: m.r, data: data}
}

// Mul returns the product a·b.
//
// Complexity: O(a.Rows·a.Cols·b.Cols) rational operations.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, _ := Zero(a.r, b.c)
	tmp := new(big.Rat)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				dst := out.data[i*b.c+j]
				dst.Add(dst, tmp.Mul(aik, b.data[k*b.c+j]))
			}
		}
	}

	return out, nil
}

// MulVec returns m·v.
func (m *Dense) MulVec(v Vector) (Vector, error) {
	if len(v) != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := NewVector(m.r)
	tmp := new(big.Rat)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if v[j] == nil {
				continue
			}
			out[i].Add(out[i], tmp.Mul(m.data[i*m.c+j], v[j]))
		}
	}

	return out, nil
}

// Stack concatenates matrices vertically. All inputs must share a column count.
func Stack(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opStack, ErrBadShape)
	}
	cols, rows := -1, 0
	for _, m := range ms {
		if m == nil {
			return nil, matrixErrorf(opStack, ErrNilMatrix)
		}
		if cols >= 0 && m.c != cols {
			return nil, matrixErrorf(opStack, ErrDimensionMismatch)
		}
		cols = m.c
		rows += m.r
	}
	data := make([]*big.Rat, 0, rows*cols)
	for _, m := range ms {
		for _, x := range m.data {
			data = append(data, new(big.Rat).Set(x))
		}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k].Cmp(o.data[k]) != 0 {
			return false
		}
	}

	return true
}

// IntRows returns the entries as int64 rows.
// ErrNotIntegral is returned if any entry is fractional or exceeds int64.
func (m *Dense) IntRows() ([][]int64, error) {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = make([]int64, m.c)
		for j := range out[i] {
			x := m.data[i*m.c+j]
			if !x.IsInt() || !x.Num().IsInt64() {
				return nil, matrixErrorAt(opIntRows, i, j, ErrNotIntegral)
			}
			out[i][j] = x.Num().Int64()
		}
	}

	return out, nil
}

// String renders m one bracketed row per line, e.g. "[1 0]\n[0 1]".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// rows2D copies m into a mutable [][]*big.Rat working buffer.
func (m *Dense) rows2D() [][]*big.Rat {
	a := make([][]*big.Rat, m.r)
	for i := range a {
		a[i] = make([]*big.Rat, m.c)
		for j := range a[i] {
			a[i][j] = new(big.Rat).Set(m.data[i*m.c+j])
		}
	}

	return a
}

// fromRows2D adopts a working buffer without copying.
func fromRows2D(a [][]*big.Rat, cols int) *Dense {
	data := make([]*big.Rat, 0, len(a)*cols)
	for _, row := range a {
		data = append(data, row...)
	}

	return &Dense{r: len(a), c: cols, data: data}
}
