// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Echelon returns the reduced row echelon form of m with zero rows dropped,
// together with the pivot column of each returned row.
//
// Stage 1 (Copy): m is copied into a working buffer, m is never mutated.
// Stage 2 (Eliminate): classic Gauss-Jordan, first non-zero entry in the
// column is the pivot (exact arithmetic needs no partial pivoting).
// Stage 3 (Trim): rows below the rank are zero and are discarded.
//
// Complexity: O(r·c·min(r,c)) rational operations.
func Echelon(m *Dense) (*Dense, []int) {
	a := m.rows2D()
	pivots := gaussJordan(a, m.c)

	return fromRows2D(a[:len(pivots)], m.c), pivots
}

// Rank returns the rank of m over Q.
func Rank(m *Dense) int {
	a := m.rows2D()

	return len(gaussJordan(a, m.c))
}

// RightKernel returns {x ∈ Q^cols : m·x = 0}.
//
// Basis vectors come from the free columns of the echelon form: for each
// free column f the vector has x_f = 1 and x_p = -E[i][f] for every pivot p.
func RightKernel(m *Dense) *Subspace {
	e, pivots := Echelon(m)
	isPivot := make([]bool, m.c)
	for _, p := range pivots {
		isPivot[p] = true
	}

	basis := make([]Vector, 0, m.c-len(pivots))
	for f := 0; f < m.c; f++ {
		if isPivot[f] {
			continue
		}
		v := NewVector(m.c)
		v[f].SetInt64(1)
		for i, p := range pivots {
			v[p].Neg(e.data[i*m.c+f])
		}
		basis = append(basis, v)
	}

	return spanOf(m.c, basis)
}

// RowSpace returns the span of the rows of m inside Q^cols.
func RowSpace(m *Dense) *Subspace {
	e, pivots := Echelon(m)

	return &Subspace{n: m.c, basis: e, pivots: pivots}
}

// Inverse returns m⁻¹ using Gauss-Jordan on [m | I].
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}
	n := m.r
	a := make([][]*big.Rat, n)
	for i := range a {
		a[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			a[i][j] = new(big.Rat).Set(m.data[i*n+j])
			a[i][n+j] = new(big.Rat)
		}
		a[i][n+i].SetInt64(1)
	}
	pivots := gaussJordan(a, 2*n)
	if len(pivots) < n || pivots[n-1] != n-1 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	out := make([][]*big.Rat, n)
	for i := range out {
		out[i] = a[i][n:]
	}

	return fromRows2D(out, n), nil
}

// Determinant returns det(m) by Gaussian elimination over Q.
func Determinant(m *Dense) (*big.Rat, error) {
	if m == nil {
		return nil, matrixErrorf(opDeterminant, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opDeterminant, ErrNonSquare)
	}
	a := m.rows2D()
	n := m.r
	det := big.NewRat(1, 1)
	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		p := -1
		for i := col; i < n; i++ {
			if a[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return new(big.Rat), nil
		}
		if p != col {
			a[p], a[col] = a[col], a[p]
			det.Neg(det)
		}
		det.Mul(det, a[col][col])
		for i := col + 1; i < n; i++ {
			if a[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a[i][col], a[col][col])
			for j := col; j < n; j++ {
				a[i][j].Sub(a[i][j], tmp.Mul(f, a[col][j]))
			}
		}
	}

	return det, nil
}

// gaussJordan reduces a in place to reduced row echelon form and returns
// the pivot columns. Rows [0, len(pivots)) hold the non-zero rows.
func gaussJordan(a [][]*big.Rat, cols int) []int {
	pivots := make([]int, 0, min(len(a), cols))
	tmp := new(big.Rat)
	row := 0
	for col := 0; col < cols && row < len(a); col++ {
		// find a pivot at or below row
		p := -1
		for i := row; i < len(a); i++ {
			if a[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[p], a[row] = a[row], a[p]

		// normalise the pivot row
		inv := new(big.Rat).Inv(a[row][col])
		for j := col; j < cols; j++ {
			a[row][j].Mul(a[row][j], inv)
		}

		// clear the column everywhere else
		for i := range a {
			if i == row || a[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][col])
			for j := col; j < cols; j++ {
				a[i][j].Sub(a[i][j], tmp.Mul(f, a[row][j]))
			}
		}

		pivots = append(pivots, col)
		row++
	}

	return pivots
}
