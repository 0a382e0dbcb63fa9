// Package matrix_test contains unit tests for the exact Dense matrix.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/jacobi/matrix"
	"github.com/stretchr/testify/require"
)

// mustInts is a small fixture helper.
func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// TestNewDenseInvalidShape ensures NewDense rejects bad shapes and nil entries.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := matrix.NewDense(-1, 2, nil)       // negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDense(2, 2, make([]*big.Rat, 3)) // wrong payload length
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(1, 2, []*big.Rat{big.NewRat(1, 1), nil})
	require.ErrorIs(t, err, matrix.ErrNilEntry)

	_, err = matrix.FromInts([][]int64{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestZeroRows checks that 0×c matrices keep their column count.
func TestZeroRows(t *testing.T) {
	m, err := matrix.Zero(0, 4)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 4, matrix.RightKernel(m).Dim()) // nothing constrains x
}

// TestAtOutOfRange ensures At and Row report ErrOutOfRange instead of panicking.
func TestAtOutOfRange(t *testing.T) {
	m := mustInts(t, [][]int64{{1, 2}, {3, 4}})

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAccessorsCopy verifies accessors never alias internal storage.
func TestAccessorsCopy(t *testing.T) {
	m := mustInts(t, [][]int64{{1, 2}})

	x, err := m.At(0, 0)
	require.NoError(t, err)
	x.SetInt64(99)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1].SetInt64(99)

	require.Equal(t, "[1 2]", m.String())
}

// TestMulAndTranspose checks a small product by hand.
func TestMulAndTranspose(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2, 0}, {0, 1, 3}})
	b := a.Transpose()

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	got, err := p.IntRows()
	require.NoError(t, err)
	require.Equal(t, [][]int64{{5, 2}, {2, 10}}, got)

	_, err = matrix.Mul(a, a) // 2×3 · 2×3
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulVec checks matrix-vector products and length validation.
func TestMulVec(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2}, {3, 4}})

	v, err := a.MulVec(matrix.VectorFromInts(1, -1))
	require.NoError(t, err)
	require.True(t, v.Equal(matrix.VectorFromInts(-1, -1)))

	_, err = a.MulVec(matrix.VectorFromInts(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestStack verifies vertical concatenation and column checks.
func TestStack(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 0}})
	b := mustInts(t, [][]int64{{0, 1}, {1, 1}})
	empty, err := matrix.Zero(0, 2)
	require.NoError(t, err)

	s, err := matrix.Stack(a, empty, b)
	require.NoError(t, err)
	require.Equal(t, "[1 0]\n[0 1]\n[1 1]", s.String())

	_, err = matrix.Stack(a, mustInts(t, [][]int64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIntRowsRejectsFractions ensures IntRows does not silently truncate.
func TestIntRowsRejectsFractions(t *testing.T) {
	m, err := matrix.NewDense(1, 1, []*big.Rat{big.NewRat(1, 2)})
	require.NoError(t, err)
	_, err = m.IntRows()
	require.ErrorIs(t, err, matrix.ErrNotIntegral)
}

// TestBuilderFreeze checks accumulation and the frozen state.
func TestBuilderFreeze(t *testing.T) {
	b, err := matrix.NewBuilder(2, 2)
	require.NoError(t, err)

	require.NoError(t, b.Add(0, 0, 1))
	require.NoError(t, b.Add(0, 0, 1)) // contributions accumulate
	require.NoError(t, b.Add(1, 1, -1))
	require.ErrorIs(t, b.Add(2, 0, 1), matrix.ErrOutOfRange)

	m := b.Dense()
	require.Equal(t, "[2 0]\n[0 -1]", m.String())
	require.ErrorIs(t, b.Add(0, 0, 1), matrix.ErrFrozen)
	require.True(t, m.Equal(b.Dense()))
}
