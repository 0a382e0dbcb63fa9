package fourier_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
	"github.com/stretchr/testify/require"
)

func rat(x int64) *big.Rat { return big.NewRat(x, 1) }

// TestExpansionCoefficient checks lookups through reduction for G = (2),
// where the expansion is E₄,₁: c(n, r) depends on 4n - r² only.
func TestExpansionCoefficient(t *testing.T) {
	ix := mustIndices(t, [][]int64{{2}})
	f, err := fourier.NewFilter(ix, 2)
	require.NoError(t, err)

	e, err := fourier.NewExpansion(fourier.Trivial, f, matrix.VectorFromInts(1, 126, 56))
	require.NoError(t, err)

	cases := []struct {
		idx  fourier.Index
		want int64
	}{
		{fourier.Index{N: 0, R: lattice.Vector{0}}, 1},
		{fourier.Index{N: 1, R: lattice.Vector{1}}, 56},
		{fourier.Index{N: 1, R: lattice.Vector{-1}}, 56},
		{fourier.Index{N: 1, R: lattice.Vector{2}}, 1},
		{fourier.Index{N: 1, R: lattice.Vector{-2}}, 1},
		{fourier.Index{N: 3, R: lattice.Vector{3}}, 56},
		{fourier.Index{N: 1, R: lattice.Vector{3}}, 0}, // not admissible
	}
	for _, tc := range cases {
		c, err := e.Coefficient(fourier.Trivial, tc.idx)
		require.NoError(t, err)
		require.Zero(t, c.Cmp(rat(tc.want)), "c%v = %s", tc.idx, c.RatString())
	}

	c, err := e.Coefficient(fourier.Sign, fourier.Index{N: 1, R: lattice.Vector{1}})
	require.NoError(t, err)
	require.Zero(t, c.Sign()) // other character

	_, err = e.Coefficient(fourier.Trivial, fourier.Index{N: 2, R: lattice.Vector{0}})
	require.ErrorIs(t, err, fourier.ErrOutOfPrecision)

	_, err = fourier.NewExpansion(fourier.Trivial, f, matrix.VectorFromInts(1))
	require.ErrorIs(t, err, fourier.ErrCoefficientCount)
}

// TestExpansionOddSign checks that odd characters pick up the reduction sign.
func TestExpansionOddSign(t *testing.T) {
	ix := mustIndices(t, [][]int64{{6}})
	f, err := fourier.NewFilter(ix, 2)
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())

	e, err := fourier.NewExpansion(fourier.Sign, f, matrix.VectorFromInts(0, 0, 7, 0, 0))
	require.NoError(t, err)

	c, err := e.Coefficient(fourier.Sign, fourier.Index{N: 1, R: lattice.Vector{-1}})
	require.NoError(t, err)
	require.Zero(t, c.Cmp(rat(-7)))

	c, err = e.Coefficient(fourier.Sign, fourier.Index{N: 1, R: lattice.Vector{1}})
	require.NoError(t, err)
	require.Zero(t, c.Cmp(rat(7)))
}

// TestExpansionTruncate checks restriction to a smaller filter.
func TestExpansionTruncate(t *testing.T) {
	ix := mustIndices(t, [][]int64{{2}})
	f, err := fourier.NewFilter(ix, 2)
	require.NoError(t, err)
	e, err := fourier.NewExpansion(fourier.Trivial, f, matrix.VectorFromInts(3, 1, 5))
	require.NoError(t, err)

	small, err := f.Truncate(1)
	require.NoError(t, err)
	tr, err := e.Truncate(small)
	require.NoError(t, err)
	require.True(t, tr.Vector().Equal(matrix.VectorFromInts(3)))

	bigger, err := fourier.NewFilter(ix, 3)
	require.NoError(t, err)
	_, err = e.Truncate(bigger)
	require.ErrorIs(t, err, fourier.ErrOutOfPrecision)
}

// TestScalarExpansion checks reduction and validation of scalar tables.
func TestScalarExpansion(t *testing.T) {
	f, err := fourier.NewScalarFilter(3, 2, true)
	require.NoError(t, err)

	e, err := fourier.NewScalarExpansion(fourier.Sign, f, map[fourier.ScalarIndex]*big.Rat{
		{N: 1, R: 1}: rat(2),
	})
	require.NoError(t, err)

	c, err := e.Coefficient(fourier.Sign, fourier.ScalarIndex{N: 1, R: -1})
	require.NoError(t, err)
	require.Zero(t, c.Cmp(rat(-2)))

	c, err = e.Coefficient(fourier.Sign, fourier.ScalarIndex{N: 1, R: 2})
	require.NoError(t, err)
	require.Zero(t, c.Sign()) // missing labels are zero

	_, err = e.Coefficient(fourier.Sign, fourier.ScalarIndex{N: 2, R: 0})
	require.ErrorIs(t, err, fourier.ErrOutOfPrecision)

	_, err = fourier.NewScalarExpansion(fourier.Sign, f, map[fourier.ScalarIndex]*big.Rat{
		{N: 1, R: -1}: rat(1), // not a reduced label
	})
	require.ErrorIs(t, err, fourier.ErrOutOfPrecision)

	tr, err := e.Truncate(1)
	require.NoError(t, err)
	require.Equal(t, int64(1), tr.Filter().Bound())
}
