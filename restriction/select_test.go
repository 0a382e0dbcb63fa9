package restriction_test

import (
	"testing"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/restriction"
	"github.com/stretchr/testify/require"
)

var a2 = [][]int64{{2, 1}, {1, 2}}

// a2Setup returns the A2 lattice and its representative slots.
func a2Setup(t *testing.T) (*lattice.QuadraticForm, [][]lattice.Vector) {
	t.Helper()
	q, err := lattice.New(a2)
	require.NoError(t, err)
	ix, err := fourier.NewIndices(q)
	require.NoError(t, err)

	return q, ix.Representatives()
}

// TestEvaluateCounts checks the per-slot counts for A2.
func TestEvaluateCounts(t *testing.T) {
	_, reps := a2Setup(t)

	ev, err := restriction.Evaluate(reps, lattice.Vector{-1, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1, 1}, ev)

	ev, err = restriction.Evaluate(reps, lattice.Vector{-1, 1}, -1)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 1}, ev)

	_, err = restriction.Evaluate(reps, lattice.Vector{1}, 0)
	require.ErrorIs(t, err, restriction.ErrDimensionMismatch)
}

// TestEvaluateInvariance checks slot reordering and joint negation of s and r.
func TestEvaluateInvariance(t *testing.T) {
	_, reps := a2Setup(t)
	reversed := make([][]lattice.Vector, len(reps))
	for i, slot := range reps {
		for j := len(slot) - 1; j >= 0; j-- {
			reversed[i] = append(reversed[i], slot[j])
		}
	}

	for _, s := range []lattice.Vector{{1, 0}, {-1, 1}, {2, -1}, {0, 3}} {
		for r := int64(-3); r <= 3; r++ {
			a, err := restriction.Evaluate(reps, s, r)
			require.NoError(t, err)
			b, err := restriction.Evaluate(reversed, s, r)
			require.NoError(t, err)
			c, err := restriction.Evaluate(reps, s.Neg(), -r)
			require.NoError(t, err)
			require.Equal(t, a, b)
			require.Equal(t, a, c)
		}
	}
}

// TestFindCompleteSetA2 checks the minimal separating set of A2.
func TestFindCompleteSetA2(t *testing.T) {
	q, reps := a2Setup(t)

	vs, err := restriction.FindCompleteSet(q, reps, 0)
	require.NoError(t, err)
	require.Equal(t, []restriction.Vector{
		{S: lattice.Vector{-1, 0}, R: 0},
		{S: lattice.Vector{-1, 0}, R: -1},
		{S: lattice.Vector{-1, 0}, R: 1},
	}, vs)
	require.Equal(t, []lattice.Vector{{-1, 0}}, restriction.DistinctVectors(vs))
}

// TestFindCompleteSetWithExtra checks the local restriction matrix with four
// extra vectors.
func TestFindCompleteSetWithExtra(t *testing.T) {
	q, reps := a2Setup(t)

	vs, err := restriction.FindCompleteSet(q, reps, 4)
	require.NoError(t, err)
	require.Len(t, vs, 7)
	require.Equal(t, restriction.Vector{S: lattice.Vector{-1, 0}, R: 0}, vs[0])

	m, err := restriction.LocalMatrix(reps, vs)
	require.NoError(t, err)
	rows, err := m.IntRows()
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{1, 1, 1},
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
	}, rows)
}

// TestFindCompleteSetEdgeCases covers empty input and invalid configuration.
func TestFindCompleteSetEdgeCases(t *testing.T) {
	q, reps := a2Setup(t)

	vs, err := restriction.FindCompleteSet(q, nil, 3)
	require.NoError(t, err)
	require.Empty(t, vs)

	_, err = restriction.FindCompleteSet(q, reps, -1)
	require.ErrorIs(t, err, restriction.ErrNegativeExtra)

	_, err = restriction.FindCompleteSet(q, reps, 0, restriction.WithNormIncrement(0))
	require.ErrorIs(t, err, restriction.ErrBadNormWindow)

	_, err = restriction.FindCompleteSet(nil, reps, 0)
	require.ErrorIs(t, err, restriction.ErrNilForm)

	// norms 1..4 offer far fewer than 103 candidates
	_, err = restriction.FindCompleteSet(q, reps, 100, restriction.WithMaxNorm(5))
	require.ErrorIs(t, err, restriction.ErrSearchExhausted)
}
