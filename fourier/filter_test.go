package fourier_test

import (
	"testing"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/stretchr/testify/require"
)

// TestFilterLabelsA2 checks the tracked labels of A2 up to bound 5.
func TestFilterLabelsA2(t *testing.T) {
	ix := mustIndices(t, [][]int64{{2, 1}, {1, 2}})
	f, err := fourier.NewFilter(ix, 5)
	require.NoError(t, err)

	want := []string{
		"(0, (0, 0))",
		"(1, (0, 0))", "(1, (0, 1))",
		"(2, (0, 0))", "(2, (0, 1))",
		"(3, (0, 0))", "(3, (0, 1))",
		"(4, (0, 0))", "(4, (0, 1))",
	}
	got := make([]string, 0, f.Len())
	for _, l := range f.Labels() {
		got = append(got, l.String())
	}
	require.Equal(t, want, got)

	_, err = fourier.NewFilter(ix, -1)
	require.ErrorIs(t, err, fourier.ErrNegativeBound)
}

// TestFilterRaw checks that raw indices are admissible, ordered, and reduce
// onto tracked labels.
func TestFilterRaw(t *testing.T) {
	ix := mustIndices(t, [][]int64{{2, 1}, {1, 2}})
	f, err := fourier.NewFilter(ix, 4)
	require.NoError(t, err)

	labels := map[string]bool{}
	for _, l := range f.Labels() {
		labels[l.Key()] = true
	}

	raw := f.Raw()
	require.Equal(t, "(0, (0, 0))", raw[0].String())
	for i, idx := range raw {
		require.True(t, f.Contains(idx))
		if i > 0 {
			require.LessOrEqual(t, raw[i-1].N, idx.N)
		}
		red, _, err := ix.Reduce(idx)
		require.NoError(t, err)
		require.True(t, labels[red.Key()], "%v reduces to untracked %v", idx, red)
	}

	empty, err := fourier.NewFilter(ix, 0)
	require.NoError(t, err)
	require.Empty(t, empty.Raw())
	require.Empty(t, empty.Labels())
}

// TestFilterTruncateAndCovers checks precision comparisons.
func TestFilterTruncateAndCovers(t *testing.T) {
	ix := mustIndices(t, [][]int64{{2, 1}, {1, 2}})
	wide, err := fourier.NewFilter(ix, 5)
	require.NoError(t, err)

	small, err := wide.Truncate(2)
	require.NoError(t, err)
	require.Equal(t, 3, small.Len())
	require.True(t, wide.Covers(small))
	require.False(t, small.Covers(wide))

	_, err = small.Truncate(3)
	require.ErrorIs(t, err, fourier.ErrOutOfPrecision)

	other, err := fourier.NewFilter(mustIndices(t, [][]int64{{2}}), 1)
	require.NoError(t, err)
	require.False(t, wide.Covers(other))
	require.False(t, wide.Contains(fourier.Index{N: 1, R: lattice.Vector{3, 0}}))
}

// TestScalarReduce checks folding and the level shift.
func TestScalarReduce(t *testing.T) {
	cases := []struct {
		m    int64
		in   fourier.ScalarIndex
		want fourier.ScalarIndex
		sign int
	}{
		{1, fourier.ScalarIndex{N: 1, R: 2}, fourier.ScalarIndex{N: 0, R: 0}, 1},
		{1, fourier.ScalarIndex{N: 1, R: -1}, fourier.ScalarIndex{N: 1, R: 1}, 1},
		{3, fourier.ScalarIndex{N: 1, R: -1}, fourier.ScalarIndex{N: 1, R: 1}, -1},
		{3, fourier.ScalarIndex{N: 2, R: 4}, fourier.ScalarIndex{N: 1, R: 2}, -1},
		{3, fourier.ScalarIndex{N: 2, R: 3}, fourier.ScalarIndex{N: 2, R: 3}, 1},
	}
	for _, tc := range cases {
		got, sign := fourier.ReduceScalar(tc.m, tc.in)
		require.Equal(t, tc.want, got, "m=%d %v", tc.m, tc.in)
		require.Equal(t, tc.sign, sign, "m=%d %v", tc.m, tc.in)
	}
}

// TestScalarFilterLabels checks reduced and unreduced label sets.
func TestScalarFilterLabels(t *testing.T) {
	red, err := fourier.NewScalarFilter(1, 3, true)
	require.NoError(t, err)
	require.Equal(t, []fourier.ScalarIndex{
		{N: 0, R: 0}, {N: 1, R: 0}, {N: 1, R: 1}, {N: 2, R: 0}, {N: 2, R: 1},
	}, red.Labels())

	unred, err := fourier.NewScalarFilter(1, 3, false)
	require.NoError(t, err)
	labels := unred.Labels()
	require.Len(t, labels, 11)
	require.Equal(t, fourier.ScalarIndex{N: 1, R: -2}, labels[1])
	require.True(t, unred.Contains(fourier.ScalarIndex{N: 2, R: -2}))
	require.False(t, red.Contains(fourier.ScalarIndex{N: 2, R: -1}))

	_, err = fourier.NewScalarFilter(0, 3, true)
	require.ErrorIs(t, err, fourier.ErrInvalidIndex)
}

// TestWeightCharacter checks the parity mapping.
func TestWeightCharacter(t *testing.T) {
	require.Equal(t, fourier.Trivial, fourier.WeightCharacter(4))
	require.Equal(t, fourier.Sign, fourier.WeightCharacter(7))
	require.Equal(t, fourier.Sign, fourier.WeightCharacter(-1))
	require.Equal(t, int64(-1), fourier.Sign.Eval(-1))
	require.Equal(t, int64(1), fourier.Sign.Eval(1))
	require.Equal(t, 0, fourier.Trivial.Parity())
	require.Equal(t, "sign", fourier.Sign.String())
}
