package problem_test

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
	"github.com/katalvlaran/jacobi/problem"
	"github.com/katalvlaran/jacobi/solver"
)

func load(t *testing.T, name string) *problem.Problem {
	t.Helper()
	p, err := problem.Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	return p
}

// TestLoadRankOne decodes a file and solves it.
func TestLoadRankOne(t *testing.T) {
	p := load(t, "rank1.yaml")
	require.Equal(t, [][]int64{{2}}, p.Gram)
	require.Equal(t, 4, p.Weight)
	require.Equal(t, int64(2), p.Bound)
	require.Len(t, p.Scalar, 1)

	f, err := p.Filter()
	require.NoError(t, err)
	require.Equal(t, 3, f.Len())

	basis, err := p.Solve()
	require.NoError(t, err)
	require.Len(t, basis, 1)
	require.True(t, basis[0].Vector().Equal(matrix.VectorFromInts(1, 126, 56)))
}

// TestLoadA2 recovers the θ-series of E8 over A2 from E₄,₁.
func TestLoadA2(t *testing.T) {
	p := load(t, "a2.yaml")
	reg := prometheus.NewRegistry()
	m := solver.NewMetrics(reg)

	basis, err := p.Solve(solver.WithMetrics(m))
	require.NoError(t, err)
	require.Len(t, basis, 1)

	want := matrix.VectorFromInts(1, 72, 27, 270, 216, 720, 459, 936, 1080)
	require.True(t, basis[0].Vector().Equal(want), "got %v", basis[0].Vector())
	require.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(solver.OutcomeSolved)))
}

// TestOracles checks the collaborators built from a problem.
func TestOracles(t *testing.T) {
	p := load(t, "rank1.yaml")
	form, err := p.Form()
	require.NoError(t, err)

	d, err := p.DimensionOracle().Dimension(4, form)
	require.NoError(t, err)
	require.Equal(t, 1, d)
	_, err = p.DimensionOracle().Dimension(12, form)
	require.ErrorIs(t, err, problem.ErrOtherProblem)
	other, err := lattice.New([][]int64{{4}})
	require.NoError(t, err)
	_, err = p.DimensionOracle().Dimension(4, other)
	require.ErrorIs(t, err, problem.ErrOtherProblem)

	scalar, err := p.ScalarForms()
	require.NoError(t, err)

	sf, err := fourier.NewScalarFilter(1, 2, true)
	require.NoError(t, err)
	basis, err := scalar.Basis(4, 1, sf)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	c, err := basis[0].Coefficient(fourier.Trivial, fourier.ScalarIndex{N: 1, R: -1})
	require.NoError(t, err)
	require.Equal(t, "56", c.RatString())
	_, err = basis[0].Coefficient(fourier.Trivial, fourier.ScalarIndex{N: 2, R: 0})
	require.ErrorIs(t, err, fourier.ErrOutOfPrecision)

	wide, err := fourier.NewScalarFilter(1, 4, true)
	require.NoError(t, err)
	_, err = scalar.Basis(4, 1, wide)
	require.ErrorIs(t, err, problem.ErrInsufficientPrecision)

	_, err = scalar.Basis(4, 2, sf)
	require.ErrorIs(t, err, problem.ErrNoScalarBasis)
}

// TestParseErrors rejects malformed problems.
func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"odd diagonal", "gram: [[3]]\nbound: 1\n", lattice.ErrOddDiagonal},
		{"negative bound", "gram: [[2]]\nbound: -1\n", problem.ErrNegativeBound},
		{"negative dimension", "gram: [[2]]\ndimension: -2\n", problem.ErrNegativeDimension},
		{"negative extra", "gram: [[2]]\nextra: -1\n", problem.ErrNegativeExtra},
		{"scalar index", `gram: [[2]]
scalar:
  - {index: 0, bound: 1}
`, problem.ErrBadIndex},
		{"scalar bound", `gram: [[2]]
scalar:
  - {index: 1, bound: -1}
`, problem.ErrNegativeBound},
		{"label beyond bound", `gram: [[2]]
scalar:
  - index: 1
    bound: 1
    forms: [{"1,0": "1"}]
`, problem.ErrBadLabel},
		{"unreduced label", `gram: [[2]]
scalar:
  - index: 1
    bound: 2
    forms: [{"1,2": "1"}]
`, problem.ErrBadLabel},
		{"coefficient", `gram: [[2]]
scalar:
  - index: 1
    bound: 2
    forms: [{"1,0": "one"}]
`, problem.ErrBadCoefficient},
		{"duplicate", `gram: [[2]]
scalar:
  - {index: 1, bound: 1}
  - {index: 1, bound: 2}
`, problem.ErrDuplicateIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := problem.Parse([]byte("gram: {"))
	require.Error(t, err)

	_, err = problem.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}
