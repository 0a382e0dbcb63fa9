package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "--problem", filepath.Join("..", "..", "problem", "testdata", "rank1.yaml"), "--stats")
	require.NoError(t, err)
	require.Contains(t, out, "dim J_{4,[2]} = 1 at bound 2")
	require.Contains(t, out, "form 0 (trivial)")
	require.Contains(t, out, "(1, (1)): 56")
	require.Contains(t, out, `jacobi_solver_solves_total{outcome="solved"} 1`)

	_, err = run(t, "solve", "--problem", "missing.yaml")
	require.Error(t, err)
}

func TestVectorsCommand(t *testing.T) {
	out, err := run(t, "vectors", "--gram", "2,1;1,2")
	require.NoError(t, err)
	require.Contains(t, out, "classes 3")
	require.Contains(t, out, "((-1, 0), 0)")
	require.Contains(t, out, "((-1, 0), -1)")

	_, err = run(t, "vectors", "--gram", "3")
	require.Error(t, err)
}

func TestMatrixCommand(t *testing.T) {
	out, err := run(t, "matrix", "--gram", "2", "--vector=-2", "--bound", "3", "--weight", "5", "--relations")
	require.NoError(t, err)
	require.Contains(t, out, "columns: (0, (0)) (1, (0)) (1, (1)) (2, (0)) (2, (1))")
	require.Contains(t, out, "2x5")
	require.Contains(t, out, "[0 0 2 0 0]")

	out, err = run(t, "matrix", "--gram", "2,1;1,2", "--vector=-1,0", "--bound", "5")
	require.NoError(t, err)
	require.Contains(t, out, "9x9")
	require.Contains(t, out, "(-1, 0) m=1 rows 0..8")
}

func TestParseGram(t *testing.T) {
	g, err := parseGram("2,1;1,2")
	require.NoError(t, err)
	require.Equal(t, [][]int64{{2, 1}, {1, 2}}, g)

	_, err = parseGram(" ")
	require.Error(t, err)
	_, err = parseGram("2,x")
	require.Error(t, err)
}
