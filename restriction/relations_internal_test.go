package restriction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
)

// TestRelationRowsUntracked fails loudly when a group lacks the reduced
// label of one of its rows.
func TestRelationRowsUntracked(t *testing.T) {
	m, err := matrix.FromInts([][]int64{{1}})
	require.NoError(t, err)

	// (1, 2) of index 1 reduces to (0, 0), which the group does not track
	g := &Global{
		Matrix:       m,
		RowGroups:    []RowGroup{{S: lattice.Vector{1}, Index: 1, Start: 0, Length: 1}},
		RowLabels:    []map[fourier.ScalarIndex]int{{{N: 1, R: 2}: 0}},
		ColumnLabels: []fourier.Index{{N: 0, R: lattice.Vector{0}}},
	}
	_, err = relationRows(g, false)
	require.ErrorIs(t, err, ErrUntrackedLabel)
}
