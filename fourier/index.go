// SPDX-License-Identifier: MIT

package fourier

import (
	"strconv"

	"github.com/katalvlaran/jacobi/lattice"
)

// Index is a Fourier index (n, t) of a Jacobi form of lattice index.
type Index struct {
	N int64
	R lattice.Vector
}

// Key returns a map key for idx, e.g. "2|0,1".
func (idx Index) Key() string {
	return strconv.FormatInt(idx.N, 10) + "|" + idx.R.Key()
}

// Equal reports whether two indices coincide.
func (idx Index) Equal(o Index) bool {
	return idx.N == o.N && idx.R.Equal(o.R)
}

// String renders idx as "(2, (0, 1))".
func (idx Index) String() string {
	return "(" + strconv.FormatInt(idx.N, 10) + ", " + idx.R.String() + ")"
}

// ScalarIndex is a Fourier index (n, r) of a scalar Jacobi form.
// It is comparable and used directly as a map key.
type ScalarIndex struct {
	N int64
	R int64
}

// String renders idx as "(n, r)".
func (idx ScalarIndex) String() string {
	return "(" + strconv.FormatInt(idx.N, 10) + ", " + strconv.FormatInt(idx.R, 10) + ")"
}
