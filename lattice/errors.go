// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGram is returned for a Gram matrix without rows.
	ErrEmptyGram = errors.New("lattice: empty Gram matrix")

	// ErrNonSquare is returned for a ragged or non-square Gram matrix.
	ErrNonSquare = errors.New("lattice: Gram matrix is not square")

	// ErrAsymmetric is returned when G != Gᵀ.
	ErrAsymmetric = errors.New("lattice: Gram matrix is not symmetric")

	// ErrOddDiagonal is returned when a diagonal entry of G is odd.
	ErrOddDiagonal = errors.New("lattice: Gram matrix has an odd diagonal entry")

	// ErrNotPositiveDefinite is returned when G (or H in Enumerate) is not
	// positive definite.
	ErrNotPositiveDefinite = errors.New("lattice: form is not positive definite")

	// ErrDimensionMismatch is returned when a vector's length differs from the rank.
	ErrDimensionMismatch = errors.New("lattice: vector length does not match rank")
)

// latticeErrorf wraps err with an operation tag.
func latticeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
