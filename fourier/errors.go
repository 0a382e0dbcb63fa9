// SPDX-License-Identifier: MIT

package fourier

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeBound is returned for a precision bound below zero.
	ErrNegativeBound = errors.New("fourier: negative precision bound")

	// ErrInvalidIndex is returned for a scalar index m < 1.
	ErrInvalidIndex = errors.New("fourier: scalar index must be positive")

	// ErrDimensionMismatch is returned when a covector has the wrong length.
	ErrDimensionMismatch = errors.New("fourier: covector length does not match lattice rank")

	// ErrOutOfPrecision is returned when a coefficient beyond the tracked
	// bound is requested.
	ErrOutOfPrecision = errors.New("fourier: index beyond precision")

	// ErrFormMismatch is returned when filters of different lattices meet.
	ErrFormMismatch = errors.New("fourier: lattices differ")

	// ErrCoefficientCount is returned when a coefficient vector does not
	// match the number of tracked labels.
	ErrCoefficientCount = errors.New("fourier: coefficient count does not match labels")

	// ErrNilForm is returned when a nil lattice or filter is supplied.
	ErrNilForm = errors.New("fourier: nil lattice or filter")
)

func fourierErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}

// floorMod returns a mod b in [0, b) for b > 0.
func floorMod(a, b int64) int64 {
	return a - b*floorDiv(a, b)
}
