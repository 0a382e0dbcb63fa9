// SPDX-License-Identifier: MIT

package restriction

import (
	"errors"
	"fmt"
)

var (
	// ErrNilForm indicates a nil lattice or precision.
	ErrNilForm = errors.New("restriction: lattice or precision is nil")

	// ErrNegativeExtra indicates a negative number of extra vectors.
	ErrNegativeExtra = errors.New("restriction: extra vector count must be non-negative")

	// ErrBadNormWindow indicates a non-positive initial norm window or increment,
	// or a maximum norm below the initial window.
	ErrBadNormWindow = errors.New("restriction: invalid norm window")

	// ErrSearchExhausted is returned when the norm cap is reached before the
	// vector set separates every class.
	ErrSearchExhausted = errors.New("restriction: norm cap reached before the vector set was complete")

	// ErrZeroVector indicates a zero restriction vector (index 0 restriction).
	ErrZeroVector = errors.New("restriction: restriction vector is zero")

	// ErrDimensionMismatch indicates a vector whose length differs from the lattice rank.
	ErrDimensionMismatch = errors.New("restriction: vector length does not match lattice rank")

	// ErrUntrackedLabel indicates an index that reduced outside the tracked
	// labels; it signals inconsistent index machinery.
	ErrUntrackedLabel = errors.New("restriction: index reduced to an untracked label")
)

func restrictionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
