// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrBrokenInvariant indicates a solution space smaller than the
	// oracle dimension. It is never the caller's fault.
	ErrBrokenInvariant = errors.New("solver: reconstructed dimension below oracle dimension")

	// ErrUnderDetermined indicates a solution space larger than the oracle
	// dimension: the restriction vectors or the precision do not pin the
	// forms down.
	ErrUnderDetermined = errors.New("solver: reconstructed dimension above oracle dimension")

	// ErrConsistencyMismatch indicates that restriction and relation
	// matrices were built over different column labels.
	ErrConsistencyMismatch = errors.New("solver: restriction and relation column labels differ")

	// ErrNegativeDimension indicates an oracle answer below zero.
	ErrNegativeDimension = errors.New("solver: oracle returned a negative dimension")

	// ErrNilCollaborator indicates a nil oracle, scalar module or precision.
	ErrNilCollaborator = errors.New("solver: nil oracle, scalar forms or precision")

	// ErrBasisIndex indicates a basis element index outside [0, d).
	ErrBasisIndex = errors.New("solver: basis element index out of range")
)

// DimensionError reports a mismatch between the oracle dimension and the
// dimension of the reconstructed space.
//
// The sentinel (ErrBrokenInvariant or ErrUnderDetermined) is reachable via
// errors.Is.
type DimensionError struct {
	Weight    int
	Lattice   string
	Expected  int
	Actual    int
	Vectors   int    // restriction vectors used
	Uncovered uint64 // columns no restriction touches
	cause     error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: weight %d lattice %s: expected %d, got %d (%d vectors, %d uncovered columns)",
		e.cause, e.Weight, e.Lattice, e.Expected, e.Actual, e.Vectors, e.Uncovered)
}

func (e *DimensionError) Unwrap() error { return e.cause }

func solverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
