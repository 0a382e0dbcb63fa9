// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeBound is returned for a precision bound below zero.
	ErrNegativeBound = errors.New("problem: negative precision bound")

	// ErrNegativeDimension is returned for a recorded dimension below zero.
	ErrNegativeDimension = errors.New("problem: negative dimension")

	// ErrNegativeExtra is returned for a negative extra vector count.
	ErrNegativeExtra = errors.New("problem: negative extra vector count")

	// ErrBadIndex is returned for a scalar index below one.
	ErrBadIndex = errors.New("problem: scalar index must be positive")

	// ErrBadLabel is returned for a coefficient key that is not a reduced
	// scalar label within the table bound.
	ErrBadLabel = errors.New("problem: invalid scalar label")

	// ErrBadCoefficient is returned for a value that is not a rational.
	ErrBadCoefficient = errors.New("problem: invalid coefficient")

	// ErrDuplicateIndex is returned when two tables share a scalar index.
	ErrDuplicateIndex = errors.New("problem: duplicate scalar index")

	// ErrNoScalarBasis is returned when the solver asks for an index with
	// no table.
	ErrNoScalarBasis = errors.New("problem: no scalar basis for index")

	// ErrInsufficientPrecision is returned when the solver asks for more
	// coefficients than a table holds.
	ErrInsufficientPrecision = errors.New("problem: scalar table precision too small")

	// ErrOtherProblem is returned when an oracle is queried for a weight or
	// lattice the problem does not describe.
	ErrOtherProblem = errors.New("problem: query outside the problem")
)

func problemErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
