// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: " so it is easy to grep in logs.
// Callers match with errors.Is; operations wrap with context via matrixErrorf.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions or ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular signals that an inverse was requested for a singular matrix.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrNilMatrix indicates that a nil *Dense or *Subspace was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilEntry indicates a nil *big.Rat inside input data.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrFrozen is returned by Builder mutators after Dense has been called.
	ErrFrozen = errors.New("matrix: builder is frozen")

	// ErrNotIntegral is returned by IntRows when an entry is not an int64.
	ErrNotIntegral = errors.New("matrix: entry is not an int64 integer")
)

// Operation tags used in wrapped errors.
const (
	opNewDense    = "NewDense"
	opFromInts    = "FromInts"
	opFromRows    = "FromRows"
	opAt          = "At"
	opRow         = "Row"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opStack       = "Stack"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opIntRows     = "IntRows"
	opBuilder     = "Builder"
	opSpan        = "Span"
	opContains    = "Contains"
	opAdd         = "Add"
	opIntersect   = "Intersect"
)

// matrixErrorf wraps err with an operation tag, keeping errors.Is working.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// matrixErrorAt wraps err with an operation tag and a (row, col) position.
func matrixErrorAt(op string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, i, j, err)
}
