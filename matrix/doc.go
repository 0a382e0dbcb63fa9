// SPDX-License-Identifier: MIT

// Package matrix provides exact linear algebra over the rationals.
//
// The package is the arithmetic backbone of the restriction pipeline:
// every entry is a *big.Rat, so ranks, kernels and intersections are
// computed without rounding. The matrices handled here are small
// (tens to a few hundred rows) but must be exact, because a single
// misjudged pivot turns a uniquely determined system into an
// under-determined one.
//
// The package offers:
//
//   - Vector, a slice of rationals with copy-on-write helpers.
//   - Dense, an immutable rows×cols matrix (zero rows are allowed).
//   - Builder, an accumulate-then-freeze constructor for sparse
//     integer contributions.
//   - Echelon, Rank, RightKernel, Inverse and Determinant, all built
//     on one Gauss-Jordan routine.
//   - Subspace, a linear subspace of Q^n kept in reduced row echelon
//     form, with Contains, Add, Intersect and Annihilator.
//
// Values returned by accessors are copies; callers may mutate them
// freely without affecting the receiver.
//
// Complexity: Gauss-Jordan elimination on an r×c matrix costs
// O(r·c·min(r,c)) rational operations. Rational entries can grow, so
// the bit-cost is larger, but the integer inputs of this module keep
// denominators small in practice.
package matrix
