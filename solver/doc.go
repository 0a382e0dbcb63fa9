// SPDX-License-Identifier: MIT

// Package solver reconstructs bases of Jacobi forms of lattice index from
// scalar Jacobi forms by restriction.
//
// Given a precision (a fourier.Filter over a lattice L) and a weight k, the
// Solver
//
//  1. asks a DimensionOracle for d = dim J_{k,L}; d = 0 returns at once,
//  2. selects restriction vectors separating every class of L,
//  3. builds the global restriction matrix M and the relation matrix,
//  4. embeds the bases of the scalar forms of index L(s) into M's row
//     groups,
//  5. solves V = {x : M·x ∈ span(scalar bases), relations·x = 0},
//  6. checks dim V = d and returns V as Fourier expansions.
//
// Results are memoised in a Cache keyed by (k, L) that only ever refines
// to a larger precision. Form exposes one basis element lazily.
//
// Errors:
//
//	ErrBrokenInvariant      dim V < d; a defect of the method itself.
//	ErrUnderDetermined      dim V > d; more vectors or precision needed.
//	ErrConsistencyMismatch  restriction and relation columns disagree.
//
// Both dimension failures are reported as *DimensionError, which matches
// the sentinels with errors.Is.
package solver
