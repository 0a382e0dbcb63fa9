// SPDX-License-Identifier: MIT

// Package lattice models positive definite even integral lattices.
//
// A lattice is given by its Gram matrix G (symmetric, even diagonal,
// positive definite). The associated quadratic form is
//
//	L(x) = xᵀ G x / 2
//
// which is integral because the diagonal of G is even. The package
// provides:
//
//   - QuadraticForm: validation, evaluation, the bilinear form, the
//     determinant and the adjugate adj(G) = det(G)·G⁻¹ used to measure
//     dual vectors without fractions.
//   - Enumerate: exact Fincke-Pohst enumeration of all integer vectors
//     with xᵀ H x ≤ c for any positive definite integral H.
//   - ShortVectors: vectors grouped by L(x), optionally one per ± pair.
//
// All arithmetic is exact. Enumeration uses *big.Rat for the Cholesky-like
// decomposition, so no vector near the boundary is lost to rounding.
package lattice
