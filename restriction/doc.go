// SPDX-License-Identifier: MIT

// Package restriction builds the linear systems of the restriction method.
//
// Restricting a Jacobi form of lattice index L along a lattice vector s
// yields a scalar Jacobi form of index m = L(s): its coefficient at (n, r)
// is the sum of the coefficients c(n, t) over all covectors t with
// ⟨s, t⟩ = r. The package provides:
//
//   - Evaluate and LocalMatrix: how one restriction (s, r) sees the
//     representative classes R.
//   - FindCompleteSet: a greedy search for restriction vectors whose
//     evaluation vectors separate every class, plus optional extra
//     vectors that only add slack.
//   - GlobalMatrix: the matrix sending the tracked coefficients of the
//     higher-rank form to the concatenated coefficients of all its
//     restrictions, one row group per restriction vector.
//   - RelationMatrix: linear relations among the tracked coefficients
//     implied by scalar reduction symmetry alone.
//
// Sign convention: a raw index contributes 1 for even weight and the
// reduction sign σ for odd weight.
//
// Complexity: GlobalMatrix touches every raw index once per restriction
// vector, O(|raw|·|S|) map lookups; the selector performs one exact rank
// test per candidate (s, r).
package restriction
