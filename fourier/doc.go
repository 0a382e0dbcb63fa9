// SPDX-License-Identifier: MIT

// Package fourier implements the Fourier index machinery of Jacobi forms.
//
// A Jacobi form of lattice index L has coefficients c(n, t) indexed by an
// integer n and a covector t ∈ Zᴺ. Coefficients depend only on the
// discriminant and on the class of t up to sign (with the weight character
// on the sign), so every index reduces to a finite set of tracked labels.
//
// Conventions (used consistently by every package of this module):
//
//	dual norm     A(t) = tᵀ adj(G) t,  with adj(G) = det(G)·G⁻¹
//	discriminant  D(n, t) = 2·det(G)·n - A(t)
//	admissible    D(n, t) ≥ 0
//	class of t    t mod G·Zᴺ, keyed by adj(G)·t mod det(G)
//	reduction     (n, t) ↦ (n - (A(t) - A(t'))/(2·det(G)), t')
//
// where t' is the canonical representative of the ±class of t. The shift is
// exact since A(±t + Gλ) = A(t) ± 2·det(G)·(⟨t, λ⟩ ± L(λ)), and reduction
// preserves D. The reduction sign is +1 when t lies in the class of t' and
// -1 otherwise.
//
// For G = (2m) these agree with the scalar conventions below: D = 4mn - t²
// and the tracked labels are the reduced scalar labels of index m.
//
// Scalar (rank one, index m) indices (n, r) reduce by r ↦ r mod 2m folded
// into [0, m], with sign -1 on a fold, and n shifted by (r² - r'²)/(4m).
//
// The package provides Indices (classes, representatives, reduction),
// Filter and ScalarFilter (precisions), Character, and the finite
// coefficient tables Expansion and ScalarExpansion.
package fourier
