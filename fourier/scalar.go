// SPDX-License-Identifier: MIT

package fourier

// ReduceScalar maps a scalar index of index m to its reduced label and sign.
//
// r is taken mod 2m into [0, 2m); values above m fold to 2m - r with sign
// -1. n shifts by (r² - r'²)/(4m), which is always integral.
func ReduceScalar(m int64, idx ScalarIndex) (ScalarIndex, int) {
	rred := floorMod(idx.R, 2*m)
	sign := 1
	if rred > m {
		rred = 2*m - rred
		sign = -1
	}

	return ScalarIndex{N: idx.N - floorDiv(idx.R*idx.R-rred*rred, 4*m), R: rred}, sign
}

// ScalarFilter is the precision of a scalar Jacobi form of index m:
// all indices with 0 ≤ n < bound, in reduced or unreduced form.
type ScalarFilter struct {
	bound   int64
	m       int64
	reduced bool
}

// NewScalarFilter returns the filter of index m and bound.
//
// A reduced filter keeps (n, r) with 0 ≤ r ≤ m and 4mn - r² ≥ 0; an
// unreduced one keeps every r with r² ≤ 4mn.
func NewScalarFilter(m, bound int64, reduced bool) (*ScalarFilter, error) {
	if m < 1 {
		return nil, fourierErrorf("NewScalarFilter", ErrInvalidIndex)
	}
	if bound < 0 {
		return nil, fourierErrorf("NewScalarFilter", ErrNegativeBound)
	}

	return &ScalarFilter{bound: bound, m: m, reduced: reduced}, nil
}

// Index returns m.
func (f *ScalarFilter) Index() int64 { return f.m }

// Bound returns the exclusive upper bound on n.
func (f *ScalarFilter) Bound() int64 { return f.bound }

// Reduced reports whether only reduced labels are tracked.
func (f *ScalarFilter) Reduced() bool { return f.reduced }

// Labels lists the tracked indices ordered by n, then r ascending.
func (f *ScalarFilter) Labels() []ScalarIndex {
	out := []ScalarIndex{}
	for n := int64(0); n < f.bound; n++ {
		lo, hi := int64(0), f.m
		if !f.reduced {
			lo, hi = -isqrt(4*f.m*n), isqrt(4*f.m*n)
		}
		for r := lo; r <= hi; r++ {
			if 4*f.m*n-r*r >= 0 {
				out = append(out, ScalarIndex{N: n, R: r})
			}
		}
	}

	return out
}

// Contains reports whether idx is one of the tracked labels.
func (f *ScalarFilter) Contains(idx ScalarIndex) bool {
	if idx.N < 0 || idx.N >= f.bound || 4*f.m*idx.N-idx.R*idx.R < 0 {
		return false
	}

	return !f.reduced || (idx.R >= 0 && idx.R <= f.m)
}

// Truncate returns the same filter with a smaller bound.
func (f *ScalarFilter) Truncate(bound int64) (*ScalarFilter, error) {
	if bound < 0 {
		return nil, fourierErrorf("Truncate", ErrNegativeBound)
	}
	if bound > f.bound {
		return nil, fourierErrorf("Truncate", ErrOutOfPrecision)
	}

	return &ScalarFilter{bound: bound, m: f.m, reduced: f.reduced}, nil
}

// isqrt returns ⌊√x⌋ for x ≥ 0.
func isqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	r := int64(1)
	for r*r <= x {
		r *= 2
	}
	lo, hi := r/2, r
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if mid*mid <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
