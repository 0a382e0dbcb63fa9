// SPDX-License-Identifier: MIT

package fourier

import (
	"github.com/katalvlaran/jacobi/lattice"
)

// Filter is the precision of a Jacobi form of lattice index: every index
// with 0 ≤ n < bound. It exposes both the tracked (reduced) labels and the
// raw, unreduced indices that reduce onto them.
type Filter struct {
	bound   int64
	indices *Indices
	labels  []Index
}

// NewFilter returns the filter of the given bound over ix.
func NewFilter(ix *Indices, bound int64) (*Filter, error) {
	if ix == nil {
		return nil, fourierErrorf("NewFilter", ErrNilForm)
	}
	if bound < 0 {
		return nil, fourierErrorf("NewFilter", ErrNegativeBound)
	}
	f := &Filter{bound: bound, indices: ix}
	f.labels = []Index{}
	for n := int64(0); n < bound; n++ {
		for _, rc := range ix.reduced {
			if rc.dual <= 2*ix.det*n {
				f.labels = append(f.labels, Index{N: n, R: rc.rep.Clone()})
			}
		}
	}

	return f, nil
}

// Bound returns the exclusive upper bound on n.
func (f *Filter) Bound() int64 { return f.bound }

// Indices returns the class structure the filter is built on.
func (f *Filter) Indices() *Indices { return f.indices }

// Form returns the lattice of the filter.
func (f *Filter) Form() *lattice.QuadraticForm { return f.indices.form }

// Len returns the number of tracked labels.
func (f *Filter) Len() int { return len(f.labels) }

// Labels lists the tracked labels (n, t') with A(t') ≤ 2·det·n, ordered by
// n and then by representative order.
func (f *Filter) Labels() []Index {
	out := make([]Index, len(f.labels))
	for i, l := range f.labels {
		out[i] = Index{N: l.N, R: l.R.Clone()}
	}

	return out
}

// Raw lists every admissible index (n, t) with n < bound, ordered by n
// and then lexicographically in t.
func (f *Filter) Raw() []Index {
	out := []Index{}
	if f.bound == 0 {
		return out
	}
	ix := f.indices
	all, _ := lattice.Enumerate(ix.adj, 2*ix.det*(f.bound-1))
	dual := make([]int64, len(all))
	for i, t := range all {
		dual[i] = ix.dualNorm(t)
	}
	for n := int64(0); n < f.bound; n++ {
		for i, t := range all {
			if dual[i] <= 2*ix.det*n {
				out = append(out, Index{N: n, R: t.Clone()})
			}
		}
	}

	return out
}

// Contains reports whether idx lies inside the filter: 0 ≤ n < bound and
// idx is admissible.
func (f *Filter) Contains(idx Index) bool {
	return idx.N >= 0 && idx.N < f.bound && f.indices.Admissible(idx)
}

// Covers reports whether f tracks at least the labels of g (same lattice,
// bound no smaller).
func (f *Filter) Covers(g *Filter) bool {
	return g != nil && f.Form().Key() == g.Form().Key() && g.bound <= f.bound
}

// Truncate returns the filter of a smaller bound over the same indices.
func (f *Filter) Truncate(bound int64) (*Filter, error) {
	if bound > f.bound {
		return nil, fourierErrorf("Truncate", ErrOutOfPrecision)
	}

	return NewFilter(f.indices, bound)
}

// ScalarFilter returns the scalar filter of index m with the same bound.
func (f *Filter) ScalarFilter(m int64, reduced bool) (*ScalarFilter, error) {
	return NewScalarFilter(m, f.bound, reduced)
}
