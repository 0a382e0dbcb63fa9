// SPDX-License-Identifier: MIT

package fourier

import (
	"math/big"

	"github.com/katalvlaran/jacobi/matrix"
)

// Expansion is a truncated Fourier expansion of a Jacobi form of lattice
// index: one coefficient per tracked label of its filter, for a single
// character. Coefficients of other indices follow by reduction.
type Expansion struct {
	ch     Character
	filter *Filter
	coeffs matrix.Vector
	pos    map[string]int
}

// NewExpansion binds coefficients (in label order) to filter.
func NewExpansion(ch Character, filter *Filter, coeffs matrix.Vector) (*Expansion, error) {
	if filter == nil {
		return nil, fourierErrorf("NewExpansion", ErrNilForm)
	}
	if len(coeffs) != filter.Len() {
		return nil, fourierErrorf("NewExpansion", ErrCoefficientCount)
	}
	pos := make(map[string]int, len(filter.labels))
	for i, l := range filter.labels {
		pos[l.Key()] = i
	}

	return &Expansion{ch: ch, filter: filter, coeffs: coeffs.Clone(), pos: pos}, nil
}

// Character returns the character the expansion lives in.
func (e *Expansion) Character() Character { return e.ch }

// Filter returns the precision of the expansion.
func (e *Expansion) Filter() *Filter { return e.filter }

// Vector returns the coefficients in label order.
func (e *Expansion) Vector() matrix.Vector { return e.coeffs.Clone() }

// Coefficient returns c(ch, idx) for any index.
//
// A different character yields zero. Otherwise idx is reduced; labels that
// are not admissible carry zero, labels beyond the bound are an error, and
// the stored value is multiplied by the reduction sign for odd characters.
func (e *Expansion) Coefficient(ch Character, idx Index) (*big.Rat, error) {
	if ch != e.ch {
		return new(big.Rat), nil
	}
	red, sign, err := e.filter.indices.Reduce(idx)
	if err != nil {
		return nil, fourierErrorf("Coefficient", err)
	}
	if red.N < 0 || !e.filter.indices.Admissible(red) {
		return new(big.Rat), nil
	}
	if red.N >= e.filter.bound {
		return nil, fourierErrorf("Coefficient", ErrOutOfPrecision)
	}
	v := new(big.Rat).Set(e.coeffs[e.pos[red.Key()]])
	if ch == Sign && sign < 0 {
		v.Neg(v)
	}

	return v, nil
}

// Truncate restricts e to a filter it covers.
func (e *Expansion) Truncate(f *Filter) (*Expansion, error) {
	if f == nil {
		return nil, fourierErrorf("Truncate", ErrNilForm)
	}
	if f.Form().Key() != e.filter.Form().Key() {
		return nil, fourierErrorf("Truncate", ErrFormMismatch)
	}
	if !e.filter.Covers(f) {
		return nil, fourierErrorf("Truncate", ErrOutOfPrecision)
	}
	out := make(matrix.Vector, len(f.labels))
	for i, l := range f.labels {
		out[i] = new(big.Rat).Set(e.coeffs[e.pos[l.Key()]])
	}

	return NewExpansion(e.ch, f, out)
}

// Equal reports whether two expansions agree in character, precision and
// coefficients.
func (e *Expansion) Equal(o *Expansion) bool {
	return e.ch == o.ch &&
		e.filter.bound == o.filter.bound &&
		e.filter.Form().Key() == o.filter.Form().Key() &&
		e.coeffs.Equal(o.coeffs)
}

// ScalarExpansion is a truncated Fourier expansion of a scalar Jacobi form
// of index m, stored on reduced labels.
type ScalarExpansion struct {
	ch     Character
	filter *ScalarFilter
	coeffs map[ScalarIndex]*big.Rat
}

// NewScalarExpansion binds coefficients to the reduced labels of filter.
// Labels missing from coeffs are zero; keys that are not reduced labels
// within the bound are rejected.
func NewScalarExpansion(ch Character, filter *ScalarFilter, coeffs map[ScalarIndex]*big.Rat) (*ScalarExpansion, error) {
	if filter == nil {
		return nil, fourierErrorf("NewScalarExpansion", ErrNilForm)
	}
	filter = &ScalarFilter{bound: filter.bound, m: filter.m, reduced: true}
	cp := make(map[ScalarIndex]*big.Rat, len(coeffs))
	for k, v := range coeffs {
		if !filter.Contains(k) {
			return nil, fourierErrorf("NewScalarExpansion", ErrOutOfPrecision)
		}
		if v == nil {
			continue
		}
		cp[k] = new(big.Rat).Set(v)
	}

	return &ScalarExpansion{ch: ch, filter: filter, coeffs: cp}, nil
}

// Character returns the character the expansion lives in.
func (e *ScalarExpansion) Character() Character { return e.ch }

// Filter returns the (reduced) precision of the expansion.
func (e *ScalarExpansion) Filter() *ScalarFilter { return e.filter }

// Coefficient returns c(ch, idx) for any scalar index, reducing as needed.
func (e *ScalarExpansion) Coefficient(ch Character, idx ScalarIndex) (*big.Rat, error) {
	if ch != e.ch {
		return new(big.Rat), nil
	}
	red, sign := ReduceScalar(e.filter.m, idx)
	if red.N < 0 || 4*e.filter.m*red.N-red.R*red.R < 0 {
		return new(big.Rat), nil
	}
	if red.N >= e.filter.bound {
		return nil, fourierErrorf("Coefficient", ErrOutOfPrecision)
	}
	v := new(big.Rat)
	if c, ok := e.coeffs[red]; ok {
		v.Set(c)
	}
	if ch == Sign && sign < 0 {
		v.Neg(v)
	}

	return v, nil
}

// Truncate returns the expansion restricted to a smaller bound.
func (e *ScalarExpansion) Truncate(bound int64) (*ScalarExpansion, error) {
	f, err := e.filter.Truncate(bound)
	if err != nil {
		return nil, err
	}
	out := make(map[ScalarIndex]*big.Rat)
	for k, v := range e.coeffs {
		if f.Contains(k) {
			out[k] = v
		}
	}

	return NewScalarExpansion(e.ch, f, out)
}
