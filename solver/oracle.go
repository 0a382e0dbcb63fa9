// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
)

// DimensionOracle knows dim J_{k,L} a priori.
type DimensionOracle interface {
	Dimension(k int, form *lattice.QuadraticForm) (int, error)
}

// DimensionFunc adapts a function to DimensionOracle.
type DimensionFunc func(k int, form *lattice.QuadraticForm) (int, error)

// Dimension calls f.
func (f DimensionFunc) Dimension(k int, form *lattice.QuadraticForm) (int, error) {
	return f(k, form)
}

// ScalarForms provides bases of scalar Jacobi forms of weight k and index m,
// truncated to filter.
type ScalarForms interface {
	Basis(k int, m int64, filter *fourier.ScalarFilter) ([]*fourier.ScalarExpansion, error)
}

// ScalarFormsFunc adapts a function to ScalarForms.
type ScalarFormsFunc func(k int, m int64, filter *fourier.ScalarFilter) ([]*fourier.ScalarExpansion, error)

// Basis calls f.
func (f ScalarFormsFunc) Basis(k int, m int64, filter *fourier.ScalarFilter) ([]*fourier.ScalarExpansion, error) {
	return f(k, m, filter)
}

// chooseCharacter picks the scalar character for weight k: the first
// available character if it takes the value (-1)^k at -1, else the second.
func chooseCharacter(k int, chars []fourier.Character) fourier.Character {
	want := int64(1)
	if k%2 != 0 {
		want = -1
	}
	if chars[0].Eval(-1) == want {
		return chars[0]
	}

	return chars[1]
}
