// SPDX-License-Identifier: MIT

package solver

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/jacobi/fourier"
)

// Form is one basis element of J_{k,L}, evaluated lazily: the basis is
// computed (through the cache) on the first coefficient request.
type Form struct {
	solver *Solver
	prec   *fourier.Filter
	weight int
	index  int
	ch     fourier.Character

	once sync.Once
	elem *fourier.Expansion
	err  error
}

// Form returns the i-th basis element of J_{k,L} at prec without computing it.
func (s *Solver) Form(prec *fourier.Filter, k, i int) (*Form, error) {
	if prec == nil {
		return nil, solverErrorf("Form", ErrNilCollaborator)
	}
	if i < 0 {
		return nil, solverErrorf("Form", ErrBasisIndex)
	}

	return &Form{solver: s, prec: prec, weight: k, index: i, ch: fourier.WeightCharacter(k)}, nil
}

// Character returns the character expected for the weight.
func (f *Form) Character() fourier.Character { return f.ch }

// Precision returns the filter the element is computed at.
func (f *Form) Precision() *fourier.Filter { return f.prec }

// Expansion computes (once) and returns the underlying expansion.
func (f *Form) Expansion() (*fourier.Expansion, error) {
	f.once.Do(func() {
		basis, err := f.solver.Expansions(f.prec, f.weight)
		switch {
		case err != nil:
			f.err = err
		case f.index >= len(basis):
			f.err = solverErrorf("Form", ErrBasisIndex)
		default:
			f.elem = basis[f.index]
		}
	})

	return f.elem, f.err
}

// Coefficient returns c(ch, idx). A character other than the weight's
// yields zero without computing anything.
func (f *Form) Coefficient(ch fourier.Character, idx fourier.Index) (*big.Rat, error) {
	if ch != f.ch {
		return new(big.Rat), nil
	}
	e, err := f.Expansion()
	if err != nil {
		return nil, err
	}

	return e.Coefficient(ch, idx)
}
