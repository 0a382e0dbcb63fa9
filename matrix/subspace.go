// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Subspace is a linear subspace of Q^n.
//
// The basis is kept in reduced row echelon form, which makes the
// representation canonical: two subspaces are equal iff their bases are.
type Subspace struct {
	n      int
	basis  *Dense // RREF, no zero rows
	pivots []int
}

// Span returns the span of vectors inside Q^n.
// Every vector must have length n (ErrDimensionMismatch otherwise).
func Span(n int, vectors ...Vector) (*Subspace, error) {
	if n < 0 {
		return nil, matrixErrorf(opSpan, ErrBadShape)
	}
	for _, v := range vectors {
		if len(v) != n {
			return nil, matrixErrorf(opSpan, ErrDimensionMismatch)
		}
	}

	return spanOf(n, vectors), nil
}

// ZeroSpace returns the zero subspace of Q^n.
func ZeroSpace(n int) *Subspace {
	return spanOf(n, nil)
}

func spanOf(n int, vectors []Vector) *Subspace {
	m, _ := FromRows(n, vectors)

	return RowSpace(m)
}

// Ambient returns n for a subspace of Q^n.
func (s *Subspace) Ambient() int { return s.n }

// Dim returns the dimension of s.
func (s *Subspace) Dim() int { return len(s.pivots) }

// Basis returns the echelon basis of s (copies).
func (s *Subspace) Basis() []Vector { return s.basis.RowVectors() }

// Matrix returns the echelon basis as a Dim×Ambient matrix.
func (s *Subspace) Matrix() *Dense {
	m, _ := Stack(s.basis)

	return m
}

// Pivots returns the pivot column of each basis vector.
func (s *Subspace) Pivots() []int { return append([]int(nil), s.pivots...) }

// Contains reports whether v lies in s.
//
// v is reduced against the echelon basis: subtract v[p]·row for each pivot
// p; v lies in s iff the remainder is zero.
func (s *Subspace) Contains(v Vector) (bool, error) {
	if len(v) != s.n {
		return false, matrixErrorf(opContains, ErrDimensionMismatch)
	}
	w := v.Clone()
	tmp := new(big.Rat)
	for i, p := range s.pivots {
		if w[p].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Set(w[p])
		for j := 0; j < s.n; j++ {
			w[j].Sub(w[j], tmp.Mul(f, s.basis.data[i*s.n+j]))
		}
	}

	return w.IsZero(), nil
}

// Add returns s + t.
func (s *Subspace) Add(t *Subspace) (*Subspace, error) {
	if s == nil || t == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}
	if s.n != t.n {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	m, err := Stack(s.basis, t.basis)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return RowSpace(m), nil
}

// Annihilator returns {x : ⟨x, v⟩ = 0 for all v ∈ s}.
func (s *Subspace) Annihilator() *Subspace {
	return RightKernel(s.basis)
}

// Intersect returns s ∩ t, computed as the annihilator of ann(s) + ann(t).
func (s *Subspace) Intersect(t *Subspace) (*Subspace, error) {
	if s == nil || t == nil {
		return nil, matrixErrorf(opIntersect, ErrNilMatrix)
	}
	if s.n != t.n {
		return nil, matrixErrorf(opIntersect, ErrDimensionMismatch)
	}
	ann, err := Stack(s.Annihilator().basis, t.Annihilator().basis)
	if err != nil {
		return nil, matrixErrorf(opIntersect, err)
	}

	return RightKernel(ann), nil
}

// Equal reports whether s and t are the same subspace of the same ambient space.
func (s *Subspace) Equal(t *Subspace) bool {
	if s == nil || t == nil {
		return s == t
	}

	return s.n == t.n && s.basis.Equal(t.basis)
}
