// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"
	"strings"
)

// Vector is a finite sequence of rationals.
// Helpers never alias the *big.Rat values of their inputs.
type Vector []*big.Rat

// NewVector returns the zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// VectorFromInts builds a Vector from integer entries.
func VectorFromInts(xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = big.NewRat(x, 1)
	}

	return v
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = ratCopy(x)
	}

	return out
}

// IsZero reports whether every entry is zero (nil entries count as zero).
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != nil && x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and w have the same length and entries.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if ratCopy(v[i]).Cmp(ratCopy(w[i])) != 0 {
			return false
		}
	}

	return true
}

// Scale returns c·v.
func (v Vector) Scale(c *big.Rat) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Mul(ratCopy(x), c)
	}

	return out
}

// Add returns v+w, or ErrDimensionMismatch on length mismatch.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Add(ratCopy(v[i]), ratCopy(w[i]))
	}

	return out, nil
}

// Dot returns the standard inner product of v and w.
func Dot(v, w Vector) (*big.Rat, error) {
	if len(v) != len(w) {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	sum, tmp := new(big.Rat), new(big.Rat)
	for i := range v {
		if v[i] == nil || w[i] == nil {
			continue
		}
		sum.Add(sum, tmp.Mul(v[i], w[i]))
	}

	return sum, nil
}

// String renders v as "(a, b, c)" using RatString for each entry.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ratCopy(x).RatString())
	}
	sb.WriteByte(')')

	return sb.String()
}

// ratCopy returns a fresh copy of x, treating nil as zero.
func ratCopy(x *big.Rat) *big.Rat {
	if x == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(x)
}
