// SPDX-License-Identifier: MIT

package lattice

import (
	"strconv"
	"strings"
)

// Vector is an integer vector (a lattice vector or a dual covector,
// depending on context).
type Vector []int64

// Clone returns a copy of v.
func (v Vector) Clone() Vector { return append(Vector(nil), v...) }

// Neg returns -v.
func (v Vector) Neg() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = -x
	}

	return out
}

// IsZero reports whether every coordinate is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and w are identical.
func (v Vector) Equal(w Vector) bool { return v.Compare(w) == 0 }

// Compare orders vectors lexicographically; shorter vectors sort first
// when one is a prefix of the other.
func (v Vector) Compare(w Vector) int {
	for i := 0; i < len(v) && i < len(w); i++ {
		switch {
		case v[i] < w[i]:
			return -1
		case v[i] > w[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(w):
		return -1
	case len(v) > len(w):
		return 1
	}

	return 0
}

// Sign returns the sign of the first non-zero coordinate (0 for the zero vector).
func (v Vector) Sign() int {
	for _, x := range v {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
	}

	return 0
}

// Norm2 returns the Euclidean squared length Σ vᵢ².
func (v Vector) Norm2() int64 {
	var s int64
	for _, x := range v {
		s += x * x
	}

	return s
}

// Dot returns the plain dot product Σ vᵢwᵢ.
// It panics if the lengths differ; validated entry points guarantee they do not.
func Dot(v, w Vector) int64 {
	if len(v) != len(w) {
		panic("lattice: Dot of vectors with different lengths")
	}
	var s int64
	for i := range v {
		s += v[i] * w[i]
	}

	return s
}

// Key returns a compact string usable as a map key, e.g. "1,-2".
func (v Vector) Key() string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(x, 10))
	}

	return sb.String()
}

// String renders v as "(1, -2)".
func (v Vector) String() string {
	return "(" + strings.ReplaceAll(v.Key(), ",", ", ") + ")"
}

// ParseVector parses the Key form ("1,-2") back into a Vector.
func ParseVector(s string) (Vector, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	if s == "" {
		return Vector{}, nil
	}
	parts := strings.Split(s, ",")
	v := make(Vector, len(parts))
	for i, p := range parts {
		x, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, latticeErrorf("ParseVector", err)
		}
		v[i] = x
	}

	return v, nil
}
