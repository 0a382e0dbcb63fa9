// SPDX-License-Identifier: MIT

package lattice

import (
	"math/big"
	"sort"
)

// Enumerate returns every integer vector x with xᵀHx ≤ c, sorted
// lexicographically ascending. H must be symmetric positive definite.
// A negative c yields no vectors.
//
// The algorithm is Fincke-Pohst: H is decomposed exactly as
//
//	xᵀHx = Σᵢ qᵢᵢ (xᵢ + Σ_{j>i} qᵢⱼ xⱼ)²
//
// and coordinates are fixed from the last to the first, each scanned
// outward from the centre of its admissible interval.
func Enumerate(h [][]int64, c int64) ([]Vector, error) {
	const op = "Enumerate"
	n := len(h)
	if n == 0 {
		return nil, latticeErrorf(op, ErrEmptyGram)
	}
	for _, row := range h {
		if len(row) != n {
			return nil, latticeErrorf(op, ErrNonSquare)
		}
	}
	dec, err := decompose(h)
	if err != nil {
		return nil, latticeErrorf(op, err)
	}

	return enumerate(dec, c), nil
}

// ShortVectors returns the vectors x with L(x) < bound grouped by norm:
// result[k] holds the vectors of norm k in lexicographic order.
//
// With upToSign each ± pair is represented once, by the member whose first
// non-zero coordinate is negative; the zero vector stays in result[0].
// A non-positive bound yields an empty result.
func (q *QuadraticForm) ShortVectors(bound int64, upToSign bool) [][]Vector {
	if bound <= 0 {
		return [][]Vector{}
	}
	groups := make([][]Vector, bound)
	for i := range groups {
		groups[i] = []Vector{}
	}
	for _, x := range enumerate(q.dec, 2*(bound-1)) {
		if upToSign && x.Sign() > 0 {
			continue
		}
		norm := quad(q.gram, x) / 2
		groups[norm] = append(groups[norm], x)
	}

	return groups
}

// decompose computes the Fincke-Pohst coefficients of h in place of a
// rational copy and fails if any pivot qᵢᵢ is not positive.
func decompose(h [][]int64) ([][]*big.Rat, error) {
	n := len(h)
	q := make([][]*big.Rat, n)
	for i := range q {
		q[i] = make([]*big.Rat, n)
		for j := range q[i] {
			q[i][j] = big.NewRat(h[i][j], 1)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if h[i][j] != h[j][i] {
				return nil, ErrAsymmetric
			}
		}
	}

	tmp := new(big.Rat)
	for i := 0; i < n; i++ {
		if q[i][i].Sign() <= 0 {
			return nil, ErrNotPositiveDefinite
		}
		for j := i + 1; j < n; j++ {
			q[j][i].Set(q[i][j])
			q[i][j].Quo(q[i][j], q[i][i])
		}
		for k := i + 1; k < n; k++ {
			for l := k; l < n; l++ {
				q[k][l].Sub(q[k][l], tmp.Mul(q[k][i], q[i][l]))
			}
		}
	}

	return q, nil
}

// enumerate lists all x with xᵀHx ≤ c given the decomposition of H.
func enumerate(q [][]*big.Rat, c int64) []Vector {
	out := []Vector{}
	if c < 0 {
		return out
	}
	n := len(q)
	x := make(Vector, n)
	walk(q, n-1, x, big.NewRat(c, 1), &out)
	sort.Slice(out, func(a, b int) bool { return out[a].Compare(out[b]) < 0 })

	return out
}

// walk fixes coordinate i given x[i+1:], with budget remaining.
func walk(q [][]*big.Rat, i int, x Vector, remaining *big.Rat, out *[]Vector) {
	// centre = -Σ_{j>i} qᵢⱼ xⱼ
	centre := new(big.Rat)
	tmp := new(big.Rat)
	for j := i + 1; j < len(x); j++ {
		if x[j] != 0 {
			centre.Sub(centre, tmp.Mul(q[i][j], big.NewRat(x[j], 1)))
		}
	}
	start := new(big.Int).Div(centre.Num(), centre.Denom()).Int64() // floor

	// try reports whether x[i] = v fits, and recurses when it does
	try := func(v int64) bool {
		d := new(big.Rat).Sub(big.NewRat(v, 1), centre)
		cost := d.Mul(d, d)
		cost.Mul(cost, q[i][i])
		if cost.Cmp(remaining) > 0 {
			return false
		}
		x[i] = v
		rest := new(big.Rat).Sub(remaining, cost)
		if i == 0 {
			*out = append(*out, x.Clone())
		} else {
			walk(q, i-1, x, rest, out)
		}

		return true
	}

	// the admissible set is an interval around centre: the cost grows
	// monotonically above floor(centre)+1 and below floor(centre)
	for v := start + 1; try(v); v++ {
	}
	for v := start; try(v); v-- {
	}
	x[i] = 0
}
