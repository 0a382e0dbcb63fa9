// SPDX-License-Identifier: MIT

package restriction

import (
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
)

// Vector is a restriction vector (s, r): the functional picking the
// covectors t with ⟨s, t⟩ = r.
type Vector struct {
	S lattice.Vector
	R int64
}

// String renders v as "((-1, 0), 1)".
func (v Vector) String() string {
	return "(" + v.S.String() + ", " + lattice.Vector{v.R}.Key() + ")"
}

// Evaluate counts, for every slot of reps, the covectors t with ⟨s, t⟩ = r.
// It is pure: the result depends only on the multiset of each slot.
func Evaluate(reps [][]lattice.Vector, s lattice.Vector, r int64) ([]int64, error) {
	out := make([]int64, len(reps))
	for j, slot := range reps {
		for _, t := range slot {
			if len(t) != len(s) {
				return nil, restrictionErrorf("Evaluate", ErrDimensionMismatch)
			}
			if lattice.Dot(s, t) == r {
				out[j]++
			}
		}
	}

	return out, nil
}

// LocalMatrix stacks the evaluation vectors of vs into a len(vs)×len(reps)
// matrix.
func LocalMatrix(reps [][]lattice.Vector, vs []Vector) (*matrix.Dense, error) {
	b, err := matrix.NewBuilder(len(vs), len(reps))
	if err != nil {
		return nil, restrictionErrorf("LocalMatrix", err)
	}
	for i, v := range vs {
		ev, err := Evaluate(reps, v.S, v.R)
		if err != nil {
			return nil, restrictionErrorf("LocalMatrix", err)
		}
		for j, x := range ev {
			if x != 0 {
				_ = b.Add(i, j, x)
			}
		}
	}

	return b.Dense(), nil
}

// DistinctVectors returns the distinct s of vs in first-seen order.
func DistinctVectors(vs []Vector) []lattice.Vector {
	seen := make(map[string]struct{}, len(vs))
	out := make([]lattice.Vector, 0, len(vs))
	for _, v := range vs {
		k := v.S.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v.S.Clone())
	}

	return out
}

// candidates lists the values ⟨s, t⟩ over all covectors of reps, in
// first-seen order.
func candidates(reps [][]lattice.Vector, s lattice.Vector) []int64 {
	seen := make(map[int64]struct{})
	var out []int64
	for _, slot := range reps {
		for _, t := range slot {
			r := lattice.Dot(s, t)
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}

	return out
}

func toRat(xs []int64) matrix.Vector {
	return matrix.VectorFromInts(xs...)
}
