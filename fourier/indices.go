// SPDX-License-Identifier: MIT

package fourier

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/jacobi/lattice"
)

// Indices holds the class structure of Zᴺ/GZᴺ for one lattice: the
// representative covectors of every class (one slot per class, the R of
// the restriction method) and the canonical representative of every
// ±class used to label coefficients.
//
// Indices is immutable after construction and safe for concurrent use.
type Indices struct {
	form *lattice.QuadraticForm
	det  int64
	adj  [][]int64

	classes   []class
	classOf   map[string]int
	reduced   []reducedClass
	reducedOf []int // class position -> reduced position
}

// class is one coset of Zᴺ/GZᴺ together with its shortest members.
type class struct {
	residue string
	members []lattice.Vector // minimal dual norm, then minimal Euclidean norm
	dual    int64
}

// reducedClass is one ±class and its canonical representative.
type reducedClass struct {
	rep   lattice.Vector
	dual  int64
	class int // class position of rep itself
}

// NewIndices computes the class structure of form.
//
// Stage 1 (Collect): enumerate covectors by increasing dual norm, doubling
// the radius until all det(G) classes are seen.
// Stage 2 (Slots): candidates are visited by (dual norm, Euclidean norm,
// reverse lexicographic order); the first visit opens a class, later
// visits at the same (dual, Euclidean) level join it.
// Stage 3 (Canonical): for every ±class, the representative is the
// lexicographically smallest slot member of either sign class whose first
// non-zero coordinate is positive (the zero covector for the trivial class).
func NewIndices(form *lattice.QuadraticForm) (*Indices, error) {
	if form == nil {
		return nil, fourierErrorf("NewIndices", ErrNilForm)
	}
	ix := &Indices{
		form: form,
		det:  form.Det(),
		adj:  form.Adjugate(),
	}

	for radius := 4 * ix.det; ; radius *= 2 {
		cands, err := lattice.Enumerate(ix.adj, radius)
		if err != nil {
			return nil, fourierErrorf("NewIndices", err)
		}
		ix.collect(cands)
		if int64(len(ix.classes)) == ix.det {
			break
		}
	}
	ix.canonicalise()

	return ix, nil
}

func (ix *Indices) collect(cands []lattice.Vector) {
	type cand struct {
		v            lattice.Vector
		dual, euclid int64
	}
	cs := make([]cand, len(cands))
	for i, v := range cands {
		cs[i] = cand{v: v, dual: ix.dualNorm(v), euclid: v.Norm2()}
	}
	sort.SliceStable(cs, func(a, b int) bool {
		if cs[a].dual != cs[b].dual {
			return cs[a].dual < cs[b].dual
		}
		if cs[a].euclid != cs[b].euclid {
			return cs[a].euclid < cs[b].euclid
		}

		return cs[a].v.Compare(cs[b].v) > 0
	})

	ix.classes = ix.classes[:0]
	ix.classOf = make(map[string]int)
	euclidOf := make([]int64, 0)
	for _, c := range cs {
		key := ix.residue(c.v)
		pos, seen := ix.classOf[key]
		if !seen {
			ix.classOf[key] = len(ix.classes)
			ix.classes = append(ix.classes, class{residue: key, members: []lattice.Vector{c.v}, dual: c.dual})
			euclidOf = append(euclidOf, c.euclid)
			continue
		}
		if ix.classes[pos].dual == c.dual && euclidOf[pos] == c.euclid {
			ix.classes[pos].members = append(ix.classes[pos].members, c.v)
		}
	}
}

func (ix *Indices) canonicalise() {
	ix.reduced = ix.reduced[:0]
	ix.reducedOf = make([]int, len(ix.classes))
	for i := range ix.reducedOf {
		ix.reducedOf[i] = -1
	}
	for pos, c := range ix.classes {
		if ix.reducedOf[pos] >= 0 {
			continue
		}
		neg := ix.classOf[ix.negResidue(c.residue)]

		var rep lattice.Vector
		pool := append(append([]lattice.Vector(nil), c.members...), ix.classes[neg].members...)
		for _, v := range pool {
			if v.Sign() < 0 {
				continue
			}
			if rep == nil || v.Compare(rep) < 0 {
				rep = v
			}
		}
		r := len(ix.reduced)
		ix.reduced = append(ix.reduced, reducedClass{
			rep:   rep.Clone(),
			dual:  c.dual,
			class: ix.classOf[ix.residue(rep)],
		})
		ix.reducedOf[pos], ix.reducedOf[neg] = r, r
	}
}

// residue returns the class key adj(G)·t mod det(G).
func (ix *Indices) residue(t lattice.Vector) string {
	var sb strings.Builder
	for i, row := range ix.adj {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(floorMod(lattice.Dot(row, t), ix.det), 10))
	}

	return sb.String()
}

func (ix *Indices) negResidue(key string) string {
	parts := strings.Split(key, ",")
	for i, p := range parts {
		x, _ := strconv.ParseInt(p, 10, 64)
		parts[i] = strconv.FormatInt(floorMod(-x, ix.det), 10)
	}

	return strings.Join(parts, ",")
}

func (ix *Indices) dualNorm(t lattice.Vector) int64 {
	var s int64
	for i, row := range ix.adj {
		s += t[i] * lattice.Dot(row, t)
	}

	return s
}

// Form returns the lattice these indices belong to.
func (ix *Indices) Form() *lattice.QuadraticForm { return ix.form }

// ClassCount returns |Zᴺ/GZᴺ| = det(G).
func (ix *Indices) ClassCount() int { return len(ix.classes) }

// Representatives returns one slot per class of Zᴺ/GZᴺ: the members of
// minimal dual norm (ties broken by minimal Euclidean norm). Slots follow
// discovery order, so the trivial class comes first.
func (ix *Indices) Representatives() [][]lattice.Vector {
	out := make([][]lattice.Vector, len(ix.classes))
	for i, c := range ix.classes {
		out[i] = make([]lattice.Vector, len(c.members))
		for j, v := range c.members {
			out[i][j] = v.Clone()
		}
	}

	return out
}

// ReducedRepresentatives returns the canonical covector of every ±class.
func (ix *Indices) ReducedRepresentatives() []lattice.Vector {
	out := make([]lattice.Vector, len(ix.reduced))
	for i, r := range ix.reduced {
		out[i] = r.rep.Clone()
	}

	return out
}

// Discriminant returns D(n, t) = 2·det·n - A(t). Reduction preserves it.
func (ix *Indices) Discriminant(idx Index) (int64, error) {
	if len(idx.R) != len(ix.adj) {
		return 0, fourierErrorf("Discriminant", ErrDimensionMismatch)
	}

	return 2*ix.det*idx.N - ix.dualNorm(idx.R), nil
}

// Admissible reports whether A(t) ≤ 2·det·n, i.e. idx can carry a
// non-zero coefficient.
func (ix *Indices) Admissible(idx Index) bool {
	d, err := ix.Discriminant(idx)

	return err == nil && d >= 0
}

// Reduce maps idx to its tracked label and the reduction sign.
//
//	t  ↦ t', the canonical representative of the ±class of t
//	n  ↦ n - (A(t) - A(t'))/(2·det)
//	σ  = +1 if t ≡ t' mod GZᴺ, else -1
//
// The level shift is exact, so D(n, t) is preserved and Reduce agrees with
// ReduceScalar on G = (2m).
func (ix *Indices) Reduce(idx Index) (Index, int, error) {
	if len(idx.R) != len(ix.adj) {
		return Index{}, 0, fourierErrorf("Reduce", ErrDimensionMismatch)
	}
	pos := ix.classOf[ix.residue(idx.R)]
	rc := ix.reduced[ix.reducedOf[pos]]

	sign := -1
	if pos == rc.class {
		sign = 1
	}
	shift := (ix.dualNorm(idx.R) - rc.dual) / (2 * ix.det)

	return Index{N: idx.N - shift, R: rc.rep.Clone()}, sign, nil
}
