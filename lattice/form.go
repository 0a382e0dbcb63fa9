// SPDX-License-Identifier: MIT

package lattice

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/jacobi/matrix"
)

// QuadraticForm is a validated even positive definite lattice.
// It is immutable and safe for concurrent use.
type QuadraticForm struct {
	n    int
	gram [][]int64
	det  int64
	adj  [][]int64
	dec  [][]*big.Rat // Fincke-Pohst decomposition of gram
}

// New validates gram and returns the lattice it describes.
//
// Stage 1 (Shape): non-empty and square.
// Stage 2 (Symmetry): G = Gᵀ.
// Stage 3 (Parity): every diagonal entry is even, so L is integral.
// Stage 4 (Definiteness): all pivots of the LDLᵀ decomposition are positive.
// Stage 5 (Adjugate): adj(G) = det(G)·G⁻¹, which is integral.
func New(gram [][]int64) (*QuadraticForm, error) {
	const op = "New"
	n := len(gram)
	if n == 0 {
		return nil, latticeErrorf(op, ErrEmptyGram)
	}
	g := make([][]int64, n)
	for i, row := range gram {
		if len(row) != n {
			return nil, latticeErrorf(op, ErrNonSquare)
		}
		g[i] = append([]int64(nil), row...)
	}
	for i := 0; i < n; i++ {
		if g[i][i]%2 != 0 {
			return nil, latticeErrorf(op, ErrOddDiagonal)
		}
		for j := i + 1; j < n; j++ {
			if g[i][j] != g[j][i] {
				return nil, latticeErrorf(op, ErrAsymmetric)
			}
		}
	}

	dec, err := decompose(g)
	if err != nil {
		return nil, latticeErrorf(op, err)
	}

	gm, err := matrix.FromInts(g)
	if err != nil {
		return nil, latticeErrorf(op, err)
	}
	det, err := matrix.Determinant(gm)
	if err != nil {
		return nil, latticeErrorf(op, err)
	}
	inv, err := matrix.Inverse(gm)
	if err != nil {
		return nil, latticeErrorf(op, err)
	}
	adjm, err := matrix.Mul(scalar(n, det), inv)
	if err != nil {
		return nil, latticeErrorf(op, err)
	}
	adj, err := adjm.IntRows()
	if err != nil {
		return nil, latticeErrorf(op, err)
	}

	return &QuadraticForm{
		n:    n,
		gram: g,
		det:  det.Num().Int64(),
		adj:  adj,
		dec:  dec,
	}, nil
}

// scalar returns c·I_n.
func scalar(n int, c *big.Rat) *matrix.Dense {
	b, _ := matrix.NewBuilder(n, n)
	for i := 0; i < n; i++ {
		_ = b.Set(i, i, c)
	}

	return b.Dense()
}

// Rank returns the dimension N of the lattice.
func (q *QuadraticForm) Rank() int { return q.n }

// Det returns det(G).
func (q *QuadraticForm) Det() int64 { return q.det }

// Gram returns a copy of G.
func (q *QuadraticForm) Gram() [][]int64 { return copy2D(q.gram) }

// Adjugate returns a copy of adj(G).
func (q *QuadraticForm) Adjugate() [][]int64 { return copy2D(q.adj) }

// Eval returns L(x) = xᵀGx/2.
func (q *QuadraticForm) Eval(x Vector) (int64, error) {
	if len(x) != q.n {
		return 0, latticeErrorf("Eval", ErrDimensionMismatch)
	}

	return quad(q.gram, x) / 2, nil
}

// Bilinear returns xᵀGy, so that L(x+y) = L(x) + L(y) + Bilinear(x, y).
func (q *QuadraticForm) Bilinear(x, y Vector) (int64, error) {
	if len(x) != q.n || len(y) != q.n {
		return 0, latticeErrorf("Bilinear", ErrDimensionMismatch)
	}
	var s int64
	for i := range x {
		for j := range y {
			s += x[i] * q.gram[i][j] * y[j]
		}
	}

	return s, nil
}

// DualNorm returns tᵀ adj(G) t = det(G)·tᵀG⁻¹t for a covector t.
func (q *QuadraticForm) DualNorm(t Vector) (int64, error) {
	if len(t) != q.n {
		return 0, latticeErrorf("DualNorm", ErrDimensionMismatch)
	}

	return quad(q.adj, t), nil
}

// Image returns G·x.
func (q *QuadraticForm) Image(x Vector) (Vector, error) {
	if len(x) != q.n {
		return nil, latticeErrorf("Image", ErrDimensionMismatch)
	}
	out := make(Vector, q.n)
	for i := range out {
		out[i] = Dot(q.gram[i], x)
	}

	return out, nil
}

// Key returns a canonical identity string of the Gram matrix, e.g. "2,1;1,2".
// Two forms with equal keys are the same lattice in the same basis.
func (q *QuadraticForm) Key() string {
	rows := make([]string, q.n)
	for i, row := range q.gram {
		rows[i] = Vector(row).Key()
	}

	return strings.Join(rows, ";")
}

// String renders the form as "QuadraticForm[2,1;1,2]".
func (q *QuadraticForm) String() string {
	return "QuadraticForm[" + q.Key() + "] det=" + strconv.FormatInt(q.det, 10)
}

func quad(h [][]int64, x Vector) int64 {
	var s int64
	for i := range x {
		if x[i] == 0 {
			continue
		}
		s += x[i] * Dot(h[i], x)
	}

	return s
}

func copy2D(a [][]int64) [][]int64 {
	out := make([][]int64, len(a))
	for i, row := range a {
		out[i] = append([]int64(nil), row...)
	}

	return out
}
