// SPDX-License-Identifier: MIT

package restriction

import (
	"math/big"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
)

// Relations holds linear relations among the tracked coefficients: every
// admissible coefficient vector x satisfies Matrix·x = 0.
type Relations struct {
	Matrix       *matrix.Dense
	ColumnLabels []fourier.Index
}

// RelationMatrix derives reduction relations from restrictions along vs.
//
// The global matrix is built over unreduced scalar labels. For every label
// l of a group that is not reduced, with reduced label l' and sign σ, the
// restriction must satisfy c(l') = ε·c(l) where ε = 1 for even weight and σ
// for odd weight, giving the row row(l') - ε·row(l). Zero rows are dropped.
//
// Even weight yields no rows. At odd weight a fold that lands on a
// self-negative class forces its coefficients to vanish.
func RelationMatrix(prec *fourier.Filter, vs []lattice.Vector, weight int) (*Relations, error) {
	const op = "RelationMatrix"
	g, err := GlobalMatrix(prec, vs, weight, true)
	if err != nil {
		return nil, restrictionErrorf(op, err)
	}
	rows, err := relationRows(g, fourier.WeightCharacter(weight) == fourier.Sign)
	if err != nil {
		return nil, restrictionErrorf(op, err)
	}
	m, err := matrix.FromRows(len(g.ColumnLabels), rows)
	if err != nil {
		return nil, restrictionErrorf(op, err)
	}

	return &Relations{Matrix: m, ColumnLabels: g.ColumnLabels}, nil
}

// relationRows emits row(l') - ε·row(l) for every unreduced row label of g.
func relationRows(g *Global, odd bool) ([]matrix.Vector, error) {
	var out []matrix.Vector
	for gi, grp := range g.RowGroups {
		for _, l := range g.RowOrder(gi) {
			red, sign := fourier.ReduceScalar(grp.Index, l)
			if red == l {
				continue
			}
			redRow, ok := g.lookup(gi, red)
			if !ok {
				return nil, ErrUntrackedLabel
			}
			row, _ := g.lookup(gi, l)

			a, err := g.Matrix.Row(redRow)
			if err != nil {
				return nil, err
			}
			c, err := g.Matrix.Row(row)
			if err != nil {
				return nil, err
			}
			eps := int64(1)
			if odd {
				eps = int64(sign)
			}
			rel, err := a.Add(c.Scale(big.NewRat(-eps, 1)))
			if err != nil {
				return nil, err
			}
			if !rel.IsZero() {
				out = append(out, rel)
			}
		}
	}

	return out, nil
}
