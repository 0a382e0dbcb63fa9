// SPDX-License-Identifier: MIT

package restriction

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
)

// RowGroup is the block of rows owned by one restriction vector.
type RowGroup struct {
	S      lattice.Vector
	Index  int64 // scalar index m = L(S)
	Start  int
	Length int
}

// Global is the global restriction matrix and its bookkeeping.
//
// Matrix has one column per tracked label of the precision and one row per
// scalar label of every row group. RowLabels[g] maps a scalar label of group
// g to its row offset inside the group. Coverage holds the columns that
// received at least one contribution.
type Global struct {
	Matrix       *matrix.Dense
	RowGroups    []RowGroup
	RowLabels    []map[fourier.ScalarIndex]int
	ColumnLabels []fourier.Index
	Coverage     *roaring.Bitmap
}

// RowOrder returns the scalar labels of group g in row order.
func (g *Global) RowOrder(group int) []fourier.ScalarIndex {
	out := make([]fourier.ScalarIndex, g.RowGroups[group].Length)
	for l, off := range g.RowLabels[group] {
		out[off] = l
	}

	return out
}

// lookup returns the absolute row of label l in group gi, if present.
func (g *Global) lookup(gi int, l fourier.ScalarIndex) (int, bool) {
	off, ok := g.RowLabels[gi][l]
	if !ok {
		return 0, false
	}

	return g.RowGroups[gi].Start + off, true
}

// GlobalMatrix builds the restriction matrix of prec along every s in vs.
//
// Stage 1 (Groups): each s gets the scalar filter of index L(s) and the
// same bound, reduced unless findRelations is set.
// Stage 2 (Fibres): every raw index of prec is reduced to its tracked
// label, remembering the sign.
// Stage 3 (Accumulate): for every label l, every raw (n, t) over l and every
// group, row (n, ⟨s, t⟩) of the group gains 1 (even weight) or σ (odd
// weight) in column l. Rows absent from a group are skipped.
func GlobalMatrix(prec *fourier.Filter, vs []lattice.Vector, weight int, findRelations bool) (*Global, error) {
	const op = "GlobalMatrix"
	if prec == nil {
		return nil, restrictionErrorf(op, ErrNilForm)
	}
	form := prec.Form()
	odd := fourier.WeightCharacter(weight) == fourier.Sign

	// Stage 1 (Groups)
	g := &Global{
		RowGroups:    make([]RowGroup, len(vs)),
		RowLabels:    make([]map[fourier.ScalarIndex]int, len(vs)),
		ColumnLabels: prec.Labels(),
		Coverage:     roaring.New(),
	}
	rows := 0
	for i, s := range vs {
		m, err := form.Eval(s)
		if err != nil {
			return nil, restrictionErrorf(op, ErrDimensionMismatch)
		}
		if m == 0 {
			return nil, restrictionErrorf(op, ErrZeroVector)
		}
		sf, err := prec.ScalarFilter(m, !findRelations)
		if err != nil {
			return nil, restrictionErrorf(op, err)
		}
		labels := sf.Labels()
		g.RowGroups[i] = RowGroup{S: s.Clone(), Index: m, Start: rows, Length: len(labels)}
		g.RowLabels[i] = make(map[fourier.ScalarIndex]int, len(labels))
		for off, l := range labels {
			g.RowLabels[i][l] = off
		}
		rows += len(labels)
	}

	// Stage 2 (Fibres)
	type raw struct {
		idx  fourier.Index
		sign int
	}
	fibres := make(map[string][]raw, len(g.ColumnLabels))
	for _, l := range g.ColumnLabels {
		fibres[l.Key()] = nil
	}
	for _, idx := range prec.Raw() {
		red, sign, err := prec.Indices().Reduce(idx)
		if err != nil {
			return nil, restrictionErrorf(op, err)
		}
		fibre, ok := fibres[red.Key()]
		if !ok {
			return nil, restrictionErrorf(op, ErrUntrackedLabel)
		}
		fibres[red.Key()] = append(fibre, raw{idx: idx, sign: sign})
	}

	// Stage 3 (Accumulate)
	b, err := matrix.NewBuilder(rows, len(g.ColumnLabels))
	if err != nil {
		return nil, restrictionErrorf(op, err)
	}
	for col, l := range g.ColumnLabels {
		for _, x := range fibres[l.Key()] {
			delta := int64(1)
			if odd {
				delta = int64(x.sign)
			}
			for gi, grp := range g.RowGroups {
				row, ok := g.lookup(gi, fourier.ScalarIndex{N: x.idx.N, R: lattice.Dot(grp.S, x.idx.R)})
				if !ok {
					continue
				}
				_ = b.Add(row, col, delta)
				g.Coverage.Add(uint32(col))
			}
		}
	}
	g.Matrix = b.Dense()

	return g, nil
}
