// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Builder accumulates entries of a rows×cols matrix and then freezes into
// an immutable Dense. It is the natural shape for matrices assembled from
// many small integer contributions (restriction and relation matrices).
//
// A Builder is not safe for concurrent use.
type Builder struct {
	r, c   int
	data   []*big.Rat
	frozen bool
}

// NewBuilder returns a Builder for a rows×cols zero matrix.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opBuilder, ErrBadShape)
	}
	data := make([]*big.Rat, rows*cols)
	for k := range data {
		data[k] = new(big.Rat)
	}

	return &Builder{r: rows, c: cols, data: data}, nil
}

// Rows returns the row count of the matrix under construction.
func (b *Builder) Rows() int { return b.r }

// Cols returns the column count of the matrix under construction.
func (b *Builder) Cols() int { return b.c }

// Add increments entry (i, j) by delta.
func (b *Builder) Add(i, j int, delta int64) error {
	return b.AddRat(i, j, big.NewRat(delta, 1))
}

// AddRat increments entry (i, j) by delta.
func (b *Builder) AddRat(i, j int, delta *big.Rat) error {
	k, err := b.offset(i, j)
	if err != nil {
		return err
	}
	if delta == nil {
		return matrixErrorAt(opBuilder, i, j, ErrNilEntry)
	}
	b.data[k].Add(b.data[k], delta)

	return nil
}

// Set overwrites entry (i, j).
func (b *Builder) Set(i, j int, v *big.Rat) error {
	k, err := b.offset(i, j)
	if err != nil {
		return err
	}
	if v == nil {
		return matrixErrorAt(opBuilder, i, j, ErrNilEntry)
	}
	b.data[k].Set(v)

	return nil
}

// SetRow overwrites row i with v.
func (b *Builder) SetRow(i int, v Vector) error {
	if len(v) != b.c {
		return matrixErrorf(opBuilder, ErrDimensionMismatch)
	}
	for j, x := range v {
		if err := b.Set(i, j, ratCopy(x)); err != nil {
			return err
		}
	}

	return nil
}

// Dense freezes the builder and returns the finished matrix.
// Subsequent mutations return ErrFrozen; repeated calls return equal matrices.
func (b *Builder) Dense() *Dense {
	b.frozen = true
	data := make([]*big.Rat, len(b.data))
	for k, x := range b.data {
		data[k] = new(big.Rat).Set(x)
	}

	return &Dense{r: b.r, c: b.c, data: data}
}

func (b *Builder) offset(i, j int) (int, error) {
	if b.frozen {
		return 0, matrixErrorf(opBuilder, ErrFrozen)
	}
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return 0, matrixErrorAt(opBuilder, i, j, ErrOutOfRange)
	}

	return i*b.c + j, nil
}
