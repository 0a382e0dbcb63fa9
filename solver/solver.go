// SPDX-License-Identifier: MIT

package solver

import (
	"time"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/internal/logging"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
	"github.com/katalvlaran/jacobi/restriction"
)

// Solver reconstructs Jacobi forms of lattice index by restriction.
// It holds no per-request state and is safe for concurrent use when its
// collaborators are.
type Solver struct {
	dim    DimensionOracle
	scalar ScalarForms
	opts   Options
	log    *logging.Logger
}

// New returns a Solver backed by the given collaborators.
func New(dim DimensionOracle, scalar ScalarForms, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cache != nil && o.Metrics != nil {
		o.Cache.SetMetrics(o.Metrics)
	}

	return &Solver{dim: dim, scalar: scalar, opts: o, log: logging.OrNoop(o.Logger)}
}

// Cache returns the solver's memo table (nil when memoisation is off).
func (s *Solver) Cache() *Cache { return s.opts.Cache }

// Expansions returns a basis of J_{k,L} at prec, through the cache.
func (s *Solver) Expansions(prec *fourier.Filter, k int) ([]*fourier.Expansion, error) {
	if prec == nil {
		return nil, solverErrorf("Expansions", ErrNilCollaborator)
	}
	if s.opts.Cache == nil {
		return s.Solve(prec, k)
	}

	return s.opts.Cache.GetOrCompute(k, prec, func(p *fourier.Filter) ([]*fourier.Expansion, error) {
		return s.Solve(p, k)
	})
}

// SolveGram wraps an even Gram matrix into a lattice and a precision of the
// given bound, then calls Expansions.
func (s *Solver) SolveGram(gram [][]int64, bound int64, k int) ([]*fourier.Expansion, error) {
	prec, err := NewPrecision(gram, bound)
	if err != nil {
		return nil, solverErrorf("SolveGram", err)
	}

	return s.Expansions(prec, k)
}

// NewPrecision builds the filter of the given bound over the lattice of gram.
func NewPrecision(gram [][]int64, bound int64) (*fourier.Filter, error) {
	form, err := lattice.New(gram)
	if err != nil {
		return nil, err
	}
	ix, err := fourier.NewIndices(form)
	if err != nil {
		return nil, err
	}

	return fourier.NewFilter(ix, bound)
}

// Solve reconstructs a basis of J_{k,L} at prec without consulting the cache.
//
// Stage 1 (Dimension): d from the oracle; d = 0 returns an empty basis.
// Stage 2 (Vectors): a separating restriction set S for the classes of L.
// Stage 3 (Restriction): the global matrix M of prec along S.
// Stage 4 (Relations): reduction relations along all vectors up to max L(s).
// Stage 5 (Embedding): scalar bases of index L(s) placed in s's row group.
// Stage 6 (Solve): V = rightkernel([P·M ; Rel]) with P the annihilator of
// the embedded span, i.e. M·x ∈ span and Rel·x = 0.
// Stage 7 (Check): dim V must equal d.
// Stage 8 (Expand): one expansion per echelon basis vector of V.
func (s *Solver) Solve(prec *fourier.Filter, k int) (basis []*fourier.Expansion, err error) {
	const op = "Solve"
	if prec == nil || s.dim == nil || s.scalar == nil {
		return nil, solverErrorf(op, ErrNilCollaborator)
	}
	form := prec.Form()
	log := s.log.WithLattice(form.Key()).With(logging.KeyWeight, k, logging.KeyBound, prec.Bound())

	start := time.Now()
	outcome, vectors := OutcomeError, 0
	defer func() {
		s.opts.Metrics.solved(outcome, time.Since(start).Seconds(), vectors)
	}()

	// Stage 1 (Dimension)
	d, err := s.dim.Dimension(k, form)
	if err != nil {
		return nil, solverErrorf(op, err)
	}
	if d < 0 {
		return nil, solverErrorf(op, ErrNegativeDimension)
	}
	if d == 0 {
		outcome = OutcomeDegenerate
		log.Debug("oracle dimension is zero")
		return []*fourier.Expansion{}, nil
	}

	// Stage 2 (Vectors)
	reps := prec.Indices().Representatives()
	log.Debug("representative classes", "classes", len(reps))
	selOpts := append([]restriction.Option{restriction.WithLogger(log)}, s.opts.Selector...)
	extended, err := restriction.FindCompleteSet(form, reps, s.opts.ExtraVectors, selOpts...)
	if err != nil {
		return nil, solverErrorf(op, err)
	}
	vs := restriction.DistinctVectors(extended)
	vectors = len(vs)
	log.Debug("restriction vectors", logging.KeyVectors, len(extended), "distinct", len(vs))

	// Stage 3 (Restriction)
	global, err := restriction.GlobalMatrix(prec, vs, k, false)
	if err != nil {
		return nil, solverErrorf(op, err)
	}

	// Stage 4 (Relations)
	rel, err := restriction.RelationMatrix(prec, relationVectors(form, global), k)
	if err != nil {
		return nil, solverErrorf(op, err)
	}
	if !sameLabels(global.ColumnLabels, rel.ColumnLabels) {
		return nil, solverErrorf(op, ErrConsistencyMismatch)
	}
	log.Debug("matrices built",
		logging.KeyRows, global.Matrix.Rows(), logging.KeyCols, global.Matrix.Cols(), "relations", rel.Matrix.Rows())

	// Stage 5 (Embedding)
	ch := chooseCharacter(k, fourier.Characters())
	embedded, err := s.embed(global, k, ch, prec)
	if err != nil {
		return nil, solverErrorf(op, err)
	}

	// Stage 6 (Solve)
	space, err := solutionSpace(global.Matrix, embedded, rel.Matrix)
	if err != nil {
		return nil, solverErrorf(op, err)
	}

	// Stage 7 (Check)
	if got := space.Dim(); got != d {
		derr := &DimensionError{
			Weight:    k,
			Lattice:   form.Key(),
			Expected:  d,
			Actual:    got,
			Vectors:   len(vs),
			Uncovered: uint64(len(global.ColumnLabels)) - global.Coverage.GetCardinality(),
			cause:     ErrUnderDetermined,
		}
		outcome = OutcomeUnderDetermined
		if got < d {
			derr.cause = ErrBrokenInvariant
			outcome = OutcomeBrokenInvariant
		}
		log.Warn("dimension check failed", "expected", d, "actual", got)
		return nil, solverErrorf(op, derr)
	}

	// Stage 8 (Expand)
	basis = make([]*fourier.Expansion, 0, d)
	for _, v := range space.Basis() {
		e, err := fourier.NewExpansion(ch, prec, v)
		if err != nil {
			return nil, solverErrorf(op, err)
		}
		basis = append(basis, e)
	}
	outcome = OutcomeSolved
	log.Debug("basis reconstructed", logging.KeyDimension, d)

	return basis, nil
}

// relationVectors lists every lattice vector up to sign with
// 1 ≤ L(x) ≤ max L(s) over the row groups.
func relationVectors(form *lattice.QuadraticForm, g *restriction.Global) []lattice.Vector {
	var top int64
	for _, grp := range g.RowGroups {
		top = max(top, grp.Index)
	}
	var out []lattice.Vector
	for _, group := range form.ShortVectors(top+1, true)[1:] {
		out = append(out, group...)
	}

	return out
}

// embed places every scalar basis element of index L(s) into the row group
// of s, zero elsewhere.
func (s *Solver) embed(g *restriction.Global, k int, ch fourier.Character, prec *fourier.Filter) ([]matrix.Vector, error) {
	bases := make(map[int64][]*fourier.ScalarExpansion)
	var out []matrix.Vector
	for gi, grp := range g.RowGroups {
		basis, ok := bases[grp.Index]
		if !ok {
			sf, err := prec.ScalarFilter(grp.Index, true)
			if err != nil {
				return nil, err
			}
			if basis, err = s.scalar.Basis(k, grp.Index, sf); err != nil {
				return nil, err
			}
			bases[grp.Index] = basis
		}
		order := g.RowOrder(gi)
		for _, f := range basis {
			v := matrix.NewVector(g.Matrix.Rows())
			for off, l := range order {
				c, err := f.Coefficient(ch, l)
				if err != nil {
					return nil, err
				}
				v[grp.Start+off] = c
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// solutionSpace returns {x : m·x ∈ span(embedded), rel·x = 0}.
func solutionSpace(m *matrix.Dense, embedded []matrix.Vector, rel *matrix.Dense) (*matrix.Subspace, error) {
	span, err := matrix.Span(m.Rows(), embedded...)
	if err != nil {
		return nil, err
	}
	pm, err := matrix.Mul(span.Annihilator().Matrix(), m)
	if err != nil {
		return nil, err
	}
	system, err := matrix.Stack(pm, rel)
	if err != nil {
		return nil, err
	}

	return matrix.RightKernel(system), nil
}

func sameLabels(a, b []fourier.Index) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
