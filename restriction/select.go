// SPDX-License-Identifier: MIT

package restriction

import (
	"github.com/katalvlaran/jacobi/internal/logging"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
)

// FindCompleteSet selects len(reps)+extra restriction vectors whose
// evaluation vectors span Q^len(reps).
//
// Stage 1 (Validate): reps must match the lattice rank, extra ≥ 0, and the
// norm window must be sane.
// Stage 2 (Search): lattice vectors s are visited by increasing norm (one
// per ± pair, lexicographic inside a norm), starting at norm 1. For every
// s the candidate values r = ⟨s, t⟩ are tried in first-seen order.
// Stage 3 (Accept): (s, r) is taken if fewer than extra redundant vectors
// have been taken so far, or if its evaluation vector raises the rank.
// Stage 4 (Grow): when the window is exhausted it widens by NormIncrement;
// hitting MaxNorm returns ErrSearchExhausted.
//
// The result is deterministic for a fixed lattice, reps and extra.
// An empty reps yields an empty result.
func FindCompleteSet(form *lattice.QuadraticForm, reps [][]lattice.Vector, extra int, opts ...Option) ([]Vector, error) {
	const op = "FindCompleteSet"
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1 (Validate)
	if form == nil {
		return nil, restrictionErrorf(op, ErrNilForm)
	}
	if extra < 0 {
		return nil, restrictionErrorf(op, ErrNegativeExtra)
	}
	if err := o.validate(); err != nil {
		return nil, restrictionErrorf(op, err)
	}
	for _, slot := range reps {
		for _, t := range slot {
			if len(t) != form.Rank() {
				return nil, restrictionErrorf(op, ErrDimensionMismatch)
			}
		}
	}
	out := []Vector{}
	if len(reps) == 0 {
		return out, nil
	}
	log := logging.OrNoop(o.Logger).WithLattice(form.Key()).WithStage("select")

	target := len(reps) + extra
	space := matrix.ZeroSpace(len(reps))
	window := o.InitialNorm
	groups := form.ShortVectors(window, true)

	// Stage 2 (Search)
	for norm := int64(1); ; norm++ {
		// Stage 4 (Grow)
		for norm >= window {
			window += o.NormIncrement
			if window > o.MaxNorm {
				return nil, restrictionErrorf(op, ErrSearchExhausted)
			}
			groups = form.ShortVectors(window, true)
		}

		for _, s := range groups[norm] {
			for _, r := range candidates(reps, s) {
				ev, _ := Evaluate(reps, s, r)
				v := toRat(ev)

				// Stage 3 (Accept)
				in, err := space.Contains(v)
				if err != nil {
					return nil, restrictionErrorf(op, err)
				}
				if len(out)-space.Dim() >= extra && in {
					continue
				}
				line, _ := matrix.Span(len(reps), v)
				if space, err = space.Add(line); err != nil {
					return nil, restrictionErrorf(op, err)
				}
				out = append(out, Vector{S: s.Clone(), R: r})
				log.Debug("accepted restriction vector",
					"s", s.String(), "r", r, "rank", space.Dim(), logging.KeyVectors, len(out))

				if len(out) == target {
					log.Debug("restriction vector set complete", logging.KeyVectors, len(out))
					return out, nil
				}
			}
		}
	}
}
