// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/solver"
)

// Problem is one reconstruction request as stored on disk.
type Problem struct {
	// Gram is the even Gram matrix of the lattice index.
	Gram [][]int64 `json:"gram" yaml:"gram"`

	// Weight is the weight k.
	Weight int `json:"weight" yaml:"weight"`

	// Bound is the exclusive precision bound on n.
	Bound int64 `json:"bound" yaml:"bound" validate:"gte=0"`

	// Dimension is dim J_{k,L}.
	Dimension int `json:"dimension" yaml:"dimension" validate:"gte=0"`

	// Extra asks the selector for restriction vectors beyond the minimal set.
	Extra int `json:"extra" yaml:"extra" validate:"gte=0"`

	// Scalar holds one coefficient table per scalar index.
	Scalar []ScalarTable `json:"scalar" yaml:"scalar" validate:"dive"`
}

// ScalarTable is a basis of scalar Jacobi forms of one index.
type ScalarTable struct {
	Index int64               `json:"index" yaml:"index" validate:"gt=0"`
	Bound int64               `json:"bound" yaml:"bound" validate:"gte=0"`
	Forms []map[string]string `json:"forms" yaml:"forms"`
}

// problemValidate checks the field constraints declared in struct tags.
var problemValidate = validator.New()

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, problemErrorf("Load", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return p, nil
}

// Parse decodes and validates a YAML problem.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, problemErrorf("Parse", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the field constraints, the lattice and every
// coefficient table.
func (p *Problem) Validate() error {
	const op = "Validate"
	if err := problemValidate.Struct(p); err != nil {
		return problemErrorf(op, fieldError(err))
	}
	if _, err := lattice.New(p.Gram); err != nil {
		return problemErrorf(op, err)
	}
	_, err := p.tables()

	return err
}

// fieldError maps the first failed field constraint onto a sentinel.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	var sentinel error
	switch fe.Field() {
	case "Bound":
		sentinel = ErrNegativeBound
	case "Dimension":
		sentinel = ErrNegativeDimension
	case "Extra":
		sentinel = ErrNegativeExtra
	case "Index":
		sentinel = ErrBadIndex
	default:
		return err
	}

	return fmt.Errorf("%s: %w", fe.Namespace(), sentinel)
}

// Form returns the lattice of the problem.
func (p *Problem) Form() (*lattice.QuadraticForm, error) {
	return lattice.New(p.Gram)
}

// Filter returns the precision of the problem.
func (p *Problem) Filter() (*fourier.Filter, error) {
	return solver.NewPrecision(p.Gram, p.Bound)
}

// DimensionOracle answers the recorded dimension for the problem's weight
// and lattice and fails for anything else.
func (p *Problem) DimensionOracle() solver.DimensionOracle {
	want, err := p.Form()

	return solver.DimensionFunc(func(k int, form *lattice.QuadraticForm) (int, error) {
		if err != nil {
			return 0, problemErrorf("Dimension", err)
		}
		if k != p.Weight || form == nil || form.Key() != want.Key() {
			return 0, problemErrorf("Dimension", ErrOtherProblem)
		}

		return p.Dimension, nil
	})
}

// ScalarForms serves the coefficient tables, truncated to the requested
// filter. The expansions carry the character of the requested weight.
func (p *Problem) ScalarForms() (solver.ScalarForms, error) {
	tables, err := p.tables()
	if err != nil {
		return nil, err
	}

	return solver.ScalarFormsFunc(func(k int, m int64, f *fourier.ScalarFilter) ([]*fourier.ScalarExpansion, error) {
		const op = "ScalarForms"
		t, ok := tables[m]
		if !ok {
			return nil, problemErrorf(op, fmt.Errorf("index %d: %w", m, ErrNoScalarBasis))
		}
		if f.Bound() > t.bound {
			return nil, problemErrorf(op, fmt.Errorf("index %d: bound %d > %d: %w", m, f.Bound(), t.bound, ErrInsufficientPrecision))
		}
		out := make([]*fourier.ScalarExpansion, 0, len(t.forms))
		for _, form := range t.forms {
			coeffs := make(map[fourier.ScalarIndex]*big.Rat, len(form))
			for l, c := range form {
				if l.N < f.Bound() {
					coeffs[l] = c
				}
			}
			e, err := fourier.NewScalarExpansion(fourier.WeightCharacter(k), f, coeffs)
			if err != nil {
				return nil, problemErrorf(op, err)
			}
			out = append(out, e)
		}

		return out, nil
	}), nil
}

// Solver returns a solver wired to the problem's oracles. opts are applied
// after the problem's own settings.
func (p *Problem) Solver(opts ...solver.Option) (*solver.Solver, error) {
	if p.Extra < 0 {
		return nil, problemErrorf("Solver", ErrNegativeExtra)
	}
	scalar, err := p.ScalarForms()
	if err != nil {
		return nil, err
	}
	all := append([]solver.Option{solver.WithExtraVectors(p.Extra)}, opts...)

	return solver.New(p.DimensionOracle(), scalar, all...), nil
}

// Solve reconstructs the basis the problem describes.
func (p *Problem) Solve(opts ...solver.Option) ([]*fourier.Expansion, error) {
	s, err := p.Solver(opts...)
	if err != nil {
		return nil, err
	}

	return s.SolveGram(p.Gram, p.Bound, p.Weight)
}

type table struct {
	bound int64
	forms []map[fourier.ScalarIndex]*big.Rat
}

// tables parses every coefficient table into exact labels and values.
func (p *Problem) tables() (map[int64]table, error) {
	const op = "tables"
	out := make(map[int64]table, len(p.Scalar))
	for _, st := range p.Scalar {
		filter, err := fourier.NewScalarFilter(st.Index, st.Bound, true)
		if err != nil {
			return nil, problemErrorf(op, err)
		}
		if _, dup := out[st.Index]; dup {
			return nil, problemErrorf(op, fmt.Errorf("index %d: %w", st.Index, ErrDuplicateIndex))
		}
		t := table{bound: st.Bound, forms: make([]map[fourier.ScalarIndex]*big.Rat, 0, len(st.Forms))}
		for _, raw := range st.Forms {
			form := make(map[fourier.ScalarIndex]*big.Rat, len(raw))
			for key, val := range raw {
				l, err := parseLabel(key)
				if err != nil || !filter.Contains(l) {
					return nil, problemErrorf(op, fmt.Errorf("index %d label %q: %w", st.Index, key, ErrBadLabel))
				}
				c, ok := new(big.Rat).SetString(strings.TrimSpace(val))
				if !ok {
					return nil, problemErrorf(op, fmt.Errorf("index %d label %q value %q: %w", st.Index, key, val, ErrBadCoefficient))
				}
				form[l] = c
			}
			t.forms = append(t.forms, form)
		}
		out[st.Index] = t
	}

	return out, nil
}

// parseLabel reads "n,r".
func parseLabel(s string) (fourier.ScalarIndex, error) {
	v, err := lattice.ParseVector(s)
	if err != nil {
		return fourier.ScalarIndex{}, err
	}
	if len(v) != 2 {
		return fourier.ScalarIndex{}, ErrBadLabel
	}

	return fourier.ScalarIndex{N: v[0], R: v[1]}, nil
}
