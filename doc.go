// Package jacobi reconstructs Jacobi forms of lattice index from scalar
// Jacobi forms by restriction.
//
// A Jacobi form of index L (an even positive-definite lattice) restricts
// along any lattice vector s to a scalar Jacobi form of index L(s). Given a
// basis of the scalar spaces and the dimension of J_{k,L}, the Fourier
// coefficients of a basis of J_{k,L} up to a precision bound are the exact
// solutions of a finite linear system over Q.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix              exact rational matrices, echelon forms, kernels, subspaces
//	lattice             even quadratic forms, exact short-vector enumeration
//	fourier             Fourier indices, reduction, precisions, expansions
//	restriction         restriction vector selection, restriction and relation matrices
//	solver              the reconstruction pipeline, coefficient cache, lazy forms
//	problem             YAML problem files wired to solver collaborators
//	cmd/jacobirestrict  command-line front end
//
// A typical session:
//
//	s := solver.New(dimensions, scalarForms,
//		solver.WithMetrics(solver.NewMetrics(prometheus.DefaultRegisterer)))
//	basis, err := s.SolveGram([][]int64{{2, 1}, {1, 2}}, 5, 12)
//	if errors.Is(err, solver.ErrUnderDetermined) {
//		// raise the bound or ask for more vectors with solver.WithExtraVectors
//	}
//
// All arithmetic is exact (math/big); nothing is rounded.
package jacobi
