// SPDX-License-Identifier: MIT

// Package problem loads reconstruction problems from YAML files.
//
// A problem names an even Gram matrix, a weight, a precision bound, the
// dimension of the space of Jacobi forms (what a dimension formula would
// answer) and, for every scalar index the restriction needs, a table of
// scalar Jacobi form coefficients:
//
//	gram: [[2]]
//	weight: 4
//	bound: 2
//	dimension: 1
//	scalar:
//	  - index: 1
//	    bound: 3
//	    forms:
//	      - {"0,0": "1", "1,0": "126", "1,1": "56", "2,0": "756", "2,1": "576"}
//
// Coefficient keys are reduced scalar labels "n,r" (0 ≤ r ≤ index,
// r² ≤ 4·index·n, n < bound); values are exact rationals ("5", "-1/2").
// Labels absent from a table are zero.
//
// A Problem turns into the collaborators a solver.Solver needs:
// DimensionOracle answers the recorded dimension and ScalarForms serves the
// tables, truncated to whatever precision the solver asks for.
package problem
