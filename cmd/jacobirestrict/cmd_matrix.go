// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/lattice"
	"github.com/katalvlaran/jacobi/matrix"
	"github.com/katalvlaran/jacobi/restriction"
	"github.com/katalvlaran/jacobi/solver"
)

func newMatrixCmd() *cobra.Command {
	var (
		gram      string
		vectors   []string
		bound     int64
		weight    int
		relations bool
	)
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the global restriction or relation matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := parseGram(gram)
			if err != nil {
				return err
			}
			prec, err := solver.NewPrecision(g, bound)
			if err != nil {
				return err
			}
			vs := make([]lattice.Vector, len(vectors))
			for i, s := range vectors {
				if vs[i], err = lattice.ParseVector(s); err != nil {
					return err
				}
			}

			var (
				m       *matrix.Dense
				columns []fourier.Index
				groups  []string
			)
			if relations {
				rel, err := restriction.RelationMatrix(prec, vs, weight)
				if err != nil {
					return err
				}
				m, columns = rel.Matrix, rel.ColumnLabels
			} else {
				global, err := restriction.GlobalMatrix(prec, vs, weight, false)
				if err != nil {
					return err
				}
				m, columns = global.Matrix, global.ColumnLabels
				for gi, grp := range global.RowGroups {
					rows := make([]string, 0, grp.Length)
					for _, l := range global.RowOrder(gi) {
						rows = append(rows, l.String())
					}
					groups = append(groups, fmt.Sprintf("%s m=%d rows %d..%d: %s",
						grp.S, grp.Index, grp.Start, grp.Start+grp.Length-1, strings.Join(rows, " ")))
				}
			}

			out := cmd.OutOrStdout()
			labels := make([]string, len(columns))
			for i, l := range columns {
				labels[i] = l.String()
			}
			fmt.Fprintf(out, "columns: %s\n", strings.Join(labels, " "))
			for _, line := range groups {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "%dx%d\n", m.Rows(), m.Cols())
			if m.Rows() > 0 {
				fmt.Fprintln(out, m)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&gram, "gram", "g", "", `Gram matrix, rows separated by ";"`)
	cmd.Flags().StringArrayVarP(&vectors, "vector", "v", nil, `restriction vector (repeatable), e.g. "-1,0"`)
	cmd.Flags().Int64VarP(&bound, "bound", "b", 1, "exclusive precision bound on n")
	cmd.Flags().IntVarP(&weight, "weight", "k", 0, "weight (its parity selects the signs)")
	cmd.Flags().BoolVar(&relations, "relations", false, "print the relation matrix instead")
	_ = cmd.MarkFlagRequired("gram")
	_ = cmd.MarkFlagRequired("vector")

	return cmd
}
