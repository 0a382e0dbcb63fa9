// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jacobi/fourier"
	"github.com/katalvlaran/jacobi/internal/logging"
	"github.com/katalvlaran/jacobi/restriction"
)

func newVectorsCmd(logger func() *logging.Logger) *cobra.Command {
	var (
		gram    string
		extra   int
		maxNorm int64
	)
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Select restriction vectors separating the discriminant classes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := parseForm(gram)
			if err != nil {
				return err
			}
			ix, err := fourier.NewIndices(form)
			if err != nil {
				return err
			}
			reps := ix.Representatives()
			vs, err := restriction.FindCompleteSet(form, reps, extra,
				restriction.WithMaxNorm(maxNorm), restriction.WithLogger(logger()))
			if err != nil {
				return err
			}
			local, err := restriction.LocalMatrix(reps, vs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "classes %d\n", len(reps))
			for _, v := range vs {
				fmt.Fprintln(out, v)
			}
			fmt.Fprintln(out, local)

			return nil
		},
	}
	cmd.Flags().StringVarP(&gram, "gram", "g", "", `Gram matrix, rows separated by ";" (e.g. "2,1;1,2")`)
	cmd.Flags().IntVar(&extra, "extra", 0, "vectors beyond the minimal separating set")
	cmd.Flags().Int64Var(&maxNorm, "max-norm", restriction.DefaultOptions().MaxNorm, "give up above this norm")
	_ = cmd.MarkFlagRequired("gram")

	return cmd
}
