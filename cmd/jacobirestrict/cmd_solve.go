// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jacobi/internal/logging"
	"github.com/katalvlaran/jacobi/problem"
	"github.com/katalvlaran/jacobi/solver"
)

func newSolveCmd(logger func() *logging.Logger) *cobra.Command {
	var (
		path  string
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Reconstruct the basis described by a problem file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := problem.Load(path)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			basis, err := p.Solve(solver.WithLogger(logger()), solver.WithMetrics(solver.NewMetrics(reg)))
			if err != nil {
				return err
			}
			prec, err := p.Filter()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dim J_{%d,[%s]} = %d at bound %d\n", p.Weight, prec.Form().Key(), len(basis), p.Bound)
			for i, e := range basis {
				fmt.Fprintf(out, "form %d (%s)\n", i, e.Character())
				v := e.Vector()
				for j, l := range prec.Labels() {
					if v[j].Sign() != 0 {
						fmt.Fprintf(out, "  %s: %s\n", l, v[j].RatString())
					}
				}
			}
			if stats {
				return writeStats(cmd, reg)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "problem", "p", "", "YAML problem file")
	cmd.Flags().BoolVar(&stats, "stats", false, "print solver metrics after the basis")
	_ = cmd.MarkFlagRequired("problem")

	return cmd
}

// writeStats prints every gathered counter and histogram count.
func writeStats(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(out, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(out, "%s_count%s %d\n", mf.GetName(), labels, m.GetHistogram().GetSampleCount())
			}
		}
	}

	return nil
}
