// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jacobi/internal/logging"
	"github.com/katalvlaran/jacobi/lattice"
)

// newRootCmd assembles the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "jacobirestrict",
		Short:        "Jacobi forms of lattice index by restriction",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace the pipeline on stderr (debug, info, warn, error)")

	logger := func() *logging.Logger {
		if logLevel == "" {
			return logging.Noop()
		}
		return logging.NewText(os.Stderr, logging.ParseLevel(logLevel))
	}

	root.AddCommand(
		newSolveCmd(logger),
		newVectorsCmd(logger),
		newMatrixCmd(),
	)

	return root
}

// parseGram reads "2,1;1,2" into a Gram matrix.
func parseGram(s string) ([][]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty --gram")
	}
	rows := strings.Split(s, ";")
	gram := make([][]int64, len(rows))
	for i, row := range rows {
		v, err := lattice.ParseVector(row)
		if err != nil {
			return nil, fmt.Errorf("--gram row %d: %w", i, err)
		}
		gram[i] = v
	}

	return gram, nil
}

func parseForm(s string) (*lattice.QuadraticForm, error) {
	gram, err := parseGram(s)
	if err != nil {
		return nil, err
	}

	return lattice.New(gram)
}
