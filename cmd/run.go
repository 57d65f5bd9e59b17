// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/katalvlaran/sparsedata/sparse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Messages printed in place of a result the run could not compute.
const (
	msgAddSize       = "Error: Matrices have invalid size for addition."
	msgMultiplySize  = "Error: Matrices have invalid size for multiplication."
	msgCommonValue   = "Error: Matrices must have same common value"
	msgNonZeroCommon = "Error: Multiplication needs a common value of zero"
)

// runOperands is the number of matrices the run command reads.
const runOperands = 2

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Walk two matrices through every operation",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	p, err := newPrinter(cmd.OutOrStdout(), formatSparse, viper.GetString(localeConfigKey))
	if err != nil {
		return err
	}

	in, err := openInput(cmd, viper.GetString(inputConfigKey))
	if err != nil {
		return err
	}
	defer in.Close()
	rd := newMatrixReader(in, sparse.WithLogger(logger()))

	var ms [runOperands]*sparse.Matrix[int]
	for i, name := range []string{"First", "Second"} {
		p.title(name + " Matrix:")
		if ms[i], err = rd.readMatrix(); err != nil {
			return err
		}
		p.title(name + " one in sparse matrix format")
		if err = ms[i].WriteSparse(p.out); err != nil {
			return err
		}
		p.title(name + " one in normal matrix format")
		if err = ms[i].WriteDense(p.out); err != nil {
			return err
		}
	}
	first, second := ms[0], ms[1]

	p.title("After Transpose first one in normal format")
	if err = first.Transpose().WriteDense(p.out); err != nil {
		return err
	}
	p.title("After Transpose second one in normal format")
	if err = second.Transpose().WriteDense(p.out); err != nil {
		return err
	}

	p.title("Multiplication of matrices in sparse matrix form:")
	product, err := multiply(cmd.Context(), second, first, viper.GetInt(workersConfigKey))
	if err = reportOutcome(p, product, err, msgMultiplySize); err != nil {
		return err
	}

	p.title("Addition of matrices in sparse matrix form:")
	sum, err := second.Add(first)

	return reportOutcome(p, sum, err, msgAddSize)
}

// reportOutcome prints m, or the message matching a mismatch error. Errors of
// any other kind are returned.
func reportOutcome(p *printer, m *sparse.Matrix[int], err error, sizeMsg string) error {
	switch sparse.KindOf(err) {
	case sparse.KindNone:
		return m.WriteSparse(p.out)
	case sparse.KindShapeMismatch:
		p.line(sizeMsg)
	case sparse.KindCommonValueMismatch:
		p.line(msgCommonValue)
	case sparse.KindUnsupportedCommonValue:
		p.line(msgNonZeroCommon)
	default:
		return err
	}
	logger().Info("operation skipped", "error", err)

	return nil
}

// multiply computes a×b, row-parallel when more than one worker is asked for.
func multiply(ctx context.Context, a, b *sparse.Matrix[int], workers int) (*sparse.Matrix[int], error) {
	if workers > 1 {
		return a.MultiplyParallel(ctx, b, workers)
	}

	return a.Multiply(b)
}
