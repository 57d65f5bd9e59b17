// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/katalvlaran/sparsedata/sparse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// operation is the shared shape of the single-result commands.
type operation struct {
	use, short string
	operands   int
	apply      func(cmd *cobra.Command, ms []*sparse.Matrix[int]) (*sparse.Matrix[int], error)
}

func newOperationCmd(op operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Long:  op.short + ".\n\n" + inputFormatHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPrinter(cmd.OutOrStdout(), viper.GetString(formatConfigKey), viper.GetString(localeConfigKey))
			if err != nil {
				return err
			}

			ms, err := readMatrices(cmd, viper.GetString(inputConfigKey), op.operands)
			if err != nil {
				return err
			}

			res, err := op.apply(cmd, ms)
			if err != nil {
				return err
			}

			return p.matrix(res)
		},
	}
}

func newTransposeCmd() *cobra.Command {
	return newOperationCmd(operation{
		use:      "transpose",
		short:    "Print the transpose of one matrix",
		operands: 1,
		apply: func(_ *cobra.Command, ms []*sparse.Matrix[int]) (*sparse.Matrix[int], error) {
			return ms[0].Transpose(), nil
		},
	})
}

func newAddCmd() *cobra.Command {
	return newOperationCmd(operation{
		use:      "add",
		short:    "Print the sum of two matrices",
		operands: 2,
		apply: func(_ *cobra.Command, ms []*sparse.Matrix[int]) (*sparse.Matrix[int], error) {
			return ms[0].Add(ms[1])
		},
	})
}

func newMultiplyCmd() *cobra.Command {
	return newOperationCmd(operation{
		use:      "multiply",
		short:    "Print the product of two matrices",
		operands: 2,
		apply: func(cmd *cobra.Command, ms []*sparse.Matrix[int]) (*sparse.Matrix[int], error) {
			return multiply(cmd.Context(), ms[0], ms[1], viper.GetInt(workersConfigKey))
		},
	})
}
