// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparsedata/spy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
)

var (
	spyOutFlag  string
	spySizeFlag float64
)

var errMissingOut = errors.New("spy: --out is required")

func newSpyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spy",
		Short: "Draw the sparsity pattern of one matrix",
		Long: `Draw the sparsity pattern of one matrix to an image. The format follows the
--out extension: .png, .svg or .pdf.

` + inputFormatHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if spyOutFlag == "" {
				return errMissingOut
			}

			ms, err := readMatrices(cmd, viper.GetString(inputConfigKey), 1)
			if err != nil {
				return err
			}

			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(spyOutFlag)), ".")
			size := vg.Length(viper.GetFloat64(spySizeConfigKey)) * vg.Centimeter

			var buf bytes.Buffer
			if err = spy.Render(&buf, ms[0], format, size); err != nil {
				return err
			}
			if err = os.WriteFile(spyOutFlag, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("spy: %w", err)
			}
			cmd.Printf("wrote %s (%d entries)\n", spyOutFlag, ms[0].Len())

			return nil
		},
	}

	cmd.Flags().StringVarP(&spyOutFlag, outFlagName, "o", "", "output image path (.png, .svg or .pdf)")
	cmd.Flags().Float64Var(&spySizeFlag, sizeFlagName, defaultSpySize, "image side length in centimetres")
	bindFlagToConfig(cmd.Flags().Lookup(sizeFlagName), spySizeConfigKey)

	return cmd
}
