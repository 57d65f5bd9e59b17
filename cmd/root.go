// SPDX-License-Identifier: MIT

// Package cmd provides the root command and CLI setup for sparsedata.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const inputFormatHelp = `Input format: "rows cols common" followed by rows*cols integers in
row-major order, all separated by whitespace. Several matrices may follow
one another in the same stream.`

const rootLongDescription = `sparsedata stores matrices as a common value plus the entries that
differ from it, and transposes, adds and multiplies them in that form.

` + inputFormatHelp

const runLongDescription = `Read two matrices and show them in sparse and dense form, both transposes,
the product second*first and the sum second+first. Size and common-value
mismatches are reported in place and do not stop the run.

` + inputFormatHelp

var (
	inputFlag   string
	formatFlag  string
	workersFlag int
	localeFlag  string
	verboseFlag bool
	logFileFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "sparsedata",
		Short:        "Sparse matrix toolkit",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			if configErr != nil {
				logger().Warn("config file ignored", "error", configErr)
			}
			logger().Debug("command started", "command", cmd.CommandPath())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds the full command tree. Every call rebinds the config keys
// to the new tree's flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(
		newRunCmd(),
		newTransposeCmd(),
		newAddCmd(),
		newMultiplyCmd(),
		newSpyCmd(),
		newVersionCmd(),
	)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&inputFlag, inputFlagName, "i", defaultInput, `input file ("-" reads stdin)`)
	bindFlagToConfig(flags.Lookup(inputFlagName), inputConfigKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "result format: sparse, dense or table")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.IntVarP(&workersFlag, workersFlagName, "w", defaultWorkers, "multiplication workers (>1 multiplies rows in parallel)")
	bindFlagToConfig(flags.Lookup(workersFlagName), workersConfigKey)

	flags.StringVar(&localeFlag, localeFlagName, defaultLocale, "BCP 47 locale for numbers in table output")
	bindFlagToConfig(flags.Lookup(localeFlagName), localeConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
