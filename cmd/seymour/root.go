package main

import (
	"github.com/spf13/cobra"
)

// rootFlags holds the flags shared by every subcommand, bound once on the
// root command's persistent flag set per cobra's own NewXCmd convention.
type rootFlags struct {
	logLevel   string
	format     string // "sparse" or "dense"
	ternary    bool
	paramsFile string
	deadline   string // Go duration string, e.g. "30s"; empty means no deadline
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "seymour",
		Short:         "Decide regularity of a 0/±1 matrix via Seymour's decomposition theorem",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.format, "format", "sparse", "matrix file format: sparse or dense")
	root.PersistentFlags().BoolVar(&flags.ternary, "ternary", true, "matrix entries are 0/±1 rather than 0/1")
	root.PersistentFlags().StringVar(&flags.paramsFile, "params-file", "", "JSON file of decomposition parameters")
	root.PersistentFlags().StringVar(&flags.deadline, "deadline", "", "wall-clock deadline for the run, e.g. 30s (empty: none)")

	root.AddCommand(newTestCmd(flags))
	root.AddCommand(newTreeCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	return root
}
