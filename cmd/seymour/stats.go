package main

import (
	"github.com/spf13/cobra"

	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/ioformat"
	"github.com/discopt/seymour-go/params"
	"github.com/discopt/seymour-go/scheduler"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <matrix-file>",
		Short: "Decompose a matrix and print run statistics as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0], flags)
			if err != nil {
				return err
			}
			p, err := loadParams(flags)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			deadline, err := parseDeadline(flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(flags)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			var st params.Statistics
			root := decomp.New(m, flags.ternary)
			s := scheduler.New(schedulerFlags(p), deadline, logger).WithStatistics(&st).WithParams(p)
			s.Enqueue(root)
			if err := s.Run(); err != nil {
				return err
			}

			return ioformat.WriteStatistics(cmd.OutOrStdout(), st)
		},
	}
}
