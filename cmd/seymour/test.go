package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/ioformat"
	"github.com/discopt/seymour-go/params"
	"github.com/discopt/seymour-go/scheduler"
)

func newTestCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "test <matrix-file>",
		Short: "Decompose a matrix and print its regularity/graphicness/cographicness",
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

			root := decomp.New(m, flags.ternary)
			s := scheduler.New(schedulerFlags(p), deadline, logger).WithParams(p)
			s.Enqueue(root)
			if err := s.Run(); err != nil {
				return err
			}
			root.SetAttributes()

			fmt.Fprintf(cmd.OutOrStdout(), "regularity: %s\n", root.Regularity)
			fmt.Fprintf(cmd.OutOrStdout(), "graphicness: %s\n", root.Graphicness)
			fmt.Fprintf(cmd.OutOrStdout(), "cographicness: %s\n", root.Cographicness)

			if root.Regularity == decomp.False {
				printViolators(cmd, root)
			}
			return nil
		},
	}
}

func printViolators(cmd *cobra.Command, n *decomp.Node) {
	if n.Type == decomp.TypeIrregular {
		for _, minor := range n.Minors {
			fmt.Fprintf(cmd.OutOrStdout(), "certifying minor (%s):\n", minor.Tag)
			ioformat.WriteSubmatrix(cmd.OutOrStdout(), minor.Remaining, n.Matrix.Rows(), n.Matrix.Cols()) //nolint:errcheck
		}
		return
	}
	for _, c := range n.Children {
		printViolators(cmd, c)
	}
}

func schedulerFlags(p params.Params) scheduler.Flags {
	return scheduler.Flags{
		StopOnIrregularity:               p.StopWhenIrregular,
		StopOnNongraphicness:              p.StopWhenNongraphic,
		StopOnNoncographicness:            p.StopWhenNoncographic,
		StopOnNeitherGraphicNorCographic:  p.StopWhenNeitherGraphicNorCoGraphic,
	}
}
