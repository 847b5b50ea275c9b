package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/discopt/seymour-go/decomp"
	"github.com/discopt/seymour-go/scheduler"
)

func newTreeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <matrix-file>",
		Short: "Decompose a matrix and print its decomposition tree",
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

			printTree(cmd, root, 0)
			return nil
		},
	}
}

func printTree(cmd *cobra.Command, n *decomp.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s (%dx%d) regular=%s graphic=%s cographic=%s\n",
		indent, n.Type, n.Matrix.Rows(), n.Matrix.Cols(), n.Regularity, n.Graphicness, n.Cographicness)
	for _, c := range n.Children {
		printTree(cmd, c, depth+1)
	}
}
