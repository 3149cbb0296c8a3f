// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/molpath/internal/logging"
	"github.com/katalvlaran/molpath/pathwriter"
	"github.com/katalvlaran/molpath/walk"
)

func newEncodeCmd(g *globalFlags) *cobra.Command {
	var flags struct {
		root     int
		maxDepth int
		pathMode string
	}

	cmd := &cobra.Command{
		Use:   "encode INPUT",
		Short: "Print the path records of one walk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := g.load(args)
			if err != nil {
				return err
			}
			m := inputs[0].m

			var mode walk.PathMode
			switch flags.pathMode {
			case "extend":
				mode = walk.PathExtend
			case "inherit":
				mode = walk.PathInherit
			default:
				return fmt.Errorf("--path-mode must be extend or inherit, got %q", flags.pathMode)
			}

			root, err := m.Atom(flags.root)
			if err != nil {
				return err
			}

			var records pathwriter.Records
			w := pathwriter.New(&records)
			w.SetAromatics(m.AromaticAtoms()...)
			err = walk.Walk(root, w,
				walk.WithContext(cmd.Context()),
				walk.WithMaxDepth(flags.maxDepth),
				walk.WithPathMode(mode),
				walk.WithLogger(logging.New("walk")),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range records {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.root, "root", 0, "Index of the atom the walk starts from")
	f.IntVar(&flags.maxDepth, "max-depth", -1, "Deepest atom in bonds from the root; -1 for no limit")
	f.StringVar(&flags.pathMode, "path-mode", "extend", "Walk path mode: extend or inherit")

	return cmd
}
