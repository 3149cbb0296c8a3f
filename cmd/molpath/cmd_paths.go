// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "paths INPUT...",
		Short: "Print the distinct path records of every input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := g.load(args)
			if err != nil {
				return err
			}
			f, err := g.fingerprinter(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, in := range inputs {
				paths, err := f.Paths(in.m)
				if err != nil {
					return fmt.Errorf("%s: %w", in.name, err)
				}
				for _, p := range paths {
					fmt.Fprintf(out, "%s\t%s\n", in.name, p)
				}
			}
			return nil
		},
	}
}

func newFingerprintCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "fp INPUT...",
		Aliases: []string{"fingerprint"},
		Short:   "Print the set-bit count of every input's fingerprint",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := g.load(args)
			if err != nil {
				return err
			}
			fps, err := computeAll(cmd, g, inputs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, in := range inputs {
				fmt.Fprintf(out, "%s\t%d/%d\n", in.name, fps[i].Cardinality(), fps[i].Size())
			}
			return nil
		},
	}
}
