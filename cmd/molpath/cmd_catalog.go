// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/molpath/catalog"
	"github.com/katalvlaran/molpath/fingerprint"
	"github.com/katalvlaran/molpath/internal/logging"
)

func newIndexCmd(g *globalFlags) *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "index INPUT...",
		Short: "Fingerprint inputs and store them in a catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := g.load(args)
			if err != nil {
				return err
			}
			fps, err := computeAll(cmd, g, inputs)
			if err != nil {
				return err
			}

			c, err := openCatalog(g, db)
			if err != nil {
				return err
			}
			defer c.Close()

			for i, in := range inputs {
				if err = c.Put(in.name, fps[i]); err != nil {
					return err
				}
			}
			n, err := c.Len()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d, catalog holds %d\n", len(inputs), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "Catalog directory (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func newScreenCmd(g *globalFlags) *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "screen INPUT",
		Short: "List catalog entries that may contain the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, c, err := queryAndCatalog(cmd, g, db, args)
			if err != nil {
				return err
			}
			defer c.Close()

			names, err := c.Screen(q)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "Catalog directory (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func newSimilarCmd(g *globalFlags) *cobra.Command {
	var flags struct {
		db        string
		threshold float64
		limit     int
	}

	cmd := &cobra.Command{
		Use:   "similar INPUT",
		Short: "Rank catalog entries by Tanimoto similarity to the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, c, err := queryAndCatalog(cmd, g, flags.db, args)
			if err != nil {
				return err
			}
			defer c.Close()

			hits, err := c.Similar(q, flags.threshold, flags.limit)
			if err != nil {
				return err
			}
			for _, h := range hits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.3f\n", h.Name, h.Score)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.db, "db", "", "Catalog directory (required)")
	f.Float64Var(&flags.threshold, "threshold", 0, "Lowest score reported")
	f.IntVar(&flags.limit, "limit", 10, "Most hits reported; 0 for all")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func computeAll(cmd *cobra.Command, g *globalFlags, inputs []input) ([]*fingerprint.Fingerprint, error) {
	f, err := g.fingerprinter(cmd)
	if err != nil {
		return nil, err
	}
	ss := make([]fingerprint.Structure, len(inputs))
	for i, in := range inputs {
		ss[i] = in.m
	}

	return f.ComputeAll(ss)
}

func openCatalog(g *globalFlags, dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return nil, errors.New("--db must name a directory")
	}
	if g.size < 1 {
		return nil, fmt.Errorf("--size must be at least 1, got %d", g.size)
	}

	return catalog.Open(
		catalog.WithDir(dir),
		catalog.WithSize(g.size),
		catalog.WithLogger(logging.New("catalog")),
	)
}

// queryAndCatalog fingerprints the single query input and opens the
// catalog it is searched against.
func queryAndCatalog(cmd *cobra.Command, g *globalFlags, db string, args []string) (*fingerprint.Fingerprint, *catalog.Catalog, error) {
	inputs, err := g.load(args)
	if err != nil {
		return nil, nil, err
	}
	fps, err := computeAll(cmd, g, inputs)
	if err != nil {
		return nil, nil, err
	}
	c, err := openCatalog(g, db)
	if err != nil {
		return nil, nil, err
	}

	return fps[0], c, nil
}
