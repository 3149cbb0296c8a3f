// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/molpath/fingerprint"
	"github.com/katalvlaran/molpath/internal/logging"
	"github.com/katalvlaran/molpath/mol"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	line      bool
	size      int
	depth     int
	workers   int
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:          "molpath",
		Short:        "Encode molecule walks and search path fingerprints",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(g.logLevel)
			if err != nil {
				return err
			}
			logging.Init(level, g.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&g.logFormat, "log-format", "text", "Log format: text or json")
	f.BoolVar(&g.line, "line", false, "Read arguments as line fixtures instead of YAML files")
	f.IntVar(&g.size, "size", fingerprint.DefaultSize, "Fingerprint width in bits")
	f.IntVar(&g.depth, "depth", fingerprint.DefaultDepth, "Fingerprint walk depth in bonds")
	f.IntVar(&g.workers, "workers", fingerprint.DefaultWorkers, "Structures fingerprinted at once")

	root.AddCommand(
		newEncodeCmd(g),
		newPathsCmd(g),
		newFingerprintCmd(g),
		newIndexCmd(g),
		newScreenCmd(g),
		newSimilarCmd(g),
	)

	return root
}

// input is one loaded molecule and the name it is reported under.
type input struct {
	name string
	m    *mol.Molecule
}

// load reads every argument as a YAML file, or as a line fixture under
// --line. YAML inputs are named after the file without its extension.
func (g *globalFlags) load(args []string) ([]input, error) {
	out := make([]input, 0, len(args))
	for _, arg := range args {
		if g.line {
			m, err := mol.ParseLine(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, input{name: arg, m: m})
			continue
		}

		m, err := decodeFile(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, input{name: strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg)), m: m})
	}

	return out, nil
}

func decodeFile(path string) (*mol.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mol.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// fingerprinter validates the fingerprint flags and builds a Fingerprinter.
func (g *globalFlags) fingerprinter(cmd *cobra.Command) (*fingerprint.Fingerprinter, error) {
	if g.size < 1 {
		return nil, fmt.Errorf("--size must be at least 1, got %d", g.size)
	}
	if g.depth < 0 {
		return nil, fmt.Errorf("--depth must not be negative, got %d", g.depth)
	}
	if g.workers < 1 {
		return nil, fmt.Errorf("--workers must be at least 1, got %d", g.workers)
	}

	return fingerprint.New(
		fingerprint.WithSize(g.size),
		fingerprint.WithDepth(g.depth),
		fingerprint.WithWorkers(g.workers),
		fingerprint.WithContext(cmd.Context()),
		fingerprint.WithLogger(logging.New("fingerprint")),
	), nil
}
