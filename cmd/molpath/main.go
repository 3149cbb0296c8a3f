// SPDX-License-Identifier: MIT

// molpath encodes molecule walks as path records and keeps a searchable
// catalog of path fingerprints.
//
// Usage:
//
//	molpath encode  [--root=N] [--max-depth=N] [--path-mode=extend] INPUT
//	molpath paths   INPUT...
//	molpath fp      [--workers=N] INPUT...
//	molpath index   --db=DIR INPUT...
//	molpath screen  --db=DIR INPUT
//	molpath similar --db=DIR [--threshold=X] [--limit=N] INPUT
//
// INPUT is a YAML molecule document, or a line fixture such as "CC(=O)O"
// when --line is given.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
