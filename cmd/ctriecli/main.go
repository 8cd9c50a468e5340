// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

// Command ctriecli builds, inspects, and queries compiled trie dictionary
// files from the shell.
package main

import (
	"os"

	"github.com/wisprd/ctrie/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}
