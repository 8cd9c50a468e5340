// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

// Package cli implements the ctriecli command-line harness: build, lookup
// and stats subcommands over a compiled ctrie.Dictionary buffer. It is an
// external collaborator around the core package (spec.md §1), testable
// through the same Run(stdin, stdout, stderr, args) int entrypoint shape
// used throughout _examples/calvinalkan-agent-task.
package cli

import (
	"fmt"
	"io"
)

// Run dispatches args[1] (the subcommand name; args[0] is the program
// name, as in os.Args) and returns a process exit code. stdin is accepted for symmetry with the teacher's entrypoint shape
// even though none of the current subcommands read from it.
func Run(_ io.Reader, stdout, stderr io.Writer, args []string) int {
	if len(args) < 2 {
		printUsage(stderr)
		return 1
	}

	switch args[1] {
	case "build":
		return runBuild(stdout, stderr, args[2:])
	case "lookup":
		return runLookup(stdout, stderr, args[2:])
	case "stats":
		return runStats(stdout, stderr, args[2:])
	case "-h", "--help", "help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "error: unknown command: %s\n", args[1])
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "ctriecli - compiled trie dictionary builder/inspector")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: ctriecli <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build --variant=vdct|vpfst --in=<tsv> --out=<file>")
	fmt.Fprintln(w, "  lookup --in=<file> --variant=vdct|vpfst <key>")
	fmt.Fprintln(w, "  stats --in=<file> --variant=vdct|vpfst")
}
