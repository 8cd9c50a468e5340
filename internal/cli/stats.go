// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/wisprd/ctrie"

	flag "github.com/spf13/pflag"
)

// runStats loads a compiled packed buffer and reports its size, root
// offset, and (VDCT only) value-table size.
func runStats(stdout, stderr io.Writer, args []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	variant := fs.String("variant", "vdct", "compiled representation: vdct or vpfst")
	in := fs.String("in", "", "path to a compiled packed buffer")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if *in == "" {
		fmt.Fprintln(stderr, "error: --in is required")
		return 1
	}

	v, err := parseVariant(*variant)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	d, err := ctrie.Load(*in, ctrie.WithVariant(v))
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	size, err := d.Size()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	root, err := d.RootOffset()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	fmt.Fprintf(stdout, "variant: %s\n", *variant)
	fmt.Fprintf(stdout, "size: %d bytes\n", size)
	fmt.Fprintf(stdout, "root_offset: %d\n", root)
	if v == ctrie.VariantVDCT {
		if size := d.ValueTableSize(); size > 0 {
			fmt.Fprintf(stdout, "value_table_size: %d bytes\n", size)
		} else {
			// Save/Load carries no framing (spec.md §6.1), so the
			// value-table/node-section boundary isn't recoverable from
			// a reloaded buffer alone.
			fmt.Fprintln(stdout, "value_table_size: unknown (not recoverable after reload)")
		}
	}
	return 0
}
