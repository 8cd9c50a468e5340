// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/wisprd/ctrie"

	flag "github.com/spf13/pflag"
)

// runLookup loads a previously built packed buffer and performs one Get.
func runLookup(stdout, stderr io.Writer, args []string) int {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
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
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "error: expected exactly one key argument")
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

	key := ctrie.ByteStringFromString(fs.Arg(0))
	value, ok, err := d.Get(key)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if !ok {
		fmt.Fprintln(stdout, "not found")
		return 0
	}

	fmt.Fprintln(stdout, value.String())
	return 0
}
