// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wisprd/ctrie"

	flag "github.com/spf13/pflag"
)

// runBuild reads key<TAB>value[<TAB>p] lines from --in, inserts each into
// a fresh Dictionary of the requested --variant, compiles it, and
// atomically saves the packed buffer to --out.
func runBuild(stdout, stderr io.Writer, args []string) int {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	variant := fs.String("variant", "vdct", "compiled representation: vdct or vpfst")
	in := fs.String("in", "", "input TSV file of key<TAB>value[<TAB>p] lines")
	out := fs.String("out", "", "output path for the compiled packed buffer")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if *in == "" || *out == "" {
		fmt.Fprintln(stderr, "error: --in and --out are required")
		return 1
	}

	v, err := parseVariant(*variant)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer func() { _ = f.Close() }()

	d := ctrie.New(ctrie.WithVariant(v))

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			fmt.Fprintf(stderr, "error: line %d: expected key<TAB>value[<TAB>p]\n", lineNo)
			return 1
		}
		asPrefix := len(fields) >= 3 && fields[2] == "p"

		key := ctrie.ByteStringFromString(fields[0])
		value := ctrie.ByteStringFromString(fields[1])

		var putErr error
		if asPrefix {
			putErr = d.PutPrefix(key, value)
		} else {
			putErr = d.Put(key, value)
		}
		if putErr != nil {
			fmt.Fprintf(stderr, "error: line %d: %v\n", lineNo, putErr)
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if err := d.Compile(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if err := d.Save(*out); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	size, _ := d.Size()
	fmt.Fprintf(stdout, "built %s (%d bytes) at %s\n", *variant, size, *out)
	return 0
}
