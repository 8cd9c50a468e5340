// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisprd/ctrie/internal/cli"
)

func runCtrie(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	var out, errOut bytes.Buffer
	fullArgs := append([]string{"ctriecli"}, args...)
	exitCode = cli.Run(nil, &out, &errOut, fullArgs)

	return out.String(), errOut.String(), exitCode
}

func writeTSV(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.tsv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestCLI_BuildLookupStats_VDCT(t *testing.T) {
	t.Parallel()

	in := writeTSV(t, "key\tvalue\tp", "key123\tvalue123")
	out := filepath.Join(t.TempDir(), "out.bin")

	stdout, stderr, code := runCtrie(t, "build", "--variant=vdct", "--in="+in, "--out="+out)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "built vdct")

	stdout, stderr, code = runCtrie(t, "lookup", "--variant=vdct", "--in="+out, "key123")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "value123\n", stdout)

	stdout, stderr, code = runCtrie(t, "lookup", "--variant=vdct", "--in="+out, "keyxyz")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "value\n", stdout)

	stdout, stderr, code = runCtrie(t, "lookup", "--variant=vdct", "--in="+out, "nope")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "not found\n", stdout)

	stdout, stderr, code = runCtrie(t, "stats", "--variant=vdct", "--in="+out)
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "variant: vdct")
	assert.Contains(t, stdout, "size:")
	assert.Contains(t, stdout, "root_offset:")
}

func TestCLI_BuildLookup_VPFST(t *testing.T) {
	t.Parallel()

	in := writeTSV(t, "dog\tdoghouse", "dot\tdotcom")
	out := filepath.Join(t.TempDir(), "out.bin")

	_, stderr, code := runCtrie(t, "build", "--variant=vpfst", "--in="+in, "--out="+out)
	require.Equal(t, 0, code, stderr)

	stdout, stderr, code := runCtrie(t, "lookup", "--variant=vpfst", "--in="+out, "dog")
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "doghouse\n", stdout)
}

func TestCLI_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, stderr, code := runCtrie(t, "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestCLI_BuildMissingFlagsFails(t *testing.T) {
	t.Parallel()

	_, stderr, code := runCtrie(t, "build", "--variant=vdct")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--in and --out are required")
}

func TestCLI_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	_, stderr, code := runCtrie(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage: ctriecli")
}
