// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import "errors"

// Sentinel errors classifying every failure the core can raise (spec §7).
// Callers discriminate with errors.Is; additional context is attached by
// wrapping with fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidArgument classifies a required key or value that is
	// absent, or another caller-supplied argument that is out of contract.
	// No operation of this package currently returns it: the zero
	// ByteString is the empty byte string, a valid key and value.
	ErrInvalidArgument = errors.New("ctrie: invalid argument")

	// ErrInvalidState is returned when Put/PutPrefix is called after
	// Compile, or Get, Save, Size or RootOffset is called before Compile.
	ErrInvalidState = errors.New("ctrie: invalid state")

	// ErrCorrupt is returned when a lookup detects a malformed packed
	// buffer: an out-of-range offset, a VInt wider than 5 bytes, or a
	// structurally inconsistent node record.
	ErrCorrupt = errors.New("ctrie: corrupt packed buffer")
)
