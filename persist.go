// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Save writes the compiled packed buffer to path as a raw byte dump: no
// length prefix, no magic, no version header (spec §6.4 — "save/load as
// raw byte dumps with no framing"). The write lands atomically via a
// rename so a crash mid-write never leaves a partial file at path.
// It returns ErrInvalidState if the Dictionary has not been compiled.
func (d *Dictionary) Save(path string) error {
	if d.state != stateCompiled {
		return fmt.Errorf("%w: Save called before Compile", ErrInvalidState)
	}
	return atomic.WriteFile(path, bytes.NewReader(d.buf))
}

// Load reads a packed buffer previously written by Save and returns a
// compiled, read-only Dictionary backed by it. The caller must supply the
// same variant the buffer was compiled with via WithVariant — the raw
// dump carries no self-describing tag to recover it from (spec §6.4).
// Load does not validate the buffer's structure; corruption surfaces the
// first time a Get call walks into it, as ErrCorrupt.
func Load(path string, opts ...Option) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ctrie: loading packed buffer: %w", err)
	}

	cfg := dictConfig{variant: VariantVDCT}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dictionary{
		variant: cfg.variant,
		diag:    newDiagSink(cfg.logger),
		state:   stateCompiled,
		buf:     raw,
	}
	if cfg.variant == VariantVDCT {
		d.valueTableBase = 4
	}
	return d, nil
}
