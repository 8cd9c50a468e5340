// Copyright (c) 2026 The ctrie Authors
// SPDX-License-Identifier: MIT

package ctrie

import kitlog "github.com/go-kit/log"

// diagSink emits structured compile-time diagnostics. Lookups never touch
// it — spec §5/§9 require Get to stay allocation- and I/O-free so that a
// single compiled buffer can back many concurrent readers without
// contention.
type diagSink struct {
	logger kitlog.Logger
}

func newDiagSink(logger kitlog.Logger) diagSink {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return diagSink{logger: logger}
}

func (d diagSink) log(keyvals ...interface{}) {
	_ = d.logger.Log(keyvals...)
}
