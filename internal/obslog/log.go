// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obslog carries the optional structured logger crumsort uses
// to narrate its analyser's routing decision; the fulcrum partition
// itself does not log.
// Nothing in quadsort or crumsort's sorting outcome depends on
// logging; a caller that never configures a logger gets zerolog's
// no-op sink and pays only the cost of a disabled level check.
package obslog

import (
	"io"

	"github.com/rs/zerolog"
)

// Nop is the default logger: every call is a cheap level-check no-op.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// New builds a logger writing to w at the given level, for callers
// that opt in via crumsort.WithLogger(w, level) instead of supplying
// their own zerolog.Logger.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
