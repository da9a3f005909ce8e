// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crumsort

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/scandum/quadsort-go/internal/core"
	"github.com/scandum/quadsort-go/internal/obslog"
)

type config struct {
	maxSwapSize int
	quadCache   int
	logger      zerolog.Logger
}

func defaultConfig() config {
	return config{
		maxSwapSize: core.CrumAux,
		quadCache:   core.RecommendedQuadCache(),
		logger:      obslog.Nop(),
	}
}

// Option configures a single call to Sort.
type Option func(*config)

// WithMaxSwapSize matches the original's max_swap_size tunable: it
// must be greater than zero, and Sort returns ErrZeroSwapSize
// otherwise. The default, matching CRUM_AUX, is 512. Unlike the
// original, this port always sizes its actual scratch allocation to
// the slice being sorted rather than capping it at max_swap_size and
// merging in bounded chunks -- see internal/core's QuadsortScratchCap
// doc comment and DESIGN.md for why that memory-bounding behavior was
// simplified away. The value is only validated; it has no other
// effect on the sort. The option is kept for API fidelity with the
// original's interface.
func WithMaxSwapSize(n int) Option {
	return func(c *config) { c.maxSwapSize = n }
}

// WithQuadCache overrides the per-quadrant cache-residency threshold
// the analyser uses to decide between one large fulcrum partition and
// four independent, cache-resident ones. The default already comes
// from internal/core.RecommendedQuadCache, which doubles the
// documented QuadCache constant on machines x/sys/cpu reports wide
// AVX-512 support on; call WithQuadCache to pin a specific value
// instead of that CPU-feature-derived default.
func WithQuadCache(n int) Option {
	return func(c *config) { c.quadCache = n }
}

// WithLogger opts into structured logging of the analyser's routing
// decision, written to w at level: one debug record per Sort call
// naming the route taken, including a hand-off to the fulcrum
// partition. The fulcrum partition's own pivot selection and
// recursion are not logged.
func WithLogger(w io.Writer, level zerolog.Level) Option {
	return func(c *config) { c.logger = obslog.New(w, level) }
}
