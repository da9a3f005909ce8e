// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crumsort implements crumsort, an unstable partitioning sort
// built on the same merge primitives as the sibling quadsort package
// (github.com/scandum/quadsort-go). Where quadsort only ever merges,
// crumsort first analyses the input for existing order and, failing
// that, partitions around a sampled pivot before falling back to
// quadsort's merge ladder on whatever partitions remain small enough.
package crumsort

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/scandum/quadsort-go/internal/core"
	"github.com/scandum/quadsort-go/internal/scratch"
)

// Re-exported sentinel errors; see internal/core for their meaning.
var (
	ErrInvalidRange = core.ErrInvalidRange
	ErrZeroSwapSize = core.ErrZeroSwapSize
	ErrScratchAlloc = core.ErrScratchAlloc
)

// Sort sorts a in place using less as the ordering relation. less
// must implement a strict weak ordering. Sort is not stable: elements
// that compare equal may be reordered relative to each other, unlike
// the sibling quadsort.Sort.
func Sort[T any](a []T, less func(a, b T) bool, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxSwapSize <= 0 {
		return ErrZeroSwapSize
	}
	if len(a) < 2 {
		return nil
	}

	buf, err := scratch.New[T](len(a))
	if err != nil {
		return errors.Wrapf(ErrScratchAlloc, "crumsort: %v", err)
	}

	core.CrumAnalyze(a, buf, cfg.quadCache, cfg.logger, less)
	return nil
}

// SortOrdered is Sort specialised to cmp.Ordered types, for callers
// who don't need a custom comparator.
func SortOrdered[T cmp.Ordered](a []T, opts ...Option) error {
	return Sort(a, func(x, y T) bool { return x < y }, opts...)
}
