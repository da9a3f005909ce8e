// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadsort

import (
	"cmp"

	"github.com/pkg/errors"

	"github.com/scandum/quadsort-go/internal/core"
	"github.com/scandum/quadsort-go/internal/scratch"
)

// Re-exported sentinel errors; see internal/core for their meaning.
// Callers compare against these with errors.Is.
var (
	ErrInvalidRange = core.ErrInvalidRange
	ErrScratchAlloc = core.ErrScratchAlloc
)

// Sort sorts a in place using less as the ordering relation. less
// must implement a strict weak ordering: less(x, x) must always be
// false, and less must never report both less(x, y) and less(y, x)
// true. Sort is stable: elements that compare equal keep their
// relative order, unlike the sibling crumsort.Sort.
func Sort[T any](a []T, less func(a, b T) bool) error {
	if len(a) < 2 {
		return nil
	}

	buf, err := scratch.New[T](len(a))
	if err != nil {
		return errors.Wrapf(ErrScratchAlloc, "%v", err)
	}

	if len(a) <= 7 {
		core.TinySort(a, buf, less)
		return nil
	}
	if core.QuadSwap(a, buf, less) {
		return nil
	}
	core.QuadMerge(a, buf, 32, less)
	return nil
}

// SortOrdered is Sort specialised to cmp.Ordered types, for callers
// who don't need a custom comparator.
func SortOrdered[T cmp.Ordered](a []T) error {
	return Sort(a, func(x, y T) bool { return x < y })
}
