// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/rs/zerolog"

	"github.com/scandum/quadsort-go/internal/scratch"
)

// isSorted reports whether a is sorted in non-decreasing order.
func isSorted[T any](a []T, less func(a, b T) bool) bool {
	for i := 1; i < len(a); i++ {
		if less(a[i], a[i-1]) {
			return false
		}
	}
	return true
}

// CrumAnalyze is crumsort's entry analyser. It looks for already
// sorted or reversed structure before ever committing to the cost of
// a fulcrum partition: a is split into four roughly equal quadrants,
// each quadrant that is strictly descending is reversed in place for
// free, and only once that's done does CrumAnalyze decide whether the
// whole of a is already one sorted run, close enough to sorted that a
// RotateMerge sweep will finish the job cheaply, or disordered enough
// to need FulcrumPartition after all.
//
// quadCache is the per-quadrant size threshold: when a quadrant holds
// more than quadCache elements, each quadrant is partitioned independently (keeping
// every individual partition's working set cache-resident) and the
// four results are stitched back together with RotateMerge, instead
// of handing the whole of a to one large partition.
//
// log receives a debug-level record of which route was taken; callers
// that never configure a logger pay only the cost of a disabled level
// check (see internal/obslog).
func CrumAnalyze[T any](a []T, buf *scratch.Buffer[T], quadCache int, log zerolog.Logger, less func(a, b T) bool) {
	n := len(a)
	if n <= CrumOut {
		log.Debug().Int("n", n).Msg("crumsort: below CrumOut, quadsort fallback")
		quadsortSmall(a, buf, less)
		return
	}

	quarter := n / 4
	bounds := [5]int{0, quarter, quarter * 2, quarter * 3, n}

	quadrantsSorted := true
	for q := 0; q < 4; q++ {
		span := a[bounds[q]:bounds[q+1]]
		switch {
		case IsStrictlyDescending(span, less):
			QuadReversal(span)
		case !isSorted(span, less):
			quadrantsSorted = false
		}
	}

	joinsSorted := isSorted(a[bounds[1]-1:bounds[1]+1], less) &&
		isSorted(a[bounds[2]-1:bounds[2]+1], less) &&
		isSorted(a[bounds[3]-1:bounds[3]+1], less)

	switch {
	case quadrantsSorted && joinsSorted:
		log.Debug().Int("n", n).Msg("crumsort: already fully sorted")
	case quadrantsSorted:
		log.Debug().Int("n", n).Msg("crumsort: quadrants sorted, rotate-merge sweep")
		RotateMerge(a, buf, quarter, less)
	case quarter > quadCache:
		log.Debug().Int("n", n).Int("quad_cache", quadCache).
			Msg("crumsort: above quad cache, per-quadrant partition")
		for q := 0; q < 4; q++ {
			FulcrumPartition(a[bounds[q]:bounds[q+1]], buf, less)
		}
		RotateMerge(a, buf, quarter, less)
	default:
		log.Debug().Int("n", n).Msg("crumsort: fulcrum partition")
		FulcrumPartition(a, buf, less)
	}
}
