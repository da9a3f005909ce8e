// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// TailMerge is the doubling merge driver for whatever width-sized
// runs QuadMerge's 4-block ladder didn't already absorb: it folds
// every adjacent pair of width-sized runs into a 2*width run, then
// doubles width and repeats until a single sorted run spans all of a.
// A trailing run shorter than width is folded into its left neighbour
// as a partial merge rather than stranded until the very end.
//
// mergeAdjacent supplies the per-pair work: an early-exit check for
// runs already in order, a wholesale-swap check for runs entirely on
// the wrong side of each other, and parityMerge/crossMerge for
// everything in between.
func TailMerge[T any](a []T, buf *scratch.Buffer[T], width int, less func(a, b T) bool) {
	for width < len(a) {
		mergePairs(a, buf, width, less)
		width *= 2
	}
}
