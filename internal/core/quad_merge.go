// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// quadMergeBlock merges the four adjacent sorted blocks of width b in
// block (block[0:b], block[b:2b], block[2b:3b], block[3b:4b]) into a
// single sorted 4b run. It checks, before doing any real work,
// whether each half is already a single sorted run (last(q0) <=
// first(q1), last(q2) <= first(q3)): a half that already qualifies is
// copied into the scratch buffer as-is instead of being re-merged,
// and if both halves qualify and the two halves are themselves
// already in order, the whole group is left untouched. Otherwise the
// (up to two) halves needing real merge work are cross-merged into
// scratch, and a final cross-merge folds the two now-ready 2b halves
// back into block.
func quadMergeBlock[T any](block []T, buf *scratch.Buffer[T], b int, less func(a, b T) bool) {
	leftSorted := !less(block[b], block[b-1])
	rightSorted := !less(block[3*b], block[3*b-1])

	switch {
	case leftSorted && rightSorted:
		if !less(block[2*b], block[2*b-1]) {
			return
		}
		buf.CopyIn(0, block[:4*b])
	case leftSorted:
		buf.CopyIn(0, block[:2*b])
		crossMerge(buf.Slice(2*b, 2*b), block[2*b:4*b], b, b, less)
		buf.MarkWritten(2*b, 2*b)
	case rightSorted:
		crossMerge(buf.Slice(0, 2*b), block[:2*b], b, b, less)
		buf.MarkWritten(0, 2*b)
		buf.CopyIn(2*b, block[2*b:4*b])
	default:
		crossMerge(buf.Slice(0, 2*b), block[:2*b], b, b, less)
		buf.MarkWritten(0, 2*b)
		crossMerge(buf.Slice(2*b, 2*b), block[2*b:4*b], b, b, less)
		buf.MarkWritten(2*b, 2*b)
	}

	crossMerge(block[:4*b], buf.Slice(0, 4*b), 2*b, 2*b, less)
	buf.MarkFree(0, 4*b)
}

// QuadMerge drives the merge ladder above QuadSwap's output (spec
// §4.F). QuadSwap leaves a covered by sorted runs of at most 32
// elements; starting at that width, QuadMerge runs quadMergeBlock over
// every aligned group of four adjacent width-sized blocks and folds
// the leftover tail shorter than one group into a single run with
// TailMerge, then quadruples width (four b-blocks become one 4b block
// for the next pass) and repeats, until there's no longer a full group
// of four left to fold. TailMerge then doubles its way through
// whatever width-sized runs remain, including the final partial group
// the ladder couldn't align.
func QuadMerge[T any](a []T, buf *scratch.Buffer[T], width int, less func(a, b T) bool) {
	n := len(a)
	b := width
	for 4*b <= n && 4*b <= buf.Len() {
		i := 0
		for ; i+4*b <= n; i += 4 * b {
			quadMergeBlock(a[i:i+4*b], buf, b, less)
		}
		TailMerge(a[i:], buf, b, less)
		b *= 4
	}
	TailMerge(a, buf, b, less)
}
