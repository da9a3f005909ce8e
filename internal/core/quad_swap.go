// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// QuadReversal reverses a in place. quadsort reaches for it whenever a
// run is discovered to be strictly descending: reversing is cheaper
// than merging when no merge is actually needed. Reversal is not a
// stable transform in general, but quadsort and crumsort only apply it
// to strictly descending runs, which hold no equal elements, so
// quadsort's stability is unaffected.
func QuadReversal[T any](a []T) {
	i, j := 0, len(a)-1
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// IsStrictlyDescending reports whether a is sorted in strictly
// decreasing order, i.e. reversing it yields an ascending sort.
func IsStrictlyDescending[T any](a []T, less func(a, b T) bool) bool {
	for i := 1; i < len(a); i++ {
		if !less(a[i], a[i-1]) {
			return false
		}
	}
	return true
}

// QuadSwap builds sorted runs of up to 32 elements across a (spec
// §4.E). It reports whether the whole of a collapsed into a single
// strictly descending run, in which case a has already been left
// fully sorted by QuadReversal and the caller's merge ladder can be
// skipped entirely.
func QuadSwap[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) bool {
	if len(a) < 2 {
		return true
	}
	if IsStrictlyDescending(a, less) {
		QuadReversal(a)
		return true
	}

	buildEightBlocks(a, buf, less)

	for width := 8; width < len(a) && width < 32; width *= 2 {
		mergePairs(a, buf, width, less)
	}
	return false
}

// buildEightBlocks scans a in 8-element windows, classifying each one
// from its comparison pattern instead of always paying for a full
// merge: a window that is already sorted, or one that is strictly
// descending, needs no element movement beyond an eventual reversal;
// only a genuinely mixed window pays for quadSwapMerge's two-pair-
// then-four-pair parity merge. Consecutive strictly descending
// windows that stay strictly descending across their shared boundary
// accumulate into one run and are reversed together the moment the
// streak breaks, so a long reversed stretch anywhere in a -- not just
// a fully reversed whole array -- gets the cheap treatment. The final
// len(a)%8 elements, too short for a full window, are handed to
// TinySort once the windowed pass is done.
func buildEightBlocks[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	n := len(a) - len(a)%8
	reverseStart := -1

	flushReversed := func(end int) {
		if reverseStart >= 0 {
			QuadReversal(a[reverseStart:end])
			reverseStart = -1
		}
	}

	for i := 0; i < n; i += 8 {
		w := a[i : i+8]
		switch {
		case isSorted(w, less):
			flushReversed(i)
		case IsStrictlyDescending(w, less):
			if reverseStart >= 0 && !less(a[i], a[i-1]) {
				flushReversed(i)
			}
			if reverseStart < 0 {
				reverseStart = i
			}
		default:
			flushReversed(i)
			quadSwapMerge(w, buf, less)
		}
	}
	flushReversed(n)

	if rem := len(a) - n; rem > 0 {
		TinySort(a[n:], buf, less)
	}
}

// quadSwapMerge sorts an 8-element window whose comparison pattern
// wasn't already classified as sorted or strictly descending: each of
// the four adjacent pairs is compare-swapped into order, the
// resulting pairs are merged 2+2 into two sorted runs of four via buf,
// and those two runs are merged 4+4 into the final sorted eight.
func quadSwapMerge[T any](w []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	cswap(w[0:2], less)
	cswap(w[2:4], less)
	cswap(w[4:6], less)
	cswap(w[6:8], less)

	buf.CopyIn(0, w)
	parityMerge(w[0:4], buf.Slice(0, 4), 2, 2, less)
	parityMerge(w[4:8], buf.Slice(4, 4), 2, 2, less)
	buf.MarkFree(0, 8)

	buf.CopyIn(0, w)
	parityMerge(w, buf.Slice(0, 8), 4, 4, less)
	buf.MarkFree(0, 8)
}

// mergePairs merges every adjacent pair of sorted width-sized runs in
// a into a sorted 2*width run, using buf as working space. A trailing
// run shorter than width is left untouched for the caller's merge
// ladder to absorb later.
func mergePairs[T any](a []T, buf *scratch.Buffer[T], width int, less func(a, b T) bool) {
	n := len(a)
	pair := width * 2

	i := 0
	for ; i+pair <= n; i += pair {
		mergeAdjacent(a[i:i+pair], buf, width, width, less)
	}
	if rem := n - i; rem > width {
		mergeAdjacent(a[i:n], buf, width, rem-width, less)
	}
}
