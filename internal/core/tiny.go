// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// cswap conditionally swaps a[0] and a[1] so that a[0] is never
// greater than a[1], in a single compare. It is the building block
// every tiny-sort network below is made of.
func cswap[T any](a []T, less func(a, b T) bool) {
	if less(a[1], a[0]) {
		a[0], a[1] = a[1], a[0]
	}
}

// TinySort dispatches to one of the hard-coded small sorts for
// 0 <= len(a) <= 7. It is the base case every larger merge eventually
// bottoms out into.
func TinySort[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	switch len(a) {
	case 0, 1:
		return
	case 2:
		cswap(a, less)
	case 3:
		sortThree(a, less)
	case 4:
		sortFour(a, less)
	case 5:
		sortFive(a, less)
	case 6:
		sortSix(a, buf, less)
	case 7:
		sortSeven(a, buf, less)
	}
}

func sortThree[T any](a []T, less func(a, b T) bool) {
	cswap(a[0:2], less)
	cswap(a[1:3], less)
	cswap(a[0:2], less)
}

// sortFour sorts with two parallel pair swaps, then fixes the middle:
// 3 compares when the two pairs are already in order, 6 otherwise. It
// is not comparison-optimal; the worst case is one compare above the
// minimum of 5.
func sortFour[T any](a []T, less func(a, b T) bool) {
	cswap(a[0:2], less)
	cswap(a[2:4], less)

	if less(a[2], a[1]) {
		a[1], a[2] = a[2], a[1]
		cswap(a[0:2], less)
		cswap(a[2:4], less)
		cswap(a[1:3], less)
	}
}

// sortFive short-circuits after the first pass when it already proved
// the first four elements sorted and the fifth belongs at the end,
// keeping the common case at 4 compares.
func sortFive[T any](a []T, less func(a, b T) bool) {
	sortFour(a[0:4], less)
	// a[0:4] is sorted ascending regardless of which swaps fired above.

	if !less(a[4], a[3]) {
		return
	}

	// Insert a[4] into the sorted a[0:4].
	v := a[4]
	i := 3
	for i >= 0 && less(v, a[i]) {
		a[i+1] = a[i]
		i--
	}
	a[i+1] = v
}

// sortSix stages the 3+3 split into buf and drains with a parity
// merge; sortSeven is the 3+4 analogue.
func sortSix[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	sortThree(a[0:3], less)
	sortThree(a[3:6], less)

	buf.CopyIn(0, a)
	parityMerge(a, buf.Slice(0, 6), 3, 3, less)
	buf.MarkFree(0, 6)
}

func sortSeven[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	sortThree(a[0:3], less)
	sortFour(a[3:7], less)

	buf.CopyIn(0, a)
	parityMerge(a, buf.Slice(0, 7), 3, 4, less)
	buf.MarkFree(0, 7)
}
