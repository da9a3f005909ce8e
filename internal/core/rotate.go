// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// reverseSlice reverses a in place.
func reverseSlice[T any](a []T) {
	i, j := 0, len(a)-1
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// TrinityRotation swaps the two adjacent blocks a[:mid] and a[mid:]
// in place, picking whichever of three strategies fits: copy the
// smaller block out to buf and shift the larger one down, or -- when
// neither block fits in buf -- fall back to the classic
// reverse-reverse-reverse rotation, which is always correct and needs
// no scratch space at all.
func TrinityRotation[T any](a []T, buf *scratch.Buffer[T], mid int) {
	left, right := mid, len(a)-mid
	if left == 0 || right == 0 {
		return
	}

	switch {
	case left <= right && left <= buf.Len():
		buf.CopyIn(0, a[:left])
		copy(a[:right], a[left:])
		buf.CopyOut(a[right:], 0)
	case right < left && right <= buf.Len():
		buf.CopyIn(0, a[left:])
		copy(a[right:], a[:left])
		buf.CopyOut(a[:right], 0)
	default:
		reverseSlice(a[:left])
		reverseSlice(a[left:])
		reverseSlice(a)
	}
}

// MonoboundBinaryFirst returns the index of the first element in a
// that is not less than value, i.e. the position value would be
// inserted at to keep a sorted while preferring to land before any
// equal element already present.
func MonoboundBinaryFirst[T any](a []T, value T, less func(a, b T) bool) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(a[mid], value) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// RotateMergeBlock merges the two adjacent sorted runs a[:left] and
// a[left:left+right] under the assumption that they are already
// mostly in relative order: it uses MonoboundBinaryFirst to narrow
// the actual out-of-order boundary to the smallest possible window --
// everything in the left run already below the right run's minimum,
// and everything in the right run already above the left run's
// maximum, is left untouched -- and only merges that narrow window.
func RotateMergeBlock[T any](a []T, buf *scratch.Buffer[T], left, right int, less func(a, b T) bool) {
	if left == 0 || right == 0 {
		return
	}
	if !less(a[left], a[left-1]) {
		return
	}

	lo := MonoboundBinaryFirst(a[:left], a[left], less)
	hi := MonoboundBinaryFirst(a[left:left+right], a[left-1], less)

	mergeAdjacent(a[lo:left+hi], buf, left-lo, hi, less)
}

// RotateMerge is the RotateMergeBlock analogue of QuadMerge: it folds
// adjacent width-sized runs together, doubling width each pass, until
// a single run spans all of a. Callers reach for it instead of
// QuadMerge when the input is known to already be close to sorted, so
// the binary-search-narrowed merge window in RotateMergeBlock pays for
// itself.
func RotateMerge[T any](a []T, buf *scratch.Buffer[T], width int, less func(a, b T) bool) {
	n := len(a)
	for w := width; w < n; w *= 2 {
		pair := w * 2
		i := 0
		for ; i+pair <= n; i += pair {
			RotateMergeBlock(a[i:i+pair], buf, w, w, less)
		}
		if rem := n - i; rem > w {
			RotateMergeBlock(a[i:n], buf, w, rem-w, less)
		}
	}
}
