// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// parityMerge merges two adjacent runs from[0:left] and
// from[left:left+right] into dest, where left <= right <= left+1.
// It is the symmetric head-and-tail merge: one cursor pair advances
// from the heads writing dest forward, another pair advances from the
// tails writing dest backward, meeting in the middle. Every step is a
// single compare-and-select, matching the contract in spec §4.C; Go's
// compiler is trusted to predicate these selects rather than the code
// depending on it for correctness.
//
// dest must have length left+right and must not alias from.
func parityMerge[T any](dest, from []T, left, right int, less func(a, b T) bool) {
	if left == 0 {
		copy(dest, from[:right])
		return
	}
	if right == 0 {
		copy(dest, from[:left])
		return
	}

	li, ri := 0, left
	tli, tri := left-1, left+right-1
	di, ti := 0, left+right-1

	headStep := func() {
		if !less(from[ri], from[li]) {
			dest[di] = from[li]
			li++
		} else {
			dest[di] = from[ri]
			ri++
		}
		di++
	}
	tailStep := func() {
		if less(from[tri], from[tli]) {
			dest[ti] = from[tli]
			tli--
		} else {
			dest[ti] = from[tri]
			tri--
		}
		ti--
	}

	if left < right {
		headStep()
	}
	headStep()

	for n := left - 1; n > 0; n-- {
		headStep()
		tailStep()
	}

	if less(from[tri], from[tli]) {
		dest[ti] = from[tli]
	} else {
		dest[ti] = from[tri]
	}
}
