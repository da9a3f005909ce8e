// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// crossMerge merges two adjacent runs from[0:left] and
// from[left:left+right] into dest. It fast-paths two situations
// before falling back to a scalar merge:
//
//   - near-equal-length runs (left <= right <= left+1, both >= 32)
//     whose extremes probe as overlapping only at the boundary delegate
//     straight to parityMerge.
//   - otherwise, whenever the next 8 elements on one side are all
//     dominated by the current head/tail of the other side, those 8
//     are bulk-copied in one shot instead of merged element by
//     element.
//
// dest must have length left+right and must not alias from.
func crossMerge[T any](dest, from []T, left, right int, less func(a, b T) bool) {
	if left == 0 {
		copy(dest, from[left:left+right])
		return
	}
	if right == 0 {
		copy(dest, from[:left])
		return
	}

	if left+1 >= right && right >= left && left >= 32 {
		if less(from[left], from[15]) &&
			!less(from[left+15], from[0]) &&
			less(from[left+right-1-15], from[left-1]) &&
			!less(from[left+right-1], from[left-1-15]) {
			parityMerge(dest, from, left, right, less)
			return
		}
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

	for ti-di+1 >= 16 {
		advanced := false

		if tli-li > 8 {
			if !less(from[ri], from[li+7]) {
				copy(dest[di:di+8], from[li:li+8])
				di += 8
				li += 8
				advanced = true
			} else if less(from[tri], from[tli-7]) {
				copy(dest[ti-7:ti+1], from[tli-7:tli+1])
				ti -= 8
				tli -= 8
				advanced = true
			}
		}
		if !advanced && tri-ri > 8 {
			if less(from[ri+7], from[li]) {
				copy(dest[di:di+8], from[ri:ri+8])
				di += 8
				ri += 8
				advanced = true
			} else if !less(from[tri-7], from[tli]) {
				copy(dest[ti-7:ti+1], from[tri-7:tri+1])
				ti -= 8
				tri -= 8
				advanced = true
			}
		}
		if advanced {
			continue
		}
		if li <= tli && ri <= tri {
			headStep()
			tailStep()
			continue
		}
		break
	}

	for li <= tli && ri <= tri {
		headStep()
	}
	for li <= tli {
		dest[di] = from[li]
		li++
		di++
	}
	for ri <= tri {
		dest[di] = from[ri]
		ri++
		di++
	}
}

// mergeAdjacent merges the two adjacent sorted runs block[0:left] and
// block[left:left+right] in place via buf. It takes the two boundary
// fast paths quadsort itself takes -- a run already in order, or one
// entirely dominated by the other, needs no element-wise merge at all
// -- before picking parityMerge for near-equal runs or crossMerge for
// the general case.
func mergeAdjacent[T any](block []T, buf *scratch.Buffer[T], left, right int, less func(a, b T) bool) {
	if !less(block[left], block[left-1]) {
		return
	}
	if less(block[left+right-1], block[0]) {
		buf.CopyIn(0, block[:left])
		copy(block[:right], block[left:left+right])
		buf.CopyOut(block[right:], 0)
		return
	}

	buf.CopyIn(0, block)
	if left <= right && right <= left+1 {
		parityMerge(block, buf.Slice(0, left+right), left, right, less)
	} else {
		crossMerge(block, buf.Slice(0, left+right), left, right, less)
	}
	buf.MarkFree(0, left+right)
}
