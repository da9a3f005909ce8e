// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/scandum/quadsort-go/internal/scratch"

// medianOf3 returns whichever of x, y, z sorts in the middle.
func medianOf3[T any](x, y, z T, less func(a, b T) bool) T {
	if less(x, y) {
		if less(y, z) {
			return y
		}
		if less(x, z) {
			return z
		}
		return x
	}
	if less(x, z) {
		return x
	}
	if less(y, z) {
		return z
	}
	return y
}

// crumMedianOfThree samples a's first, middle, and last element.
func crumMedianOfThree[T any](a []T, less func(a, b T) bool) T {
	return medianOf3(a[0], a[len(a)/2], a[len(a)-1], less)
}

// crumMedianOfNine samples nine evenly spaced elements and returns the
// median of three medians-of-three: a cheap approximation to the true
// median that resists adversarial orderings far better than a single
// median-of-three, at the cost of a handful of extra compares.
func crumMedianOfNine[T any](a []T, less func(a, b T) bool) T {
	step := len(a) / 9
	m1 := medianOf3(a[0*step], a[1*step], a[2*step], less)
	m2 := medianOf3(a[3*step], a[4*step], a[5*step], less)
	m3 := medianOf3(a[6*step], a[7*step], a[8*step], less)
	return medianOf3(m1, m2, m3, less)
}

// crumMedianOfCbrt extends crumMedianOfNine's idea to very large
// inputs: it samples roughly the cube root of len(a) candidates
// (capped at 127 and rounded to an odd count), sorts that small sample
// with quadsortSmall, and returns its middle element. The
// sample stays cheap to compute even as len(a) grows into the
// millions.
func crumMedianOfCbrt[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) T {
	n := len(a)
	count := 1
	for count*count*count < n && count < 127 {
		count++
	}
	if count%2 == 0 {
		count++
	}

	step := n / count
	sample := make([]T, count)
	for i := 0; i < count; i++ {
		sample[i] = a[i*step]
	}
	quadsortSmall(sample, buf, less)
	return sample[count/2]
}

// selectPivot picks a pivot-selection strategy scaled to len(a): a
// plain median-of-three is cheap enough for small partitions, nine
// samples buys resilience against adversarial orderings once
// recursion depth matters, and the cube-root sample keeps pivot
// selection itself from becoming the bottleneck on huge inputs.
func selectPivot[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) T {
	switch {
	case len(a) > 2048:
		return crumMedianOfCbrt(a, buf, less)
	case len(a) > 128:
		return crumMedianOfNine(a, less)
	default:
		return crumMedianOfThree(a, less)
	}
}

// fulcrumDefaultPartition partitions a around pivot, moving every
// element less than pivot to the front. It returns the count of
// elements placed in front, i.e. the split point.
func fulcrumDefaultPartition[T any](a []T, pivot T, less func(a, b T) bool) int {
	i, j := 0, len(a)-1
	for i <= j {
		for i <= j && less(a[i], pivot) {
			i++
		}
		for i <= j && !less(a[j], pivot) {
			j--
		}
		if i < j {
			a[i], a[j] = a[j], a[i]
			i++
			j--
		}
	}
	return i
}

// fulcrumReversePartition partitions a around pivot using a <=
// boundary instead of fulcrumDefaultPartition's strict <, grouping
// elements equal to pivot to the front instead of the back. crumsort
// reaches for this variant when the sampled pivot looks like it may
// recur heavily in a, so a run of duplicates doesn't all pile up on
// the same side of the split.
func fulcrumReversePartition[T any](a []T, pivot T, less func(a, b T) bool) int {
	i, j := 0, len(a)-1
	for i <= j {
		for i <= j && !less(pivot, a[i]) {
			i++
		}
		for i <= j && less(pivot, a[j]) {
			j--
		}
		if i < j {
			a[i], a[j] = a[j], a[i]
			i++
			j--
		}
	}
	return i
}

// FulcrumPartition is crumsort's partition-and-recurse driver: pick a
// pivot, partition around it, recurse into the smaller side (bounding
// recursion depth at O(log n)), and loop in place over the larger side
// instead of recursing into it. Partitions at or below CrumOut, and
// any partition a pivot fails to actually split, fall back to
// quadsortSmall -- the degenerate case (the pivot was the smallest
// element under fulcrumDefaultPartition, or the largest under
// fulcrumReversePartition) is treated as a signal to stop trying to
// partition, not as a cue to retry with the other partition variant.
func FulcrumPartition[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	for len(a) > CrumOut {
		pivot := selectPivot(a, buf, less)

		var split int
		if !less(a[0], pivot) && !less(pivot, a[0]) {
			split = fulcrumReversePartition(a, pivot, less)
		} else {
			split = fulcrumDefaultPartition(a, pivot, less)
		}

		if split == 0 || split == len(a) {
			quadsortSmall(a, buf, less)
			return
		}

		left, right := a[:split], a[split:]
		if len(left) < len(right) {
			FulcrumPartition(left, buf, less)
			a = right
		} else {
			FulcrumPartition(right, buf, less)
			a = left
		}
	}
	quadsortSmall(a, buf, less)
}

// quadsortSmall runs the quadsort merge ladder over a, for use as
// crumsort's base case and its degenerate-partition fallback. It is
// the same shape as the public quadsort entry point, duplicated here
// rather than imported back from the quadsort package to keep core
// free of a dependency on its own callers.
func quadsortSmall[T any](a []T, buf *scratch.Buffer[T], less func(a, b T) bool) {
	if len(a) <= 7 {
		TinySort(a, buf, less)
		return
	}
	if QuadSwap(a, buf, less) {
		return
	}
	QuadMerge(a, buf, 32, less)
}
