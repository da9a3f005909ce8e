// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scandum/quadsort-go/internal/scratch"
)

func less(a, b int) bool { return a < b }

// permute calls fn with every permutation of a, leaving a restored to
// its original order once it returns.
func permute(a []int, fn func([]int)) {
	var rec func(k int)
	rec = func(k int) {
		if k == len(a) {
			fn(append([]int(nil), a...))
			return
		}
		for i := k; i < len(a); i++ {
			a[k], a[i] = a[i], a[k]
			rec(k + 1)
			a[k], a[i] = a[i], a[k]
		}
	}
	rec(0)
}

func TestTinySortAllPermutations(t *testing.T) {
	for n := 0; n <= 7; n++ {
		base := make([]int, n)
		for i := range base {
			base[i] = i
		}

		buf, err := scratch.New[int](7)
		require.NoError(t, err)

		count := 0
		permute(base, func(p []int) {
			count++
			want := append([]int(nil), p...)
			sort.Ints(want)

			got := append([]int(nil), p...)
			TinySort(got, buf, less)

			assert.Equal(t, want, got, "n=%d permutation=%v", n, p)
		})
	}
}

func TestCswap(t *testing.T) {
	a := []int{2, 1}
	cswap(a, less)
	assert.Equal(t, []int{1, 2}, a)

	b := []int{1, 2}
	cswap(b, less)
	assert.Equal(t, []int{1, 2}, b)
}
