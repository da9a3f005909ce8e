// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scandum/quadsort-go/internal/scratch"
)

func TestQuadReversal(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	QuadReversal(a)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, a)

	b := []int{}
	QuadReversal(b)
	assert.Equal(t, []int{}, b)

	c := []int{1}
	QuadReversal(c)
	assert.Equal(t, []int{1}, c)
}

func TestIsStrictlyDescending(t *testing.T) {
	assert.True(t, IsStrictlyDescending([]int{5, 4, 3, 2, 1}, less))
	assert.False(t, IsStrictlyDescending([]int{5, 4, 4, 2, 1}, less))
	assert.False(t, IsStrictlyDescending([]int{1, 2, 3}, less))
	assert.True(t, IsStrictlyDescending([]int{1}, less))
	assert.True(t, IsStrictlyDescending([]int{}, less))
}

func TestQuadSwapStrictlyDescendingShortCircuit(t *testing.T) {
	buf, err := scratch.New[int](40)
	require.NoError(t, err)

	a := make([]int, 40)
	for i := range a {
		a[i] = 40 - i
	}
	done := QuadSwap(a, buf, less)
	assert.True(t, done)

	want := make([]int, 40)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, a)
}

func TestQuadSwapRandom(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		n := r.Intn(100)
		a := make([]int, n)
		for i := range a {
			a[i] = r.Intn(30)
		}
		want := append([]int(nil), a...)
		sort.Ints(want)

		buf, err := scratch.New[int](n)
		require.NoError(t, err)

		QuadSwap(a, buf, less)

		for width := 32; width < n; width *= 2 {
			mergePairs(a, buf, width, less)
		}

		assert.Equal(t, want, a, "n=%d", n)
	}
}

func TestMergePairs(t *testing.T) {
	buf, err := scratch.New[int](16)
	require.NoError(t, err)

	a := []int{1, 3, 5, 7, 2, 4, 6, 8, 10, 12, 14, 16, 9, 11, 13, 15}
	mergePairs(a, buf, 4, less)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, a)
}
