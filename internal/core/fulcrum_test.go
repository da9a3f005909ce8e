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

func TestMedianOf3(t *testing.T) {
	assert.Equal(t, 2, medianOf3(1, 2, 3, less))
	assert.Equal(t, 2, medianOf3(3, 2, 1, less))
	assert.Equal(t, 2, medianOf3(2, 3, 1, less))
	assert.Equal(t, 5, medianOf3(5, 5, 5, less))
}

func TestSelectPivotScalesWithSize(t *testing.T) {
	buf, err := scratch.New[int](4096)
	require.NoError(t, err)

	small := make([]int, 10)
	for i := range small {
		small[i] = i
	}
	assert.Equal(t, small[5], selectPivot(small, buf, less))

	medium := make([]int, 200)
	for i := range medium {
		medium[i] = i
	}
	p := selectPivot(medium, buf, less)
	assert.GreaterOrEqual(t, p, 0)
	assert.Less(t, p, 200)

	large := make([]int, 4096)
	for i := range large {
		large[i] = i
	}
	p = selectPivot(large, buf, less)
	assert.GreaterOrEqual(t, p, 0)
	assert.Less(t, p, 4096)
}

func TestFulcrumDefaultPartition(t *testing.T) {
	a := []int{5, 1, 8, 2, 9, 3, 7, 4, 6}
	split := fulcrumDefaultPartition(a, 5, less)

	for _, v := range a[:split] {
		assert.Less(t, v, 5)
	}
	for _, v := range a[split:] {
		assert.GreaterOrEqual(t, v, 5)
	}
}

func TestFulcrumReversePartition(t *testing.T) {
	a := []int{5, 1, 5, 2, 5, 3, 5, 4, 5}
	split := fulcrumReversePartition(a, 5, less)

	for _, v := range a[:split] {
		assert.LessOrEqual(t, v, 5)
	}
	for _, v := range a[split:] {
		assert.Greater(t, v, 5)
	}
}

func TestFulcrumPartitionRandom(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	for trial := 0; trial < 100; trial++ {
		n := r.Intn(1000)
		a := make([]int, n)
		for i := range a {
			a[i] = r.Intn(50)
		}
		want := append([]int(nil), a...)
		sort.Ints(want)

		buf, err := scratch.New[int](n)
		require.NoError(t, err)

		FulcrumPartition(a, buf, less)
		assert.Equal(t, want, a, "n=%d", n)
	}
}

func TestFulcrumPartitionAllDuplicates(t *testing.T) {
	n := 500
	a := make([]int, n)
	for i := range a {
		a[i] = 7
	}

	buf, err := scratch.New[int](n)
	require.NoError(t, err)

	FulcrumPartition(a, buf, less)
	for _, v := range a {
		assert.Equal(t, 7, v)
	}
}
