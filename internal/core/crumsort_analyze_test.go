// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scandum/quadsort-go/internal/obslog"
	"github.com/scandum/quadsort-go/internal/scratch"
)

func TestCrumAnalyzeBelowCrumOut(t *testing.T) {
	n := 50
	a := make([]int, n)
	for i := range a {
		a[i] = n - i
	}
	want := append([]int(nil), a...)
	sort.Ints(want)

	buf, err := scratch.New[int](n)
	require.NoError(t, err)

	CrumAnalyze(a, buf, QuadCache, obslog.Nop(), less)
	assert.Equal(t, want, a)
}

func TestCrumAnalyzeAlreadySorted(t *testing.T) {
	n := 400
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	want := append([]int(nil), a...)

	buf, err := scratch.New[int](n)
	require.NoError(t, err)

	CrumAnalyze(a, buf, QuadCache, obslog.Nop(), less)
	assert.Equal(t, want, a)
}

func TestCrumAnalyzeQuadrantsSortedRotateMerge(t *testing.T) {
	n := 400
	a := make([]int, n)
	quarter := n / 4
	for q := 0; q < 4; q++ {
		for i := 0; i < quarter; i++ {
			a[q*quarter+i] = i*4 + q
		}
	}
	want := append([]int(nil), a...)
	sort.Ints(want)

	buf, err := scratch.New[int](n)
	require.NoError(t, err)

	CrumAnalyze(a, buf, QuadCache, obslog.Nop(), less)
	assert.Equal(t, want, a)
}

func TestCrumAnalyzePerQuadrantPartitionAboveQuadCache(t *testing.T) {
	r := rand.New(rand.NewSource(41))
	n := 800
	a := make([]int, n)
	for i := range a {
		a[i] = r.Intn(500)
	}
	want := append([]int(nil), a...)
	sort.Ints(want)

	buf, err := scratch.New[int](n)
	require.NoError(t, err)

	// An artificially tiny quadCache forces the per-quadrant branch
	// even on this small slice.
	CrumAnalyze(a, buf, 10, obslog.Nop(), less)
	assert.Equal(t, want, a)
}

func TestCrumAnalyzeRandomDefault(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(2000)
		a := make([]int, n)
		for i := range a {
			a[i] = r.Intn(300)
		}
		want := append([]int(nil), a...)
		sort.Ints(want)

		buf, err := scratch.New[int](n)
		require.NoError(t, err)

		CrumAnalyze(a, buf, QuadCache, obslog.Nop(), less)
		assert.Equal(t, want, a, "n=%d", n)
	}
}

func TestCrumAnalyzeWithLoggerDoesNotPanic(t *testing.T) {
	logger := zerolog.Nop()
	a := []int{3, 1, 2}
	buf, err := scratch.New[int](3)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		CrumAnalyze(a, buf, QuadCache, logger, less)
	})
	assert.Equal(t, []int{1, 2, 3}, a)
}
