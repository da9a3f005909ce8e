// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParityMergeBalanced(t *testing.T) {
	cases := []struct {
		left, right []int
	}{
		{[]int{1, 3, 5}, []int{2, 4, 6}},
		{[]int{1, 3, 5}, []int{0, 4, 6, 7}},
		{[]int{}, []int{1, 2, 3}},
		{[]int{1, 2, 3}, []int{}},
		{[]int{1}, []int{2}},
		{[]int{2}, []int{2, 3}},
		{[]int{1, 1, 1}, []int{1, 1}},
	}

	for _, c := range cases {
		from := append(append([]int(nil), c.left...), c.right...)
		want := append([]int(nil), from...)
		sort.Ints(want)

		dest := make([]int, len(from))
		parityMerge(dest, from, len(c.left), len(c.right), less)

		assert.Equal(t, want, dest, "left=%v right=%v", c.left, c.right)
	}
}
