// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "golang.org/x/sys/cpu"

const (
	// QuadCache is the per-quadrant cache-residency threshold. When a
	// crumsort quadrant exceeds this element count, the analyser
	// routes to per-quadrant sorting instead of one large fulcrum
	// partition, trading a single large in-place partition for
	// several cache-resident ones.
	QuadCache = 262144

	// CrumOut is the partition cutoff at or below which
	// FulcrumPartition hands off to quadsort instead of recursing
	// further.
	CrumOut = 96

	// CrumAux is the default crumsort scratch capacity.
	CrumAux = 512

	// QuadsortScratchCap documents the point at which the original
	// quadsort switches its scratch buffer from "one slot per element"
	// to a shrinking, power-of-four-scaled buffer merged in chunks.
	// This port always allocates scratch proportional to the slice
	// being merged instead: chunked bounded-memory merging adds real
	// recursion-shaped complexity that is hard to hand-verify with
	// confidence without running it, so Sort trades peak memory for a
	// simpler, more obviously correct merge. See DESIGN.md.
	QuadsortScratchCap = 4194304
)

// RecommendedQuadCache derives a QuadCache-flavored hint from what
// golang.org/x/sys/cpu can report about this machine, in the same
// spirit as the teacher's CPU-feature probing for its rasterization
// fast paths (simd_amd64.go / simsys_amd64.go probe x/sys/cpu for SIMD
// support). Go has no portable L3-size query, so this is a coarse
// doubling of the documented default when wide vector support implies
// a larger cache hierarchy, not a precise measurement. crumsort's
// defaultConfig calls this directly, so every Sort call that doesn't
// pass WithQuadCache picks up this CPU-feature-derived value; pass
// WithQuadCache explicitly to pin a fixed value instead.
func RecommendedQuadCache() int {
	if cpu.X86.HasAVX512F {
		return QuadCache * 2
	}
	return QuadCache
}
