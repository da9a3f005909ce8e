// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quadsort implements quadsort, a four-way branchless merge
// sort, for contiguous random-access sequences of arbitrary element
// type.
//
// The algorithm itself -- a typed scratch buffer, a parity merge of
// equal-length runs, a cross merge that fast-paths long monotone
// stretches, a quad-swap block builder that produces 32-element
// sorted runs, and a power-of-four bottom-up merge ladder -- lives in
// internal/core, shared with the sibling crumsort package
// (github.com/scandum/quadsort-go/crumsort), which adds an analyser
// and a branchless fulcrum partition on top of the same primitives.
package quadsort
