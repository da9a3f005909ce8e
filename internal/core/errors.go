// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/pkg/errors"

// Sentinel errors shared by the quadsort and crumsort public packages.
// Both re-export these as package-level vars so callers can use
// errors.Is without reaching into an internal package themselves.
var (
	// ErrInvalidRange denotes a malformed caller-supplied range. No
	// function in this module returns it; a negative max_swap_size is
	// reported as ErrZeroSwapSize.
	ErrInvalidRange = errors.New("quadsort: invalid range")

	// ErrZeroSwapSize is returned by crumsort when max_swap_size <= 0.
	// Per spec this is a caller-contract violation; it is reported
	// rather than silently defaulted so the mistake isn't masked.
	ErrZeroSwapSize = errors.New("quadsort: max_swap_size must be > 0")

	// ErrScratchAlloc is returned when the scratch buffer cannot be
	// allocated. The historical C implementation degrades silently to
	// a small stack buffer on allocator failure; this module instead
	// surfaces the failure through Go's idiomatic error channel and
	// leaves the input slice untouched.
	ErrScratchAlloc = errors.New("quadsort: scratch buffer allocation failed")
)
