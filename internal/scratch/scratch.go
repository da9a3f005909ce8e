// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scratch implements the typed auxiliary buffer shared by
// every merge and partition primitive in the quadsort/crumsort core.
//
// A slot is conceptually uninitialised until a value is moved into it
// and uninitialised again once the value is moved out. Go gives every
// type a zero value, so nothing here is required for memory safety,
// but the write-tracking still matters: it is the buffer's way of
// proving the "no T is constructed except by move from an existing
// element" invariant, and it catches a caller's logic error (a merge
// primitive reading a slot nobody wrote) as a panic rather than as a
// silently wrong sort.
package scratch

import "github.com/pkg/errors"

// Buffer is a call-local auxiliary region of T-sized slots. It is not
// safe for concurrent use; each sort call owns exactly one Buffer for
// its lifetime.
type Buffer[T any] struct {
	data    []T
	written []bool
}

// New allocates a Buffer with room for capacity elements. It returns
// an error rather than panicking when the allocation cannot be
// satisfied, so callers can surface quadsort.ErrScratchAlloc instead
// of crashing.
func New[T any](capacity int) (buf *Buffer[T], err error) {
	if capacity < 0 {
		return nil, errors.Errorf("scratch: negative capacity %d", capacity)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = errors.Errorf("scratch: allocation of %d elements failed: %v", capacity, r)
		}
	}()
	return &Buffer[T]{
		data:    make([]T, capacity),
		written: make([]bool, capacity),
	}, nil
}

// Len reports the buffer's fixed capacity.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Set moves v into slot i, marking it written.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
	b.written[i] = true
}

// Get reads slot i without releasing it. It panics if slot i was
// never written, since that indicates a bug in the calling merge
// primitive rather than a recoverable runtime condition.
func (b *Buffer[T]) Get(i int) T {
	if !b.written[i] {
		panic("scratch: read of unwritten slot")
	}
	return b.data[i]
}

// Take moves the value out of slot i, releasing it back to the
// uninitialised state, and returns it.
func (b *Buffer[T]) Take(i int) T {
	v := b.Get(i)
	var zero T
	b.data[i] = zero
	b.written[i] = false
	return v
}

// CopyIn bulk-moves src into slots [at, at+len(src)).
func (b *Buffer[T]) CopyIn(at int, src []T) {
	copy(b.data[at:at+len(src)], src)
	for i := at; i < at+len(src); i++ {
		b.written[i] = true
	}
}

// CopyOut bulk-moves slots [at, at+len(dst)) into dst, releasing them.
func (b *Buffer[T]) CopyOut(dst []T, at int) {
	for i := range dst {
		dst[i] = b.Take(at + i)
	}
}

// Slice exposes the raw backing slice for the [at, at+n) window. It is
// used by merge primitives that treat the scratch region as a plain
// ordinary slice (e.g. as the `from` side of a parity or cross merge);
// callers using Slice are responsible for the write-tracking
// invariant themselves, since a raw slice gives no way to enforce it.
func (b *Buffer[T]) Slice(at, n int) []T {
	return b.data[at : at+n]
}

// MarkWritten records that [at, at+n) of the underlying slice has been
// populated by a caller that used Slice for direct writes.
func (b *Buffer[T]) MarkWritten(at, n int) {
	for i := at; i < at+n; i++ {
		b.written[i] = true
	}
}

// MarkFree records that [at, at+n) is logically empty again, e.g.
// after a caller that used Slice moved the values back out.
func (b *Buffer[T]) MarkFree(at, n int) {
	for i := at; i < at+n; i++ {
		b.written[i] = false
	}
}
