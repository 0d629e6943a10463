/*
Package alloc provides backing-storage allocators for contiguous containers.

A vmap.Map requests one slice for all of its entries and grows it in
amortized steps. On constrained targets the allocation strategy matters more
than on servers, so the strategy is an injected collaborator rather than a
hidden call to make: containers accept any Allocator per instance, without
global state.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package alloc

// Allocator hands out contiguous storage for container entries.
//
// Allocate returns a slice with length 0 and capacity of at least n elements.
// Release gives storage obtained from Allocate back to the allocator; the
// caller must not use the slice afterwards.
type Allocator[T any] interface {
	Allocate(n int) []T
	Release(buf []T)
}

// Heap allocates from the Go heap and leaves reclamation to the garbage
// collector. It is the default allocator for maps.
type Heap[T any] struct{}

// Allocate returns a fresh zero-length slice with capacity n.
func (Heap[T]) Allocate(n int) []T { return make([]T, 0, n) }

// Release is a no-op; the garbage collector reclaims the storage.
func (Heap[T]) Release(buf []T) {}
